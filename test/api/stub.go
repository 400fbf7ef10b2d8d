/*
Copyright 2026 the QAP-PetFriends Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"net/http/httptest"

	"github.com/go-logr/logr"

	"github.com/Skifchik666/QAP-PetFriends/pkg/server"
)

// NewStubServer starts an in-process stub of the service that knows the
// configured valid user, and points the configuration at it.  The caller
// closes the server.
func NewStubServer(config *TestConfig, logger logr.Logger) (*httptest.Server, error) {
	options := server.Options{
		Users: map[string]string{
			config.ValidEmail: config.ValidPassword,
		},
	}

	s, err := server.New(options, logger)
	if err != nil {
		return nil, fmt.Errorf("creating stub server: %w", err)
	}

	ts := httptest.NewServer(s.Handler())

	config.BaseURL = ts.URL

	return ts, nil
}
