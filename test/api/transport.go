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
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
)

// NewHTTPClient constructs the HTTP client with an optional retry/backoff policy.
// Retries are off unless RetryMax is set, a retried create is not idempotent.
func NewHTTPClient(config *TestConfig) *http.Client {
	if config.RetryMax > 0 {
		rc := retryablehttp.NewClient()
		rc.RetryMax = config.RetryMax
		rc.RetryWaitMin = config.RetryWaitMin
		rc.RetryWaitMax = config.RetryWaitMax
		// keep default CheckRetry (retries on 429/5xx and honors Retry-After)
		rc.Logger = nil
		// hand back the final response rather than an error, callers inspect the status
		rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

		httpClient := rc.StandardClient()
		httpClient.Timeout = config.RequestTimeout

		return httpClient
	}

	return &http.Client{
		Timeout: config.RequestTimeout,
	}
}
