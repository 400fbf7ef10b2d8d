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

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"github.com/Skifchik666/QAP-PetFriends/pkg/server/auth"
	"github.com/Skifchik666/QAP-PetFriends/pkg/server/handler"
	"github.com/Skifchik666/QAP-PetFriends/pkg/server/store"
)

// Options allows the stub to be configured from the CLI or in process.
type Options struct {
	// ListenAddress is where the HTTP server listens.
	ListenAddress string

	// Users maps each known email to its password.
	Users map[string]string

	// SigningKey signs issued auth keys.
	SigningKey string

	// ReadTimeout, WriteTimeout bound a single request.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "listen-address", ":8080", "API listener address.")
	f.StringToStringVar(&o.Users, "user", nil, "A user as email=password, may be repeated.")
	f.StringVar(&o.SigningKey, "signing-key", "", "Key used to sign auth keys, random if unset.")
	f.DurationVar(&o.ReadTimeout, "read-timeout", time.Second, "How long to wait for the client to send the request body.")
	f.DurationVar(&o.WriteTimeout, "write-timeout", 10*time.Second, "How long to wait for the API to respond to the client.")
}

// Server is an in-memory implementation of the PetFriends API.
type Server struct {
	options Options
	logger  logr.Logger
	router  chi.Router
}

func New(options Options, logger logr.Logger) (*Server, error) {
	if options.SigningKey == "" {
		options.SigningKey = randomKey()
	}

	authenticator, err := auth.New([]byte(options.SigningKey))
	if err != nil {
		return nil, err
	}

	for email, password := range options.Users {
		if _, err := authenticator.AddUser(email, password); err != nil {
			return nil, fmt.Errorf("adding user %q: %w", email, err)
		}
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(logging(logger))
	router.Use(middleware.Recoverer)

	handler.New(authenticator, store.NewMemory()).Register(router)

	s := &Server{
		options: options,
		logger:  logger,
		router:  router,
	}

	return s, nil
}

// Handler exposes the router, e.g. for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.options.ListenAddress)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.options.ListenAddress, err)
	}

	httpServer := &http.Server{
		Handler:           s.router,
		ReadTimeout:       s.options.ReadTimeout,
		ReadHeaderTimeout: s.options.ReadTimeout,
		WriteTimeout:      s.options.WriteTimeout,
	}

	errs := make(chan error, 1)

	go func() {
		s.logger.Info("server listening", "address", listener.Addr().String())

		errs <- httpServer.Serve(listener)
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	s.logger.Info("server stopped")

	return nil
}
