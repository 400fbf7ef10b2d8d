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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Skifchik666/QAP-PetFriends/pkg/constants"
	"github.com/Skifchik666/QAP-PetFriends/pkg/server"
)

var errLogLevel = errors.New("--log-level must not be negative")

// zapLevel maps logr verbosity V(n) onto zap level -n.
func zapLevel(logLevel int8) (zapcore.Level, error) {
	if logLevel < 0 {
		return 0, errLogLevel
	}

	return zapcore.Level(-logLevel), nil
}

func main() {
	var (
		options     server.Options
		development bool
		logLevel    int8
	)

	options.AddFlags(pflag.CommandLine)

	pflag.BoolVar(&development, "development", false, "Use human readable development logging.")
	pflag.Int8Var(&logLevel, "log-level", 0, "Log verbosity, higher is more verbose.")

	pflag.Parse()

	level, err := zapLevel(logLevel)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	zapConfig := zap.NewProductionConfig()
	if development {
		zapConfig = zap.NewDevelopmentConfig()
	}

	zapConfig.Level = zap.NewAtomicLevelAt(level)

	zapLogger, err := zapConfig.Build()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	logger := zapr.NewLogger(zapLogger).WithName("init")
	logger.Info("service starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	s, err := server.New(options, zapr.NewLogger(zapLogger).WithName("server"))
	if err != nil {
		logger.Error(err, "failed to create server")
		os.Exit(1)
	}

	if err := s.Run(ctx); err != nil {
		logger.Error(err, "server exited with error")
		os.Exit(1)
	}

	_ = zapLogger.Sync()
}
