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
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix namespaces every environment variable, e.g. PETFRIENDS_BASE_URL.
const envPrefix = "PETFRIENDS"

type TestConfig struct {
	// BaseURL of the service under test, empty to use the in-process stub.
	BaseURL string `validate:"omitempty,url"`

	ValidEmail    string `validate:"required,email"`
	ValidPassword string `validate:"required"`

	// FixturesDir holds the photo fixtures.
	FixturesDir string `validate:"required,dir"`

	RequestTimeout time.Duration `validate:"gt=0"`
	RetryMax       int           `validate:"gte=0,lte=10"`
	RetryWaitMin   time.Duration `validate:"gte=0"`
	RetryWaitMax   time.Duration `validate:"gtefield=RetryWaitMin"`

	ValidateContract bool
	LogRequests      bool
	LogResponses     bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if a value is missing or malformed.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("base_url", "")
	v.SetDefault("valid_email", "qa@petfriends.test")
	v.SetDefault("valid_password", "petfriends")
	v.SetDefault("fixtures_dir", defaultFixturesDir())
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("retry_max", 0)
	v.SetDefault("retry_wait_min", 500*time.Millisecond)
	v.SetDefault("retry_wait_max", 5*time.Second)
	v.SetDefault("validate_contract", false)
	v.SetDefault("log_requests", false)
	v.SetDefault("log_responses", false)

	config := &TestConfig{
		BaseURL:          v.GetString("base_url"),
		ValidEmail:       v.GetString("valid_email"),
		ValidPassword:    v.GetString("valid_password"),
		FixturesDir:      v.GetString("fixtures_dir"),
		RequestTimeout:   v.GetDuration("request_timeout"),
		RetryMax:         v.GetInt("retry_max"),
		RetryWaitMin:     v.GetDuration("retry_wait_min"),
		RetryWaitMax:     v.GetDuration("retry_wait_max"),
		ValidateContract: v.GetBool("validate_contract"),
		LogRequests:      v.GetBool("log_requests"),
		LogResponses:     v.GetBool("log_responses"),
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// FixturePath resolves a fixture relative to the fixtures directory.
func (c *TestConfig) FixturePath(name string) string {
	return filepath.Join(c.FixturesDir, filepath.FromSlash(name))
}

// UsesStub reports whether the suites should start the in-process stub.
func (c *TestConfig) UsesStub() bool {
	return c.BaseURL == ""
}

func validateConfig(config *TestConfig) error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("invalid configuration, please set %s_* environment variables or add them to a .env file: %w", envPrefix, err)
	}

	return nil
}

// sourceDir is the directory holding this file, used to find resources no
// matter which package the tests run from.
func sourceDir() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "."
	}

	return filepath.Dir(file)
}

func defaultFixturesDir() string {
	return filepath.Join(sourceDir(), "..", "fixtures")
}

func loadEnvFile() {
	envPaths := []string{
		".env",
		filepath.Join(sourceDir(), "..", ".env"), // test/.env
	}

	for _, path := range envPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		// Existing environment variables win over the file.
		if err := godotenv.Load(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", path, err)
		}

		return
	}
}
