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

// Package api provides integration test utilities for the PetFriends API.
//
// # Client
//
// APIClient wraps every call the suites make and returns a normalised
// Response envelope: the status code plus the decoded JSON object, if any.
// A non-2xx status is never an error, scenarios assert on it directly.
// Errors are reserved for failures the scenario cannot reason about, such as
// transport errors, a body that claims to be JSON but is not, or, when
// enabled, a response that violates the published contract.
//
// The client deliberately performs no validation of pet fields, whatever
// the service accepts or rejects is what the suites observe.
//
// # Fixtures
//
// Preconditions such as "the caller owns at least one pet" are established
// by the helpers in preconditions.go, which create the missing state rather
// than fail.  The Ginkgo aware wrappers in fixtures.go add cleanup.
//
// # Local runs
//
// When no base URL is configured the suites start an in-process stub of the
// service, see NewStubServer, so they can run without network access or
// real credentials.  Set PETFRIENDS_BASE_URL, for example to the public
// deployment at https://petfriends.skillfactory.ru, to run against a real
// service.
package api
