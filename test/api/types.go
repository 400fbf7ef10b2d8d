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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Skifchik666/QAP-PetFriends/pkg/constants"
)

var (
	// ErrMalformedBody is raised when a response declares JSON but isn't.
	ErrMalformedBody = errors.New("malformed response body")

	// ErrContractViolation is raised when a response does not match the
	// published API description.
	ErrContractViolation = errors.New("response violates API contract")
)

// Filter scopes a pet listing.
type Filter string

const (
	// FilterAll lists every pet on the service.
	FilterAll Filter = ""

	// FilterMyPets lists only pets owned by the caller.
	FilterMyPets Filter = constants.FilterMyPets
)

// PetInput is what a caller submits when creating or updating a pet.
type PetInput struct {
	Name       string
	AnimalType string
	Age        string
}

// Pet is a pet record as returned by the service.
type Pet struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AnimalType string `json:"animal_type"`
	Age        string `json:"age"`
	PetPhoto   string `json:"pet_photo"`
	UserID     string `json:"user_id,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// PetList is the body of a listing.
type PetList struct {
	Pets []Pet `json:"pets"`
}

// Response is the normalised result of every client call.
type Response struct {
	// StatusCode is the HTTP status.
	StatusCode int

	// Header is the response header.
	Header http.Header

	// Body is the decoded JSON object, empty when the body is not an object,
	// e.g. the HTML page served with a 403.
	Body map[string]any

	// Raw is the body as received.
	Raw []byte

	// TraceID correlates the call with service side logs.
	TraceID string
}

// Has reports whether the body contains the field.
func (r *Response) Has(field string) bool {
	_, ok := r.Body[field]
	return ok
}

// String returns a string field of the body, or "" if absent or not a string.
func (r *Response) String(field string) string {
	s, _ := r.Body[field].(string)
	return s
}

// Key is the auth key issued by GetAPIKey.
func (r *Response) Key() string {
	return r.String("key")
}

// Pet decodes the body as a single pet.
func (r *Response) Pet() (*Pet, error) {
	var pet Pet
	if err := json.Unmarshal(r.Raw, &pet); err != nil {
		return nil, fmt.Errorf("%w: decoding pet (status %d): %w", ErrMalformedBody, r.StatusCode, err)
	}

	return &pet, nil
}

// Pets decodes the body as a listing.
func (r *Response) Pets() ([]Pet, error) {
	var list PetList
	if err := json.Unmarshal(r.Raw, &list); err != nil {
		return nil, fmt.Errorf("%w: decoding pet list (status %d): %w", ErrMalformedBody, r.StatusCode, err)
	}

	return list.Pets, nil
}

// PetIDs returns the identifiers of the pets in order.
func PetIDs(pets []Pet) []string {
	ids := make([]string, len(pets))

	for i := range pets {
		ids[i] = pets[i].ID
	}

	return ids
}

// FindPet returns the pet with the given identifier.
func FindPet(pets []Pet, id string) (Pet, bool) {
	for i := range pets {
		if pets[i].ID == id {
			return pets[i], true
		}
	}

	return Pet{}, false
}
