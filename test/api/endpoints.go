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

	"github.com/oapi-codegen/runtime"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

func petIDParameter(petID string) (string, error) {
	p, err := runtime.StyleParamWithLocation("simple", false, "pet_id", runtime.ParamLocationPath, petID)
	if err != nil {
		return "", fmt.Errorf("styling pet_id: %w", err)
	}

	return p, nil
}

// Authentication endpoints.
func (e *Endpoints) GetAPIKey() string {
	return "/api/key"
}

// Pet endpoints.
func (e *Endpoints) ListPets(filter Filter) (string, error) {
	q, err := runtime.StyleParamWithLocation("form", true, "filter", runtime.ParamLocationQuery, string(filter))
	if err != nil {
		return "", fmt.Errorf("styling filter: %w", err)
	}

	return "/api/pets?" + q, nil
}

func (e *Endpoints) CreatePet() string {
	return "/api/pets"
}

func (e *Endpoints) CreatePetSimple() string {
	return "/api/create_pet_simple"
}

func (e *Endpoints) SetPetPhoto(petID string) (string, error) {
	p, err := petIDParameter(petID)
	if err != nil {
		return "", err
	}

	return "/api/pets/set_photo/" + p, nil
}

func (e *Endpoints) UpdatePet(petID string) (string, error) {
	p, err := petIDParameter(petID)
	if err != nil {
		return "", err
	}

	return "/api/pets/" + p, nil
}

func (e *Endpoints) DeletePet(petID string) (string, error) {
	return e.UpdatePet(petID)
}
