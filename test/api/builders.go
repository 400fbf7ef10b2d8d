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
	"time"

	"github.com/google/uuid"

	"k8s.io/utils/ptr"
)

// PetPayload is everything needed to create a pet.
type PetPayload struct {
	Pet PetInput

	// PhotoPath is the photo to upload, nil creates the pet without one.
	PhotoPath *string
}

// PetPayloadBuilder builds pet payloads for testing.
type PetPayloadBuilder struct {
	payload PetPayload
}

// NewPetPayload creates a new pet payload builder with a unique name and no photo.
func NewPetPayload() *PetPayloadBuilder {
	timestamp := time.Now().Format("20060102-150405.000")

	return &PetPayloadBuilder{
		payload: PetPayload{
			Pet: PetInput{
				Name:       fmt.Sprintf("testautomation-%s-%s", timestamp, uuid.NewString()[:8]),
				AnimalType: "кот",
				Age:        "3",
			},
		},
	}
}

// WithName sets the pet name.
func (b *PetPayloadBuilder) WithName(name string) *PetPayloadBuilder {
	b.payload.Pet.Name = name
	return b
}

// WithAnimalType sets the animal type.
func (b *PetPayloadBuilder) WithAnimalType(animalType string) *PetPayloadBuilder {
	b.payload.Pet.AnimalType = animalType
	return b
}

// WithAge sets the age, which the service treats as a free form string.
func (b *PetPayloadBuilder) WithAge(age string) *PetPayloadBuilder {
	b.payload.Pet.Age = age
	return b
}

// WithPhoto uploads the file at path with the pet.
func (b *PetPayloadBuilder) WithPhoto(path string) *PetPayloadBuilder {
	b.payload.PhotoPath = ptr.To(path)
	return b
}

// WithoutPhoto creates the pet without a photo.
func (b *PetPayloadBuilder) WithoutPhoto() *PetPayloadBuilder {
	b.payload.PhotoPath = nil
	return b
}

// Build returns the completed pet payload.
func (b *PetPayloadBuilder) Build() PetPayload {
	return b.payload
}
