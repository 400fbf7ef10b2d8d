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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// MustAuthKey fetches a fresh key for the configured valid user.
func MustAuthKey(client PetFriendsAPI, ctx context.Context, config *TestConfig) string {
	key, err := AuthKey(ctx, client, config.ValidEmail, config.ValidPassword)
	Expect(err).NotTo(HaveOccurred())

	return key
}

// MustListPets lists pets in scope, failing the test on anything but a 200.
func MustListPets(client PetFriendsAPI, ctx context.Context, authKey string, filter Filter) []Pet {
	pets, err := ListPets(ctx, client, authKey, filter)
	Expect(err).NotTo(HaveOccurred())

	return pets
}

// deleteOnCleanup schedules deletion of a pet, this runs whether the test
// passes or fails.
func deleteOnCleanup(client PetFriendsAPI, ctx context.Context, authKey, petID string) {
	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up pet: %s\n", petID)

		resp, err := client.DeletePet(ctx, authKey, petID)

		switch {
		case err != nil:
			GinkgoWriter.Printf("Warning: Failed to delete pet %s: %v\n", petID, err)
		case resp.StatusCode != http.StatusOK:
			GinkgoWriter.Printf("Warning: Failed to delete pet %s: status %d\n", petID, resp.StatusCode)
		default:
			GinkgoWriter.Printf("Successfully deleted pet: %s\n", petID)
		}
	})
}

// CreatePetWithCleanup creates a pet and, if the service accepted it,
// schedules its deletion.  The response is returned unchecked for the scenario
// to assert on.
func CreatePetWithCleanup(client PetFriendsAPI, ctx context.Context, authKey string, payload PetPayload) *Response {
	resp, err := CreatePet(ctx, client, authKey, payload)
	Expect(err).NotTo(HaveOccurred())

	if id := resp.String("id"); resp.StatusCode == http.StatusOK && id != "" {
		GinkgoWriter.Printf("Created pet with ID: %s\n", id)
		deleteOnCleanup(client, ctx, authKey, id)
	}

	return resp
}

// EnsureOwnPetWithCleanup makes sure the caller owns a pet, creating one from
// seed if needed.  Only a pet created here is cleaned up.
func EnsureOwnPetWithCleanup(client PetFriendsAPI, ctx context.Context, authKey string, seed PetPayload) Pet {
	pet, created, err := EnsureOwnPet(ctx, client, authKey, seed)
	Expect(err).NotTo(HaveOccurred())

	if created {
		GinkgoWriter.Printf("Created prerequisite pet with ID: %s\n", pet.ID)
		deleteOnCleanup(client, ctx, authKey, pet.ID)
	}

	return pet
}

// EnsureAnyPetWithCleanup makes sure the service lists at least one pet.
func EnsureAnyPetWithCleanup(client PetFriendsAPI, ctx context.Context, authKey string, seed PetPayload) Pet {
	pet, created, err := EnsureAnyPet(ctx, client, authKey, seed)
	Expect(err).NotTo(HaveOccurred())

	if created {
		GinkgoWriter.Printf("Created prerequisite pet with ID: %s\n", pet.ID)
		deleteOnCleanup(client, ctx, authKey, pet.ID)
	}

	return pet
}

// VerifyPetPresence checks every expected pet is listed.
func VerifyPetPresence(pets []Pet, expectedIDs ...string) {
	ids := PetIDs(pets)

	for _, id := range expectedIDs {
		Expect(ids).To(ContainElement(id), "pet %s should be listed", id)
	}
}

// VerifyPetAbsence checks none of the pets are listed.
func VerifyPetAbsence(pets []Pet, unexpectedIDs ...string) {
	ids := PetIDs(pets)

	for _, id := range unexpectedIDs {
		Expect(ids).NotTo(ContainElement(id), "pet %s should not be listed", id)
	}
}
