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
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrPrecondition is raised when setup cannot establish the state a scenario needs.
var ErrPrecondition = errors.New("precondition failed")

func unexpectedStatus(op string, resp *Response) error {
	return fmt.Errorf("%w: %s: unexpected status code %d, body: %s (trace ID: %s)", ErrPrecondition, op, resp.StatusCode, string(resp.Raw), resp.TraceID)
}

// AuthKey fetches a key for the credentials, they must be valid.
func AuthKey(ctx context.Context, client PetFriendsAPI, email, password string) (string, error) {
	resp, err := client.GetAPIKey(ctx, email, password)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK || resp.Key() == "" {
		return "", unexpectedStatus("getting api key", resp)
	}

	return resp.Key(), nil
}

// CreatePet creates a pet with or without a photo depending on the payload.
func CreatePet(ctx context.Context, client PetFriendsAPI, authKey string, payload PetPayload) (*Response, error) {
	if payload.PhotoPath != nil {
		return client.AddNewPet(ctx, authKey, payload.Pet, *payload.PhotoPath)
	}

	return client.AddNewPetWithoutPhoto(ctx, authKey, payload.Pet)
}

// ListPets lists pets in scope, the listing must succeed.
func ListPets(ctx context.Context, client PetFriendsAPI, authKey string, filter Filter) ([]Pet, error) {
	resp, err := client.GetListOfPets(ctx, authKey, filter)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus("listing pets", resp)
	}

	return resp.Pets()
}

// createFrom creates a pet from seed and decodes it.
func createFrom(ctx context.Context, client PetFriendsAPI, authKey string, seed PetPayload) (Pet, error) {
	resp, err := CreatePet(ctx, client, authKey, seed)
	if err != nil {
		return Pet{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return Pet{}, unexpectedStatus("creating pet", resp)
	}

	pet, err := resp.Pet()
	if err != nil {
		return Pet{}, err
	}

	return *pet, nil
}

// ensurePet returns the first pet in scope, creating one from seed when the
// scope is empty.  created reports whether the pet is new.
func ensurePet(ctx context.Context, client PetFriendsAPI, authKey string, filter Filter, seed PetPayload) (Pet, bool, error) {
	pets, err := ListPets(ctx, client, authKey, filter)
	if err != nil {
		return Pet{}, false, err
	}

	if len(pets) > 0 {
		return pets[0], false, nil
	}

	pet, err := createFrom(ctx, client, authKey, seed)
	if err != nil {
		return Pet{}, false, err
	}

	return pet, true, nil
}

// EnsureOwnPet makes sure the caller owns at least one pet and returns it.
func EnsureOwnPet(ctx context.Context, client PetFriendsAPI, authKey string, seed PetPayload) (Pet, bool, error) {
	return ensurePet(ctx, client, authKey, FilterMyPets, seed)
}

// EnsureAnyPet makes sure the service lists at least one pet and returns it.
func EnsureAnyPet(ctx context.Context, client PetFriendsAPI, authKey string, seed PetPayload) (Pet, bool, error) {
	return ensurePet(ctx, client, authKey, FilterAll, seed)
}
