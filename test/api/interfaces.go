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
)

//go:generate mockgen -source=interfaces.go -destination=mock/interfaces.go -package=mock

// PetFriendsAPI is the set of operations the suites drive.
type PetFriendsAPI interface {
	GetAPIKey(ctx context.Context, email, password string) (*Response, error)
	GetListOfPets(ctx context.Context, authKey string, filter Filter) (*Response, error)
	AddNewPet(ctx context.Context, authKey string, pet PetInput, photoPath string) (*Response, error)
	AddNewPetWithoutPhoto(ctx context.Context, authKey string, pet PetInput) (*Response, error)
	AddPhotoOfPet(ctx context.Context, authKey, petID, photoPath string) (*Response, error)
	UpdatePetInfo(ctx context.Context, authKey, petID string, pet PetInput) (*Response, error)
	DeletePet(ctx context.Context, authKey, petID string) (*Response, error)
}
