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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Skifchik666/QAP-PetFriends/test/api"
)

var _ = Describe("Pet Photos", func() {
	var authKey string

	BeforeEach(func() {
		authKey = api.MustAuthKey(client, ctx, config)
	})

	Context("When adding a pet with a photo", func() {
		Describe("Given the photo is not an image", func() {
			It("should create the pet without a photo", func() {
				resp := api.CreatePetWithCleanup(client, ctx, authKey,
					api.NewPetPayload().
						WithName("Левша").
						WithAnimalType("Копибара").
						WithAge("6").
						WithPhoto(config.FixturePath(api.TextFixture)).
						Build())

				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Has("pet_photo")).To(BeTrue())
				Expect(resp.String("pet_photo")).To(BeEmpty())
			})
		})
	})

	Context("When adding a photo to an existing pet", func() {
		Describe("Given I own at least one pet", func() {
			var pet api.Pet

			BeforeEach(func() {
				pet = api.EnsureOwnPetWithCleanup(client, ctx, authKey, api.NewPetPayload().Build())
			})

			It("should store the photo on the pet", func() {
				resp, err := client.AddPhotoOfPet(ctx, authKey, pet.ID, config.FixturePath(api.ImageFixture))
				Expect(err).NotTo(HaveOccurred())

				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.String("pet_photo")).NotTo(BeEmpty())

				listed, ok := api.FindPet(api.MustListPets(client, ctx, authKey, api.FilterMyPets), pet.ID)
				Expect(ok).To(BeTrue(), "pet %s should still be listed", pet.ID)
				Expect(listed.PetPhoto).To(Equal(resp.String("pet_photo")))
			})
		})
	})
})
