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

var _ = Describe("Pet Listing", func() {
	var authKey string

	BeforeEach(func() {
		authKey = api.MustAuthKey(client, ctx, config)
	})

	Context("When listing all pets", func() {
		Describe("Given at least one pet exists", func() {
			BeforeEach(func() {
				api.EnsureAnyPetWithCleanup(client, ctx, authKey, api.NewPetPayload().Build())
			})

			It("should return a non-empty list", func() {
				resp, err := client.GetListOfPets(ctx, authKey, api.FilterAll)
				Expect(err).NotTo(HaveOccurred())

				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				pets, err := resp.Pets()
				Expect(err).NotTo(HaveOccurred())
				Expect(pets).NotTo(BeEmpty())
			})
		})
	})

	Context("When listing my pets", func() {
		Describe("Given I have just created a pet", func() {
			var petID string

			BeforeEach(func() {
				resp := api.CreatePetWithCleanup(client, ctx, authKey,
					api.NewPetPayload().
						WithName("Барбоскин").
						WithAnimalType("двортерьер").
						WithAge("4").
						Build())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				petID = resp.String("id")
				Expect(petID).NotTo(BeEmpty())
			})

			It("should include the pet with the name it was created with", func() {
				pets := api.MustListPets(client, ctx, authKey, api.FilterMyPets)

				api.VerifyPetPresence(pets, petID)
				Expect(pets).To(ContainElement(And(
					HaveField("ID", petID),
					HaveField("Name", "Барбоскин"),
				)))
			})

			It("should only list pets owned by me", func() {
				mine := api.MustListPets(client, ctx, authKey, api.FilterMyPets)
				api.VerifyPetPresence(mine, petID)

				created, _ := api.FindPet(mine, petID)
				Expect(created.UserID).NotTo(BeEmpty(), "pets should carry their owner")

				for _, pet := range mine {
					Expect(pet.UserID).To(Equal(created.UserID))
				}
			})

			It("should return the same listing when nothing changes", func() {
				first, err := client.GetListOfPets(ctx, authKey, api.FilterMyPets)
				Expect(err).NotTo(HaveOccurred())

				second, err := client.GetListOfPets(ctx, authKey, api.FilterMyPets)
				Expect(err).NotTo(HaveOccurred())

				Expect(first.StatusCode).To(Equal(http.StatusOK))
				Expect(second.StatusCode).To(Equal(http.StatusOK))
				Expect(second.Body).To(Equal(first.Body))
			})
		})
	})
})
