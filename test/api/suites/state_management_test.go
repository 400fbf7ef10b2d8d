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

var _ = Describe("Pet State Management", func() {
	var authKey string

	BeforeEach(func() {
		authKey = api.MustAuthKey(client, ctx, config)
	})

	Context("When a pet moves through its lifecycle", func() {
		It("should reflect every transition in my pets", func() {
			// Given: A new pet without a photo
			resp := api.CreatePetWithCleanup(client, ctx, authKey,
				api.NewPetPayload().WithName("Персик").WithAnimalType("кот").WithAge("1").Build())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			created, err := resp.Pet()
			Expect(err).NotTo(HaveOccurred())
			Expect(created.PetPhoto).To(BeEmpty())

			// When: I update it
			resp, err = client.UpdatePetInfo(ctx, authKey, created.ID, api.PetInput{Name: "Персик", AnimalType: "кот", Age: "2"})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			// Then: The listing shows the new age
			listed, ok := api.FindPet(api.MustListPets(client, ctx, authKey, api.FilterMyPets), created.ID)
			Expect(ok).To(BeTrue())
			Expect(listed.Age).To(Equal("2"))

			// When: I attach a photo
			resp, err = client.AddPhotoOfPet(ctx, authKey, created.ID, config.FixturePath(api.ImageFixture))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			// Then: The listing shows the photo and keeps the update
			listed, ok = api.FindPet(api.MustListPets(client, ctx, authKey, api.FilterMyPets), created.ID)
			Expect(ok).To(BeTrue())
			Expect(listed.PetPhoto).NotTo(BeEmpty())
			Expect(listed.Age).To(Equal("2"))

			// When: I delete it
			resp, err = client.DeletePet(ctx, authKey, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			// Then: It is gone
			api.VerifyPetAbsence(api.MustListPets(client, ctx, authKey, api.FilterMyPets), created.ID)
		})
	})

	Context("When a pet has been deleted", func() {
		var petID string

		BeforeEach(func() {
			resp := api.CreatePetWithCleanup(client, ctx, authKey, api.NewPetPayload().Build())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			petID = resp.String("id")

			resp, err := client.DeletePet(ctx, authKey, petID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
		})

		It("should not be resurrected by an update", func() {
			resp, err := client.UpdatePetInfo(ctx, authKey, petID, api.PetInput{Name: "Зомби", AnimalType: "кот", Age: "9"})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(BeNumerically("<", http.StatusInternalServerError))

			api.VerifyPetAbsence(api.MustListPets(client, ctx, authKey, api.FilterMyPets), petID)
		})

		It("should not be resurrected by a photo upload", func() {
			resp, err := client.AddPhotoOfPet(ctx, authKey, petID, config.FixturePath(api.ImageFixture))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(BeNumerically("<", http.StatusInternalServerError))

			api.VerifyPetAbsence(api.MustListPets(client, ctx, authKey, api.FilterMyPets), petID)
		})
	})
})
