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

var _ = Describe("Security and Authentication", func() {
	Context("When requesting an auth key", func() {
		Describe("Given valid credentials", func() {
			It("should issue a key", func() {
				resp, err := client.GetAPIKey(ctx, config.ValidEmail, config.ValidPassword)
				Expect(err).NotTo(HaveOccurred())

				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Has("key")).To(BeTrue())
				Expect(resp.Key()).NotTo(BeEmpty())
			})
		})

		Describe("Given invalid credentials", func() {
			DescribeTable("should refuse to issue a key",
				func(email, password string) {
					resp, err := client.GetAPIKey(ctx, email, password)
					Expect(err).NotTo(HaveOccurred())

					Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
					Expect(resp.Has("key")).To(BeFalse())
				},
				Entry("unknown email and password", api.InvalidEmail, api.InvalidPassword),
				Entry("empty email and password", api.EmptyEmail, api.EmptyPassword),
			)

			It("should refuse a valid email with the wrong password", func() {
				resp, err := client.GetAPIKey(ctx, config.ValidEmail, api.InvalidPassword)
				Expect(err).NotTo(HaveOccurred())

				Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
				Expect(resp.Has("key")).To(BeFalse())
			})
		})
	})

	Context("When calling the API with an invalid key", func() {
		DescribeTable("should reject pet listings",
			func(filter api.Filter) {
				resp, err := client.GetListOfPets(ctx, api.InvalidKey, filter)
				Expect(err).NotTo(HaveOccurred())

				Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
				Expect(resp.Has(string(api.FilterMyPets))).To(BeFalse())
				Expect(resp.Has("pets")).To(BeFalse())
			},
			Entry("all pets", api.FilterAll),
			Entry("my pets", api.FilterMyPets),
		)

		It("should reject pet creation", func() {
			resp, err := client.AddNewPetWithoutPhoto(ctx, api.InvalidKey, api.NewPetPayload().Build().Pet)
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
			Expect(resp.Has("id")).To(BeFalse())
		})

		It("should reject updates and deletes", func() {
			authKey := api.MustAuthKey(client, ctx, config)
			pet := api.EnsureOwnPetWithCleanup(client, ctx, authKey, api.NewPetPayload().Build())

			resp, err := client.UpdatePetInfo(ctx, api.InvalidKey, pet.ID, api.PetInput{Name: "Захватчик", AnimalType: "кот", Age: "1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusForbidden))

			resp, err = client.DeletePet(ctx, api.InvalidKey, pet.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusForbidden))

			api.VerifyPetPresence(api.MustListPets(client, ctx, authKey, api.FilterMyPets), pet.ID)
		})
	})
})
