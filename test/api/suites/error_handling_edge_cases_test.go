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

var _ = Describe("Error Handling Edge Cases", func() {
	var authKey string

	BeforeEach(func() {
		authKey = api.MustAuthKey(client, ctx, config)
	})

	Context("When deleting a pet twice", func() {
		Describe("Given the pet has already been deleted", func() {
			It("should not bring the pet back", func() {
				resp := api.CreatePetWithCleanup(client, ctx, authKey, api.NewPetPayload().Build())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				petID := resp.String("id")

				first, err := client.DeletePet(ctx, authKey, petID)
				Expect(err).NotTo(HaveOccurred())
				Expect(first.StatusCode).To(Equal(http.StatusOK))

				// The outcome of the second delete is up to the service, only
				// that it does not break the exchange or resurrect the pet.
				second, err := client.DeletePet(ctx, authKey, petID)
				Expect(err).NotTo(HaveOccurred())
				Expect(second.StatusCode).To(BeNumerically("<", http.StatusInternalServerError))

				api.VerifyPetAbsence(api.MustListPets(client, ctx, authKey, api.FilterMyPets), petID)
			})
		})
	})

	Context("When a key is fetched per scenario", func() {
		It("should issue keys that work independently", func() {
			other := api.MustAuthKey(client, ctx, config)

			for _, key := range []string{authKey, other} {
				resp, err := client.GetListOfPets(ctx, key, api.FilterMyPets)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Has("pets")).To(BeTrue())
			}
		})
	})
})
