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

// The service performs no validation of pet fields, these scenarios pin
// down that it stores whatever it is given.
var _ = Describe("Boundary Value Testing", func() {
	var authKey string

	BeforeEach(func() {
		authKey = api.MustAuthKey(client, ctx, config)
	})

	Context("When submitting unusual pet data without a photo", func() {
		DescribeTable("should accept the pet and echo the field back",
			func(field string, payload *api.PetPayloadBuilder, expected string) {
				resp := api.CreatePetWithCleanup(client, ctx, authKey, payload.WithoutPhoto().Build())

				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.String(field)).To(Equal(expected))
			},
			Entry("an implausibly large age",
				"age", api.NewPetPayload().WithName("Барбоскин").WithAnimalType("двортерьер").WithAge("999"), "999"),
			Entry("a whitespace only name",
				"name", api.NewPetPayload().WithName(" ").WithAnimalType("двортерьер").WithAge("7"), " "),
			Entry("an empty animal type",
				"animal_type", api.NewPetPayload().WithName("Персик").WithAnimalType("").WithAge("7"), ""),
			Entry("a very long name",
				"name", api.NewPetPayload().WithName(api.LongName).WithAnimalType("двортерьер").WithAge("4"), api.LongName),
		)
	})
})
