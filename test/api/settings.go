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

// Static fixtures shared by the scenarios.
const (
	InvalidEmail    = "nobody@petfriends.invalid"
	InvalidPassword = "not-the-password"

	EmptyEmail    = ""
	EmptyPassword = ""

	// InvalidKey is well formed but was never issued.
	InvalidKey = "ea738148a1f19838e1c5d1413877f3691a3731380e733e877b0ae729"

	// LongName is far longer than any name a UI would accept.
	LongName = "Барбоскин-Мурзик-Персик-Суперкот-Левша-Котэ-Копибара-Двортерьер-" +
		"Барбоскин-Мурзик-Персик-Суперкот-Левша-Котэ-Копибара-Двортерьер-" +
		"Барбоскин-Мурзик-Персик-Суперкот-Левша-Котэ-Копибара-Двортерьер-" +
		"Барбоскин-Мурзик-Персик-Суперкот-Левша-Котэ-Копибара-Двортерьер"

	// ImageFixture and TextFixture are relative to the fixtures directory.
	ImageFixture = "images/1.png"
	TextFixture  = "images/2.txt"
)
