// Copyright 2025-2026
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package data_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/penny-vault/pv-bonds/data"
)

var _ = Describe("Identifier normalization", func() {
	Describe("When normalizing identifiers", func() {
		It("trims whitespace and upper-cases", func() {
			Expect(data.NormalizeID("  us0000001 ")).To(Equal("US0000001"))
		})

		It("maps every Unicode dash variant to an ASCII hyphen", func() {
			variants := []string{
				"US1‐2", // hyphen
				"US1‑2", // non-breaking hyphen
				"US1‒2", // figure dash
				"US1–2", // en dash
				"US1—2", // em dash
				"US1―2", // horizontal bar
			}
			for _, variant := range variants {
				Expect(data.NormalizeID(variant)).To(Equal("US1-2"))
			}
		})

		It("is idempotent", func() {
			samples := []string{"", "  abc ", "us0000001–1", "FR000-001-1", "XS12 34"}
			for _, sample := range samples {
				once := data.NormalizeID(sample)
				Expect(data.NormalizeID(once)).To(Equal(once))
			}
		})

		It("normalizes a blank input to the empty string", func() {
			Expect(data.NormalizeID("")).To(Equal(""))
			Expect(data.NormalizeID("   ")).To(Equal(""))
		})
	})

	Describe("When deriving the base identifier", func() {
		It("returns the segment before the first hyphen", func() {
			Expect(data.BaseID("US0000002-1")).To(Equal("US0000002"))
		})

		It("leaves identifiers without a hyphen unchanged", func() {
			Expect(data.BaseID("US0000002")).To(Equal("US0000002"))
		})

		It("collapses multiply-hyphenated identifiers to the first segment", func() {
			Expect(data.BaseID("FR000-001-1")).To(Equal("FR000"))
		})

		It("agrees with the normalized form of its input", func() {
			samples := []string{"us0000002-1", "US0000002–1", " FR000-001-1 ", "XS99"}
			for _, sample := range samples {
				Expect(data.BaseID(sample)).To(Equal(data.BaseID(data.NormalizeID(sample))))
			}
		})
	})
})
