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
	"github.com/rs/zerolog/log"
)

var _ = Describe("GetCurve", func() {
	var provider *data.Provider

	BeforeEach(func() {
		dir := GinkgoT().TempDir()
		writeAllSources(dir)
		provider = data.NewProvider(dir, log.Logger)
	})

	Describe("When curve rows exist for the requested date", func() {
		It("matches timestamp-suffixed row dates by prefix", func() {
			points, err := provider.GetCurve("USD", "2025-01-02")
			Expect(err).To(BeNil())
			Expect(points).To(HaveLen(2))
			Expect(points[0].Term).To(Equal("1Y"))
			Expect(points[0].Value).To(Equal(4.50))
			Expect(points[1].Term).To(Equal("5Y"))
			Expect(points[1].Value).To(Equal(4.10))
		})

		It("treats the currency case-insensitively", func() {
			points, err := provider.GetCurve("eur", "2025-01-02")
			Expect(err).To(BeNil())
			Expect(points).To(HaveLen(1))
			Expect(points[0].Value).To(Equal(3.10))
		})
	})

	Describe("When no curve row matches the date", func() {
		It("falls back to every row for the currency", func() {
			points, err := provider.GetCurve("USD", "2026-06-30")
			Expect(err).To(BeNil())
			Expect(points).To(HaveLen(3))
		})
	})

	Describe("When the currency has no rows at all", func() {
		It("returns ErrNoCurve", func() {
			_, err := provider.GetCurve("JPY", "2025-01-02")
			Expect(err).To(MatchError(data.ErrNoCurve))
		})
	})
})
