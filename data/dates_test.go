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
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/penny-vault/pv-bonds/data"
)

func utcDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var _ = Describe("ParseDate", func() {
	Describe("When parsing ISO dates", func() {
		It("parses YYYY-MM-DD", func() {
			Expect(data.ParseDate("2025-01-02")).To(Equal(utcDate(2025, 1, 2)))
		})

		It("parses timestamp-suffixed values to the calendar date", func() {
			Expect(data.ParseDate("2025-01-02T15:30:00")).To(Equal(utcDate(2025, 1, 2)))
			Expect(data.ParseDate("2025-01-02 00:00:00")).To(Equal(utcDate(2025, 1, 2)))
		})

		It("allows single-digit month and day", func() {
			Expect(data.ParseDate("2025-1-2")).To(Equal(utcDate(2025, 1, 2)))
		})
	})

	Describe("When parsing regional numeric formats", func() {
		It("parses slash-separated dates", func() {
			Expect(data.ParseDate("2025/01/02")).To(Equal(utcDate(2025, 1, 2)))
		})

		It("prefers day-first for ambiguous values", func() {
			Expect(data.ParseDate("03/04/2021")).To(Equal(utcDate(2021, 4, 3)))
		})

		It("parses unambiguous month-first values", func() {
			Expect(data.ParseDate("12/25/2021")).To(Equal(utcDate(2021, 12, 25)))
		})

		It("parses compact YYYYMMDD", func() {
			Expect(data.ParseDate("20250102")).To(Equal(utcDate(2025, 1, 2)))
		})
	})

	Describe("When parsing Excel serial dates", func() {
		It("converts a modern serial number", func() {
			Expect(data.ParseDate("44197")).To(Equal(utcDate(2021, 1, 1)))
		})

		It("handles serials before the phantom 1900 leap day", func() {
			Expect(data.ParseDate("1")).To(Equal(utcDate(1900, 1, 1)))
			Expect(data.ParseDate("59")).To(Equal(utcDate(1900, 2, 28)))
		})

		It("handles serials after the phantom 1900 leap day", func() {
			Expect(data.ParseDate("61")).To(Equal(utcDate(1900, 3, 1)))
		})

		It("rejects numbers outside the plausible serial range", func() {
			_, err := data.ParseDate("0.5")
			Expect(err).To(MatchError(data.ErrUnparseableDate))
			_, err = data.ParseDate("5000000")
			Expect(err).To(MatchError(data.ErrUnparseableDate))
		})
	})

	Describe("When every format fails", func() {
		It("returns ErrUnparseableDate", func() {
			_, err := data.ParseDate("not a date")
			Expect(err).To(MatchError(data.ErrUnparseableDate))
		})

		It("rejects blank input", func() {
			_, err := data.ParseDate("  ")
			Expect(err).To(MatchError(data.ErrUnparseableDate))
		})
	})
})
