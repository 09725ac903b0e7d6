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

package data

import (
	"strings"
	"time"
)

// SecurityData is the merged snapshot of everything downstream analytics
// need to value a security on a given date. A fresh value is assembled per
// request; the provider caches only the raw source tables.
type SecurityData struct {
	ISIN     string `json:"isin"`
	BaseISIN string `json:"baseIsin"`

	SecurityName string `json:"securityName,omitempty"`
	SecurityType string `json:"securityType,omitempty"`
	Funds        string `json:"funds,omitempty"`

	Price           float64 `json:"price"`
	AccruedInterest float64 `json:"accruedInterest"`
	CouponRate      float64 `json:"couponRate"`
	CouponFrequency int     `json:"couponFrequency"`
	Currency        string  `json:"currency"`

	MaturityDate    time.Time `json:"maturityDate"`
	IssueDate       time.Time `json:"issueDate"`
	FirstCouponDate time.Time `json:"firstCouponDate"`

	DayBasis              string `json:"dayBasis"`
	BusinessDayConvention string `json:"businessDayConvention"`

	Callable bool `json:"callable"`

	// CallSchedule and PaymentSchedule are opaque serialized lists passed
	// through unmodified to downstream option valuation and cashflow
	// generation. A present PaymentSchedule overrides standard schedule
	// generation downstream.
	CallSchedule    string `json:"callSchedule,omitempty"`
	PaymentSchedule string `json:"paymentSchedule,omitempty"`

	AmortizationSchedule []AmortizationEntry `json:"amortizationSchedule,omitempty"`
}

// AmortizationEntry is one principal paydown of a sinking or amortizing
// bond.
type AmortizationEntry struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// CurvePoint is a single currency/date/term observation of a yield curve.
type CurvePoint struct {
	Date  string  `json:"date"`
	Term  string  `json:"term"`
	Value float64 `json:"value"`
}

// NormalizeBusinessDayConvention collapses the synonyms found across source
// files to the short codes downstream payment-date adjustment understands.
// Unrecognized tokens pass through upper-cased.
func NormalizeBusinessDayConvention(token string) string {
	t := strings.ToUpper(strings.TrimSpace(token))
	switch t {
	case "", "NONE", "UNADJUSTED":
		return "NONE"
	case "F", "FOLLOWING":
		return "F"
	case "MF", "MODIFIED FOLLOWING", "MODIFIED_FOLLOWING":
		return "MF"
	case "P", "PRECEDING":
		return "P"
	case "MP", "MODIFIED PRECEDING", "MODIFIED_PRECEDING":
		return "MP"
	}
	return t
}

// shiftYears moves a date by whole years keeping the calendar day-of-month.
// Feb 29 inputs fall back to 365-day years when the target year has no leap
// day.
func shiftYears(t time.Time, years int) time.Time {
	if t.Month() == time.February && t.Day() == 29 && !isLeapYear(t.Year()+years) {
		return t.AddDate(0, 0, years*365)
	}
	return t.AddDate(years, 0, 0)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func isAffirmative(token string) bool {
	return strings.ToUpper(strings.TrimSpace(token)) == "Y"
}
