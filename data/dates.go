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
	"strconv"
	"strings"
	"time"
)

// dateLayouts lists the accepted textual date formats, tried in order: ISO
// forms first, then regional numeric forms. Day-first wins for values that
// are valid under both day-first and month-first layouts.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-1-2",
	"2006/01/02",
	"02/01/2006",
	"01/02/2006",
	"2/1/2006",
	"02-01-2006",
	"02.01.2006",
	"2.1.2006",
	"20060102",
	"2 Jan 2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// fallbackLayouts are tried after Excel serial detection as a last resort.
var fallbackLayouts = []string{
	time.RFC1123,
	time.RFC822,
	time.ANSIC,
}

// excelEpoch is day zero of Excel's 1900 date system, shifted back so that
// adding a serial number directly lands on the correct date for serials
// after the phantom 1900-02-29 (Excel wrongly treats 1900 as a leap year).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ParseDate converts a textual date into a calendar date at UTC midnight.
// It tries ISO layouts, regional numeric layouts, Excel serial numbers and
// a set of generic fallback layouts, in that order, and returns
// ErrUnparseableDate only after every attempt fails.
func ParseDate(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, ErrUnparseableDate
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return midnight(t), nil
		}
	}

	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		return excelSerialDate(serial)
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return midnight(t), nil
		}
	}

	return time.Time{}, ErrUnparseableDate
}

// excelSerialDate converts an Excel 1900-system serial number to a calendar
// date, correcting for the off-by-one Excel inherited from Lotus 1-2-3.
func excelSerialDate(serial float64) (time.Time, error) {
	if serial < 1 || serial > 300000 {
		return time.Time{}, ErrUnparseableDate
	}

	days := int(serial)
	// serials before the phantom leap day sit one slot earlier
	if days < 60 {
		days++
	}

	return excelEpoch.AddDate(0, 0, days), nil
}

// normalizeDateLabel renders a textual date in YYYY-MM-DD form, falling back
// to the trimmed original when it cannot be parsed.
func normalizeDateLabel(value string) string {
	if t, err := ParseDate(value); err == nil {
		return t.Format("2006-01-02")
	}
	return strings.TrimSpace(value)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
