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

// priceOn resolves the date-specific value of a wide-layout row. Column
// labels and the requested date are compared as parsed calendar dates so
// mixed textual formats still match; when neither side parses, raw label
// equality is the last resort. No date fallback is applied: a missing or
// blank column yields 0.0.
func priceOn(row Row, columns []string, date string) float64 {
	want, wantErr := ParseDate(date)

	for _, col := range columns {
		if col == idColumn {
			continue
		}
		raw := row[col]
		if raw == "" {
			continue
		}

		colDate, err := ParseDate(col)
		if err != nil {
			if wantErr != nil && col == strings.TrimSpace(date) {
				return parseFloat(raw)
			}
			continue
		}
		if wantErr == nil && sameDate(colDate, want) {
			return parseFloat(raw)
		}
	}

	return 0
}

// accruedOn resolves accrued interest from a wide-layout row: an exact date
// column match wins; otherwise the nearest date column on or before the
// requested date. The bool result reports whether either level succeeded.
func accruedOn(row Row, columns []string, date string) (float64, bool) {
	want, wantErr := ParseDate(date)

	var bestVal float64
	var bestDate time.Time
	found := false

	for _, col := range columns {
		if col == idColumn {
			continue
		}
		raw := row[col]
		if raw == "" {
			continue
		}
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}

		colDate, colErr := ParseDate(col)
		if colErr != nil {
			// raw label equality when neither side parses as a date
			if wantErr != nil && col == strings.TrimSpace(date) {
				return val, true
			}
			continue
		}
		if wantErr != nil {
			continue
		}

		if sameDate(colDate, want) {
			return val, true
		}
		if colDate.Before(want) && (!found || colDate.After(bestDate)) {
			bestVal = val
			bestDate = colDate
			found = true
		}
	}

	return bestVal, found
}

// resolveAccrued walks the layered accrued interest fallback: exact row and
// date, nearest earlier date, base-identifier retry of both (only when the
// exact identifier had no row at all), the schedule row's embedded value,
// then 0.0.
func (provider *Provider) resolveAccrued(id string, date string) float64 {
	rows := provider.accrued.Lookup(id)
	if len(rows) == 0 && strings.Contains(id, "-") {
		rows = provider.accrued.Lookup(BaseID(id))
	}
	if len(rows) > 0 {
		if val, ok := accruedOn(rows[0], provider.accrued.Columns(), date); ok {
			return val
		}
	}

	if row, ok := provider.schedule.Find(id); ok {
		if val, err := strconv.ParseFloat(row["Accrued Interest"], 64); err == nil {
			return val
		}
	}

	return 0
}

func parseFloat(raw string) float64 {
	val, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return val
}
