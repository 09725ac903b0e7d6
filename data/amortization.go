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
	"sort"
	"strconv"
)

// GetAmortization returns the amortization schedule for an identifier,
// sorted ascending by date. Identifier resolution uses the exact-then-base
// fallback; rows with unparseable dates or non-numeric amounts are skipped
// individually. ErrNotFound is returned when no valid rows remain.
func (provider *Provider) GetAmortization(identifier string) ([]AmortizationEntry, error) {
	provider.locker.Lock()
	defer provider.locker.Unlock()
	provider.refresh()

	entries := provider.amortizationFor(NormalizeID(identifier))
	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	return entries, nil
}

func (provider *Provider) amortizationFor(id string) []AmortizationEntry {
	rows := provider.amortization.FindAll(id)
	if len(rows) == 0 {
		return nil
	}

	entries := make([]AmortizationEntry, 0, len(rows))
	for _, row := range rows {
		date, err := ParseDate(row["Date"])
		if err != nil {
			provider.logger.Warn().Str("ISIN", id).Str("Date", row["Date"]).Msg("skipping amortization row with unparseable date")
			continue
		}

		raw := row["Amount"]
		if raw == "" {
			// some files label the value column Principal instead
			raw = row["Principal"]
		}
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			provider.logger.Warn().Str("ISIN", id).Str("Amount", raw).Msg("skipping amortization row with non-numeric amount")
			continue
		}

		entries = append(entries, AmortizationEntry{Date: date, Amount: amount})
	}

	// stable so paydowns sharing a date keep their file order
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	return entries
}
