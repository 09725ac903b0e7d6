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
)

// GetCurve returns the yield curve points for a currency on a date. Row
// dates are matched by prefix against the normalized YYYY-MM-DD request so
// timestamp-suffixed values still match. When no row matches the date,
// every row for the currency is returned instead; callers must not assume
// date accuracy of that fallback.
func (provider *Provider) GetCurve(currency string, date string) ([]CurvePoint, error) {
	provider.locker.Lock()
	defer provider.locker.Unlock()
	provider.refresh()

	ccy := strings.ToUpper(strings.TrimSpace(currency))
	want := normalizeDateLabel(date)

	var all []CurvePoint
	var matched []CurvePoint
	for _, row := range provider.curves.Rows() {
		if !strings.EqualFold(strings.TrimSpace(row["Currency Code"]), ccy) {
			continue
		}
		value, err := strconv.ParseFloat(row["Daily Value"], 64)
		if err != nil {
			provider.logger.Debug().Str("Currency", ccy).Str("Term", row["Term"]).Msg("skipping curve row with non-numeric value")
			continue
		}

		point := CurvePoint{
			Date:  row["Date"],
			Term:  row["Term"],
			Value: value,
		}
		all = append(all, point)
		if strings.HasPrefix(strings.TrimSpace(row["Date"]), want) {
			matched = append(matched, point)
		}
	}

	if len(matched) > 0 {
		return matched, nil
	}
	if len(all) > 0 {
		provider.logger.Debug().Str("Currency", ccy).Str("Date", want).Msg("no curve rows for date; returning all rows for currency")
		return all, nil
	}
	return nil, ErrNoCurve
}
