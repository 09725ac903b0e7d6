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
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Source file names within the data directory. Every file is optional;
// absence degrades to an empty table.
const (
	priceFile        = "sec_Price.csv"
	scheduleFile     = "schedule.csv"
	referenceFile    = "reference.csv"
	accruedFile      = "sec_accrued.csv"
	curveFile        = "curves.csv"
	amortizationFile = "amortization.csv"
)

var sourceFiles = []string{
	priceFile,
	scheduleFile,
	referenceFile,
	accruedFile,
	curveFile,
	amortizationFile,
}

// paymentScheduleAliases are the column names a custom payment schedule may
// hide under in the schedule file; the first populated one wins.
var paymentScheduleAliases = []string{
	"Payment Schedule",
	"Custom Payment Schedule",
	"Cashflow Schedule",
}

var businessDayAliases = []string{
	"Business Day Convention",
	"BusinessDayConvention",
}

// Provider is the unified access layer over the six bond data sources. It
// keeps one in-memory table per source and wholesale-replaces all of them
// whenever any backing file changes on disk. All public entry points hold
// the provider lock for the duration of the call; a reload in progress
// never exposes a mixture of old and new tables.
type Provider struct {
	dir    string
	logger zerolog.Logger
	locker sync.Mutex

	price        *Table
	schedule     *Table
	reference    *Table
	accrued      *Table
	curves       *Table
	amortization *Table

	mtimes map[string]time.Time
}

// NewProvider eagerly loads whatever source files exist under dir. Missing
// or unreadable files yield empty tables; construction never fails.
func NewProvider(dir string, logger zerolog.Logger) *Provider {
	provider := &Provider{
		dir:    dir,
		logger: logger.With().Str("DataDir", dir).Logger(),
		mtimes: make(map[string]time.Time),
	}
	provider.reload()
	return provider
}

// GetSecurityData assembles the merged snapshot for an identifier on a
// valuation date. Sources are applied in precedence order (price, then
// reference, then schedule), followed by accrued interest resolution, the
// amortization schedule, and default synthesis for anything still unset.
// Lookup misses are never errors; every field carries a documented default.
func (provider *Provider) GetSecurityData(identifier string, date string) *SecurityData {
	provider.locker.Lock()
	defer provider.locker.Unlock()
	provider.refresh()

	id := NormalizeID(identifier)
	sd := &SecurityData{
		ISIN:                  id,
		BaseISIN:              BaseID(id),
		CouponFrequency:       2,
		Currency:              "USD",
		DayBasis:              "ACT/ACT",
		BusinessDayConvention: "NONE",
	}

	provider.applyPrice(sd, date)
	provider.applyReference(sd)
	provider.applySchedule(sd)

	sd.AccruedInterest = provider.resolveAccrued(id, date)
	if entries := provider.amortizationFor(id); len(entries) > 0 {
		sd.AmortizationSchedule = entries
	}

	provider.synthesizeDefaults(sd, date)

	return sd
}

// GetSchedule returns the schedule row for an identifier, using the
// exact-then-base fallback. The returned row must not be modified.
func (provider *Provider) GetSchedule(identifier string) (Row, bool) {
	provider.locker.Lock()
	defer provider.locker.Unlock()
	provider.refresh()

	return provider.schedule.Find(NormalizeID(identifier))
}

// GetReference returns the reference row for an identifier, using the
// exact-then-base fallback. The returned row must not be modified.
func (provider *Provider) GetReference(identifier string) (Row, bool) {
	provider.locker.Lock()
	defer provider.locker.Unlock()
	provider.refresh()

	return provider.reference.Find(NormalizeID(identifier))
}

// GetPrice returns the quote for an identifier on a date, or 0.0 when no
// quote exists for that date.
func (provider *Provider) GetPrice(identifier string, date string) float64 {
	provider.locker.Lock()
	defer provider.locker.Unlock()
	provider.refresh()

	if row, ok := provider.price.Find(NormalizeID(identifier)); ok {
		return priceOn(row, provider.price.Columns(), date)
	}
	return 0
}

// GetAccruedInterest resolves accrued interest for an identifier on a date
// through the layered fallback chain, defaulting to 0.0.
func (provider *Provider) GetAccruedInterest(identifier string, date string) float64 {
	provider.locker.Lock()
	defer provider.locker.Unlock()
	provider.refresh()

	return provider.resolveAccrued(NormalizeID(identifier), date)
}

// GetCurrency returns the currency for an identifier. The reference row's
// "Position Currency" wins over its generic "Currency", which wins over the
// price row's "Currency"; the default is USD.
func (provider *Provider) GetCurrency(identifier string) string {
	provider.locker.Lock()
	defer provider.locker.Unlock()
	provider.refresh()

	id := NormalizeID(identifier)
	if row, ok := provider.reference.Find(id); ok {
		if ccy := row["Position Currency"]; ccy != "" {
			return strings.ToUpper(ccy)
		}
		if ccy := row["Currency"]; ccy != "" {
			return strings.ToUpper(ccy)
		}
	}
	if row, ok := provider.price.Find(id); ok {
		if ccy := row["Currency"]; ccy != "" {
			return strings.ToUpper(ccy)
		}
	}
	return "USD"
}

// Stale reports whether any backing file changed since the last load,
// without triggering a reload.
func (provider *Provider) Stale() bool {
	provider.locker.Lock()
	defer provider.locker.Unlock()

	return provider.stale()
}

// Reload unconditionally reloads all six tables from disk.
func (provider *Provider) Reload() {
	provider.locker.Lock()
	defer provider.locker.Unlock()

	provider.reload()
}

// refresh re-checks staleness while holding the lock and reloads every
// table when any backing file is newer than last observed. Re-checking
// under the lock keeps racing callers from doing duplicate reloads.
func (provider *Provider) refresh() {
	if provider.stale() {
		provider.logger.Info().Msg("source files changed; reloading all tables")
		provider.reload()
	}
}

func (provider *Provider) stale() bool {
	for _, name := range sourceFiles {
		info, err := os.Stat(filepath.Join(provider.dir, name))
		if err != nil {
			continue
		}
		if last, ok := provider.mtimes[name]; !ok || info.ModTime().After(last) {
			return true
		}
	}
	return false
}

// reload replaces all six tables and re-records modification timestamps.
// Callers must hold the provider lock.
func (provider *Provider) reload() {
	provider.price = provider.loadSource(priceFile)
	provider.schedule = provider.loadSource(scheduleFile)
	provider.reference = provider.loadSource(referenceFile)
	provider.accrued = provider.loadSource(accruedFile)
	provider.curves = provider.loadSource(curveFile)
	provider.amortization = provider.loadSource(amortizationFile)

	for _, name := range sourceFiles {
		if info, err := os.Stat(filepath.Join(provider.dir, name)); err == nil {
			provider.mtimes[name] = info.ModTime()
		} else {
			delete(provider.mtimes, name)
		}
	}
}

func (provider *Provider) loadSource(name string) *Table {
	path := filepath.Join(provider.dir, name)
	table, err := loadTable(path, provider.logger)
	if err != nil {
		// a bad source file never aborts the provider; its table stays empty
		provider.logger.Error().Err(err).Str("File", name).Msg("could not load source file")
		return emptyTable()
	}
	if !table.Empty() {
		provider.logger.Debug().Str("File", name).Int("NumRows", len(table.rows)).Msg("loaded source file")
	}
	return table
}

func (provider *Provider) applyPrice(sd *SecurityData, date string) {
	row, ok := provider.price.Find(sd.ISIN)
	if !ok {
		return
	}

	sd.SecurityName = row["Security Name"]
	sd.SecurityType = row["Type"]
	sd.Funds = row["Funds"]
	if ccy := row["Currency"]; ccy != "" {
		sd.Currency = strings.ToUpper(ccy)
	}
	sd.Callable = isAffirmative(row["Callable"])
	sd.Price = priceOn(row, provider.price.Columns(), date)
}

func (provider *Provider) applyReference(sd *SecurityData) {
	row, ok := provider.reference.Find(sd.ISIN)
	if !ok {
		return
	}

	if rate, err := strconv.ParseFloat(row["Coupon Rate"], 64); err == nil {
		sd.CouponRate = rate
	}
	if basis := row["DayCountConvention"]; basis != "" {
		sd.DayBasis = basis
	}
	if bdc, present := row["BusinessDayConvention"]; present {
		sd.BusinessDayConvention = NormalizeBusinessDayConvention(bdc)
	}
	if ccy := row["Position Currency"]; ccy != "" {
		sd.Currency = strings.ToUpper(ccy)
	} else if ccy := row["Currency"]; ccy != "" {
		sd.Currency = strings.ToUpper(ccy)
	}
	if indicator, present := row["Call Indicator"]; present {
		sd.Callable = isAffirmative(indicator)
	}
	// used unless the schedule row later overrides it
	if maturity, err := ParseDate(row["Maturity Date"]); err == nil {
		sd.MaturityDate = maturity
	}
}

func (provider *Provider) applySchedule(sd *SecurityData) {
	row, ok := provider.schedule.Find(sd.ISIN)
	if !ok {
		return
	}

	if basis := row["Day Basis"]; basis != "" {
		sd.DayBasis = basis
	}
	if freq, err := strconv.ParseFloat(row["Coupon Frequency"], 64); err == nil && freq >= 1 {
		sd.CouponFrequency = int(freq)
	}
	if maturity, err := ParseDate(row["Maturity Date"]); err == nil {
		sd.MaturityDate = maturity
	}
	if issue, err := ParseDate(row["Issue Date"]); err == nil {
		sd.IssueDate = issue
	}
	if firstCoupon, err := ParseDate(row["First Coupon"]); err == nil {
		sd.FirstCouponDate = firstCoupon
	}
	if call := row["Call Schedule"]; call != "" {
		sd.CallSchedule = call
	}
	for _, alias := range paymentScheduleAliases {
		if schedule := row[alias]; schedule != "" {
			sd.PaymentSchedule = schedule
			break
		}
	}
	for _, alias := range businessDayAliases {
		if bdc, present := row[alias]; present && bdc != "" {
			sd.BusinessDayConvention = NormalizeBusinessDayConvention(bdc)
			break
		}
	}
	// the reference row is the source of truth for coupon rate; the
	// schedule fills it only while still at its zero default
	if sd.CouponRate == 0 {
		if rate, err := strconv.ParseFloat(row["Coupon Rate"], 64); err == nil {
			sd.CouponRate = rate
		}
	}
}

// synthesizeDefaults fills any field still unset after the precedence
// merge: maturity is valuation + 5 years, issue is valuation - 1 year, and
// the first coupon is issue + (12 / frequency) months approximated as
// 30-day months.
func (provider *Provider) synthesizeDefaults(sd *SecurityData, date string) {
	valuation, err := ParseDate(date)
	if err != nil {
		provider.logger.Warn().Str("Date", date).Msg("unparseable valuation date; using today")
		valuation = midnight(time.Now().UTC())
	}

	if sd.CouponFrequency < 1 {
		sd.CouponFrequency = 2
	}
	if sd.MaturityDate.IsZero() {
		sd.MaturityDate = shiftYears(valuation, 5)
	}
	if sd.IssueDate.IsZero() {
		sd.IssueDate = shiftYears(valuation, -1)
	}
	if sd.FirstCouponDate.IsZero() && !sd.IssueDate.IsZero() {
		months := 12 / sd.CouponFrequency
		sd.FirstCouponDate = sd.IssueDate.AddDate(0, 0, months*30)
	}
}
