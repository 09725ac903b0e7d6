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
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// idColumn is the identifier column shared by every identifier-keyed source.
const idColumn = "ISIN"

// Row is a single source record keyed by column name. Rows handed out by
// the provider must be treated as read-only.
type Row map[string]string

// Table is the in-memory copy of one source file. Identifier values are
// normalized once at load time so lookups never re-normalize stored keys.
// A Table is immutable after load; the provider swaps whole tables on
// reload rather than patching them.
type Table struct {
	columns []string
	rows    []Row
	index   map[string][]Row
}

func emptyTable() *Table {
	return &Table{index: make(map[string][]Row)}
}

// loadTable reads a CSV source wholesale. A missing file is not an error:
// it yields an empty table. Malformed lines are skipped with a warning.
func loadTable(path string, logger zerolog.Logger) (*Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("Path", path).Msg("source file not present; table empty")
			return emptyTable(), nil
		}
		return nil, err
	}
	defer fh.Close()

	reader := csv.NewReader(fh)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return emptyTable(), nil
		}
		return nil, err
	}

	table := emptyTable()
	table.columns = make([]string, len(header))
	for ii := range header {
		table.columns[ii] = strings.TrimSpace(header[ii])
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Warn().Err(err).Str("Path", path).Msg("skipping malformed line")
			continue
		}

		row := make(Row, len(table.columns))
		for ii, col := range table.columns {
			if ii < len(record) {
				row[col] = strings.TrimSpace(record[ii])
			}
		}

		if id, ok := row[idColumn]; ok {
			id = NormalizeID(id)
			row[idColumn] = id
			table.index[id] = append(table.index[id], row)
		}

		table.rows = append(table.rows, row)
	}

	return table, nil
}

// Empty reports whether the table holds no rows.
func (table *Table) Empty() bool {
	return len(table.rows) == 0
}

// Rows returns every row in file order.
func (table *Table) Rows() []Row {
	return table.rows
}

// Columns returns the header in file order.
func (table *Table) Columns() []string {
	return table.columns
}

// Lookup returns the rows whose identifier matches id exactly, in file
// order. No base-identifier fallback is applied.
func (table *Table) Lookup(id string) []Row {
	return table.index[id]
}

// Find returns the first row matching the normalized identifier. When no
// exact match exists and the identifier carries a hyphenated suffix, the
// base identifier is tried. Duplicate rows resolve to the first one in
// file order.
func (table *Table) Find(id string) (Row, bool) {
	if rows := table.index[id]; len(rows) > 0 {
		return rows[0], true
	}
	if strings.Contains(id, "-") {
		if rows := table.index[BaseID(id)]; len(rows) > 0 {
			return rows[0], true
		}
	}
	return nil, false
}

// FindAll returns every row for the identifier, falling back to the base
// identifier when the exact key has none.
func (table *Table) FindAll(id string) []Row {
	if rows := table.index[id]; len(rows) > 0 {
		return rows
	}
	if strings.Contains(id, "-") {
		return table.index[BaseID(id)]
	}
	return nil
}
