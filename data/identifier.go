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

import "strings"

// dashVariants maps the Unicode dash code points that show up in
// hand-maintained source files to the ASCII hyphen.
var dashVariants = strings.NewReplacer(
	"‐", "-", // hyphen
	"‑", "-", // non-breaking hyphen
	"‒", "-", // figure dash
	"–", "-", // en dash
	"—", "-", // em dash
	"―", "-", // horizontal bar
)

// NormalizeID canonicalizes a raw security identifier: surrounding
// whitespace is trimmed, the string is upper-cased, and every Unicode dash
// variant becomes an ASCII hyphen. NormalizeID never fails; a blank input
// normalizes to the empty string. The function is idempotent.
func NormalizeID(raw string) string {
	id := strings.ToUpper(strings.TrimSpace(raw))
	return dashVariants.Replace(id)
}

// BaseID strips a hyphenated suffix from an identifier, returning the
// segment before the first hyphen. The input is normalized first, so
// BaseID(x) == BaseID(NormalizeID(x)) for any x. Identifiers carrying more
// than one hyphen still collapse to the first segment; downstream fallback
// lookups depend on that exact behavior.
func BaseID(id string) string {
	id = NormalizeID(id)
	if idx := strings.Index(id, "-"); idx >= 0 {
		return id[:idx]
	}
	return id
}
