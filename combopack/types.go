// SPDX-License-Identifier: MIT
package combopack

// DefaultMaxMatches is the bound applied when a caller passes maxMatches<=0
// to DetectTwoCardCombos (spec.md §4.13).
const DefaultMaxMatches = 25

// Match is one deck-present two-card combo pair, in deck-key-normalized
// form: A<B lexicographically.
type Match struct {
	A          string   `json:"a"`
	B          string   `json:"b"`
	VariantIDs []string `json:"variant_ids"`
}
