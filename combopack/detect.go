// SPDX-License-Identifier: MIT
package combopack

import (
	"sort"

	"github.com/deckforge/sufficiency/packs"
)

// DetectTwoCardCombos returns the bounded, deterministic list of two-card
// combos from combos whose both card keys appear in deckCardKeys, sorted
// lexicographically by (a, b) and capped at maxMatches (DefaultMaxMatches
// when maxMatches<=0). A nil combos pack yields an empty, non-nil result:
// this auxiliary layer has no SKIP/FAIL vocabulary of its own (spec.md
// §4.13) and reports pack unavailability upstream via packs.Set instead.
func DetectTwoCardCombos(deckCardKeys []string, combos *packs.TwoCardCombos, maxMatches int) []Match {
	if maxMatches <= 0 {
		maxMatches = DefaultMaxMatches
	}
	if combos == nil {
		return []Match{}
	}

	present := make(map[string]struct{}, len(deckCardKeys))
	for _, k := range deckCardKeys {
		present[k] = struct{}{}
	}

	matches := make([]Match, 0, len(combos.Combos))
	for _, c := range combos.Combos {
		if _, ok := present[c.A]; !ok {
			continue
		}
		if _, ok := present[c.B]; !ok {
			continue
		}
		a, b := c.A, c.B
		if a > b {
			a, b = b, a
		}
		matches = append(matches, Match{A: a, B: b, VariantIDs: c.VariantIDs})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].A != matches[j].A {
			return matches[i].A < matches[j].A
		}
		return matches[i].B < matches[j].B
	})

	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}
	return matches
}
