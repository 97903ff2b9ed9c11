// SPDX-License-Identifier: MIT
package primindex

import "sort"

// SlotsWithAnyPrimitive returns the sorted, deduplicated set of slots
// (restricted to playable) that carry at least one of the given primitives.
// playable is the caller's normalized (deduplicated, sorted) set of
// playable slot ids; passing nil means "no restriction" (all slots in the
// index are considered).
func (idx *PrimitiveIndex) SlotsWithAnyPrimitive(primitives []string, playable []string) []string {
	var playableSet map[string]struct{}
	if playable != nil {
		playableSet = make(map[string]struct{}, len(playable))
		for _, s := range playable {
			playableSet[s] = struct{}{}
		}
	}

	seen := make(map[string]struct{})
	for _, p := range primitives {
		for slot := range idx.byPrimitive[p] {
			if playableSet != nil {
				if _, ok := playableSet[slot]; !ok {
					continue
				}
			}
			seen[slot] = struct{}{}
		}
	}

	out := sortedKeys(seen)
	return out
}

// CountSlotsWithAnyPrimitive is the cardinality form of
// SlotsWithAnyPrimitive, used directly by layers that only need K, not the
// slot identities (e.g. SubstitutionEngine's K_primary/K_substitute).
func (idx *PrimitiveIndex) CountSlotsWithAnyPrimitive(primitives []string, playable []string) int {
	return len(idx.SlotsWithAnyPrimitive(primitives, playable))
}

// NormalizeIDs deduplicates, lexicographically sorts, and filters out empty
// strings — the normalization spec.md §4.2 requires for every slot/primitive
// list before use.
func NormalizeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
