// SPDX-License-Identifier: MIT
package coherence

import (
	"math/big"
	"sort"

	"github.com/deckforge/sufficiency/decimal"
	"github.com/deckforge/sufficiency/layer"
	"github.com/deckforge/sufficiency/primindex"
)

// ratio returns the exact rational num/den.
func ratio(num, den int) *big.Rat {
	return big.NewRat(int64(num), int64(den))
}

// Evaluate produces layer 2's payload from the primitive index and the
// deck's playable slot ids.
//
// idx == nil SKIPs with PRIMITIVE_INDEX_UNAVAILABLE. playable is normalized
// (deduplicated, sorted, non-empty-filtered) before use, per spec.md §4.2.
func Evaluate(idx *primindex.PrimitiveIndex, playable []string) *Payload {
	if idx == nil {
		return &Payload{
			Meta: layer.Meta{
				Version:    PayloadVersion,
				Status:     layer.StatusSkip,
				ReasonCode: CodePrimitiveIndexUnavailable,
				Codes:      []string{},
			},
		}
	}

	slots := normalize(playable)

	var dead int
	var populated []string
	slotPrimitives := make(map[string][]string, len(slots))
	for _, s := range slots {
		prims := idx.PrimitivesOfSlot(s)
		if len(prims) == 0 {
			dead++
			continue
		}
		populated = append(populated, s)
		slotPrimitives[s] = prims
	}

	concentration := concentrationIndex(populated, slotPrimitives)
	overlap := overlapScore(populated, slotPrimitives)
	top := topPrimitives(populated, slotPrimitives)

	codes := []string{}
	status := layer.StatusOK
	if dead > 0 {
		status = layer.StatusWarn
		codes = append(codes, CodeDeadSlotsPresent)
	}

	return &Payload{
		Meta: layer.Meta{
			Version: PayloadVersion,
			Status:  status,
			Codes:   layer.SortCodes(codes),
		},
		DeadSlotCount:               dead,
		PrimitiveConcentrationIndex: concentration,
		OverlapScore:                overlap,
		TopPrimitives:               top,
	}
}

// normalize deduplicates, sorts ascending, and drops empty ids.
func normalize(ids []string) []string {
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

func concentrationIndex(populated []string, slotPrimitives map[string][]string) float64 {
	d := len(populated)
	if d == 0 {
		return 0.0
	}
	coverage := coverageByPrimitive(populated, slotPrimitives)
	maxCoverage := 0
	for _, c := range coverage {
		if c > maxCoverage {
			maxCoverage = c
		}
	}
	r := decimal.RoundRat6(ratio(maxCoverage, d))
	return r
}

func coverageByPrimitive(populated []string, slotPrimitives map[string][]string) map[string]int {
	coverage := make(map[string]int)
	for _, s := range populated {
		for _, p := range slotPrimitives[s] {
			coverage[p]++
		}
	}
	return coverage
}

func overlapScore(populated []string, slotPrimitives map[string][]string) float64 {
	if len(populated) < 2 {
		return 0.0
	}

	sets := make(map[string]map[string]struct{}, len(populated))
	for _, s := range populated {
		set := make(map[string]struct{}, len(slotPrimitives[s]))
		for _, p := range slotPrimitives[s] {
			set[p] = struct{}{}
		}
		sets[s] = set
	}

	sum := new(big.Rat)
	var pairs int
	for i := 0; i < len(populated); i++ {
		for j := i + 1; j < len(populated); j++ {
			sum.Add(sum, jaccard(sets[populated[i]], sets[populated[j]]))
			pairs++
		}
	}
	if pairs == 0 {
		return 0.0
	}
	avg := new(big.Rat).Quo(sum, big.NewRat(int64(pairs), 1))
	avg = decimal.ClampRat(avg, big.NewRat(0, 1), big.NewRat(1, 1))
	return decimal.RoundRat6(avg)
}

// jaccard returns the exact rational |A∩B|/|A∪B|; 0/1 when both sets are
// empty, matching spec.md §4.2's clamp-to-[0,1] discipline at the limit.
func jaccard(a, b map[string]struct{}) *big.Rat {
	if len(a) == 0 && len(b) == 0 {
		return big.NewRat(0, 1)
	}
	inter := 0
	for p := range a {
		if _, ok := b[p]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return big.NewRat(0, 1)
	}
	return ratio(inter, union)
}

func topPrimitives(populated []string, slotPrimitives map[string][]string) []PrimitiveShare {
	d := len(populated)
	coverage := coverageByPrimitive(populated, slotPrimitives)

	primitives := make([]string, 0, len(coverage))
	for p := range coverage {
		primitives = append(primitives, p)
	}
	sort.Strings(primitives)

	rows := make([]PrimitiveShare, 0, len(primitives))
	for _, p := range primitives {
		var share float64
		if d > 0 {
			share = decimal.RoundRat6(ratio(coverage[p], d))
		}
		rows = append(rows, PrimitiveShare{
			PrimitiveID: p,
			Coverage:    coverage[p],
			Share:       share,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Share != rows[j].Share {
			return rows[i].Share > rows[j].Share
		}
		return rows[i].PrimitiveID < rows[j].PrimitiveID
	})

	if len(rows) > 8 {
		rows = rows[:8]
	}
	return rows
}
