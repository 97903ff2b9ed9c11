// SPDX-License-Identifier: MIT
package stress

import (
	"sort"

	"github.com/deckforge/sufficiency/packs"
)

// parseOperator converts a pack-level OperatorSpec into its tagged Operator
// form, keeping only the fields its Op uses.
func parseOperator(spec packs.OperatorSpec) Operator {
	op := Operator{Op: spec.Op}
	if spec.Count != nil && spec.Op == OpTargetedRemoval {
		op.Count = *spec.Count
	}
	if spec.SurvivingEngineFraction != nil && spec.Op == OpBoardWipe {
		op.SurvivingEngineFraction = *spec.SurvivingEngineFraction
	}
	if spec.GraveyardPenalty != nil && spec.Op == OpGraveyardHateWindow {
		op.GraveyardPenalty = *spec.GraveyardPenalty
	}
	if spec.InflationFactor != nil && spec.Op == OpStaxTax {
		op.InflationFactor = *spec.InflationFactor
	}
	if spec.ByTurn != nil && (spec.Op == OpBoardWipe || spec.Op == OpStaxTax) {
		op.ByTurn = *spec.ByTurn
	}
	if spec.Turns != nil && spec.Op == OpGraveyardHateWindow {
		op.Turns = *spec.Turns
	}
	return op
}

// canonicalOrder sorts operators by op ascending, then by their full
// parameter tuple ascending — the fixed, data-file-independent order
// spec.md §4.8/§4.9 require both for StressModelDefinition's output and for
// StressTransform's application order.
func canonicalOrder(ops []Operator) []Operator {
	out := make([]Operator, len(ops))
	copy(out, ops)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Op != b.Op {
			return a.Op < b.Op
		}
		if a.Count != b.Count {
			return a.Count < b.Count
		}
		if a.SurvivingEngineFraction != b.SurvivingEngineFraction {
			return a.SurvivingEngineFraction < b.SurvivingEngineFraction
		}
		if a.GraveyardPenalty != b.GraveyardPenalty {
			return a.GraveyardPenalty < b.GraveyardPenalty
		}
		if a.InflationFactor != b.InflationFactor {
			return a.InflationFactor < b.InflationFactor
		}
		if a.ByTurn != b.ByTurn {
			return a.ByTurn < b.ByTurn
		}
		return a.Turns < b.Turns
	})
	return out
}
