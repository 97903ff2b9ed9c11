// SPDX-License-Identifier: MIT
package probcore

import "github.com/deckforge/sufficiency/decimal"

// ValidateKIntPolicy checks that kInt == floor(clamp(effectiveK, 0, n)),
// the invariant every layer that consumes a substitution bucket's K must
// hold (spec.md §3 "Invariants", §4.6 thin wrapper). n is normally the deck
// size constant N=99, passed explicitly so the check has no hidden global.
func ValidateKIntPolicy(effectiveK float64, kInt int, n int) error {
	want := decimal.FloorInt(effectiveK, 0, float64(n))
	if want != kInt {
		return ErrKIntPolicyViolation
	}
	return nil
}
