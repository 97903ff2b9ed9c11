// SPDX-License-Identifier: MIT
// Package combopack implements layer 13, ComboPack: a bounded, deterministic
// local lookup of two-card combo pairs present in a deck, for a
// bracket-enforcement collaborator outside this module's scope.
//
// Pack loading (including the two_card_combos_v2 -> v1 legacy fallback)
// lives in package packs; this package only detects matches. The scan is
// grounded on tsp/matching.go's greedyMatch: a fixed, side-effect-free pass
// over the candidate list with deterministic tie-breaking, no recursion, no
// randomness.
package combopack
