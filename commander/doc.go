// SPDX-License-Identifier: MIT
// Package commander implements layer 11, CommanderReliability: cast
// reliability at the three fixed checkpoints sourced from the RAMP bucket
// only, the protection coverage proxy over playable non-commander slots,
// and the commander fragility delta comparing baseline and stress RAMP
// means (spec.md §4.11).
//
// A thin derivation over layers 7/9's already-computed RAMP probabilities
// and the primitive index's slot/primitive membership — no algorithm of
// its own to ground beyond the ratio-and-mean arithmetic those packages
// already establish.
package commander
