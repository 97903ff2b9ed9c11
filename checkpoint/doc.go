// SPDX-License-Identifier: MIT
// Package checkpoint implements layer 7, ProbabilityCheckpoint: for the
// format's default mulligan policy, it floors each checkpoint's effective_n
// and evaluates hypergeom_p_ge_1 for every substitution bucket at each of
// the four frozen checkpoints (spec.md §4.7).
//
// A thin composition over mulligan and probcore — no algorithm of its own
// to ground beyond the floor-then-lookup pattern both of those packages
// already establish.
package checkpoint
