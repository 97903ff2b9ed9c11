// SPDX-License-Identifier: MIT
// Package mulligan implements layer 3, MulliganModel: for the deck's format,
// it produces the clamped, rounded effective_n for every mulligan policy
// across the four frozen checkpoints {7,9,10,12} (spec.md §4.3).
//
// The policy/checkpoint table is addressed the same way the teacher's
// gridgraph package addresses its fixed-dimension cell grid: two closed key
// sets (policy id, checkpoint number). Rows are a slice in ascending policy
// id order; each row's values are a map filled for exactly the four frozen
// checkpoints, so neither depends on pack iteration order.
package mulligan
