// SPDX-License-Identifier: MIT
// Package coherence implements layer 2, Coherence: dead-slot detection, the
// primitive concentration index, and pairwise Jaccard overlap over the
// primitive index (spec.md §4.2).
//
// The playable-slot set is sorted and deduplicated before use, the same
// normalize-then-traverse discipline the teacher's core adjacency list
// applies before any graph algorithm runs, so iteration order (and hence
// every tie-break in the top-8 table) never depends on map order.
package coherence
