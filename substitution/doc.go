// SPDX-License-Identifier: MIT
// Package substitution implements layer 4, SubstitutionEngine: per bucket,
// it counts primary-primitive coverage, activates base and
// requirement-gated conditional substitution rows, aggregates them by
// primitive, and folds the result into a clamped, rounded effective_K and
// its floor K_int (spec.md §4.4).
//
// Gating a rule behind a single boolean flag and refusing to recurse
// further is the same bounded single-level fan-out the teacher's
// algorithms package uses for one BFS frontier expansion: a substitution
// row never triggers another substitution row.
package substitution
