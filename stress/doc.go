// SPDX-License-Identifier: MIT
// Package stress implements layers 8 and 9: StressModelDefinition selects a
// named stress model by a fixed precedence chain, and StressTransform
// applies that model's operators — in canonical order, never data-file
// order — to the baseline checkpoint probabilities (spec.md §4.8, §4.9).
//
// Selection precedence mirrors the teacher's builder/options.go pattern of
// layering explicit overrides over scoped defaults over a global default,
// evaluated in a fixed order rather than merged. Operator application over
// a residual quantity (effective_K) that shrinks monotonically as operators
// apply follows the same mutate-then-requery discipline the teacher's
// flow/dinic.go uses for residual capacity after each augmenting path.
package stress
