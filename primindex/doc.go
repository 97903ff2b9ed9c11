// SPDX-License-Identifier: MIT
// Package primindex provides the PrimitiveIndex type: a read-only, in-memory
// mapping from deck slot to the set of primitives compiled onto it, plus
// the inverse mapping from primitive to slots.
//
// PrimitiveIndex is produced upstream (outside this module's scope, by the
// taxonomy compiler) and is never mutated at pipeline runtime: every layer
// that reads it does so through read-only, sorted accessors, matching the
// "iteration determinism" requirement in spec.md §9 — any mapping traversal
// must first collect keys into a sequence sorted by id, never hash-map
// order.
package primindex
