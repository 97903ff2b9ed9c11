// Package sufficiency computes a deterministic, closed-world deck
// sufficiency report for a 99-card singleton card game.
//
// Given a compiled per-card primitive index, a profile/bracket selection,
// and a snapshot of reference data packs, the pipeline produces a
// versioned, hash-stable bundle of numeric layers: requirement detection,
// deck coherence, mulligan modeling, substitution-weighted probabilities,
// stress-adjusted probabilities, resilience and commander-reliability
// metrics, and an aggregated PASS/WARN/FAIL verdict.
//
// The thirteen layers live in their own packages (primindex, requirements,
// coherence, mulligan, substitution, weights, probcore, checkpoint, stress,
// resilience, commander, suffsummary, combopack) and are wired together by
// package pipeline. Data packs are loaded by package packs; the final
// content hash is computed by package buildhash.
//
// Everything under this module is pure CPU-bound arithmetic over small
// fixed-size structures: no network access, no floating-point-order
// dependence. The one random value in a BuildResult, RunID, is a
// log-correlation id excluded from both content hashes, so determinism of
// the hashed output is unaffected.
package sufficiency
