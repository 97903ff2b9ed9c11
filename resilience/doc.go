// SPDX-License-Identifier: MIT
// Package resilience implements layer 10, ResilienceMath: it aligns the
// baseline (layer 7) and stress (layer 9) bucket sets and derives
// engine_continuity_after_removal, rebuild_after_wipe and
// graveyard_fragility_delta from the operator impact trail;
// commander_fragility_delta depends only on the commander_dependent
// classification (spec.md §4.10).
//
// Comparing a metric computed before a perturbation against the same
// metric after it, with a documented safe-ratio policy at the zero
// boundary, follows the same before/after tour-cost comparison the
// teacher's tsp/cost.go applies when scoring a 2-opt move.
package resilience
