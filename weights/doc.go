// SPDX-License-Identifier: MIT
// Package weights implements layer 5, WeightMultiplier: it resolves the
// candidate bucket set, applies every weight_rules_v1 rule whose
// requirement flag is exactly boolean true, and stacks active multipliers
// multiplicatively per bucket (spec.md §4.5).
//
// Rule accumulation walks a canonically sorted (target_bucket, rule_id)
// sequence and folds into each bucket's running product, the same
// sorted-edge-then-accumulate discipline the teacher's prim_kruskal package
// uses for building a minimum spanning tree from a sorted edge list.
package weights
