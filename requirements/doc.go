// SPDX-License-Identifier: MIT
// Package requirements implements layer 1, RequirementDetection: it
// consumes the primitive index and the dependency_signatures_v1 pack and
// produces the boolean engine_requirements map plus the commander_dependent
// classification (spec.md §4.1).
//
// Each requirement flag's signature is evaluated as a closed
// presence/absence predicate over the primitive index — true iff every
// primitive named in its AllOf list is present somewhere in the index and
// none named in its NoneOf list is — the same "is this vertex set
// reachable/present" discipline the teacher's algorithms package uses for
// BFS visited-set membership, adapted from graph reachability to primitive
// presence.
package requirements
