// SPDX-License-Identifier: MIT
// Package buildhash computes the pipeline's two content hashes:
// build_hash_v1 over the sorted layer payloads plus pipeline version pins,
// and the optional graph_hash_v2 over the compiled primitive index
// (spec.md §6).
//
// This package repurposes the teacher's converters package: that package
// was a documentation-only two-way adapter between a core graph type and
// external graph libraries, with no executable code of its own. Its role
// here is analogous — a boundary adapter between in-memory layer payloads
// and an external canonical representation — so its name and position in
// the module carry over, rewired to canonical-JSON hashing instead of
// graph-library conversion.
package buildhash
