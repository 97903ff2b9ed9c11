// SPDX-License-Identifier: MIT
// Package packs loads the eight fixed-path reference-data packs the
// sufficiency pipeline depends on (spec.md §6), verifies each against the
// curated pack manifest's SHA-256 digest, and exposes them as immutable,
// already-decoded structs shared by read-only reference across every layer.
//
// Every pack file is strict-schema JSON carrying a non-empty version field
// that must equal the expected identifier exactly; on-disk hash mismatch
// against the manifest is a hard error; there is no implicit retry or
// silent fallback other than the one documented
// two_card_combos_v2 -> two_card_combos_v1 legacy path.
package packs
