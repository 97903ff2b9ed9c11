// SPDX-License-Identifier: MIT
// errors.go — sentinel errors for package packs.
//
// Every message is prefixed with "packs: ..." for consistency and easy
// grepping across logs. Callers MUST use errors.Is to branch on semantics.

package packs

import "errors"

var (
	// ErrPackNotFound is returned when a pack's file does not exist under
	// the snapshot directory.
	ErrPackNotFound = errors.New("packs: pack file not found")

	// ErrPackUnreadable is returned when a pack file exists but cannot be
	// read (permissions, I/O error).
	ErrPackUnreadable = errors.New("packs: pack file unreadable")

	// ErrPackMalformed is returned when a pack file is not valid JSON or
	// does not match its expected schema shape.
	ErrPackMalformed = errors.New("packs: pack file malformed")

	// ErrVersionMissing is returned when a pack's "version" field is absent
	// or empty.
	ErrVersionMissing = errors.New("packs: version field missing")

	// ErrVersionMismatch is returned when a pack's "version" field does not
	// equal the expected identifier exactly.
	ErrVersionMismatch = errors.New("packs: version mismatch")

	// ErrHashMismatch is returned when a pack's on-disk SHA-256 digest does
	// not match the curated manifest entry.
	ErrHashMismatch = errors.New("packs: sha256 mismatch against manifest")

	// ErrManifestEntryNotFound is returned when resolve_pack_entry finds no
	// candidate for the requested (pack_id, pack_version).
	ErrManifestEntryNotFound = errors.New("packs: no manifest entry found")

	// ErrManifestDuplicateEntry is returned when the curated manifest
	// contains two entries with the same (pack_id, pack_version).
	ErrManifestDuplicateEntry = errors.New("packs: duplicate (pack_id, pack_version) in manifest")

	// ErrManifestBadPath is returned when a manifest entry's path is
	// absolute, not in normalized (filepath.Clean) form, or contains a
	// traversal segment ("..").
	ErrManifestBadPath = errors.New("packs: manifest path is absolute, not normalized, or contains traversal")

	// ErrManifestBadSHA256 is returned when a manifest entry's sha256 field
	// is not exactly 64 lowercase hex characters.
	ErrManifestBadSHA256 = errors.New("packs: manifest sha256 is not 64 lowercase hex characters")
)
