// SPDX-License-Identifier: MIT
package packs

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// readVerified reads the file at snapshotDir/entry.Path, verifies its
// SHA-256 against entry.SHA256, and returns the raw bytes.
func readVerified(snapshotDir string, entry *ManifestEntry) ([]byte, error) {
	full := filepath.Join(snapshotDir, entry.Path)
	raw, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPackNotFound, full)
		}
		return nil, fmt.Errorf("%w: %s", ErrPackUnreadable, full)
	}

	sum := sha256.Sum256(raw)
	got := hex.EncodeToString(sum[:])
	if got != entry.SHA256 {
		return nil, fmt.Errorf("%w: %s (want %s, got %s)", ErrHashMismatch, full, entry.SHA256, got)
	}
	return raw, nil
}

// decodeVersioned unmarshals raw into dst (which must embed a "version"
// json field reachable via versionOf) and checks it equals expectedVersion
// exactly.
func decodeVersioned(raw []byte, dst interface{}, versionOf func() string, expectedVersion string) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s", ErrPackMalformed, err)
	}
	v := versionOf()
	if v == "" {
		return ErrVersionMissing
	}
	if v != expectedVersion {
		return fmt.Errorf("%w: want %s, got %s", ErrVersionMismatch, expectedVersion, v)
	}
	return nil
}
