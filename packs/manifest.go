// SPDX-License-Identifier: MIT
package packs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// ManifestEntry is one row of the curated pack manifest: a repo-relative
// path to a pack file, its declared SHA-256 digest, and the bookkeeping
// fields resolve_pack_entry's stable sort key uses.
type ManifestEntry struct {
	PackID      string `json:"pack_id"`
	PackVersion string `json:"pack_version"`
	Path        string `json:"path"`
	SHA256      string `json:"sha256"`
	LoadOrder   int    `json:"load_order"`
	CreatedBy   string `json:"created_by"`
}

// Manifest is the curated pack manifest: an ordered set of ManifestEntry
// rows, one per known (pack_id, pack_version) pair.
type Manifest struct {
	Entries []ManifestEntry
}

var sha256Pattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// LoadManifest reads and validates the curated pack manifest at path.
//
// Validation enforces: every path is repo-relative, normalized, with no
// absolute or traversal segments; every sha256 is 64 lowercase hex
// characters; no duplicate (pack_id, pack_version) pairs.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPackNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s", ErrPackUnreadable, path)
	}

	var doc struct {
		Entries []ManifestEntry `json:"entries"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPackMalformed, err)
	}

	seen := make(map[string]struct{}, len(doc.Entries))
	for _, e := range doc.Entries {
		slashed := filepath.ToSlash(e.Path)
		if filepath.IsAbs(e.Path) || strings.Contains(slashed, "..") ||
			filepath.ToSlash(filepath.Clean(e.Path)) != slashed {
			return nil, fmt.Errorf("%w: %s", ErrManifestBadPath, e.Path)
		}
		if !sha256Pattern.MatchString(e.SHA256) {
			return nil, fmt.Errorf("%w: %s", ErrManifestBadSHA256, e.SHA256)
		}
		key := e.PackID + "\x00" + e.PackVersion
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %s/%s", ErrManifestDuplicateEntry, e.PackID, e.PackVersion)
		}
		seen[key] = struct{}{}
	}

	return &Manifest{Entries: doc.Entries}, nil
}

// Resolve returns the manifest entry for packID, optionally pinned to a
// specific packVersion. When packVersion is empty, it returns the
// lexicographically-last candidate under the stable sort key
// (load_order, pack_id, pack_version, path, sha256, created_by).
func (m *Manifest) Resolve(packID, packVersion string) (*ManifestEntry, error) {
	var candidates []ManifestEntry
	for _, e := range m.Entries {
		if e.PackID != packID {
			continue
		}
		if packVersion != "" && e.PackVersion != packVersion {
			continue
		}
		candidates = append(candidates, e)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %s/%s", ErrManifestEntryNotFound, packID, packVersion)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return manifestSortKey(candidates[i]) < manifestSortKey(candidates[j])
	})
	last := candidates[len(candidates)-1]
	return &last, nil
}

func manifestSortKey(e ManifestEntry) string {
	return fmt.Sprintf("%020d\x00%s\x00%s\x00%s\x00%s\x00%s",
		e.LoadOrder, e.PackID, e.PackVersion, e.Path, e.SHA256, e.CreatedBy)
}
