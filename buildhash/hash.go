// SPDX-License-Identifier: MIT
package buildhash

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// CanonicalJSON serializes v with sorted object keys and stable separators.
// encoding/json already sorts map[string]V keys on Marshal; round-tripping
// v through map[string]interface{}/[]interface{} first guarantees that
// property even when v is a struct whose fields were declared in a
// non-alphabetical order, which is what spec.md §6's "canonical JSON
// (sorted keys, stable separators)" requires of every pack writer and of
// this hash.
func CanonicalJSON(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("buildhash: marshal: %w", err)
	}

	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("buildhash: unmarshal for canonicalization: %w", err)
	}

	canonical, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("buildhash: canonical marshal: %w", err)
	}
	return canonical, nil
}

// ComputeBuildHash returns build_hash_v1: the lowercase hex SHA-256 of the
// canonical JSON serialization of every compiled layer payload plus every
// layer's version pin (spec.md §6).
func ComputeBuildHash(pipelineVersions map[string]string, layers map[string]interface{}) (string, error) {
	doc := Document{PipelineVersions: pipelineVersions, Layers: layers}
	canonical, err := CanonicalJSON(doc)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// ComputeGraphHash returns graph_hash_v2: the lowercase hex SHA-256 of the
// canonical JSON serialization of the compiled primitive index snapshot.
// It is optional output (spec.md §6's `graph_hash_v2?`): a nil snapshot
// yields an empty string and no error, signaling the field should be
// omitted from the result envelope.
func ComputeGraphHash(primitiveIndexSnapshot interface{}) (string, error) {
	if primitiveIndexSnapshot == nil {
		return "", nil
	}
	canonical, err := CanonicalJSON(primitiveIndexSnapshot)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
