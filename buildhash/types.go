// SPDX-License-Identifier: MIT
package buildhash

// Version identifiers for the two content hashes this package computes.
const (
	BuildHashVersion = "build_hash_v1"
	GraphHashVersion = "graph_hash_v2"
)

// Document is the canonical input to ComputeBuildHash: the full set of
// compiled layer payloads keyed by layer name, plus the version pin every
// layer reports under result.pipeline_versions.<layer_name>_version
// (spec.md §6).
type Document struct {
	PipelineVersions map[string]string      `json:"pipeline_versions"`
	Layers           map[string]interface{} `json:"layers"`
}
