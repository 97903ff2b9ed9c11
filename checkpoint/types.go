// SPDX-License-Identifier: MIT
package checkpoint

import "github.com/deckforge/sufficiency/layer"

// PayloadVersion pins this layer's compiled version.
const PayloadVersion = "probability_checkpoint_v1"

// Closed code set for this layer.
const (
	CodeMulliganModelUnavailable      = "UPSTREAM_MULLIGAN_MODEL_UNAVAILABLE"
	CodeSubstitutionEngineUnavailable = "UPSTREAM_SUBSTITUTION_ENGINE_UNAVAILABLE"
	CodeEffectiveNFloored             = "PROBABILITY_CHECKPOINT_EFFECTIVE_N_FLOORED"
)

// CheckpointProbability is one bucket's p_ge_1 at one checkpoint.
type CheckpointProbability struct {
	Checkpoint int     `json:"checkpoint"`
	NInt       int     `json:"n_int"`
	PGE1       float64 `json:"p_ge_1"`
}

// BucketCheckpoints is one bucket's probabilities across all four
// checkpoints, in Checkpoints order.
type BucketCheckpoints struct {
	BucketID      string                  `json:"bucket_id"`
	Checkpoints   []CheckpointProbability `json:"checkpoints"`
}

// Payload is the LayerPayload for ProbabilityCheckpoint.
type Payload struct {
	layer.Meta
	Policy  string              `json:"policy"`
	Buckets []BucketCheckpoints `json:"buckets"`
}
