// SPDX-License-Identifier: MIT
package mulligan

import "github.com/deckforge/sufficiency/layer"

// PayloadVersion pins this layer's compiled version.
const PayloadVersion = "mulligan_model_v1"

// Checkpoints is the frozen, ordered set of draw-step checkpoints every
// mulligan policy is evaluated at (spec.md §4.3).
var Checkpoints = []int{7, 9, 10, 12}

// Closed code set for this layer.
const (
	CodeMulliganAssumptionsUnavailable = "MULLIGAN_ASSUMPTIONS_UNAVAILABLE"
	CodeFormatAssumptionsUnavailable   = "FORMAT_ASSUMPTIONS_UNAVAILABLE"
)

// PolicyRow is one mulligan policy's effective_n across the four
// checkpoints, keyed by checkpoint number (one entry per Checkpoints value).
type PolicyRow struct {
	PolicyID         string             `json:"policy_id"`
	EffectiveNByCheckpoint map[int]float64 `json:"effective_n_by_checkpoint"`
}

// Payload is the LayerPayload for MulliganModel.
type Payload struct {
	layer.Meta
	DefaultPolicy string      `json:"default_policy"`
	Policies      []PolicyRow `json:"policies"`
}
