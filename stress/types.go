// SPDX-License-Identifier: MIT
package stress

import "github.com/deckforge/sufficiency/layer"

// DefinitionPayloadVersion pins layer 8's compiled version.
const DefinitionPayloadVersion = "stress_model_definition_v1"

// TransformPayloadVersion pins layer 9's compiled version.
const TransformPayloadVersion = "stress_transform_v1"

// Operator kinds, the closed vocabulary spec.md §4.9 defines.
const (
	OpTargetedRemoval     = "TARGETED_REMOVAL"
	OpBoardWipe           = "BOARD_WIPE"
	OpGraveyardHateWindow = "GRAVEYARD_HATE_WINDOW"
	OpStaxTax             = "STAX_TAX"
)

// Closed code set for layer 8.
const (
	CodeStressModelsUnavailable  = "STRESS_MODELS_UNAVAILABLE"
	CodeFormatStressUnavailable  = "FORMAT_STRESS_UNAVAILABLE"
	CodeStressModelOverrideUnknown = "STRESS_MODEL_OVERRIDE_UNKNOWN"
	CodeStressModelUnresolved    = "STRESS_MODEL_UNRESOLVED"
)

// Closed code set for layer 9.
const (
	CodeUpstreamStressModelUnavailable = "UPSTREAM_STRESS_MODEL_DEFINITION_UNAVAILABLE"
	CodeUpstreamCheckpointUnavailable  = "UPSTREAM_PROBABILITY_CHECKPOINT_UNAVAILABLE"
)

// Operator is one canonically-parsed stress operator, carrying only the
// parameters its Op uses; the rest are zero.
type Operator struct {
	Op                      string  `json:"op"`
	Count                   int     `json:"count,omitempty"`
	SurvivingEngineFraction float64 `json:"surviving_engine_fraction,omitempty"`
	GraveyardPenalty        float64 `json:"graveyard_penalty,omitempty"`
	InflationFactor         float64 `json:"inflation_factor,omitempty"`
	ByTurn                  int     `json:"by_turn,omitempty"`
	Turns                   int     `json:"turns,omitempty"`
}

// DefinitionPayload is the LayerPayload for StressModelDefinition.
type DefinitionPayload struct {
	layer.Meta
	SelectedModelID string     `json:"selected_model_id"`
	Operators       []Operator `json:"operators"`
}

// CheckpointSnapshot is one bucket's probabilities at one checkpoint,
// before or after an operator.
type CheckpointSnapshot struct {
	Checkpoint int     `json:"checkpoint"`
	PGE1       float64 `json:"p_ge_1"`
}

// OperatorImpact records one operator's effect on one bucket.
type OperatorImpact struct {
	OperatorIndex int                  `json:"operator_index"`
	Op            string               `json:"op"`
	BucketID      string               `json:"bucket_id"`
	KBefore       float64              `json:"effective_k_before"`
	KAfter        float64              `json:"effective_k_after"`
	ProbsBefore   []CheckpointSnapshot `json:"probabilities_before"`
	ProbsAfter    []CheckpointSnapshot `json:"probabilities_after"`
}

// BucketStressResult is one bucket's post-transform state.
type BucketStressResult struct {
	BucketID    string               `json:"bucket_id"`
	EffectiveK  float64              `json:"effective_k"`
	KInt        int                  `json:"k_int"`
	Checkpoints []CheckpointSnapshot `json:"checkpoints"`
}

// TransformPayload is the LayerPayload for StressTransform.
type TransformPayload struct {
	layer.Meta
	Buckets         []BucketStressResult `json:"buckets"`
	OperatorImpacts []OperatorImpact     `json:"operator_impacts"`
}
