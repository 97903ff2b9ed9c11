// SPDX-License-Identifier: MIT
package resilience

import "github.com/deckforge/sufficiency/layer"

// PayloadVersion pins this layer's compiled version.
const PayloadVersion = "resilience_math_v1"

// Closed code set for this layer.
const (
	CodeBucketAlignmentInvalid          = "RESILIENCE_BUCKET_ALIGNMENT_INVALID"
	CodeUpstreamCheckpointUnavailable    = "UPSTREAM_PROBABILITY_CHECKPOINT_UNAVAILABLE"
	CodeUpstreamStressTransformUnavailable = "UPSTREAM_STRESS_TRANSFORM_UNAVAILABLE"
	CodeCommanderFragilityUnavailable    = "RESILIENCE_COMMANDER_FRAGILITY_UNAVAILABLE"
)

// Payload is the LayerPayload for ResilienceMath. CommanderFragilityDelta is
// a pointer: nil means "unavailable", signaled by
// RESILIENCE_COMMANDER_FRAGILITY_UNAVAILABLE in Codes.
type Payload struct {
	layer.Meta
	EngineContinuityAfterRemoval float64  `json:"engine_continuity_after_removal"`
	RebuildAfterWipe             float64  `json:"rebuild_after_wipe"`
	GraveyardFragilityDelta      float64  `json:"graveyard_fragility_delta"`
	CommanderFragilityDelta      *float64 `json:"commander_fragility_delta"`
}
