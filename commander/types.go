// SPDX-License-Identifier: MIT
package commander

import "github.com/deckforge/sufficiency/layer"

// PayloadVersion pins this layer's compiled version.
const PayloadVersion = "commander_reliability_v1"

// RampBucketID is the fixed bucket id cast-reliability metrics source
// (spec.md §4.11: "Cast metrics source the RAMP bucket only").
const RampBucketID = "ramp"

// ProtectionPrimitives is the fixed pair of primitive ids
// protection_coverage_proxy counts (spec.md §4.11).
var ProtectionPrimitives = []string{"HEXPROOF_PROTECTION", "INDESTRUCTIBLE_PROTECTION"}

// Closed code set for this layer.
const (
	CodeUpstreamCheckpointUnavailable       = "UPSTREAM_PROBABILITY_CHECKPOINT_UNAVAILABLE"
	CodeRampBucketUnavailable               = "COMMANDER_RAMP_BUCKET_UNAVAILABLE"
	CodeProtectionCoverageDenominatorZero   = "COMMANDER_PROTECTION_COVERAGE_DENOMINATOR_ZERO"
	CodeCommanderFragilityUnavailable       = "COMMANDER_FRAGILITY_UNAVAILABLE"
)

// Payload is the LayerPayload for CommanderReliability. Nullable float
// fields use pointers; nil means unavailable, signaled by the matching WARN
// code in Codes.
type Payload struct {
	layer.Meta
	CastReliabilityT3        float64  `json:"cast_reliability_t3"`
	CastReliabilityT4        float64  `json:"cast_reliability_t4"`
	CastReliabilityT6        float64  `json:"cast_reliability_t6"`
	ProtectionCoverageProxy  *float64 `json:"protection_coverage_proxy"`
	CommanderFragilityDelta  *float64 `json:"commander_fragility_delta"`
}
