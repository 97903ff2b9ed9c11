// SPDX-License-Identifier: MIT
package substitution

import "github.com/deckforge/sufficiency/layer"

// PayloadVersion pins this layer's compiled version.
const PayloadVersion = "substitution_engine_v1"

// Closed code set for this layer.
const (
	CodeSubstitutionRequirementFlagUnavailable = "SUBSTITUTION_REQUIREMENT_FLAG_UNAVAILABLE"
	CodeEngineRequirementsUnavailable          = "ENGINE_REQUIREMENTS_UNAVAILABLE"
	CodeBucketSubstitutionsUnavailable         = "BUCKET_SUBSTITUTIONS_UNAVAILABLE"
)

// SubstitutionTerm is one aggregated primitive's contribution within a
// bucket, in primitive-ascending order.
type SubstitutionTerm struct {
	Primitive    string  `json:"primitive"`
	Weight       float64 `json:"weight"`
	KSubstitute  int     `json:"k_substitute"`
	Contribution float64 `json:"contribution"`
}

// BucketResult is one bucket's computed K_primary/effective_K/K_int, in
// bucket-id-ascending order within Payload.Buckets.
type BucketResult struct {
	BucketID    string              `json:"bucket_id"`
	KPrimary    int                 `json:"k_primary"`
	Terms       []SubstitutionTerm  `json:"substitution_terms"`
	EffectiveK  float64             `json:"effective_k"`
	KInt        int                 `json:"k_int"`
}

// Payload is the LayerPayload for SubstitutionEngine.
type Payload struct {
	layer.Meta
	Buckets []BucketResult `json:"buckets"`
}
