// SPDX-License-Identifier: MIT
package weights

import "github.com/deckforge/sufficiency/layer"

// PayloadVersion pins this layer's compiled version.
const PayloadVersion = "weight_multiplier_v1"

// Closed code set for this layer.
const (
	CodeWeightRulesUnavailable = "WEIGHT_RULES_UNAVAILABLE"
)

// AppliedRule is one rule that stacked into its bucket's multiplier, in
// target_bucket-ascending then rule_id-ascending order.
type AppliedRule struct {
	RuleID       string  `json:"rule_id"`
	TargetBucket string  `json:"target_bucket"`
	Multiplier   float64 `json:"multiplier"`
}

// BucketMultiplier is one bucket's stacked multiplier.
type BucketMultiplier struct {
	BucketID   string  `json:"bucket_id"`
	Multiplier float64 `json:"multiplier"`
}

// Payload is the LayerPayload for WeightMultiplier.
type Payload struct {
	layer.Meta
	Buckets      []BucketMultiplier `json:"buckets"`
	AppliedRules []AppliedRule      `json:"applied_rules"`
}
