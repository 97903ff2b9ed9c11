// SPDX-License-Identifier: MIT
package weights

import (
	"sort"

	"github.com/deckforge/sufficiency/decimal"
	"github.com/deckforge/sufficiency/layer"
	"github.com/deckforge/sufficiency/packs"
)

// Evaluate produces layer 5's payload.
//
// weightRules == nil SKIPs with WEIGHT_RULES_UNAVAILABLE. A format absent
// from weightRules.FormatDefaults is treated as defining zero rules — every
// candidate bucket keeps multiplier 1.0 — since spec.md §4.5 does not carve
// out a distinct SKIP code for that case the way other format-scoped packs
// do.
func Evaluate(weightRules *packs.WeightRules, format string, substitutionBucketIDs []string, engineReqs map[string]bool) *Payload {
	if weightRules == nil {
		return &Payload{
			Meta: layer.Meta{
				Version:    PayloadVersion,
				Status:     layer.StatusSkip,
				ReasonCode: CodeWeightRulesUnavailable,
				Codes:      []string{},
			},
		}
	}

	var rules []packs.WeightRule
	if fd, ok := weightRules.FormatDefaults[format]; ok {
		rules = fd.Rules
	}

	bucketSet := make(map[string]struct{}, len(substitutionBucketIDs))
	for _, b := range substitutionBucketIDs {
		bucketSet[b] = struct{}{}
	}
	for _, r := range rules {
		bucketSet[r.TargetBucket] = struct{}{}
	}
	buckets := make([]string, 0, len(bucketSet))
	for b := range bucketSet {
		buckets = append(buckets, b)
	}
	sort.Strings(buckets)

	sortedRules := make([]packs.WeightRule, len(rules))
	copy(sortedRules, rules)
	sort.Slice(sortedRules, func(i, j int) bool {
		if sortedRules[i].TargetBucket != sortedRules[j].TargetBucket {
			return sortedRules[i].TargetBucket < sortedRules[j].TargetBucket
		}
		return sortedRules[i].RuleID < sortedRules[j].RuleID
	})

	multipliers := make(map[string]float64, len(buckets))
	for _, b := range buckets {
		multipliers[b] = 1.0
	}

	applied := make([]AppliedRule, 0, len(sortedRules))
	for _, r := range sortedRules {
		if engineReqs[r.RequirementFlag] != true {
			continue
		}
		multipliers[r.TargetBucket] *= r.Multiplier
		applied = append(applied, AppliedRule{
			RuleID:       r.RuleID,
			TargetBucket: r.TargetBucket,
			Multiplier:   r.Multiplier,
		})
	}

	results := make([]BucketMultiplier, 0, len(buckets))
	for _, b := range buckets {
		rounded, err := decimal.Round6(multipliers[b])
		if err != nil {
			rounded = 1.0
		}
		results = append(results, BucketMultiplier{BucketID: b, Multiplier: rounded})
	}

	return &Payload{
		Meta: layer.Meta{
			Version: PayloadVersion,
			Status:  layer.StatusOK,
			Codes:   []string{},
		},
		Buckets:      results,
		AppliedRules: applied,
	}
}
