// SPDX-License-Identifier: MIT
package substitution

import (
	"math/big"
	"sort"

	"github.com/deckforge/sufficiency/decimal"
	"github.com/deckforge/sufficiency/layer"
	"github.com/deckforge/sufficiency/packs"
	"github.com/deckforge/sufficiency/primindex"
)

// Evaluate produces layer 4's payload.
//
// bucketSubs == nil SKIPs with BUCKET_SUBSTITUTIONS_UNAVAILABLE. engineReqs
// nil (engineReqsAvailable false) means requirement_detection never ran:
// conditional rules are treated as inactive and ENGINE_REQUIREMENTS_UNAVAILABLE
// is raised; a requirement flag referenced by a conditional rule but absent
// from a present engineReqs raises SUBSTITUTION_REQUIREMENT_FLAG_UNAVAILABLE
// instead, and that rule alone is treated as inactive.
func Evaluate(
	bucketSubs *packs.BucketSubstitutions,
	idx *primindex.PrimitiveIndex,
	playable []string,
	engineReqs map[string]bool,
	engineReqsAvailable bool,
	deckSize int,
) *Payload {
	if bucketSubs == nil {
		return skip(CodeBucketSubstitutionsUnavailable)
	}

	bucketIDs := make([]string, 0, len(bucketSubs.Buckets))
	for id := range bucketSubs.Buckets {
		bucketIDs = append(bucketIDs, id)
	}
	sort.Strings(bucketIDs)

	var codes []string
	if !engineReqsAvailable {
		codes = append(codes, CodeEngineRequirementsUnavailable)
	}

	results := make([]BucketResult, 0, len(bucketIDs))
	for _, bucketID := range bucketIDs {
		spec := bucketSubs.Buckets[bucketID]
		result, flagMissing := evaluateBucket(bucketID, spec, idx, playable, engineReqs, engineReqsAvailable, deckSize)
		if flagMissing {
			codes = append(codes, CodeSubstitutionRequirementFlagUnavailable)
		}
		results = append(results, result)
	}

	status := layer.StatusOK
	if len(codes) > 0 {
		status = layer.StatusWarn
	}

	return &Payload{
		Meta: layer.Meta{
			Version: PayloadVersion,
			Status:  status,
			Codes:   layer.SortCodes(codes),
		},
		Buckets: results,
	}
}

func evaluateBucket(
	bucketID string,
	spec packs.BucketSpec,
	idx *primindex.PrimitiveIndex,
	playable []string,
	engineReqs map[string]bool,
	engineReqsAvailable bool,
	deckSize int,
) (BucketResult, bool) {
	kPrimary := 0
	if idx != nil {
		kPrimary = idx.CountSlotsWithAnyPrimitive(spec.PrimaryPrimitives, playable)
	}

	aggregated := make(map[string]float64)
	flagMissing := false

	for _, row := range spec.BaseSubstitutions {
		aggregated[row.Primitive] += row.Weight
	}
	for _, cond := range spec.ConditionalSubstitutions {
		active := false
		if engineReqsAvailable {
			v, ok := engineReqs[cond.RequirementFlag]
			if !ok {
				flagMissing = true
			} else {
				active = v
			}
		} else {
			flagMissing = true
		}
		if !active {
			continue
		}
		for _, row := range cond.Substitutions {
			aggregated[row.Primitive] += row.Weight
		}
	}

	primitives := make([]string, 0, len(aggregated))
	for p := range aggregated {
		primitives = append(primitives, p)
	}
	sort.Strings(primitives)

	contributionSum := new(big.Rat)
	terms := make([]SubstitutionTerm, 0, len(primitives))
	for _, p := range primitives {
		weight := aggregated[p]
		kSub := 0
		if idx != nil {
			kSub = idx.CountSlotsWithAnyPrimitive([]string{p}, playable)
		}
		contribution := weight * float64(kSub)
		contributionSum.Add(contributionSum, new(big.Rat).Mul(
			new(big.Rat).SetFloat64(weight), big.NewRat(int64(kSub), 1)))
		terms = append(terms, SubstitutionTerm{
			Primitive:    p,
			Weight:       weight,
			KSubstitute:  kSub,
			Contribution: decimal.RoundRat6(new(big.Rat).SetFloat64(contribution)),
		})
	}

	effectiveK := new(big.Rat).Add(big.NewRat(int64(kPrimary), 1), contributionSum)
	effectiveK = decimal.ClampRat(effectiveK, big.NewRat(0, 1), big.NewRat(int64(deckSize), 1))
	rounded := decimal.RoundRat6(effectiveK)

	return BucketResult{
		BucketID:   bucketID,
		KPrimary:   kPrimary,
		Terms:      terms,
		EffectiveK: rounded,
		KInt:       decimal.FloorInt(rounded, 0, float64(deckSize)),
	}, flagMissing
}

func skip(reasonCode string) *Payload {
	return &Payload{
		Meta: layer.Meta{
			Version:    PayloadVersion,
			Status:     layer.StatusSkip,
			ReasonCode: reasonCode,
			Codes:      []string{},
		},
	}
}
