// SPDX-License-Identifier: MIT
package resilience

import (
	"math/big"
	"sort"

	"github.com/deckforge/sufficiency/checkpoint"
	"github.com/deckforge/sufficiency/decimal"
	"github.com/deckforge/sufficiency/layer"
	"github.com/deckforge/sufficiency/requirements"
	"github.com/deckforge/sufficiency/stress"
	"github.com/deckforge/sufficiency/substitution"
)

// Evaluate produces layer 10's payload.
//
// checkpointPayload supplies the baseline bucket set (layer 7);
// substitutionPayload supplies each bucket's baseline effective_K for the
// fallback ratios; stressPayload supplies the post-transform bucket set and
// operator impact trail (layer 9).
func Evaluate(
	checkpointPayload *checkpoint.Payload,
	substitutionPayload *substitution.Payload,
	stressPayload *stress.TransformPayload,
	commanderDependent requirements.CommanderDependent,
) *Payload {
	if checkpointPayload == nil || !checkpointPayload.Ready() {
		return skip(CodeUpstreamCheckpointUnavailable)
	}
	if stressPayload == nil || !stressPayload.Ready() {
		return skip(CodeUpstreamStressTransformUnavailable)
	}

	baselineIDs := bucketIDSet(checkpointPayload.Buckets, func(b checkpoint.BucketCheckpoints) string { return b.BucketID })
	stressIDs := bucketIDSet(stressPayload.Buckets, func(b stress.BucketStressResult) string { return b.BucketID })
	if !sameSet(baselineIDs, stressIDs) {
		return &Payload{
			Meta: layer.Meta{
				Version:    PayloadVersion,
				Status:     layer.StatusError,
				ReasonCode: CodeBucketAlignmentInvalid,
				Codes:      []string{CodeBucketAlignmentInvalid},
			},
		}
	}

	buckets := sortedKeys(baselineIDs)

	baselineK := make(map[string]float64, len(buckets))
	if substitutionPayload != nil {
		for _, b := range substitutionPayload.Buckets {
			baselineK[b.BucketID] = b.EffectiveK
		}
	}
	stressK := make(map[string]float64, len(buckets))
	for _, b := range stressPayload.Buckets {
		stressK[b.BucketID] = b.EffectiveK
	}

	firstRemoval, lastRemoval := firstLastImpact(stressPayload.OperatorImpacts, stress.OpTargetedRemoval)
	firstWipe, lastWipe := firstLastImpact(stressPayload.OperatorImpacts, stress.OpBoardWipe)
	firstGraveyard, lastGraveyard := firstLastImpact(stressPayload.OperatorImpacts, stress.OpGraveyardHateWindow)

	continuity := engineContinuity(buckets, firstRemoval, lastRemoval, baselineK, stressK)
	rebuild := rebuildAfterWipe(buckets, firstWipe, lastWipe)
	graveyard := graveyardFragility(buckets, firstGraveyard, lastGraveyard)

	var codes []string
	var commanderFragility *float64
	if commanderDependent == requirements.CommanderDependentLow {
		zero := 0.0
		commanderFragility = &zero
	} else {
		codes = append(codes, CodeCommanderFragilityUnavailable)
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
		EngineContinuityAfterRemoval: continuity,
		RebuildAfterWipe:             rebuild,
		GraveyardFragilityDelta:      graveyard,
		CommanderFragilityDelta:      commanderFragility,
	}
}

func bucketIDSet[T any](items []T, idOf func(T) string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, item := range items {
		out[idOf(item)] = struct{}{}
	}
	return out
}

func sameSet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func firstLastImpact(impacts []stress.OperatorImpact, op string) (first, last map[string]stress.OperatorImpact) {
	first = make(map[string]stress.OperatorImpact)
	last = make(map[string]stress.OperatorImpact)
	for _, imp := range impacts {
		if imp.Op != op {
			continue
		}
		if _, ok := first[imp.BucketID]; !ok {
			first[imp.BucketID] = imp
		}
		last[imp.BucketID] = imp
	}
	return first, last
}

// safeRatio applies spec.md §4.10's zero-denominator policy and clamps to
// [0,1]: num<=0 && den<=0 => 1.0; num>0 && den<=0 => 0.0; otherwise num/den
// clamped.
func safeRatio(num, den float64) float64 {
	if num <= 0 && den <= 0 {
		return 1.0
	}
	if num > 0 && den <= 0 {
		return 0.0
	}
	r := new(big.Rat).Quo(new(big.Rat).SetFloat64(num), new(big.Rat).SetFloat64(den))
	r = decimal.ClampRat(r, big.NewRat(0, 1), big.NewRat(1, 1))
	return decimal.RoundRat6(r)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := new(big.Rat)
	for _, v := range values {
		sum.Add(sum, new(big.Rat).SetFloat64(v))
	}
	avg := new(big.Rat).Quo(sum, big.NewRat(int64(len(values)), 1))
	return decimal.RoundRat6(avg)
}

func engineContinuity(
	buckets []string,
	firstRemoval, lastRemoval map[string]stress.OperatorImpact,
	baselineK, stressK map[string]float64,
) float64 {
	anyRemoval := len(firstRemoval) > 0
	ratios := make([]float64, 0, len(buckets))
	for _, b := range buckets {
		if anyRemoval {
			f, ok1 := firstRemoval[b]
			l, ok2 := lastRemoval[b]
			if ok1 && ok2 {
				ratios = append(ratios, safeRatio(l.KAfter, f.KBefore))
				continue
			}
		}
		ratios = append(ratios, safeRatio(stressK[b], baselineK[b]))
	}
	return mean(ratios)
}

func rebuildAfterWipe(buckets []string, firstWipe, lastWipe map[string]stress.OperatorImpact) float64 {
	if len(firstWipe) == 0 {
		return 1.0
	}
	ratios := make([]float64, 0, len(buckets))
	for _, b := range buckets {
		f, ok1 := firstWipe[b]
		l, ok2 := lastWipe[b]
		if !ok1 || !ok2 {
			ratios = append(ratios, 1.0)
			continue
		}
		ratios = append(ratios, safeRatio(l.KAfter, f.KBefore))
	}
	return mean(ratios)
}

func graveyardFragility(buckets []string, firstGraveyard, lastGraveyard map[string]stress.OperatorImpact) float64 {
	if len(firstGraveyard) == 0 {
		return 0.0
	}
	var values []float64
	for _, b := range buckets {
		f, ok1 := firstGraveyard[b]
		l, ok2 := lastGraveyard[b]
		if !ok1 || !ok2 {
			continue
		}
		beforeByCheckpoint := make(map[int]float64, len(f.ProbsBefore))
		for _, snap := range f.ProbsBefore {
			beforeByCheckpoint[snap.Checkpoint] = snap.PGE1
		}
		for _, snap := range l.ProbsAfter {
			before := beforeByCheckpoint[snap.Checkpoint]
			delta := before - snap.PGE1
			if delta < 0 {
				delta = 0
			}
			values = append(values, delta)
		}
	}
	return mean(values)
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
