// SPDX-License-Identifier: MIT
package stress

import (
	"sort"

	"github.com/deckforge/sufficiency/checkpoint"
	"github.com/deckforge/sufficiency/decimal"
	"github.com/deckforge/sufficiency/layer"
	"github.com/deckforge/sufficiency/probcore"
	"github.com/deckforge/sufficiency/substitution"
)

type bucketState struct {
	bucketID   string
	effectiveK float64
	kInt       int
	probs      map[int]float64
}

// Transform produces layer 9's payload: the result of applying the
// selected stress model's operators, in canonical order, to the baseline
// substitution/checkpoint state.
func Transform(
	definition *DefinitionPayload,
	checkpointPayload *checkpoint.Payload,
	substitutionPayload *substitution.Payload,
	deckSize int,
) *TransformPayload {
	if definition == nil || !definition.Ready() {
		return skipTransform(CodeUpstreamStressModelUnavailable)
	}
	if checkpointPayload == nil || !checkpointPayload.Ready() {
		return skipTransform(CodeUpstreamCheckpointUnavailable)
	}

	nIntByCheckpoint := make(map[int]int)
	if len(checkpointPayload.Buckets) > 0 {
		for _, cp := range checkpointPayload.Buckets[0].Checkpoints {
			nIntByCheckpoint[cp.Checkpoint] = cp.NInt
		}
	}

	checkpointsByBucket := make(map[string][]checkpoint.CheckpointProbability, len(checkpointPayload.Buckets))
	for _, b := range checkpointPayload.Buckets {
		checkpointsByBucket[b.BucketID] = b.Checkpoints
	}

	var bucketIDs []string
	if substitutionPayload != nil {
		for _, b := range substitutionPayload.Buckets {
			bucketIDs = append(bucketIDs, b.BucketID)
		}
	} else {
		for id := range checkpointsByBucket {
			bucketIDs = append(bucketIDs, id)
		}
		sort.Strings(bucketIDs)
	}

	kByBucket := make(map[string]float64, len(bucketIDs))
	kIntByBucket := make(map[string]int, len(bucketIDs))
	if substitutionPayload != nil {
		for _, b := range substitutionPayload.Buckets {
			kByBucket[b.BucketID] = b.EffectiveK
			kIntByBucket[b.BucketID] = b.KInt
		}
	}

	var codes []string
	states := make([]*bucketState, 0, len(bucketIDs))
	for _, id := range bucketIDs {
		probs := make(map[int]float64, len(checkpointsByBucket[id]))
		for _, cp := range checkpointsByBucket[id] {
			probs[cp.Checkpoint] = cp.PGE1
		}
		effectiveK := kByBucket[id]
		kInt := kIntByBucket[id]
		if err := probcore.ValidateKIntPolicy(effectiveK, kInt, deckSize); err != nil {
			codes = append(codes, probcore.CodeKIntPolicyViolation)
		}
		states = append(states, &bucketState{
			bucketID:   id,
			effectiveK: effectiveK,
			kInt:       kInt,
			probs:      probs,
		})
	}

	var impacts []OperatorImpact
	for opIdx, op := range definition.Operators {
		switch op.Op {
		case OpTargetedRemoval, OpBoardWipe, OpGraveyardHateWindow:
			applyKStageOperator(opIdx, op, states, deckSize, nIntByCheckpoint, &impacts, &codes)
		case OpStaxTax:
			applyProbabilityStageOperator(opIdx, op, states, &impacts)
		}
	}

	checkpointOrder := make([]int, 0, len(nIntByCheckpoint))
	for cp := range nIntByCheckpoint {
		checkpointOrder = append(checkpointOrder, cp)
	}
	sort.Ints(checkpointOrder)

	results := make([]BucketStressResult, 0, len(states))
	for _, s := range states {
		snaps := make([]CheckpointSnapshot, 0, len(checkpointOrder))
		for _, cp := range checkpointOrder {
			snaps = append(snaps, CheckpointSnapshot{Checkpoint: cp, PGE1: s.probs[cp]})
		}
		results = append(results, BucketStressResult{
			BucketID:    s.bucketID,
			EffectiveK:  s.effectiveK,
			KInt:        s.kInt,
			Checkpoints: snaps,
		})
	}

	status := layer.StatusOK
	if len(codes) > 0 {
		status = layer.StatusWarn
	}

	return &TransformPayload{
		Meta: layer.Meta{
			Version: TransformPayloadVersion,
			Status:  status,
			Codes:   layer.SortCodes(codes),
		},
		Buckets:         results,
		OperatorImpacts: impacts,
	}
}

func applyKStageOperator(
	opIdx int,
	op Operator,
	states []*bucketState,
	deckSize int,
	nIntByCheckpoint map[int]int,
	impacts *[]OperatorImpact,
	codes *[]string,
) {
	for _, s := range states {
		kBefore := s.effectiveK
		probsBefore := snapshotProbs(s.probs)

		var kPrime float64
		switch op.Op {
		case OpTargetedRemoval:
			kPrime = kBefore - float64(op.Count)
		case OpBoardWipe:
			kPrime = kBefore * op.SurvivingEngineFraction
		case OpGraveyardHateWindow:
			kPrime = kBefore * op.GraveyardPenalty
		}
		kPrime = decimal.Clamp(kPrime, 0, float64(deckSize))
		rounded, err := decimal.Round6(kPrime)
		if err != nil {
			rounded = 0
		}
		s.effectiveK = rounded
		s.kInt = decimal.FloorInt(rounded, 0, float64(deckSize))
		if err := probcore.ValidateKIntPolicy(s.effectiveK, s.kInt, deckSize); err != nil {
			*codes = append(*codes, probcore.CodeKIntPolicyViolation)
		}

		for cp, nInt := range nIntByCheckpoint {
			p, err := probcore.HypergeomPGE1(deckSize, s.kInt, nInt)
			if err != nil {
				p = 0
			}
			s.probs[cp] = p
		}

		*impacts = append(*impacts, OperatorImpact{
			OperatorIndex: opIdx,
			Op:            op.Op,
			BucketID:      s.bucketID,
			KBefore:       kBefore,
			KAfter:        s.effectiveK,
			ProbsBefore:   probsBefore,
			ProbsAfter:    snapshotProbs(s.probs),
		})
	}
}

func applyProbabilityStageOperator(opIdx int, op Operator, states []*bucketState, impacts *[]OperatorImpact) {
	for _, s := range states {
		probsBefore := snapshotProbs(s.probs)
		for cp, p := range s.probs {
			adjusted := decimal.Clamp(p*op.InflationFactor, 0.0, 1.0)
			rounded, err := decimal.Round6(adjusted)
			if err != nil {
				rounded = adjusted
			}
			s.probs[cp] = rounded
		}
		*impacts = append(*impacts, OperatorImpact{
			OperatorIndex: opIdx,
			Op:            op.Op,
			BucketID:      s.bucketID,
			KBefore:       s.effectiveK,
			KAfter:        s.effectiveK,
			ProbsBefore:   probsBefore,
			ProbsAfter:    snapshotProbs(s.probs),
		})
	}
}

func snapshotProbs(probs map[int]float64) []CheckpointSnapshot {
	checkpoints := make([]int, 0, len(probs))
	for cp := range probs {
		checkpoints = append(checkpoints, cp)
	}
	sort.Ints(checkpoints)
	out := make([]CheckpointSnapshot, 0, len(checkpoints))
	for _, cp := range checkpoints {
		out = append(out, CheckpointSnapshot{Checkpoint: cp, PGE1: probs[cp]})
	}
	return out
}

func skipTransform(reasonCode string) *TransformPayload {
	return &TransformPayload{
		Meta: layer.Meta{
			Version:    TransformPayloadVersion,
			Status:     layer.StatusSkip,
			ReasonCode: reasonCode,
			Codes:      []string{},
		},
	}
}
