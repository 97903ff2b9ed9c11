// SPDX-License-Identifier: MIT
package commander

import (
	"math/big"

	"github.com/deckforge/sufficiency/checkpoint"
	"github.com/deckforge/sufficiency/decimal"
	"github.com/deckforge/sufficiency/layer"
	"github.com/deckforge/sufficiency/primindex"
	"github.com/deckforge/sufficiency/requirements"
	"github.com/deckforge/sufficiency/stress"
)

// checkpointForTurn is the fixed t3/t4/t6 -> draw-step-checkpoint mapping
// (spec.md §4.11).
var checkpointForTurn = map[string]int{"t3": 9, "t4": 10, "t6": 12}

// Evaluate produces layer 11's payload.
func Evaluate(
	checkpointPayload *checkpoint.Payload,
	stressPayload *stress.TransformPayload,
	idx *primindex.PrimitiveIndex,
	playable []string,
	commanderDependent requirements.CommanderDependent,
) *Payload {
	if checkpointPayload == nil || !checkpointPayload.Ready() {
		return skip(CodeUpstreamCheckpointUnavailable)
	}

	baselineRamp, ok := findBucket(checkpointPayload.Buckets, RampBucketID)
	if !ok {
		return skip(CodeRampBucketUnavailable)
	}

	castT3 := probAt(baselineRamp, checkpointForTurn["t3"])
	castT4 := probAt(baselineRamp, checkpointForTurn["t4"])
	castT6 := probAt(baselineRamp, checkpointForTurn["t6"])

	var codes []string

	protectionProxy := protectionCoverageProxy(idx, playable)
	if protectionProxy == nil {
		codes = append(codes, CodeProtectionCoverageDenominatorZero)
	}

	fragility := commanderFragilityDelta(commanderDependent, castT3, castT4, castT6, stressPayload)
	if fragility == nil && commanderDependent != requirements.CommanderDependentLow {
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
		CastReliabilityT3:       castT3,
		CastReliabilityT4:       castT4,
		CastReliabilityT6:       castT6,
		ProtectionCoverageProxy: protectionProxy,
		CommanderFragilityDelta: fragility,
	}
}

func findBucket(buckets []checkpoint.BucketCheckpoints, id string) (checkpoint.BucketCheckpoints, bool) {
	for _, b := range buckets {
		if b.BucketID == id {
			return b, true
		}
	}
	return checkpoint.BucketCheckpoints{}, false
}

func findStressBucket(buckets []stress.BucketStressResult, id string) (stress.BucketStressResult, bool) {
	for _, b := range buckets {
		if b.BucketID == id {
			return b, true
		}
	}
	return stress.BucketStressResult{}, false
}

func probAt(bucket checkpoint.BucketCheckpoints, cp int) float64 {
	for _, c := range bucket.Checkpoints {
		if c.Checkpoint == cp {
			return c.PGE1
		}
	}
	return 0
}

func stressProbAt(bucket stress.BucketStressResult, cp int) float64 {
	for _, c := range bucket.Checkpoints {
		if c.Checkpoint == cp {
			return c.PGE1
		}
	}
	return 0
}

func protectionCoverageProxy(idx *primindex.PrimitiveIndex, playable []string) *float64 {
	if idx == nil {
		return nil
	}
	commanderSlot, hasCommander := idx.CommanderSlotID()

	var denom, numer int
	for _, slot := range primindex.NormalizeIDs(playable) {
		if hasCommander && slot == commanderSlot {
			continue
		}
		denom++
		if idx.HasAnyPrimitive(slot, ProtectionPrimitives) {
			numer++
		}
	}
	if denom == 0 {
		return nil
	}
	v := decimal.RoundRat6(big.NewRat(int64(numer), int64(denom)))
	return &v
}

func commanderFragilityDelta(
	commanderDependent requirements.CommanderDependent,
	castT3, castT4, castT6 float64,
	stressPayload *stress.TransformPayload,
) *float64 {
	if commanderDependent == requirements.CommanderDependentLow {
		zero := 0.0
		return &zero
	}
	if stressPayload == nil || !stressPayload.Ready() {
		return nil
	}
	stressRamp, ok := findStressBucket(stressPayload.Buckets, RampBucketID)
	if !ok {
		return nil
	}

	baselineMean := mean3(castT3, castT4, castT6)
	stressMean := mean3(
		stressProbAt(stressRamp, checkpointForTurn["t3"]),
		stressProbAt(stressRamp, checkpointForTurn["t4"]),
		stressProbAt(stressRamp, checkpointForTurn["t6"]),
	)

	delta := baselineMean - stressMean
	if delta < 0 {
		delta = 0
	}
	rounded, err := decimal.Round6(delta)
	if err != nil {
		rounded = 0
	}
	return &rounded
}

func mean3(a, b, c float64) float64 {
	sum := new(big.Rat).SetFloat64(a)
	sum.Add(sum, new(big.Rat).SetFloat64(b))
	sum.Add(sum, new(big.Rat).SetFloat64(c))
	avg := new(big.Rat).Quo(sum, big.NewRat(3, 1))
	return decimal.RoundRat6(avg)
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
