// SPDX-License-Identifier: MIT
package checkpoint

import (
	"github.com/deckforge/sufficiency/decimal"
	"github.com/deckforge/sufficiency/layer"
	"github.com/deckforge/sufficiency/mulligan"
	"github.com/deckforge/sufficiency/probcore"
	"github.com/deckforge/sufficiency/substitution"
)

// Evaluate produces layer 7's payload from the default mulligan policy and
// the substitution buckets.
func Evaluate(mulliganPayload *mulligan.Payload, substitutionPayload *substitution.Payload, deckSize int) *Payload {
	if mulliganPayload == nil || !mulliganPayload.Ready() {
		return skip(CodeMulliganModelUnavailable)
	}
	if substitutionPayload == nil || !substitutionPayload.Ready() {
		return skip(CodeSubstitutionEngineUnavailable)
	}

	var defaultRow *mulligan.PolicyRow
	for i := range mulliganPayload.Policies {
		if mulliganPayload.Policies[i].PolicyID == mulliganPayload.DefaultPolicy {
			defaultRow = &mulliganPayload.Policies[i]
			break
		}
	}
	if defaultRow == nil {
		return skip(CodeMulliganModelUnavailable)
	}

	var codes []string
	nIntByCheckpoint := make(map[int]int, len(mulligan.Checkpoints))
	for _, cp := range mulligan.Checkpoints {
		effectiveN := defaultRow.EffectiveNByCheckpoint[cp]
		nInt := decimal.FloorInt(effectiveN, 0, float64(deckSize))
		if float64(nInt) != effectiveN {
			codes = append(codes, CodeEffectiveNFloored)
		}
		nIntByCheckpoint[cp] = nInt
	}

	buckets := make([]BucketCheckpoints, 0, len(substitutionPayload.Buckets))
	for _, bucket := range substitutionPayload.Buckets {
		if err := probcore.ValidateKIntPolicy(bucket.EffectiveK, bucket.KInt, deckSize); err != nil {
			codes = append(codes, probcore.CodeKIntPolicyViolation)
		}

		cps := make([]CheckpointProbability, 0, len(mulligan.Checkpoints))
		for _, cp := range mulligan.Checkpoints {
			nInt := nIntByCheckpoint[cp]
			p, err := probcore.HypergeomPGE1(deckSize, bucket.KInt, nInt)
			if err != nil {
				p = 0
			}
			cps = append(cps, CheckpointProbability{
				Checkpoint: cp,
				NInt:       nInt,
				PGE1:       p,
			})
		}
		buckets = append(buckets, BucketCheckpoints{
			BucketID:    bucket.BucketID,
			Checkpoints: cps,
		})
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
		Policy:  mulliganPayload.DefaultPolicy,
		Buckets: buckets,
	}
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
