// SPDX-License-Identifier: MIT
package commander_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deckforge/sufficiency/checkpoint"
	"github.com/deckforge/sufficiency/commander"
	"github.com/deckforge/sufficiency/layer"
	"github.com/deckforge/sufficiency/primindex"
	"github.com/deckforge/sufficiency/requirements"
	"github.com/deckforge/sufficiency/stress"
)

func readyCheckpointWithRamp() *checkpoint.Payload {
	return &checkpoint.Payload{
		Meta: layer.Meta{Version: checkpoint.PayloadVersion, Status: layer.StatusOK, Codes: []string{}},
		Buckets: []checkpoint.BucketCheckpoints{
			{
				BucketID: "ramp",
				Checkpoints: []checkpoint.CheckpointProbability{
					{Checkpoint: 7, PGE1: 0.1},
					{Checkpoint: 9, PGE1: 0.5},
					{Checkpoint: 10, PGE1: 0.6},
					{Checkpoint: 12, PGE1: 0.8},
				},
			},
		},
	}
}

func TestEvaluate_SkipsOnUpstreamNotReady(t *testing.T) {
	payload := commander.Evaluate(nil, nil, nil, nil, requirements.CommanderDependentLow)
	require.Equal(t, layer.StatusSkip, payload.Status)
	require.Equal(t, commander.CodeUpstreamCheckpointUnavailable, payload.ReasonCode)
}

func TestEvaluate_SkipsWhenRampBucketMissing(t *testing.T) {
	cp := &checkpoint.Payload{
		Meta:    layer.Meta{Version: checkpoint.PayloadVersion, Status: layer.StatusOK, Codes: []string{}},
		Buckets: []checkpoint.BucketCheckpoints{{BucketID: "removal"}},
	}
	payload := commander.Evaluate(cp, nil, nil, nil, requirements.CommanderDependentLow)
	require.Equal(t, layer.StatusSkip, payload.Status)
	require.Equal(t, commander.CodeRampBucketUnavailable, payload.ReasonCode)
}

func TestEvaluate_CastReliabilitySourcedFromRampAtFixedCheckpoints(t *testing.T) {
	payload := commander.Evaluate(readyCheckpointWithRamp(), nil, nil, nil, requirements.CommanderDependentLow)
	require.Equal(t, 0.5, payload.CastReliabilityT3)
	require.Equal(t, 0.6, payload.CastReliabilityT4)
	require.Equal(t, 0.8, payload.CastReliabilityT6)
}

func TestEvaluate_ProtectionCoverageExcludesCommanderSlot(t *testing.T) {
	idx, err := primindex.New(map[string][]string{
		"cmdr":   {"HEXPROOF_PROTECTION"},
		"slot_1": {"HEXPROOF_PROTECTION"},
		"slot_2": {"RAMP"},
	}, "cmdr")
	require.NoError(t, err)

	payload := commander.Evaluate(readyCheckpointWithRamp(), nil, idx, []string{"cmdr", "slot_1", "slot_2"}, requirements.CommanderDependentLow)
	require.NotNil(t, payload.ProtectionCoverageProxy)
	require.Equal(t, 0.5, *payload.ProtectionCoverageProxy)
}

func TestEvaluate_ProtectionCoverageNilWhenDenominatorZero(t *testing.T) {
	idx, err := primindex.New(map[string][]string{"cmdr": {"RAMP"}}, "cmdr")
	require.NoError(t, err)
	payload := commander.Evaluate(readyCheckpointWithRamp(), nil, idx, []string{"cmdr"}, requirements.CommanderDependentLow)
	require.Nil(t, payload.ProtectionCoverageProxy)
	require.Contains(t, payload.Codes, commander.CodeProtectionCoverageDenominatorZero)
}

func TestEvaluate_CommanderFragilityZeroWhenLow(t *testing.T) {
	payload := commander.Evaluate(readyCheckpointWithRamp(), nil, nil, nil, requirements.CommanderDependentLow)
	require.NotNil(t, payload.CommanderFragilityDelta)
	require.Equal(t, 0.0, *payload.CommanderFragilityDelta)
}

func TestEvaluate_CommanderFragilityComputedWhenStressAvailable(t *testing.T) {
	stressPayload := &stress.TransformPayload{
		Meta: layer.Meta{Version: stress.TransformPayloadVersion, Status: layer.StatusOK, Codes: []string{}},
		Buckets: []stress.BucketStressResult{
			{
				BucketID: "ramp",
				Checkpoints: []stress.CheckpointSnapshot{
					{Checkpoint: 9, PGE1: 0.4},
					{Checkpoint: 10, PGE1: 0.5},
					{Checkpoint: 12, PGE1: 0.7},
				},
			},
		},
	}
	payload := commander.Evaluate(readyCheckpointWithRamp(), stressPayload, nil, nil, requirements.CommanderDependentHigh)
	require.NotNil(t, payload.CommanderFragilityDelta)
	require.InDelta(t, 0.1, *payload.CommanderFragilityDelta, 1e-9)
}

func TestEvaluate_CommanderFragilityNilWhenStressUnavailable(t *testing.T) {
	payload := commander.Evaluate(readyCheckpointWithRamp(), nil, nil, nil, requirements.CommanderDependentHigh)
	require.Nil(t, payload.CommanderFragilityDelta)
	require.Contains(t, payload.Codes, commander.CodeCommanderFragilityUnavailable)
}
