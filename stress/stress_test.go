// SPDX-License-Identifier: MIT
package stress_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deckforge/sufficiency/checkpoint"
	"github.com/deckforge/sufficiency/layer"
	"github.com/deckforge/sufficiency/packs"
	"github.com/deckforge/sufficiency/probcore"
	"github.com/deckforge/sufficiency/stress"
	"github.com/deckforge/sufficiency/substitution"
)

func intPtr(i int) *int          { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestSelectModel_PrecedenceOverrideWins(t *testing.T) {
	models := &packs.StressModels{
		FormatDefaults: map[string]packs.FormatStress{
			"commander": {
				Selection: packs.StressSelection{DefaultModelID: "default_model"},
				Models: map[string]packs.StressModel{
					"default_model": {},
					"override_model": {
						Operators: []packs.OperatorSpec{{Op: stress.OpTargetedRemoval, Count: intPtr(1)}},
					},
				},
			},
		},
	}
	payload := stress.SelectModel(models, "commander", "focused", "B2", "override_model")
	require.Equal(t, layer.StatusOK, payload.Status)
	require.Equal(t, "override_model", payload.SelectedModelID)
}

func TestSelectModel_UnknownOverrideWarnsAndFallsBackToDefault(t *testing.T) {
	models := &packs.StressModels{
		FormatDefaults: map[string]packs.FormatStress{
			"commander": {
				Selection: packs.StressSelection{DefaultModelID: "default_model"},
				Models:    map[string]packs.StressModel{"default_model": {}},
			},
		},
	}
	payload := stress.SelectModel(models, "commander", "focused", "B2", "ghost_model")
	require.Equal(t, layer.StatusWarn, payload.Status)
	require.Contains(t, payload.Codes, stress.CodeStressModelOverrideUnknown)
	require.Equal(t, "default_model", payload.SelectedModelID)
}

func TestSelectModel_ByProfileBracketBeatsByProfileAndByBracket(t *testing.T) {
	models := &packs.StressModels{
		FormatDefaults: map[string]packs.FormatStress{
			"commander": {
				Selection: packs.StressSelection{
					DefaultModelID: "default_model",
					ByProfileID:    map[string]string{"focused": "profile_model"},
					ByBracketID:    map[string]string{"B2": "bracket_model"},
					ByProfileBracket: []packs.ProfileBracketModel{
						{ProfileID: "focused", BracketID: "B2", ModelID: "pair_model"},
					},
				},
				Models: map[string]packs.StressModel{
					"default_model":  {},
					"profile_model":  {},
					"bracket_model":  {},
					"pair_model":     {},
				},
			},
		},
	}
	payload := stress.SelectModel(models, "commander", "focused", "B2", "")
	require.Equal(t, "pair_model", payload.SelectedModelID)
}

func operand(count int) packs.OperatorSpec {
	return packs.OperatorSpec{Op: stress.OpTargetedRemoval, Count: intPtr(count)}
}

func baselineState(kInt int, n int) (*checkpoint.Payload, *substitution.Payload) {
	p7, _ := probcore.HypergeomPGE1(99, kInt, n)
	cpPayload := &checkpoint.Payload{
		Meta: layer.Meta{Version: checkpoint.PayloadVersion, Status: layer.StatusOK, Codes: []string{}},
		Buckets: []checkpoint.BucketCheckpoints{
			{
				BucketID: "ramp",
				Checkpoints: []checkpoint.CheckpointProbability{
					{Checkpoint: 7, NInt: n, PGE1: p7},
				},
			},
		},
	}
	subPayload := &substitution.Payload{
		Meta: layer.Meta{Version: substitution.PayloadVersion, Status: layer.StatusOK, Codes: []string{}},
		Buckets: []substitution.BucketResult{
			{BucketID: "ramp", KPrimary: kInt, EffectiveK: float64(kInt), KInt: kInt},
		},
	}
	return cpPayload, subPayload
}

func TestTransform_IdentityOperatorReproducesBaseline(t *testing.T) {
	cpPayload, subPayload := baselineState(30, 7)
	def := &stress.DefinitionPayload{
		Meta:            layer.Meta{Version: stress.DefinitionPayloadVersion, Status: layer.StatusOK, Codes: []string{}},
		SelectedModelID: "identity",
		Operators:       []stress.Operator{{Op: stress.OpTargetedRemoval, Count: 0}},
	}
	result := stress.Transform(def, cpPayload, subPayload, 99)
	require.Equal(t, layer.StatusOK, result.Status)
	require.Equal(t, 30.0, result.Buckets[0].EffectiveK)
	require.Equal(t, cpPayload.Buckets[0].Checkpoints[0].PGE1, result.Buckets[0].Checkpoints[0].PGE1)
}

func TestTransform_BoardWipeHalvesEffectiveK(t *testing.T) {
	cpPayload, subPayload := baselineState(20, 7)
	def := &stress.DefinitionPayload{
		Meta:            layer.Meta{Version: stress.DefinitionPayloadVersion, Status: layer.StatusOK, Codes: []string{}},
		SelectedModelID: "wipe",
		Operators:       []stress.Operator{{Op: stress.OpBoardWipe, SurvivingEngineFraction: 0.5}},
	}
	result := stress.Transform(def, cpPayload, subPayload, 99)
	require.Equal(t, 10.0, result.Buckets[0].EffectiveK)
	require.Equal(t, 10, result.Buckets[0].KInt)

	expectedP, _ := probcore.HypergeomPGE1(99, 10, 7)
	require.Equal(t, expectedP, result.Buckets[0].Checkpoints[0].PGE1)
	require.Len(t, result.OperatorImpacts, 1)
	require.Equal(t, 20.0, result.OperatorImpacts[0].KBefore)
	require.Equal(t, 10.0, result.OperatorImpacts[0].KAfter)
}

func TestTransform_StaxTaxIdentityAtInflationOne(t *testing.T) {
	cpPayload, subPayload := baselineState(30, 7)
	def := &stress.DefinitionPayload{
		Meta:            layer.Meta{Version: stress.DefinitionPayloadVersion, Status: layer.StatusOK, Codes: []string{}},
		SelectedModelID: "tax",
		Operators:       []stress.Operator{{Op: stress.OpStaxTax, InflationFactor: 1.0}},
	}
	result := stress.Transform(def, cpPayload, subPayload, 99)
	require.Equal(t, cpPayload.Buckets[0].Checkpoints[0].PGE1, result.Buckets[0].Checkpoints[0].PGE1)
}

func TestTransform_WarnsOnKIntPolicyViolationInSubstitution(t *testing.T) {
	cpPayload, subPayload := baselineState(30, 7)
	subPayload.Buckets[0].KInt = 29 // inconsistent with EffectiveK=30.0
	def := &stress.DefinitionPayload{
		Meta:            layer.Meta{Version: stress.DefinitionPayloadVersion, Status: layer.StatusOK, Codes: []string{}},
		SelectedModelID: "identity",
		Operators:       []stress.Operator{{Op: stress.OpTargetedRemoval, Count: 0}},
	}
	result := stress.Transform(def, cpPayload, subPayload, 99)
	require.Equal(t, layer.StatusWarn, result.Status)
	require.Contains(t, result.Codes, probcore.CodeKIntPolicyViolation)
}

func TestTransform_SkipsOnUpstreamNotReady(t *testing.T) {
	result := stress.Transform(nil, nil, nil, 99)
	require.Equal(t, layer.StatusSkip, result.Status)
	require.Equal(t, stress.CodeUpstreamStressModelUnavailable, result.ReasonCode)
}
