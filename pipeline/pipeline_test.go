// SPDX-License-Identifier: MIT
package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deckforge/sufficiency/packs"
	"github.com/deckforge/sufficiency/pipeline"
	"github.com/deckforge/sufficiency/primindex"
	"github.com/deckforge/sufficiency/suffsummary"
)

func samplePrimIndex(t *testing.T) *primindex.PrimitiveIndex {
	t.Helper()
	bySlot := map[string][]string{
		"cmdr": {"RAMP"},
	}
	for i := 0; i < 40; i++ {
		bySlot[sprintfSlot(i)] = []string{"REMOVAL"}
	}
	for i := 40; i < 99; i++ {
		bySlot[sprintfSlot(i)] = []string{"RAMP"}
	}
	idx, err := primindex.New(bySlot, "cmdr")
	require.NoError(t, err)
	return idx
}

func sprintfSlot(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	return "slot_" + string(letters[i%len(letters)]) + string(letters[(i/len(letters))%len(letters)])
}

func playableSlots(idx *primindex.PrimitiveIndex) []string {
	return idx.SlotIDs()
}

func samplePackSet() *packs.Set {
	return &packs.Set{
		DependencySignatures: &packs.DependencySignatures{
			Version: "dependency_signatures_v1",
			Requirements: map[string]packs.RequirementSignature{
				"HAS_RAMP": {AllOf: []string{"RAMP"}},
			},
		},
		MulliganAssumptions: &packs.MulliganAssumptions{
			Version: "mulligan_assumptions_v1",
			FormatDefaults: map[string]packs.FormatMulligan{
				"commander": {
					DefaultPolicy: "NORMAL",
					Policies: map[string]packs.MulliganPolicy{
						"FRIENDLY":        {EffectiveNByCheckpoint: map[string]float64{"7": 7, "9": 9, "10": 10, "12": 12}},
						"NORMAL":          {EffectiveNByCheckpoint: map[string]float64{"7": 7, "9": 9, "10": 10, "12": 12}},
						"DRAW10_SHUFFLE3": {EffectiveNByCheckpoint: map[string]float64{"7": 7, "9": 9, "10": 10, "12": 12}},
					},
				},
			},
		},
		BucketSubstitutions: &packs.BucketSubstitutions{
			Version: "bucket_substitutions_v1",
			Buckets: map[string]packs.BucketSpec{
				"removal": {PrimaryPrimitives: []string{"REMOVAL"}},
				"ramp":    {PrimaryPrimitives: []string{"RAMP"}},
			},
		},
		WeightRules: &packs.WeightRules{
			Version: "weight_rules_v1",
			FormatDefaults: map[string]packs.FormatWeightRules{
				"commander": {Rules: []packs.WeightRule{
					{RuleID: "r1", TargetBucket: "ramp", RequirementFlag: "HAS_RAMP", Multiplier: 1.1},
				}},
			},
		},
		StressModels: &packs.StressModels{
			Version: "stress_models_v1",
			FormatDefaults: map[string]packs.FormatStress{
				"commander": {
					Selection: packs.StressSelection{DefaultModelID: "baseline"},
					Models:    map[string]packs.StressModel{"baseline": {}},
				},
			},
		},
		ProfileThresholds: &packs.ProfileThresholds{
			Version:                    "profile_thresholds_v1",
			CalibrationSnapshotVersion: "calib_v1",
			Profiles: map[string]packs.ProfileDomains{
				"default": {
					RequiredEffects: packs.RequiredEffectsThresholds{MaxMissing: 5, MaxUnknowns: 5},
					BaselineProb:    packs.BaselineProbThresholds{MinT3: 0, MinT4: 0, MinT6: 0},
					StressProb:      packs.StressProbThresholds{MinContinuity: 0, MinRebuild: 0, MaxGraveyardFragility: 1},
					Coherence:       packs.CoherenceThresholds{MaxDeadSlotRatio: 1, MinOverlapScore: 0},
					Resilience:      packs.ResilienceThresholds{MaxCommanderFragility: 1},
					Commander:       packs.CommanderThresholds{MinProtectionCoverage: 0, MaxCommanderFragility: 1},
				},
			},
		},
		TwoCardCombos: &packs.TwoCardCombos{
			Version: "two_card_combos_v2",
			Combos:  []packs.TwoCardCombo{{A: "card_x", B: "card_y", VariantIDs: []string{"v1"}}},
		},
	}
}

func TestRun_ProducesCompleteBuildResult(t *testing.T) {
	idx := samplePrimIndex(t)
	cfg := pipeline.Config{
		EngineVersion:  "engine-test",
		RulesetVersion: "ruleset-test",
		DBSnapshotID:   "snapshot-test",
		Format:         "commander",
		ProfileID:      "default",
		BracketID:      "core",
		DeckSize:       99,
		PlayableSlotIDs: playableSlots(idx),
		DeckCardKeys:    []string{"card_x", "card_y"},
	}

	result, err := pipeline.NewDriver().Run(context.Background(), idx, samplePackSet(), cfg)

	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.BuildHashV1, 64)
	require.Len(t, result.GraphHashV2, 64)
	require.NotEqual(t, suffsummary.StatusSkip, suffsummary.AggregateStatus(result.Status))
	require.True(t, result.Result.Requirements.Ready())
	require.True(t, result.Result.Substitution.Ready())
	require.NotEmpty(t, result.Result.SuffSummary.Status)
	require.Len(t, result.Result.ComboMatches, 1)
	require.Equal(t, "card_x", result.Result.ComboMatches[0].A)
}

func TestRun_DeterministicAcrossRepeatedRuns(t *testing.T) {
	idx := samplePrimIndex(t)
	cfg := pipeline.Config{
		Format:          "commander",
		ProfileID:       "default",
		DeckSize:        99,
		PlayableSlotIDs: playableSlots(idx),
		DeckCardKeys:    []string{"card_x", "card_y"},
	}
	packSet := samplePackSet()
	driver := pipeline.NewDriver()

	r1, err := driver.Run(context.Background(), idx, packSet, cfg)
	require.NoError(t, err)
	r2, err := driver.Run(context.Background(), idx, packSet, cfg)
	require.NoError(t, err)

	require.Equal(t, r1.BuildHashV1, r2.BuildHashV1)
	require.Equal(t, r1.GraphHashV2, r2.GraphHashV2)
	require.NotEqual(t, r1.RunID, r2.RunID, "run id is a log-correlation value, not part of the hashed content")
}

func TestRun_MissingPacksSkipAndStillProduceBuildResult(t *testing.T) {
	idx := samplePrimIndex(t)
	cfg := pipeline.Config{
		Format:          "commander",
		ProfileID:       "default",
		DeckSize:        99,
		PlayableSlotIDs: playableSlots(idx),
	}

	result, err := pipeline.NewDriver().Run(context.Background(), idx, &packs.Set{}, cfg)

	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, string(suffsummary.StatusSkip), result.Status)
	require.Len(t, result.BuildHashV1, 64)
	require.Empty(t, result.Result.ComboMatches)
}

func TestRun_CancelledContextReturnsError(t *testing.T) {
	idx := samplePrimIndex(t)
	cfg := pipeline.Config{
		Format:          "commander",
		ProfileID:       "default",
		DeckSize:        99,
		PlayableSlotIDs: playableSlots(idx),
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := pipeline.NewDriver().Run(ctx, idx, samplePackSet(), cfg)

	require.Error(t, err)
	require.Nil(t, result)
}

func TestTopologicalOrder_RespectsDependencies(t *testing.T) {
	order, err := pipeline.ExportedTopologicalOrderForTest(pipeline.LayerDAG)
	require.NoError(t, err)

	index := make(map[string]int, len(order))
	for i, name := range order {
		index[name] = i
	}
	for _, node := range pipeline.LayerDAG {
		for _, dep := range node.DependsOn {
			require.Less(t, index[dep], index[node.Name], "%s must precede %s", dep, node.Name)
		}
	}
}

func TestTopologicalOrder_DetectsCycle(t *testing.T) {
	cyclic := []pipeline.LayerNode{
		{Name: "a", DependsOn: []string{"b"}},
		{Name: "b", DependsOn: []string{"a"}},
	}
	_, err := pipeline.ExportedTopologicalOrderForTest(cyclic)
	require.ErrorIs(t, err, pipeline.ErrCycleDetected)
}
