// SPDX-License-Identifier: MIT
package requirements_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deckforge/sufficiency/layer"
	"github.com/deckforge/sufficiency/packs"
	"github.com/deckforge/sufficiency/primindex"
	"github.com/deckforge/sufficiency/requirements"
)

func mustIndex(t *testing.T, bySlot map[string][]string, commander string) *primindex.PrimitiveIndex {
	t.Helper()
	idx, err := primindex.New(bySlot, commander)
	require.NoError(t, err)
	return idx
}

func TestEvaluate_SkipsOnNilPrimitiveIndex(t *testing.T) {
	sigs := &packs.DependencySignatures{Requirements: map[string]packs.RequirementSignature{}}
	payload := requirements.Evaluate(nil, sigs)
	require.Equal(t, layer.StatusSkip, payload.Status)
	require.Equal(t, requirements.CodePrimitiveIndexUnavailable, payload.ReasonCode)
}

func TestEvaluate_SkipsOnNilDependencySignatures(t *testing.T) {
	idx := mustIndex(t, map[string][]string{"slot_1": {"ramp"}}, "")
	payload := requirements.Evaluate(idx, nil)
	require.Equal(t, layer.StatusSkip, payload.Status)
	require.Equal(t, requirements.CodeDependencySignaturesUnavailable, payload.ReasonCode)
}

func TestEvaluate_AllOfNoneOf(t *testing.T) {
	idx := mustIndex(t, map[string][]string{
		"slot_1": {"ramp"},
		"slot_2": {"removal"},
	}, "slot_1")
	sigs := &packs.DependencySignatures{
		Requirements: map[string]packs.RequirementSignature{
			"needs_ramp_no_removal": {AllOf: []string{"ramp"}, NoneOf: []string{"removal"}},
			"needs_ramp":            {AllOf: []string{"ramp"}},
			"needs_draw":            {AllOf: []string{"draw"}},
		},
	}
	payload := requirements.Evaluate(idx, sigs)
	// "draw" is absent from the index, so it is reported as an unknown primitive.
	require.Equal(t, layer.StatusWarn, payload.Status)
	require.False(t, payload.EngineRequirements["needs_ramp_no_removal"])
	require.True(t, payload.EngineRequirements["needs_ramp"])
	require.False(t, payload.EngineRequirements["needs_draw"])
}

func TestEvaluate_WarnsOnMissingCommanderSlot(t *testing.T) {
	idx := mustIndex(t, map[string][]string{"slot_1": {"ramp"}}, "")
	sigs := &packs.DependencySignatures{Requirements: map[string]packs.RequirementSignature{}}
	payload := requirements.Evaluate(idx, sigs)
	require.Equal(t, layer.StatusWarn, payload.Status)
	require.Contains(t, payload.Codes, requirements.CodeCommanderSlotIDMissing)
}

func TestEvaluate_WarnsOnUnknownPrimitiveInSignatures(t *testing.T) {
	idx := mustIndex(t, map[string][]string{"slot_1": {"ramp"}}, "slot_1")
	sigs := &packs.DependencySignatures{
		Requirements: map[string]packs.RequirementSignature{
			"needs_ghost": {AllOf: []string{"nonexistent_primitive"}},
		},
	}
	payload := requirements.Evaluate(idx, sigs)
	require.Equal(t, layer.StatusWarn, payload.Status)
	require.Contains(t, payload.Codes, requirements.CodeUnknownPrimitiveIDInSignatures)
	require.False(t, payload.EngineRequirements["needs_ghost"])
}

func TestEvaluate_CodesAreSortedAndDeduplicated(t *testing.T) {
	idx := mustIndex(t, map[string][]string{"slot_1": {"ramp"}}, "")
	sigs := &packs.DependencySignatures{
		Requirements: map[string]packs.RequirementSignature{
			"a": {AllOf: []string{"ghost_one"}},
			"b": {NoneOf: []string{"ghost_two"}},
		},
	}
	payload := requirements.Evaluate(idx, sigs)
	require.Equal(t, []string{
		requirements.CodeCommanderSlotIDMissing,
		requirements.CodeUnknownPrimitiveIDInSignatures,
	}, payload.Codes)
}

func TestEvaluate_CommanderDependentClassification(t *testing.T) {
	cases := []struct {
		name      string
		flags     map[string]packs.RequirementSignature
		commander string
		want      requirements.CommanderDependent
	}{
		{
			name:      "explicit high flag wins over commander presence",
			flags:     map[string]packs.RequirementSignature{"COMMANDER_DEPENDENT_HIGH": {}},
			commander: "slot_1",
			want:      requirements.CommanderDependentHigh,
		},
		{
			name:      "explicit medium flag",
			flags:     map[string]packs.RequirementSignature{"COMMANDER_DEPENDENT_MEDIUM": {}},
			commander: "slot_1",
			want:      requirements.CommanderDependentMedium,
		},
		{
			name:      "explicit low flag",
			flags:     map[string]packs.RequirementSignature{"COMMANDER_DEPENDENT_LOW": {}},
			commander: "",
			want:      requirements.CommanderDependentLow,
		},
		{
			name:      "no explicit flag, commander slot present falls back to low",
			flags:     map[string]packs.RequirementSignature{},
			commander: "slot_1",
			want:      requirements.CommanderDependentLow,
		},
		{
			name:      "no explicit flag, no commander slot is unknown",
			flags:     map[string]packs.RequirementSignature{},
			commander: "",
			want:      requirements.CommanderDependentUnknown,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			idx := mustIndex(t, map[string][]string{"slot_1": {"ramp"}}, tc.commander)
			sigs := &packs.DependencySignatures{Requirements: tc.flags}
			payload := requirements.Evaluate(idx, sigs)
			require.Equal(t, tc.want, payload.CommanderDependent)
		})
	}
}
