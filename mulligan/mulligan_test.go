// SPDX-License-Identifier: MIT
package mulligan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deckforge/sufficiency/layer"
	"github.com/deckforge/sufficiency/mulligan"
	"github.com/deckforge/sufficiency/packs"
)

func assumptions() *packs.MulliganAssumptions {
	return &packs.MulliganAssumptions{
		Version: "mulligan_assumptions_v1",
		FormatDefaults: map[string]packs.FormatMulligan{
			"commander": {
				DefaultPolicy: "NORMAL",
				Policies: map[string]packs.MulliganPolicy{
					"FRIENDLY": {EffectiveNByCheckpoint: map[string]float64{
						"7": 7.5, "9": 9.5, "10": 10.5, "12": 200.0,
					}},
					"NORMAL": {EffectiveNByCheckpoint: map[string]float64{
						"7": 7.0, "9": 9.0, "10": 10.0, "12": 12.0,
					}},
					"DRAW10_SHUFFLE3": {EffectiveNByCheckpoint: map[string]float64{
						"7": -1.0, "9": 9.0, "10": 10.0, "12": 12.0,
					}},
				},
			},
		},
	}
}

func TestEvaluate_SkipsOnNilAssumptions(t *testing.T) {
	payload := mulligan.Evaluate(nil, "commander", 99)
	require.Equal(t, layer.StatusSkip, payload.Status)
	require.Equal(t, mulligan.CodeMulliganAssumptionsUnavailable, payload.ReasonCode)
}

func TestEvaluate_SkipsOnUnknownFormat(t *testing.T) {
	payload := mulligan.Evaluate(assumptions(), "standard", 60)
	require.Equal(t, layer.StatusSkip, payload.Status)
	require.Equal(t, mulligan.CodeFormatAssumptionsUnavailable, payload.ReasonCode)
}

func TestEvaluate_ClampsAndRoundsPerCheckpoint(t *testing.T) {
	payload := mulligan.Evaluate(assumptions(), "commander", 99)
	require.Equal(t, layer.StatusOK, payload.Status)
	require.Equal(t, "NORMAL", payload.DefaultPolicy)
	require.Len(t, payload.Policies, 3)

	require.Equal(t, "DRAW10_SHUFFLE3", payload.Policies[0].PolicyID)
	require.Equal(t, "FRIENDLY", payload.Policies[1].PolicyID)
	require.Equal(t, "NORMAL", payload.Policies[2].PolicyID)

	friendly := payload.Policies[1]
	require.Equal(t, 99.0, friendly.EffectiveNByCheckpoint[12])

	drawShuffle := payload.Policies[0]
	require.Equal(t, 0.0, drawShuffle.EffectiveNByCheckpoint[7])
}

func TestEvaluate_PolicyOrderingAscendingByID(t *testing.T) {
	payload := mulligan.Evaluate(assumptions(), "commander", 99)
	var ids []string
	for _, p := range payload.Policies {
		ids = append(ids, p.PolicyID)
	}
	require.Equal(t, []string{"DRAW10_SHUFFLE3", "FRIENDLY", "NORMAL"}, ids)
}
