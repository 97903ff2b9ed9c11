// SPDX-License-Identifier: MIT
package coherence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deckforge/sufficiency/coherence"
	"github.com/deckforge/sufficiency/layer"
	"github.com/deckforge/sufficiency/primindex"
)

func mustIndex(t *testing.T, bySlot map[string][]string) *primindex.PrimitiveIndex {
	t.Helper()
	idx, err := primindex.New(bySlot, "")
	require.NoError(t, err)
	return idx
}

func TestEvaluate_SkipsOnNilIndex(t *testing.T) {
	payload := coherence.Evaluate(nil, []string{"slot_1"})
	require.Equal(t, layer.StatusSkip, payload.Status)
	require.Equal(t, coherence.CodePrimitiveIndexUnavailable, payload.ReasonCode)
}

func TestEvaluate_AllSlotsIdenticalPrimitive(t *testing.T) {
	idx := mustIndex(t, map[string][]string{
		"slot_1": {"BASIC_LAND"},
		"slot_2": {"BASIC_LAND"},
		"slot_3": {"BASIC_LAND"},
	})
	payload := coherence.Evaluate(idx, []string{"slot_1", "slot_2", "slot_3"})
	require.Equal(t, layer.StatusOK, payload.Status)
	require.Equal(t, 0, payload.DeadSlotCount)
	require.Equal(t, 1.0, payload.PrimitiveConcentrationIndex)
	require.Equal(t, 1.0, payload.OverlapScore)
}

func TestEvaluate_DeadSlotWarns(t *testing.T) {
	idx := mustIndex(t, map[string][]string{
		"slot_1": {"RAMP"},
		"slot_2": {},
	})
	payload := coherence.Evaluate(idx, []string{"slot_1", "slot_2"})
	require.Equal(t, layer.StatusWarn, payload.Status)
	require.Equal(t, 1, payload.DeadSlotCount)
	require.Contains(t, payload.Codes, coherence.CodeDeadSlotsPresent)
}

func TestEvaluate_FewerThanTwoPopulatedSlotsZeroOverlap(t *testing.T) {
	idx := mustIndex(t, map[string][]string{
		"slot_1": {"RAMP"},
	})
	payload := coherence.Evaluate(idx, []string{"slot_1"})
	require.Equal(t, 0.0, payload.OverlapScore)
}

func TestEvaluate_EmptyDeckZeroConcentration(t *testing.T) {
	idx := mustIndex(t, map[string][]string{})
	payload := coherence.Evaluate(idx, []string{})
	require.Equal(t, 0.0, payload.PrimitiveConcentrationIndex)
	require.Equal(t, 0.0, payload.OverlapScore)
	require.Equal(t, 0, payload.DeadSlotCount)
}

func TestEvaluate_TopPrimitivesCappedAtEightOrderedByShareThenID(t *testing.T) {
	bySlot := map[string][]string{}
	playable := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		slot := string(rune('a' + i))
		playable = append(playable, slot)
		bySlot[slot] = []string{"COMMON"}
	}
	bySlot["a"] = append(bySlot["a"], "RARE")
	idx := mustIndex(t, bySlot)

	payload := coherence.Evaluate(idx, playable)
	require.Len(t, payload.TopPrimitives, 2)
	require.Equal(t, "COMMON", payload.TopPrimitives[0].PrimitiveID)
	require.Equal(t, 10, payload.TopPrimitives[0].Coverage)
	require.Equal(t, "RARE", payload.TopPrimitives[1].PrimitiveID)
	require.Equal(t, 1, payload.TopPrimitives[1].Coverage)
}

func TestEvaluate_NormalizesDuplicateAndEmptyPlayableIDs(t *testing.T) {
	idx := mustIndex(t, map[string][]string{
		"slot_1": {"RAMP"},
	})
	payload := coherence.Evaluate(idx, []string{"slot_1", "slot_1", "", "slot_1"})
	require.Equal(t, 0, payload.DeadSlotCount)
}
