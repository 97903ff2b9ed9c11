// SPDX-License-Identifier: MIT
package primindex_test

import (
	"testing"

	"github.com/deckforge/sufficiency/primindex"
	"github.com/stretchr/testify/require"
)

func TestNew_BuildsInverseIndex(t *testing.T) {
	t.Parallel()

	idx, err := primindex.New(map[string][]string{
		"slot_1": {"RAMP", "BASIC_LAND"},
		"slot_2": {"RAMP"},
		"slot_3": {},
	}, "")
	require.NoError(t, err)

	require.Equal(t, []string{"slot_1", "slot_2", "slot_3"}, idx.SlotIDs())
	require.Equal(t, []string{"BASIC_LAND", "RAMP"}, idx.PrimitiveIDs())
	require.Equal(t, []string{"slot_1", "slot_2"}, idx.SlotsWithPrimitive("RAMP"))
	require.Empty(t, idx.PrimitivesOfSlot("slot_3"))
}

func TestNew_RejectsEmptyIDs(t *testing.T) {
	t.Parallel()

	_, err := primindex.New(map[string][]string{"": {"RAMP"}}, "")
	require.ErrorIs(t, err, primindex.ErrEmptySlotID)

	_, err = primindex.New(map[string][]string{"slot_1": {""}}, "")
	require.ErrorIs(t, err, primindex.ErrEmptyPrimitiveID)
}

func TestNew_CommanderSlot(t *testing.T) {
	t.Parallel()

	idx, err := primindex.New(map[string][]string{"slot_1": {"RAMP"}}, "slot_1")
	require.NoError(t, err)
	slot, ok := idx.CommanderSlotID()
	require.True(t, ok)
	require.Equal(t, "slot_1", slot)

	_, err = primindex.New(map[string][]string{"slot_1": {"RAMP"}}, "slot_missing")
	require.ErrorIs(t, err, primindex.ErrUnknownCommanderSlot)
}

func TestSlotsWithAnyPrimitive_RestrictsToPlayable(t *testing.T) {
	t.Parallel()

	idx, err := primindex.New(map[string][]string{
		"slot_1": {"RAMP"},
		"slot_2": {"RAMP"},
		"slot_3": {"RAMP"},
	}, "")
	require.NoError(t, err)

	got := idx.SlotsWithAnyPrimitive([]string{"RAMP"}, []string{"slot_1", "slot_3"})
	require.Equal(t, []string{"slot_1", "slot_3"}, got)
	require.Equal(t, 2, idx.CountSlotsWithAnyPrimitive([]string{"RAMP"}, []string{"slot_1", "slot_3"}))
}

func TestNormalizeIDs(t *testing.T) {
	t.Parallel()

	got := primindex.NormalizeIDs([]string{"b", "", "a", "b", "c"})
	require.Equal(t, []string{"a", "b", "c"}, got)
}
