// SPDX-License-Identifier: MIT
package primindex

import "sort"

// PrimitiveIndex is the compiled per-card primitive index: a mapping from
// slot_id to the set of primitive_id tags on that slot, plus its inverse.
//
// PrimitiveIndex is immutable after construction; all reads return sorted,
// deduplicated, freshly-allocated slices so callers can never observe (or
// accidentally mutate) internal storage.
type PrimitiveIndex struct {
	bySlot      map[string]map[string]struct{}
	byPrimitive map[string]map[string]struct{}
	commander   string
	hasCmdr     bool
}

// New builds a PrimitiveIndex from a slot -> primitives mapping.
//
// commanderSlotID, when non-empty, must name a slot present in bySlot;
// otherwise New returns ErrUnknownCommanderSlot. An empty commanderSlotID
// means the deck has no commander slot (non-commander-dependent decks), not
// an error.
func New(bySlot map[string][]string, commanderSlotID string) (*PrimitiveIndex, error) {
	idx := &PrimitiveIndex{
		bySlot:      make(map[string]map[string]struct{}, len(bySlot)),
		byPrimitive: make(map[string]map[string]struct{}),
	}

	for slot, prims := range bySlot {
		if slot == "" {
			return nil, ErrEmptySlotID
		}
		set := make(map[string]struct{}, len(prims))
		for _, p := range prims {
			if p == "" {
				return nil, ErrEmptyPrimitiveID
			}
			set[p] = struct{}{}
			if idx.byPrimitive[p] == nil {
				idx.byPrimitive[p] = make(map[string]struct{})
			}
			idx.byPrimitive[p][slot] = struct{}{}
		}
		idx.bySlot[slot] = set
	}

	if commanderSlotID != "" {
		if _, ok := idx.bySlot[commanderSlotID]; !ok {
			return nil, ErrUnknownCommanderSlot
		}
		idx.commander = commanderSlotID
		idx.hasCmdr = true
	}

	return idx, nil
}

// SlotIDs returns every slot id in the index, sorted ascending.
func (idx *PrimitiveIndex) SlotIDs() []string {
	return sortedKeys(idx.bySlot)
}

// PrimitiveIDs returns every primitive id in the index, sorted ascending.
func (idx *PrimitiveIndex) PrimitiveIDs() []string {
	return sortedKeys(idx.byPrimitive)
}

// PrimitivesOfSlot returns the sorted, deduplicated primitives tagged on
// slot. Returns an empty (non-nil) slice for an unknown or primitiveless
// slot.
func (idx *PrimitiveIndex) PrimitivesOfSlot(slot string) []string {
	return sortedKeys(idx.bySlot[slot])
}

// SlotsWithPrimitive returns the sorted, deduplicated slots tagged with
// primitive. Returns an empty (non-nil) slice when the primitive is absent.
func (idx *PrimitiveIndex) SlotsWithPrimitive(primitive string) []string {
	return sortedKeys(idx.byPrimitive[primitive])
}

// HasSlot reports whether slot exists in the index.
func (idx *PrimitiveIndex) HasSlot(slot string) bool {
	_, ok := idx.bySlot[slot]
	return ok
}

// HasAnyPrimitive reports whether slot carries at least one of the given
// primitives.
func (idx *PrimitiveIndex) HasAnyPrimitive(slot string, primitives []string) bool {
	set := idx.bySlot[slot]
	for _, p := range primitives {
		if _, ok := set[p]; ok {
			return true
		}
	}
	return false
}

// CommanderSlotID returns the commander slot id and true, or ("", false)
// when the index carries no commander slot.
func (idx *PrimitiveIndex) CommanderSlotID() (string, bool) {
	return idx.commander, idx.hasCmdr
}

// Snapshot returns a deterministic, JSON-serializable view of the index
// (slot_id -> sorted primitive ids, plus the commander slot if any), for
// content-hashing the compiled index itself (package buildhash's
// graph_hash_v2).
func (idx *PrimitiveIndex) Snapshot() map[string]interface{} {
	bySlot := make(map[string][]string, len(idx.bySlot))
	for slot := range idx.bySlot {
		bySlot[slot] = idx.PrimitivesOfSlot(slot)
	}
	snap := map[string]interface{}{"by_slot": bySlot}
	if idx.hasCmdr {
		snap["commander_slot_id"] = idx.commander
	}
	return snap
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
