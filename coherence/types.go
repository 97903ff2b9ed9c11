// SPDX-License-Identifier: MIT
package coherence

import "github.com/deckforge/sufficiency/layer"

// PayloadVersion pins this layer's compiled version.
const PayloadVersion = "coherence_v1"

// Closed code set for this layer (spec.md §4.2).
const (
	CodeDeadSlotsPresent         = "DEAD_SLOTS_PRESENT"
	CodePrimitiveIndexUnavailable = "PRIMITIVE_INDEX_UNAVAILABLE"
)

// PrimitiveShare is one row of the top-8-by-share output table.
type PrimitiveShare struct {
	PrimitiveID string  `json:"primitive_id"`
	Coverage    int     `json:"coverage"`
	Share       float64 `json:"share"`
}

// Payload is the LayerPayload for Coherence.
type Payload struct {
	layer.Meta
	DeadSlotCount               int              `json:"dead_slot_count"`
	PrimitiveConcentrationIndex float64          `json:"primitive_concentration_index"`
	OverlapScore                float64          `json:"overlap_score"`
	TopPrimitives               []PrimitiveShare `json:"top_primitives"`
}
