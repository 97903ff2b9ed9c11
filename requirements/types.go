// SPDX-License-Identifier: MIT
package requirements

import "github.com/deckforge/sufficiency/layer"

// PayloadVersion pins this layer's compiled version for
// result.pipeline_versions.requirement_detection_version.
const PayloadVersion = "requirement_detection_v1"

// CommanderDependent is the closed classification vocabulary for how
// strongly a deck's plan depends on resolving its commander.
type CommanderDependent string

const (
	CommanderDependentLow     CommanderDependent = "LOW"
	CommanderDependentMedium  CommanderDependent = "MEDIUM"
	CommanderDependentHigh    CommanderDependent = "HIGH"
	CommanderDependentUnknown CommanderDependent = "UNKNOWN"
)

// Closed code set for this layer (spec.md §4.1, §8 property 5).
const (
	CodePrimitiveIndexUnavailable        = "PRIMITIVE_INDEX_UNAVAILABLE"
	CodeDependencySignaturesUnavailable  = "DEPENDENCY_SIGNATURES_UNAVAILABLE"
	CodeCommanderSlotIDMissing           = "COMMANDER_SLOT_ID_MISSING"
	CodeUnknownPrimitiveIDInSignatures   = "UNKNOWN_PRIMITIVE_ID_IN_SIGNATURES"
)

// Payload is the LayerPayload for RequirementDetection.
type Payload struct {
	layer.Meta
	EngineRequirements map[string]bool    `json:"engine_requirements"`
	CommanderDependent CommanderDependent `json:"commander_dependent"`
}
