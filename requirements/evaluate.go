// SPDX-License-Identifier: MIT
package requirements

import (
	"sort"

	"github.com/deckforge/sufficiency/layer"
	"github.com/deckforge/sufficiency/packs"
	"github.com/deckforge/sufficiency/primindex"
)

// Reserved flag names the dependency_signatures_v1 pack may define to
// classify commander dependence explicitly; see DESIGN.md's resolution of
// spec.md §9's Open Question on this layer's unspecified classifier.
const (
	flagCommanderDependentHigh   = "COMMANDER_DEPENDENT_HIGH"
	flagCommanderDependentMedium = "COMMANDER_DEPENDENT_MEDIUM"
	flagCommanderDependentLow    = "COMMANDER_DEPENDENT_LOW"
)

// Evaluate produces layer 1's payload.
//
// idx == nil SKIPs with PRIMITIVE_INDEX_UNAVAILABLE. sigs == nil SKIPs with
// DEPENDENCY_SIGNATURES_UNAVAILABLE (the documented WARN codes all assume
// the signatures pack loaded; its absence is a harder availability
// failure, not a degradation).
func Evaluate(idx *primindex.PrimitiveIndex, sigs *packs.DependencySignatures) *Payload {
	if idx == nil {
		return &Payload{
			Meta: layer.Meta{
				Version:    PayloadVersion,
				Status:     layer.StatusSkip,
				ReasonCode: CodePrimitiveIndexUnavailable,
				Codes:      []string{},
			},
		}
	}
	if sigs == nil {
		return &Payload{
			Meta: layer.Meta{
				Version:    PayloadVersion,
				Status:     layer.StatusSkip,
				ReasonCode: CodeDependencySignaturesUnavailable,
				Codes:      []string{},
			},
		}
	}

	var codes []string
	engineReqs := make(map[string]bool, len(sigs.Requirements))

	primitiveSet := make(map[string]struct{})
	for _, p := range idx.PrimitiveIDs() {
		primitiveSet[p] = struct{}{}
	}

	flagNames := make([]string, 0, len(sigs.Requirements))
	for name := range sigs.Requirements {
		flagNames = append(flagNames, name)
	}
	sort.Strings(flagNames)

	unknownSeen := false
	for _, name := range flagNames {
		sig := sigs.Requirements[name]
		for _, p := range sig.AllOf {
			if _, ok := primitiveSet[p]; !ok {
				unknownSeen = true
			}
		}
		for _, p := range sig.NoneOf {
			if _, ok := primitiveSet[p]; !ok {
				unknownSeen = true
			}
		}
		engineReqs[name] = evaluateSignature(idx, sig)
	}
	if unknownSeen {
		codes = append(codes, CodeUnknownPrimitiveIDInSignatures)
	}

	_, hasCommanderSlot := idx.CommanderSlotID()
	if !hasCommanderSlot {
		codes = append(codes, CodeCommanderSlotIDMissing)
	}

	dependent := classifyCommanderDependent(engineReqs, hasCommanderSlot)

	status := layer.StatusOK
	if len(codes) > 0 {
		status = layer.StatusWarn
	}

	return &Payload{
		Meta: layer.Meta{
			Version: PayloadVersion,
			Status:  status,
			Codes:   layer.SortCodes(codes),
		},
		EngineRequirements: engineReqs,
		CommanderDependent: dependent,
	}
}

// evaluateSignature reports whether every primitive in sig.AllOf is present
// somewhere in idx and no primitive in sig.NoneOf is.
func evaluateSignature(idx *primindex.PrimitiveIndex, sig packs.RequirementSignature) bool {
	for _, p := range sig.AllOf {
		if len(idx.SlotsWithPrimitive(p)) == 0 {
			return false
		}
	}
	for _, p := range sig.NoneOf {
		if len(idx.SlotsWithPrimitive(p)) > 0 {
			return false
		}
	}
	return true
}

func classifyCommanderDependent(reqs map[string]bool, hasCommanderSlot bool) CommanderDependent {
	switch {
	case reqs[flagCommanderDependentHigh]:
		return CommanderDependentHigh
	case reqs[flagCommanderDependentMedium]:
		return CommanderDependentMedium
	case reqs[flagCommanderDependentLow]:
		return CommanderDependentLow
	case hasCommanderSlot:
		return CommanderDependentLow
	default:
		return CommanderDependentUnknown
	}
}
