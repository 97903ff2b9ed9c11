// SPDX-License-Identifier: MIT
package stress

import (
	"github.com/deckforge/sufficiency/layer"
	"github.com/deckforge/sufficiency/packs"
)

// SelectModel produces layer 8's payload.
//
// requestOverrideModelID is the caller-supplied request_override_model_id,
// or "" when absent. profileID/bracketID select the by_profile_bracket,
// by_profile_id, and by_bracket_id precedence tiers.
func SelectModel(stressModels *packs.StressModels, format, profileID, bracketID, requestOverrideModelID string) *DefinitionPayload {
	if stressModels == nil {
		return skipDefinition(CodeStressModelsUnavailable)
	}
	fd, ok := stressModels.FormatDefaults[format]
	if !ok {
		return skipDefinition(CodeFormatStressUnavailable)
	}

	var codes []string
	selectedID := ""

	if requestOverrideModelID != "" {
		if _, ok := fd.Models[requestOverrideModelID]; ok {
			selectedID = requestOverrideModelID
		} else {
			codes = append(codes, CodeStressModelOverrideUnknown)
		}
	}

	if selectedID == "" {
		for _, triple := range fd.Selection.ByProfileBracket {
			if triple.ProfileID == profileID && triple.BracketID == bracketID {
				selectedID = triple.ModelID
				break
			}
		}
	}
	if selectedID == "" {
		if id, ok := fd.Selection.ByProfileID[profileID]; ok {
			selectedID = id
		}
	}
	if selectedID == "" {
		if id, ok := fd.Selection.ByBracketID[bracketID]; ok {
			selectedID = id
		}
	}
	if selectedID == "" {
		selectedID = fd.Selection.DefaultModelID
	}

	model, ok := fd.Models[selectedID]
	if selectedID == "" || !ok {
		return &DefinitionPayload{
			Meta: layer.Meta{
				Version:    DefinitionPayloadVersion,
				Status:     layer.StatusSkip,
				ReasonCode: CodeStressModelUnresolved,
				Codes:      layer.SortCodes(codes),
			},
		}
	}

	parsed := make([]Operator, 0, len(model.Operators))
	for _, spec := range model.Operators {
		parsed = append(parsed, parseOperator(spec))
	}
	ordered := canonicalOrder(parsed)

	status := layer.StatusOK
	if len(codes) > 0 {
		status = layer.StatusWarn
	}

	return &DefinitionPayload{
		Meta: layer.Meta{
			Version: DefinitionPayloadVersion,
			Status:  status,
			Codes:   layer.SortCodes(codes),
		},
		SelectedModelID: selectedID,
		Operators:       ordered,
	}
}

func skipDefinition(reasonCode string) *DefinitionPayload {
	return &DefinitionPayload{
		Meta: layer.Meta{
			Version:    DefinitionPayloadVersion,
			Status:     layer.StatusSkip,
			ReasonCode: reasonCode,
			Codes:      []string{},
		},
	}
}
