// SPDX-License-Identifier: MIT
package packs

// StressModels is the decoded stress_models_v1 pack.
type StressModels struct {
	Version        string                   `json:"version"`
	FormatDefaults map[string]FormatStress  `json:"format_defaults"`
}

// FormatStress holds one format's model selection rules and model bodies.
type FormatStress struct {
	Selection StressSelection          `json:"selection"`
	Models    map[string]StressModel   `json:"models"`
}

// StressSelection carries the precedence inputs spec.md §4.8 resolves in
// order: request override (handled by the caller, not stored here),
// by_profile_bracket exact pair, by_profile_id, by_bracket_id, then
// default_model_id.
type StressSelection struct {
	DefaultModelID  string                  `json:"default_model_id"`
	ByProfileID     map[string]string       `json:"by_profile_id"`
	ByBracketID     map[string]string       `json:"by_bracket_id"`
	ByProfileBracket []ProfileBracketModel  `json:"by_profile_bracket"`
}

// ProfileBracketModel is one (profile_id, bracket_id) -> model_id triple.
type ProfileBracketModel struct {
	ProfileID string `json:"profile_id"`
	BracketID string `json:"bracket_id"`
	ModelID   string `json:"model_id"`
}

// StressModel is an ordered list of stress operators.
type StressModel struct {
	Operators []OperatorSpec `json:"operators"`
}

// OperatorSpec is the raw, pack-level representation of one operator; see
// package stress for the parsed, tagged-variant form.
type OperatorSpec struct {
	Op                     string  `json:"op"`
	Count                  *int    `json:"count,omitempty"`
	ByTurn                 *int    `json:"by_turn,omitempty"`
	SurvivingEngineFraction *float64 `json:"surviving_engine_fraction,omitempty"`
	Turns                  *int    `json:"turns,omitempty"`
	GraveyardPenalty       *float64 `json:"graveyard_penalty,omitempty"`
	InflationFactor        *float64 `json:"inflation_factor,omitempty"`
}

const expectedStressModelsVersion = "stress_models_v1"

// LoadStressModels loads and validates stress_models_v1.json.
func LoadStressModels(snapshotDir string, entry *ManifestEntry) (*StressModels, error) {
	raw, err := readVerified(snapshotDir, entry)
	if err != nil {
		return nil, err
	}
	var sm StressModels
	err = decodeVersioned(raw, &sm, func() string { return sm.Version }, expectedStressModelsVersion)
	if err != nil {
		return nil, err
	}
	return &sm, nil
}
