// SPDX-License-Identifier: MIT
package packs

// WeightRules is the decoded weight_rules_v1 pack, scoped per format like
// the other format-aware packs.
type WeightRules struct {
	Version        string                  `json:"version"`
	FormatDefaults map[string]FormatWeightRules `json:"format_defaults"`
}

// FormatWeightRules holds one format's weight rules.
type FormatWeightRules struct {
	Rules []WeightRule `json:"rules"`
}

// WeightRule is one conditional stacking multiplier: rule_id unique within
// its format, applied to target_bucket only when requirement_flag is
// exactly boolean true.
type WeightRule struct {
	RuleID          string  `json:"rule_id"`
	TargetBucket    string  `json:"target_bucket"`
	RequirementFlag string  `json:"requirement_flag"`
	Multiplier      float64 `json:"multiplier"`
}

const expectedWeightRulesVersion = "weight_rules_v1"

// LoadWeightRules loads and validates weight_rules_v1.json. Multipliers
// must be >= 0.0 and rule_id must be unique within each format.
func LoadWeightRules(snapshotDir string, entry *ManifestEntry) (*WeightRules, error) {
	raw, err := readVerified(snapshotDir, entry)
	if err != nil {
		return nil, err
	}
	var wr WeightRules
	err = decodeVersioned(raw, &wr, func() string { return wr.Version }, expectedWeightRulesVersion)
	if err != nil {
		return nil, err
	}
	for _, fd := range wr.FormatDefaults {
		seen := make(map[string]struct{}, len(fd.Rules))
		for _, rule := range fd.Rules {
			if rule.Multiplier < 0.0 {
				return nil, ErrPackMalformed
			}
			if _, dup := seen[rule.RuleID]; dup {
				return nil, ErrPackMalformed
			}
			seen[rule.RuleID] = struct{}{}
		}
	}
	return &wr, nil
}
