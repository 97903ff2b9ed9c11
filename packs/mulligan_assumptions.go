// SPDX-License-Identifier: MIT
package packs

// MulliganAssumptions is the decoded mulligan_assumptions_v1 pack.
type MulliganAssumptions struct {
	Version        string                     `json:"version"`
	FormatDefaults map[string]FormatMulligan  `json:"format_defaults"`
}

// FormatMulligan holds one format's default policy id and its three
// mandatory mulligan policies.
type FormatMulligan struct {
	DefaultPolicy string                      `json:"default_policy"`
	Policies      map[string]MulliganPolicy   `json:"policies"`
}

// MulliganPolicy holds effective_n for each of the four frozen checkpoints,
// keyed by checkpoint number as a string (JSON object keys are always
// strings).
type MulliganPolicy struct {
	EffectiveNByCheckpoint map[string]float64 `json:"effective_n_by_checkpoint"`
}

const expectedMulliganAssumptionsVersion = "mulligan_assumptions_v1"

// RequiredMulliganPolicies is the closed set of policy ids every format
// must define, per spec.md §4.3.
var RequiredMulliganPolicies = []string{"FRIENDLY", "NORMAL", "DRAW10_SHUFFLE3"}

// LoadMulliganAssumptions loads and validates mulligan_assumptions_v1.json.
func LoadMulliganAssumptions(snapshotDir string, entry *ManifestEntry) (*MulliganAssumptions, error) {
	raw, err := readVerified(snapshotDir, entry)
	if err != nil {
		return nil, err
	}
	var ma MulliganAssumptions
	err = decodeVersioned(raw, &ma, func() string { return ma.Version }, expectedMulliganAssumptionsVersion)
	if err != nil {
		return nil, err
	}
	return &ma, nil
}
