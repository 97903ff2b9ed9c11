// SPDX-License-Identifier: MIT
package packs

// DependencySignatures is the decoded dependency_signatures_v1 pack: a
// mapping from requirement-flag name to a pattern over primitive
// presence/absence (spec.md §4.1, §9 Open Questions — the resolved schema
// is all_of/none_of over primitive ids: a flag is true iff every primitive
// in AllOf is present in the index and none in NoneOf is).
type DependencySignatures struct {
	Version      string                       `json:"version"`
	Requirements map[string]RequirementSignature `json:"requirements"`
}

// RequirementSignature is one requirement flag's evaluation rule.
type RequirementSignature struct {
	AllOf  []string `json:"all_of"`
	NoneOf []string `json:"none_of"`
}

const expectedDependencySignaturesVersion = "dependency_signatures_v1"

// LoadDependencySignatures loads and validates dependency_signatures_v1.json
// against the manifest entry.
func LoadDependencySignatures(snapshotDir string, entry *ManifestEntry) (*DependencySignatures, error) {
	raw, err := readVerified(snapshotDir, entry)
	if err != nil {
		return nil, err
	}
	var ds DependencySignatures
	err = decodeVersioned(raw, &ds, func() string { return ds.Version }, expectedDependencySignaturesVersion)
	if err != nil {
		return nil, err
	}
	return &ds, nil
}
