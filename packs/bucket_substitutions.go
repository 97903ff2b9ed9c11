// SPDX-License-Identifier: MIT
package packs

// BucketSubstitutions is the decoded bucket_substitutions_v1 pack: the
// static bucket definitions SubstitutionEngine (layer 4) consumes.
type BucketSubstitutions struct {
	Version string                `json:"version"`
	Buckets map[string]BucketSpec `json:"buckets"`
}

// BucketSpec is one bucket's primary primitives and substitution rules.
type BucketSpec struct {
	PrimaryPrimitives        []string                   `json:"primary_primitives"`
	BaseSubstitutions        []SubstitutionRow          `json:"base_substitutions"`
	ConditionalSubstitutions []ConditionalSubstitution  `json:"conditional_substitutions"`
}

// SubstitutionRow is one (primitive, weight) substitution entry.
type SubstitutionRow struct {
	Primitive string  `json:"primitive"`
	Weight    float64 `json:"weight"`
}

// ConditionalSubstitution gates a list of substitution rows behind a single
// boolean requirement flag. Depth is bounded to this single level — no
// recursive expansion (spec.md §4.4).
type ConditionalSubstitution struct {
	RequirementFlag string            `json:"requirement_flag"`
	Substitutions   []SubstitutionRow `json:"substitutions"`
}

const expectedBucketSubstitutionsVersion = "bucket_substitutions_v1"

// LoadBucketSubstitutions loads and validates bucket_substitutions_v1.json.
// Every substitution weight is checked to lie in [0.0, 1.0], per spec.md
// §4.4.
func LoadBucketSubstitutions(snapshotDir string, entry *ManifestEntry) (*BucketSubstitutions, error) {
	raw, err := readVerified(snapshotDir, entry)
	if err != nil {
		return nil, err
	}
	var bs BucketSubstitutions
	err = decodeVersioned(raw, &bs, func() string { return bs.Version }, expectedBucketSubstitutionsVersion)
	if err != nil {
		return nil, err
	}
	for bucketID, spec := range bs.Buckets {
		for _, row := range spec.BaseSubstitutions {
			if row.Weight < 0.0 || row.Weight > 1.0 {
				return nil, ErrPackMalformed
			}
			_ = bucketID
		}
		for _, cond := range spec.ConditionalSubstitutions {
			for _, row := range cond.Substitutions {
				if row.Weight < 0.0 || row.Weight > 1.0 {
					return nil, ErrPackMalformed
				}
			}
		}
	}
	return &bs, nil
}
