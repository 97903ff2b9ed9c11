// SPDX-License-Identifier: MIT
package packs

import "errors"

// Pack ids as they appear in the curated manifest's pack_id field.
const (
	IDDependencySignatures = "dependency_signatures_v1"
	IDMulliganAssumptions  = "mulligan_assumptions_v1"
	IDBucketSubstitutions  = "bucket_substitutions_v1"
	IDWeightRules          = "weight_rules_v1"
	IDStressModels         = "stress_models_v1"
	IDProfileThresholds    = "profile_thresholds_v1"
	IDSpellbookVariants    = "commander_spellbook_variants_v1"
	IDTwoCardCombosV2      = "two_card_combos_v2"
	IDTwoCardCombosV1      = "two_card_combos_v1"
)

// Set is every data pack the pipeline needs, loaded once at pipeline start
// into immutable in-memory structures shared by read-only reference across
// all layers. A nil field means that pack was unavailable; layers consuming
// it SKIP per spec.md §7.
type Set struct {
	DependencySignatures *DependencySignatures
	MulliganAssumptions  *MulliganAssumptions
	BucketSubstitutions  *BucketSubstitutions
	WeightRules          *WeightRules
	StressModels         *StressModels
	ProfileThresholds    *ProfileThresholds
	SpellbookVariants    *SpellbookVariants
	TwoCardCombos        *TwoCardCombos
	// TwoCardCombosIsLegacy is true when TwoCardCombos was loaded via the
	// documented v2->v1 legacy fallback.
	TwoCardCombosIsLegacy bool
}

// Open loads every pack named in the curated manifest found at
// manifestPath, rooted under snapshotDir. Individual pack load failures are
// not fatal to Open: a nil field on the returned Set records the failure so
// callers (the pipeline driver) can translate it into a per-layer SKIP, per
// spec.md §7's availability/propagation model, and the load error is
// appended to the returned error slice. Open returns a nil Set only when the
// manifest itself cannot be loaded.
func Open(snapshotDir, manifestPath string) (*Set, []error) {
	manifest, err := LoadManifest(manifestPath)
	if err != nil {
		return nil, []error{err}
	}

	var warnings []error
	set := &Set{}

	if e, err := manifest.Resolve(IDDependencySignatures, ""); err == nil {
		if v, lerr := LoadDependencySignatures(snapshotDir, e); lerr == nil {
			set.DependencySignatures = v
		} else {
			warnings = append(warnings, lerr)
		}
	} else {
		warnings = append(warnings, err)
	}

	if e, err := manifest.Resolve(IDMulliganAssumptions, ""); err == nil {
		if v, lerr := LoadMulliganAssumptions(snapshotDir, e); lerr == nil {
			set.MulliganAssumptions = v
		} else {
			warnings = append(warnings, lerr)
		}
	} else {
		warnings = append(warnings, err)
	}

	if e, err := manifest.Resolve(IDBucketSubstitutions, ""); err == nil {
		if v, lerr := LoadBucketSubstitutions(snapshotDir, e); lerr == nil {
			set.BucketSubstitutions = v
		} else {
			warnings = append(warnings, lerr)
		}
	} else {
		warnings = append(warnings, err)
	}

	if e, err := manifest.Resolve(IDWeightRules, ""); err == nil {
		if v, lerr := LoadWeightRules(snapshotDir, e); lerr == nil {
			set.WeightRules = v
		} else {
			warnings = append(warnings, lerr)
		}
	} else {
		warnings = append(warnings, err)
	}

	if e, err := manifest.Resolve(IDStressModels, ""); err == nil {
		if v, lerr := LoadStressModels(snapshotDir, e); lerr == nil {
			set.StressModels = v
		} else {
			warnings = append(warnings, lerr)
		}
	} else {
		warnings = append(warnings, err)
	}

	if e, err := manifest.Resolve(IDProfileThresholds, ""); err == nil {
		if v, lerr := LoadProfileThresholds(snapshotDir, e); lerr == nil {
			set.ProfileThresholds = v
		} else {
			warnings = append(warnings, lerr)
		}
	} else {
		warnings = append(warnings, err)
	}

	if e, err := manifest.Resolve(IDSpellbookVariants, ""); err == nil {
		if v, lerr := LoadSpellbookVariants(snapshotDir, e); lerr == nil {
			set.SpellbookVariants = v
		} else {
			warnings = append(warnings, lerr)
		}
	} else {
		warnings = append(warnings, err)
	}

	if err := set.loadTwoCardCombos(snapshotDir, manifest); err != nil {
		warnings = append(warnings, err)
	}

	return set, warnings
}

// loadTwoCardCombos implements the one documented legacy fallback: try
// two_card_combos_v2 first, and only on MISSING (no manifest entry, or the
// file is absent) fall back to two_card_combos_v1. Any other v2 load error
// (unreadable, hash or version mismatch, malformed) is returned as is.
func (s *Set) loadTwoCardCombos(snapshotDir string, manifest *Manifest) error {
	e2, err2 := manifest.Resolve(IDTwoCardCombosV2, "")
	if err2 == nil {
		v, lerr := LoadTwoCardCombosV2(snapshotDir, e2)
		if lerr == nil {
			s.TwoCardCombos = v
			return nil
		}
		if !errors.Is(lerr, ErrPackNotFound) {
			return lerr
		}
	}

	e1, err1 := manifest.Resolve(IDTwoCardCombosV1, "")
	if err1 != nil {
		if err2 != nil {
			return err2
		}
		return err1
	}
	v, lerr := LoadTwoCardCombosV1(snapshotDir, e1)
	if lerr != nil {
		return lerr
	}
	s.TwoCardCombos = v
	s.TwoCardCombosIsLegacy = true
	return nil
}
