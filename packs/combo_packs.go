// SPDX-License-Identifier: MIT
package packs

// SpellbookVariants is the decoded commander_spellbook_variants_v1 pack: a
// local, offline snapshot of combo variant metadata. Runtime treats this as
// strictly local file I/O; the updater that syncs it from a remote source
// lives outside the runtime boundary (spec.md §4.13).
type SpellbookVariants struct {
	Version  string                     `json:"version"`
	Variants map[string]SpellbookVariant `json:"variants"`
}

// SpellbookVariant is one combo variant's metadata.
type SpellbookVariant struct {
	Description string   `json:"description"`
	CardKeys    []string `json:"card_keys"`
}

const expectedSpellbookVariantsVersion = "commander_spellbook_variants_v1"

// LoadSpellbookVariants loads and validates
// commander_spellbook_variants_v1.json.
func LoadSpellbookVariants(snapshotDir string, entry *ManifestEntry) (*SpellbookVariants, error) {
	raw, err := readVerified(snapshotDir, entry)
	if err != nil {
		return nil, err
	}
	var sv SpellbookVariants
	err = decodeVersioned(raw, &sv, func() string { return sv.Version }, expectedSpellbookVariantsVersion)
	if err != nil {
		return nil, err
	}
	return &sv, nil
}

// TwoCardCombos is the decoded two_card_combos_v2 (or, under the one
// documented legacy fallback, two_card_combos_v1) pack.
type TwoCardCombos struct {
	Version string          `json:"version"`
	Combos  []TwoCardCombo  `json:"combos"`
}

// TwoCardCombo is one unordered pair of card keys and the spellbook variant
// ids that realize it.
type TwoCardCombo struct {
	A          string   `json:"a"`
	B          string   `json:"b"`
	VariantIDs []string `json:"variant_ids"`
}

const (
	expectedTwoCardCombosV2Version = "two_card_combos_v2"
	expectedTwoCardCombosV1Version = "two_card_combos_v1"
)

// LoadTwoCardCombosV2 loads and validates two_card_combos_v2.json.
func LoadTwoCardCombosV2(snapshotDir string, entry *ManifestEntry) (*TwoCardCombos, error) {
	raw, err := readVerified(snapshotDir, entry)
	if err != nil {
		return nil, err
	}
	var tc TwoCardCombos
	err = decodeVersioned(raw, &tc, func() string { return tc.Version }, expectedTwoCardCombosV2Version)
	if err != nil {
		return nil, err
	}
	return &tc, nil
}

// LoadTwoCardCombosV1 loads and validates two_card_combos_v1.json. Used only
// as the documented legacy fallback when resolving two_card_combos_v2
// returns ErrManifestEntryNotFound/ErrPackNotFound (spec.md §6, "MISSING").
func LoadTwoCardCombosV1(snapshotDir string, entry *ManifestEntry) (*TwoCardCombos, error) {
	raw, err := readVerified(snapshotDir, entry)
	if err != nil {
		return nil, err
	}
	var tc TwoCardCombos
	err = decodeVersioned(raw, &tc, func() string { return tc.Version }, expectedTwoCardCombosV1Version)
	if err != nil {
		return nil, err
	}
	return &tc, nil
}
