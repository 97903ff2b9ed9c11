// SPDX-License-Identifier: MIT
package suffsummary

// PayloadVersion pins this layer's compiled version.
const PayloadVersion = "sufficiency_summary_v1"

// AggregateStatus is the closed verdict vocabulary for this layer alone
// (spec.md §3, GLOSSARY): every other layer uses layer.Status {OK, WARN,
// SKIP, ERROR}.
type AggregateStatus string

const (
	StatusPass AggregateStatus = "PASS"
	StatusWarn AggregateStatus = "WARN"
	StatusFail AggregateStatus = "FAIL"
	StatusSkip AggregateStatus = "SKIP"
)

// Closed code set for this layer.
const (
	CodeUpstreamPhase3Unavailable      = "UPSTREAM_PHASE3_UNAVAILABLE"
	CodeProfileThresholdsUnavailable   = "PROFILE_THRESHOLDS_UNAVAILABLE"
	CodeCalibrationSnapshotUnavailable = "CALIBRATION_SNAPSHOT_UNAVAILABLE"
)

// DomainID is the closed, fixed-order vocabulary of sufficiency domains.
type DomainID string

const (
	DomainRequiredEffects DomainID = "required_effects"
	DomainBaselineProb    DomainID = "baseline_prob"
	DomainStressProb      DomainID = "stress_prob"
	DomainCoherence       DomainID = "coherence"
	DomainResilience      DomainID = "resilience"
	DomainCommander       DomainID = "commander"
)

// DomainOrder is the fixed order in which Evaluate folds the domain verdicts
// into the aggregate status and collects their codes (spec.md §4.12).
// Payload.Domains is a map, so its JSON encoding lists the domain keys in
// sorted order, not in DomainOrder.
var DomainOrder = []DomainID{
	DomainRequiredEffects,
	DomainBaselineProb,
	DomainStressProb,
	DomainCoherence,
	DomainResilience,
	DomainCommander,
}

// DomainVerdict is one domain's evaluated status.
type DomainVerdict struct {
	Status AggregateStatus `json:"status"`
	Codes  []string        `json:"codes"`
}

// Payload is the LayerPayload for SufficiencySummary. It does not embed
// layer.Meta: its status vocabulary is PASS/WARN/FAIL/SKIP, not
// layer.Status's OK/WARN/SKIP/ERROR.
type Payload struct {
	Version                    string                     `json:"version"`
	Status                     AggregateStatus            `json:"status"`
	ReasonCode                 string                     `json:"reason_code,omitempty"`
	Codes                      []string                   `json:"codes"`
	ProfileThresholdsVersion   string                     `json:"profile_thresholds_version,omitempty"`
	CalibrationSnapshotVersion string                     `json:"calibration_snapshot_version,omitempty"`
	SelectedProfileID          string                     `json:"selected_profile_id,omitempty"`
	SelectionSource            string                     `json:"selection_source,omitempty"`
	Domains                    map[DomainID]DomainVerdict `json:"domains,omitempty"`
}
