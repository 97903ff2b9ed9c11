// SPDX-License-Identifier: MIT
package suffsummary

import (
	"sort"

	"github.com/deckforge/sufficiency/coherence"
	"github.com/deckforge/sufficiency/commander"
	"github.com/deckforge/sufficiency/packs"
	"github.com/deckforge/sufficiency/requirements"
	"github.com/deckforge/sufficiency/resilience"
)

// readyChecker is satisfied by every layer payload that embeds layer.Meta.
type readyChecker interface {
	Ready() bool
}

// Inputs collects every upstream value SufficiencySummary reads. Fields are
// typed as readyChecker plus the concrete payload where domain math needs
// its fields directly; a nil concrete payload alongside a non-nil
// readyChecker never happens in practice since they're the same value.
type Inputs struct {
	Requirements      *requirements.Payload
	Coherence         *coherence.Payload
	Substitution      readyChecker
	Checkpoint        readyChecker
	StressDefinition  readyChecker
	StressTransform   readyChecker
	Resilience        *resilience.Payload
	Commander         *commander.Payload
	PlayableSlotCount int
}

// allReady reports whether every required upstream payload is present and
// in {OK, WARN}. Concrete pointers are checked directly rather than through
// the readyChecker interface: a nil *T boxed in an interface value is
// itself non-nil, so an interface-level nil check would miss it.
func (in Inputs) allReady() bool {
	if in.Requirements == nil || !in.Requirements.Ready() {
		return false
	}
	if in.Coherence == nil || !in.Coherence.Ready() {
		return false
	}
	if in.Substitution == nil || !in.Substitution.Ready() {
		return false
	}
	if in.Checkpoint == nil || !in.Checkpoint.Ready() {
		return false
	}
	if in.StressDefinition == nil || !in.StressDefinition.Ready() {
		return false
	}
	if in.StressTransform == nil || !in.StressTransform.Ready() {
		return false
	}
	if in.Resilience == nil || !in.Resilience.Ready() {
		return false
	}
	if in.Commander == nil || !in.Commander.Ready() {
		return false
	}
	return true
}

// Evaluate produces layer 12's payload: the aggregate sufficiency verdict.
func Evaluate(in Inputs, thresholds *packs.ProfileThresholds, profileID string) *Payload {
	if !in.allReady() {
		return &Payload{
			Version:    PayloadVersion,
			Status:     StatusSkip,
			ReasonCode: CodeUpstreamPhase3Unavailable,
			Codes:      []string{CodeUpstreamPhase3Unavailable},
		}
	}
	if thresholds == nil {
		return &Payload{
			Version:    PayloadVersion,
			Status:     StatusSkip,
			ReasonCode: CodeProfileThresholdsUnavailable,
			Codes:      []string{CodeProfileThresholdsUnavailable},
		}
	}
	if thresholds.CalibrationSnapshotVersion == "" {
		return &Payload{
			Version:    PayloadVersion,
			Status:     StatusSkip,
			ReasonCode: CodeCalibrationSnapshotUnavailable,
			Codes:      []string{CodeCalibrationSnapshotUnavailable},
		}
	}
	domainThresholds, ok := thresholds.Profiles[profileID]
	if !ok {
		return &Payload{
			Version:    PayloadVersion,
			Status:     StatusSkip,
			ReasonCode: CodeProfileThresholdsUnavailable,
			Codes:      []string{CodeProfileThresholdsUnavailable},
		}
	}

	domains := map[DomainID]DomainVerdict{
		DomainRequiredEffects: evaluateRequiredEffects(in.Requirements, domainThresholds.RequiredEffects),
		DomainBaselineProb:    evaluateBaselineProb(in.Commander, domainThresholds.BaselineProb),
		DomainStressProb:      evaluateStressProb(in.Resilience, domainThresholds.StressProb),
		DomainCoherence:       evaluateCoherence(in.Coherence, in.PlayableSlotCount, domainThresholds.Coherence),
		DomainResilience:      evaluateResilience(in.Resilience, domainThresholds.Resilience),
		DomainCommander:       evaluateCommander(in.Commander, domainThresholds.Commander, in.Requirements.CommanderDependent),
	}

	aggregate := StatusPass
	var allCodes []string
	for _, id := range DomainOrder {
		v := domains[id]
		allCodes = append(allCodes, v.Codes...)
		aggregate = worstOf(aggregate, v.Status)
	}
	sort.Strings(allCodes)

	return &Payload{
		Version:                    PayloadVersion,
		Status:                     aggregate,
		Codes:                      allCodes,
		ProfileThresholdsVersion:   thresholds.Version,
		CalibrationSnapshotVersion: thresholds.CalibrationSnapshotVersion,
		SelectedProfileID:          profileID,
		SelectionSource:            "explicit",
		Domains:                    domains,
	}
}

// worstOf composes two AggregateStatus values under the fixed
// SKIP > FAIL > WARN > PASS precedence.
func worstOf(a, b AggregateStatus) AggregateStatus {
	rank := map[AggregateStatus]int{StatusPass: 0, StatusWarn: 1, StatusFail: 2, StatusSkip: 3}
	if rank[b] > rank[a] {
		return b
	}
	return a
}

func evaluateRequiredEffects(req *requirements.Payload, t packs.RequiredEffectsThresholds) DomainVerdict {
	missing := 0
	for _, satisfied := range req.EngineRequirements {
		if !satisfied {
			missing++
		}
	}
	unknowns := 0
	for _, c := range req.Codes {
		if c == requirements.CodeUnknownPrimitiveIDInSignatures {
			unknowns = 1
		}
	}

	if missing > t.MaxMissing {
		return DomainVerdict{Status: StatusFail, Codes: []string{}}
	}
	if unknowns > t.MaxUnknowns {
		return DomainVerdict{Status: StatusWarn, Codes: []string{}}
	}
	return DomainVerdict{Status: StatusPass, Codes: []string{}}
}

func evaluateBaselineProb(cmdr *commander.Payload, t packs.BaselineProbThresholds) DomainVerdict {
	if cmdr.CastReliabilityT3 < t.MinT3 || cmdr.CastReliabilityT4 < t.MinT4 || cmdr.CastReliabilityT6 < t.MinT6 {
		return DomainVerdict{Status: StatusFail, Codes: []string{}}
	}
	return DomainVerdict{Status: StatusPass, Codes: []string{}}
}

func evaluateStressProb(res *resilience.Payload, t packs.StressProbThresholds) DomainVerdict {
	if res.EngineContinuityAfterRemoval < t.MinContinuity ||
		res.RebuildAfterWipe < t.MinRebuild ||
		res.GraveyardFragilityDelta > t.MaxGraveyardFragility {
		return DomainVerdict{Status: StatusFail, Codes: []string{}}
	}
	return DomainVerdict{Status: StatusPass, Codes: []string{}}
}

func evaluateCoherence(coh *coherence.Payload, playableSlotCount int, t packs.CoherenceThresholds) DomainVerdict {
	deadSlotRatio := 0.0
	if playableSlotCount > 0 {
		deadSlotRatio = float64(coh.DeadSlotCount) / float64(playableSlotCount)
	}
	if deadSlotRatio > t.MaxDeadSlotRatio || coh.OverlapScore < t.MinOverlapScore {
		return DomainVerdict{Status: StatusFail, Codes: []string{}}
	}
	return DomainVerdict{Status: StatusPass, Codes: []string{}}
}

func evaluateResilience(res *resilience.Payload, t packs.ResilienceThresholds) DomainVerdict {
	if res.CommanderFragilityDelta == nil {
		return DomainVerdict{Status: StatusWarn, Codes: []string{}}
	}
	if *res.CommanderFragilityDelta > t.MaxCommanderFragility {
		return DomainVerdict{Status: StatusFail, Codes: []string{}}
	}
	return DomainVerdict{Status: StatusPass, Codes: []string{}}
}

func evaluateCommander(cmdr *commander.Payload, t packs.CommanderThresholds, commanderDependent requirements.CommanderDependent) DomainVerdict {
	status := StatusPass

	if commanderDependent != requirements.CommanderDependentLow {
		if cmdr.ProtectionCoverageProxy == nil {
			status = worstOfAggregate(status, StatusWarn)
		} else if *cmdr.ProtectionCoverageProxy < t.MinProtectionCoverage {
			status = worstOfAggregate(status, StatusFail)
		}
	}

	if cmdr.CommanderFragilityDelta == nil {
		status = worstOfAggregate(status, StatusWarn)
	} else if *cmdr.CommanderFragilityDelta > t.MaxCommanderFragility {
		status = worstOfAggregate(status, StatusFail)
	}

	return DomainVerdict{Status: status, Codes: []string{}}
}

func worstOfAggregate(a, b AggregateStatus) AggregateStatus {
	return worstOf(a, b)
}

// AllCodes returns this payload's codes list. Payload does not embed
// layer.Meta (its status vocabulary differs), so it implements this
// directly rather than inheriting it.
func (p *Payload) AllCodes() []string {
	return p.Codes
}
