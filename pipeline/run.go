// SPDX-License-Identifier: MIT
package pipeline

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/deckforge/sufficiency/buildhash"
	"github.com/deckforge/sufficiency/checkpoint"
	"github.com/deckforge/sufficiency/coherence"
	"github.com/deckforge/sufficiency/combopack"
	"github.com/deckforge/sufficiency/commander"
	"github.com/deckforge/sufficiency/mulligan"
	"github.com/deckforge/sufficiency/packs"
	"github.com/deckforge/sufficiency/primindex"
	"github.com/deckforge/sufficiency/probcore"
	"github.com/deckforge/sufficiency/requirements"
	"github.com/deckforge/sufficiency/resilience"
	"github.com/deckforge/sufficiency/stress"
	"github.com/deckforge/sufficiency/substitution"
	"github.com/deckforge/sufficiency/suffsummary"
	"github.com/deckforge/sufficiency/weights"
)

// Config is one run's fixed inputs: identity fields echoed into
// BuildResult, selection fields threaded to the layers that branch on them,
// and the deck's compiled state.
type Config struct {
	EngineVersion          string
	RulesetVersion         string
	DBSnapshotID           string
	Format                 string
	ProfileID              string
	BracketID              string
	RequestOverrideModelID string
	DeckSize               int
	PlayableSlotIDs        []string
	DeckCardKeys           []string
}

// Driver runs the pipeline. It carries no state of its own; its only
// purpose is to give Run a ctx-cancellable method on a named type rather
// than a bare package function.
type Driver struct{}

// NewDriver returns a ready-to-use Driver.
func NewDriver() *Driver {
	return &Driver{}
}

// Run executes all thirteen layers in dependency order and assembles the
// final BuildResult, including its content hashes. ctx is checked once
// between each layer group for cancellation (spec.md §5: the computation
// itself has no suspension points, so a cancellation can only land between
// layers, never inside one's arithmetic, and therefore never observes a
// partial LayerPayload).
func (d *Driver) Run(ctx context.Context, idx *primindex.PrimitiveIndex, packSet *packs.Set, cfg Config) (*BuildResult, error) {
	deckSize := cfg.DeckSize
	if deckSize <= 0 {
		deckSize = 99
	}

	reqPayload := requirements.Evaluate(idx, packSet.DependencySignatures)
	cohPayload := coherence.Evaluate(idx, cfg.PlayableSlotIDs)
	mulPayload := mulligan.Evaluate(packSet.MulliganAssumptions, cfg.Format, deckSize)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	engineReqsAvailable := reqPayload.Ready()
	subPayload := substitution.Evaluate(
		packSet.BucketSubstitutions, idx, cfg.PlayableSlotIDs,
		reqPayload.EngineRequirements, engineReqsAvailable, deckSize,
	)

	subBucketIDs := make([]string, 0, len(subPayload.Buckets))
	for _, b := range subPayload.Buckets {
		subBucketIDs = append(subBucketIDs, b.BucketID)
	}
	sort.Strings(subBucketIDs)

	weightPayload := weights.Evaluate(packSet.WeightRules, cfg.Format, subBucketIDs, reqPayload.EngineRequirements)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	checkpointPayload := checkpoint.Evaluate(mulPayload, subPayload, deckSize)

	stressDefPayload := stress.SelectModel(packSet.StressModels, cfg.Format, cfg.ProfileID, cfg.BracketID, cfg.RequestOverrideModelID)
	stressTransformPayload := stress.Transform(stressDefPayload, checkpointPayload, subPayload, deckSize)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	commanderDependent := requirements.CommanderDependentUnknown
	if reqPayload.Ready() {
		commanderDependent = reqPayload.CommanderDependent
	}

	resiliencePayload := resilience.Evaluate(checkpointPayload, subPayload, stressTransformPayload, commanderDependent)
	commanderPayload := commander.Evaluate(checkpointPayload, stressTransformPayload, idx, cfg.PlayableSlotIDs, commanderDependent)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	suffPayload := suffsummary.Evaluate(suffsummary.Inputs{
		Requirements:      reqPayload,
		Coherence:         cohPayload,
		Substitution:      subPayload,
		Checkpoint:        checkpointPayload,
		StressDefinition:  stressDefPayload,
		StressTransform:   stressTransformPayload,
		Resilience:        resiliencePayload,
		Commander:         commanderPayload,
		PlayableSlotCount: len(primindex.NormalizeIDs(cfg.PlayableSlotIDs)),
	}, packSet.ProfileThresholds, cfg.ProfileID)

	var comboMatches []combopack.Match
	if packSet.TwoCardCombos != nil {
		comboMatches = combopack.DetectTwoCardCombos(cfg.DeckCardKeys, packSet.TwoCardCombos, combopack.DefaultMaxMatches)
	} else {
		comboMatches = []combopack.Match{}
	}

	pipelineVersions := map[string]string{
		"requirement_detection_version":   requirements.PayloadVersion,
		"coherence_version":               coherence.PayloadVersion,
		"mulligan_model_version":          mulligan.PayloadVersion,
		"substitution_engine_version":     substitution.PayloadVersion,
		"weight_multiplier_version":       weights.PayloadVersion,
		"probability_math_core_version":   probcore.Version,
		"probability_checkpoint_version":  checkpoint.PayloadVersion,
		"stress_model_definition_version": stress.DefinitionPayloadVersion,
		"stress_transform_version":        stress.TransformPayloadVersion,
		"resilience_math_version":         resilience.PayloadVersion,
		"commander_reliability_version":   commander.PayloadVersion,
		"sufficiency_summary_version":     suffsummary.PayloadVersion,
	}

	availablePanels := map[string]bool{
		"requirement_detection":   reqPayload.Ready(),
		"coherence":               cohPayload.Ready(),
		"mulligan_model":          mulPayload.Ready(),
		"substitution_engine":     subPayload.Ready(),
		"weight_multiplier":       weightPayload.Ready(),
		"probability_checkpoint":  checkpointPayload.Ready(),
		"stress_model_definition": stressDefPayload.Ready(),
		"stress_transform":        stressTransformPayload.Ready(),
		"resilience_math":         resiliencePayload.Ready(),
		"commander_reliability":   commanderPayload.Ready(),
		"sufficiency_summary":     suffPayload.Status != suffsummary.StatusSkip,
		"combopack":               packSet.TwoCardCombos != nil,
	}

	result := Result{
		AvailablePanels:  availablePanels,
		PipelineVersions: pipelineVersions,
		Requirements:     reqPayload,
		Coherence:        cohPayload,
		Mulligan:         mulPayload,
		Substitution:     subPayload,
		Weights:          weightPayload,
		Checkpoint:       checkpointPayload,
		StressDefinition: stressDefPayload,
		StressTransform:  stressTransformPayload,
		Resilience:       resiliencePayload,
		Commander:        commanderPayload,
		SuffSummary:      suffPayload,
		ComboMatches:     comboMatches,
	}

	layers := map[string]interface{}{
		"requirement_detection":   reqPayload,
		"coherence":               cohPayload,
		"mulligan_model":          mulPayload,
		"substitution_engine":     subPayload,
		"weight_multiplier":       weightPayload,
		"probability_checkpoint":  checkpointPayload,
		"stress_model_definition": stressDefPayload,
		"stress_transform":        stressTransformPayload,
		"resilience_math":         resiliencePayload,
		"commander_reliability":   commanderPayload,
		"sufficiency_summary":     suffPayload,
		"combopack":               comboMatches,
	}

	buildHash, err := buildhash.ComputeBuildHash(pipelineVersions, layers)
	if err != nil {
		buildHash = ""
	}

	var graphHash string
	if idx != nil {
		graphHash, _ = buildhash.ComputeGraphHash(idx.Snapshot())
	}

	return &BuildResult{
		RunID:          uuid.NewString(),
		EngineVersion:  cfg.EngineVersion,
		RulesetVersion: cfg.RulesetVersion,
		DBSnapshotID:   cfg.DBSnapshotID,
		ProfileID:      cfg.ProfileID,
		BracketID:      cfg.BracketID,
		Status:         string(suffPayload.Status),
		BuildHashV1:    buildHash,
		GraphHashV2:    graphHash,
		Unknowns:       collectUnknowns(layers),
		Result:         result,
	}, nil
}

// codeLister is satisfied by every layer payload; suffsummary.Payload and
// every layer.Meta-embedding payload both expose Codes this way.
type codeLister interface {
	AllCodes() []string
}

// collectUnknowns returns the sorted, deduplicated set of codes containing
// "UNKNOWN" across every layer payload — spec.md §6's top-level `unknowns[]`
// is never otherwise defined, so this substitutes the one thing every
// layer's closed code set actually names "unknown" about (see DESIGN.md).
func collectUnknowns(layers map[string]interface{}) []string {
	seen := make(map[string]struct{})
	for _, v := range layers {
		cl, ok := v.(codeLister)
		if !ok {
			continue
		}
		for _, c := range cl.AllCodes() {
			if strings.Contains(c, "UNKNOWN") {
				seen[c] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
