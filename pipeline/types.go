// SPDX-License-Identifier: MIT
package pipeline

import (
	"github.com/deckforge/sufficiency/checkpoint"
	"github.com/deckforge/sufficiency/coherence"
	"github.com/deckforge/sufficiency/combopack"
	"github.com/deckforge/sufficiency/commander"
	"github.com/deckforge/sufficiency/mulligan"
	"github.com/deckforge/sufficiency/resilience"
	"github.com/deckforge/sufficiency/requirements"
	"github.com/deckforge/sufficiency/stress"
	"github.com/deckforge/sufficiency/substitution"
	"github.com/deckforge/sufficiency/suffsummary"
	"github.com/deckforge/sufficiency/weights"
)

// LayerNode is one node of the fixed sufficiency-pipeline DAG: a layer name
// as it appears under result.<layer_name> plus the layer names it reads.
type LayerNode struct {
	Name      string
	DependsOn []string
}

// LayerDAG is the compile-time-fixed dependency graph of all thirteen
// layers (spec.md §2). ComboPack is auxiliary: it depends on nothing but
// the raw deck card keys and is not consumed by any other layer.
var LayerDAG = []LayerNode{
	{Name: "requirement_detection"},
	{Name: "coherence"},
	{Name: "mulligan_model"},
	{Name: "substitution_engine", DependsOn: []string{"requirement_detection"}},
	{Name: "weight_multiplier", DependsOn: []string{"substitution_engine", "requirement_detection"}},
	{Name: "probability_math_core"},
	{Name: "probability_checkpoint", DependsOn: []string{"mulligan_model", "substitution_engine", "probability_math_core"}},
	{Name: "stress_model_definition"},
	{Name: "stress_transform", DependsOn: []string{"stress_model_definition", "probability_checkpoint", "substitution_engine", "probability_math_core"}},
	{Name: "resilience_math", DependsOn: []string{"probability_checkpoint", "substitution_engine", "stress_transform", "requirement_detection"}},
	{Name: "commander_reliability", DependsOn: []string{"probability_checkpoint", "stress_transform"}},
	{Name: "sufficiency_summary", DependsOn: []string{
		"requirement_detection", "coherence", "substitution_engine", "probability_checkpoint",
		"stress_model_definition", "stress_transform", "resilience_math", "commander_reliability",
	}},
	{Name: "combopack"},
}

// Result is the ResultEnvelope: every layer's compiled payload plus the
// version pins and availability flags spec.md §6 requires.
type Result struct {
	AvailablePanels  map[string]bool            `json:"available_panels_v1"`
	PipelineVersions map[string]string          `json:"pipeline_versions"`
	Requirements     *requirements.Payload      `json:"requirement_detection"`
	Coherence        *coherence.Payload         `json:"coherence"`
	Mulligan         *mulligan.Payload          `json:"mulligan_model"`
	Substitution     *substitution.Payload      `json:"substitution_engine"`
	Weights          *weights.Payload           `json:"weight_multiplier"`
	Checkpoint       *checkpoint.Payload        `json:"probability_checkpoint"`
	StressDefinition *stress.DefinitionPayload  `json:"stress_model_definition"`
	StressTransform  *stress.TransformPayload   `json:"stress_transform"`
	Resilience       *resilience.Payload        `json:"resilience_math"`
	Commander        *commander.Payload         `json:"commander_reliability"`
	SuffSummary      *suffsummary.Payload       `json:"sufficiency_summary"`
	ComboMatches     []combopack.Match          `json:"combopack"`
}

// BuildResult is the top-level output of one pipeline run (spec.md §6).
type BuildResult struct {
	// RunID is a process-local correlation id for log lines only. It is
	// generated fresh on every call, so it must never reach the serialized
	// output: two byte-identical runs (spec.md §3, §8 property 1) would
	// otherwise emit different JSON. json:"-" keeps it off the wire while
	// still letting callers attach it to their own log lines.
	RunID          string   `json:"-"`
	EngineVersion  string   `json:"engine_version"`
	RulesetVersion string   `json:"ruleset_version"`
	DBSnapshotID   string   `json:"db_snapshot_id"`
	ProfileID      string   `json:"profile_id"`
	BracketID      string   `json:"bracket_id"`
	Status         string   `json:"status"`
	BuildHashV1    string   `json:"build_hash_v1"`
	GraphHashV2    string   `json:"graph_hash_v2,omitempty"`
	Unknowns       []string `json:"unknowns"`
	Result         Result   `json:"result"`
}
