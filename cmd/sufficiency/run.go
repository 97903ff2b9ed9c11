// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/deckforge/sufficiency/internal/obslog"
	"github.com/deckforge/sufficiency/packs"
	"github.com/deckforge/sufficiency/pipeline"
	"github.com/deckforge/sufficiency/primindex"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Args:  cobra.NoArgs,
	Short: "Compile one sufficiency build from a deck and a curated pack snapshot",
	Long:  `Loads the deck and curated data packs named in the config file and prints the resulting build result as JSON.`,
	RunE:  runBuild,
}

func init() {
	runCmd.Flags().String("deck-bracket", "", "bracket id override (defaults to config value)")
	runCmd.Flags().String("model", "", "requested stress model id override")
}

func runBuild(cmd *cobra.Command, args []string) error {
	configPath := cfgFile
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	bracketOverride, _ := cmd.Flags().GetString("deck-bracket")
	if bracketOverride != "" {
		cfg.BracketID = bracketOverride
	}
	modelOverride, _ := cmd.Flags().GetString("model")
	if modelOverride != "" {
		cfg.RequestOverrideModelID = modelOverride
	}

	logLevel := obslog.Level(cfg.LogLevel)
	if verbose {
		logLevel = obslog.LevelDebug
	}
	logger := obslog.New(obslog.Config{
		Level:  logLevel,
		Format: obslog.Format(cfg.LogFormat),
		Output: os.Stdout,
	})

	idx, deckCardKeys, err := buildPrimitiveIndex(cfg.Deck)
	if err != nil {
		return fmt.Errorf("failed to build primitive index: %w", err)
	}

	packSet, warnings := packs.Open(cfg.SnapshotDir, cfg.ManifestPath)
	if packSet == nil {
		for _, w := range warnings {
			logger.Error("failed to open pack manifest", w)
		}
		return fmt.Errorf("failed to open curated pack manifest at %s", cfg.ManifestPath)
	}
	for _, w := range warnings {
		logger.Warn("pack unavailable: " + w.Error())
	}

	logger.LogBuildStart(cfg.ProfileID, cfg.BracketID, len(idx.SlotIDs()))

	result, err := pipeline.NewDriver().Run(context.Background(), idx, packSet, pipeline.Config{
		EngineVersion:          cfg.EngineVersion,
		RulesetVersion:         cfg.RulesetVersion,
		DBSnapshotID:           cfg.DBSnapshotID,
		Format:                 cfg.Format,
		ProfileID:              cfg.ProfileID,
		BracketID:              cfg.BracketID,
		RequestOverrideModelID: cfg.RequestOverrideModelID,
		DeckSize:               len(idx.SlotIDs()),
		PlayableSlotIDs:        idx.SlotIDs(),
		DeckCardKeys:           deckCardKeys,
	})
	if err != nil {
		return fmt.Errorf("pipeline run failed: %w", err)
	}

	logger.WithField("run_id", result.RunID).LogBuildComplete(result.Status, result.BuildHashV1, len(result.Unknowns))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// buildPrimitiveIndex compiles a primindex.PrimitiveIndex and the deck's
// card-key list from the CLI's YAML deck configuration.
func buildPrimitiveIndex(deck DeckConfig) (*primindex.PrimitiveIndex, []string, error) {
	bySlot := make(map[string][]string, len(deck.Slots))
	cardKeys := make([]string, 0, len(deck.Slots))
	for slot, s := range deck.Slots {
		bySlot[slot] = s.Primitives
		if s.CardKey != "" {
			cardKeys = append(cardKeys, s.CardKey)
		}
	}
	sort.Strings(cardKeys)

	idx, err := primindex.New(bySlot, deck.CommanderSlotID)
	if err != nil {
		return nil, nil, err
	}
	return idx, cardKeys, nil
}
