// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SlotConfig is one deck slot: the primitive tags the coverage layers key
// off and, optionally, the card key combopack matches two-card combos
// against.
type SlotConfig struct {
	Primitives []string `yaml:"primitives"`
	CardKey    string   `yaml:"card_key"`
}

// DeckConfig is the whole 99-card deck as the CLI reads it off disk: one
// entry per slot, keyed by slot id, plus which slot (if any) is commander.
type DeckConfig struct {
	CommanderSlotID string                `yaml:"commander_slot_id"`
	Slots           map[string]SlotConfig `yaml:"slots"`
}

// Config is the CLI's run configuration: where the curated data packs
// live, identity fields echoed into the build result, and the deck itself.
type Config struct {
	SnapshotDir            string     `yaml:"snapshot_dir"`
	ManifestPath           string     `yaml:"manifest_path"`
	EngineVersion          string     `yaml:"engine_version"`
	RulesetVersion         string     `yaml:"ruleset_version"`
	DBSnapshotID           string     `yaml:"db_snapshot_id"`
	Format                 string     `yaml:"format"`
	ProfileID              string     `yaml:"profile_id"`
	BracketID              string     `yaml:"bracket_id"`
	RequestOverrideModelID string     `yaml:"request_override_model_id"`
	LogLevel               string     `yaml:"log_level"`
	LogFormat              string     `yaml:"log_format"`
	Deck                   DeckConfig `yaml:"deck"`
}

// DefaultConfig returns the configuration written out when no config file
// is found at startup.
func DefaultConfig() *Config {
	return &Config{
		SnapshotDir:    ".",
		ManifestPath:   "manifest.json",
		EngineVersion:  "dev",
		RulesetVersion: "dev",
		DBSnapshotID:   "dev",
		Format:         "commander",
		ProfileID:      "default",
		BracketID:      "core",
		LogLevel:       "info",
		LogFormat:      "text",
		Deck:           DeckConfig{Slots: map[string]SlotConfig{}},
	}
}

// Save writes cfg to path as YAML.
func (cfg *Config) Save(path string) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// LoadConfig reads a Config from path, writing and returning a default one
// if the file does not yet exist.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			if saveErr := cfg.Save(path); saveErr != nil {
				return nil, fmt.Errorf("failed to create default config: %w", saveErr)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
