// Package config provides YAML-based variant configuration for the
// code-breaking game.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-codebreaker/internal/engine"
)

// File is the on-disk layout of variants.yaml.
type File struct {
	Variants []Variant `yaml:"variants"`
}

// Variant is one named rule set the player can pick.
type Variant struct {
	ID          string      `yaml:"id"`
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Rules       RulesConfig `yaml:"rules"`
}

// RulesConfig mirrors engine.Rules in YAML form.
type RulesConfig struct {
	Pegs        int    `yaml:"pegs"`
	Colors      int    `yaml:"colors"`
	AllowRepeat bool   `yaml:"allow_repeat"`
	MaxAttempts int    `yaml:"max_attempts"`
	TimeLimit   string `yaml:"time_limit"` // Go duration ("90m"); empty or "0" means none
}

// EngineRules converts the YAML form into engine rules and validates them.
func (v Variant) EngineRules() (engine.Rules, error) {
	var limit time.Duration
	if s := strings.TrimSpace(v.Rules.TimeLimit); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return engine.Rules{}, fmt.Errorf("variant %q: time_limit: %w", v.ID, err)
		}
		limit = d
	}

	r := engine.Rules{
		Pegs:        v.Rules.Pegs,
		Colors:      v.Rules.Colors,
		AllowRepeat: v.Rules.AllowRepeat,
		MaxAttempts: v.Rules.MaxAttempts,
		TimeLimit:   limit,
	}
	if err := r.Validate(); err != nil {
		return engine.Rules{}, fmt.Errorf("variant %q: %w", v.ID, err)
	}
	return r, nil
}

// DisplayTitle falls back to the ID when no title is configured.
func (v Variant) DisplayTitle() string {
	if v.Title != "" {
		return v.Title
	}
	return v.ID
}
