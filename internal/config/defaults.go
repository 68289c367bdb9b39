package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-codebreaker/internal/engine"
)

//go:embed defaults/variants.yaml
var defaultVariantsYAML []byte

// DefaultVariants returns the built-in variants used when the embedded
// YAML cannot be parsed.
func DefaultVariants() []Variant {
	r := engine.ClassicRules()
	return []Variant{
		{
			ID:          "classic",
			Title:       "Classic",
			Description: "Four pegs, four colors, no repeats",
			Rules: RulesConfig{
				Pegs:        r.Pegs,
				Colors:      r.Colors,
				AllowRepeat: r.AllowRepeat,
				MaxAttempts: r.MaxAttempts,
				TimeLimit:   r.TimeLimit.String(),
			},
		},
	}
}

// DefaultYAML returns the embedded default variants file.
func DefaultYAML() []byte {
	return defaultVariantsYAML
}
