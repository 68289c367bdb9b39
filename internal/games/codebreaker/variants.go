package codebreaker

import (
	"fmt"

	"github.com/vovakirdan/tui-codebreaker/internal/config"
	"github.com/vovakirdan/tui-codebreaker/internal/registry"
)

// NewFromVariant builds a game from a configured variant.
func NewFromVariant(v config.Variant) (*Game, error) {
	rules, err := v.EngineRules()
	if err != nil {
		return nil, err
	}
	return newGame(v.ID, v.DisplayTitle(), v.Description, rules), nil
}

// RegisterVariants adds one registry entry per variant. Every variant is
// validated before anything is registered.
func RegisterVariants(variants []config.Variant) error {
	if err := config.Validate(variants); err != nil {
		return err
	}
	for _, v := range variants {
		if registry.Exists(v.ID) {
			return fmt.Errorf("codebreaker: variant %q already registered", v.ID)
		}
	}

	for _, v := range variants {
		g, err := NewFromVariant(v)
		if err != nil {
			return err
		}
		id, title, description, rules := g.id, g.title, g.description, g.rules
		registry.Register(id, func() registry.Game {
			return newGame(id, title, description, rules)
		})
	}
	return nil
}
