package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNoVariants is returned when a variants file defines nothing playable.
var ErrNoVariants = errors.New("config: no variants defined")

const variantsFile = "variants.yaml"

// LoadVariants loads and validates the variant list.
// Search order: customPath -> ~/.codebreaker/configs/variants.yaml -> ./configs/variants.yaml -> embedded default
func LoadVariants(customPath string) ([]Variant, error) {
	// Custom path errors are fatal
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		variants, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return variants, nil
	}

	// Optional files fall through only when missing
	candidates := []string{filepath.Join("configs", variantsFile)}
	if userCfgPath := userConfigPath(variantsFile); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		variants, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return variants, nil
	}

	// Use embedded default YAML
	variants, err := Parse(defaultVariantsYAML)
	if err != nil {
		return DefaultVariants(), nil // Fallback to hardcoded if embed fails
	}
	return variants, nil
}

// Parse decodes a variants file and validates it.
func Parse(data []byte) ([]Variant, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if err := Validate(f.Variants); err != nil {
		return nil, err
	}
	return f.Variants, nil
}

// Validate checks IDs are present and unique and every rule set is playable.
func Validate(variants []Variant) error {
	if len(variants) == 0 {
		return ErrNoVariants
	}
	seen := make(map[string]bool, len(variants))
	for i, v := range variants {
		if v.ID == "" {
			return fmt.Errorf("config: variant #%d has no id", i+1)
		}
		if seen[v.ID] {
			return fmt.Errorf("config: duplicate variant id %q", v.ID)
		}
		seen[v.ID] = true
		if _, err := v.EngineRules(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".codebreaker", "configs", filename)
}
