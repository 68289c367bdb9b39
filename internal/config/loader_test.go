package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-codebreaker/internal/engine"
)

func TestEmbeddedDefaults(t *testing.T) {
	variants, err := Parse(DefaultYAML())
	require.NoError(t, err)

	ids := make([]string, 0, len(variants))
	for _, v := range variants {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"classic", "six", "mastermind", "blitz"}, ids)

	classic, err := variants[0].EngineRules()
	require.NoError(t, err)
	assert.Equal(t, engine.ClassicRules(), classic)

	mastermind, err := variants[2].EngineRules()
	require.NoError(t, err)
	assert.True(t, mastermind.AllowRepeat)
	assert.Zero(t, mastermind.TimeLimit)

	blitz, err := variants[3].EngineRules()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Minute, blitz.TimeLimit)
}

func TestHardcodedFallbackIsValid(t *testing.T) {
	variants := DefaultVariants()
	require.NoError(t, Validate(variants))

	rules, err := variants[0].EngineRules()
	require.NoError(t, err)
	assert.Equal(t, engine.ClassicRules(), rules)
}

func TestDefaultYAMLMatchesEmbeddedVariants(t *testing.T) {
	variants, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Len(t, variants, 4)
}

func TestValidateRejects(t *testing.T) {
	ok := RulesConfig{Pegs: 4, Colors: 6, MaxAttempts: 10}

	tests := []struct {
		name     string
		variants []Variant
	}{
		{"empty list", nil},
		{"missing id", []Variant{{Rules: ok}}},
		{"duplicate id", []Variant{{ID: "a", Rules: ok}, {ID: "a", Rules: ok}}},
		{"too few colors", []Variant{{ID: "a", Rules: RulesConfig{Pegs: 4, Colors: 3, MaxAttempts: 10}}}},
		{"no attempts", []Variant{{ID: "a", Rules: RulesConfig{Pegs: 4, Colors: 6}}}},
		{"bad duration", []Variant{{ID: "a", Rules: RulesConfig{Pegs: 4, Colors: 6, MaxAttempts: 1, TimeLimit: "soon"}}}},
		{"negative duration", []Variant{{ID: "a", Rules: RulesConfig{Pegs: 4, Colors: 6, MaxAttempts: 1, TimeLimit: "-1m"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Validate(tt.variants))
		})
	}
}

func TestInvalidRulesWrapEngineError(t *testing.T) {
	v := Variant{ID: "bad", Rules: RulesConfig{Pegs: 5, Colors: 4, MaxAttempts: 3}}
	_, err := v.EngineRules()
	assert.ErrorIs(t, err, engine.ErrInvalidRules)
}

func TestLoadVariantsCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "variants.yaml")
	data := []byte(`
variants:
  - id: tiny
    rules:
      pegs: 2
      colors: 3
      max_attempts: 5
      time_limit: 45s
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	variants, err := LoadVariants(path)
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.Equal(t, "tiny", variants[0].DisplayTitle())

	rules, err := variants[0].EngineRules()
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, rules.TimeLimit)
}

func TestLoadVariantsCustomPathErrors(t *testing.T) {
	_, err := LoadVariants(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variants: [{id: x, rules: {pegs: 0}}]"), 0o644))
	_, err = LoadVariants(path)
	assert.Error(t, err)
}

func TestLoadVariantsFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	variants, err := LoadVariants("")
	require.NoError(t, err)
	assert.Len(t, variants, 4)
}

func TestLoadVariantsLocalDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.Mkdir("configs", 0o755))
	data := []byte("variants:\n  - id: local\n    rules: {pegs: 3, colors: 5, max_attempts: 7}\n")
	require.NoError(t, os.WriteFile(filepath.Join("configs", "variants.yaml"), data, 0o644))

	variants, err := LoadVariants("")
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.Equal(t, "local", variants[0].ID)
}

func TestLoadVariantsRejectsBrokenOptionalFiles(t *testing.T) {
	unplayable := []byte("variants:\n  - id: tight\n    rules: {pegs: 4, colors: 3, allow_repeat: false, max_attempts: 5}\n")

	t.Run("user directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Chdir(t.TempDir())

		dir := filepath.Join(home, ".codebreaker", "configs")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "variants.yaml"), unplayable, 0o644))

		variants, err := LoadVariants("")
		require.Error(t, err)
		assert.ErrorIs(t, err, engine.ErrInvalidRules)
		assert.Nil(t, variants)
	})

	t.Run("local directory", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Chdir(t.TempDir())

		require.NoError(t, os.Mkdir("configs", 0o755))
		require.NoError(t, os.WriteFile(filepath.Join("configs", "variants.yaml"), []byte("variants: [oops"), 0o644))

		_, err := LoadVariants("")
		assert.Error(t, err)
	})
}
