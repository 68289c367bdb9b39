package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-codebreaker/internal/platform/tui"
	"github.com/vovakirdan/tui-codebreaker/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Left/Right   - Move between slots
  Up/Down      - Change the color of the current slot
  Enter/Space  - Submit the guess (resume when paused)
  V            - Show or hide the secret code
  Esc/P        - Pause; press again while paused to leave
  R            - New game (when paused or finished)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  codebreaker play classic
  codebreaker play blitz --seed 42
  codebreaker play mine --config ./my-variants.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	variant := args[0]

	game, err := registry.Create(variant)
	if err != nil {
		return fmt.Errorf("%w\nRun 'codebreaker list' to see available variants", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting game", "variant", variant, "seed", flagSeed)
	if err := tui.Run(game, runtimeConfig(), tui.GameOptions{
		Store:  store,
		Logger: logger,
		Player: flagPlayer,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
