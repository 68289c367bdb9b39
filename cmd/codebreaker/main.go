// codebreaker is a terminal code-breaking game in the Mastermind family.
//
// Usage:
//
//	codebreaker list               - List configured variants
//	codebreaker play <variant>     - Play a variant
//	codebreaker menu               - Pick variants interactively
//	codebreaker scores <variant>   - Show best results for a variant
//	codebreaker serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible secrets
//	--db <path>           - Set database path (default: ~/.codebreaker/results.db)
//	--config <path>       - Load variants from a custom YAML file
//	--log-level <level>   - debug, info, warn, error (default: warn)
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-codebreaker/internal/config"
	"github.com/vovakirdan/tui-codebreaker/internal/core"
	"github.com/vovakirdan/tui-codebreaker/internal/games/codebreaker"
	"github.com/vovakirdan/tui-codebreaker/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagPlayer   string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "codebreaker",
	Short: "Codebreaker - crack the secret color code in your terminal",
	Long: `Codebreaker is a terminal take on the classic code-breaking game.
The computer hides a row of colored pegs; every guess is answered with
black pegs (right color, right slot) and white pegs (right color, wrong slot).

Available commands:
  list     - Show all configured variants
  play     - Play a specific variant directly
  menu     - Interactive variant picker
  scores   - View best results
  serve    - Start SSH server for remote play

Examples:
  codebreaker list
  codebreaker play classic
  codebreaker menu --config ./variants.yaml
  codebreaker serve --ssh :2222
  codebreaker scores blitz`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.codebreaker/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom variants YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", defaultPlayer(), "Name recorded with your results")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the logger and registers the configured variants.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "codebreaker",
		Level:           level,
	})

	variants, err := config.LoadVariants(flagConfig)
	if err != nil {
		return err
	}
	if err := codebreaker.RegisterVariants(variants); err != nil {
		return err
	}
	logger.Debug("variants registered", "count", len(variants), "config", flagConfig)
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the result log. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database, results will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func defaultPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
