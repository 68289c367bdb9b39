package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-codebreaker/internal/core"
	"github.com/vovakirdan/tui-codebreaker/internal/platform/tui"
	"github.com/vovakirdan/tui-codebreaker/internal/registry"
	"github.com/vovakirdan/tui-codebreaker/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show best results and stats",
	Long: `Without a variant, show stats for every configured variant.
With a variant, display its best wins (fewest attempts, then fastest)
and overall stats.

Examples:
  codebreaker scores
  codebreaker scores classic
  codebreaker scores blitz --limit 20
  codebreaker scores --player alice
  codebreaker scores blitz --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show the latest results of one player")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all results of the variant")
}

func runScores(cmd *cobra.Command, args []string) error {
	variant := ""
	if len(args) == 1 {
		variant = args[0]
		if !registry.Exists(variant) {
			return fmt.Errorf("%w: %q\nRun 'codebreaker list' to see available variants", registry.ErrUnknownGame, variant)
		}
	}
	if flagScoresClear && variant == "" {
		return errors.New("--clear needs a variant")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case flagScoresClear:
		if err := store.ClearResults(variant); err != nil {
			return err
		}
		logger.Info("results cleared", "variant", variant)
		fmt.Fprintf(out, "Cleared all results for %s.\n", variant)
		return nil
	case flagScoresPlayer != "":
		return printPlayerResults(out, store, flagScoresPlayer, variant, flagScoresLimit)
	case variant == "":
		return printOverview(out, store, registry.List())
	default:
		return printVariantScores(out, store, variant, flagScoresLimit)
	}
}

// printOverview prints one stats line per configured variant.
func printOverview(w io.Writer, store *storage.Store, games []registry.GameInfo) error {
	all, err := store.AllStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	fmt.Fprintln(w, "Stats - all variants")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-12s  %-6s  %-5s  %-5s  %-5s  %s\n", "Variant", "Played", "Won", "Rate", "Best", "Fastest")
	fmt.Fprintf(w, "  %-12s  %-6s  %-5s  %-5s  %-5s  %s\n", "-------", "------", "---", "----", "----", "-------")
	for _, g := range games {
		st, ok := all[g.ID]
		if !ok || st.Played == 0 {
			fmt.Fprintf(w, "  %-12s  %-6d  %-5s  %-5s  %-5s  %s\n", g.ID, 0, "-", "-", "-", "-")
			continue
		}
		best, fastest := "-", "-"
		if st.Won > 0 {
			best = fmt.Sprint(st.BestAttempts)
			fastest = core.FormatClock(st.BestElapsed)
		}
		fmt.Fprintf(w, "  %-12s  %-6d  %-5d  %-5s  %-5s  %s\n",
			g.ID, st.Played, st.Won, fmt.Sprintf("%.0f%%", st.WinRate()*100), best, fastest)
	}
	return nil
}

// printVariantScores prints the best wins and stats of one variant.
func printVariantScores(w io.Writer, store *storage.Store, variant string, limit int) error {
	game, err := registry.Create(variant)
	if err != nil {
		return err
	}

	results, err := store.TopResults(variant, limit)
	if err != nil {
		return fmt.Errorf("retrieving results: %w", err)
	}

	fmt.Fprintf(w, "Best Games - %s\n", game.Title())
	fmt.Fprintln(w)

	if len(results) == 0 {
		fmt.Fprintln(w, "No wins recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'codebreaker play %s' to set the first record!\n", variant)
	} else {
		fmt.Fprintf(w, "  %-4s  %-5s  %-6s  %-12s  %s\n", "Rank", "Tries", "Time", "Player", "Date")
		fmt.Fprintf(w, "  %-4s  %-5s  %-6s  %-12s  %s\n", "----", "-----", "----", "------", "----")
		for i, r := range results {
			fmt.Fprintf(w, "  %-4d  %-5d  %-6s  %-12s  %s\n",
				i+1, r.Attempts, core.FormatClock(r.Elapsed), r.Player,
				r.CreatedAt.Local().Format("2006-01-02 15:04"))
		}
	}

	st, err := store.Stats(variant)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if st.Played > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Played: %d  Won: %d (%.0f%%)  Timeouts: %d  Avg winning tries: %.1f\n",
			st.Played, st.Won, st.WinRate()*100, st.Timeouts, st.AvgAttempts)
	}
	return nil
}

// printPlayerResults prints a player's latest games, optionally for one variant.
func printPlayerResults(w io.Writer, store *storage.Store, player, variant string, limit int) error {
	results, err := store.PlayerResults(player, limit)
	if err != nil {
		return fmt.Errorf("retrieving results: %w", err)
	}

	fmt.Fprintf(w, "Latest Games - %s\n", player)
	fmt.Fprintln(w)

	shown := 0
	for _, r := range results {
		if variant != "" && r.Variant != variant {
			continue
		}
		if shown == 0 {
			fmt.Fprintf(w, "  %-12s  %-8s  %-5s  %-6s  %s\n", "Variant", "Result", "Tries", "Time", "Date")
			fmt.Fprintf(w, "  %-12s  %-8s  %-5s  %-6s  %s\n", "-------", "------", "-----", "----", "----")
		}
		fmt.Fprintf(w, "  %-12s  %-8s  %-5d  %-6s  %s\n",
			r.Variant, tui.ResultLabel(r), r.Attempts, core.FormatClock(r.Elapsed),
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
		shown++
	}
	if shown == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
	}
	return nil
}
