package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-codebreaker/internal/config"
	"github.com/vovakirdan/tui-codebreaker/internal/registry"
)

var flagListYAML bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configured variants",
	Long: `Shows every variant loaded from the variants configuration.

With --yaml, prints the built-in variants file instead. Save it as
~/.codebreaker/configs/variants.yaml to start your own.`,
	Run: runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListYAML, "yaml", false, "Print the built-in variants file")
}

func runList(cmd *cobra.Command, _ []string) {
	if flagListYAML {
		cmd.OutOrStdout().Write(config.DefaultYAML())
		return
	}

	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants configured.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Rules")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, g.Summary)
	}

	fmt.Println()
	fmt.Println("Run 'codebreaker play <id>' to play a variant.")
}
