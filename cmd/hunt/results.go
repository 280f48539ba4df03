package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/monster-hunt/internal/platform/tui"
	"github.com/vovakirdan/monster-hunt/internal/storage"
	"github.com/vovakirdan/monster-hunt/internal/variant"
)

var flagResultsBrowse bool

var resultsCmd = &cobra.Command{
	Use:   "results [variant]",
	Short: "Show recorded run results",
	Long: `Display the top 10 runs for a variant, ranked by kills then speed.

Examples:
  hunt results classic
  hunt results cautious
  hunt results --browse`,
	Args: cobra.MaximumNArgs(1),
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().BoolVar(&flagResultsBrowse, "browse", false, "Browse results interactively")
}

func runResults(cmd *cobra.Command, args []string) {
	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagResultsBrowse {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}

		if browseErr := tui.RunResults(store, width, height); browseErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", browseErr)
			os.Exit(1)
		}
		return
	}

	variantID := "classic"
	if len(args) > 0 {
		variantID = args[0]
	}

	// Check if variant exists
	v, err := variant.Lookup(variantID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'hunt variants' to see available presets.")
		os.Exit(1)
	}

	// Get top runs
	runs, err := store.BestRuns(variantID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	// Display runs
	fmt.Printf("Best Runs - %s\n", v.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'hunt run --variant %s' to record the first one!\n", variantID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %-8s  %s\n", "Rank", "Kills", "Turns", "Outcome", "Grid", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %-8s  %s\n", "----", "-----", "-----", "-------", "----", "----")

	// Print runs
	for i, entry := range runs {
		outcome := "died"
		if entry.Victory {
			outcome = "victory"
		}
		grid := fmt.Sprintf("%dx%d", entry.Rows, entry.Cols)
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6d  %-8s  %-8s  %s\n", i+1, entry.Kills, entry.Turns, outcome, grid, dateStr)
	}

	// Show aggregate stats
	fmt.Println()
	stats, err := store.Stats(variantID)
	if err == nil && stats.RunsCount > 0 {
		fmt.Printf("Total: %d runs, %d victories, avg %.1f turns\n",
			stats.RunsCount, stats.Victories, stats.AvgTurns)
	}
}
