// hunt is a turn-based monster hunt simulator for the terminal.
//
// Usage:
//
//	hunt run                 - Run headless hunts and record the results
//	hunt watch               - Watch a hunt unfold in the terminal
//	hunt variants            - List the built-in hunt variants
//	hunt results [variant]   - Show recorded run results
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible hunts (0 = time-based)
//	--db <path>     - Set database path (default: ~/.hunt/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hunt",
	Short: "Monster Hunt - a deterministic grid hunt in your terminal",
	Long: `Monster Hunt simulates a single agent clearing a grid of rotating
monsters, one turn at a time. Equal seeds replay identical hunts.

Available commands:
  run      - Run headless hunts and record the results
  watch    - Watch a hunt turn by turn in the terminal
  variants - Show the built-in policy presets
  results  - Browse recorded run results

Examples:
  hunt run --games 100 --variant cautious
  hunt watch --variant scout --delay 150
  hunt run --seed 42
  hunt results classic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hunt/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(resultsCmd)
}
