package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/monster-hunt/internal/config"
	"github.com/vovakirdan/monster-hunt/internal/platform/tui"
	"github.com/vovakirdan/monster-hunt/internal/storage"
	"github.com/vovakirdan/monster-hunt/internal/variant"
)

var (
	flagWatchVariant string
	flagWatchConfig  string
	flagWatchDelay   int
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a hunt turn by turn in the terminal",
	Long: `Watch the agent hunt in an interactive terminal view.

Controls:
  Space      - Pause/resume
  N          - Advance one turn (while paused)
  R          - Start a new hunt
  Q/Ctrl+C   - Quit

Examples:
  hunt watch
  hunt watch --variant scout
  hunt watch --seed 42 --delay 300
  hunt watch --config ./my-hunt.yaml`,
	Run: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagWatchVariant, "variant", "", "Policy preset (overrides config)")
	watchCmd.Flags().StringVar(&flagWatchConfig, "config", "", "Path to custom hunt config YAML")
	watchCmd.Flags().IntVar(&flagWatchDelay, "delay", 200, "Milliseconds between turns")
}

func runWatch(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagWatchConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagWatchVariant != "" {
		if !variant.Exists(flagWatchVariant) {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", flagWatchVariant)
			fmt.Fprintln(os.Stderr, "Run 'hunt variants' to see available presets.")
			os.Exit(1)
		}
		cfg.Policy.Variant = flagWatchVariant
	}

	settings, err := cfg.Settings(flagSeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Warn when the board will not fit the terminal
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		needW := settings.Cols*2 + 6
		needH := settings.Rows + 8
		if w < needW || h < needH {
			fmt.Fprintf(os.Stderr, "Warning: terminal %dx%d is smaller than the %dx%d board needs (%dx%d)\n",
				w, h, settings.Rows, settings.Cols, needW, needH)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the hunt still renders
		store = nil
	}

	delay := time.Duration(flagWatchDelay) * time.Millisecond
	runErr := tui.Run(settings, cfg.VariantID(), store, delay)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running hunt: %v\n", runErr)
		os.Exit(1)
	}
}
