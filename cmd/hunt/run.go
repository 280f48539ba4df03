package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/monster-hunt/internal/config"
	"github.com/vovakirdan/monster-hunt/internal/sim"
	"github.com/vovakirdan/monster-hunt/internal/storage"
	"github.com/vovakirdan/monster-hunt/internal/variant"
)

var (
	flagRunGames    int
	flagRunVariant  string
	flagRunConfig   string
	flagRunMaxTurns int
	flagRunVerbose  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run headless hunts and record the results",
	Long: `Run one or more hunts without rendering and record each outcome.

Each game gets its own seed: with --seed the games use seed, seed+1, …,
so a batch is exactly reproducible; without it seeds come from the clock.

Examples:
  hunt run
  hunt run --games 100 --variant cautious
  hunt run --seed 42 --games 10
  hunt run --config ./my-hunt.yaml --max-turns 500`,
	Run: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagRunGames, "games", 1, "Number of hunts to run")
	runCmd.Flags().StringVar(&flagRunVariant, "variant", "", "Policy preset (overrides config)")
	runCmd.Flags().StringVar(&flagRunConfig, "config", "", "Path to custom hunt config YAML")
	runCmd.Flags().IntVar(&flagRunMaxTurns, "max-turns", 1000, "Abort a hunt after this many turns")
	runCmd.Flags().BoolVarP(&flagRunVerbose, "verbose", "v", false, "Log every turn")
}

func runRun(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hunt",
	})
	if flagRunVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(flagRunConfig)
	if err != nil {
		logger.Error("could not load config", "error", err)
		os.Exit(1)
	}
	if flagRunVariant != "" {
		if !variant.Exists(flagRunVariant) {
			logger.Error("unknown variant", "variant", flagRunVariant)
			fmt.Fprintln(os.Stderr, "Run 'hunt variants' to see available presets.")
			os.Exit(1)
		}
		cfg.Policy.Variant = flagRunVariant
	}
	variantID := cfg.VariantID()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage - results just won't be recorded
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	games := flagRunGames
	if games < 1 {
		games = 1
	}

	victories, totalKills := 0, 0

	for i := 0; i < games; i++ {
		seed := baseSeed + int64(i)

		settings, err := cfg.Settings(seed)
		if err != nil {
			logger.Error("invalid settings", "error", err)
			os.Exit(1)
		}

		env, err := sim.New(settings)
		if err != nil {
			logger.Error("could not create hunt", "error", err)
			os.Exit(1)
		}

		for !env.IsOver() && env.Turn() < flagRunMaxTurns {
			env.Step()

			if flagRunVerbose {
				s := env.Snapshot()
				logger.Debug("turn",
					"game", i+1,
					"turn", s.Turn,
					"agent", fmt.Sprintf("(%d,%d)", s.Agent.Pos.Row, s.Agent.Pos.Col),
					"level", s.Agent.Level,
					"kills", s.Agent.Kills,
					"monsters", len(s.Monsters),
				)
			}
		}

		snap := env.Snapshot()
		victory := snap.Over && snap.Agent.Alive
		if victory {
			victories++
		}
		totalKills += snap.Agent.Kills

		logger.Info("hunt finished",
			"game", i+1,
			"seed", seed,
			"victory", victory,
			"turns", snap.Turn,
			"kills", snap.Agent.Kills,
			"level", snap.Agent.Level,
		)

		if store != nil {
			entry := storage.RunEntry{
				Variant:  variantID,
				Rows:     settings.Rows,
				Cols:     settings.Cols,
				Monsters: settings.Monsters,
				Seed:     seed,
				Victory:  victory,
				Turns:    snap.Turn,
				Kills:    snap.Agent.Kills,
				Level:    snap.Agent.Level,
			}
			if _, saveErr := store.SaveRun(entry); saveErr != nil {
				logger.Warn("could not record run", "error", saveErr)
			}
		}
	}

	logger.Info("batch done",
		"variant", variantID,
		"games", games,
		"victories", victories,
		"kills", totalKills,
	)
}
