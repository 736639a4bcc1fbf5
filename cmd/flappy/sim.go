package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/headless"
)

var (
	flagTicks int
	flagSlack float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot game",
	Long: `Play one game without a terminal UI. An autopilot flaps whenever the
bird is about to sink below the next gap. Time is virtual, so runs finish
as fast as the CPU allows and the same seed always gives the same result.

Examples:
  flappy sim
  flappy sim --seed 7 --ticks 100000
  flappy sim --preset hard --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", headless.DefaultMaxSteps, "Maximum tick periods to simulate")
	simCmd.Flags().Float64Var(&flagSlack, "slack", headless.DefaultSlack, "Autopilot margin above the gap bottom")
}

func runSim(cmd *cobra.Command, args []string) {
	cfg, src, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Best-effort close
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	seed := resolveSeed()
	logger.Info("starting simulation", "config", src, "preset", flagPreset, "seed", seed, "ticks", flagTicks)

	eng := flappy.NewEngine(cfg, seed)
	report, err := headless.Run(ctx, eng, headless.Autopilot{Slack: flagSlack}, headless.Options{
		MaxSteps: flagTicks,
		Logger:   logger,
	})
	if err != nil {
		logger.Warn("simulation interrupted", "error", err)
	}

	fmt.Printf("seed %d: %s\n", seed, report)
}
