// flappy is a Flappy Bird-style game for the terminal.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy sim               - Run a headless autopilot game in virtual time
//	flappy config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>     - Custom game config YAML
//	--preset <name>     - Preset: easy, normal, hard
//	--seed <value>      - RNG seed for reproducible gameplay
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write logs to a file (the terminal UI discards them otherwise)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide a bird through the pipes in your terminal",
	Long: `Flappy is a terminal side-scroller. Flap to stay in the air and
fly through the gaps between the pipes.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless autopilot game
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play --preset easy
  flappy play --config ./my-flappy.yaml --seed 42
  flappy sim --ticks 10000 --seed 7
  flappy config > ~/.flappy/flappy.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Preset: "+config.PresetNames())
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the game config from the global flags.
func loadConfig() (config.FlappyConfig, config.Source, error) {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return config.FlappyConfig{}, "", err
	}

	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return cfg, src, err
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, src, fmt.Errorf("config with preset %q: %w", preset, err)
	}
	return cfg, src, nil
}

// newLogger builds the process logger. Output goes to --log-file when set,
// otherwise to fallback. The returned close function is always non-nil.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeFn := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger, closeFn, nil
}

// resolveSeed returns the --seed value, or a time-based seed when it is 0.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
