package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W - Flap (the first flap starts the game)
  R          - Restart (after game over)
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Preset options:
  easy   - Wider gaps, pipes spawn less often
  normal - Values from the config file
  hard   - Narrower gaps, pipes spawn more often

Examples:
  flappy play
  flappy play --preset hard
  flappy play --config ./my-flappy.yaml
  flappy play --seed 42 --log-file flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, src, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal UI owns the screen, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    resolveSeed(),
	}

	logger.Info("starting game", "config", src, "preset", flagPreset, "seed", rc.Seed, "screen", fmt.Sprintf("%dx%d", width, height))
	eng := flappy.NewEngine(cfg, rc.Seed)

	best, runErr := tui.Run(eng, rc, logger)
	logger.Info("session ended", "best", best)
	//nolint:errcheck // Best-effort close, nothing left to log to
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	if best > 0 {
		fmt.Printf("Best score this session: %d\n", best)
	}
}
