package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagWatch       bool
	flagScreenshots string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal.

Controls:
  Space      - Start / Flap
  P          - Pause / Resume
  R          - Restart (after game over)
  S          - Screenshot (PNG)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Pipes speed up half as fast, to a lower cap
  normal - Pipes speed up as configured
  hard   - Pipes speed up twice as fast
  fixed  - Pipes never speed up

With --watch the config file is reloaded when it changes; the new
values apply from the next run.

Examples:
  flappy play
  flappy play --difficulty easy
  flappy play --config ./my-flappy.yaml --watch
  flappy play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	playCmd.Flags().StringVar(&flagScreenshots, "screenshots", tui.DefaultScreenshotDir(), "Directory for screenshots (empty disables)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, source, err := loadGameConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if f, logErr := openLogFile(); logErr == nil {
		defer f.Close()
		logOut = f
	} else {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", logErr)
	}
	logger, err := newLogger(logOut, "flappy")
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := tui.Options{
		Logger:        logger,
		ScreenshotDir: flagScreenshots,
	}

	if flagWatch {
		if source == config.EmbeddedSource {
			fmt.Fprintln(os.Stderr, "Warning: --watch needs a config file; using the embedded defaults without reload")
		} else {
			watcher, watchErr := config.NewWatcher(source)
			if watchErr != nil {
				return watchErr
			}
			defer watcher.Close()
			opts.Watcher = watcher
			logger.Info("watching config", "path", watcher.Path())
		}
	}

	if err := tui.Run(flappy.New(gameCfg), cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
