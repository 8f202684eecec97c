package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

var (
	flagFrames    int
	flagJumpEvery int
	flagRender    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Run the game without a terminal: start a run, flap every N frames
and stop after the bird crashes or the frame limit is reached. Each frame
advances by 1/fps seconds, so a fixed --seed gives the same result every time.

Examples:
  flappy sim --seed 42
  flappy sim --seed 42 --frames 7200 --jump-every 40 --render
  flappy sim --difficulty hard --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Maximum number of frames to run")
	simCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 40, "Flap every N frames (0 = never)")
	simCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final frame as text")
}

// simReport summarizes a headless run.
type simReport struct {
	Frames  int
	Elapsed float64
	State   sim.GameState
	Score   sim.Score
	Pairs   int
}

// runHeadless plays one scripted run and returns its summary.
func runHeadless(game *flappy.Game, frames, jumpEvery int, dt float64, onEvent func(sim.Event)) simReport {
	var report simReport

	game.Step(core.InputOf(core.ActionStart), 0)
	for report.Frames < frames && game.State() == sim.StatePlaying {
		in := core.NewInputFrame()
		if jumpEvery > 0 && report.Frames%jumpEvery == 0 {
			in.Set(core.ActionJump)
		}

		result := game.Step(in, dt)
		report.Frames++
		for _, e := range result.Events {
			if e.Kind == sim.EventPipesSpawned {
				report.Pairs++
			}
			onEvent(e)
		}
	}

	report.Elapsed = game.Snapshot().Elapsed
	report.State = game.State()
	report.Score = game.Score()
	return report
}

func runSim(_ *cobra.Command, _ []string) error {
	gameCfg, source, err := loadGameConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "flappy-sim")
	if err != nil {
		return err
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	game := flappy.New(gameCfg)
	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	game.Reset(rc)
	logger.Info("simulating", "config", source, "seed", game.Seed(), "frames", flagFrames)

	report := runHeadless(game, flagFrames, flagJumpEvery, 1/float64(flagFPS), func(e sim.Event) {
		switch e.Kind {
		case sim.EventCollision:
			logger.Debug("crashed", "into", e.Collision)
		case sim.EventScored:
			logger.Debug("scored", "score", e.Score)
		case sim.EventDifficulty:
			logger.Debug("speed up", "multiplier", e.Multiplier)
		case sim.EventPipesSpawned:
			logger.Debug("pipes", "gap", e.GapCenter)
		}
	})

	fmt.Printf("seed:        %d\n", game.Seed())
	fmt.Printf("frames:      %d (%.2fs)\n", report.Frames, report.Elapsed)
	fmt.Printf("state:       %s\n", report.State)
	fmt.Printf("score:       %d (raw %d)\n", report.Score.Displayed(), report.Score.Raw)
	fmt.Printf("pipes:       %d pairs spawned, %d passed\n", report.Pairs, report.Score.PipesPassed)
	fmt.Printf("speed:       x%.2f", report.Score.SpeedMultiplier)
	if maxed := config.NewDifficultyManager(gameCfg.Difficulty).MaxedAt(); maxed >= 0 {
		fmt.Printf(" (capped after %d gaps)", maxed)
	}
	fmt.Println()

	if flagRender {
		screen := core.NewScreen(rc.ScreenW, rc.ScreenH)
		game.Render(screen)
		fmt.Println(screen.String())
	}
	return nil
}
