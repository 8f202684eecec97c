// flappy is a side-scrolling flappy bird game for the terminal.
//
// Usage:
//
//	flappy [play]        - Play in this terminal (default)
//	flappy serve         - Host the game over SSH
//	flappy config        - Print the effective config as YAML
//	flappy sim           - Run the simulation headless and print the result
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible pipes
//	--config <path>       - Use a custom config file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide a bird through the pipes in your terminal",
	Long: `Flappy is a terminal flappy bird game.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start an SSH server so others can play
  config   - Print the effective config
  sim      - Run the simulation without a terminal

Examples:
  flappy
  flappy play --difficulty hard
  flappy serve --ssh :2222
  flappy config > my-flappy.yaml
  flappy sim --seed 42 --frames 3600`,
	RunE: runPlay,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simCmd)
}
