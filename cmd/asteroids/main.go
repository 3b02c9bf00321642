// asteroids is a terminal asteroid-dodging arcade game.
//
// Usage:
//
//	asteroids play           - Play the game
//	asteroids list           - List available games
//	asteroids scores         - Show high scores
//	asteroids config         - Print the effective game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--log <path>    - Write logs to a file
//	--debug         - Log simulation events
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - dodge and shoot rocks in your terminal",
	Long: `Asteroids is a terminal arcade game. Steer a ship around a
wrap-around arena, shoot the rocks drifting in from the edges and stay
clear of the gravity wells that pull everything in.

Available commands:
  play     - Play the game
  list     - Show all available games
  scores   - View high scores
  config   - Print the effective game config

Examples:
  asteroids play
  asteroids play --difficulty hard --seed 42
  asteroids scores --browse
  asteroids config --difficulty easy > my-asteroids.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log simulation events")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// gameID is the game every command works with.
const gameID = asteroids.ID
