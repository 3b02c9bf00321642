package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of asteroids.

Controls:
  W/Up       - Thrust (hold)
  S/Down     - Reverse thrust (hold)
  A/Left     - Rotate left (hold)
  D/Right    - Rotate right (hold)
  Space      - Fire
  P/Esc      - Pause
  R          - Restart (after game over)
  Tab        - High scores (paused or after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Extra lives, fewer rocks, starts at the lowest level
  normal - Starts at 30% difficulty, progresses to max
  hard   - Fewer lives, more rocks, starts at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  asteroids play
  asteroids play --difficulty easy
  asteroids play --config ./my-asteroids.yaml --log /tmp/asteroids.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags that shape the game config.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(flagLogPath, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	// Resolve the seed here so the stored run records the one in use
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	// Set config path and difficulty before the game is created
	asteroids.SetConfigPath(flagConfig)
	asteroids.SetDifficultyPreset(preset)
	asteroids.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Score storage is optional; the game works without it
	runID := storage.NewRunID()
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	} else {
		run, runErr := store.StartRun(storage.Run{
			ID:         runID,
			GameID:     gameID,
			Seed:       cfg.Seed,
			Difficulty: string(preset),
		})
		if runErr != nil {
			logger.Warn("could not record run", "error", runErr)
		}
		if run.ID != "" {
			runID = run.ID
		}
	}

	runErr := tui.Run(game, cfg, tui.Options{
		Store:  store,
		Logger: logger,
		RunID:  runID,
	})

	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
