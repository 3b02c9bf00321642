package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Load the game config the same way 'play' does and print it as YAML.

The config is searched in this order:
  --config <path>
  ~/.arcade/configs/asteroids.yaml
  ./configs/asteroids.yaml
  built-in defaults

Examples:
  asteroids config
  asteroids config --difficulty hard
  asteroids config > ~/.arcade/configs/asteroids.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addGameFlags(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	cfg, err := config.LoadAsteroids(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyAsteroidsPreset(&cfg, preset)

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}
