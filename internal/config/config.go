// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// AsteroidsConfig contains all configuration for the Asteroids game.
type AsteroidsConfig struct {
	Physics    AsteroidsPhysics   `yaml:"physics"`
	Ship       AsteroidsShip      `yaml:"ship"`
	Asteroids  AsteroidsField     `yaml:"asteroids"`
	Wells      AsteroidsWells     `yaml:"wells"`
	Particles  AsteroidsParticles `yaml:"particles"`
	Arena      AsteroidsArena     `yaml:"arena"`
	Gameplay   AsteroidsGameplay  `yaml:"gameplay"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}

// AsteroidsPhysics defines integration parameters.
type AsteroidsPhysics struct {
	TimeStep   float64 `yaml:"time_step"`  // Simulated seconds per tick (independent of tick rate)
	MaxSpeed   float64 `yaml:"max_speed"`  // Speed cap applied by thrust
	Attraction float64 `yaml:"attraction"` // Gravity-well pull magnitude
}

// AsteroidsShip defines the player ship and its weapon.
type AsteroidsShip struct {
	AccelIncrement  float64 `yaml:"accel_increment"`  // Speed added per tick of thrust
	RotateIncrement float64 `yaml:"rotate_increment"` // Degrees turned per tick of rotation
	Lives           int     `yaml:"lives"`
	ShotSpeed       float64 `yaml:"shot_speed"`
	ShotRange       float64 `yaml:"shot_range"` // Distance a shot travels before expiring
}

// AsteroidsField defines asteroid generation and breakup.
type AsteroidsField struct {
	MinSize       float64 `yaml:"min_size"`
	MaxSize       float64 `yaml:"max_size"`
	BreakableSize float64 `yaml:"breakable_size"` // Sizes above this split into three fragments
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	SpinSpeed     float64 `yaml:"spin_speed"` // Cosmetic degrees per tick
	Points        int     `yaml:"points"`     // Awarded when a shot destroys an asteroid
	SpawnInterval int     `yaml:"spawn_interval"`
	MaxCount      int     `yaml:"max_count"`
	DebrisCount   int     `yaml:"debris_count"`
}

// AsteroidsWells defines gravity-well generation.
type AsteroidsWells struct {
	MinRadius     float64 `yaml:"min_radius"`
	MaxRadius     float64 `yaml:"max_radius"`
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	SpinSpeed     float64 `yaml:"spin_speed"`
	SpawnInterval int     `yaml:"spawn_interval"`
	MaxCount      int     `yaml:"max_count"`
}

// AsteroidsParticles defines decorative debris.
type AsteroidsParticles struct {
	Lifetime float64 `yaml:"lifetime"` // Real seconds before a particle expires
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// AsteroidsArena maps terminal cells to world units.
type AsteroidsArena struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// AsteroidsGameplay defines the game-over cycle.
type AsteroidsGameplay struct {
	ResetDelay int `yaml:"reset_delay"` // Ticks between game over and automatic reset
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Added to hazard speed at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Spawn interval ticks removed at max difficulty
	CountIncrease     int     `yaml:"count_increase"`     // Extra concurrent asteroids at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI flag value to a preset.
// The empty string means "no preset".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate reports every setting that would break the simulation.
func (c AsteroidsConfig) Validate() error {
	var errs []error

	if c.Physics.TimeStep <= 0 {
		errs = append(errs, errors.New("physics.time_step must be positive"))
	}
	if c.Physics.MaxSpeed <= 0 {
		errs = append(errs, errors.New("physics.max_speed must be positive"))
	}
	if c.Ship.Lives < 0 {
		errs = append(errs, errors.New("ship.lives must not be negative"))
	}
	if c.Ship.ShotRange <= 0 {
		errs = append(errs, errors.New("ship.shot_range must be positive"))
	}
	if c.Asteroids.MinSize <= 0 || c.Asteroids.MaxSize < c.Asteroids.MinSize {
		errs = append(errs, errors.New("asteroids size range is empty"))
	}
	if c.Asteroids.MaxSpeed < c.Asteroids.MinSpeed {
		errs = append(errs, errors.New("asteroids speed range is empty"))
	}
	if c.Wells.MinRadius <= 0 || c.Wells.MaxRadius < c.Wells.MinRadius {
		errs = append(errs, errors.New("wells radius range is empty"))
	}
	if c.Wells.MaxSpeed < c.Wells.MinSpeed {
		errs = append(errs, errors.New("wells speed range is empty"))
	}
	if c.Particles.MaxSpeed < c.Particles.MinSpeed {
		errs = append(errs, errors.New("particles speed range is empty"))
	}
	if c.Asteroids.MaxCount < 0 || c.Wells.MaxCount < 0 {
		errs = append(errs, errors.New("max counts must not be negative"))
	}
	if c.Asteroids.SpawnInterval < 0 || c.Wells.SpawnInterval < 0 {
		errs = append(errs, errors.New("spawn intervals must not be negative"))
	}
	if c.Arena.CellWidth <= 0 || c.Arena.CellHeight <= 0 {
		errs = append(errs, errors.New("arena cell size must be positive"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid asteroids config: %w", err)
	}
	return nil
}
