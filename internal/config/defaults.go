package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default Asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Physics: AsteroidsPhysics{
			TimeStep:   0.1,
			MaxSpeed:   100,
			Attraction: 40,
		},
		Ship: AsteroidsShip{
			AccelIncrement:  1,
			RotateIncrement: 6,
			Lives:           3,
			ShotSpeed:       80,
			ShotRange:       300,
		},
		Asteroids: AsteroidsField{
			MinSize:       12,
			MaxSize:       45,
			BreakableSize: 30,
			MinSpeed:      5,
			MaxSpeed:      20,
			SpinSpeed:     2,
			Points:        10,
			SpawnInterval: 40,
			MaxCount:      10,
			DebrisCount:   6,
		},
		Wells: AsteroidsWells{
			MinRadius:     20,
			MaxRadius:     40,
			MinSpeed:      0,
			MaxSpeed:      4,
			SpinSpeed:     4,
			SpawnInterval: 600,
			MaxCount:      2,
		},
		Particles: AsteroidsParticles{
			Lifetime: 0.6,
			MinSpeed: 10,
			MaxSpeed: 30,
		},
		Arena: AsteroidsArena{
			CellWidth:  8,
			CellHeight: 16,
		},
		Gameplay: AsteroidsGameplay{
			ResetDelay: 180,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 25,
				CountIncrease:     6,
			},
		},
	}
}
