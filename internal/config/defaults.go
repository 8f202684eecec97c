package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in tuning.
// It mirrors defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: PhysicsConfig{
			Gravity:     -500,
			JumpImpulse: 300,
		},
		Bird: BirdConfig{
			X:               -100,
			StartY:          0,
			HalfHeight:      25,
			AnimationFPS:    8,
			AnimationFrames: 4,
		},
		Pipes: PipesConfig{
			Speed:         150,
			Gap:           200,
			HalfWidth:     30,
			HalfHeight:    200,
			SpawnX:        500,
			DespawnX:      -500,
			SpawnInterval: 2.0,
			GapMin:        -150,
			GapMax:        150,
		},
		World: WorldConfig{
			GroundY:      -250,
			CeilingY:     300,
			GroundWidth:  1000,
			GroundHeight: 50,
			Width:        800,
			Height:       600,
		},
		Collision: CollisionConfig{
			PipeReachX: 45,
			PipeReachY: 215,
		},
		Scoring: ScoringConfig{
			Window: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			Rate:          0.05,
			MaxMultiplier: 2.5,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
