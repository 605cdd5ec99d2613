package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/eaterai/internal/games/eater"
)

//go:embed defaults/eater.yaml
var defaultEaterYAML []byte

// DefaultEaterConfig returns the default maze game configuration.
func DefaultEaterConfig() EaterConfig {
	return EaterConfig{
		Board: BoardConfig{
			Width:  eater.DefaultWidth,
			Height: eater.DefaultHeight,
		},
		Timing: TimingConfig{
			TickMS:         100,
			PursuerBaseMS:  200,
			PursuerLevelMS: 10,
		},
		Gameplay: GameplayConfig{
			StartingRobots:       eater.DefaultStartingRobots,
			Lives:                eater.DefaultLives,
			CompletionPercentage: eater.DefaultCompletion,
			PowerUpDurationMS:    int(eater.DefaultPowerUpDuration / time.Millisecond),
			SpawnChance:          0.1,
		},
	}
}
