package eater

import (
	"time"

	"github.com/vovakirdan/eaterai/internal/core"
)

// Settings ranges and defaults, as offered on the configuration screen.
const (
	MinStartingRobots     = 1
	MaxStartingRobots     = 8
	DefaultStartingRobots = 2

	MinLives     = 1
	MaxLives     = 5
	DefaultLives = 3

	MinCompletion     = 70
	MaxCompletion     = 90
	DefaultCompletion = 80

	MinPowerUpDuration     = 3 * time.Second
	MaxPowerUpDuration     = 10 * time.Second
	DefaultPowerUpDuration = 5 * time.Second
	PowerUpDurationStep    = time.Second
)

// Scoring.
const (
	PipScore        = 10
	PowerUpScore    = 50
	EatPursuerScore = 100
	LevelBonus      = 500
)

// Settings is the player-facing configuration applied when a run starts.
type Settings struct {
	StartingRobots       int
	Lives                int
	CompletionPercentage int
	PowerUpDuration      time.Duration
}

// DefaultSettings returns the stock configuration.
func DefaultSettings() Settings {
	return Settings{
		StartingRobots:       DefaultStartingRobots,
		Lives:                DefaultLives,
		CompletionPercentage: DefaultCompletion,
		PowerUpDuration:      DefaultPowerUpDuration,
	}
}

// Normalize clamps every field into its allowed range.
func (s Settings) Normalize() Settings {
	s.StartingRobots = core.Clamp(s.StartingRobots, MinStartingRobots, MaxStartingRobots)
	s.Lives = core.Clamp(s.Lives, MinLives, MaxLives)
	s.CompletionPercentage = core.Clamp(s.CompletionPercentage, MinCompletion, MaxCompletion)
	if s.PowerUpDuration < MinPowerUpDuration {
		s.PowerUpDuration = MinPowerUpDuration
	}
	if s.PowerUpDuration > MaxPowerUpDuration {
		s.PowerUpDuration = MaxPowerUpDuration
	}
	return s
}

// Rules are the engine constants that are not exposed on the configuration screen.
type Rules struct {
	Width  int
	Height int

	// TickInterval is the cadence of the simulation step.
	TickInterval time.Duration

	// A pursuer moves at most once per PursuerBase + level*PursuerPerLevel.
	PursuerBase     time.Duration
	PursuerPerLevel time.Duration

	MaxPursuers int

	// SpawnChance is the probability that eating a pip drops a power-up.
	SpawnChance float64
}

// DefaultRules returns the reference engine constants.
func DefaultRules() Rules {
	return Rules{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		TickInterval:    100 * time.Millisecond,
		PursuerBase:     200 * time.Millisecond,
		PursuerPerLevel: 10 * time.Millisecond,
		MaxPursuers:     8,
		SpawnChance:     0.1,
	}
}

// normalize fills zero or out-of-range values with usable ones.
func (r Rules) normalize() Rules {
	def := DefaultRules()
	if r.Width < MinBoardSize {
		r.Width = def.Width
	}
	if r.Height < MinBoardSize {
		r.Height = def.Height
	}
	if r.TickInterval <= 0 {
		r.TickInterval = def.TickInterval
	}
	if r.PursuerBase < 0 {
		r.PursuerBase = def.PursuerBase
	}
	if r.PursuerPerLevel < 0 {
		r.PursuerPerLevel = 0
	}
	if r.MaxPursuers <= 0 {
		r.MaxPursuers = def.MaxPursuers
	}
	if r.SpawnChance < 0 {
		r.SpawnChance = 0
	}
	if r.SpawnChance > 1 {
		r.SpawnChance = 1
	}
	return r
}

// PursuerInterval returns the minimum time between two moves of a pursuer on the given level.
func (r Rules) PursuerInterval(level int) time.Duration {
	return r.PursuerBase + time.Duration(level)*r.PursuerPerLevel
}

// pursuerCount returns the size of the pursuer set for a level.
func pursuerCount(startingRobots, level, max int) int {
	return core.Min(startingRobots+level-1, max)
}
