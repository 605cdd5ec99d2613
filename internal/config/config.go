// Package config provides YAML-based configuration loading and difficulty
// presets for the maze game.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/eaterai/internal/games/eater"
	"gopkg.in/yaml.v3"
)

// EaterConfig contains all configuration for the maze game.
type EaterConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Timing   TimingConfig   `yaml:"timing"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// BoardConfig defines the maze dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines simulation cadences in milliseconds.
type TimingConfig struct {
	TickMS         int `yaml:"tick_ms"`
	PursuerBaseMS  int `yaml:"pursuer_base_ms"`
	PursuerLevelMS int `yaml:"pursuer_level_ms"`
}

// GameplayConfig defines the values shown on the configuration screen plus
// the power-up drop rate.
type GameplayConfig struct {
	StartingRobots       int     `yaml:"starting_robots"`
	Lives                int     `yaml:"lives"`
	CompletionPercentage int     `yaml:"completion_percentage"`
	PowerUpDurationMS    int     `yaml:"power_up_duration_ms"`
	SpawnChance          float64 `yaml:"spawn_chance"`
}

// Settings converts the gameplay section into session settings, clamped to
// their allowed ranges.
func (c EaterConfig) Settings() eater.Settings {
	return eater.Settings{
		StartingRobots:       c.Gameplay.StartingRobots,
		Lives:                c.Gameplay.Lives,
		CompletionPercentage: c.Gameplay.CompletionPercentage,
		PowerUpDuration:      time.Duration(c.Gameplay.PowerUpDurationMS) * time.Millisecond,
	}.Normalize()
}

// Rules converts the board and timing sections into engine constants.
func (c EaterConfig) Rules() eater.Rules {
	r := eater.DefaultRules()
	if c.Board.Width > 0 {
		r.Width = c.Board.Width
	}
	if c.Board.Height > 0 {
		r.Height = c.Board.Height
	}
	if c.Timing.TickMS > 0 {
		r.TickInterval = time.Duration(c.Timing.TickMS) * time.Millisecond
	}
	if c.Timing.PursuerBaseMS > 0 {
		r.PursuerBase = time.Duration(c.Timing.PursuerBaseMS) * time.Millisecond
	}
	if c.Timing.PursuerLevelMS >= 0 {
		r.PursuerPerLevel = time.Duration(c.Timing.PursuerLevelMS) * time.Millisecond
	}
	if c.Gameplay.SpawnChance > 0 {
		r.SpawnChance = c.Gameplay.SpawnChance
	}
	return r
}

// Validate reports values the engine would silently replace.
func (c EaterConfig) Validate() error {
	if c.Board.Width < eater.MinBoardSize || c.Board.Height < eater.MinBoardSize {
		return fmt.Errorf("config: board %dx%d is smaller than %dx%d",
			c.Board.Width, c.Board.Height, eater.MinBoardSize, eater.MinBoardSize)
	}
	if c.Timing.TickMS <= 0 {
		return fmt.Errorf("config: tick_ms must be positive, got %d", c.Timing.TickMS)
	}
	if c.Gameplay.SpawnChance < 0 || c.Gameplay.SpawnChance > 1 {
		return fmt.Errorf("config: spawn_chance %.2f outside [0,1]", c.Gameplay.SpawnChance)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c EaterConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}
