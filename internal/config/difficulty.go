package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset names a bundle of gameplay adjustments.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"

	// DifficultyFixed leaves the loaded configuration untouched.
	DifficultyFixed DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParseDifficulty resolves a preset name. An empty name means fixed.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DifficultyFixed, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// ApplyEaterPreset modifies the config based on a difficulty preset.
func ApplyEaterPreset(cfg *EaterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.StartingRobots = 1
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.CompletionPercentage = 70
		cfg.Gameplay.PowerUpDurationMS = 8000
		cfg.Timing.PursuerBaseMS = 260
	case DifficultyNormal:
		def := DefaultEaterConfig()
		cfg.Gameplay.StartingRobots = def.Gameplay.StartingRobots
		cfg.Gameplay.Lives = def.Gameplay.Lives
		cfg.Gameplay.CompletionPercentage = def.Gameplay.CompletionPercentage
		cfg.Gameplay.PowerUpDurationMS = def.Gameplay.PowerUpDurationMS
		cfg.Timing.PursuerBaseMS = def.Timing.PursuerBaseMS
	case DifficultyHard:
		cfg.Gameplay.StartingRobots = 4
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.CompletionPercentage = 90
		cfg.Gameplay.PowerUpDurationMS = 3000
		cfg.Timing.PursuerBaseMS = 150
	}
}
