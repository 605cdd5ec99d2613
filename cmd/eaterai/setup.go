package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/eaterai/internal/config"
)

// loadConfig resolves the config file, the difficulty preset and the
// per-setting flags, in that order.
func loadConfig() (config.EaterConfig, error) {
	cfg, err := config.LoadEater(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyEaterPreset(&cfg, preset)

	if flagRobots > 0 {
		cfg.Gameplay.StartingRobots = flagRobots
	}
	if flagLives > 0 {
		cfg.Gameplay.Lives = flagLives
	}
	if flagCompletion > 0 {
		cfg.Gameplay.CompletionPercentage = flagCompletion
	}
	if flagPowerUp > 0 {
		cfg.Gameplay.PowerUpDurationMS = flagPowerUp * 1000
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// resolveSeed returns the --seed value, or a time based one when unset.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// newLogger builds the stderr logger used by the non-interactive commands.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
