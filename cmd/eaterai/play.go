package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/eaterai/internal/core"
	"github.com/vovakirdan/eaterai/internal/platform/tui"
	"github.com/vovakirdan/eaterai/internal/storage"
)

var flagName string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game menu. Type your name, pick Start and clear levels by
eating pips while the robots hunt you.

Controls:
  Arrows/WASD/HJKL - Move
  Enter            - Select
  C                - Configure the next run (game over screen)
  Tab              - High scores
  Esc              - Back / abandon the current run
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - One robot, five lives, long power-ups
  normal - The default settings
  hard   - Four robots, two lives, short power-ups
  fixed  - Use the config file as is

Examples:
  eaterai play
  eaterai play --name ada
  eaterai play --difficulty easy
  eaterai play --seed 42 --robots 3`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name (defaults to the current user)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtimeCfg := core.DefaultConfig()
	runtimeCfg.ScreenW = width
	runtimeCfg.ScreenH = height
	runtimeCfg.Seed = flagSeed

	opts := tui.Options{
		Settings: cfg.Settings(),
		Rules:    cfg.Rules(),
		Name:     defaultName(),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		fmt.Fprintln(os.Stderr, "Scores will not be saved.")
	} else {
		defer store.Close()
		if seedErr := store.SeedDefaults(storage.GameID); seedErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not seed scores: %v\n", seedErr)
		}
		opts.Store = store
	}

	if err := tui.Run(runtimeCfg, opts); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}

func defaultName() string {
	if flagName != "" {
		return flagName
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
