// eaterai is a terminal maze game: eat the pips, dodge the robots that learn
// how you move.
//
// Usage:
//
//	eaterai play         - Play in the terminal
//	eaterai scores       - Show the high score table
//	eaterai serve        - Start SSH server for remote play
//	eaterai sim          - Run a headless game driven by a random bot
//	eaterai config       - Print the effective configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible games
//	--db <path>           - Set database path (default: ~/.eaterai/scores.db)
//	--config <path>       - Load a custom YAML config
//	--difficulty <name>   - Apply a preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string

	// Gameplay overrides, applied on top of the loaded config when set.
	flagRobots     int
	flagLives      int
	flagCompletion int
	flagPowerUp    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eaterai",
	Short: "Eater AI - a maze game against learning robots",
	Long: `Eater AI is a terminal maze game. Eat enough pips to clear the level
while robots chase you. The robots remember where they saw you and
favour the moves that caught you before.

Available commands:
  play     - Play in the terminal
  scores   - View high scores
  serve    - Start SSH server for remote play
  sim      - Headless game with a random bot
  config   - Print the effective configuration

Examples:
  eaterai play
  eaterai play --difficulty hard --robots 4
  eaterai scores
  eaterai serve --ssh :2222
  eaterai sim --seed 42 --speed 10`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.eaterai/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.PersistentFlags().IntVar(&flagRobots, "robots", 0, "Starting robots (1-8)")
	rootCmd.PersistentFlags().IntVar(&flagLives, "lives", 0, "Lives (1-5)")
	rootCmd.PersistentFlags().IntVar(&flagCompletion, "completion", 0, "Percentage of pips needed to clear a level (70-90)")
	rootCmd.PersistentFlags().IntVar(&flagPowerUp, "powerup", 0, "Power-up duration in seconds (3-10)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
