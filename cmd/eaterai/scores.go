package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/eaterai/internal/platform/tui"
	"github.com/vovakirdan/eaterai/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
	flagScoresRun   string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores. A fresh database starts with three seeded
entries (CPU, BOT and AI) to beat.

Examples:
  eaterai scores
  eaterai scores --limit 10
  eaterai scores --tui
  eaterai scores --run 6f1c0d2e-...
  eaterai scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 3, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Show the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show a single run by its ID")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(storage.GameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	if flagScoresRun != "" {
		entry, err := store.ScoreByRunID(flagScoresRun)
		if err != nil {
			return err
		}
		if entry == nil {
			return fmt.Errorf("no run with ID %q", flagScoresRun)
		}
		fmt.Printf("%s  %s  score %d  level %d  %s\n", entry.RunID, entry.Name, entry.Score, entry.Level,
			entry.CreatedAt.Format("2006-01-02 15:04"))
		return nil
	}

	if err := store.SeedDefaults(storage.GameID); err != nil {
		return err
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	scores, err := store.TopScores(storage.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Eater AI")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'eaterai play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %-5s  %-16s  %s\n", "Rank", "Name", "Score", "Level", "Date", "Run")
	fmt.Printf("  %-4s  %-16s  %-8s  %-5s  %-16s  %s\n", "----", "----", "-----", "-----", "----", "---")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-8d  %-5d  %-16s  %s\n", i+1, entry.Name, entry.Score, entry.Level, dateStr, entry.RunID)
	}

	stats, err := store.GetGameStats(storage.GameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games played: %d  Best level: %d\n", stats.GamesCount, stats.BestLevel)
	}
	return nil
}
