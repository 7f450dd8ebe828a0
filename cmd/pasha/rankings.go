package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pashakim/pasha-party/internal/platform/tui"
	"github.com/pashakim/pasha-party/internal/storage"
)

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Show the local leaderboard",
	Long: `Display the top 10 finished sessions by final score.

Examples:
  pasha rankings
  pasha rankings --interactive
  pasha rankings --clear`,
	Run: runRankings,
}

var (
	flagClearRankings       bool
	flagInteractiveRankings bool
)

func init() {
	rankingsCmd.Flags().BoolVar(&flagClearRankings, "clear", false, "Wipe the leaderboard")
	rankingsCmd.Flags().BoolVarP(&flagInteractiveRankings, "interactive", "i", false, "Browse the board in a full-screen table")
}

func runRankings(_ *cobra.Command, _ []string) {
	cfg := loadAppConfig()

	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening game database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearRankings {
		if err := store.ClearRankings(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing rankings: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Leaderboard cleared.")
		return
	}

	if flagInteractiveRankings {
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width, height = 80, 24
		}
		if _, err := tui.RunRankings(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing rankings: %v\n", err)
			os.Exit(1)
		}
		return
	}

	entries, err := store.Rankings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rankings: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Local Rankings")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pasha play' to get on the board!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %-6s  %s\n", "Rank", "Player", "Score", "Stage", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %-6s  %s\n", "----", "------", "-----", "-----", "----")

	for _, e := range entries {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  #%-3d  %-16s  %-10d  %2d/30  %s\n", e.Rank, e.Player, e.Score, e.Stage, dateStr)
	}

	high, err := store.HighScore()
	if err == nil && high > 0 {
		fmt.Println()
		fmt.Printf("Best: %d\n", high)
	}
}
