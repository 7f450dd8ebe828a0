package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pashakim/pasha-party/internal/scoring"
	"github.com/pashakim/pasha-party/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate play statistics",
	Long: `Display lifetime statistics: sessions played, total score, best
stage reached, total play time and per-mini-game history.`,
	Run: runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	cfg := loadAppConfig()
	cat := loadCatalog(cfg)

	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening game database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	st, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	name, _ := store.PlayerName()

	fmt.Printf("Play statistics - %s\n", name)
	fmt.Println()

	if st.TotalPlays == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pasha play' to start your history!")
		return
	}

	playTime := time.Duration(st.TotalPlayTime) * time.Second
	fmt.Printf("  Sessions:   %d\n", st.TotalPlays)
	fmt.Printf("  High score: %d\n", st.HighScore)
	fmt.Printf("  Total:      %d\n", st.TotalScore)
	fmt.Printf("  Best stage: %d/30 (%d%%)\n", st.BestStage, scoring.Progress(st.BestStage))
	fmt.Printf("  Play time:  %s\n", playTime)

	perGame, err := store.AllMiniGameStats()
	if err != nil || len(perGame) == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("  %-3s  %-16s  %-6s  %-6s  %s\n", "ID", "Mini-game", "Plays", "Clears", "Best")
	fmt.Printf("  %-3s  %-16s  %-6s  %-6s  %s\n", "--", "---------", "-----", "------", "----")

	for _, g := range cat.Sorted() {
		gs, ok := perGame[g.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-3d  %-16s  %-6d  %-6d  %d\n", g.ID, g.Name, gs.Plays, gs.Clears, gs.BestScore)
	}
}
