package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pashakim/pasha-party/internal/minigames"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the mini-game catalog",
	Long:  `Shows every mini-game in the catalog with its category and base challenge.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	cfg := loadAppConfig()
	cat := loadCatalog(cfg)

	games := cat.Sorted()

	fmt.Printf("Mini-game catalog (%d games):\n", len(games))
	fmt.Println()

	// Calculate name column width
	maxNameLen := 4 // "Name" header
	for _, g := range games {
		if len(g.Name) > maxNameLen {
			maxNameLen = len(g.Name)
		}
	}

	fmt.Printf("  %-3s  %-*s  %-11s  %-9s  %s\n", "ID", maxNameLen, "Name", "Category", "Scoring", "Engine")
	fmt.Printf("  %-3s  %-*s  %-11s  %-9s  %s\n", "--", maxNameLen, "----", "--------", "-------", "------")

	for _, g := range games {
		engine := g.Archetype
		if !minigames.Exists(engine) {
			engine += " (missing!)"
		}
		fmt.Printf("  %-3d  %-*s  %-11s  %-9s  %s\n",
			g.ID, maxNameLen, g.Name, g.Category, g.ScoreType, engine)
	}

	fmt.Println()
	fmt.Println("Run 'pasha play' to play them all.")
}
