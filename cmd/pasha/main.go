// pasha is a terminal party game: a run of 30 rapid-fire mini-games with
// lives, escalating difficulty, a hard-mode randomizer and one continue.
//
// Usage:
//
//	pasha play               - Start a session in the terminal
//	pasha list               - List the mini-game catalog
//	pasha rankings           - Show the local leaderboard
//	pasha stats              - Show aggregate play statistics
//	pasha settings           - Show or change player preferences
//	pasha serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible sessions
//	--db <path>      - Set database path (default: ~/.pasha/pasha.db)
//	--config <path>  - Path to a custom config YAML
//	--catalog <path> - Path to a custom mini-game catalog YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pashakim/pasha-party/internal/catalog"
	"github.com/pashakim/pasha-party/internal/config"

	// Import mini-games to register the archetype engines
	_ "github.com/pashakim/pasha-party/internal/minigames"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagCatalog string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pasha",
	Short: "Pasha Party - 30 mini-games, 3 lives, one continue",
	Long: `Pasha Party is a terminal party game: one session runs you through
all 30 mini-games in random order. Clear each stage's target score before
the clock runs out; misses cost a life. Difficulty climbs every five
stages, and any stage can randomly roll hard mode.

Available commands:
  play     - Start a session in your terminal
  list     - Show the mini-game catalog
  rankings - View the local leaderboard
  stats    - View aggregate play statistics
  settings - Show or change player preferences
  serve    - Start SSH server for remote play

Examples:
  pasha play
  pasha play --seed 42
  pasha list
  pasha rankings
  pasha serve --ssh :2323`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to game database (empty = config value)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Path to custom mini-game catalog YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadAppConfig resolves the effective configuration: file values with
// explicit flags layered on top.
func loadAppConfig() config.AppConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDBPath != "" {
		cfg.Database.Path = flagDBPath
	}
	if flagFPS > 0 {
		cfg.Game.FPS = flagFPS
	}
	if flagCatalog != "" {
		cfg.Game.CatalogPath = flagCatalog
	}
	return cfg
}

// loadCatalog loads the mini-game catalog named by the configuration.
func loadCatalog(cfg config.AppConfig) *catalog.Catalog {
	cat, err := catalog.Load(cfg.Game.CatalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}
	return cat
}
