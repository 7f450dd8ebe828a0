package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pashakim/pasha-party/internal/config"
	"github.com/pashakim/pasha-party/internal/platform/tui"
	"github.com/pashakim/pasha-party/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a party-game session",
	Long: `Start a full session: all 30 mini-games in random order, 3 lives,
one continue.

Controls:
  Arrows/WASD - Move
  Space       - Tap
  1/2/3       - Answer (quiz stages)
  Enter       - Confirm / advance
  Esc         - Back to menu
  Ctrl+C      - Quit

Examples:
  pasha play
  pasha play --player mika
  pasha play --seed 42 --fps 60`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name for the leaderboard (default: stored profile)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadAppConfig()
	cat := loadCatalog(cfg)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open storage
	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open game database: %v\n", err)
		// Continue without storage - the session still works
		store = nil
	}

	if store != nil && flagPlayer != "" {
		//nolint:errcheck // Best-effort profile update
		store.SavePlayerName(flagPlayer)
	}

	settings := config.NewSettingsService(store)

	opts := tui.Options{
		Width:  width,
		Height: height,
		FPS:    cfg.Game.FPS,
		Seed:   flagSeed,
		Player: flagPlayer,
	}

	runErr := tui.Run(cat, store, settings, opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
