package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pashakim/pasha-party/internal/config"
	"github.com/pashakim/pasha-party/internal/storage"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change player preferences",
	Long: `Display the stored player preferences, or change individual ones.

Examples:
  pasha settings
  pasha settings --sound=false --volume 0.4
  pasha settings --tutorial=false
  pasha settings --name Alex`,
	Run: runSettings,
}

var (
	flagSetSound    string
	flagSetHaptics  string
	flagSetTutorial string
	flagSetLanguage string
	flagSetVolume   float64
	flagSetName     string
)

func init() {
	settingsCmd.Flags().StringVar(&flagSetSound, "sound", "", "Enable sound effects (true/false)")
	settingsCmd.Flags().StringVar(&flagSetHaptics, "haptics", "", "Enable haptic feedback (true/false)")
	settingsCmd.Flags().StringVar(&flagSetTutorial, "tutorial", "", "Show instruction cards before each stage (true/false)")
	settingsCmd.Flags().StringVar(&flagSetLanguage, "language", "", "UI language code (e.g. en)")
	settingsCmd.Flags().Float64Var(&flagSetVolume, "volume", -1, "Effect volume, 0.0 to 1.0")
	settingsCmd.Flags().StringVar(&flagSetName, "name", "", "Player name used on the leaderboard")
}

func runSettings(_ *cobra.Command, _ []string) {
	cfg := loadAppConfig()

	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening game database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	svc := config.NewSettingsService(store)

	changed, err := applySettingsFlags(svc, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
		os.Exit(1)
	}

	set := svc.Current()
	name, _ := store.PlayerName()

	fmt.Println("Player settings")
	fmt.Println()
	fmt.Printf("  Name:     %s\n", name)
	fmt.Printf("  Sound:    %s\n", onOff(set.Sound))
	fmt.Printf("  Haptics:  %s\n", onOff(set.Haptics))
	fmt.Printf("  Tutorial: %s\n", onOff(set.ShowTutorial))
	fmt.Printf("  Language: %s\n", set.Language)
	fmt.Printf("  Volume:   %.0f%%\n", set.Volume*100)
	if changed {
		fmt.Println()
		fmt.Println("Saved.")
	}
}

// applySettingsFlags writes every flag the user passed through the
// service. Reports whether anything changed.
func applySettingsFlags(svc *config.SettingsService, store *storage.Store) (bool, error) {
	changed := false

	for _, f := range []struct {
		raw   string
		apply func(bool) error
	}{
		{flagSetSound, svc.SetSound},
		{flagSetHaptics, svc.SetHaptics},
		{flagSetTutorial, svc.SetShowTutorial},
	} {
		if f.raw == "" {
			continue
		}
		on, err := strconv.ParseBool(f.raw)
		if err != nil {
			return changed, fmt.Errorf("expected true or false, got %q", f.raw)
		}
		if err := f.apply(on); err != nil {
			return changed, err
		}
		changed = true
	}

	if flagSetLanguage != "" {
		if err := svc.SetLanguage(flagSetLanguage); err != nil {
			return changed, err
		}
		changed = true
	}
	if flagSetVolume >= 0 {
		if err := svc.SetVolume(flagSetVolume); err != nil {
			return changed, err
		}
		changed = true
	}
	if flagSetName != "" {
		if err := store.SavePlayerName(flagSetName); err != nil {
			return changed, err
		}
		changed = true
	}
	return changed, nil
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
