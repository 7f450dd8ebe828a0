package config

import (
	"github.com/pashakim/pasha-party/internal/storage"
)

// SettingsStore is the persistence surface the settings service needs.
// *storage.Store satisfies it.
type SettingsStore interface {
	Settings() (storage.Settings, error)
	SaveSettings(storage.Settings) error
}

// SettingsService owns the player preferences for a process. Components
// receive it by injection rather than reaching for a global; the CLI
// builds one instance at startup and hands it to the TUI and server.
type SettingsService struct {
	store   SettingsStore
	current storage.Settings
}

// NewSettingsService loads the stored preferences through the given
// store. A load failure degrades to defaults rather than blocking play.
func NewSettingsService(store SettingsStore) *SettingsService {
	svc := &SettingsService{store: store, current: storage.DefaultSettings()}
	if store != nil {
		if set, err := store.Settings(); err == nil {
			svc.current = set
		}
	}
	return svc
}

// Current returns the active preferences.
func (s *SettingsService) Current() storage.Settings {
	return s.current
}

// Update replaces the preferences and persists them. The in-memory copy
// updates even when persistence fails, so the running session stays
// consistent with what the player chose.
func (s *SettingsService) Update(set storage.Settings) error {
	if set.Volume < 0 {
		set.Volume = 0
	}
	if set.Volume > 1 {
		set.Volume = 1
	}
	s.current = set

	if s.store == nil {
		return nil
	}
	return s.store.SaveSettings(set)
}

// SetSound toggles sound effects.
func (s *SettingsService) SetSound(on bool) error {
	set := s.current
	set.Sound = on
	return s.Update(set)
}

// SetHaptics toggles haptic feedback.
func (s *SettingsService) SetHaptics(on bool) error {
	set := s.current
	set.Haptics = on
	return s.Update(set)
}

// SetShowTutorial toggles the instruction cards before each stage.
func (s *SettingsService) SetShowTutorial(on bool) error {
	set := s.current
	set.ShowTutorial = on
	return s.Update(set)
}

// SetVolume sets the effect volume, clamped to [0, 1].
func (s *SettingsService) SetVolume(v float64) error {
	set := s.current
	set.Volume = v
	return s.Update(set)
}

// SetLanguage sets the UI language code.
func (s *SettingsService) SetLanguage(lang string) error {
	set := s.current
	set.Language = lang
	return s.Update(set)
}
