package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pashakim/pasha-party/internal/storage"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("database:\n  path: /tmp/test.db\ngame:\n  fps: 60\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("Database.Path = %q, want /tmp/test.db", cfg.Database.Path)
	}
	if cfg.Game.FPS != 60 {
		t.Errorf("Game.FPS = %d, want 60", cfg.Game.FPS)
	}
	// Fields absent from the file fall back to defaults.
	if cfg.SSH.Port != DefaultConfig().SSH.Port {
		t.Errorf("SSH.Port = %d, want default %d", cfg.SSH.Port, DefaultConfig().SSH.Port)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestDefaultConfigIsComplete(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Database.Path == "" {
		t.Error("default database path is empty")
	}
	if cfg.Game.FPS <= 0 {
		t.Error("default FPS must be positive")
	}
	if cfg.SSH.Port <= 0 {
		t.Error("default SSH port must be positive")
	}
}

type fakeStore struct {
	settings storage.Settings
	loadErr  error
	saveErr  error
	saves    int
}

func (f *fakeStore) Settings() (storage.Settings, error) {
	return f.settings, f.loadErr
}

func (f *fakeStore) SaveSettings(s storage.Settings) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.settings = s
	f.saves++
	return nil
}

func TestSettingsServiceLoadsFromStore(t *testing.T) {
	stored := storage.DefaultSettings()
	stored.Language = "fr"
	svc := NewSettingsService(&fakeStore{settings: stored})

	if svc.Current().Language != "fr" {
		t.Errorf("Language = %q, want fr", svc.Current().Language)
	}
}

func TestSettingsServiceDefaultsOnLoadError(t *testing.T) {
	svc := NewSettingsService(&fakeStore{loadErr: errors.New("boom")})

	if svc.Current() != storage.DefaultSettings() {
		t.Errorf("load failure should yield defaults, got %+v", svc.Current())
	}
}

func TestSettingsServiceUpdatePersists(t *testing.T) {
	store := &fakeStore{settings: storage.DefaultSettings()}
	svc := NewSettingsService(store)

	if err := svc.SetVolume(0.4); err != nil {
		t.Fatalf("SetVolume() failed: %v", err)
	}
	if store.settings.Volume != 0.4 {
		t.Errorf("stored Volume = %v, want 0.4", store.settings.Volume)
	}
	if store.saves != 1 {
		t.Errorf("saves = %d, want 1", store.saves)
	}
}

func TestSettingsServiceClampsVolume(t *testing.T) {
	svc := NewSettingsService(&fakeStore{settings: storage.DefaultSettings()})

	svc.SetVolume(3.0)
	if svc.Current().Volume != 1.0 {
		t.Errorf("Volume = %v, want clamped to 1.0", svc.Current().Volume)
	}
	svc.SetVolume(-2.0)
	if svc.Current().Volume != 0.0 {
		t.Errorf("Volume = %v, want clamped to 0.0", svc.Current().Volume)
	}
}

func TestSettingsServiceKeepsMemoryOnSaveError(t *testing.T) {
	store := &fakeStore{settings: storage.DefaultSettings(), saveErr: errors.New("disk full")}
	svc := NewSettingsService(store)

	if err := svc.SetSound(false); err == nil {
		t.Error("SetSound() should surface the save error")
	}
	if svc.Current().Sound {
		t.Error("in-memory settings should update even when persistence fails")
	}
}

func TestSettingsServiceNilStore(t *testing.T) {
	svc := NewSettingsService(nil)
	if err := svc.SetLanguage("ko"); err != nil {
		t.Fatalf("SetLanguage() with nil store failed: %v", err)
	}
	if svc.Current().Language != "ko" {
		t.Errorf("Language = %q, want ko", svc.Current().Language)
	}
}
