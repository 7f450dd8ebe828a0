package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalogValid(t *testing.T) {
	c := Default()

	if len(c.Games) != TotalGames {
		t.Fatalf("expected %d games, got %d", TotalGames, len(c.Games))
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}

	// Every id 1..30 present exactly once.
	for id := 1; id <= TotalGames; id++ {
		if _, ok := c.ByID(id); !ok {
			t.Errorf("missing game id %d", id)
		}
	}
}

func TestValidateRejectsBadCatalogs(t *testing.T) {
	base := Default()

	short := &Catalog{Games: base.Games[:10]}
	if err := short.Validate(); err == nil {
		t.Error("short catalog should fail validation")
	}

	dup := &Catalog{Games: append([]Descriptor{}, base.Games...)}
	dup.Games[1].ID = dup.Games[0].ID
	if err := dup.Validate(); err == nil {
		t.Error("duplicate ids should fail validation")
	}

	zeroTime := &Catalog{Games: append([]Descriptor{}, base.Games...)}
	zeroTime.Games[0].BaseTimeLimit = 0
	if err := zeroTime.Validate(); err == nil {
		t.Error("zero time limit should fail validation")
	}

	noArch := &Catalog{Games: append([]Descriptor{}, base.Games...)}
	noArch.Games[5].Archetype = ""
	if err := noArch.Validate(); err == nil {
		t.Error("missing archetype should fail validation")
	}
}

func TestLoadCustomPath(t *testing.T) {
	// A valid custom file round-trips; a missing one is an error.
	tmp := t.TempDir()
	path := filepath.Join(tmp, "catalog.yaml")
	if err := os.WriteFile(path, defaultCatalogYAML, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if len(c.Games) != TotalGames {
		t.Errorf("expected %d games, got %d", TotalGames, len(c.Games))
	}

	if _, err := Load(filepath.Join(tmp, "missing.yaml")); err == nil {
		t.Error("missing custom path should be an error")
	}
}

func TestSortedOrder(t *testing.T) {
	c := Default()
	sorted := c.Sorted()
	for i, d := range sorted {
		if d.ID != i+1 {
			t.Fatalf("position %d has id %d", i, d.ID)
		}
	}
}
