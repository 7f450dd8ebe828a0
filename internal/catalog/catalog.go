// Package catalog holds the immutable mini-game descriptor table: the 30
// challenges a session draws from, with their base parameters before
// difficulty scaling. The catalog is loaded once at startup from an
// embedded YAML default, optionally overridden by a user file.
package catalog

import (
	"fmt"
	"sort"
)

// ScoreType describes how a mini-game computes its score.
type ScoreType string

const (
	ScoreSpeed    ScoreType = "speed"    // remaining time based
	ScoreAccuracy ScoreType = "accuracy" // success ratio based
	ScoreCount    ScoreType = "count"    // successful actions based
	ScoreHybrid   ScoreType = "hybrid"   // combination
)

// Category groups mini-games for display and stats.
type Category string

const (
	CategoryAction     Category = "action"
	CategoryPuzzle     Category = "puzzle"
	CategoryTiming     Category = "timing"
	CategoryMemory     Category = "memory"
	CategoryCollection Category = "collection"
	CategoryPrecision  Category = "precision"
)

// TotalGames is the required catalog size; a session always plays all of
// them exactly once.
const TotalGames = 30

// Descriptor is one catalog entry. Read-only after load.
type Descriptor struct {
	ID             int       `yaml:"id"`
	Name           string    `yaml:"name"`
	Category       Category  `yaml:"category"`
	Instruction    string    `yaml:"instruction"`
	Emoji          string    `yaml:"emoji"`
	ScoreType      ScoreType `yaml:"score_type"`
	BaseTimeLimit  float64   `yaml:"base_time_limit"`  // seconds
	BaseTarget     int       `yaml:"base_target"`      // target score before scaling
	BaseDifficulty int       `yaml:"base_difficulty"`  // 1-5, intrinsic challenge
	Archetype      string    `yaml:"archetype"`        // engine family in minigames package
}

// Catalog is the full descriptor table.
type Catalog struct {
	Games []Descriptor `yaml:"games"`
}

// Validate checks the catalog invariants: exactly 30 entries, unique ids
// in 1..30, positive bases, and an archetype on every entry.
func (c *Catalog) Validate() error {
	if len(c.Games) != TotalGames {
		return fmt.Errorf("catalog: expected %d games, got %d", TotalGames, len(c.Games))
	}
	seen := make(map[int]bool, TotalGames)
	for _, d := range c.Games {
		if d.ID < 1 || d.ID > TotalGames {
			return fmt.Errorf("catalog: game %q has id %d outside 1..%d", d.Name, d.ID, TotalGames)
		}
		if seen[d.ID] {
			return fmt.Errorf("catalog: duplicate game id %d", d.ID)
		}
		seen[d.ID] = true
		if d.Name == "" {
			return fmt.Errorf("catalog: game %d has no name", d.ID)
		}
		if d.BaseTimeLimit <= 0 {
			return fmt.Errorf("catalog: game %d has non-positive time limit", d.ID)
		}
		if d.BaseTarget <= 0 {
			return fmt.Errorf("catalog: game %d has non-positive target", d.ID)
		}
		if d.BaseDifficulty < 1 || d.BaseDifficulty > 5 {
			return fmt.Errorf("catalog: game %d has base difficulty %d outside 1..5", d.ID, d.BaseDifficulty)
		}
		if d.Archetype == "" {
			return fmt.Errorf("catalog: game %d has no archetype", d.ID)
		}
	}
	return nil
}

// ByID returns the descriptor with the given id, or false if absent.
func (c *Catalog) ByID(id int) (Descriptor, bool) {
	for _, d := range c.Games {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Sorted returns the descriptors ordered by id. The catalog itself is not
// reordered; sessions shuffle their own copy.
func (c *Catalog) Sorted() []Descriptor {
	out := make([]Descriptor, len(c.Games))
	copy(out, c.Games)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
