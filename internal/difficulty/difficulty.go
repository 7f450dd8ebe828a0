// Package difficulty maps session stages to difficulty levels and decides
// per-stage hard-mode activation. All functions are pure except the Roller,
// which carries its own RNG so sessions can be replayed from a seed.
package difficulty

import "math/rand"

// Level classifies a stage's challenge scaling, 1 (easiest) to 6 (extreme).
type Level int

const (
	MinLevel Level = 1
	MaxLevel Level = 6
)

// StagesPerTier is the number of consecutive stages sharing one level.
const StagesPerTier = 5

// TotalStages is the nominal length of a full session.
const TotalStages = 30

// Tier describes one contiguous stage range and its display metadata.
// The Multiplier is narrative only; scoring uses the per-level tables in
// the scoring package.
type Tier struct {
	Level       Level
	Name        string
	Stars       string
	FirstStage  int
	LastStage   int
	Multiplier  float64
	Description string
}

// Tiers is the fixed six-tier progression table.
var Tiers = [6]Tier{
	{Level: 1, Name: "Very Easy", Stars: "⭐", FirstStage: 1, LastStage: 5, Multiplier: 1.0, Description: "warm-up"},
	{Level: 2, Name: "Easy", Stars: "⭐⭐", FirstStage: 6, LastStage: 10, Multiplier: 1.2, Description: "basics"},
	{Level: 3, Name: "Normal", Stars: "⭐⭐⭐", FirstStage: 11, LastStage: 15, Multiplier: 1.5, Description: "focus required"},
	{Level: 4, Name: "Hard", Stars: "⭐⭐⭐⭐", FirstStage: 16, LastStage: 20, Multiplier: 1.8, Description: "fast reactions"},
	{Level: 5, Name: "Very Hard", Stars: "⭐⭐⭐⭐⭐", FirstStage: 21, LastStage: 25, Multiplier: 2.2, Description: "expert"},
	{Level: 6, Name: "Extreme", Stars: "🔥", FirstStage: 26, LastStage: 30, Multiplier: 2.5, Description: "the limit"},
}

// TierForStage returns the difficulty level for a stage number.
// Stages at or below 0 clamp to level 1; stages past the nominal 30 clamp
// to level 6 (the stage counter can overflow transiently between a result
// and the completion check).
func TierForStage(stage int) Level {
	if stage <= 0 {
		return MinLevel
	}
	if stage > TotalStages {
		return MaxLevel
	}
	for _, t := range Tiers {
		if stage >= t.FirstStage && stage <= t.LastStage {
			return t.Level
		}
	}
	return MinLevel
}

// TierInfo returns the tier metadata for a level. Unknown levels fall back
// to the first tier.
func TierInfo(level Level) Tier {
	for _, t := range Tiers {
		if t.Level == level {
			return t
		}
	}
	return Tiers[0]
}

// HardModeProbability is the chance that any given stage rolls hard mode.
const HardModeProbability = 0.12

// hardModeBoost is added to the effective level when hard mode is active.
const hardModeBoost = 1.5

// Roller decides hard-mode activation. Rolls are independent across stages;
// a hard-mode stage does not suppress the next roll.
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a roller backed by the given RNG.
func NewRoller(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// Roll returns true with probability HardModeProbability.
func (r *Roller) Roll() bool {
	return r.rng.Float64() < HardModeProbability
}

// HardModeLevel returns the effective (fractional) level of a hard-mode
// stage: base + 1.5, clamped to 6.
func HardModeLevel(base Level) float64 {
	boosted := float64(base) + hardModeBoost
	if boosted > float64(MaxLevel) {
		return float64(MaxLevel)
	}
	return boosted
}
