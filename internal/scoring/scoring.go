// Package scoring computes per-stage mini-game parameters (time limit,
// target score, speed, complexity) from the difficulty level, and the final
// session score with its bonuses. Everything here is a pure function over
// the fixed multiplier tables.
package scoring

import (
	"math"

	"github.com/pashakim/pasha-party/internal/difficulty"
)

// Multipliers holds the per-level scaling factors applied to a mini-game's
// base parameters.
type Multipliers struct {
	TargetScore float64
	TimeLimit   float64
	Speed       float64
	Complexity  float64
}

// multipliers indexes scaling factors by difficulty level.
var multipliers = map[difficulty.Level]Multipliers{
	1: {TargetScore: 1.0, TimeLimit: 1.0, Speed: 1.0, Complexity: 1.0},
	2: {TargetScore: 1.2, TimeLimit: 0.95, Speed: 1.1, Complexity: 1.2},
	3: {TargetScore: 1.5, TimeLimit: 0.9, Speed: 1.3, Complexity: 1.4},
	4: {TargetScore: 1.8, TimeLimit: 0.85, Speed: 1.5, Complexity: 1.6},
	5: {TargetScore: 2.2, TimeLimit: 0.8, Speed: 1.8, Complexity: 1.9},
	6: {TargetScore: 2.5, TimeLimit: 0.75, Speed: 2.0, Complexity: 2.2},
}

// Hard-mode modifiers on top of the level multipliers.
const (
	hardModeTargetBoost    = 1.5
	hardModeTimeReduction  = 0.85
	hardModeSpeedBoost     = 1.3
	hardModeComplexityMult = 1.2
)

// minTimeLimit is the floor for any adjusted time limit, in seconds.
const minTimeLimit = 3.0

// Session bonus constants.
const (
	DifficultyBonusPerLevel = 500
	HardModeBonus           = 200
)

// ForLevel returns the multiplier set for a level. Unknown levels fall back
// to level 1.
func ForLevel(level difficulty.Level) Multipliers {
	if m, ok := multipliers[level]; ok {
		return m
	}
	return multipliers[1]
}

// TimeLimit scales a mini-game's base time limit (seconds) by the level's
// time multiplier, tightens it another 15% under hard mode, floors the
// result at 3 seconds and rounds to one decimal.
func TimeLimit(base float64, level difficulty.Level, hardMode bool) float64 {
	t := base * ForLevel(level).TimeLimit
	if hardMode {
		t *= hardModeTimeReduction
	}
	t = math.Round(t*10) / 10
	if t < minTimeLimit {
		return minTimeLimit
	}
	return t
}

// TargetScore scales a mini-game's base target by the level's target
// multiplier, then by 1.5 under hard mode, rounding at each step the way
// the displayed target is rounded.
func TargetScore(base int, level difficulty.Level, hardMode bool) int {
	target := int(math.Round(float64(base) * ForLevel(level).TargetScore))
	if hardMode {
		target = int(math.Round(float64(target) * hardModeTargetBoost))
	}
	return target
}

// Speed returns the object-speed multiplier consumed by mini-game engines.
func Speed(level difficulty.Level, hardMode bool) float64 {
	s := ForLevel(level).Speed
	if hardMode {
		s *= hardModeSpeedBoost
	}
	return s
}

// Complexity returns the object-count multiplier consumed by mini-game
// engines.
func Complexity(level difficulty.Level, hardMode bool) float64 {
	c := ForLevel(level).Complexity
	if hardMode {
		c *= hardModeComplexityMult
	}
	return c
}

// FinalScore folds the session bonuses into the accumulated base score.
func FinalScore(baseScore int, maxDifficulty difficulty.Level, hardModeCleared int) int {
	return baseScore + DifficultyBonus(maxDifficulty) + HardModeClearBonus(hardModeCleared)
}

// DifficultyBonus rewards the highest difficulty level reached.
func DifficultyBonus(maxDifficulty difficulty.Level) int {
	return int(maxDifficulty) * DifficultyBonusPerLevel
}

// HardModeClearBonus rewards each cleared hard-mode stage.
func HardModeClearBonus(cleared int) int {
	return cleared * HardModeBonus
}

// Grade is a per-stage letter rating derived from score vs. target.
type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeF Grade = "F"
)

// GradeFor rates a stage result. Ratios: S >= 1.5, A >= 1.2, B >= 1.0,
// C >= 0.8, otherwise F.
func GradeFor(score, targetScore int) Grade {
	if targetScore <= 0 {
		return GradeF
	}
	ratio := float64(score) / float64(targetScore)
	switch {
	case ratio >= 1.5:
		return GradeS
	case ratio >= 1.2:
		return GradeA
	case ratio >= 1.0:
		return GradeB
	case ratio >= 0.8:
		return GradeC
	default:
		return GradeF
	}
}

// Success reports whether the stage target was met.
func Success(score, targetScore int) bool {
	return score >= targetScore
}

// IsPerfectClear reports a score at 150% of target or more, the same
// threshold as GradeS.
func IsPerfectClear(score, targetScore int) bool {
	if targetScore <= 0 {
		return false
	}
	return float64(score) >= float64(targetScore)*1.5
}

// Progress returns session completion as a whole percentage, capped at 100.
func Progress(currentStage int) int {
	p := int(math.Round(float64(currentStage) / float64(difficulty.TotalStages) * 100))
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}
