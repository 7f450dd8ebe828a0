package scoring

import (
	"testing"

	"github.com/pashakim/pasha-party/internal/difficulty"
)

func TestTargetScore(t *testing.T) {
	cases := []struct {
		base     int
		level    difficulty.Level
		hardMode bool
		want     int
	}{
		{100, 1, false, 100},
		{100, 2, false, 120},
		{100, 3, false, 150},
		{100, 3, true, 225},
		{100, 6, false, 250},
		{100, 6, true, 375},
		{10, 5, false, 22},
	}
	for _, c := range cases {
		if got := TargetScore(c.base, c.level, c.hardMode); got != c.want {
			t.Errorf("TargetScore(%d, %d, %v) = %d, want %d", c.base, c.level, c.hardMode, got, c.want)
		}
	}
}

func TestTimeLimit(t *testing.T) {
	cases := []struct {
		base     float64
		level    difficulty.Level
		hardMode bool
		want     float64
	}{
		{10, 1, false, 10.0},
		{10, 2, false, 9.5},
		{10, 6, false, 7.5},
		{10, 6, true, 6.4}, // 10 * 0.75 * 0.85 = 6.375, rounded to one decimal
		{4, 6, true, 3.0},  // floored at 3 seconds
		{3, 1, false, 3.0},
	}
	for _, c := range cases {
		if got := TimeLimit(c.base, c.level, c.hardMode); got != c.want {
			t.Errorf("TimeLimit(%v, %d, %v) = %v, want %v", c.base, c.level, c.hardMode, got, c.want)
		}
	}
}

func TestSpeedAndComplexity(t *testing.T) {
	if got := Speed(6, false); got != 2.0 {
		t.Errorf("Speed(6, false) = %v", got)
	}
	if got := Speed(3, true); got != 1.3*1.3 {
		t.Errorf("Speed(3, true) = %v", got)
	}
	if got := Complexity(6, false); got != 2.2 {
		t.Errorf("Complexity(6, false) = %v", got)
	}
	if got := Complexity(2, true); got != 1.2*1.2 {
		t.Errorf("Complexity(2, true) = %v", got)
	}
}

func TestFinalScore(t *testing.T) {
	// 5000 base + 4*500 difficulty bonus + 3*200 hard-mode bonus
	if got := FinalScore(5000, 4, 3); got != 7600 {
		t.Errorf("FinalScore(5000, 4, 3) = %d, want 7600", got)
	}
	if got := FinalScore(0, 1, 0); got != 500 {
		t.Errorf("FinalScore(0, 1, 0) = %d, want 500", got)
	}
}

func TestGradeFor(t *testing.T) {
	cases := []struct {
		score, target int
		want          Grade
	}{
		{150, 100, GradeS},
		{120, 100, GradeA},
		{100, 100, GradeB},
		{90, 100, GradeC},
		{80, 100, GradeC},
		{79, 100, GradeF},
		{0, 100, GradeF},
		{10, 0, GradeF},
	}
	for _, c := range cases {
		if got := GradeFor(c.score, c.target); got != c.want {
			t.Errorf("GradeFor(%d, %d) = %s, want %s", c.score, c.target, got, c.want)
		}
	}
}

func TestIsPerfectClear(t *testing.T) {
	if !IsPerfectClear(150, 100) {
		t.Error("150/100 should be a perfect clear")
	}
	if IsPerfectClear(149, 100) {
		t.Error("149/100 should not be a perfect clear")
	}
	if IsPerfectClear(100, 0) {
		t.Error("zero target should never be a perfect clear")
	}
	// Perfect clear and grade S share the 1.5 threshold.
	if IsPerfectClear(150, 100) != (GradeFor(150, 100) == GradeS) {
		t.Error("perfect clear should coincide with grade S")
	}
}

func TestProgress(t *testing.T) {
	cases := []struct {
		stage, want int
	}{
		{0, 0},
		{3, 10},
		{15, 50},
		{30, 100},
		{31, 100},
		{-1, 0},
	}
	for _, c := range cases {
		if got := Progress(c.stage); got != c.want {
			t.Errorf("Progress(%d) = %d, want %d", c.stage, got, c.want)
		}
	}
}

func TestForLevelFallback(t *testing.T) {
	if got := ForLevel(difficulty.Level(42)); got != ForLevel(1) {
		t.Errorf("unknown level should fall back to level 1 multipliers, got %+v", got)
	}
}
