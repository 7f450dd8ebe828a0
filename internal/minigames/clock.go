package minigames

import (
	"math/rand"

	"github.com/pashakim/pasha-party/internal/core"
	"github.com/pashakim/pasha-party/internal/scoring"
)

// defaultTickRate is assumed when the platform passes none.
const defaultTickRate = 30

// stage holds the bookkeeping every archetype shares: parameters, RNG,
// tick clock, running score and the one-shot result.
type stage struct {
	params     core.StageParams
	rng        *rand.Rand
	tickRate   int
	ticksLeft  int
	totalTicks int

	score    int
	attempts int
	finished bool
	result   core.StageResult
}

// reset rearms the shared state from fresh parameters.
func (s *stage) reset(p core.StageParams) {
	s.params = p
	s.tickRate = p.TickRate
	if s.tickRate <= 0 {
		s.tickRate = defaultTickRate
	}
	s.totalTicks = int(p.TimeLimit * float64(s.tickRate))
	s.ticksLeft = s.totalTicks
	s.rng = rand.New(rand.NewSource(p.Seed))
	s.score = 0
	s.attempts = 0
	s.finished = false
	s.result = core.StageResult{}
}

// tick burns one tick and reports whether time has run out.
func (s *stage) tick() bool {
	if s.finished {
		return true
	}
	s.ticksLeft--
	return s.ticksLeft <= 0
}

// secondsLeft converts the remaining ticks to seconds.
func (s *stage) secondsLeft() float64 {
	if s.ticksLeft <= 0 {
		return 0
	}
	return float64(s.ticksLeft) / float64(s.tickRate)
}

// finish seals the stage outcome. Later calls keep the first result.
func (s *stage) finish(res core.StageResult) {
	if s.finished {
		return
	}
	s.result = res
	s.finished = true
}

// baseResult fills the fields every archetype reports the same way.
func (s *stage) baseResult() core.StageResult {
	return core.StageResult{
		Success:       scoring.Success(s.score, s.params.TargetScore),
		Score:         s.score,
		TimeRemaining: s.secondsLeft(),
		Attempts:      s.attempts,
	}
}

// scaled multiplies n by a float multiplier, rounding down but never
// below 1.
func scaled(n int, mult float64) int {
	v := int(float64(n) * mult)
	if v < 1 {
		return 1
	}
	return v
}
