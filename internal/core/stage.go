package core

// StageParams is everything a mini-game engine needs to parametrize one
// stage: the difficulty-adjusted limits computed by the scoring policy plus
// the multipliers consumed directly by the engine.
type StageParams struct {
	Difficulty  int     // 1-6, current stage level
	TimeLimit   float64 // seconds, already adjusted
	TargetScore int     // already adjusted
	HardMode    bool
	Speed       float64 // object speed multiplier
	Complexity  float64 // object count multiplier
	Seed        int64   // per-stage RNG seed
	TickRate    int     // simulation ticks per second
}

// StageResult is the single outcome a mini-game reports when it finishes.
// Optional fields are zero when the archetype does not track them.
type StageResult struct {
	Success       bool
	Score         int
	TimeRemaining float64 // seconds left on the stage clock
	Accuracy      float64 // 0-100, quiz and memory games
	Count         int     // successful actions, count-based games
	Attempts      int
	Perfect       bool
}
