// Package session owns the authoritative party-game state: the phase
// machine over a 30-stage mini-game run, lives, score, difficulty
// progression and the one-shot continue gate. All mutation goes through
// the Engine's transition methods; observers read snapshots.
package session

import (
	"math/rand"
	"time"

	"github.com/pashakim/pasha-party/internal/catalog"
	"github.com/pashakim/pasha-party/internal/core"
	"github.com/pashakim/pasha-party/internal/difficulty"
	"github.com/pashakim/pasha-party/internal/scoring"
)

// Phase is the session's progress through one playthrough.
type Phase int

const (
	PhaseMenu        Phase = iota
	PhaseInstruction       // pre-stage instruction card
	PhasePlaying           // mini-game accepting input
	PhaseResult            // per-stage result card
	PhaseGameOver          // out of lives
	PhaseComplete          // all 30 stages cleared
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseInstruction:
		return "instruction"
	case PhasePlaying:
		return "playing"
	case PhaseResult:
		return "result"
	case PhaseGameOver:
		return "gameover"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// MaxLives is the lives a session starts with and refills to on continue.
const MaxLives = 3

// State is the engine's view of one session. Copies of it are handed to
// observers; only the engine mutates the original.
type State struct {
	Phase                Phase
	Lives                int
	Score                int
	CurrentStage         int
	CurrentDifficulty    difficulty.Level
	IsHardMode           bool
	HardModeCleared      int
	MaxDifficultyReached difficulty.Level
	ContinueUsed         bool
	PlayTime             int // elapsed seconds
}

func initialState() State {
	return State{
		Phase:                PhaseMenu,
		Lives:                MaxLives,
		CurrentStage:         0,
		CurrentDifficulty:    difficulty.MinLevel,
		MaxDifficultyReached: difficulty.MinLevel,
	}
}

// Engine drives the session state machine. It is not safe for concurrent
// use; the platform calls it from a single event loop.
type Engine struct {
	rng    *rand.Rand
	roller *difficulty.Roller
	clock  func() time.Time

	state   State
	queue   Queue
	history []core.StageResult
	cont    Continue
	started time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the wall clock, for tests.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// NewEngine creates an engine seeded by the given RNG. The RNG drives both
// the queue shuffle and hard-mode rolls, so a fixed seed replays a session.
func NewEngine(rng *rand.Rand, opts ...Option) *Engine {
	e := &Engine{
		rng:    rng,
		roller: difficulty.NewRoller(rng),
		clock:  time.Now,
		state:  initialState(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// InitGame resets the session: fresh state, a newly shuffled queue over the
// given descriptors, a reset continue gate, phase menu. In-memory only.
func (e *Engine) InitGame(games []catalog.Descriptor) {
	e.state = initialState()
	e.queue = newQueue(games, e.rng)
	e.history = nil
	e.cont = newContinue()
	e.started = e.clock()
}

// StartGame begins the run: stage 1, full lives, zero score, and loads the
// first mini-game. No-op when the queue is empty (uninitialized or drained).
func (e *Engine) StartGame() {
	if e.queue.RemainingCount() == 0 {
		return
	}
	e.state.Phase = PhaseInstruction
	e.state.CurrentStage = 1
	e.state.Lives = MaxLives
	e.state.Score = 0
	e.NextMiniGame()
}

// NextMiniGame pulls the next descriptor, derives the stage's difficulty
// and hard-mode flag, and enters the instruction phase. When the queue is
// drained it enters the complete terminal instead.
func (e *Engine) NextMiniGame() {
	if e.queue.RemainingCount() == 0 {
		e.state.Phase = PhaseComplete
		return
	}
	if _, ok := e.queue.popNext(); !ok {
		return
	}

	e.state.CurrentDifficulty = difficulty.TierForStage(e.state.CurrentStage)
	e.state.IsHardMode = e.roller.Roll()
	if e.state.CurrentDifficulty > e.state.MaxDifficultyReached {
		e.state.MaxDifficultyReached = e.state.CurrentDifficulty
	}
	e.state.Phase = PhaseInstruction
}

// StartMiniGame moves instruction -> playing, signalling that the external
// mini-game component is accepting input. No other effect.
func (e *Engine) StartMiniGame() {
	if e.state.Phase != PhaseInstruction {
		return
	}
	e.state.Phase = PhasePlaying
}

// CompleteMiniGame folds one stage outcome into the session: history,
// score, lives and hard-mode bookkeeping, stage counter, result phase.
// Completing when no mini-game is current is a no-op.
func (e *Engine) CompleteMiniGame(result core.StageResult) {
	if _, ok := e.queue.Current(); !ok {
		return
	}

	e.history = append(e.history, result)
	e.state.Score += result.Score
	e.queue.completeCurrent()

	if result.Success {
		if e.state.IsHardMode {
			e.state.HardModeCleared++
		}
	} else if e.state.Lives > 0 {
		e.state.Lives--
	}

	// The counter may transiently exceed the stage bound here;
	// ProceedToNext converts that into the complete terminal.
	e.state.CurrentStage++
	e.state.Phase = PhaseResult
}

// ProceedToNext is the sole authority converting a finished result phase
// into the next stage, the complete terminal, or the game-over path.
func (e *Engine) ProceedToNext() {
	switch {
	case e.state.Lives <= 0:
		e.gameOver()
	case e.state.CurrentStage > difficulty.TotalStages:
		e.state.Phase = PhaseComplete
	default:
		e.NextMiniGame()
	}
}

func (e *Engine) gameOver() {
	e.state.Phase = PhaseGameOver
	if e.CanContinue() {
		e.cont.Start()
	}
}

// CanContinue reports whether a life-refill continue is still on offer.
func (e *Engine) CanContinue() bool {
	return e.cont.Available() && !e.state.ContinueUsed
}

// UseContinue consumes the one continue of the session: marks it used,
// refills lives, cancels the countdown and re-enters the instruction
// phase with the next mini-game loaded. Returns false with no state change
// when the offer is gone.
func (e *Engine) UseContinue() bool {
	if !e.CanContinue() {
		return false
	}
	if !e.cont.Use() {
		return false
	}
	e.state.ContinueUsed = true
	e.state.Lives = MaxLives
	e.state.Phase = PhaseInstruction
	e.NextMiniGame()
	return true
}

// DeclineContinue cancels an active countdown; the session stays in its
// game-over terminal. Safe to call after expiry.
func (e *Engine) DeclineContinue() {
	e.cont.Decline()
}

// TickContinue advances the continue countdown by one second. The platform
// calls it on its one-second timer while the countdown is active. Returns
// true on the tick that expires the offer.
func (e *Engine) TickContinue() bool {
	return e.cont.Tick()
}

// UpdatePlayTime refreshes the elapsed-seconds counter from the wall clock.
func (e *Engine) UpdatePlayTime() {
	if e.started.IsZero() {
		return
	}
	e.state.PlayTime = int(e.clock().Sub(e.started).Seconds())
}

// FinalScore folds the difficulty and hard-mode bonuses into the
// accumulated score.
func (e *Engine) FinalScore() int {
	return scoring.FinalScore(e.state.Score, e.state.MaxDifficultyReached, e.state.HardModeCleared)
}

// State returns a copy of the session state.
func (e *Engine) State() State { return e.state }

// Queue returns read access to the session's worklist.
func (e *Engine) Queue() *Queue { return &e.queue }

// History returns a copy of the per-stage results in play order.
func (e *Engine) History() []core.StageResult {
	out := make([]core.StageResult, len(e.history))
	copy(out, e.history)
	return out
}

// ContinueState returns read access to the continue gate.
func (e *Engine) ContinueState() *Continue { return &e.cont }

// ClearedStages returns how many stages have been completed.
func (e *Engine) ClearedStages() int { return e.queue.CompletedCount() }

// IsActive reports whether a stage is being shown or played.
func (e *Engine) IsActive() bool {
	return e.state.Phase == PhasePlaying || e.state.Phase == PhaseInstruction
}

// Restart resets and immediately starts a new run over the same catalog.
func (e *Engine) Restart(games []catalog.Descriptor) {
	e.InitGame(games)
	e.StartGame()
}

// ReturnToMenu drops back to the menu phase without touching session tallies.
func (e *Engine) ReturnToMenu() {
	e.state.Phase = PhaseMenu
}
