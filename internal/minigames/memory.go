package minigames

import (
	"fmt"

	"github.com/pashakim/pasha-party/internal/core"
)

// memoryShowTicksPerItem controls how long each arrow flashes during the
// show phase, before speed scaling.
const memoryShowTicksPerItem = 20

// Memory is the recall archetype: a sequence of arrows flashes one by one,
// then the player repeats it. Each solved sequence scores and grows by
// one. Backs Find Pair, Memory Sequence, Pattern Copy and Hidden Object.
type Memory struct {
	stage

	sequence []core.Action
	showing  bool
	showIdx  int // which item is being flashed
	showTick int // ticks left on the current flash
	inputIdx int // next expected input position
	solved   int
	wrong    int
	inputs   int
	correct  int
}

// NewMemory creates a memory engine.
func NewMemory() *Memory { return &Memory{} }

func init() {
	Register("memory", func() Engine { return NewMemory() })
}

// Archetype returns "memory".
func (g *Memory) Archetype() string { return "memory" }

var memoryArrows = []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

// Reset initializes the stage. Complexity sets the starting sequence
// length; speed shortens the flashes.
func (g *Memory) Reset(p core.StageParams) {
	g.reset(p)
	g.solved = 0
	g.wrong = 0
	g.inputs = 0
	g.correct = 0
	g.newSequence(scaled(3, p.Complexity))
}

func (g *Memory) newSequence(length int) {
	g.sequence = make([]core.Action, length)
	for i := range g.sequence {
		g.sequence[i] = memoryArrows[g.rng.Intn(len(memoryArrows))]
	}
	g.showing = true
	g.showIdx = 0
	g.showTick = g.flashTicks()
	g.inputIdx = 0
}

func (g *Memory) flashTicks() int {
	return scaled(memoryShowTicksPerItem, 1/g.params.Speed)
}

// arrowInput extracts the first arrow action from the frame.
func arrowInput(in core.InputFrame) (core.Action, bool) {
	for _, a := range memoryArrows {
		if in.Has(a) {
			return a, true
		}
	}
	return core.ActionNone, false
}

// Step advances one tick.
func (g *Memory) Step(in core.InputFrame) {
	if g.finished {
		return
	}

	if g.showing {
		g.showTick--
		if g.showTick <= 0 {
			g.showIdx++
			if g.showIdx >= len(g.sequence) {
				g.showing = false
			} else {
				g.showTick = g.flashTicks()
			}
		}
	} else if arrow, ok := arrowInput(in); ok {
		g.inputs++
		if arrow == g.sequence[g.inputIdx] {
			g.correct++
			g.inputIdx++
			if g.inputIdx >= len(g.sequence) {
				g.solved++
				g.score += len(g.sequence) * 10
				g.newSequence(len(g.sequence) + 1)
			}
		} else {
			// One mistake restarts the same sequence from its start.
			g.wrong++
			g.attempts++
			g.inputIdx = 0
		}
	}

	if g.tick() {
		res := g.baseResult()
		res.Count = g.solved
		if g.inputs > 0 {
			res.Accuracy = float64(g.correct) / float64(g.inputs) * 100
		}
		res.Perfect = g.wrong == 0 && res.Success
		g.finish(res)
	}
}

func arrowGlyph(a core.Action) rune {
	switch a {
	case core.ActionUp:
		return '↑'
	case core.ActionDown:
		return '↓'
	case core.ActionLeft:
		return '←'
	case core.ActionRight:
		return '→'
	default:
		return '?'
	}
}

// Render draws either the flashing sequence or the recall prompt.
func (g *Memory) Render(dst *core.Screen) {
	hud := fmt.Sprintf(" Solved: %d  Score: %d/%d  Time: %.1fs",
		g.solved, g.score, g.params.TargetScore, g.secondsLeft())
	dst.DrawText(0, 0, hud)

	mid := dst.Height() / 2
	if g.showing {
		dst.DrawCenteredText(mid-2, fmt.Sprintf("memorize  (%d/%d)", g.showIdx+1, len(g.sequence)))
		dst.DrawCenteredText(mid, string(arrowGlyph(g.sequence[g.showIdx])))
	} else {
		dst.DrawCenteredText(mid-2, "repeat the sequence")
		done := make([]rune, 0, len(g.sequence))
		for i := 0; i < len(g.sequence); i++ {
			if i < g.inputIdx {
				done = append(done, arrowGlyph(g.sequence[i]), ' ')
			} else {
				done = append(done, '·', ' ')
			}
		}
		dst.DrawCenteredText(mid, string(done))
		dst.DrawCenteredText(dst.Height()-2, "[arrows] repeat what you saw")
	}
}

// Finished reports the stage outcome.
func (g *Memory) Finished() (core.StageResult, bool) {
	return g.result, g.finished
}

// Progress exposes HUD numbers.
func (g *Memory) Progress() (int, float64) {
	return g.score, g.secondsLeft()
}
