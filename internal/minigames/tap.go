package minigames

import (
	"fmt"

	"github.com/pashakim/pasha-party/internal/core"
)

// tapPoints is the score for tapping a live target.
const tapPoints = 10

// Tap is the mash archetype: a target pops up at a random position, stays
// visible for a speed-scaled window, and a tap while it shows scores.
// Taps with no target up count as misses. Backs Balloon Pop, Fruit Slice,
// Whack-a-Mole, Speed Click and Quick Shoot.
type Tap struct {
	stage

	visible      bool
	windowTicks  int // ticks the target stays up
	gapTicks     int // ticks between targets
	phaseTicks   int // countdown within the current window/gap
	targetX      int
	targetY      int
	hits         int
	misses       int
	fieldW       int
	fieldH       int
}

// NewTap creates a tap engine.
func NewTap() *Tap { return &Tap{} }

func init() {
	Register("tap", func() Engine { return NewTap() })
}

// Archetype returns "tap".
func (g *Tap) Archetype() string { return "tap" }

// Reset initializes the stage.
func (g *Tap) Reset(p core.StageParams) {
	g.reset(p)
	g.hits = 0
	g.misses = 0
	g.fieldW = 40
	g.fieldH = 10

	// Higher speed shrinks the visibility window; complexity shrinks the
	// gap so targets come faster.
	g.windowTicks = scaled(g.tickRate, 1/p.Speed)
	g.gapTicks = scaled(g.tickRate/2, 1/p.Complexity)

	g.visible = false
	g.phaseTicks = g.gapTicks
	g.place()
}

func (g *Tap) place() {
	g.targetX = 2 + g.rng.Intn(g.fieldW-4)
	g.targetY = 1 + g.rng.Intn(g.fieldH-2)
}

// Step advances one tick.
func (g *Tap) Step(in core.InputFrame) {
	if g.finished {
		return
	}

	if in.Has(core.ActionTap) {
		if g.visible {
			g.hits++
			g.score += tapPoints
			g.visible = false
			g.phaseTicks = g.gapTicks
			g.place()
		} else {
			g.misses++
			g.attempts++
		}
	}

	g.phaseTicks--
	if g.phaseTicks <= 0 {
		if g.visible {
			// Window elapsed unhit; target escapes.
			g.visible = false
			g.phaseTicks = g.gapTicks
			g.place()
		} else {
			g.visible = true
			g.phaseTicks = g.windowTicks
		}
	}

	if g.tick() {
		res := g.baseResult()
		res.Count = g.hits
		res.Perfect = g.misses == 0 && res.Success
		g.finish(res)
	}
}

// Render draws the field and the live target.
func (g *Tap) Render(dst *core.Screen) {
	hud := fmt.Sprintf(" Hits: %d  Score: %d/%d  Time: %.1fs",
		g.hits, g.score, g.params.TargetScore, g.secondsLeft())
	dst.DrawText(0, 0, hud)

	offX := (dst.Width() - g.fieldW) / 2
	offY := 2
	for x := 0; x < g.fieldW; x++ {
		dst.Set(offX+x, offY, '─')
		dst.Set(offX+x, offY+g.fieldH, '─')
	}
	for y := 0; y <= g.fieldH; y++ {
		dst.Set(offX-1, offY+y, '│')
		dst.Set(offX+g.fieldW, offY+y, '│')
	}

	if g.visible {
		dst.Set(offX+g.targetX, offY+g.targetY, '◎')
	}
	dst.DrawCenteredText(offY+g.fieldH+2, "[space] tap when the target shows")
}

// Finished reports the stage outcome.
func (g *Tap) Finished() (core.StageResult, bool) {
	return g.result, g.finished
}

// Progress exposes HUD numbers.
func (g *Tap) Progress() (int, float64) {
	return g.score, g.secondsLeft()
}
