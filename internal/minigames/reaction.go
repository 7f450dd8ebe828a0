package minigames

import (
	"fmt"

	"github.com/pashakim/pasha-party/internal/core"
)

// Reaction is the timing archetype: rounds of a random arming delay
// followed by a GO signal; the faster the tap after the signal, the more
// points. Tapping early forfeits the round. Backs Perfect Jump, Rhythm
// Tap, Reaction Test and Ladder Climb.
type Reaction struct {
	stage

	armed      bool
	delayTicks int // ticks until the signal arms
	heldTicks  int // ticks since the signal armed
	rounds     int
	earlyTaps  int
}

// NewReaction creates a reaction engine.
func NewReaction() *Reaction { return &Reaction{} }

func init() {
	Register("reaction", func() Engine { return NewReaction() })
}

// Archetype returns "reaction".
func (g *Reaction) Archetype() string { return "reaction" }

// Reset initializes the stage.
func (g *Reaction) Reset(p core.StageParams) {
	g.reset(p)
	g.rounds = 0
	g.earlyTaps = 0
	g.arm()
}

// arm schedules the next signal after a random delay. Higher speed keeps
// the delays shorter, leaving less rhythm to settle into.
func (g *Reaction) arm() {
	g.armed = false
	g.heldTicks = 0
	minDelay := g.tickRate / 2
	spread := scaled(g.tickRate*2, 1/g.params.Speed)
	g.delayTicks = minDelay + g.rng.Intn(spread)
}

// roundPoints maps reaction ticks to points: an instant tap is worth 50,
// decaying by 2 per tick down to a floor of 10.
func (g *Reaction) roundPoints() int {
	pts := 50 - g.heldTicks*2
	if pts < 10 {
		return 10
	}
	return pts
}

// Step advances one tick.
func (g *Reaction) Step(in core.InputFrame) {
	if g.finished {
		return
	}

	tapped := in.Has(core.ActionTap)
	if g.armed {
		g.heldTicks++
		if tapped {
			g.rounds++
			g.score += g.roundPoints()
			g.arm()
		}
	} else {
		if tapped {
			// Jumped the gun; restart the delay.
			g.earlyTaps++
			g.attempts++
			g.arm()
		} else {
			g.delayTicks--
			if g.delayTicks <= 0 {
				g.armed = true
				g.heldTicks = 0
			}
		}
	}

	if g.tick() {
		res := g.baseResult()
		res.Count = g.rounds
		res.Perfect = g.earlyTaps == 0 && res.Success
		g.finish(res)
	}
}

// Render draws the signal state.
func (g *Reaction) Render(dst *core.Screen) {
	hud := fmt.Sprintf(" Rounds: %d  Score: %d/%d  Time: %.1fs",
		g.rounds, g.score, g.params.TargetScore, g.secondsLeft())
	dst.DrawText(0, 0, hud)

	mid := dst.Height() / 2
	if g.armed {
		dst.DrawCenteredText(mid-1, "████████████")
		dst.DrawCenteredText(mid, "   GO! TAP!  ")
		dst.DrawCenteredText(mid+1, "████████████")
	} else {
		dst.DrawCenteredText(mid, "... wait for it ...")
	}
	dst.DrawCenteredText(dst.Height()-2, "[space] tap on GO, early taps reset the round")
}

// Finished reports the stage outcome.
func (g *Reaction) Finished() (core.StageResult, bool) {
	return g.result, g.finished
}

// Progress exposes HUD numbers.
func (g *Reaction) Progress() (int, float64) {
	return g.score, g.secondsLeft()
}
