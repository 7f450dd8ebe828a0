package minigames

import (
	"fmt"

	"github.com/pashakim/pasha-party/internal/core"
)

// collectPoints is the score per caught item.
const collectPoints = 10

// Collect is the pickup archetype: items fall down random lanes and the
// player moves under them to catch. Missed items count against a perfect
// run. Backs Catch Ball, Coin Collector, Star Gather and Draw Line.
type Collect struct {
	stage

	fieldH     int
	playerLane int
	items      []laneObject
	spawnTick  int
	spawnGap   int
	fallEvery  int
	fallTick   int
	caught     int
	missed     int
}

// NewCollect creates a collect engine.
func NewCollect() *Collect { return &Collect{} }

func init() {
	Register("collect", func() Engine { return NewCollect() })
}

// Archetype returns "collect".
func (g *Collect) Archetype() string { return "collect" }

// Reset initializes the stage.
func (g *Collect) Reset(p core.StageParams) {
	g.reset(p)
	g.fieldH = 12
	g.playerLane = laneCount / 2
	g.items = nil
	g.caught = 0
	g.missed = 0
	g.fallEvery = scaled(g.tickRate/6, 1/p.Speed)
	g.fallTick = g.fallEvery
	g.spawnGap = scaled(g.tickRate, 1/p.Complexity)
	g.spawnTick = g.spawnGap
}

// Step advances one tick.
func (g *Collect) Step(in core.InputFrame) {
	if g.finished {
		return
	}

	if in.Has(core.ActionLeft) && g.playerLane > 0 {
		g.playerLane--
	}
	if in.Has(core.ActionRight) && g.playerLane < laneCount-1 {
		g.playerLane++
	}

	g.spawnTick--
	if g.spawnTick <= 0 {
		g.items = append(g.items, laneObject{lane: g.rng.Intn(laneCount)})
		g.spawnTick = g.spawnGap
	}

	g.fallTick--
	if g.fallTick <= 0 {
		g.fallTick = g.fallEvery
		kept := g.items[:0]
		for _, o := range g.items {
			o.row++
			if o.row >= g.fieldH {
				if o.lane == g.playerLane {
					g.caught++
					g.score += collectPoints
				} else {
					g.missed++
					g.attempts++
				}
				continue
			}
			kept = append(kept, o)
		}
		g.items = kept
	}

	if g.tick() {
		res := g.baseResult()
		res.Count = g.caught
		res.Perfect = g.missed == 0 && res.Success
		g.finish(res)
	}
}

// Render draws the lanes, falling items and basket.
func (g *Collect) Render(dst *core.Screen) {
	hud := fmt.Sprintf(" Caught: %d  Missed: %d  Score: %d/%d  Time: %.1fs",
		g.caught, g.missed, g.score, g.params.TargetScore, g.secondsLeft())
	dst.DrawText(0, 0, hud)

	laneW := 4
	offX := (dst.Width() - laneCount*laneW) / 2
	offY := 2
	for y := 0; y <= g.fieldH; y++ {
		dst.Set(offX-1, offY+y, '│')
		dst.Set(offX+laneCount*laneW, offY+y, '│')
	}
	for _, o := range g.items {
		dst.Set(offX+o.lane*laneW+laneW/2, offY+o.row, '●')
	}
	dst.Set(offX+g.playerLane*laneW+laneW/2, offY+g.fieldH, '⊔')
	dst.DrawCenteredText(offY+g.fieldH+2, "[←/→] catch the falling items")
}

// Finished reports the stage outcome.
func (g *Collect) Finished() (core.StageResult, bool) {
	return g.result, g.finished
}

// Progress exposes HUD numbers.
func (g *Collect) Progress() (int, float64) {
	return g.score, g.secondsLeft()
}
