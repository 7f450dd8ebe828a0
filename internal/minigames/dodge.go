package minigames

import (
	"fmt"

	"github.com/pashakim/pasha-party/internal/core"
)

// laneCount is the playfield width for the lane archetypes.
const laneCount = 5

// dodgePoints is the score per obstacle that falls past without a hit.
const dodgePoints = 10

// Dodge is the survival archetype: obstacles fall down random lanes and
// the player sidesteps them. Every obstacle that misses scores; every hit
// counts against a perfect run. Backs Dodge It, Maze Escape, Jump Up,
// Speed Run and Balance It.
type Dodge struct {
	stage

	fieldH    int
	playerLane int
	objects   []laneObject
	spawnTick int
	spawnGap  int
	fallEvery int // ticks per row of fall
	fallTick  int
	survived  int
	hits      int
}

type laneObject struct {
	lane int
	row  int
}

// NewDodge creates a dodge engine.
func NewDodge() *Dodge { return &Dodge{} }

func init() {
	Register("dodge", func() Engine { return NewDodge() })
}

// Archetype returns "dodge".
func (g *Dodge) Archetype() string { return "dodge" }

// Reset initializes the stage. Speed makes objects fall faster; complexity
// spawns them closer together.
func (g *Dodge) Reset(p core.StageParams) {
	g.reset(p)
	g.fieldH = 12
	g.playerLane = laneCount / 2
	g.objects = nil
	g.survived = 0
	g.hits = 0
	g.fallEvery = scaled(g.tickRate/6, 1/p.Speed)
	g.fallTick = g.fallEvery
	g.spawnGap = scaled(g.tickRate, 1/p.Complexity)
	g.spawnTick = g.spawnGap
}

// Step advances one tick.
func (g *Dodge) Step(in core.InputFrame) {
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
		g.objects = append(g.objects, laneObject{lane: g.rng.Intn(laneCount)})
		g.spawnTick = g.spawnGap
	}

	g.fallTick--
	if g.fallTick <= 0 {
		g.fallTick = g.fallEvery
		kept := g.objects[:0]
		for _, o := range g.objects {
			o.row++
			if o.row >= g.fieldH {
				if o.lane == g.playerLane {
					g.hits++
					g.attempts++
				} else {
					g.survived++
					g.score += dodgePoints
				}
				continue
			}
			kept = append(kept, o)
		}
		g.objects = kept
	}

	if g.tick() {
		res := g.baseResult()
		res.Count = g.survived
		res.Perfect = g.hits == 0 && res.Success
		g.finish(res)
	}
}

// Render draws the lanes, obstacles and player.
func (g *Dodge) Render(dst *core.Screen) {
	hud := fmt.Sprintf(" Dodged: %d  Hits: %d  Score: %d/%d  Time: %.1fs",
		g.survived, g.hits, g.score, g.params.TargetScore, g.secondsLeft())
	dst.DrawText(0, 0, hud)

	laneW := 4
	offX := (dst.Width() - laneCount*laneW) / 2
	offY := 2
	for y := 0; y <= g.fieldH; y++ {
		dst.Set(offX-1, offY+y, '│')
		dst.Set(offX+laneCount*laneW, offY+y, '│')
	}
	for _, o := range g.objects {
		dst.Set(offX+o.lane*laneW+laneW/2, offY+o.row, '▼')
	}
	dst.Set(offX+g.playerLane*laneW+laneW/2, offY+g.fieldH, '△')
	dst.DrawCenteredText(offY+g.fieldH+2, "[←/→] sidestep the falling blocks")
}

// Finished reports the stage outcome.
func (g *Dodge) Finished() (core.StageResult, bool) {
	return g.result, g.finished
}

// Progress exposes HUD numbers.
func (g *Dodge) Progress() (int, float64) {
	return g.score, g.secondsLeft()
}
