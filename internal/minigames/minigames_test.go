package minigames

import (
	"testing"

	"github.com/pashakim/pasha-party/internal/catalog"
	"github.com/pashakim/pasha-party/internal/core"
)

func testParams(seed int64) core.StageParams {
	return core.StageParams{
		Difficulty:  1,
		TimeLimit:   10,
		TargetScore: 100,
		Speed:       1.0,
		Complexity:  1.0,
		Seed:        seed,
		TickRate:    30,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestRegistryCoversCatalog(t *testing.T) {
	cat := catalog.Default()
	for _, d := range cat.Games {
		if !Exists(d.Archetype) {
			t.Errorf("game %d (%s): archetype %q not registered", d.ID, d.Name, d.Archetype)
		}
	}
}

func TestRegistryList(t *testing.T) {
	want := []string{"collect", "dodge", "memory", "quiz", "reaction", "tap"}
	got := List()
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i, name := range want {
		if got[i] != name {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], name)
		}
	}
}

func TestCreateUnknownArchetype(t *testing.T) {
	if _, err := Create("flappy"); err == nil {
		t.Error("Create with unknown archetype should fail")
	}
}

func TestCreateReturnsFreshInstances(t *testing.T) {
	a, err := Create("tap")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	b, _ := Create("tap")
	if a == b {
		t.Error("Create should return a new instance per call")
	}
	if a.Archetype() != "tap" {
		t.Errorf("Archetype() = %q, want tap", a.Archetype())
	}
}

func TestTapScoring(t *testing.T) {
	g := NewTap()
	g.Reset(testParams(42))

	// Tap exactly when the target is visible; every tap should land.
	for !g.finished {
		in := core.NewInputFrame()
		if g.visible {
			in.Set(core.ActionTap)
		}
		g.Step(in)
	}

	res, done := g.Finished()
	if !done {
		t.Fatal("stage should be finished")
	}
	if res.Count == 0 {
		t.Error("tapping visible targets should register hits")
	}
	if res.Score != res.Count*tapPoints {
		t.Errorf("Score = %d, want %d hits x %d", res.Score, res.Count, tapPoints)
	}
	if res.Attempts != 0 {
		t.Errorf("Attempts = %d, want 0 when every tap lands", res.Attempts)
	}
}

func TestTapMissesCountAttempts(t *testing.T) {
	g := NewTap()
	g.Reset(testParams(42))

	// First tick: target starts hidden, so a tap is a miss.
	if g.visible {
		t.Fatal("target should start hidden")
	}
	g.Step(frame(core.ActionTap))
	if g.misses != 1 || g.attempts != 1 {
		t.Errorf("misses=%d attempts=%d, want 1/1", g.misses, g.attempts)
	}
	if g.score != 0 {
		t.Errorf("score = %d, want 0 after a miss", g.score)
	}
}

func TestQuizCorrectAnswer(t *testing.T) {
	g := NewQuiz()
	g.Reset(testParams(7))

	in := core.NewInputFrame()
	in.AddRune(rune('1' + g.correct))
	g.Step(in)

	if g.right != 1 || g.answered != 1 {
		t.Errorf("right=%d answered=%d, want 1/1", g.right, g.answered)
	}
	if g.score != quizPoints {
		t.Errorf("score = %d, want %d", g.score, quizPoints)
	}
}

func TestQuizWrongAnswer(t *testing.T) {
	g := NewQuiz()
	g.Reset(testParams(7))

	wrong := (g.correct + 1) % 3
	in := core.NewInputFrame()
	in.AddRune(rune('1' + wrong))
	g.Step(in)

	if g.right != 0 || g.answered != 1 {
		t.Errorf("right=%d answered=%d, want 0/1", g.right, g.answered)
	}
	if g.attempts != 1 {
		t.Errorf("attempts = %d, want 1", g.attempts)
	}
	if g.streak != 0 {
		t.Errorf("streak = %d, want reset to 0", g.streak)
	}
}

func TestQuizOptionsContainAnswer(t *testing.T) {
	g := NewQuiz()
	for seed := int64(0); seed < 20; seed++ {
		g.Reset(testParams(seed))
		seen := map[int]bool{}
		for _, o := range g.options {
			if seen[o] {
				t.Fatalf("seed %d: duplicate option %d in %v", seed, o, g.options)
			}
			seen[o] = true
		}
	}
}

func TestReactionEarlyTap(t *testing.T) {
	g := NewReaction()
	g.Reset(testParams(3))

	if g.armed {
		t.Fatal("signal should start disarmed")
	}
	g.Step(frame(core.ActionTap))
	if g.earlyTaps != 1 || g.attempts != 1 {
		t.Errorf("earlyTaps=%d attempts=%d, want 1/1", g.earlyTaps, g.attempts)
	}
	if g.score != 0 {
		t.Errorf("score = %d, want 0 after jumping the gun", g.score)
	}
}

func TestReactionFastTapScoresHigh(t *testing.T) {
	g := NewReaction()
	g.Reset(testParams(3))

	// Wait out the arming delay, then tap on the first armed tick.
	for !g.armed {
		g.Step(core.NewInputFrame())
	}
	g.Step(frame(core.ActionTap))

	if g.rounds != 1 {
		t.Fatalf("rounds = %d, want 1", g.rounds)
	}
	if g.score != 48 {
		t.Errorf("score = %d, want 48 for a one-tick reaction", g.score)
	}
}

func TestMemorySolveGrowsSequence(t *testing.T) {
	g := NewMemory()
	g.Reset(testParams(5))
	startLen := len(g.sequence)

	// Sit through the show phase, then replay the sequence we can read.
	for g.showing {
		g.Step(core.NewInputFrame())
	}
	want := append([]core.Action(nil), g.sequence...)
	for _, a := range want {
		g.Step(frame(a))
	}

	if g.solved != 1 {
		t.Fatalf("solved = %d, want 1", g.solved)
	}
	if g.score != startLen*10 {
		t.Errorf("score = %d, want %d", g.score, startLen*10)
	}
	if len(g.sequence) != startLen+1 {
		t.Errorf("next sequence length = %d, want %d", len(g.sequence), startLen+1)
	}
	if !g.showing {
		t.Error("a solve should flip back to the show phase")
	}
}

func TestMemoryMistakeRestartsSequence(t *testing.T) {
	g := NewMemory()
	g.Reset(testParams(5))
	for g.showing {
		g.Step(core.NewInputFrame())
	}

	// Answer deliberately wrong on the first item.
	wrong := core.ActionUp
	if g.sequence[0] == core.ActionUp {
		wrong = core.ActionDown
	}
	g.Step(frame(wrong))

	if g.wrong != 1 || g.inputIdx != 0 {
		t.Errorf("wrong=%d inputIdx=%d, want 1/0", g.wrong, g.inputIdx)
	}
	if g.solved != 0 {
		t.Errorf("solved = %d, want 0", g.solved)
	}
}

func TestCollectCatching(t *testing.T) {
	g := NewCollect()
	g.Reset(testParams(11))

	// Chase every item: move toward the lowest item's lane each tick.
	for !g.finished {
		in := core.NewInputFrame()
		if len(g.items) > 0 {
			lowest := g.items[0]
			for _, o := range g.items {
				if o.row > lowest.row {
					lowest = o
				}
			}
			if lowest.lane < g.playerLane {
				in.Set(core.ActionLeft)
			} else if lowest.lane > g.playerLane {
				in.Set(core.ActionRight)
			}
		}
		g.Step(in)
	}

	res, _ := g.Finished()
	if res.Count == 0 {
		t.Error("chasing items should catch at least one")
	}
	if res.Score != res.Count*collectPoints {
		t.Errorf("Score = %d, want %d caught x %d", res.Score, res.Count, collectPoints)
	}
}

func TestDodgeSurvival(t *testing.T) {
	g := NewDodge()
	g.Reset(testParams(11))

	// Run away from the lowest obstacle each tick.
	for !g.finished {
		in := core.NewInputFrame()
		if len(g.objects) > 0 {
			lowest := g.objects[0]
			for _, o := range g.objects {
				if o.row > lowest.row {
					lowest = o
				}
			}
			if lowest.lane == g.playerLane {
				if g.playerLane > 0 {
					in.Set(core.ActionLeft)
				} else {
					in.Set(core.ActionRight)
				}
			}
		}
		g.Step(in)
	}

	res, _ := g.Finished()
	if res.Count == 0 {
		t.Error("dodging should survive at least one obstacle")
	}
	if res.Attempts != 0 {
		t.Errorf("Attempts = %d, want 0 hits while actively dodging", res.Attempts)
	}
}

func TestFinishedIsOneShot(t *testing.T) {
	g := NewTap()
	p := testParams(1)
	p.TimeLimit = 0.2
	g.Reset(p)

	for i := 0; i < 100; i++ {
		g.Step(core.NewInputFrame())
	}
	first, done := g.Finished()
	if !done {
		t.Fatal("stage should be finished after the time limit")
	}

	// Further steps must not mutate the sealed result.
	g.Step(frame(core.ActionTap))
	second, _ := g.Finished()
	if first != second {
		t.Errorf("result changed after finish: %+v vs %+v", first, second)
	}
}

func TestDeterministicUnderSeed(t *testing.T) {
	run := func() core.StageResult {
		g := NewTap()
		p := testParams(99)
		p.TimeLimit = 3
		g.Reset(p)
		tick := 0
		for !g.finished {
			in := core.NewInputFrame()
			if tick%7 == 0 {
				in.Set(core.ActionTap)
			}
			g.Step(in)
			tick++
		}
		res, _ := g.Finished()
		return res
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("same seed and input should replay identically: %+v vs %+v", a, b)
	}
}

func TestSpeedShrinksTapWindow(t *testing.T) {
	slow := NewTap()
	slow.Reset(testParams(1))

	fast := NewTap()
	p := testParams(1)
	p.Speed = 2.0
	fast.Reset(p)

	if fast.windowTicks >= slow.windowTicks {
		t.Errorf("higher speed should shrink the window: fast=%d slow=%d",
			fast.windowTicks, slow.windowTicks)
	}
}

func TestRenderDoesNotPanic(t *testing.T) {
	scr := core.NewScreen(80, 24)
	for _, name := range List() {
		g, err := Create(name)
		if err != nil {
			t.Fatalf("Create(%s): %v", name, err)
		}
		g.Reset(testParams(5))
		for i := 0; i < 10; i++ {
			g.Step(core.NewInputFrame())
		}
		scr.Clear()
		g.Render(scr)
	}
}
