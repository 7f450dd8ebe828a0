package minigames

import (
	"fmt"

	"github.com/pashakim/pasha-party/internal/core"
)

// quizPoints is the score for a correct answer.
const quizPoints = 20

// Quiz is the pick-the-answer archetype: a question with three options,
// answered with 1/2/3 or left/down/right. Difficulty widens the operand
// range. Backs Color Match, Number Match, Color Word, Quick Math, Slide
// Puzzle, Rotate Object, Size Match and Sort It.
type Quiz struct {
	stage

	question  string
	options   [3]int
	correct   int // index into options
	answered  int
	right     int
	streak    int
}

// NewQuiz creates a quiz engine.
func NewQuiz() *Quiz { return &Quiz{} }

func init() {
	Register("quiz", func() Engine { return NewQuiz() })
}

// Archetype returns "quiz".
func (g *Quiz) Archetype() string { return "quiz" }

// Reset initializes the stage.
func (g *Quiz) Reset(p core.StageParams) {
	g.reset(p)
	g.answered = 0
	g.right = 0
	g.streak = 0
	g.nextQuestion()
}

// nextQuestion builds an arithmetic question with two wrong options close
// to the right answer. Complexity widens the operand range.
func (g *Quiz) nextQuestion() {
	limit := scaled(10, g.params.Complexity)
	a := 1 + g.rng.Intn(limit)
	b := 1 + g.rng.Intn(limit)

	var answer int
	switch g.rng.Intn(3) {
	case 0:
		g.question = fmt.Sprintf("%d + %d = ?", a, b)
		answer = a + b
	case 1:
		if a < b {
			a, b = b, a
		}
		g.question = fmt.Sprintf("%d - %d = ?", a, b)
		answer = a - b
	default:
		g.question = fmt.Sprintf("%d × %d = ?", a, b)
		answer = a * b
	}

	g.correct = g.rng.Intn(3)
	used := map[int]bool{answer: true}
	for i := range g.options {
		if i == g.correct {
			g.options[i] = answer
			continue
		}
		// A nearby decoy, distinct from existing options.
		for {
			decoy := answer + 1 + g.rng.Intn(5)
			if g.rng.Intn(2) == 0 && answer-1-g.rng.Intn(5) >= 0 {
				decoy = answer - 1 - g.rng.Intn(5)
			}
			if !used[decoy] {
				used[decoy] = true
				g.options[i] = decoy
				break
			}
		}
	}
}

// pickedOption maps this tick's input to an option index, or -1.
func pickedOption(in core.InputFrame) int {
	for _, r := range in.Runes {
		switch r {
		case '1':
			return 0
		case '2':
			return 1
		case '3':
			return 2
		}
	}
	switch {
	case in.Has(core.ActionLeft):
		return 0
	case in.Has(core.ActionDown):
		return 1
	case in.Has(core.ActionRight):
		return 2
	}
	return -1
}

// Step advances one tick.
func (g *Quiz) Step(in core.InputFrame) {
	if g.finished {
		return
	}

	if pick := pickedOption(in); pick >= 0 {
		g.answered++
		if pick == g.correct {
			g.right++
			g.streak++
			g.score += quizPoints
		} else {
			g.streak = 0
			g.attempts++
		}
		g.nextQuestion()
	}

	if g.tick() {
		res := g.baseResult()
		res.Count = g.right
		if g.answered > 0 {
			res.Accuracy = float64(g.right) / float64(g.answered) * 100
		}
		res.Perfect = g.answered > 0 && g.right == g.answered && res.Success
		g.finish(res)
	}
}

// Render draws the question and options.
func (g *Quiz) Render(dst *core.Screen) {
	hud := fmt.Sprintf(" Correct: %d/%d  Score: %d/%d  Time: %.1fs",
		g.right, g.answered, g.score, g.params.TargetScore, g.secondsLeft())
	dst.DrawText(0, 0, hud)

	mid := dst.Height() / 2
	dst.DrawCenteredText(mid-2, g.question)
	opts := fmt.Sprintf("[1] %d    [2] %d    [3] %d", g.options[0], g.options[1], g.options[2])
	dst.DrawCenteredText(mid, opts)
	if g.streak >= 3 {
		dst.DrawCenteredText(mid+2, fmt.Sprintf("streak ×%d!", g.streak))
	}
	dst.DrawCenteredText(dst.Height()-2, "[1/2/3] answer")
}

// Finished reports the stage outcome.
func (g *Quiz) Finished() (core.StageResult, bool) {
	return g.result, g.finished
}

// Progress exposes HUD numbers.
func (g *Quiz) Progress() (int, float64) {
	return g.score, g.secondsLeft()
}
