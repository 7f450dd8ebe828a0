package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pashakim/pasha-party/internal/catalog"
	"github.com/pashakim/pasha-party/internal/config"
	"github.com/pashakim/pasha-party/internal/core"
	"github.com/pashakim/pasha-party/internal/difficulty"
	"github.com/pashakim/pasha-party/internal/minigames"
	"github.com/pashakim/pasha-party/internal/scoring"
	"github.com/pashakim/pasha-party/internal/session"
	"github.com/pashakim/pasha-party/internal/storage"
)

// Options configures a terminal session.
type Options struct {
	Width  int
	Height int
	FPS    int
	Seed   int64
	Player string
}

// SessionModel is the top-level Bubble Tea model driving one party-game
// session: menu, instruction cards, stage play, results, the continue
// countdown and the final breakdown.
type SessionModel struct {
	opts     Options
	engine   *session.Engine
	cat      *catalog.Catalog
	store    *storage.Store
	settings *config.SettingsService
	km       *KeyMapper
	screen   *core.Screen
	frame    core.InputFrame
	stageRng *rand.Rand

	game   minigames.Engine
	desc   catalog.Descriptor
	params core.StageParams

	highScore int
	savedRank int
	finalized bool
	stageErr  error

	rankings     RankingsModel
	showRankings bool

	quitting bool
}

// NewSessionModel creates a session model over the given catalog and store.
func NewSessionModel(cat *catalog.Catalog, store *storage.Store, settings *config.SettingsService, opts Options) SessionModel {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}
	if opts.Player == "" && store != nil {
		if name, err := store.PlayerName(); err == nil {
			opts.Player = name
		}
	}
	if settings == nil {
		settings = config.NewSettingsService(store)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	m := SessionModel{
		opts:     opts,
		engine:   session.NewEngine(rng),
		cat:      cat,
		store:    store,
		settings: settings,
		km:       NewKeyMapper(),
		screen:   core.NewScreen(opts.Width, opts.Height),
		frame:    core.NewInputFrame(),
		stageRng: rand.New(rand.NewSource(opts.Seed + 1)),
	}
	m.loadHighScore()
	return m
}

func (m *SessionModel) loadHighScore() {
	if m.store == nil {
		return
	}
	if high, err := m.store.HighScore(); err == nil {
		m.highScore = high
	}
}

// Init initializes the model. The menu is static; ticking starts with play.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
		m.screen.Resize(wsm.Width, wsm.Height)
	}

	if m.showRankings {
		return m.updateRankings(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.handleTick()
	case CountdownMsg:
		return m.handleCountdown()
	}
	return m, nil
}

func (m SessionModel) updateRankings(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.rankings.Update(msg)
	if rm, ok := newModel.(RankingsModel); ok {
		m.rankings = rm
	}
	if m.rankings.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.rankings.IsGoingBack() {
		// Swallow the sub-model's quit; only the rankings view closes.
		m.showRankings = false
		return m, nil
	}
	return m, cmd
}

// handleKey dispatches keyboard input by session phase.
func (m SessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.engine.State().Phase {
	case session.PhaseMenu:
		return m.handleMenuKey(key)
	case session.PhaseInstruction:
		if key == "enter" || key == " " {
			m.engine.StartMiniGame()
			return m, tickCmd(m.opts.FPS)
		}
		if key == "esc" {
			m.engine.ReturnToMenu()
			m.game = nil
		}
	case session.PhasePlaying:
		if key == "esc" {
			m.engine.ReturnToMenu()
			m.game = nil
			return m, nil
		}
		if m.km.MapKeyToFrame(msg, &m.frame) {
			m.quitting = true
			return m, tea.Quit
		}
	case session.PhaseResult:
		if key == "enter" || key == " " {
			return m.advance()
		}
	case session.PhaseGameOver:
		return m.handleGameOverKey(key)
	case session.PhaseComplete:
		return m.handleCompleteKey(key)
	}
	return m, nil
}

func (m SessionModel) handleMenuKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "enter", " ":
		return m.startRun()
	case "r":
		m.rankings = NewRankingsModel(m.store, m.opts.Width, m.opts.Height)
		m.showRankings = true
		return m, m.rankings.Init()
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SessionModel) handleGameOverKey(key string) (tea.Model, tea.Cmd) {
	cont := m.engine.ContinueState()
	if cont.Active() {
		switch key {
		case "c", "enter", " ":
			if m.engine.UseContinue() {
				return m.enterStage()
			}
		case "d", "esc":
			m.engine.DeclineContinue()
			m.finalize()
		}
		return m, nil
	}

	switch key {
	case "enter", "m", "esc":
		m.engine.ReturnToMenu()
		m.game = nil
	case "r":
		return m.startRun()
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SessionModel) handleCompleteKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "enter", "m", "esc":
		m.engine.ReturnToMenu()
		m.game = nil
	case "r":
		return m.startRun()
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// startRun begins a fresh session over the full catalog.
func (m SessionModel) startRun() (tea.Model, tea.Cmd) {
	m.finalized = false
	m.savedRank = 0
	m.stageErr = nil
	m.engine.Restart(m.cat.Sorted())
	return m.enterStage()
}

// enterStage builds the engine for the freshly loaded descriptor and either
// shows its instruction card or, with tutorials off, starts play directly.
func (m SessionModel) enterStage() (tea.Model, tea.Cmd) {
	if m.engine.State().Phase != session.PhaseInstruction {
		// The queue drained into the complete terminal.
		if m.engine.State().Phase == session.PhaseComplete {
			m.finalize()
		}
		return m, nil
	}
	if err := m.prepareStage(); err != nil {
		m.stageErr = err
		m.engine.ReturnToMenu()
		return m, nil
	}
	if !m.settings.Current().ShowTutorial {
		m.engine.StartMiniGame()
		return m, tickCmd(m.opts.FPS)
	}
	return m, nil
}

// prepareStage derives the stage parameters from the session state and
// resets a mini-game engine for the current descriptor.
func (m *SessionModel) prepareStage() error {
	d, ok := m.engine.Queue().Current()
	if !ok {
		return fmt.Errorf("no current mini-game")
	}
	st := m.engine.State()
	p := core.StageParams{
		Difficulty:  int(st.CurrentDifficulty),
		TimeLimit:   scoring.TimeLimit(d.BaseTimeLimit, st.CurrentDifficulty, st.IsHardMode),
		TargetScore: scoring.TargetScore(d.BaseTarget, st.CurrentDifficulty, st.IsHardMode),
		HardMode:    st.IsHardMode,
		Speed:       scoring.Speed(st.CurrentDifficulty, st.IsHardMode),
		Complexity:  scoring.Complexity(st.CurrentDifficulty, st.IsHardMode),
		Seed:        m.stageRng.Int63(),
		TickRate:    m.opts.FPS,
	}

	game, err := minigames.Create(d.Archetype)
	if err != nil {
		return err
	}
	game.Reset(p)

	m.game = game
	m.desc = d
	m.params = p
	m.frame.Clear()
	return nil
}

// handleTick advances the running stage by one simulation step.
func (m SessionModel) handleTick() (tea.Model, tea.Cmd) {
	if m.engine.State().Phase != session.PhasePlaying || m.game == nil {
		return m, nil
	}

	m.game.Step(m.frame)
	m.frame.Clear()
	m.engine.UpdatePlayTime()

	if res, done := m.game.Finished(); done {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, play continues regardless
			m.store.RecordMiniGame(m.desc.ID, res.Score, res.Success)
		}
		m.engine.CompleteMiniGame(res)
		return m, nil
	}
	return m, tickCmd(m.opts.FPS)
}

// advance moves past the result card to the next stage, the continue
// countdown, or the final breakdown.
func (m SessionModel) advance() (tea.Model, tea.Cmd) {
	m.engine.ProceedToNext()

	switch m.engine.State().Phase {
	case session.PhaseInstruction:
		return m.enterStage()
	case session.PhaseGameOver:
		if m.engine.ContinueState().Active() {
			return m, countdownCmd()
		}
		m.finalize()
	case session.PhaseComplete:
		m.finalize()
	}
	return m, nil
}

// handleCountdown advances the continue countdown by one second.
func (m SessionModel) handleCountdown() (tea.Model, tea.Cmd) {
	cont := m.engine.ContinueState()
	if m.engine.State().Phase != session.PhaseGameOver || !cont.Active() {
		return m, nil
	}
	if m.engine.TickContinue() {
		// Expired; the run is over.
		m.finalize()
		return m, nil
	}
	return m, countdownCmd()
}

// finalize records the finished run exactly once: aggregate statistics,
// the leaderboard entry and the cached high score.
func (m *SessionModel) finalize() {
	if m.finalized {
		return
	}
	m.finalized = true
	m.engine.UpdatePlayTime()

	final := m.engine.FinalScore()
	st := m.engine.State()

	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save
	m.store.RecordSession(final, m.engine.ClearedStages(), st.PlayTime)
	if rank, err := m.store.SaveRanking(m.opts.Player, final, m.engine.ClearedStages()); err == nil {
		m.savedRank = rank
	}
	m.loadHighScore()
}

// View renders the current phase.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showRankings {
		return m.rankings.View()
	}

	switch m.engine.State().Phase {
	case session.PhaseMenu:
		return m.viewMenu()
	case session.PhaseInstruction:
		return m.viewInstruction()
	case session.PhasePlaying:
		return m.viewPlaying()
	case session.PhaseResult:
		return m.viewResult()
	case session.PhaseGameOver:
		return m.viewGameOver()
	case session.PhaseComplete:
		return m.viewComplete()
	}
	return ""
}

func (m SessionModel) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerLine(titleStyle.Render("P A S H A   P A R T Y"), m.opts.Width))
	b.WriteString("\n")
	b.WriteString(centerLine(dimStyle.Render(fmt.Sprintf("%d mini-games. %d lives. One continue.", catalog.TotalGames, session.MaxLives)), m.opts.Width))
	b.WriteString("\n\n")
	if m.highScore > 0 {
		b.WriteString(centerLine(hudStyle.Render(fmt.Sprintf("High score: %d", m.highScore)), m.opts.Width))
		b.WriteString("\n\n")
	}
	if m.stageErr != nil {
		b.WriteString(centerLine(failStyle.Render(m.stageErr.Error()), m.opts.Width))
		b.WriteString("\n\n")
	}
	b.WriteString(centerLine(dimStyle.Render("[enter] play   [r] rankings   [q] quit"), m.opts.Width))
	return b.String()
}

func (m SessionModel) viewInstruction() string {
	st := m.engine.State()
	tier := difficulty.TierInfo(st.CurrentDifficulty)

	var card strings.Builder
	card.WriteString(titleStyle.Render(fmt.Sprintf("%s  %s", m.desc.Emoji, m.desc.Name)))
	card.WriteString("\n\n")
	card.WriteString(fmt.Sprintf("Stage %d/%d   %s %s\n", st.CurrentStage, difficulty.TotalStages, tier.Name, tier.Stars))
	if st.IsHardMode {
		card.WriteString(hardModeStyle.Render("HARD MODE") + "\n")
	}
	card.WriteString("\n")
	card.WriteString(m.desc.Instruction)
	card.WriteString("\n\n")
	card.WriteString(dimStyle.Render(fmt.Sprintf("Target: %d pts   Time: %.1fs", m.params.TargetScore, m.params.TimeLimit)))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerLine(m.statusLine(), m.opts.Width))
	b.WriteString("\n\n")
	b.WriteString(centerLine(cardStyle.Render(card.String()), m.opts.Width))
	b.WriteString("\n\n")
	b.WriteString(centerLine(dimStyle.Render("[enter] start"), m.opts.Width))
	return b.String()
}

func (m SessionModel) viewPlaying() string {
	m.screen.Clear()
	if m.game != nil {
		m.game.Render(m.screen)
	}

	var b strings.Builder
	b.WriteString(centerLine(m.statusLine(), m.opts.Width))
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.screen))
	return b.String()
}

func (m SessionModel) viewResult() string {
	history := m.engine.History()
	if len(history) == 0 {
		return ""
	}
	res := history[len(history)-1]
	grade := scoring.GradeFor(res.Score, m.params.TargetScore)

	var card strings.Builder
	if res.Success {
		card.WriteString(successStyle.Render("CLEARED!"))
	} else {
		card.WriteString(failStyle.Render("FAILED"))
	}
	card.WriteString("\n\n")
	card.WriteString(fmt.Sprintf("Score: %d / %d   Grade: %s\n", res.Score, m.params.TargetScore, grade))
	if res.Perfect {
		card.WriteString(successStyle.Render("Perfect clear!") + "\n")
	}
	if res.TimeRemaining > 0 {
		card.WriteString(dimStyle.Render(fmt.Sprintf("Time left: %.1fs", res.TimeRemaining)))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerLine(m.statusLine(), m.opts.Width))
	b.WriteString("\n\n")
	b.WriteString(centerLine(cardStyle.Render(card.String()), m.opts.Width))
	b.WriteString("\n\n")
	b.WriteString(centerLine(dimStyle.Render("[enter] continue"), m.opts.Width))
	return b.String()
}

func (m SessionModel) viewGameOver() string {
	cont := m.engine.ContinueState()

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerLine(failStyle.Render("G A M E   O V E R"), m.opts.Width))
	b.WriteString("\n\n")

	if cont.Active() {
		b.WriteString(centerLine(hudStyle.Render("Continue? Refill your lives and keep going."), m.opts.Width))
		b.WriteString("\n\n")
		b.WriteString(centerLine(countdownStyle.Render(fmt.Sprintf("%d", cont.Countdown())), m.opts.Width))
		b.WriteString("\n\n")
		b.WriteString(centerLine(dimStyle.Render("[c] continue   [d] decline"), m.opts.Width))
		return b.String()
	}

	b.WriteString(m.breakdown())
	b.WriteString("\n")
	b.WriteString(centerLine(dimStyle.Render("[r] retry   [enter] menu   [q] quit"), m.opts.Width))
	return b.String()
}

func (m SessionModel) viewComplete() string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerLine(successStyle.Render("A L L   3 0   S T A G E S   C L E A R !"), m.opts.Width))
	b.WriteString("\n\n")
	b.WriteString(m.breakdown())
	b.WriteString("\n")
	b.WriteString(centerLine(dimStyle.Render("[r] play again   [enter] menu   [q] quit"), m.opts.Width))
	return b.String()
}

// breakdown renders the final score card shared by the two terminals.
func (m SessionModel) breakdown() string {
	st := m.engine.State()

	var card strings.Builder
	card.WriteString(fmt.Sprintf("Stages cleared: %d/%d\n", m.engine.ClearedStages(), difficulty.TotalStages))
	card.WriteString(fmt.Sprintf("Base score:       %6d\n", st.Score))
	card.WriteString(fmt.Sprintf("Difficulty bonus: %6d\n", scoring.DifficultyBonus(st.MaxDifficultyReached)))
	card.WriteString(fmt.Sprintf("Hard-mode bonus:  %6d\n", scoring.HardModeClearBonus(st.HardModeCleared)))
	card.WriteString(hudStyle.Render(fmt.Sprintf("Final score:      %6d", m.engine.FinalScore())))
	if m.savedRank > 0 {
		card.WriteString("\n\n")
		card.WriteString(successStyle.Render(fmt.Sprintf("Ranked #%d on the local board!", m.savedRank)))
	}
	return centerLine(cardStyle.Render(card.String()), m.opts.Width)
}

// statusLine renders the lives/stage/score HUD shared across phases.
func (m SessionModel) statusLine() string {
	st := m.engine.State()
	hearts := strings.Repeat("♥", st.Lives) + strings.Repeat("♡", session.MaxLives-st.Lives)

	line := fmt.Sprintf("%s   Stage %d/%d   Score %d",
		lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render(hearts),
		st.CurrentStage, difficulty.TotalStages, st.Score)
	if st.IsHardMode && m.engine.IsActive() {
		line += "   " + hardModeStyle.Render("HARD")
	}
	return hudStyle.Render(line)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cat *catalog.Catalog, store *storage.Store, settings *config.SettingsService, opts Options) error {
	model := NewSessionModel(cat, store, settings, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
