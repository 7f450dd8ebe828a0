package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pashakim/pasha-party/internal/storage"
)

// RankingsKeyMap defines the key bindings for the rankings screen.
type RankingsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RankingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RankingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultRankingsKeyMap returns default key bindings.
func DefaultRankingsKeyMap() RankingsKeyMap {
	return RankingsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RankingsModel is the Bubble Tea model for the local leaderboard screen.
type RankingsModel struct {
	store     *storage.Store
	entries   []storage.RankingEntry
	table     table.Model
	help      help.Model
	keys      RankingsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewRankingsModel creates a new rankings model.
func NewRankingsModel(store *storage.Store, width, height int) RankingsModel {
	keys := DefaultRankingsKeyMap()
	h := help.New()
	h.ShowAll = false

	m := RankingsModel{
		store:  store,
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadEntries()
	return m
}

// createTable creates the leaderboard table.
func (m *RankingsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 10},
		{Title: "Stage", Width: 7},
		{Title: "Date", Width: 14},
	}

	height := m.height - 8
	if height < 4 {
		height = 4
	}
	if height > storage.RankingSize+1 {
		height = storage.RankingSize + 1
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadEntries loads the leaderboard and fills the table.
func (m *RankingsModel) loadEntries() {
	if m.store == nil {
		m.entries = nil
	} else if entries, err := m.store.Rankings(); err == nil {
		m.entries = entries
	} else {
		m.entries = nil
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", e.Rank),
			e.Player,
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d/30", e.Stage),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the rankings model.
func (m RankingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the rankings screen.
func (m RankingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadEntries()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the rankings screen.
func (m RankingsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerLine(titleStyle.Render("LOCAL RANKINGS"), m.width))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(centerLine(emptyStyle.Render("No sessions recorded yet.\nFinish a run to get on the board!"), m.width))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(centerLine(tableStyle.Render(m.table.View()), m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if the user wants to go back to the menu.
func (m RankingsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m RankingsModel) IsQuitting() bool {
	return m.quitting
}

// RunRankings runs the rankings screen standalone (for the CLI command).
// Returns true if the user backed out rather than quitting.
func RunRankings(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewRankingsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RankingsModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
