package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tiehuis/tetrs/internal/storage"
)

// maxScores is the most results the scoreboard loads at once.
const maxScores = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Refresh, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for browsing stored results.
type ScoreboardModel struct {
	store    *storage.Store
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	totals   storage.Totals
	err      error
	quitting bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store: store,
		keys:  DefaultScoreboardKeyMap(),
		help:  h,
		table: createScoreTable(),
	}
	m.loadResults()
	return m
}

func createScoreTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Variant", Width: 14},
		{Title: "Lines", Width: 7},
		{Title: "Pieces", Width: 7},
		{Title: "Fours", Width: 6},
		{Title: "Date", Width: 17},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("245")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadResults refreshes the table from storage.
func (m *ScoreboardModel) loadResults() {
	results, err := m.store.TopResults(maxScores)
	if err != nil {
		m.err = err
		return
	}
	totals, err := m.store.Totals()
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.totals = totals

	rows := make([]table.Row, len(results))
	for i, r := range results {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			r.Variant,
			strconv.FormatUint(r.Lines, 10),
			strconv.FormatUint(r.Pieces, 10),
			strconv.FormatUint(r.Fours, 10),
			r.CreatedAt.Format("2006-01-02 15:04"),
		}
	}
	m.table.SetRows(rows)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.loadResults()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("cannot load results: %v\n", m.err)
	}

	title := lipgloss.NewStyle().Bold(true).Render("tetrs results")
	summary := labelStyle.Render(fmt.Sprintf(
		"%d games, %d lines, %d pieces",
		m.totals.Games, m.totals.Lines, m.totals.Pieces,
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		"",
		m.table.View(),
		"",
		m.help.View(m.keys),
	)
}

// RunScoreboard starts the interactive results browser.
func RunScoreboard(store *storage.Store) error {
	p := tea.NewProgram(
		NewScoreboardModel(store),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
