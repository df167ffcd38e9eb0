package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tiehuis/tetrs/internal/config"
	"github.com/tiehuis/tetrs/internal/engine"
	"github.com/tiehuis/tetrs/internal/rotation"
	"github.com/tiehuis/tetrs/internal/storage"
)

// RunOptions bundles everything a play session needs besides the game rules.
type RunOptions struct {
	// Store receives the finished game result. May be nil.
	Store *storage.Store

	// Seed fixes the piece sequence. 0 picks a time-based seed.
	Seed int64

	// TickRate is engine updates per second.
	TickRate int

	// RecordPath, when set, receives a replayable recording on game over.
	RecordPath string
}

// Model is the Bubble Tea model for an interactive game session.
type Model struct {
	eng  *engine.Engine
	cfg  config.GameConfig
	rs   rotation.System
	opts RunOptions
	seed int64

	resultSaved bool
	paused      bool
	quitting    bool
}

// NewModel creates a play model from a game configuration.
func NewModel(cfg config.GameConfig, opts RunOptions) (Model, error) {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	eng, err := engine.New(cfg.ToOptions(seed))
	if err != nil {
		return Model{}, err
	}

	// Validated by engine.New above.
	rs, err := rotation.New(cfg.Rules.RotationSystem)
	if err != nil {
		return Model{}, err
	}

	return Model{
		eng:  eng,
		cfg:  cfg,
		rs:   rs,
		opts: opts,
		seed: seed,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "q":
		// A running game records the quit as an input event so recordings
		// stay faithful; a finished game just leaves.
		if !m.eng.Running() {
			m.quitting = true
			return m, tea.Quit
		}
	case "r":
		if !m.eng.Running() {
			return m.restart()
		}
		return m, nil
	case "p":
		if m.eng.Running() {
			m.paused = !m.paused
		}
		return m, nil
	}

	if m.paused {
		return m, nil
	}
	if action, ok := keyActions[key]; ok {
		m.eng.Controller().Activate(action)
	}
	return m, nil
}

// restart begins a fresh game with a new time-based seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.seed = time.Now().UnixNano()
	eng, err := engine.New(m.cfg.ToOptions(m.seed))
	if err != nil {
		// The configuration already produced one engine; this cannot fail.
		m.quitting = true
		return m, tea.Quit
	}
	m.eng = eng
	m.resultSaved = false
	return m, nil
}

// handleTick advances the engine by one tick. Pulsed key presses are cleared
// once the engine has consumed them.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.opts.TickRate)
	}

	m.eng.Update()
	m.eng.Controller().DeactivateAll()

	if !m.eng.Running() && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	return m, tickCmd(m.opts.TickRate)
}

// saveResult persists the finished game and, if requested, its recording.
// Both are best effort; the UI keeps going regardless.
func (m *Model) saveResult() {
	stats := m.eng.Stats()

	if m.opts.Store != nil && stats.Pieces > 0 {
		//nolint:errcheck
		m.opts.Store.SaveResult(storage.Result{
			Variant: m.cfg.Rules.RotationSystem + "/" + m.cfg.Rules.Randomizer,
			Seed:    m.seed,
			Ticks:   m.eng.Ticks(),
			Lines:   stats.Lines,
			Pieces:  stats.Pieces,
			Singles: stats.Singles,
			Doubles: stats.Doubles,
			Triples: stats.Triples,
			Fours:   stats.Fours,
		})
	}

	if m.opts.RecordPath != "" {
		//nolint:errcheck
		config.SaveRecording(m.opts.RecordPath, config.Recording{
			Game:   m.cfg,
			Seed:   m.seed,
			Ticks:  m.eng.Ticks(),
			Events: m.eng.Events(),
		})
	}
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	view := RenderGame(m.eng.Snapshot(), m.rs)
	if m.paused {
		view += "\n" + labelStyle.Render("paused - p to resume")
	}
	return view
}

// Run starts an interactive game session and blocks until it ends.
func Run(cfg config.GameConfig, opts RunOptions) error {
	model, err := NewModel(cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
