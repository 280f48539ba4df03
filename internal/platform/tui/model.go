package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/monster-hunt/internal/sim"
	"github.com/vovakirdan/monster-hunt/internal/storage"
)

// Model is the Bubble Tea model for watching a hunt.
type Model struct {
	env      *sim.Environment
	settings sim.Settings
	snap     sim.Snapshot

	variant string
	store   *storage.Store
	delay   time.Duration

	keys WatchKeyMap
	help help.Model

	paused   bool
	quitting bool
	runSaved bool // Whether the finished run has been recorded
	err      error
}

// NewModel creates a watch model for the given settings. A zero seed is
// replaced with a wall-clock one so repeated launches differ.
func NewModel(settings sim.Settings, variant string, store *storage.Store, delay time.Duration) (Model, error) {
	if settings.Seed == 0 {
		settings.Seed = time.Now().UnixNano()
	}

	env, err := sim.New(settings)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		env:      env,
		settings: settings,
		snap:     env.Snapshot(),
		variant:  variant,
		store:    store,
		delay:    delay,
		keys:     DefaultWatchKeyMap(),
		help:     h,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.delay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		if !m.paused {
			return m, tickCmd(m.delay)
		}
		return m, nil

	case key.Matches(msg, m.keys.Step):
		// Single turn while paused
		if m.paused && !m.snap.Over {
			m.advance()
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		return m.restart()
	}

	return m, nil
}

// handleTick advances the simulation one turn.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, nil
	}
	if m.snap.Over {
		// Keep ticking so a restart resumes cleanly, but the world is frozen.
		return m, tickCmd(m.delay)
	}

	m.advance()
	return m, tickCmd(m.delay)
}

// advance runs one turn and records the run the moment it finishes.
func (m *Model) advance() {
	m.env.Step()
	m.snap = m.env.Snapshot()

	if m.snap.Over && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}
}

// restart begins a fresh hunt with a new wall-clock seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.settings.Seed = time.Now().UnixNano()

	env, err := sim.New(m.settings)
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	m.env = env
	m.snap = env.Snapshot()
	m.runSaved = false
	m.paused = false
	return m, tickCmd(m.delay)
}

// saveRun records the finished hunt. Best effort: a storage failure never
// interrupts the session.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}

	//nolint:errcheck // Best-effort save, session continues regardless
	m.store.SaveRun(storage.RunEntry{
		Variant:  m.variant,
		Rows:     m.settings.Rows,
		Cols:     m.settings.Cols,
		Monsters: m.settings.Monsters,
		Seed:     m.settings.Seed,
		Victory:  m.snap.Agent.Alive,
		Turns:    m.snap.Turn,
		Kills:    m.snap.Agent.Kills,
		Level:    m.snap.Agent.Level,
	})
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderHunt(m.snap, m.variant, m.paused, m.help.View(m.keys))
}

// Run starts the Bubble Tea program watching one hunt.
func Run(settings sim.Settings, variant string, store *storage.Store, delay time.Duration) error {
	model, err := NewModel(settings, variant, store, delay)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(Model); ok {
		return m.Err()
	}
	return nil
}
