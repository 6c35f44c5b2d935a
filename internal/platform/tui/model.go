package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pmelo/snaze/internal/core"
	"github.com/pmelo/snaze/internal/sim"
	"github.com/pmelo/snaze/internal/storage"
)

// Options carries the platform-side knobs for a simulation session.
// Simulation rules (lives, food target, AI) live in sim.Config; these
// are only about pacing, display, and persistence.
type Options struct {
	FPS      int    // Simulation turns per second
	ScreenW  int    // Initial screen width in cells
	ScreenH  int    // Initial screen height in cells
	LevelSet string // Level file name recorded with the run, "builtin" for embedded
}

// Model is the Bubble Tea model driving one simulation run.
type Model struct {
	sim      *sim.Simulation
	screen   *core.Screen
	store    *storage.Store
	opts     Options
	quitting bool
	runSaved bool // Whether the finished run has been recorded
}

// NewModel creates a Bubble Tea model for the given simulation.
// The store may be nil; runs are then simply not recorded.
func NewModel(s *sim.Simulation, store *storage.Store, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 10
	}
	if opts.ScreenW <= 0 {
		opts.ScreenW = 80
	}
	if opts.ScreenH <= 0 {
		opts.ScreenH = 24
	}
	if opts.LevelSet == "" {
		opts.LevelSet = "builtin"
	}

	return Model{
		sim:    s,
		screen: core.NewScreen(opts.ScreenW, opts.ScreenH),
		store:  store,
		opts:   opts,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.FPS)
}

// Update handles messages and advances the simulation on ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. The simulation only ever needs a
// confirmation signal; everything else is quit.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "enter", " ":
		m.sim.SubmitConfirmation()
	}
	return m, nil
}

// handleTick advances the simulation one turn and records the run once
// it reaches a terminal state. Ticking continues afterwards so the
// final board stays on screen until the user quits.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.sim.Tick()

	if m.sim.Done() && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	return m, tickCmd(m.opts.FPS)
}

// saveRun records the finished run. Best effort; the view is not
// interrupted by storage failures.
func (m Model) saveRun() {
	if m.store == nil {
		return
	}

	outcome := "lost"
	if m.sim.CurrentState() == sim.StateGameWon {
		outcome = "won"
	}

	//nolint:errcheck // Best-effort save
	m.store.SaveRun(storage.RunEntry{
		LevelSet:      m.opts.LevelSet,
		AI:            m.sim.AI().String(),
		Outcome:       outcome,
		Score:         m.sim.Score(),
		LevelsCleared: m.sim.LevelsCleared(),
		FoodEaten:     m.sim.TotalFoodEaten(),
	})
}

// View renders the current simulation state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.sim)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(s *sim.Simulation, store *storage.Store, opts Options) error {
	model := NewModel(s, store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
