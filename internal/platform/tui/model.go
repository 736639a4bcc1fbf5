package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// helpRows is the number of screen rows reserved for the key help footer.
const helpRows = 1

// Model is the Bubble Tea model running one flappy session.
// Every engine call happens inside Update, one message at a time.
type Model struct {
	engine   *flappy.Engine
	screen   *core.Screen
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	tick     timer
	spawn    timer
	phase    flappy.Phase
	best     int // Session best, kept in memory only
	games    int
	quitting bool
	stopped  bool
}

// NewModel creates a model around eng. A nil logger discards output.
// The tick timer is armed immediately; Init schedules its first delivery.
func NewModel(eng *flappy.Engine, rc core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	timing := eng.Config().Timing

	h := help.New()
	h.ShowAll = false

	m := Model{
		engine: eng,
		screen: core.NewScreen(rc.ScreenW, playRows(rc.ScreenH)),
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   h,
		tick:   newTimer(timing.TickPeriod, tickMsg),
		spawn:  newTimer(timing.SpawnPeriod, spawnMsg),
		phase:  eng.Phase(),
	}
	m.help.Width = rc.ScreenW
	m.tick.Start()
	if m.phase == flappy.PhaseRunning {
		m.spawn.Start()
	}
	return m
}

func playRows(h int) int {
	return core.Max(h-helpRows, 0)
}

// Init schedules the first timer deliveries.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick.Cmd(), m.spawn.Cmd())
}

// Best returns the best score of the session.
func (m Model) Best() int {
	return m.best
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.stopped {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, playRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.tick.Accept(msg.Gen) {
			return m, nil
		}
		m.engine.Tick()
		phaseCmd := m.syncPhase()
		return m, tea.Batch(m.tick.Cmd(), phaseCmd)

	case SpawnMsg:
		if !m.spawn.Accept(msg.Gen) {
			return m, nil
		}
		m.engine.SpawnObstacle()
		return m, m.spawn.Cmd()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.Teardown()
		m.quitting = true
		return m, tea.Quit

	case core.ActionFlap:
		m.engine.Flap()
		cmd := m.syncPhase()
		return m, cmd

	case core.ActionRestart:
		if m.engine.Phase() != flappy.PhaseOver {
			return m, nil
		}
		m.engine.Restart()
		cmd := m.syncPhase()
		return m, cmd

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// syncPhase reacts to a phase change caused by the last engine call.
// The spawn timer runs exactly while the game is running.
func (m *Model) syncPhase() tea.Cmd {
	cur := m.engine.Phase()
	prev := m.phase
	if cur == prev {
		return nil
	}
	m.phase = cur

	st := m.engine.State()
	m.logger.Debug("phase changed", "from", prev, "to", cur, "score", st.Score, "ticks", st.Ticks)

	switch cur {
	case flappy.PhaseRunning:
		m.games++
		m.spawn.Start()
		return m.spawn.Cmd()
	case flappy.PhaseOver:
		m.spawn.Stop()
		if st.Score > m.best {
			m.best = st.Score
			m.logger.Info("new best score", "score", st.Score, "game", m.games)
		}
	default:
		m.spawn.Stop()
	}
	return nil
}

// Teardown stops both timers and input handling. Messages that arrive
// afterwards are ignored.
func (m *Model) Teardown() {
	m.tick.Stop()
	m.spawn.Stop()
	m.stopped = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	flappy.Render(m.screen, m.engine.State(), m.engine.Config(), flappy.View{Best: m.best})
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for eng and blocks until the player quits.
func Run(eng *flappy.Engine, rc core.RuntimeConfig, logger *log.Logger) (best int, err error) {
	p := tea.NewProgram(
		NewModel(eng, rc, logger),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		best = m.Best()
	}
	return best, nil
}
