package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyR     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}
	keyQ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	keyHelp  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	eng := flappy.NewEngine(config.DefaultFlappyConfig(), 1)
	return NewModel(eng, core.DefaultConfig(), nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestNewModelArmsTickOnly(t *testing.T) {
	m := newTestModel(t)

	if !m.tick.Running() {
		t.Error("tick timer not armed")
	}
	if m.spawn.Running() {
		t.Error("spawn timer armed before the game started")
	}
	if m.Init() == nil {
		t.Error("Init() returned nil command")
	}
}

func TestFlapStartsSpawnTimer(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, keySpace)
	if m.engine.Phase() != flappy.PhaseRunning {
		t.Fatalf("phase = %v, want running", m.engine.Phase())
	}
	if !m.spawn.Running() {
		t.Error("spawn timer not armed after the first flap")
	}
	if cmd == nil {
		t.Error("expected a command scheduling the first spawn")
	}

	// A second flap must not restart the spawn period.
	gen := m.spawn.gen
	m, _ = update(t, m, keySpace)
	if m.spawn.gen != gen {
		t.Errorf("spawn generation changed on a second flap: %d -> %d", gen, m.spawn.gen)
	}
}

func TestTickAndSpawnMessages(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, keySpace)

	m, cmd := update(t, m, TickMsg{Gen: m.tick.gen})
	if got := m.engine.State().Ticks; got != 1 {
		t.Errorf("Ticks = %d, want 1", got)
	}
	if cmd == nil {
		t.Error("tick did not re-arm")
	}

	m, cmd = update(t, m, SpawnMsg{Gen: m.spawn.gen})
	if got := len(m.engine.State().Obstacles); got != 1 {
		t.Errorf("obstacles = %d, want 1", got)
	}
	if cmd == nil {
		t.Error("spawn did not re-arm")
	}
}

func TestStaleMessagesDropped(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, keySpace)
	before := m.engine.State()

	m, cmd := update(t, m, TickMsg{Gen: m.tick.gen - 1})
	if cmd != nil {
		t.Error("stale tick re-armed the timer")
	}
	m, _ = update(t, m, SpawnMsg{Gen: m.spawn.gen + 1})

	after := m.engine.State()
	if after.Ticks != before.Ticks || len(after.Obstacles) != len(before.Obstacles) {
		t.Errorf("stale messages changed the engine: %+v -> %+v", before, after)
	}
}

func TestSpawnTimerStopsOnGameOver(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, keySpace)
	spawnGen := m.spawn.gen

	for i := 0; i < 1000 && m.engine.Phase() == flappy.PhaseRunning; i++ {
		m, _ = update(t, m, TickMsg{Gen: m.tick.gen})
	}
	if m.engine.Phase() != flappy.PhaseOver {
		t.Fatalf("phase = %v, want over", m.engine.Phase())
	}
	if m.spawn.Running() {
		t.Error("spawn timer still armed after game over")
	}

	// A spawn already in flight must not reach the engine.
	m, _ = update(t, m, SpawnMsg{Gen: spawnGen})
	if got := len(m.engine.State().Obstacles); got != 0 {
		t.Errorf("obstacles = %d after game over", got)
	}
}

func TestRestartOnlyWhenOver(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, keySpace)

	m, _ = update(t, m, keyR)
	if m.engine.Phase() != flappy.PhaseRunning {
		t.Fatalf("restart while running changed phase to %v", m.engine.Phase())
	}

	for i := 0; i < 1000 && m.engine.Phase() == flappy.PhaseRunning; i++ {
		m, _ = update(t, m, TickMsg{Gen: m.tick.gen})
	}
	m, _ = update(t, m, keyR)
	if m.engine.Phase() != flappy.PhaseNotStarted {
		t.Errorf("phase after restart = %v, want not started", m.engine.Phase())
	}
	if m.spawn.Running() {
		t.Error("spawn timer armed after restart")
	}
	if !m.tick.Running() {
		t.Error("tick timer stopped by restart")
	}
}

func TestBestScoreKept(t *testing.T) {
	m := newTestModel(t)
	m.best = 7

	m, _ = update(t, m, keySpace)
	for i := 0; i < 1000 && m.engine.Phase() == flappy.PhaseRunning; i++ {
		m, _ = update(t, m, TickMsg{Gen: m.tick.gen})
	}
	if m.Best() != 7 {
		t.Errorf("Best() = %d, want 7 after a zero-score game", m.Best())
	}
}

func TestQuitTearsDown(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, keySpace)
	tickGen, spawnGen := m.tick.gen, m.spawn.gen

	m, cmd := update(t, m, keyQ)
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command did not produce tea.QuitMsg")
	}
	if !m.stopped || m.tick.Running() || m.spawn.Running() {
		t.Errorf("teardown incomplete: stopped=%v tick=%v spawn=%v", m.stopped, m.tick.Running(), m.spawn.Running())
	}

	before := m.engine.State()
	m, _ = update(t, m, TickMsg{Gen: tickGen})
	m, _ = update(t, m, SpawnMsg{Gen: spawnGen})
	m, _ = update(t, m, keySpace)
	after := m.engine.State()
	if after.Ticks != before.Ticks || len(after.Obstacles) != len(before.Obstacles) || after.Bird != before.Bird {
		t.Error("engine changed after teardown")
	}
	if m.View() != "" {
		t.Error("View() not empty after quit")
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, keyHelp)
	if !m.help.ShowAll {
		t.Error("help not expanded")
	}
	m, _ = update(t, m, keyHelp)
	if m.help.ShowAll {
		t.Error("help not collapsed")
	}
}

func TestResizeAndView(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	if m.screen.Width() != 60 || m.screen.Height() != 20-helpRows {
		t.Errorf("screen = %dx%d, want 60x%d", m.screen.Width(), m.screen.Height(), 20-helpRows)
	}

	view := m.View()
	if !strings.Contains(view, "Score") {
		t.Error("view missing HUD")
	}
	if !strings.Contains(view, "flap") {
		t.Error("view missing help footer")
	}
}

func TestUpdateReturnsSyncedPhase(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, keySpace)
	if m.phase != flappy.PhaseRunning || m.games != 1 || !m.spawn.running {
		t.Fatalf("after flap: phase=%v games=%d spawn=%v", m.phase, m.games, m.spawn.running)
	}

	for i := 0; i < 1000 && m.engine.Phase() == flappy.PhaseRunning; i++ {
		m, _ = update(t, m, TickMsg{Gen: m.tick.gen})
	}
	if m.phase != flappy.PhaseOver || m.spawn.running {
		t.Fatalf("after crash: phase=%v spawn=%v", m.phase, m.spawn.running)
	}

	m, _ = update(t, m, keyR)
	if m.phase != flappy.PhaseNotStarted {
		t.Errorf("after restart: phase=%v", m.phase)
	}
}
