// Package tui hosts the flappy engine in a Bubble Tea program.
// It owns the tick and spawn timers, maps keys to engine commands and
// styles the rendered screen for the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is delivered by the tick timer.
type TickMsg struct {
	Gen uint64
}

// SpawnMsg is delivered by the spawn timer.
type SpawnMsg struct {
	Gen uint64
}

// timer is a repeating timer owned by the model. Bubble Tea timers are
// one-shot commands, so the model re-arms the timer after every delivery.
// Each Start or Stop bumps the generation; a message carrying an older
// generation is stale and must be dropped.
type timer struct {
	period  time.Duration
	gen     uint64
	running bool
	msg     func(gen uint64) tea.Msg
}

func newTimer(period time.Duration, msg func(gen uint64) tea.Msg) timer {
	return timer{period: period, msg: msg}
}

// Start begins a new generation. Call Cmd to schedule the first delivery.
func (t *timer) Start() {
	t.gen++
	t.running = true
}

// Stop invalidates every delivery already scheduled.
func (t *timer) Stop() {
	t.gen++
	t.running = false
}

// Running reports whether the timer is armed.
func (t *timer) Running() bool {
	return t.running
}

// Accept reports whether a message of generation gen belongs to the live timer.
func (t *timer) Accept(gen uint64) bool {
	return t.Running() && gen == t.gen
}

// Cmd schedules the next delivery for the current generation.
// It returns nil when the timer is stopped.
func (t *timer) Cmd() tea.Cmd {
	if !t.Running() {
		return nil
	}
	gen, msg := t.gen, t.msg
	return tea.Tick(t.period, func(time.Time) tea.Msg {
		return msg(gen)
	})
}

func tickMsg(gen uint64) tea.Msg  { return TickMsg{Gen: gen} }
func spawnMsg(gen uint64) tea.Msg { return SpawnMsg{Gen: gen} }
