package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFlap},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionFlap},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart},
		{"?", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}, core.ActionHelp},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"x", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapDisabledBinding(t *testing.T) {
	keys := DefaultKeyMap()
	keys.Flap.SetEnabled(false)

	if got := keys.Action(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}); got != core.ActionNone {
		t.Errorf("disabled flap binding matched: %v", got)
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) != 4 {
		t.Errorf("ShortHelp() has %d bindings, want 4", len(keys.ShortHelp()))
	}
	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 4 {
		t.Errorf("FullHelp() has %d bindings, want 4", n)
	}
}
