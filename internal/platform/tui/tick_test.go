package tui

import (
	"testing"
	"time"
)

func TestTimerGenerations(t *testing.T) {
	tm := newTimer(time.Millisecond, tickMsg)

	if tm.Cmd() != nil {
		t.Error("stopped timer returned a command")
	}
	if tm.Accept(0) {
		t.Error("stopped timer accepted a message")
	}

	tm.Start()
	first := tm.gen
	if !tm.Accept(first) {
		t.Error("live generation rejected")
	}

	tm.Stop()
	tm.Start()
	if tm.Accept(first) {
		t.Error("generation from before Stop accepted")
	}
	if !tm.Accept(tm.gen) {
		t.Error("new generation rejected")
	}
}

func TestTimerCmdCarriesGeneration(t *testing.T) {
	tm := newTimer(time.Millisecond, spawnMsg)
	tm.Start()
	tm.Start()

	msg := tm.Cmd()()
	sm, ok := msg.(SpawnMsg)
	if !ok {
		t.Fatalf("Cmd produced %T, want SpawnMsg", msg)
	}
	if sm.Gen != tm.gen {
		t.Errorf("Gen = %d, want %d", sm.Gen, tm.gen)
	}
}
