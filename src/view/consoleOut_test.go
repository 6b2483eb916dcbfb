package view

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"lifegrid/src/host"
	"lifegrid/src/universe"
)

func frameOf(u *universe.Universe) host.Frame {
	return host.Frame{Width: u.Width(), Height: u.Height(), Cells: u.Snapshot(), Status: u.Status()}
}

func TestConsoleOutPrintsEveryN(t *testing.T) {
	var b bytes.Buffer
	c := NewConsoleOut(&b, 2, false, false)
	u := universe.New(3, 3)
	u.ToggleStartStop()
	for i := 0; i < 5; i++ {
		c.Refresh(frameOf(u))
		u.Tick()
	}
	out := b.String()
	for _, want := range []string{"Generation: 0 ", "Generation: 2 ", "Generation: 4 "} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Generation: 1 ") || strings.Contains(out, "Generation: 3 ") {
		t.Errorf("unexpected generations printed:\n%s", out)
	}
}

func TestConsoleOutGridAndFinish(t *testing.T) {
	var b bytes.Buffer
	c := NewConsoleOut(&b, 0, true, false)
	u := universe.New(2, 2)
	if err := u.Set(0, 1, universe.Alive); err != nil {
		t.Fatal(err)
	}
	c.Refresh(frameOf(u))
	if b.Len() != 0 {
		t.Fatalf("every=0 must not print on refresh, got %q", b.String())
	}
	c.Finish(frameOf(u))
	out := b.String()
	if !strings.HasPrefix(out, "◻◼\n◻◻\n") {
		t.Errorf("grid not printed first:\n%s", out)
	}
	if !strings.Contains(out, "Finished:") || !strings.Contains(out, "  Live cells: 1\n") {
		t.Errorf("finish summary missing:\n%s", out)
	}
}

func TestConsoleOutRegister(t *testing.T) {
	var b bytes.Buffer
	c := NewConsoleOut(&b, 1, false, false)
	c.Register(universe.Options{Width: 8, Height: 4, Workers: 2}, 150*time.Millisecond, 10)
	want := "Running configuration:\n" +
		"  Dimension: 8 x 4\n" +
		"  Interval: 150ms\n" +
		"  Max iterations: 10\n" +
		"  Workers: 2\n"
	if b.String() != want {
		t.Errorf("got\n%s\nwant\n%s", b.String(), want)
	}
}
