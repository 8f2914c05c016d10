package main

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/raycast"
	"github.com/vovakirdan/tui-raycaster/internal/registry"
)

func TestHeadlessFrameLimit(t *testing.T) {
	m, err := registry.Create("classic")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	engine := raycast.NewEngine(m.World, raycast.Camera{Pos: m.Spawn.Pos, Dir: m.Spawn.Dir}, raycast.DefaultOptions())
	p := &headless{limit: 25}
	if err := engine.Run(context.Background(), p, core.NewFramebuffer(40, 24), core.NewClock(0)); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if p.frames != 25 {
		t.Errorf("presented %d frames, want 25", p.frames)
	}
	if got := engine.Stats().Frames; got != 25 {
		t.Errorf("engine rendered %d frames, want 25", got)
	}
}

func TestHeadlessDeadline(t *testing.T) {
	p := &headless{deadline: time.Now().Add(-time.Second)}
	if !p.ShouldClose() {
		t.Error("past deadline should close")
	}

	p = &headless{}
	if p.ShouldClose() {
		t.Error("no limit should keep running")
	}
	if !p.Poll().Has(core.ActionRotateRight) {
		t.Error("headless camera should turn")
	}
}
