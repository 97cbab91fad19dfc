package anim

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoopStepsUntilStopped(t *testing.T) {
	var steps atomic.Int64
	l := NewLoop(200, func() { steps.Add(1) })
	l.Start(context.Background())

	deadline := time.Now().Add(2 * time.Second)
	for steps.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if steps.Load() < 3 {
		t.Fatalf("only %d steps after 2s", steps.Load())
	}

	l.Stop()
	after := steps.Load()
	time.Sleep(30 * time.Millisecond)
	if got := steps.Load(); got != after {
		t.Errorf("step ran after Stop: %d -> %d", after, got)
	}

	// Idempotent
	l.Stop()
	select {
	case <-l.Done():
	default:
		t.Error("Done not closed after Stop")
	}
}

func TestLoopStopBeforeStart(t *testing.T) {
	var steps atomic.Int64
	l := NewLoop(200, func() { steps.Add(1) })

	l.Stop()
	l.Start(context.Background())
	time.Sleep(30 * time.Millisecond)

	if steps.Load() != 0 {
		t.Errorf("loop stopped before Start ran %d steps", steps.Load())
	}
	if l.Post(func() {}) {
		t.Error("Post accepted after Stop")
	}
}

func TestLoopContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := NewLoop(200, func() {})
	l.Start(ctx)
	cancel()

	select {
	case <-l.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not exit after context cancel")
	}
	l.Stop()
}

func TestLoopPostRunsBeforeStep(t *testing.T) {
	var order []string
	stepped := make(chan struct{}, 1)

	l := NewLoop(100, func() {
		order = append(order, "step")
		select {
		case stepped <- struct{}{}:
		default:
		}
	})

	if !l.Post(func() { order = append(order, "event") }) {
		t.Fatal("Post rejected before start")
	}
	l.Start(context.Background())

	select {
	case <-stepped:
	case <-time.After(2 * time.Second):
		t.Fatal("no step within 2s")
	}
	l.Stop()

	if len(order) < 2 || order[0] != "event" || order[1] != "step" {
		t.Errorf("order = %v, want event before first step", order)
	}
}
