package anim

import (
	"context"
	"sync"
	"time"
)

// eventBuffer is the capacity of the loop's event channel.
const eventBuffer = 64

// Loop calls a step function at a fixed rate on its own goroutine.
// Other goroutines hand work to the loop with Post; posted events run on the
// loop goroutine before the next step, so the state they touch has a single
// writer.
type Loop struct {
	interval time.Duration
	step     func()
	events   chan func()
	done     chan struct{}
	cancel   context.CancelFunc

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewLoop creates a loop that runs step fps times per second.
// A non-positive fps falls back to 60.
func NewLoop(fps int, step func()) *Loop {
	if fps <= 0 {
		fps = 60
	}
	return &Loop{
		interval: time.Second / time.Duration(fps),
		step:     step,
		events:   make(chan func(), eventBuffer),
		done:     make(chan struct{}),
	}
}

// Start launches the loop goroutine. It stops when ctx is cancelled or Stop
// is called. Only the first call has an effect.
func (l *Loop) Start(ctx context.Context) {
	l.startOnce.Do(func() {
		ctx, l.cancel = context.WithCancel(ctx)
		go l.run(ctx)
	})
}

// Stop cancels the loop and waits for its goroutine to exit. No step runs
// after Stop returns. Stop is safe to call more than once, and before Start;
// a loop stopped before it started never runs. Must not be called from step
// or a posted event.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		started := true
		l.startOnce.Do(func() {
			started = false
			close(l.done)
		})
		if started {
			l.cancel()
		}
	})
	<-l.done
}

// Done is closed once the loop goroutine has exited.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Post queues fn to run on the loop goroutine before the next step.
// Returns false if the loop has already exited.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.events <- fn:
		return true
	case <-l.done:
		return false
	}
}

func (l *Loop) run(ctx context.Context) {
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !l.drain(ctx) {
				return
			}
			l.step()
		}
	}
}

// drain runs every queued event. Returns false if ctx was cancelled while
// draining.
func (l *Loop) drain(ctx context.Context) bool {
	for {
		select {
		case fn := <-l.events:
			fn()
			if ctx.Err() != nil {
				return false
			}
		default:
			return ctx.Err() == nil
		}
	}
}
