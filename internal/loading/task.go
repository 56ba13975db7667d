// Package loading runs the timed Loading phase shown while a track is
// generated: a progress bar advancing on one ticker and a content
// carousel rotating on another. Both stop together on completion or
// cancellation.
package loading

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultContentInterval  = 5 * time.Second
	DefaultProgressInterval = 200 * time.Millisecond
	DefaultProgressStep     = 2

	// Complete is the progress value that ends the task.
	Complete = 100

	eventBuffer = 16
)

// Options configures a Task. Zero values take the defaults.
type Options struct {
	ContentInterval  time.Duration
	ProgressInterval time.Duration
	ProgressStep     int
	// ContentCount is the number of carousel items. With zero items the
	// content ticker is not started.
	ContentCount int
	NewTicker    TickerFunc
}

func (o Options) withDefaults() Options {
	if o.ContentInterval <= 0 {
		o.ContentInterval = DefaultContentInterval
	}
	if o.ProgressInterval <= 0 {
		o.ProgressInterval = DefaultProgressInterval
	}
	if o.ProgressStep <= 0 {
		o.ProgressStep = DefaultProgressStep
	}
	if o.NewTicker == nil {
		o.NewTicker = RealTicker
	}
	return o
}

type EventKind int

const (
	EventProgress EventKind = iota
	EventContent
	EventDone
)

func (k EventKind) String() string {
	switch k {
	case EventProgress:
		return "progress"
	case EventContent:
		return "content"
	case EventDone:
		return "done"
	default:
		return "unknown"
	}
}

// Event is pushed on every state change.
type Event struct {
	Kind         EventKind
	Progress     int
	ContentIndex int
}

type State int

const (
	Running State = iota
	Completed
	Cancelled
)

// Snapshot is the task state at one instant.
type Snapshot struct {
	Progress     int
	ContentIndex int
	State        State
}

// errCompleted stops the group when progress reaches Complete.
var errCompleted = errors.New("loading complete")

// Task is one run of the Loading phase. Create it with Start.
type Task struct {
	opts Options

	mu       sync.Mutex
	progress int
	index    int
	state    State
	stopped  bool

	cancel context.CancelFunc
	events chan Event
	done   chan struct{}
	err    error
}

// Start launches the progress and content loops. Cancelling ctx has the
// same effect as Task.Cancel.
func Start(ctx context.Context, opts Options) *Task {
	opts = opts.withDefaults()
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{
		opts:   opts,
		cancel: cancel,
		events: make(chan Event, eventBuffer),
		done:   make(chan struct{}),
	}

	g, gctx := errgroup.WithContext(ctx)

	progress := opts.NewTicker(opts.ProgressInterval)
	g.Go(func() error {
		defer progress.Stop()
		return t.runProgress(gctx, progress)
	})

	if opts.ContentCount > 0 {
		content := opts.NewTicker(opts.ContentInterval)
		g.Go(func() error {
			defer content.Stop()
			return t.runContent(gctx, content)
		})
	}

	go t.supervise(g)
	return t
}

func (t *Task) runProgress(ctx context.Context, tk Ticker) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tk.C():
			t.mu.Lock()
			if t.stopped {
				t.mu.Unlock()
				return context.Canceled
			}
			t.progress = min(Complete, t.progress+t.opts.ProgressStep)
			ev := Event{Kind: EventProgress, Progress: t.progress, ContentIndex: t.index}
			finished := t.progress >= Complete
			if finished {
				t.stopped = true
				t.state = Completed
			}
			t.mu.Unlock()

			t.push(ev)
			if finished {
				return errCompleted
			}
		}
	}
}

func (t *Task) runContent(ctx context.Context, tk Ticker) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tk.C():
			t.mu.Lock()
			if t.stopped {
				t.mu.Unlock()
				return context.Canceled
			}
			t.index = (t.index + 1) % t.opts.ContentCount
			ev := Event{Kind: EventContent, Progress: t.progress, ContentIndex: t.index}
			t.mu.Unlock()

			t.push(ev)
		}
	}
}

// supervise waits for both loops, records the outcome and closes Events.
func (t *Task) supervise(g *errgroup.Group) {
	err := g.Wait()
	t.cancel()

	t.mu.Lock()
	if errors.Is(err, errCompleted) {
		err = nil
	} else {
		t.stopped = true
		t.state = Cancelled
		if err == nil {
			err = context.Canceled
		}
	}
	t.err = err
	final := Event{Kind: EventDone, Progress: t.progress, ContentIndex: t.index}
	completed := t.state == Completed
	t.mu.Unlock()

	if completed {
		t.push(final)
	}
	close(t.events)
	close(t.done)
}

// push delivers ev without blocking. When the consumer lags, the oldest
// buffered event is dropped; Snapshot always has the current state.
func (t *Task) push(ev Event) {
	for {
		select {
		case t.events <- ev:
			return
		default:
		}
		select {
		case <-t.events:
		default:
		}
	}
}

// Events streams state changes. The channel is closed once the task has
// finished; a completed task sends EventDone last.
func (t *Task) Events() <-chan Event {
	return t.events
}

func (t *Task) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{Progress: t.progress, ContentIndex: t.index, State: t.state}
}

// Cancel stops both loops. No state change is observable after Cancel
// returns. Cancelling a finished task does nothing.
func (t *Task) Cancel() {
	t.mu.Lock()
	if !t.stopped {
		t.stopped = true
		t.state = Cancelled
	}
	t.mu.Unlock()
	t.cancel()
}

// Wait blocks until both loops have exited. It returns nil when progress
// reached Complete and context.Canceled when the task was cancelled.
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

// Done is closed when the task has finished.
func (t *Task) Done() <-chan struct{} {
	return t.done
}
