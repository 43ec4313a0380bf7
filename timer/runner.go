package timer

import (
	"context"
	"time"

	"github.com/ayoisaiah/zenfocus/settings"
)

// DefaultTickInterval is how often the runner wakes up to advance the
// machine.
const DefaultTickInterval = 250 * time.Millisecond

type command struct {
	fn   func(m *Machine)
	done chan struct{}
}

// Runner drives a Machine from its own goroutine. The machine is only ever
// touched by Run; other goroutines send commands through the runner.
type Runner struct {
	m        *Machine
	now      func() time.Time
	onUpdate func(prev, cur State)
	cmds     chan command
	stopped  chan struct{}
	interval time.Duration
}

// NewRunner wraps m. onUpdate, if not nil, is called from the runner
// goroutine whenever the machine state changes.
func NewRunner(
	m *Machine,
	interval time.Duration,
	onUpdate func(prev, cur State),
) *Runner {
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	return &Runner{
		m:        m,
		now:      m.now,
		onUpdate: onUpdate,
		interval: interval,
		cmds:     make(chan command),
		stopped:  make(chan struct{}),
	}
}

// Run advances the machine on every wake-up until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.stopped)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	prev := r.m.State()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.m.Advance(r.now())
		case cmd := <-r.cmds:
			cmd.fn(r.m)
			close(cmd.done)
		}

		cur := r.m.State()
		if cur != prev && r.onUpdate != nil {
			r.onUpdate(prev, cur)
		}

		prev = cur
	}
}

// Do runs fn on the runner goroutine and waits for it to finish.
func (r *Runner) Do(ctx context.Context, fn func(m *Machine)) error {
	cmd := command{fn: fn, done: make(chan struct{})}

	select {
	case r.cmds <- cmd:
	case <-r.stopped:
		return errRunnerStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-cmd.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) Toggle(ctx context.Context) error {
	return r.Do(ctx, func(m *Machine) { m.Toggle() })
}

func (r *Runner) Reset(ctx context.Context) error {
	return r.Do(ctx, func(m *Machine) { m.Reset() })
}

func (r *Runner) SwitchMode(ctx context.Context, mode Mode) error {
	var err error

	doErr := r.Do(ctx, func(m *Machine) { err = m.SwitchMode(mode) })
	if doErr != nil {
		return doErr
	}

	return err
}

func (r *Runner) ApplySettings(ctx context.Context, s settings.Settings) error {
	return r.Do(ctx, func(m *Machine) { m.ApplySettings(s) })
}

// State returns a snapshot taken on the runner goroutine.
func (r *Runner) State(ctx context.Context) (State, error) {
	var s State

	err := r.Do(ctx, func(m *Machine) {
		m.Advance(r.now())
		s = m.State()
	})

	return s, err
}
