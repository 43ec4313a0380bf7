// Package timer implements the pomodoro state machine that cycles between
// work sessions and breaks
package timer

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/zenfocus/settings"
)

// DefaultSettleDelay is how long a finished interval stays on screen before
// the next one begins.
const DefaultSettleDelay = 1500 * time.Millisecond

type (
	// Alarm is notified once every time an interval runs out.
	Alarm interface {
		Ring(finished, next Mode)
	}

	// Recorder receives the running total of completed work sessions after
	// each work interval. It must not block.
	Recorder interface {
		Record(completed int)
	}

	// StateStore persists the current mode and completed session count.
	StateStore interface {
		Load() (Mode, int)
		SaveMode(mode Mode) error
		SaveCompleted(completed int) error
	}

	// State is a snapshot of the machine.
	State struct {
		Mode                  Mode
		RemainingSeconds      int
		IsRunning             bool
		CompletedWorkSessions int
		// NextMode is set while a finished interval waits for the automatic
		// transition.
		NextMode Mode
	}

	// Option configures a Machine.
	Option func(*Machine)
)

// Finished reports whether the current interval has run out and is waiting
// for the transition to the next one.
func (s State) Finished() bool {
	return s.NextMode != ""
}

type transition struct {
	at   time.Time
	next Mode
}

// Machine is the pomodoro timer. It is not safe for concurrent use; a single
// owner (the TUI event loop or a Runner) must serialise every call.
type Machine struct {
	alarm          Alarm
	recorder       Recorder
	store          StateStore
	log            *slog.Logger
	now            func() time.Time
	anchor         time.Time
	pending        *transition
	state          State
	settings       settings.Settings
	settleDelay    time.Duration
	carry          time.Duration
	autoStartBreak bool
	autoStartWork  bool
}

func WithAlarm(a Alarm) Option {
	return func(m *Machine) {
		m.alarm = a
	}
}

func WithRecorder(r Recorder) Option {
	return func(m *Machine) {
		m.recorder = r
	}
}

// WithStateStore restores the mode and completed count from s and persists
// later changes to it.
func WithStateStore(s StateStore) Option {
	return func(m *Machine) {
		m.store = s
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Machine) {
		m.now = now
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		m.log = l
	}
}

// WithSettleDelay sets the pause between a finished interval and the start
// of the next one.
func WithSettleDelay(d time.Duration) Option {
	return func(m *Machine) {
		m.settleDelay = max(d, 0)
	}
}

// WithAutoStart controls whether the interval entered after the settle delay
// starts counting down on its own.
func WithAutoStart(breaks, work bool) Option {
	return func(m *Machine) {
		m.autoStartBreak = breaks
		m.autoStartWork = work
	}
}

type noopAlarm struct{}

func (noopAlarm) Ring(Mode, Mode) {}

type noopRecorder struct{}

func (noopRecorder) Record(int) {}

// New creates a paused machine. When a state store is supplied the last mode
// and completed count are restored from it.
func New(s settings.Settings, opts ...Option) *Machine {
	m := &Machine{
		settings:       s,
		alarm:          noopAlarm{},
		recorder:       noopRecorder{},
		log:            slog.Default(),
		now:            time.Now,
		settleDelay:    DefaultSettleDelay,
		autoStartBreak: true,
		autoStartWork:  true,
		state: State{
			Mode: Work,
		},
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store != nil {
		m.state.Mode, m.state.CompletedWorkSessions = m.store.Load()
	}

	m.state.RemainingSeconds = m.state.Mode.Duration(m.settings)

	return m
}

// State returns a snapshot of the machine.
func (m *Machine) State() State {
	s := m.state
	if m.pending != nil {
		s.NextMode = m.pending.next
	}

	return s
}

// Settings returns the settings currently in effect.
func (m *Machine) Settings() settings.Settings {
	return m.settings
}

// Duration returns the full length in seconds of the current mode.
func (m *Machine) Duration() int {
	return m.state.Mode.Duration(m.settings)
}

// SwitchMode stops the countdown and loads the full duration of mode. Any
// pending automatic transition is cancelled.
func (m *Machine) SwitchMode(mode Mode) error {
	if !mode.Valid() {
		return errUnknownMode.Fmt(mode)
	}

	m.pending = nil
	m.state.IsRunning = false
	m.carry = 0
	m.setMode(mode)

	return nil
}

// Toggle starts or pauses the countdown. A finished interval cannot be
// started again; use Reset or SwitchMode first.
func (m *Machine) Toggle() {
	now := m.now()

	if m.state.IsRunning {
		// settle whole seconds first; the partial second stays in carry
		m.Advance(now)
		m.state.IsRunning = false

		return
	}

	if m.state.RemainingSeconds <= 0 {
		return
	}

	m.state.IsRunning = true
	m.anchor = now
}

// Reset stops the countdown and restores the full duration of the current
// mode. The completed session count is untouched.
func (m *Machine) Reset() {
	m.pending = nil
	m.state.IsRunning = false
	m.carry = 0
	m.state.RemainingSeconds = m.Duration()
}

// Tick counts down a single second. It is a no-op unless the machine is
// running with time left.
func (m *Machine) Tick() {
	m.tick(m.now())
}

// ApplySettings replaces the settings. A paused interval is resized to the
// new duration of its mode; a running or finished one is left alone.
func (m *Machine) ApplySettings(s settings.Settings) {
	m.settings = s

	if m.state.IsRunning || m.pending != nil {
		return
	}

	m.carry = 0
	m.state.RemainingSeconds = m.Duration()
}

// Advance brings the machine up to now. Elapsed wall time since the last
// call is converted into whole-second ticks and a due transition is applied.
// Time left over after a completion or transition is carried into the next
// interval, so a late wake-up never causes drift. A wake-up late enough that
// the next interval would already be over (a suspended host) completes at
// most one interval; the next one starts at now.
func (m *Machine) Advance(now time.Time) {
	for {
		if m.state.IsRunning {
			elapsed := m.carry + nonNegative(now.Sub(m.anchor))
			// the instant the current partial second started
			start := m.anchor.Add(-m.carry)

			ticks := 0
			for m.state.IsRunning && time.Duration(ticks+1)*time.Second <= elapsed {
				ticks++
				m.tick(start.Add(time.Duration(ticks) * time.Second))
			}

			if m.state.IsRunning {
				m.anchor = now
				m.carry = elapsed - time.Duration(ticks)*time.Second
			}
		}

		if m.pending == nil || now.Before(m.pending.at) {
			return
		}

		m.applyTransition(now)
	}
}

func (m *Machine) tick(at time.Time) {
	if !m.state.IsRunning || m.state.RemainingSeconds <= 0 {
		return
	}

	m.state.RemainingSeconds--

	if m.state.RemainingSeconds == 0 {
		m.complete(at)
	}
}

// complete finishes the current interval at the given instant.
func (m *Machine) complete(at time.Time) {
	m.state.IsRunning = false
	m.carry = 0

	finished := m.state.Mode
	next := Work

	if finished == Work {
		m.state.CompletedWorkSessions++
		n := m.state.CompletedWorkSessions

		if m.store != nil {
			if err := m.store.SaveCompleted(n); err != nil {
				m.log.Warn("saving completed sessions failed", slog.Any("error", err))
			}
		}

		m.recorder.Record(n)

		next = ShortBreak
		if n%m.settings.LongBreakInterval == 0 {
			next = LongBreak
		}
	}

	m.alarm.Ring(finished, next)

	m.pending = &transition{
		at:   at.Add(m.settleDelay),
		next: next,
	}

	m.log.Debug(
		"interval finished",
		slog.String("mode", string(finished)),
		slog.String("next", string(next)),
		slog.Int("completed", m.state.CompletedWorkSessions),
	)
}

func (m *Machine) applyTransition(now time.Time) {
	t := m.pending
	m.pending = nil

	m.setMode(t.next)

	m.carry = 0
	m.state.IsRunning = m.autoStart(t.next)

	if !m.state.IsRunning {
		return
	}

	m.anchor = t.at

	if !now.Before(t.at.Add(time.Duration(m.state.RemainingSeconds) * time.Second)) {
		m.anchor = now
	}
}

func (m *Machine) autoStart(next Mode) bool {
	if next == Work {
		return m.autoStartWork
	}

	return m.autoStartBreak
}

func (m *Machine) setMode(mode Mode) {
	m.state.Mode = mode
	m.state.RemainingSeconds = mode.Duration(m.settings)

	if m.store == nil {
		return
	}

	if err := m.store.SaveMode(mode); err != nil {
		m.log.Warn("saving timer mode failed", slog.Any("error", err))
	}
}

func nonNegative(d time.Duration) time.Duration {
	return max(d, 0)
}
