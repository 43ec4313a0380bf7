// Package settings loads, validates and saves the timer durations
package settings

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/ayoisaiah/zenfocus/internal/apperr"
	"github.com/ayoisaiah/zenfocus/store"
)

const minLongBreakInterval = 2

// Settings are the four user-configurable timer parameters. Durations are in
// whole seconds.
type Settings struct {
	WorkDuration       int `json:"workTime"`
	ShortBreakDuration int `json:"shortBreakTime"`
	LongBreakDuration  int `json:"longBreakTime"`
	LongBreakInterval  int `json:"longBreakInterval"`
}

// Defaults returns 25/5/15 minutes with a long break every 4 sessions.
func Defaults() Settings {
	return Settings{
		WorkDuration:       1500,
		ShortBreakDuration: 300,
		LongBreakDuration:  900,
		LongBreakInterval:  4,
	}
}

var (
	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be a positive number of seconds, got %d",
	}

	errInvalidInterval = &apperr.Error{
		Message: "long break interval must be at least %d, got %d",
	}
)

// Validate reports whether every duration is positive and the long break
// interval is at least 2.
func (s Settings) Validate() error {
	durations := []struct {
		name  string
		value int
	}{
		{"work", s.WorkDuration},
		{"short break", s.ShortBreakDuration},
		{"long break", s.LongBreakDuration},
	}

	for _, d := range durations {
		if d.value <= 0 {
			return errInvalidDuration.Fmt(d.name, d.value)
		}
	}

	if s.LongBreakInterval < minLongBreakInterval {
		return errInvalidInterval.Fmt(minLongBreakInterval, s.LongBreakInterval)
	}

	return nil
}

// Store reads and writes Settings in the local database.
type Store struct {
	db        store.DB
	log       *slog.Logger
	listeners []func(Settings)
	mu        sync.Mutex
}

// NewStore returns a settings store backed by db.
func NewStore(db store.DB, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}

	return &Store{db: db, log: log}
}

// Load returns the persisted settings. Missing, unreadable or invalid data
// yields the defaults. Fields absent from a stored document keep their
// default value.
func (s *Store) Load() Settings {
	raw, found, err := s.db.Get(store.KeySettings)
	if err != nil {
		s.log.Debug("reading settings failed, using defaults", slog.Any("error", err))
		return Defaults()
	}

	if !found {
		return Defaults()
	}

	loaded := Defaults()

	err = json.Unmarshal([]byte(raw), &loaded)
	if err != nil {
		s.log.Debug("stored settings are not valid JSON, using defaults", slog.Any("error", err))
		return Defaults()
	}

	if err := loaded.Validate(); err != nil {
		s.log.Debug("stored settings are out of range, using defaults", slog.Any("error", err))
		return Defaults()
	}

	return loaded
}

// Save validates and persists settings, then notifies change listeners.
func (s *Store) Save(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	b, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	err = s.db.Set(store.KeySettings, string(b))
	if err != nil {
		return err
	}

	s.mu.Lock()
	listeners := append([]func(Settings){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(settings)
	}

	return nil
}

// OnChange registers fn to be called after every successful Save.
func (s *Store) OnChange(fn func(Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, fn)
}

type inputRange struct {
	min, max int
}

var (
	workRange       = inputRange{1, 120}
	shortBreakRange = inputRange{1, 30}
	longBreakRange  = inputRange{1, 60}
	intervalRange   = inputRange{minLongBreakInterval, 10}
)

// FromInput converts raw form input into Settings. Durations are given in
// minutes. Non-numeric input becomes the smallest allowed value and numbers
// are clamped to the allowed range.
func FromInput(work, shortBreak, longBreak, interval string) Settings {
	return Settings{
		WorkDuration:       coerce(work, workRange) * 60,
		ShortBreakDuration: coerce(shortBreak, shortBreakRange) * 60,
		LongBreakDuration:  coerce(longBreak, longBreakRange) * 60,
		LongBreakInterval:  coerce(interval, intervalRange),
	}
}

// Minutes expresses the stored durations in whole minutes for form input.
func (s Settings) Minutes() (work, shortBreak, longBreak int) {
	return s.WorkDuration / 60, s.ShortBreakDuration / 60, s.LongBreakDuration / 60
}

func coerce(input string, r inputRange) int {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return r.min
	}

	return min(max(n, r.min), r.max)
}
