package timer

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/ayoisaiah/zenfocus/store"
)

// DBState stores the timer mode and completed count as two independent
// string entries in the local database.
type DBState struct {
	db  store.DB
	log *slog.Logger
}

// NewDBState returns a StateStore backed by db.
func NewDBState(db store.DB, log *slog.Logger) *DBState {
	if log == nil {
		log = slog.Default()
	}

	return &DBState{db: db, log: log}
}

// Load returns the persisted mode and completed count. An unknown mode falls
// back to work and an unreadable or negative count falls back to zero.
func (s *DBState) Load() (Mode, int) {
	mode := Work

	v, found, err := s.db.Get(store.KeyCurrentMode)
	if err != nil {
		s.log.Debug("reading timer mode failed", slog.Any("error", err))
	} else if found {
		if m := Mode(strings.TrimSpace(v)); m.Valid() {
			mode = m
		} else {
			s.log.Debug("ignoring unknown timer mode", slog.String("mode", v))
		}
	}

	completed := 0

	v, found, err = s.db.Get(store.KeyCompletedSessions)
	if err != nil {
		s.log.Debug("reading completed sessions failed", slog.Any("error", err))
	} else if found {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err == nil && n >= 0 {
			completed = n
		} else {
			s.log.Debug("ignoring invalid completed sessions", slog.String("value", v))
		}
	}

	return mode, completed
}

func (s *DBState) SaveMode(mode Mode) error {
	return s.db.Set(store.KeyCurrentMode, string(mode))
}

func (s *DBState) SaveCompleted(completed int) error {
	return s.db.Set(store.KeyCompletedSessions, strconv.Itoa(completed))
}
