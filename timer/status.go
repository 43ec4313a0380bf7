package timer

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"time"
)

// Status is written to disk by a running instance so that other processes
// can report on it while the database is locked.
type Status struct {
	UpdatedAt         time.Time `json:"updated_at"`
	EndTime           time.Time `json:"end_time,omitempty"`
	Mode              Mode      `json:"mode"`
	NextMode          Mode      `json:"next_mode,omitempty"`
	RemainingSeconds  int       `json:"remaining_seconds"`
	Completed         int       `json:"completed"`
	LongBreakInterval int       `json:"long_break_interval"`
	IsRunning         bool      `json:"is_running"`
}

// NewStatus builds a Status from a machine snapshot taken at now.
func NewStatus(s State, longBreakInterval int, now time.Time) Status {
	st := Status{
		UpdatedAt:         now,
		Mode:              s.Mode,
		NextMode:          s.NextMode,
		RemainingSeconds:  s.RemainingSeconds,
		Completed:         s.CompletedWorkSessions,
		LongBreakInterval: longBreakInterval,
		IsRunning:         s.IsRunning,
	}

	if s.IsRunning {
		st.EndTime = now.Add(time.Duration(s.RemainingSeconds) * time.Second)
	}

	return st
}

// Remaining returns the seconds left at now, counting down from EndTime
// while the timer runs.
func (s Status) Remaining(now time.Time) int {
	if !s.IsRunning {
		return s.RemainingSeconds
	}

	left := int(s.EndTime.Sub(now).Round(time.Second) / time.Second)

	return max(left, 0)
}

// WriteStatusFile stores s at path.
func WriteStatusFile(path string, s Status) (err error) {
	statusFile, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		ferr := statusFile.Close()
		if ferr != nil && err == nil {
			err = ferr
		}
	}()

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(statusFile)

	_, err = writer.Write(b)
	if err != nil {
		return err
	}

	return writer.Flush()
}

// ReadStatusFile loads the status written by a running instance. A missing
// file yields found == false and no error.
func ReadStatusFile(path string) (s Status, found bool, err error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, false, nil
	}

	if err != nil {
		return s, false, err
	}

	err = json.Unmarshal(b, &s)
	if err != nil {
		return s, false, err
	}

	return s, true, nil
}
