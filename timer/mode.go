package timer

import "github.com/ayoisaiah/zenfocus/settings"

// Mode identifies the kind of interval being timed.
type Mode string

const (
	Work       Mode = "work"
	ShortBreak Mode = "shortBreak"
	LongBreak  Mode = "longBreak"
)

// Modes lists every mode in display order.
var Modes = []Mode{Work, ShortBreak, LongBreak}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case Work, ShortBreak, LongBreak:
		return true
	}

	return false
}

// IsBreak reports whether m is a short or long break.
func (m Mode) IsBreak() bool {
	return m == ShortBreak || m == LongBreak
}

// Label returns a human readable name for m.
func (m Mode) Label() string {
	switch m {
	case Work:
		return "Work session"
	case ShortBreak:
		return "Short break"
	case LongBreak:
		return "Long break"
	}

	return string(m)
}

// Duration returns the configured length of m in seconds.
func (m Mode) Duration(s settings.Settings) int {
	switch m {
	case ShortBreak:
		return s.ShortBreakDuration
	case LongBreak:
		return s.LongBreakDuration
	default:
		return s.WorkDuration
	}
}
