package timer

import "github.com/ayoisaiah/zenfocus/internal/apperr"

var (
	errUnknownMode = &apperr.Error{
		Message: "unknown timer mode: %q",
	}

	errRunnerStopped = &apperr.Error{
		Message: "timer is not running",
	}
)
