package session

import "github.com/ayoisaiah/zenfocus/internal/apperr"

var (
	errNoAggregator = &apperr.Error{
		Message: "no aggregator configured (set aggregator.url)",
	}

	errUnexpectedUser = &apperr.Error{
		Message: "token belongs to %q, not %q",
	}

	errRequestFailed = &apperr.Error{
		Message: "aggregator request failed (%d): %s",
	}
)
