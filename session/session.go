// Package session reports completed work sessions to the aggregator service
// and queries the recorded activity
package session

import (
	"context"

	"github.com/ayoisaiah/zenfocus/activity"
	"github.com/ayoisaiah/zenfocus/stats"
)

// Aggregator stores per-day session counts for each user.
type Aggregator interface {
	// RecordCompletion adds one completed work session to the user's record
	// for date and returns the record id
	RecordCompletion(ctx context.Context, userID, date string) (string, error)
	// QueryRange returns the user's records dated between start and end
	// inclusive
	QueryRange(ctx context.Context, userID, start, end string) ([]activity.Record, error)
	// QueryStats returns the user's summary relative to today
	QueryStats(ctx context.Context, userID, today string) (stats.Summary, error)
}
