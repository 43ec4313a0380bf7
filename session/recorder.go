package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/zenfocus/internal/identity"
	"github.com/ayoisaiah/zenfocus/internal/timeutil"
)

const defaultRecordTimeout = 10 * time.Second

// Recorder reports each completed work session to an Aggregator without
// blocking the caller. Failures are logged and dropped.
type Recorder struct {
	agg     Aggregator
	ids     identity.Provider
	log     *slog.Logger
	now     func() time.Time
	wg      sync.WaitGroup
	timeout time.Duration
}

// NewRecorder returns a Recorder. A nil aggregator disables reporting.
func NewRecorder(
	agg Aggregator,
	ids identity.Provider,
	timeout time.Duration,
	log *slog.Logger,
) *Recorder {
	if timeout <= 0 {
		timeout = defaultRecordTimeout
	}

	if log == nil {
		log = slog.Default()
	}

	return &Recorder{
		agg:     agg,
		ids:     ids,
		log:     log,
		now:     time.Now,
		timeout: timeout,
	}
}

// Record reports one completion for today's local date. completed is the
// running total on this device and is only logged.
func (r *Recorder) Record(completed int) {
	if r.agg == nil {
		return
	}

	user, ok := r.ids.Current()
	if !ok {
		r.log.Debug("not signed in, session not recorded", slog.Int("completed", completed))
		return
	}

	date := timeutil.Today(r.now())

	r.wg.Add(1)

	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		id, err := r.agg.RecordCompletion(ctx, user.ID, date)
		if err != nil {
			r.log.Warn(
				"recording work session failed",
				slog.String("user", user.ID),
				slog.String("date", date),
				slog.Any("error", err),
			)

			return
		}

		r.log.Info(
			"work session recorded",
			slog.String("id", id),
			slog.String("date", date),
			slog.Int("completed", completed),
		)
	}()
}

// Close waits for in-flight reports to finish.
func (r *Recorder) Close() {
	r.wg.Wait()
}
