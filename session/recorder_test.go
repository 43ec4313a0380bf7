package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/zenfocus/activity"
	"github.com/ayoisaiah/zenfocus/internal/identity"
	"github.com/ayoisaiah/zenfocus/internal/logging"
	"github.com/ayoisaiah/zenfocus/stats"
)

type fakeAggregator struct {
	err   error
	calls []string
	mu    sync.Mutex
}

func (f *fakeAggregator) RecordCompletion(_ context.Context, userID, date string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, userID+"@"+date)

	return "id", f.err
}

func (f *fakeAggregator) QueryRange(context.Context, string, string, string) ([]activity.Record, error) {
	return nil, nil
}

func (f *fakeAggregator) QueryStats(context.Context, string, string) (stats.Summary, error) {
	return stats.Summary{}, nil
}

func TestRecorderRecordsWithLocalDate(t *testing.T) {
	agg := &fakeAggregator{}
	r := NewRecorder(agg, testIdentity(t), time.Second, logging.Discard())
	r.now = func() time.Time {
		return time.Date(2025, 3, 4, 23, 30, 0, 0, time.Local)
	}

	r.Record(1)
	r.Record(2)
	r.Close()

	assert.Equal(t, []string{"user-1@2025-03-04", "user-1@2025-03-04"}, agg.calls)
}

func TestRecorderSkipsUnauthenticated(t *testing.T) {
	agg := &fakeAggregator{}
	r := NewRecorder(agg, identity.NewStatic("", "", ""), time.Second, logging.Discard())

	r.Record(1)
	r.Close()

	assert.Empty(t, agg.calls)
}

func TestRecorderSwallowsFailures(t *testing.T) {
	agg := &fakeAggregator{err: errors.New("connection refused")}
	r := NewRecorder(agg, testIdentity(t), time.Second, logging.Discard())

	assert.NotPanics(t, func() {
		r.Record(1)
		r.Close()
	})
	assert.Len(t, agg.calls, 1)
}

func TestRecorderWithoutAggregator(t *testing.T) {
	r := NewRecorder(nil, testIdentity(t), 0, nil)

	r.Record(1)
	r.Close()
}
