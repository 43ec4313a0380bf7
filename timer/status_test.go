package timer

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusRemaining(t *testing.T) {
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	running := NewStatus(State{
		Mode:             Work,
		RemainingSeconds: 600,
		IsRunning:        true,
	}, 4, now)

	assert.Equal(t, 600, running.Remaining(now))
	assert.Equal(t, 540, running.Remaining(now.Add(time.Minute)))
	assert.Equal(t, 0, running.Remaining(now.Add(time.Hour)))

	paused := NewStatus(State{
		Mode:             ShortBreak,
		RemainingSeconds: 120,
	}, 4, now)

	assert.True(t, paused.EndTime.IsZero())
	assert.Equal(t, 120, paused.Remaining(now.Add(time.Hour)))
}

func TestStatusFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")

	_, found, err := ReadStatusFile(path)
	require.NoError(t, err)
	assert.False(t, found)

	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	want := NewStatus(State{
		Mode:                  Work,
		RemainingSeconds:      1200,
		IsRunning:             true,
		CompletedWorkSessions: 3,
	}, 4, now)

	require.NoError(t, WriteStatusFile(path, want))

	got, found, err := ReadStatusFile(path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, want.EndTime.Equal(got.EndTime))
	assert.Equal(t, want.Completed, got.Completed)
	assert.Equal(t, want.Mode, got.Mode)
}
