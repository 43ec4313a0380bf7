package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data", "zenfocus.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	return c, path
}

func TestClientRoundTrip(t *testing.T) {
	c, path := newTestClient(t)

	_, found, err := c.Get(KeyCurrentMode)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(KeyCurrentMode, "shortBreak"))
	require.NoError(t, c.Set(KeyCompletedSessions, "3"))
	require.NoError(t, c.Close())

	c, err = NewClient(path)
	require.NoError(t, err)

	defer c.Close()

	v, found, err := c.Get(KeyCurrentMode)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "shortBreak", v)

	require.NoError(t, c.Delete(KeyCompletedSessions))

	_, found, err = c.Get(KeyCompletedSessions)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClientLocked(t *testing.T) {
	c, path := newTestClient(t)
	defer c.Close()

	_, err := NewClient(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadyRunning))
}

func TestMemory(t *testing.T) {
	var db DB = NewMemory()

	require.NoError(t, db.Set(KeySettings, "{}"))

	v, found, err := db.Get(KeySettings)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "{}", v)

	require.NoError(t, db.Delete(KeySettings))

	_, found, _ = db.Get(KeySettings)
	assert.False(t, found)
}
