package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/zenfocus/internal/logging"
	"github.com/ayoisaiah/zenfocus/store"
)

func TestDBStateLoad(t *testing.T) {
	testCases := []struct {
		Name          string
		Mode          string
		Completed     string
		WantMode      Mode
		WantCompleted int
	}{
		{
			Name:     "nothing stored",
			WantMode: Work,
		},
		{
			Name:          "valid values",
			Mode:          "shortBreak",
			Completed:     "5",
			WantMode:      ShortBreak,
			WantCompleted: 5,
		},
		{
			Name:          "unknown mode",
			Mode:          "siesta",
			Completed:     "2",
			WantMode:      Work,
			WantCompleted: 2,
		},
		{
			Name:      "non-numeric count",
			Mode:      "longBreak",
			Completed: "many",
			WantMode:  LongBreak,
		},
		{
			Name:      "negative count",
			Completed: "-3",
			WantMode:  Work,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			db := store.NewMemory()

			if tc.Mode != "" {
				require.NoError(t, db.Set(store.KeyCurrentMode, tc.Mode))
			}

			if tc.Completed != "" {
				require.NoError(t, db.Set(store.KeyCompletedSessions, tc.Completed))
			}

			mode, completed := NewDBState(db, logging.Discard()).Load()

			assert.Equal(t, tc.WantMode, mode)
			assert.Equal(t, tc.WantCompleted, completed)
		})
	}
}

func TestDBStateSave(t *testing.T) {
	db := store.NewMemory()
	s := NewDBState(db, logging.Discard())

	require.NoError(t, s.SaveMode(LongBreak))
	require.NoError(t, s.SaveCompleted(12))

	mode, _, _ := db.Get(store.KeyCurrentMode)
	count, _, _ := db.Get(store.KeyCompletedSessions)

	assert.Equal(t, "longBreak", mode)
	assert.Equal(t, "12", count)
}
