package settings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/zenfocus/internal/logging"
	"github.com/ayoisaiah/zenfocus/store"
)

type failingDB struct {
	store.DB
}

func (failingDB) Get(string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}

func TestLoad(t *testing.T) {
	testCases := []struct {
		Name   string
		Stored string
		Want   Settings
	}{
		{
			Name: "nothing stored",
			Want: Defaults(),
		},
		{
			Name:   "complete document",
			Stored: `{"workTime":3000,"shortBreakTime":600,"longBreakTime":1200,"longBreakInterval":3}`,
			Want:   Settings{3000, 600, 1200, 3},
		},
		{
			Name:   "partial document keeps defaults for missing fields",
			Stored: `{"workTime":3000}`,
			Want:   Settings{3000, 300, 900, 4},
		},
		{
			Name:   "corrupt data",
			Stored: `{"workTime":`,
			Want:   Defaults(),
		},
		{
			Name:   "out of range values",
			Stored: `{"workTime":-5,"longBreakInterval":1}`,
			Want:   Defaults(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			db := store.NewMemory()
			if tc.Stored != "" {
				require.NoError(t, db.Set(store.KeySettings, tc.Stored))
			}

			s := NewStore(db, logging.Discard())

			assert.Equal(t, tc.Want, s.Load())
		})
	}
}

func TestLoadReadError(t *testing.T) {
	s := NewStore(failingDB{}, logging.Discard())

	assert.Equal(t, Defaults(), s.Load())
}

func TestSave(t *testing.T) {
	db := store.NewMemory()
	s := NewStore(db, logging.Discard())

	var notified []Settings

	s.OnChange(func(v Settings) {
		notified = append(notified, v)
	})

	want := Settings{3000, 600, 1200, 3}
	require.NoError(t, s.Save(want))

	raw, found, err := db.Get(store.KeySettings)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"workTime":3000,"shortBreakTime":600,"longBreakTime":1200,"longBreakInterval":3}`, raw)

	assert.Equal(t, want, s.Load())
	assert.Equal(t, []Settings{want}, notified)
}

func TestSaveRejectsInvalid(t *testing.T) {
	db := store.NewMemory()
	s := NewStore(db, logging.Discard())

	called := false

	s.OnChange(func(Settings) { called = true })

	err := s.Save(Settings{0, 300, 900, 4})
	require.Error(t, err)
	assert.ErrorIs(t, err, errInvalidDuration)

	err = s.Save(Settings{1500, 300, 900, 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, errInvalidInterval)

	_, found, _ := db.Get(store.KeySettings)
	assert.False(t, found)
	assert.False(t, called)
}

func TestFromInput(t *testing.T) {
	testCases := []struct {
		Name                         string
		Work, Short, Long, Interval string
		Want                         Settings
	}{
		{
			Name: "values within range",
			Work: "50", Short: "10", Long: "20", Interval: "3",
			Want: Settings{3000, 600, 1200, 3},
		},
		{
			Name: "non-numeric input becomes the minimum",
			Work: "abc", Short: "", Long: "x", Interval: "four",
			Want: Settings{60, 60, 60, 2},
		},
		{
			Name: "values are clamped",
			Work: "500", Short: "0", Long: "61", Interval: "11",
			Want: Settings{7200, 60, 3600, 10},
		},
		{
			Name: "whitespace is ignored",
			Work: " 25 ", Short: "5", Long: "15", Interval: " 4",
			Want: Defaults(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := FromInput(tc.Work, tc.Short, tc.Long, tc.Interval)
			assert.Equal(t, tc.Want, got)
			assert.NoError(t, got.Validate())
		})
	}
}
