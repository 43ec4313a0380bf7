package stats

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/zenfocus/activity"
	"github.com/ayoisaiah/zenfocus/internal/testutil"
	"github.com/ayoisaiah/zenfocus/internal/timeutil"
)

type goldenCase struct {
	Name       string
	GoldenFile string
	Snapshot   []byte
}

func (g goldenCase) Output() ([]byte, string) {
	return g.Snapshot, g.GoldenFile
}

func rec(date string, count int) activity.Record {
	return activity.Record{Date: date, SessionsCount: count, UserID: "user-1"}
}

func TestAveragePerDay(t *testing.T) {
	assert.InDelta(t, 4.0, AveragePerDay(3+5, 2), 0)
	assert.InDelta(t, 0.0, AveragePerDay(0, 0), 0)
	assert.InDelta(t, 2.33, AveragePerDay(7, 3), 0)
	assert.InDelta(t, 1.67, AveragePerDay(5, 3), 0)
}

func TestCompute(t *testing.T) {
	testCases := []struct {
		Name    string
		Records []activity.Record
		Today   string
		Want    Summary
	}{
		{
			Name:  "no records",
			Today: "2024-05-10",
			Want:  Summary{},
		},
		{
			Name:    "two days",
			Records: []activity.Record{rec("2024-05-09", 3), rec("2024-05-10", 5)},
			Today:   "2024-05-10",
			Want: Summary{
				TotalSessions: 8,
				TotalDays:     2,
				AveragePerDay: 4,
				CurrentStreak: 2,
				LongestStreak: 2,
			},
		},
		{
			Name: "today and yesterday but not two days ago",
			Records: []activity.Record{
				rec("2024-05-07", 2),
				rec("2024-05-09", 1),
				rec("2024-05-10", 1),
			},
			Today: "2024-05-10",
			Want: Summary{
				TotalSessions: 4,
				TotalDays:     3,
				AveragePerDay: 1.33,
				CurrentStreak: 2,
				LongestStreak: 3,
			},
		},
		{
			Name:    "nothing today",
			Records: []activity.Record{rec("2024-05-08", 1), rec("2024-05-09", 1)},
			Today:   "2024-05-10",
			Want: Summary{
				TotalSessions: 2,
				TotalDays:     2,
				AveragePerDay: 1,
				CurrentStreak: 0,
				LongestStreak: 2,
			},
		},
		{
			Name: "zero count day breaks both streaks",
			Records: []activity.Record{
				rec("2024-05-10", 2),
				rec("2024-05-07", 4),
				rec("2024-05-09", 0),
				rec("2024-05-08", 1),
			},
			Today: "2024-05-10",
			Want: Summary{
				TotalSessions: 7,
				TotalDays:     4,
				AveragePerDay: 1.75,
				CurrentStreak: 1,
				LongestStreak: 2,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Want, Compute(tc.Records, tc.Today))
		})
	}
}

// A calendar gap between two records does not end the longest streak; only a
// record with a zero count does.
func TestLongestStreakIgnoresDateGaps(t *testing.T) {
	records := []activity.Record{
		rec("2024-01-01", 1),
		rec("2024-01-05", 1),
		rec("2024-03-20", 2),
	}

	assert.Equal(t, 3, LongestStreak(records))
	assert.Equal(t, 0, CurrentStreak(map[string]int{"2024-03-20": 2}, "2024-03-22"))
}

func TestCurrentStreakIsCapped(t *testing.T) {
	counts := make(map[string]int)

	day := "2024-12-31"
	for range 400 {
		counts[day] = 1
		day = timeutil.AddDays(day, -1)
	}

	assert.Equal(t, 365, CurrentStreak(counts, "2024-12-31"))
	assert.Equal(t, 0, CurrentStreak(counts, "garbage"))
}

func TestLongestStreakDoesNotReorderInput(t *testing.T) {
	records := []activity.Record{rec("2024-05-10", 1), rec("2024-05-01", 1)}

	LongestStreak(records)

	assert.Equal(t, "2024-05-10", records[0].Date)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer

	s := Compute([]activity.Record{
		rec("2024-05-08", 2),
		rec("2024-05-09", 3),
		rec("2024-05-10", 2),
	}, "2024-05-10")

	require.NoError(t, WriteJSON(&buf, s))

	testutil.CompareGoldenFile(t, goldenCase{
		Name:       "summary json",
		GoldenFile: "summary_json",
		Snapshot:   buf.Bytes(),
	})
}

func TestShowKeepsPercentInName(t *testing.T) {
	var buf bytes.Buffer

	Show(&buf, "Ada 100%", Compute([]activity.Record{rec("2024-05-10", 2)}, "2024-05-10"))

	out := buf.String()
	assert.Contains(t, out, "Focus statistics for Ada 100%")
	assert.NotContains(t, out, "%!")
}
