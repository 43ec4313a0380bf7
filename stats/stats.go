// Package stats derives streaks and averages from daily session records
package stats

import (
	"math"
	"slices"
	"strings"

	"github.com/ayoisaiah/zenfocus/activity"
	"github.com/ayoisaiah/zenfocus/internal/timeutil"
)

// maxStreakWalk caps how many days the current streak looks back.
const maxStreakWalk = 365

// Summary aggregates every record of a user.
type Summary struct {
	TotalSessions int     `json:"totalSessions"`
	TotalDays     int     `json:"totalDays"`
	AveragePerDay float64 `json:"averagePerDay"`
	CurrentStreak int     `json:"currentStreak"`
	LongestStreak int     `json:"longestStreak"`
}

// Compute derives a Summary from records. today is the caller's local date
// as YYYY-MM-DD.
func Compute(records []activity.Record, today string) Summary {
	var s Summary

	byDate := make(map[string]int, len(records))

	for _, r := range records {
		s.TotalSessions += r.SessionsCount
		byDate[r.Date] += r.SessionsCount
	}

	s.TotalDays = len(byDate)
	s.AveragePerDay = AveragePerDay(s.TotalSessions, s.TotalDays)
	s.CurrentStreak = CurrentStreak(byDate, today)
	s.LongestStreak = LongestStreak(records)

	return s
}

// AveragePerDay returns sessions per day rounded to two decimal places, or
// zero when there are no days.
func AveragePerDay(sessions, days int) float64 {
	if days == 0 {
		return 0
	}

	return math.Round(float64(sessions)/float64(days)*100) / 100
}

// CurrentStreak counts consecutive days with at least one session, walking
// back from today inclusive. It stops at the first day without sessions.
func CurrentStreak(countByDate map[string]int, today string) int {
	if !timeutil.ValidDate(today) {
		return 0
	}

	streak := 0
	day := today

	for range maxStreakWalk {
		if countByDate[day] <= 0 {
			break
		}

		streak++
		day = timeutil.AddDays(day, -1)
	}

	return streak
}

// LongestStreak scans records in date order and returns the longest run of
// records with a positive count. Only a zero-count record ends a run; a
// calendar day with no record at all does not.
func LongestStreak(records []activity.Record) int {
	sorted := slices.Clone(records)

	slices.SortStableFunc(sorted, func(a, b activity.Record) int {
		return strings.Compare(a.Date, b.Date)
	})

	longest, run := 0, 0

	for _, r := range sorted {
		if r.SessionsCount > 0 {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}

	return longest
}
