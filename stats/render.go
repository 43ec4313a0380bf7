package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/zenfocus/activity"
	"github.com/ayoisaiah/zenfocus/internal/timeutil"
	"github.com/ayoisaiah/zenfocus/internal/ui"
)

const (
	barChartChar  = "▇"
	noSessionsMsg = "No sessions found for the specified time range"
	maxChartDays  = 31
)

// WriteJSON writes s as indented JSON.
func WriteJSON(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(s)
}

func getSummary(s Summary) string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	sessions := fmt.Sprintln("Sessions completed:", ui.Green(s.TotalSessions))
	days := fmt.Sprintln("Days with sessions:", ui.Green(s.TotalDays))
	avg := fmt.Sprintln(
		"Average per day:",
		ui.Green(fmt.Sprintf("%.2f", s.AveragePerDay)),
	)

	return header + sessions + days + avg
}

func getStreaks(s Summary) string {
	header := fmt.Sprintf("\n%s\n", ui.Blue("Streaks"))

	current := fmt.Sprintln("Current streak:", ui.Green(days(s.CurrentStreak)))
	longest := fmt.Sprintln("Longest streak:", ui.Green(days(s.LongestStreak)))

	return header + current + longest
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}

	return fmt.Sprintf("%d days", n)
}

// Show prints the summary for the user named name.
func Show(w io.Writer, name string, s Summary) {
	title := "Focus statistics"
	if name != "" {
		title += " for " + name
	}

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintln(title)

	output := fmt.Sprint(
		header,
		getSummary(s),
		getStreaks(s),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}

// getBarChart draws one bar per day between start and end, including days
// without sessions.
func getBarChart(records []activity.Record, start, end string) string {
	counts := make(map[string]int, len(records))
	for _, r := range records {
		counts[r.Date] += r.SessionsCount
	}

	var bars pterm.Bars

	if timeutil.AddDays(start, maxChartDays) <= end {
		return ""
	}

	for day := start; day != "" && day <= end; day = timeutil.AddDays(day, 1) {
		t, _ := time.Parse(timeutil.DateLayout, day)

		bars = append(bars, pterm.Bar{
			Value: counts[day],
			Label: t.Format("Jan 02, 2006"),
		})
	}

	if len(bars) == 0 {
		return ""
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return ui.Blue("\nDaily breakdown (sessions)") + chart
}

// ShowActivity prints the records between start and end as a table followed
// by a daily bar chart.
func ShowActivity(w io.Writer, records []activity.Record, start, end string) {
	if len(records) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return
	}

	tableBody := [][]string{
		{"#", "DATE", "SESSIONS"},
	}

	for i, r := range records {
		tableBody = append(tableBody, []string{
			fmt.Sprintf("%d", i+1),
			r.Date,
			ui.Green(r.SessionsCount),
		})
	}

	ui.PrintTable(tableBody, w)

	fmt.Fprintln(w, getBarChart(records, start, end))
}
