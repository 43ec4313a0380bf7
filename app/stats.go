package app

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/zenfocus/internal/apperr"
	"github.com/ayoisaiah/zenfocus/internal/config"
	"github.com/ayoisaiah/zenfocus/internal/timeutil"
	"github.com/ayoisaiah/zenfocus/stats"
)

const defaultActivityDays = 7

var errInvalidPeriod = &apperr.Error{
	Message: "the start date (%s) is after the end date (%s)",
}

// statsAction fetches streak statistics from the aggregator.
func statsAction(ctx *cli.Context) error {
	e, err := getEnv(ctx)
	if err != nil {
		return err
	}

	client, user, err := e.aggregator()
	if err != nil {
		return err
	}

	spinner, _ := pterm.DefaultSpinner.WithRemoveWhenDone().Start("Fetching statistics...")

	summary, err := client.QueryStats(ctx.Context, user.ID, timeutil.Today(time.Now()))

	_ = spinner.Stop()

	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return stats.WriteJSON(config.Stdout, summary)
	}

	stats.Show(config.Stdout, user.Name, summary)

	return nil
}

// activityAction lists the per-day session counts in a period.
func activityAction(ctx *cli.Context) error {
	e, err := getEnv(ctx)
	if err != nil {
		return err
	}

	now := time.Now()

	start := timeutil.AddDays(timeutil.Today(now), -(defaultActivityDays - 1))
	end := timeutil.Today(now)

	if v := ctx.String("start"); v != "" {
		if start, err = timeutil.ParseDate(v, now); err != nil {
			return err
		}
	}

	if v := ctx.String("end"); v != "" {
		if end, err = timeutil.ParseDate(v, now); err != nil {
			return err
		}
	}

	if start > end {
		return errInvalidPeriod.Fmt(start, end)
	}

	client, user, err := e.aggregator()
	if err != nil {
		return err
	}

	records, err := client.QueryRange(ctx.Context, user.ID, start, end)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return writeJSON(records)
	}

	stats.ShowActivity(config.Stdout, records, start, end)

	return nil
}
