package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/zenfocus/internal/config"
	"github.com/ayoisaiah/zenfocus/internal/ui"
	"github.com/ayoisaiah/zenfocus/settings"
	"github.com/ayoisaiah/zenfocus/store"
)

// settingsAction shows the timer settings, or updates them from flags or an
// interactive form.
func settingsAction(ctx *cli.Context) error {
	e, err := getEnv(ctx)
	if err != nil {
		return err
	}

	db, err := e.localDB()
	if errors.Is(err, store.ErrAlreadyRunning) {
		return fmt.Errorf("%w: press 's' in the running timer to edit settings", err)
	}

	if err != nil {
		return err
	}

	st := settings.NewStore(db, e.log)
	current := st.Load()

	work, shortBreak, longBreak := current.Minutes()
	input := []string{
		strconv.Itoa(work),
		strconv.Itoa(shortBreak),
		strconv.Itoa(longBreak),
		strconv.Itoa(current.LongBreakInterval),
	}

	changed := false

	for i, name := range []string{"work", "short-break", "long-break", "long-break-interval"} {
		if ctx.IsSet(name) {
			input[i] = ctx.String(name)
			changed = true
		}
	}

	if ctx.Bool("interactive") {
		if err := settingsForm(input).Run(); err != nil {
			return err
		}

		changed = true
	}

	if changed {
		updated := settings.FromInput(input[0], input[1], input[2], input[3])
		if err := st.Save(updated); err != nil {
			return err
		}

		current = updated

		pterm.Success.Println("settings saved")
	}

	if ctx.Bool("json") {
		b, err := json.MarshalIndent(current, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	printSettings(current)

	return nil
}

func settingsForm(input []string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Work (minutes)").Value(&input[0]),
			huh.NewInput().Title("Short break (minutes)").Value(&input[1]),
			huh.NewInput().Title("Long break (minutes)").Value(&input[2]),
			huh.NewInput().Title("Long break interval").Value(&input[3]),
		),
	)
}

func printSettings(s settings.Settings) {
	work, shortBreak, longBreak := s.Minutes()

	ui.PrintTable([][]string{
		{"SETTING", "VALUE"},
		{"Work", fmt.Sprintf("%d min", work)},
		{"Short break", fmt.Sprintf("%d min", shortBreak)},
		{"Long break", fmt.Sprintf("%d min", longBreak)},
		{"Long break interval", strconv.Itoa(s.LongBreakInterval)},
	}, config.Stdout)
}
