// Package app wires the command-line interface
package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/zenfocus/internal/config"
)

// Get retrieves the zenfocus app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "zenfocus",
		Usage: `
		zenfocus is a Pomodoro timer for the command-line. Work sessions and breaks
		alternate automatically, completed sessions are counted across devices
		and your focus streaks are tracked day by day.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Metadata:             map[string]any{},
		Commands: []*cli.Command{
			{
				Name:  "settings",
				Usage: "Show or change the timer durations",
				Flags: []cli.Flag{
					workFlag,
					shortBreakFlag,
					longBreakFlag,
					longBreakIntervalFlag,
					interactiveFlag,
					jsonFlag,
				},
				Action: settingsAction,
			},
			{
				Name:   "stats",
				Usage:  "Show your totals, daily average and streaks",
				Flags:  []cli.Flag{jsonFlag},
				Action: statsAction,
			},
			{
				Name:   "activity",
				Usage:  "List completed work sessions per day. Defaults to the last 7 days",
				Flags:  []cli.Flag{startFlag, endFlag, jsonFlag},
				Action: activityAction,
			},
			{
				Name:      "chat",
				Usage:     "Ask the study assistant a question",
				ArgsUsage: "[message]",
				Action:    chatAction,
			},
			{
				Name:   "sounds",
				Usage:  "List the available ambient and alert sounds",
				Action: soundsAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the timer",
				Action: statusAction,
			},
			{
				Name:   "serve",
				Usage:  "Run the session aggregator service",
				Action: serveAction,
			},
			{
				Name:   "token",
				Usage:  "Issue an identity token for the aggregator service",
				Flags:  []cli.Flag{userFlag, nameFlag},
				Action: tokenAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
			disableNotificationFlag,
			soundFlag,
			alertSoundFlag,
			ambientOnBreakFlag,
			muteFlag,
			sessionCmdFlag,
			aggregatorFlag,
			headlessFlag,
			logLevelFlag,
			debugFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
