package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after an interval ends",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each interval",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Ambient sound to play during work sessions (see `zenfocus sounds`). Disable sound by setting to 'off'",
	}

	alertSoundFlag = &cli.StringFlag{
		Name:    "alert-sound",
		Aliases: []string{"as"},
		Usage:   "Sound to play when an interval ends: bell, chime or an audio file. Defaults to bell",
	}

	ambientOnBreakFlag = &cli.BoolFlag{
		Name:    "ambient-on-break",
		Aliases: []string{"aob"},
		Usage:   "Keep the ambient sound playing during breaks",
	}

	muteFlag = &cli.BoolFlag{
		Name:  "mute",
		Usage: "Start with every sound muted",
	}

	aggregatorFlag = &cli.StringFlag{
		Name:  "aggregator",
		Usage: "Base URL of the session aggregator service",
	}

	headlessFlag = &cli.BoolFlag{
		Name:  "headless",
		Usage: "Run the timer without the interactive interface and print each transition",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level: debug, info, warn or error",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Log at debug level and mirror logs to stderr outside the interactive interface",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	startFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Usage:   "Start of the reporting period (e.g. '2024-05-01', 'last monday'). Defaults to 7 days ago",
	}

	endFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Usage:   "End of the reporting period. Defaults to today",
	}

	workFlag = &cli.StringFlag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Work duration in minutes (1-120)",
	}

	shortBreakFlag = &cli.StringFlag{
		Name:    "short-break",
		Aliases: []string{"s"},
		Usage:   "Short break duration in minutes (1-30)",
	}

	longBreakFlag = &cli.StringFlag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Long break duration in minutes (1-60)",
	}

	longBreakIntervalFlag = &cli.StringFlag{
		Name:    "long-break-interval",
		Aliases: []string{"int"},
		Usage:   "The number of work sessions before a long break (2-10)",
	}

	interactiveFlag = &cli.BoolFlag{
		Name:    "interactive",
		Aliases: []string{"i"},
		Usage:   "Edit the settings in a form",
	}

	userFlag = &cli.StringFlag{
		Name:     "user",
		Aliases:  []string{"u"},
		Usage:    "User id placed in the token subject",
		Required: true,
	}

	nameFlag = &cli.StringFlag{
		Name:  "name",
		Usage: "Display name carried by the token",
	}
)
