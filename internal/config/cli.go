package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	AmbientSound   string
	AlertSound     string
	SessionCmd     string
	Aggregator     string
	LogLevel       string
	DisableNotify  bool
	AmbientOnBreak bool
	Mute           bool
	Headless       bool
	Debug          bool
}

// WithCLIConfig returns an Option that applies command-line flags on top of
// the file configuration. Unset flags leave the existing values untouched.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			AmbientSound:   ctx.String("sound"),
			AlertSound:     ctx.String("alert-sound"),
			SessionCmd:     ctx.String("session-cmd"),
			Aggregator:     ctx.String("aggregator"),
			LogLevel:       ctx.String("log-level"),
			DisableNotify:  ctx.Bool("disable-notification"),
			AmbientOnBreak: ctx.Bool("ambient-on-break"),
			Mute:           ctx.Bool("mute"),
			Headless:       ctx.Bool("headless"),
			Debug:          ctx.Bool("debug"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.AmbientSound != "" {
		if opts.AmbientSound == "off" {
			c.Sound.Ambient = ""
		} else {
			c.Sound.Ambient = opts.AmbientSound
		}
	}

	if opts.AlertSound != "" {
		if opts.AlertSound == "off" {
			c.Sound.Alert = ""
		} else {
			c.Sound.Alert = opts.AlertSound
		}
	}

	if opts.SessionCmd != "" {
		c.Timer.SessionCmd = opts.SessionCmd
	}

	if opts.Aggregator != "" {
		c.Aggregator.URL = opts.Aggregator
	}

	if opts.LogLevel != "" {
		c.Log.Level = opts.LogLevel
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.AmbientOnBreak {
		c.Sound.AmbientOnBreak = true
	}

	if opts.Mute {
		c.Sound.Muted = true
	}

	c.CLI.Headless = opts.Headless
	c.CLI.Debug = opts.Debug

	if opts.Debug {
		c.Log.Level = "debug"
	}
}
