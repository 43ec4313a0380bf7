// Package config loads zenfocus configuration from the config file,
// environment variables and command-line flags
package config

import (
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Timer         TimerConfig        `mapstructure:"timer"`
		Sound         SoundConfig        `mapstructure:"sound"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		Identity      IdentityConfig     `mapstructure:"identity"`
		Aggregator    AggregatorConfig   `mapstructure:"aggregator"`
		Server        ServerConfig       `mapstructure:"server"`
		Chat          ChatConfig         `mapstructure:"chat"`
		Log           LogConfig          `mapstructure:"log"`
		CLI           CLIConfig          `mapstructure:"-"`
	}

	// TimerConfig controls how the state machine is driven.
	TimerConfig struct {
		SessionCmd     string        `mapstructure:"session_cmd"`
		SettleDelay    time.Duration `mapstructure:"settle_delay"`
		TickInterval   time.Duration `mapstructure:"tick_interval"`
		AutoStartBreak bool          `mapstructure:"auto_start_break"`
		AutoStartWork  bool          `mapstructure:"auto_start_work"`
	}

	// SoundConfig holds ambient and alert sound settings.
	SoundConfig struct {
		Tracks         map[string]string `mapstructure:"tracks"`
		Ambient        string            `mapstructure:"ambient"`
		Alert          string            `mapstructure:"alert"`
		AmbientOnBreak bool              `mapstructure:"ambient_on_break"`
		Muted          bool              `mapstructure:"muted"`
	}

	// NotificationConfig holds desktop notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// IdentityConfig describes the signed-in user.
	IdentityConfig struct {
		Token     string `mapstructure:"token"`
		Name      string `mapstructure:"name"`
		AvatarURL string `mapstructure:"avatar_url"`
	}

	// AggregatorConfig points the client at the session aggregator service.
	AggregatorConfig struct {
		URL     string        `mapstructure:"url"`
		Timeout time.Duration `mapstructure:"timeout"`
	}

	// ServerConfig configures the aggregator service started by `serve`.
	ServerConfig struct {
		Addr        string        `mapstructure:"addr"`
		DBPath      string        `mapstructure:"db_path"`
		JWTSecret   string        `mapstructure:"jwt_secret"`
		CORSOrigins []string      `mapstructure:"cors_origins"`
		TokenTTL    time.Duration `mapstructure:"token_ttl"`
	}

	// ChatConfig configures the chat completions endpoint.
	ChatConfig struct {
		Endpoint     string        `mapstructure:"endpoint"`
		APIKey       string        `mapstructure:"api_key"`
		Bearer       string        `mapstructure:"bearer"`
		SystemPrompt string        `mapstructure:"system_prompt"`
		MaxTokens    int           `mapstructure:"max_tokens"`
		Temperature  float64       `mapstructure:"temperature"`
		Timeout      time.Duration `mapstructure:"timeout"`
	}

	// LogConfig configures the log file.
	LogConfig struct {
		Level      string `mapstructure:"level"`
		MaxSizeMB  int    `mapstructure:"max_size_mb"`
		MaxBackups int    `mapstructure:"max_backups"`
	}

	// CLIConfig holds values that only come from command-line flags.
	CLIConfig struct {
		ConfigPath string
		Headless   bool
		Debug      bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
