package config

import (
	"net/url"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

var (
	minTickInterval = 10 * time.Millisecond
	maxTickInterval = time.Second
	maxSettleDelay  = time.Minute

	validSoundExts = []string{".mp3", ".ogg", ".flac", ".wav"}
	validLogLevels = []string{"debug", "info", "warn", "error"}

	// generated sounds that have no file extension
	builtinSounds = []string{"bell", "chime", "white_noise", "brown_noise"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateTimer(); err != nil {
		return err
	}

	if err := c.validateSound(); err != nil {
		return err
	}

	if err := c.validateEndpoints(); err != nil {
		return err
	}

	if err := c.validateChat(); err != nil {
		return err
	}

	if !slices.Contains(validLogLevels, strings.ToLower(c.Log.Level)) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	return nil
}

func (c *Config) validateTimer() error {
	if c.Timer.TickInterval < minTickInterval ||
		c.Timer.TickInterval > maxTickInterval {
		return errInvalidTickInterval.Fmt(minTickInterval, maxTickInterval)
	}

	if c.Timer.SettleDelay < 0 || c.Timer.SettleDelay > maxSettleDelay {
		return errInvalidSettleDelay.Fmt(maxSettleDelay)
	}

	return nil
}

func (c *Config) validateSound() error {
	if err := validateSoundName(c.Sound.Alert); err != nil {
		return err
	}

	// Ambient names may refer to configured tracks or files in the sounds
	// directory, which are resolved when playback starts.
	if _, ok := c.Sound.Tracks[c.Sound.Ambient]; ok {
		return nil
	}

	return validateSoundName(c.Sound.Ambient)
}

// validateSoundName accepts built-in sounds, bare track names and audio files
// with a supported extension.
func validateSoundName(name string) error {
	if name == "" || slices.Contains(builtinSounds, name) {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return nil
	}

	if !slices.Contains(validSoundExts, ext) {
		return errInvalidSoundFormat.Fmt(name)
	}

	return nil
}

func (c *Config) validateEndpoints() error {
	if err := validateHTTPURL("aggregator url", c.Aggregator.URL); err != nil {
		return err
	}

	if c.Aggregator.Timeout <= 0 {
		return errInvalidTimeout.Fmt("aggregator")
	}

	return validateHTTPURL("chat endpoint", c.Chat.Endpoint)
}

func (c *Config) validateChat() error {
	if c.Chat.MaxTokens <= 0 {
		return errInvalidMaxTokens
	}

	if c.Chat.Temperature < 0 || c.Chat.Temperature > 2 {
		return errInvalidTemperature.Fmt(c.Chat.Temperature)
	}

	if c.Chat.Timeout <= 0 {
		return errInvalidTimeout.Fmt("chat")
	}

	return nil
}

// validateHTTPURL allows an empty value, which disables the feature.
func validateHTTPURL(field, raw string) error {
	if raw == "" {
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") ||
		u.Host == "" {
		return errInvalidURL.Fmt(field, raw)
	}

	return nil
}
