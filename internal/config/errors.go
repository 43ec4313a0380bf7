package config

import "github.com/ayoisaiah/zenfocus/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errDecodeConfig = &apperr.Error{
		Message: "decoding config failed",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errInvalidTickInterval = &apperr.Error{
		Message: "tick interval must be between %v and %v",
	}

	errInvalidSettleDelay = &apperr.Error{
		Message: "settle delay must be between 0 and %v",
	}

	errInvalidURL = &apperr.Error{
		Message: "%s must be an http(s) URL, got %q",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %s",
	}

	errInvalidMaxTokens = &apperr.Error{
		Message: "chat max_tokens must be positive",
	}

	errInvalidTemperature = &apperr.Error{
		Message: "chat temperature must be between 0 and 2, got %v",
	}

	errInvalidTimeout = &apperr.Error{
		Message: "%s timeout must be positive",
	}
)
