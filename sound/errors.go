package sound

import "github.com/ayoisaiah/zenfocus/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "unsupported audio format %q: use mp3, ogg, flac, or wav",
	}

	errUnknownTrack = &apperr.Error{
		Message: "unknown track %q (run `zenfocus sounds` to list tracks)",
	}

	errDownload = &apperr.Error{
		Message: "downloading %s failed with status %d",
	}

	errNotAlert = &apperr.Error{
		Message: "%q is a looping track and cannot be used as an alert",
	}
)
