package sound

import "log/slog"

// Ambient is the part of Player that Ambience drives.
type Ambient interface {
	PlayAmbient(name string) error
	StopAmbient()
}

// Ambience keeps the background track in step with the timer: it plays while
// a work interval runs, and during breaks only when onBreak is set.
type Ambience struct {
	player  Ambient
	log     *slog.Logger
	track   string
	onBreak bool
}

func NewAmbience(p Ambient, track string, onBreak bool, log *slog.Logger) *Ambience {
	if log == nil {
		log = slog.Default()
	}

	return &Ambience{
		player:  p,
		track:   track,
		onBreak: onBreak,
		log:     log,
	}
}

// Track returns the selected track, or "" when ambient sound is off.
func (a *Ambience) Track() string {
	return a.track
}

// SetTrack selects a new track. The caller must Sync afterwards.
func (a *Ambience) SetTrack(name string) {
	if name == a.track {
		return
	}

	a.player.StopAmbient()
	a.track = name
}

// Sync starts or stops the background track for the given timer state.
func (a *Ambience) Sync(isBreak, running bool) {
	if a.track == "" || !running || (isBreak && !a.onBreak) {
		a.player.StopAmbient()
		return
	}

	if err := a.player.PlayAmbient(a.track); err != nil {
		a.log.Warn(
			"unable to play ambient sound",
			slog.String("track", a.track),
			slog.Any("error", err),
		)

		// don't retry on every tick
		a.track = ""
	}
}
