// Package tui is the interactive terminal interface for the timer
package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/zenfocus/settings"
	"github.com/ayoisaiah/zenfocus/sound"
	"github.com/ayoisaiah/zenfocus/timer"
)

type (
	// SettingsSaver persists edited settings. A successful Save is expected
	// to apply them to the machine.
	SettingsSaver interface {
		Save(s settings.Settings) error
	}

	// Muter silences the player.
	Muter interface {
		SetMuted(muted bool)
		Muted() bool
	}

	// TrackCycler picks the ambient track after the current one.
	TrackCycler interface {
		Next(current string) string
	}
)

// Options configures the model.
type Options struct {
	Machine      *timer.Machine
	Settings     SettingsSaver
	Ambience     *sound.Ambience
	Tracks       TrackCycler
	Player       Muter
	Log          *slog.Logger
	Now          func() time.Time
	StatusFile   string
	TickInterval time.Duration
	DarkTheme    bool
	TwentyFourHr bool
	Debug        bool
}

type tickMsg time.Time

// Model is the bubbletea model. It owns the machine for the lifetime of the
// program; every call to it happens on the event loop.
type Model struct {
	machine      *timer.Machine
	settings     SettingsSaver
	ambience     *sound.Ambience
	tracks       TrackCycler
	player       Muter
	log          *slog.Logger
	now          func() time.Time
	form         *huh.Form
	fields       *settingsFields
	lastState    timer.State
	style        Style
	err          string
	statusFile   string
	help         help.Model
	progress     progress.Model
	tickInterval time.Duration
	twentyFourHr bool
	debug        bool
}

func New(opts Options) *Model {
	if opts.Log == nil {
		opts.Log = slog.Default()
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.TickInterval <= 0 {
		opts.TickInterval = timer.DefaultTickInterval
	}

	return &Model{
		machine:      opts.Machine,
		settings:     opts.Settings,
		ambience:     opts.Ambience,
		tracks:       opts.Tracks,
		player:       opts.Player,
		log:          opts.Log,
		now:          opts.Now,
		statusFile:   opts.StatusFile,
		tickInterval: opts.TickInterval,
		twentyFourHr: opts.TwentyFourHr,
		debug:        opts.Debug,
		style:        NewStyle(opts.DarkTheme),
		help:         help.New(),
		progress:     progress.New(progress.WithDefaultGradient()),
	}
}

func (m *Model) Init() tea.Cmd {
	m.afterChange()

	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// afterChange brings the ambient sound and the status file in line with the
// machine. It is cheap when nothing changed.
func (m *Model) afterChange() {
	cur := m.machine.State()
	if cur == m.lastState {
		return
	}

	m.lastState = cur

	if m.ambience != nil {
		m.ambience.Sync(cur.Mode.IsBreak(), cur.IsRunning)
	}

	if m.statusFile == "" {
		return
	}

	status := timer.NewStatus(cur, m.machine.Settings().LongBreakInterval, m.now())
	if err := timer.WriteStatusFile(m.statusFile, status); err != nil {
		m.log.Warn("writing status file failed", slog.Any("error", err))
	}
}
