package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/zenfocus/settings"
	"github.com/ayoisaiah/zenfocus/timer"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.debug {
		if _, ok := msg.(tickMsg); !ok {
			m.log.Debug("tui message", slog.String("msg", spew.Sdump(msg)))
		}
	}

	switch msg := msg.(type) {
	case tickMsg:
		m.machine.Advance(m.now())
		m.afterChange()

		return m, m.tick()

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd

	case tea.KeyMsg:
		if m.form != nil {
			return m.handleFormKey(msg)
		}

		return m.handleKeyPress(msg)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = ""

	switch {
	case key.Matches(msg, defaultKeymap.quit):
		m.afterChange()

		return m, tea.Quit

	case key.Matches(msg, defaultKeymap.togglePlay):
		m.machine.Toggle()

	case key.Matches(msg, defaultKeymap.reset):
		m.machine.Reset()

	case key.Matches(msg, defaultKeymap.work):
		_ = m.machine.SwitchMode(timer.Work)

	case key.Matches(msg, defaultKeymap.shortBreak):
		_ = m.machine.SwitchMode(timer.ShortBreak)

	case key.Matches(msg, defaultKeymap.longBreak):
		_ = m.machine.SwitchMode(timer.LongBreak)

	case key.Matches(msg, defaultKeymap.ambient):
		if m.ambience == nil || m.tracks == nil {
			break
		}

		m.ambience.SetTrack(m.tracks.Next(m.ambience.Track()))
		// force a sync with the new track
		m.lastState = timer.State{}

	case key.Matches(msg, defaultKeymap.mute):
		if m.player != nil {
			m.player.SetMuted(!m.player.Muted())
		}

	case key.Matches(msg, defaultKeymap.settings):
		if m.settings == nil {
			break
		}

		m.fields = newSettingsFields(m.machine.Settings())
		m.form = m.fields.form()

		m.afterChange()

		return m, m.form.Init()
	}

	m.afterChange()

	return m, nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, defaultKeymap.esc) {
		m.form = nil
		m.fields = nil

		return m, nil
	}

	return m.updateForm(msg)
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.applyForm()
		m.form = nil
		m.fields = nil

		return m, nil

	case huh.StateAborted:
		m.form = nil
		m.fields = nil

		return m, nil

	case huh.StateNormal:
	}

	return m, cmd
}

func (m *Model) applyForm() {
	s := m.fields.settings()

	if err := m.settings.Save(s); err != nil {
		m.err = err.Error()
		m.log.Warn("saving settings failed", slog.Any("error", err))

		return
	}

	m.afterChange()
}

// settingsFields backs the settings form. Durations are edited in minutes.
type settingsFields struct {
	work, shortBreak, longBreak, interval string
}

func newSettingsFields(s settings.Settings) *settingsFields {
	work, shortBreak, longBreak := s.Minutes()

	return &settingsFields{
		work:       itoa(work),
		shortBreak: itoa(shortBreak),
		longBreak:  itoa(longBreak),
		interval:   itoa(s.LongBreakInterval),
	}
}

func (f *settingsFields) form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Work (minutes)").
				Description("1 to 120").
				Value(&f.work),
			huh.NewInput().
				Title("Short break (minutes)").
				Description("1 to 30").
				Value(&f.shortBreak),
			huh.NewInput().
				Title("Long break (minutes)").
				Description("1 to 60").
				Value(&f.longBreak),
			huh.NewInput().
				Title("Long break interval").
				Description("work sessions between long breaks, 2 to 10").
				Value(&f.interval),
		),
	).WithShowHelp(true)
}

func (f *settingsFields) settings() settings.Settings {
	return settings.FromInput(f.work, f.shortBreak, f.longBreak, f.interval)
}
