package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/zenfocus/internal/timeutil"
	"github.com/ayoisaiah/zenfocus/timer"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

func (m *Model) timerView() string {
	var s strings.Builder

	state := m.machine.State()
	interval := m.machine.Settings().LongBreakInterval

	s.WriteString(m.style.Modes[state.Mode].Render())

	switch {
	case state.Finished():
		s.WriteString(m.style.Secondary.Render(
			"[Finished] next: " + state.NextMode.Label(),
		))
	case !state.IsRunning:
		s.WriteString(m.style.Secondary.Render("[Paused]"))
	default:
		timeFormat := "03:04:05 PM"
		if m.twentyFourHr {
			timeFormat = "15:04:05"
		}

		end := m.now().Add(time.Duration(state.RemainingSeconds) * time.Second)
		s.WriteString(m.style.Hint.Render("until " + end.Format(timeFormat)))
	}

	if state.Mode == timer.Work {
		// sessions done in the current long break cycle
		cycle := state.CompletedWorkSessions%interval + 1

		s.WriteString(m.style.Hint.Render(fmt.Sprintf(" (%d/%d)", cycle, interval)))
	}

	percent := 1.0
	if total := m.machine.Duration(); total > 0 {
		percent = 1 - float64(state.RemainingSeconds)/float64(total)
	}

	s.WriteString("\n\n")
	s.WriteString(m.style.Main.Render(timeutil.FormatClock(state.RemainingSeconds)))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(percent))
	s.WriteString("\n\n")
	s.WriteString(m.style.Secondary.Render(
		fmt.Sprintf("Completed work sessions: %d", state.CompletedWorkSessions),
	))

	if line := m.soundLine(); line != "" {
		s.WriteString("\n")
		s.WriteString(m.style.Hint.Render(line))
	}

	if m.err != "" {
		s.WriteString("\n\n")
		s.WriteString(m.style.Error.Render(m.err))
	}

	s.WriteString("\n\n")
	s.WriteString(m.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.reset,
		defaultKeymap.work,
		defaultKeymap.shortBreak,
		defaultKeymap.longBreak,
		defaultKeymap.ambient,
		defaultKeymap.mute,
		defaultKeymap.settings,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (m *Model) soundLine() string {
	if m.ambience == nil {
		return ""
	}

	track := m.ambience.Track()
	if track == "" {
		track = "off"
	}

	line := "Ambient: " + track
	if m.player != nil && m.player.Muted() {
		line += " (muted)"
	}

	return line
}

func (m *Model) settingsView() string {
	return m.form.View() + "\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.esc,
	})
}

func (m *Model) View() string {
	if m.form != nil {
		return m.style.Base.Render(m.settingsView())
	}

	return m.style.Base.Render(m.timerView())
}
