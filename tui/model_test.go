package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/zenfocus/internal/logging"
	"github.com/ayoisaiah/zenfocus/settings"
	"github.com/ayoisaiah/zenfocus/sound"
	"github.com/ayoisaiah/zenfocus/store"
	"github.com/ayoisaiah/zenfocus/timer"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func (c *clock) add(d time.Duration) { c.t = c.t.Add(d) }

type savedSettings struct {
	*settings.Store
	saved []settings.Settings
}

func newSavedSettings(machine *timer.Machine) *savedSettings {
	s := &savedSettings{
		Store: settings.NewStore(store.NewMemory(), logging.Discard()),
	}

	s.OnChange(machine.ApplySettings)
	s.OnChange(func(v settings.Settings) {
		s.saved = append(s.saved, v)
	})

	return s
}

type fakeAmbient struct {
	playing string
}

func (f *fakeAmbient) PlayAmbient(name string) error {
	f.playing = name
	return nil
}

func (f *fakeAmbient) StopAmbient() { f.playing = "" }

type fakeMuter struct {
	muted bool
}

func (f *fakeMuter) SetMuted(m bool) { f.muted = m }
func (f *fakeMuter) Muted() bool     { return f.muted }

type testModel struct {
	*Model
	clock    *clock
	ambient  *fakeAmbient
	muter    *fakeMuter
	settings *savedSettings
}

func newTestModel(t *testing.T) *testModel {
	t.Helper()

	c := &clock{t: time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)}

	machine := timer.New(
		settings.Defaults(),
		timer.WithClock(c.now),
		timer.WithLogger(logging.Discard()),
	)

	catalogue, err := sound.NewCatalogue("", nil)
	require.NoError(t, err)

	amb := &fakeAmbient{}
	muter := &fakeMuter{}
	saver := newSavedSettings(machine)

	m := New(Options{
		Machine:    machine,
		Settings:   saver,
		Ambience:   sound.NewAmbience(amb, sound.BrownNoise, false, logging.Discard()),
		Tracks:     catalogue,
		Player:     muter,
		Log:        logging.Discard(),
		Now:        c.now,
		StatusFile: filepath.Join(t.TempDir(), "status.json"),
	})

	m.Init()

	return &testModel{Model: m, clock: c, ambient: amb, muter: muter, settings: saver}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func (tm *testModel) send(msg tea.Msg) tea.Cmd {
	_, cmd := tm.Update(msg)
	return cmd
}

func TestToggleAndTick(t *testing.T) {
	tm := newTestModel(t)

	tm.send(tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, tm.machine.State().IsRunning)
	assert.Equal(t, sound.BrownNoise, tm.ambient.playing, "ambient plays while working")

	tm.clock.add(3 * time.Second)
	cmd := tm.send(tickMsg(tm.clock.t))
	assert.NotNil(t, cmd, "ticks keep coming")
	assert.Equal(t, 1497, tm.machine.State().RemainingSeconds)

	tm.send(tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, tm.machine.State().IsRunning)
	assert.Empty(t, tm.ambient.playing)

	status, found, err := timer.ReadStatusFile(tm.statusFile)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1497, status.RemainingSeconds)
	assert.False(t, status.IsRunning)
}

func TestModeKeys(t *testing.T) {
	tm := newTestModel(t)

	tm.send(runeKey('3'))
	assert.Equal(t, timer.LongBreak, tm.machine.State().Mode)
	assert.Equal(t, 900, tm.machine.State().RemainingSeconds)

	tm.send(runeKey('2'))
	assert.Equal(t, timer.ShortBreak, tm.machine.State().Mode)

	tm.send(tea.KeyMsg{Type: tea.KeySpace})
	assert.Empty(t, tm.ambient.playing, "no ambient sound on breaks")

	tm.clock.add(10 * time.Second)
	tm.send(tickMsg(tm.clock.t))
	tm.send(runeKey('r'))
	assert.Equal(t, 300, tm.machine.State().RemainingSeconds)
	assert.False(t, tm.machine.State().IsRunning)

	tm.send(runeKey('1'))
	assert.Equal(t, timer.Work, tm.machine.State().Mode)
}

func TestAmbientAndMuteKeys(t *testing.T) {
	tm := newTestModel(t)

	tm.send(tea.KeyMsg{Type: tea.KeySpace})
	tm.send(runeKey('a'))
	assert.Equal(t, sound.WhiteNoise, tm.ambient.playing)

	tm.send(runeKey('a'))
	assert.Empty(t, tm.ambient.playing, "cycling past the last track turns sound off")

	tm.send(runeKey('m'))
	assert.True(t, tm.muter.muted)
	assert.Contains(t, tm.View(), "(muted)")
}

func TestSettingsForm(t *testing.T) {
	tm := newTestModel(t)

	tm.send(runeKey('s'))
	require.NotNil(t, tm.form)

	tm.send(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, tm.form)

	tm.send(runeKey('s'))
	tm.fields.work = "50"
	tm.fields.shortBreak = "abc"
	tm.fields.interval = "99"
	tm.applyForm()

	require.Len(t, tm.settings.saved, 1)
	assert.Equal(t, settings.Settings{
		WorkDuration:       3000,
		ShortBreakDuration: 60,
		LongBreakDuration:  900,
		LongBreakInterval:  10,
	}, tm.settings.saved[0])
	assert.Equal(t, 3000, tm.machine.State().RemainingSeconds)
}

func TestQuit(t *testing.T) {
	tm := newTestModel(t)

	cmd := tm.send(runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestView(t *testing.T) {
	tm := newTestModel(t)

	view := tm.View()
	assert.Contains(t, view, "Work session")
	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "[Paused]")
	assert.Contains(t, view, "(1/4)")
	assert.Contains(t, view, "Ambient: brown_noise")
}
