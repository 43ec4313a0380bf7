package sound

import (
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/zenfocus/internal/logging"
)

// fakeOutput drains every played streamer on a goroutine as the speaker would.
type fakeOutput struct {
	initErr error
	played  int
	closed  bool
	mu      sync.Mutex
}

func (f *fakeOutput) Init(beep.SampleRate, int) error { return f.initErr }

func (f *fakeOutput) Play(streams ...beep.Streamer) {
	f.mu.Lock()
	f.played += len(streams)
	f.mu.Unlock()

	for _, s := range streams {
		go func() {
			buf := make([][2]float64, 512)

			for range 1000 {
				f.mu.Lock()
				_, ok := s.Stream(buf)
				f.mu.Unlock()

				if !ok {
					return
				}
			}
		}()
	}
}

func (f *fakeOutput) Lock()   { f.mu.Lock() }
func (f *fakeOutput) Unlock() { f.mu.Unlock() }
func (f *fakeOutput) Close()  { f.closed = true }

func TestCatalogueNames(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"rain10.mp3", "rain2.ogg", "notes.txt", "cafe.wav"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	c, err := NewCatalogue(dir, map[string]string{
		"forest": "https://example.com/forest.mp3",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"bell", "brown_noise", "cafe", "chime", "forest", "rain2", "rain10", "white_noise",
	}, c.Names())

	forest, ok := c.Resolve("forest")
	require.True(t, ok)
	assert.Equal(t, KindURL, forest.Kind)

	rain, ok := c.Resolve("rain2")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "rain2.ogg"), rain.Source)

	_, ok = c.Resolve("notes")
	assert.False(t, ok)

	custom, ok := c.Resolve("/tmp/alarm.flac")
	require.True(t, ok)
	assert.Equal(t, KindFile, custom.Kind)
}

func TestCatalogueMissingDir(t *testing.T) {
	c, err := NewCatalogue(filepath.Join(t.TempDir(), "absent"), nil)
	require.NoError(t, err)
	assert.Len(t, c.Names(), 4)
}

func TestCatalogueNextSkipsTones(t *testing.T) {
	c, err := NewCatalogue("", nil)
	require.NoError(t, err)

	assert.Equal(t, BrownNoise, c.Next(""))
	assert.Equal(t, WhiteNoise, c.Next(BrownNoise))
	assert.Equal(t, "", c.Next(WhiteNoise))
}

func TestGeneratedNoiseStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	buf := make([][2]float64, 4096)

	for _, s := range []beep.Streamer{whiteNoise(rng), brownNoise(rng)} {
		n, ok := s.Stream(buf)
		require.True(t, ok)
		require.Equal(t, len(buf), n)

		for _, sample := range buf {
			assert.LessOrEqual(t, sample[0], 1.0)
			assert.GreaterOrEqual(t, sample[0], -1.0)
		}
	}
}

func TestAlertToneIsFinite(t *testing.T) {
	for _, name := range []string{Bell, Chime} {
		s, err := alertTone(name, SampleRate)
		require.NoError(t, err)

		total := 0
		buf := make([][2]float64, 1024)

		for {
			n, ok := s.Stream(buf)
			total += n

			if !ok {
				break
			}
		}

		assert.Positive(t, total)
		assert.LessOrEqual(t, total, SampleRate.N(time.Second))
	}
}

func TestPlayerAlertWaitsForTone(t *testing.T) {
	c, err := NewCatalogue("", nil)
	require.NoError(t, err)

	out := &fakeOutput{}
	p := NewPlayer(c, WithOutput(out), WithLogger(logging.Discard()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, p.Alert(ctx, Bell))
	assert.ErrorIs(t, p.Alert(ctx, WhiteNoise), errNotAlert)
	assert.ErrorIs(t, p.Alert(ctx, "nope"), errUnknownTrack)

	p.Close()
	assert.True(t, out.closed)
}

func TestPlayerAmbient(t *testing.T) {
	c, err := NewCatalogue("", nil)
	require.NoError(t, err)

	out := &fakeOutput{}
	p := NewPlayer(c, WithOutput(out))

	require.NoError(t, p.PlayAmbient(BrownNoise))
	require.NoError(t, p.PlayAmbient(BrownNoise))
	assert.Equal(t, BrownNoise, p.Current())

	out.mu.Lock()
	assert.Equal(t, 1, out.played)
	out.mu.Unlock()

	p.SetMuted(true)
	assert.NoError(t, p.Alert(context.Background(), Bell), "muted alerts are skipped")

	assert.ErrorIs(t, p.PlayAmbient(Bell), errUnknownTrack)

	p.StopAmbient()
	assert.Empty(t, p.Current())
}

func TestPlayerWithoutDevice(t *testing.T) {
	c, err := NewCatalogue("", nil)
	require.NoError(t, err)

	out := &fakeOutput{initErr: assert.AnError}
	p := NewPlayer(c, WithOutput(out))

	assert.ErrorIs(t, p.PlayAmbient(WhiteNoise), assert.AnError)
	assert.ErrorIs(t, p.Alert(context.Background(), Bell), assert.AnError)

	p.Close()
	assert.False(t, out.closed)
}

type recordingAmbient struct {
	err     error
	playing string
	plays   int
}

func (r *recordingAmbient) PlayAmbient(name string) error {
	r.plays++
	if r.err != nil {
		return r.err
	}

	r.playing = name

	return nil
}

func (r *recordingAmbient) StopAmbient() { r.playing = "" }

func TestAmbienceSync(t *testing.T) {
	cases := []struct {
		name     string
		track    string
		expected string
		onBreak  bool
		isBreak  bool
		running  bool
	}{
		{name: "work running", track: "rain", running: true, expected: "rain"},
		{name: "work paused", track: "rain"},
		{name: "break without ambient", track: "rain", isBreak: true, running: true},
		{
			name:     "break with ambient",
			track:    "rain",
			onBreak:  true,
			isBreak:  true,
			running:  true,
			expected: "rain",
		},
		{name: "off", running: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			player := &recordingAmbient{}
			a := NewAmbience(player, tc.track, tc.onBreak, logging.Discard())

			a.Sync(tc.isBreak, tc.running)
			assert.Equal(t, tc.expected, player.playing)
		})
	}
}

func TestAmbienceGivesUpOnFailure(t *testing.T) {
	player := &recordingAmbient{err: assert.AnError}
	a := NewAmbience(player, "rain", false, logging.Discard())

	a.Sync(false, true)
	a.Sync(false, true)

	assert.Equal(t, 1, player.plays)
	assert.Empty(t, a.Track())
}
