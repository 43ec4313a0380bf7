package sound

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// SampleRate is the rate every stream is resampled to before playback.
const SampleRate = beep.SampleRate(44100)

const fetchTimeout = 30 * time.Second

// Output is the audio device.
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
	Close()
}

type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerOutput) Lock()                   { speaker.Lock() }
func (speakerOutput) Unlock()                 { speaker.Unlock() }

func (speakerOutput) Close() {
	speaker.Clear()
	speaker.Close()
}

// Player owns the audio device. The device is opened on first use so that
// machines without audio only fail when a sound is actually requested.
type Player struct {
	out       Output
	catalogue *Catalogue
	fetch     *fetcher
	log       *slog.Logger
	rng       *rand.Rand
	ambient   *beep.Ctrl
	buffers   map[string]*beep.Buffer
	initErr   error
	current   string
	mu        sync.Mutex
	initOnce  sync.Once
	muted     bool
	opened    bool
}

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithOutput replaces the system speaker.
func WithOutput(out Output) PlayerOption {
	return func(p *Player) {
		p.out = out
	}
}

// WithCacheDir stores downloaded tracks in dir.
func WithCacheDir(dir string) PlayerOption {
	return func(p *Player) {
		p.fetch.cacheDir = dir
	}
}

func WithLogger(l *slog.Logger) PlayerOption {
	return func(p *Player) {
		p.log = l
	}
}

func NewPlayer(c *Catalogue, opts ...PlayerOption) *Player {
	p := &Player{
		out:       speakerOutput{},
		catalogue: c,
		fetch:     &fetcher{client: &http.Client{Timeout: fetchTimeout}},
		log:       slog.Default(),
		rng:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		buffers:   make(map[string]*beep.Buffer),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Catalogue returns the tracks the player can resolve.
func (p *Player) Catalogue() *Catalogue {
	return p.catalogue
}

func (p *Player) init() error {
	p.initOnce.Do(func() {
		p.initErr = p.out.Init(SampleRate, SampleRate.N(time.Second/10))
		p.opened = p.initErr == nil
	})

	return p.initErr
}

// Current returns the ambient track that is playing, or "".
func (p *Player) Current() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.current
}

// SetMuted silences or restores every sound.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = muted

	if p.ambient != nil {
		p.out.Lock()
		p.ambient.Paused = muted
		p.out.Unlock()
	}
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.muted
}

// PlayAmbient loops the named track in the background, replacing whatever
// was playing. Playing the current track again is a no-op.
func (p *Player) PlayAmbient(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if name == p.current && p.ambient != nil {
		return nil
	}

	t, ok := p.catalogue.Resolve(name)
	if !ok || !t.Ambient() {
		return errUnknownTrack.Fmt(name)
	}

	if err := p.init(); err != nil {
		return err
	}

	s, err := p.loop(t)
	if err != nil {
		return err
	}

	p.stopLocked()

	p.ambient = &beep.Ctrl{Streamer: s, Paused: p.muted}
	p.current = name
	p.out.Play(p.ambient)

	p.log.Debug("ambient sound started", slog.String("track", name))

	return nil
}

// StopAmbient stops the background track.
func (p *Player) StopAmbient() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.ambient == nil {
		return
	}

	p.out.Lock()
	p.ambient.Streamer = nil
	p.out.Unlock()

	p.ambient = nil
	p.current = ""
}

// Alert plays the named sound once and returns when it has finished.
func (p *Player) Alert(ctx context.Context, name string) error {
	p.mu.Lock()

	if p.muted || name == "" {
		p.mu.Unlock()
		return nil
	}

	t, ok := p.catalogue.Resolve(name)
	if !ok {
		p.mu.Unlock()
		return errUnknownTrack.Fmt(name)
	}

	if t.Kind == KindNoise {
		p.mu.Unlock()
		return errNotAlert.Fmt(name)
	}

	if err := p.init(); err != nil {
		p.mu.Unlock()
		return err
	}

	s, err := p.once(t)

	p.mu.Unlock()

	if err != nil {
		return err
	}

	done := make(chan struct{})

	p.out.Play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.StopAmbient()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.opened {
		p.out.Close()
		p.opened = false
	}
}

func (p *Player) loop(t Track) (beep.Streamer, error) {
	switch t.Kind {
	case KindNoise:
		if t.Name == BrownNoise {
			return brownNoise(p.rng), nil
		}

		return whiteNoise(p.rng), nil
	default:
		buf, err := p.buffer(t)
		if err != nil {
			return nil, err
		}

		return beep.Loop(-1, buf.Streamer(0, buf.Len())), nil
	}
}

func (p *Player) once(t Track) (beep.Streamer, error) {
	if t.Kind == KindTone {
		return alertTone(t.Name, SampleRate)
	}

	buf, err := p.buffer(t)
	if err != nil {
		return nil, err
	}

	return buf.Streamer(0, buf.Len()), nil
}

func (p *Player) buffer(t Track) (*beep.Buffer, error) {
	if buf, ok := p.buffers[t.Source]; ok {
		return buf, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	rc, ext, err := p.fetch.open(ctx, t)
	if err != nil {
		return nil, err
	}

	buf, err := decode(rc, ext, beep.Format{
		SampleRate:  SampleRate,
		NumChannels: 2,
		Precision:   2,
	})
	if err != nil {
		return nil, err
	}

	p.buffers[t.Source] = buf

	return buf, nil
}
