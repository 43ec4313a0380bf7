// Package sound plays ambient tracks and alert tones
package sound

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/zenfocus/internal/pathutil"
)

// Kind describes where a track's audio comes from.
type Kind string

const (
	KindNoise Kind = "generated"
	KindTone  Kind = "tone"
	KindFile  Kind = "file"
	KindURL   Kind = "url"
)

const (
	WhiteNoise = "white_noise"
	BrownNoise = "brown_noise"
	Bell       = "bell"
	Chime      = "chime"
)

var supportedExts = []string{".mp3", ".ogg", ".flac", ".wav"}

// Track is a named sound source.
type Track struct {
	Name   string
	Source string
	Kind   Kind
}

// Ambient reports whether the track is suitable for looping in the
// background.
func (t Track) Ambient() bool {
	return t.Kind != KindTone
}

// Catalogue is the set of known tracks.
type Catalogue struct {
	tracks map[string]Track
}

// NewCatalogue collects the generated sounds, the audio files in dir and the
// configured tracks. A configured track overrides a file of the same name.
func NewCatalogue(dir string, configured map[string]string) (*Catalogue, error) {
	c := &Catalogue{
		tracks: map[string]Track{
			WhiteNoise: {Name: WhiteNoise, Kind: KindNoise},
			BrownNoise: {Name: BrownNoise, Kind: KindNoise},
			Bell:       {Name: Bell, Kind: KindTone},
			Chime:      {Name: Chime, Kind: KindTone},
		},
	}

	if dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}

		for _, e := range entries {
			if e.IsDir() || !supported(e.Name()) {
				continue
			}

			name := pathutil.StripExtension(e.Name())
			c.tracks[name] = Track{
				Name:   name,
				Source: filepath.Join(dir, e.Name()),
				Kind:   KindFile,
			}
		}
	}

	for name, src := range configured {
		c.tracks[name] = newTrack(name, src)
	}

	return c, nil
}

// Names lists every track in natural order.
func (c *Catalogue) Names() []string {
	names := make([]string, 0, len(c.tracks))
	for name := range c.tracks {
		names = append(names, name)
	}

	slices.SortFunc(names, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		default:
			return 0
		}
	})

	return names
}

// Tracks returns every track in natural order of name.
func (c *Catalogue) Tracks() []Track {
	names := c.Names()

	tracks := make([]Track, 0, len(names))
	for _, name := range names {
		tracks = append(tracks, c.tracks[name])
	}

	return tracks
}

// Resolve finds a track by name. A name that is not in the catalogue but
// looks like a path or URL to a supported audio file is accepted as is.
func (c *Catalogue) Resolve(name string) (Track, bool) {
	if t, ok := c.tracks[name]; ok {
		return t, true
	}

	if supported(name) {
		return newTrack(name, name), true
	}

	return Track{}, false
}

// Next returns the ambient track after current, or "" after the last one.
// An empty current starts from the first track.
func (c *Catalogue) Next(current string) string {
	var ambient []string

	for _, name := range c.Names() {
		if c.tracks[name].Ambient() {
			ambient = append(ambient, name)
		}
	}

	if len(ambient) == 0 {
		return ""
	}

	i := slices.Index(ambient, current)
	if i == len(ambient)-1 {
		return ""
	}

	return ambient[i+1]
}

func newTrack(name, src string) Track {
	kind := KindFile
	if isURL(src) {
		kind = KindURL
	}

	return Track{Name: name, Source: src, Kind: kind}
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func supported(name string) bool {
	if isURL(name) {
		name = strings.SplitN(name, "?", 2)[0]
	}

	return slices.Contains(supportedExts, strings.ToLower(filepath.Ext(name)))
}
