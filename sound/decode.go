package sound

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// decode reads an entire audio file into a buffer at the player's format.
func decode(rc io.ReadCloser, ext string, format beep.Format) (*beep.Buffer, error) {
	var (
		stream beep.StreamSeekCloser
		src    beep.Format
		err    error
	)

	switch strings.ToLower(ext) {
	case ".ogg":
		stream, src, err = vorbis.Decode(rc)
	case ".mp3":
		stream, src, err = mp3.Decode(rc)
	case ".flac":
		stream, src, err = flac.Decode(rc)
	case ".wav":
		stream, src, err = wav.Decode(rc)
	default:
		_ = rc.Close()
		return nil, errInvalidSoundFormat.Fmt(ext)
	}

	if err != nil {
		_ = rc.Close()
		return nil, err
	}

	defer stream.Close()

	buf := beep.NewBuffer(format)

	var s beep.Streamer = stream
	if src.SampleRate != format.SampleRate {
		s = beep.Resample(4, src.SampleRate, format.SampleRate, stream)
	}

	buf.Append(s)

	if err := stream.Err(); err != nil {
		return nil, err
	}

	return buf, nil
}

// fetcher loads file and URL tracks. Downloaded tracks are kept in cacheDir.
type fetcher struct {
	client   *http.Client
	cacheDir string
}

func (f *fetcher) open(ctx context.Context, t Track) (io.ReadCloser, string, error) {
	if t.Kind != KindURL {
		file, err := os.Open(t.Source)
		if err != nil {
			return nil, "", err
		}

		return file, filepath.Ext(t.Source), nil
	}

	u, err := url.Parse(t.Source)
	if err != nil {
		return nil, "", err
	}

	ext := filepath.Ext(u.Path)

	cached := f.cachePath(t.Source, ext)
	if cached != "" {
		if file, err := os.Open(cached); err == nil {
			return file, ext, nil
		}
	}

	b, err := f.download(ctx, t.Source)
	if err != nil {
		return nil, "", err
	}

	if cached != "" {
		if err := os.MkdirAll(f.cacheDir, 0o750); err == nil {
			_ = os.WriteFile(cached, b, 0o600)
		}
	}

	return io.NopCloser(bytes.NewReader(b)), ext, nil
}

func (f *fetcher) cachePath(source, ext string) string {
	if f.cacheDir == "" {
		return ""
	}

	sum := sha256.Sum256([]byte(source))

	return filepath.Join(f.cacheDir, hex.EncodeToString(sum[:8])+ext)
}

func (f *fetcher) download(ctx context.Context, source string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading track: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errDownload.Fmt(source, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
