package sound

import (
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
)

// whiteNoise returns an endless stream of uniform noise at a comfortable
// volume.
func whiteNoise(rng *rand.Rand) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := (rng.Float64()*2 - 1) * 0.3
			samples[i][0] = v
			samples[i][1] = v
		}

		return len(samples), true
	})
}

// brownNoise integrates white noise into a deeper rumble.
func brownNoise(rng *rand.Rand) beep.Streamer {
	var last float64

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			last = (last + 0.02*(rng.Float64()*2-1)) / 1.02
			v := last * 3.5

			samples[i][0] = v
			samples[i][1] = v
		}

		return len(samples), true
	})
}

// tone is a sine wave of the given length that fades out linearly.
func tone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}

	total := sr.N(d)

	return fadeOut(beep.Take(total, sine), total, 0.5), nil
}

func fadeOut(s beep.Streamer, total int, gain float64) beep.Streamer {
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)

		for i := range samples[:n] {
			k := gain * (1 - float64(pos)/float64(total))
			samples[i][0] *= k
			samples[i][1] *= k
			pos++
		}

		return n, ok
	})
}

// alertTone builds the named built-in alert.
func alertTone(name string, sr beep.SampleRate) (beep.Streamer, error) {
	switch name {
	case Chime:
		high, err := tone(sr, 1046.5, 350*time.Millisecond)
		if err != nil {
			return nil, err
		}

		low, err := tone(sr, 784, 600*time.Millisecond)
		if err != nil {
			return nil, err
		}

		return beep.Seq(high, low), nil
	default:
		return tone(sr, 880, 900*time.Millisecond)
	}
}
