package audio

import (
	"fmt"
	"math"
)

const twoPi = 2 * math.Pi

type osc struct {
	fn    func(float64) float64
	phase float64
}

func (o *osc) setWaveform(s string) error {
	switch s {
	case "sine":
		o.fn = math.Sin
	case "saw":
		o.fn = func(phase float64) float64 {
			return (2.0 * phase / twoPi) - 1.
		}
	case "square":
		o.fn = func(phase float64) float64 {
			if phase <= math.Pi {
				return 1.0
			}
			return -1.0
		}
	case "off":
		o.fn = func(float64) float64 { return 0 }
	default:
		return fmt.Errorf("not a valid waveform type: %v", s)
	}
	return nil
}

// next produces one sample and advances the phase by freq.
func (o *osc) next(freq float64) float64 {
	v := o.fn(o.phase)
	o.phase += freq * twoPi / SampleRate
	if o.phase >= twoPi {
		o.phase -= twoPi
	}
	return v
}
