package audio

import "math"

// Lowpass filter based on https://www.w3.org/2011/audio/audio-eq-cookbook.html
type filter struct {
	b0, b1, b2 float64
	a1, a2     float64

	// state
	y1, y2 float64 // y[n-1] y[n-2]
}

func (f *filter) setCutoff(freq float64) {
	// keep the cutoff in a stable range below nyquist
	if max := SampleRate * 0.45; freq > max {
		freq = max
	}
	if freq < 10 {
		freq = 10
	}

	omega := twoPi * freq / SampleRate
	cos := math.Cos(omega)
	sin := math.Sin(omega)

	const q = 1
	alpha := sin / (2. * q)
	a0 := 1 + alpha

	f.b0 = (1 - cos) / 2 / a0
	f.b1 = (1 - cos) / a0
	f.b2 = f.b0
	f.a1 = -2 * cos / a0
	f.a2 = (1 - alpha) / a0
}

func (f *filter) process(buf []float64) {
	for n := range buf {
		in := buf[n]
		out := f.b0*in + f.y1
		buf[n] = out
		f.y1 = f.b1*in - f.a1*out + f.y2
		f.y2 = f.b2*in - f.a2*out
	}
}

func (f *filter) reset() {
	f.y1 = 0.
	f.y2 = 0.
}
