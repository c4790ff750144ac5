package main

import (
	"fmt"
	"os"

	wav "github.com/youpy/go-wav"

	"github.com/patricklittle/duotone/audio"
	"github.com/patricklittle/duotone/score"
)

// renderLine renders a melody offline to a 16-bit stereo wav file, driving
// a fresh transport directly instead of going through portaudio.
func renderLine(line string, bpm float64, path string) error {
	steps, err := score.Parse(line)
	if err != nil {
		return err
	}

	transport := audio.NewTransport()
	synth, err := audio.NewDuoSynth(transport, audio.DefaultConfig())
	if err != nil {
		return err
	}
	defer synth.Dispose()

	end := scheduleSteps(transport, synth, steps, bpm, 0)
	numSamples := uint32(end * audio.SampleRate)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := wav.NewWriter(f, numSamples, 2, audio.SampleRate, 16)

	const (
		block = 256
		scale = 1<<15 - 1
	)
	var (
		left    = make([]float32, block)
		right   = make([]float32, block)
		samples = make([]wav.Sample, block)
	)
	for written := uint32(0); written < numSamples; {
		for i := range left {
			left[i] = 0.
			right[i] = 0.
		}
		transport.Tick(block)
		synth.Process([][]float32{left, right})

		n := uint32(block)
		if remaining := numSamples - written; remaining < n {
			n = remaining
		}
		for i := uint32(0); i < n; i++ {
			samples[i].Values[0] = int(left[i] * scale)
			samples[i].Values[1] = int(right[i] * scale)
		}
		if err := w.WriteSamples(samples[:n]); err != nil {
			return err
		}
		written += n
	}

	fmt.Printf("wrote %s: %.2fs at %d Hz\n", path, end, audio.SampleRate)
	return nil
}
