package main

import (
	"fmt"
	"log"
	"math"

	"github.com/rakyll/portmidi"

	"github.com/patricklittle/duotone/audio"
)

// listenMIDI maps note on/off events from the default MIDI input onto the
// synth. The synth is monophonic: the most recent note-on wins, and only
// releasing that note stops the sound.
func listenMIDI(synth *audio.DuoSynth) (func(), error) {
	if err := portmidi.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize portmidi: %w", err)
	}
	id := portmidi.DefaultInputDeviceID()
	if id < 0 {
		portmidi.Terminate()
		return nil, fmt.Errorf("no MIDI input device found")
	}
	in, err := portmidi.NewInputStream(id, 64)
	if err != nil {
		portmidi.Terminate()
		return nil, fmt.Errorf("open MIDI input: %w", err)
	}

	go func() {
		held := int64(-1)
		for ev := range in.Listen() {
			status := ev.Status & 0xF0
			switch {
			case status == 0x90 && ev.Data2 > 0:
				if err := synth.Frequency().SetValue(midiToFreq(ev.Data1)); err != nil {
					log.Printf("midi: %v", err)
					continue
				}
				synth.TriggerAttack(0, float64(ev.Data2)/127)
				held = ev.Data1
			case status == 0x80 || (status == 0x90 && ev.Data2 == 0):
				if ev.Data1 == held {
					synth.TriggerRelease(0)
					held = -1
				}
			}
		}
	}()

	stop := func() {
		in.Close()
		portmidi.Terminate()
	}
	return stop, nil
}

func midiToFreq(note int64) float64 {
	return math.Pow(2, float64(note-69)/12.0) * 440
}
