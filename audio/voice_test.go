package audio

import (
	"math"
	"testing"
)

func TestVoiceRejectsUnknownWaveform(t *testing.T) {
	cfg := defaultVoiceConfig()
	cfg.Oscillator.Type = "noise"
	if _, err := NewVoice(NewTransport(), cfg, nil); err == nil {
		t.Error("expected an error for an unknown waveform")
	}
}

func TestVoiceIdleNotification(t *testing.T) {
	tr := NewTransport()
	idle := 0
	v, err := NewVoice(tr, defaultVoiceConfig(), func() { idle++ })
	if err != nil {
		t.Fatal(err)
	}

	v.TriggerAttack(0, 1)
	v.TriggerRelease(0.2)

	// release tail ends at 0.7
	tr.Tick(SampleRate / 2)
	if idle != 0 {
		t.Fatalf("idle fired before the release tail ended: got %v", idle)
	}
	tr.Tick(SampleRate / 2)
	if want := 1; idle != want {
		t.Fatalf("wrong number of idle notifications: want %v, got %v", want, idle)
	}
}

func TestVoiceEnvelopeSampling(t *testing.T) {
	v, err := NewVoice(NewTransport(), defaultVoiceConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}

	v.TriggerAttack(1, 0.5)
	if want, got := 0.5, v.EnvelopeAt(1.5); !almostEqual(want, got) {
		t.Errorf("envelope at sustain: want %v, got %v", want, got)
	}
	v.TriggerRelease(2)
	if got := v.EnvelopeAt(3); got != 0 {
		t.Errorf("envelope after release tail: want 0, got %v", got)
	}
}

func TestVoiceRendersDetunedPitch(t *testing.T) {
	tr := NewTransport()
	cfg := defaultVoiceConfig()
	cfg.Volume = 0
	v, err := NewVoice(tr, cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := v.Frequency().SetValue(441); err != nil {
		t.Fatal(err)
	}

	v.TriggerAttack(0, 1)
	tr.Tick(SampleRate)
	buf := make([]float64, SampleRate)
	v.process(0, buf)

	// count rising zero crossings as a crude pitch measure
	var crossings int
	for i := 1; i < len(buf); i++ {
		if buf[i-1] <= 0 && buf[i] > 0 {
			crossings++
		}
	}
	if crossings < 436 || crossings > 446 {
		t.Errorf("wrong rendered pitch: want ~441 cycles, got %v", crossings)
	}

	if err := v.Detune().SetValue(1200); err != nil {
		t.Fatal(err)
	}
	target := 441 * math.Pow(2, 1200./1200)
	v.process(1, buf)
	crossings = 0
	for i := 1; i < len(buf); i++ {
		if buf[i-1] <= 0 && buf[i] > 0 {
			crossings++
		}
	}
	if float64(crossings) < target-10 || float64(crossings) > target+10 {
		t.Errorf("wrong detuned pitch: want ~%v cycles, got %v", target, crossings)
	}
}
