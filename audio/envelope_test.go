package audio

import "testing"

func TestEnvelopeStages(t *testing.T) {
	e := newEnvelope(EnvelopeConfig{Attack: 1, Decay: 1, Sustain: 0.5, Release: 1})

	if got := e.ValueAt(5); got != 0 {
		t.Fatalf("untriggered envelope must be zero, got %v", got)
	}

	e.TriggerAttack(1, 1)
	for _, tt := range []struct {
		at   float64
		want float64
	}{
		{0.5, 0},     // before the attack
		{1.5, 0.5},   // halfway up the attack
		{2.0, 1},     // attack peak
		{2.5, 0.75},  // halfway down the decay
		{3.0, 0.5},   // sustain level reached
		{10.0, 0.5},  // holds at sustain
	} {
		if got := e.ValueAt(tt.at); !almostEqual(got, tt.want) {
			t.Errorf("ValueAt(%v): want %v, got %v", tt.at, tt.want, got)
		}
	}

	e.TriggerRelease(10)
	for _, tt := range []struct {
		at   float64
		want float64
	}{
		{10.0, 0.5},
		{10.5, 0.25},
		{11.0, 0},
		{20.0, 0},
	} {
		if got := e.ValueAt(tt.at); !almostEqual(got, tt.want) {
			t.Errorf("ValueAt(%v) after release: want %v, got %v", tt.at, tt.want, got)
		}
	}
}

func TestEnvelopeZeroStages(t *testing.T) {
	e := newEnvelope(EnvelopeConfig{Attack: 0, Decay: 0, Sustain: 1, Release: 0})
	e.TriggerAttack(2, 0.8)

	if got := e.ValueAt(2); !almostEqual(got, 0.8) {
		t.Errorf("zero attack should step to velocity: want 0.8, got %v", got)
	}
	e.TriggerRelease(3)
	if got := e.ValueAt(3); got != 0 {
		t.Errorf("zero release should step to silence, got %v", got)
	}
}

func TestEnvelopeReleaseDuringAttack(t *testing.T) {
	e := newEnvelope(EnvelopeConfig{Attack: 1, Decay: 0, Sustain: 1, Release: 1})
	e.TriggerAttack(0, 1)
	e.TriggerRelease(0.5)

	if got := e.ValueAt(0.5); !almostEqual(got, 0.5) {
		t.Errorf("release should ramp from the interrupted attack level: want 0.5, got %v", got)
	}
	if got := e.ValueAt(1.0); !almostEqual(got, 0.25) {
		t.Errorf("want 0.25, got %v", got)
	}
	if got := e.ValueAt(2.0); got != 0 {
		t.Errorf("want 0, got %v", got)
	}
}

func TestEnvelopeImmediateRelease(t *testing.T) {
	e := newEnvelope(EnvelopeConfig{Attack: 0.01, Decay: 0, Sustain: 1, Release: 0.5})
	e.TriggerAttack(1, 1)
	e.TriggerRelease(1)

	if got := e.ValueAt(1.2); got != 0 {
		t.Errorf("releasing at the attack time should leave the envelope silent, got %v", got)
	}
}

func almostEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
