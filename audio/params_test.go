package audio

import (
	"reflect"
	"testing"
)

func TestSynthParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Frequency = 200
	_, s := newTestSynth(t, cfg)

	want := []string{"frequency", "detune", "harmonicity", "vibrato.rate", "vibrato.amount", "volume"}
	if got := s.Names(); !reflect.DeepEqual(want, got) {
		t.Errorf("wrong parameter names:\nwant: %v\ngot:  %v", want, got)
	}

	if err := s.Set("harmonicity", 2); err != nil {
		t.Fatal(err)
	}
	if want, got := 400., s.Voice1().Frequency().ValueAt(0); want != got {
		t.Errorf("harmonicity param did not reach the graph: want %v, got %v", want, got)
	}

	if err := s.Set("harmonicity", -1); err == nil {
		t.Error("expected a domain error for negative harmonicity")
	}
	if err := s.Set("reverb", 0.5); err == nil {
		t.Error("expected an error for an unknown parameter")
	}

	if err := s.Set("vibrato.amount", 0.3); err != nil {
		t.Fatal(err)
	}
	if want, got := 0.3, s.VibratoAmount(); want != got {
		t.Errorf("vibrato amount: want %v, got %v", want, got)
	}

	v, err := s.Get("frequency")
	if err != nil {
		t.Fatal(err)
	}
	if want := 200.; want != v {
		t.Errorf("frequency param: want %v, got %v", want, v)
	}
}

func TestLoadPreset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Frequency = 200
	_, s := newTestSynth(t, cfg)

	if err := LoadPreset("honky", s); err != nil {
		t.Fatal(err)
	}
	if want, got := 2., mustGet(t, s, "harmonicity"); want != got {
		t.Errorf("preset harmonicity: want %v, got %v", want, got)
	}
	if want, got := 6.5, mustGet(t, s, "vibrato.rate"); want != got {
		t.Errorf("preset vibrato rate: want %v, got %v", want, got)
	}

	if err := LoadPreset("nope", s); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}

func mustGet(t *testing.T, d Device, name string) float64 {
	t.Helper()
	v, err := d.Get(name)
	if err != nil {
		t.Fatal(err)
	}
	return v
}
