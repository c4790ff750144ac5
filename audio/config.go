package audio

import "fmt"

// EnvelopeConfig is an ADSR contour: attack, decay and release in seconds,
// sustain as a level in [0, 1].
type EnvelopeConfig struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
}

// FilterEnvelopeConfig shapes the filter cutoff contour: the cutoff sweeps
// from BaseFrequency up to BaseFrequency * 2^Octaves as the envelope rises.
type FilterEnvelopeConfig struct {
	EnvelopeConfig
	BaseFrequency float64 // Hz
	Octaves       float64
}

type OscillatorConfig struct {
	Type string // "sine", "saw", "square" or "off"
}

// VoiceConfig fully describes one voice. Frequency and detune are absent on
// purpose: the engine's signal graph supplies both.
type VoiceConfig struct {
	Volume         float64 // dB
	Portamento     float64 // seconds
	Oscillator     OscillatorConfig
	Envelope       EnvelopeConfig
	FilterEnvelope FilterEnvelopeConfig
}

type Config struct {
	Frequency     float64 // Hz
	Detune        float64 // cents
	Harmonicity   float64 // pitch ratio of voice 1 relative to voice 0
	VibratoRate   float64 // Hz
	VibratoAmount float64 // gain applied to the vibrato LFO
	Portamento    float64 // seconds, applied to voices that set none
	Volume        float64 // master volume in dB
	Voice0        VoiceConfig
	Voice1        VoiceConfig
	OnSilence     func(*DuoSynth)
}

// DefaultConfig returns a complete configuration. Callers overwrite fields
// before passing it to NewDuoSynth. Voice0 and Voice1 are separate values:
// mutating one never leaks into the other.
func DefaultConfig() Config {
	return Config{
		Frequency:     440,
		Harmonicity:   1.5,
		VibratoRate:   5,
		VibratoAmount: 0.5,
		Voice0:        defaultVoiceConfig(),
		Voice1:        defaultVoiceConfig(),
	}
}

func defaultVoiceConfig() VoiceConfig {
	env := EnvelopeConfig{Attack: 0.01, Decay: 0, Sustain: 1, Release: 0.5}
	return VoiceConfig{
		Volume:     -10,
		Portamento: 0,
		Oscillator: OscillatorConfig{Type: "sine"},
		Envelope:   env,
		FilterEnvelope: FilterEnvelopeConfig{
			EnvelopeConfig: env,
			BaseFrequency:  200,
			Octaves:        4,
		},
	}
}

// voice resolves one voice's effective configuration: the synth-level
// portamento applies to voices that set none of their own.
func (c Config) voice(vc VoiceConfig) VoiceConfig {
	if vc.Portamento == 0 {
		vc.Portamento = c.Portamento
	}
	return vc
}

// Validate rejects configurations that violate unit domains. Strictly
// positive units are never clamped.
func (c Config) Validate() error {
	if c.Frequency <= 0 {
		return fmt.Errorf("frequency must be positive: %v", c.Frequency)
	}
	if c.Harmonicity <= 0 {
		return fmt.Errorf("harmonicity must be positive: %v", c.Harmonicity)
	}
	if c.VibratoRate <= 0 {
		return fmt.Errorf("vibrato rate must be positive: %v", c.VibratoRate)
	}
	return nil
}
