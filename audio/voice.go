package audio

import "math"

// Voice is one complete monophonic sound generator: oscillator, lowpass
// filter, filter envelope and amplitude envelope. A voice knows nothing
// about its sibling; all coupling runs through the engine's signal graph
// feeding the Frequency and Detune inputs.
type Voice struct {
	transport *Transport

	frequency *Signal // Hertz
	detune    *Signal // Cents

	osc        *osc
	filter     *filter
	filterEnv  *Envelope
	ampEnv     *Envelope
	filterBase float64
	filterOct  float64

	gain       float64 // linear, from the configured volume
	portamento float64 // seconds
	glide      float64 // current glided frequency, 0 until the first sample

	onIdle func()
}

// NewVoice builds a voice from its configuration. onIdle, when non-nil, is
// invoked via the transport once a triggered release has run its course;
// the owner decides what being idle means by sampling EnvelopeAt.
func NewVoice(tr *Transport, cfg VoiceConfig, onIdle func()) (*Voice, error) {
	frequency, err := NewSignal(Hertz, 440)
	if err != nil {
		return nil, err
	}
	detune, err := NewSignal(Cents, 0)
	if err != nil {
		return nil, err
	}
	o := &osc{}
	if err := o.setWaveform(cfg.Oscillator.Type); err != nil {
		return nil, err
	}
	return &Voice{
		transport:  tr,
		frequency:  frequency,
		detune:     detune,
		osc:        o,
		filter:     &filter{},
		filterEnv:  newEnvelope(cfg.FilterEnvelope.EnvelopeConfig),
		ampEnv:     newEnvelope(cfg.Envelope),
		filterBase: cfg.FilterEnvelope.BaseFrequency,
		filterOct:  cfg.FilterEnvelope.Octaves,
		gain:       math.Pow(10, cfg.Volume/20.0),
		portamento: cfg.Portamento,
		onIdle:     onIdle,
	}, nil
}

// Frequency returns the voice's pitch input in Hz. The handle is fixed for
// the voice's lifetime.
func (v *Voice) Frequency() *Signal { return v.frequency }

// Detune returns the voice's detune input in cents. Static detune and
// vibrato contributions sum here.
func (v *Voice) Detune() *Signal { return v.detune }

// TriggerAttack starts both envelopes at time t with the given velocity.
func (v *Voice) TriggerAttack(t, velocity float64) {
	v.ampEnv.TriggerAttack(t, velocity)
	v.filterEnv.TriggerAttack(t, 1)
}

// TriggerRelease starts the envelopes' release stage at time t and
// schedules the idle notification for when the release tail ends.
func (v *Voice) TriggerRelease(t float64) {
	v.ampEnv.TriggerRelease(t)
	v.filterEnv.TriggerRelease(t)
	if v.onIdle != nil {
		v.transport.ScheduleAt(t+v.ampEnv.Release, v.onIdle)
	}
}

// EnvelopeAt samples the amplitude envelope at transport time t.
func (v *Voice) EnvelopeAt(t float64) float64 {
	return v.ampEnv.ValueAt(t)
}

// Release returns the amplitude envelope's release time in seconds.
func (v *Voice) Release() float64 {
	return v.ampEnv.Release
}

// process overwrites buf with the voice's output, starting at transport
// time t0. The filter cutoff is updated once per buffer; pitch and
// envelope are evaluated per sample.
func (v *Voice) process(t0 float64, buf []float64) {
	v.filter.setCutoff(v.filterBase * math.Pow(2, v.filterOct*v.filterEnv.ValueAt(t0)))

	k := 1.0
	if v.portamento > 0 {
		k = 1 - math.Exp(-1/(v.portamento*SampleRate))
	}
	for i := range buf {
		t := t0 + float64(i)/SampleRate
		target := v.frequency.ValueAt(t) * math.Pow(2, v.detune.ValueAt(t)/1200)
		if v.glide == 0 {
			v.glide = target
		}
		v.glide += (target - v.glide) * k
		buf[i] = v.osc.next(v.glide)
	}
	v.filter.process(buf)
	for i := range buf {
		t := t0 + float64(i)/SampleRate
		buf[i] *= v.gain * v.ampEnv.ValueAt(t)
	}
}

func (v *Voice) dispose() {
	v.frequency.disconnect()
	v.detune.disconnect()
	v.filter.reset()
	v.onIdle = nil
}
