package audio

import (
	"fmt"
	"math"
	"sync"
)

// silenceEpsilon guards the summed envelope comparison against accumulated
// floating point error.
const silenceEpsilon = 1e-6

// DuoSynth couples two monophonic voices through a fixed control signal
// graph, wired once at construction. The frequency signal drives voice 0
// directly and voice 1 through the harmonicity ratio; the shared detune
// signal and the vibrato LFO sum into both voices' detune inputs. Both
// voices share one note lifecycle: attack and release fan out with a single
// resolved time, and the synth reports silence once both amplitude
// envelopes sample to zero.
type DuoSynth struct {
	*Params

	transport *Transport

	frequency   *Signal
	detune      *Signal
	harmonicity *Multiply
	vibrato     *LFO
	vibratoGain *Gain

	voice0 *Voice
	voice1 *Voice

	onSilence func(*DuoSynth)

	mu       sync.Mutex
	gain     float64
	sounding bool
	disposed bool

	buf0 []float64
	buf1 []float64
}

func NewDuoSynth(tr *Transport, cfg Config) (*DuoSynth, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &DuoSynth{
		transport: tr,
		onSilence: cfg.OnSilence,
		gain:      math.Pow(10, cfg.Volume/20.0),
		buf0:      make([]float64, bufferSize),
		buf1:      make([]float64, bufferSize),
	}

	var err error
	if s.frequency, err = NewSignal(Hertz, cfg.Frequency); err != nil {
		return nil, fmt.Errorf("frequency: %w", err)
	}
	if s.detune, err = NewSignal(Cents, cfg.Detune); err != nil {
		return nil, fmt.Errorf("detune: %w", err)
	}
	ratio, err := NewSignal(Ratio, cfg.Harmonicity)
	if err != nil {
		return nil, fmt.Errorf("harmonicity: %w", err)
	}
	if s.harmonicity, err = NewMultiply(s.frequency, ratio); err != nil {
		return nil, err
	}
	if s.vibrato, err = NewLFO(tr, cfg.VibratoRate, -50, 50, Cents); err != nil {
		return nil, fmt.Errorf("vibrato: %w", err)
	}
	s.vibratoGain = NewGain(s.vibrato, cfg.VibratoAmount)

	if s.voice0, err = NewVoice(tr, cfg.voice(cfg.Voice0), s.checkSilence); err != nil {
		return nil, fmt.Errorf("voice0: %w", err)
	}
	if s.voice1, err = NewVoice(tr, cfg.voice(cfg.Voice1), s.checkSilence); err != nil {
		return nil, fmt.Errorf("voice1: %w", err)
	}

	wiring := []struct {
		dst *Signal
		src Node
	}{
		{s.voice0.Frequency(), s.frequency},
		{s.voice1.Frequency(), s.harmonicity},
		{s.voice0.Detune(), s.detune},
		{s.voice1.Detune(), s.detune},
		{s.voice0.Detune(), s.vibratoGain},
		{s.voice1.Detune(), s.vibratoGain},
	}
	for _, w := range wiring {
		if err := Connect(w.dst, w.src); err != nil {
			return nil, err
		}
	}

	s.registerParams()

	// vibrato runs from construction on; its lifecycle is independent of
	// note attacks and releases
	s.vibrato.Start()
	return s, nil
}

func (s *DuoSynth) registerParams() {
	s.Params = NewParams()
	s.RegisterSignal("frequency", s.frequency)
	s.RegisterSignal("detune", s.detune)
	s.RegisterSignal("harmonicity", s.harmonicity.Factor())
	s.RegisterSignal("vibrato.rate", s.vibrato.Rate())
	s.RegisterParam("vibrato.amount", Param{
		Set: func(v float64) error { s.vibratoGain.SetGain(v); return nil },
		Get: s.vibratoGain.Gain,
	})
	s.RegisterParam("volume", Param{
		Set: func(db float64) error { s.SetVolume(db); return nil },
		Get: func() float64 { return s.Volume() },
	})
}

// Frequency returns voice 0's pitch signal in Hz. Voice 1 always follows at
// frequency times harmonicity.
func (s *DuoSynth) Frequency() *Signal { return s.frequency }

// Detune returns the shared detune signal in cents.
func (s *DuoSynth) Detune() *Signal { return s.detune }

// Harmonicity returns the ratio signal between the two voices' pitches.
func (s *DuoSynth) Harmonicity() *Signal { return s.harmonicity.Factor() }

// VibratoRate returns the vibrato LFO's rate signal in Hz.
func (s *DuoSynth) VibratoRate() *Signal { return s.vibrato.Rate() }

func (s *DuoSynth) VibratoAmount() float64     { return s.vibratoGain.Gain() }
func (s *DuoSynth) SetVibratoAmount(v float64) { s.vibratoGain.SetGain(v) }

func (s *DuoSynth) Voice0() *Voice { return s.voice0 }
func (s *DuoSynth) Voice1() *Voice { return s.voice1 }

// Volume returns the master volume in dB.
func (s *DuoSynth) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return 20 * math.Log10(s.gain)
}

func (s *DuoSynth) SetVolume(db float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gain = math.Pow(10, db/20.0)
}

// TriggerAttack starts a note at the requested time with velocity in
// [0, 1]. The time is resolved against the transport once, so both voices
// attack at exactly the same moment.
func (s *DuoSynth) TriggerAttack(at, velocity float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeLive("TriggerAttack")
	t := s.transport.Resolve(at)
	s.sounding = true
	s.voice0.TriggerAttack(t, velocity)
	s.voice1.TriggerAttack(t, velocity)
}

// TriggerRelease starts the release stage on both voices. As with
// TriggerAttack, the time is resolved once and forwarded unchanged so the
// releases stay synchronized.
func (s *DuoSynth) TriggerRelease(at float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeLive("TriggerRelease")
	t := s.transport.Resolve(at)
	s.voice0.TriggerRelease(t)
	s.voice1.TriggerRelease(t)
}

func (s *DuoSynth) mustBeLive(op string) {
	if s.disposed {
		panic("duotone: " + op + " called on disposed synth")
	}
}

// checkSilence runs whenever either voice reports that its release tail has
// ended. A single voice going idle is only a cue to re-check: the synth is
// silent only when both envelopes, sampled now, sum to zero. The transition
// fires OnSilence once; further checks while silent are no-ops until the
// next attack re-arms it.
func (s *DuoSynth) checkSilence() {
	s.mu.Lock()
	if s.disposed || !s.sounding {
		s.mu.Unlock()
		return
	}
	now := s.transport.Now()
	sum := s.voice0.EnvelopeAt(now) + s.voice1.EnvelopeAt(now)
	if sum > silenceEpsilon {
		s.mu.Unlock()
		return
	}
	s.sounding = false
	cb := s.onSilence
	s.mu.Unlock()
	if cb != nil {
		cb(s)
	}
}

// Process renders both voices into a stereo buffer, mixing on top of the
// existing contents. It implements Source.
func (s *DuoSynth) Process(out [][]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return
	}
	n := len(out[0])
	if n > len(s.buf0) {
		s.buf0 = make([]float64, n)
		s.buf1 = make([]float64, n)
	}
	t0 := s.transport.RenderTime()
	buf0, buf1 := s.buf0[:n], s.buf1[:n]
	s.voice0.process(t0, buf0)
	s.voice1.process(t0, buf1)
	for i := 0; i < n; i++ {
		sample := float32(s.gain * (buf0[i] + buf1[i]))
		out[0][i] += sample
		out[1][i] += sample
	}
}

// Dispose tears down both voices and every owned node. It is irreversible:
// trigger calls on a disposed synth panic.
func (s *DuoSynth) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return
	}
	s.disposed = true
	s.sounding = false
	s.vibrato.Stop()
	s.voice0.dispose()
	s.voice1.dispose()
	s.onSilence = nil
}
