package audio

import "math"

// Envelope is a time-scheduled ADSR contour. Instead of tracking a stage
// flag per sample, the schedule itself is stored and the level is computed
// for any transport time. Lifecycle checks that race against the two
// independently released voices can therefore sample the level at the
// moment they run rather than trusting a stale flag.
type Envelope struct {
	Attack  float64 // seconds
	Decay   float64 // seconds
	Sustain float64 // level in [0, 1]
	Release float64 // seconds

	attackAt    float64
	releaseAt   float64
	releaseFrom float64
	velocity    float64
}

func newEnvelope(cfg EnvelopeConfig) *Envelope {
	return &Envelope{
		Attack:    cfg.Attack,
		Decay:     cfg.Decay,
		Sustain:   cfg.Sustain,
		Release:   cfg.Release,
		attackAt:  -1,
		releaseAt: math.Inf(1),
	}
}

// TriggerAttack schedules the attack at time t, scaling the contour by
// velocity. Any pending release is discarded.
func (e *Envelope) TriggerAttack(t, velocity float64) {
	e.attackAt = t
	e.releaseAt = math.Inf(1)
	e.velocity = velocity
}

// TriggerRelease schedules the release at time t, ramping down from
// whatever level the envelope holds at that time.
func (e *Envelope) TriggerRelease(t float64) {
	e.releaseFrom = e.ValueAt(t)
	e.releaseAt = t
}

// ValueAt returns the envelope level at transport time t. Zero-length
// stages are exact steps.
func (e *Envelope) ValueAt(t float64) float64 {
	if e.attackAt < 0 || t < e.attackAt {
		return 0
	}
	if t >= e.releaseAt {
		dt := t - e.releaseAt
		if e.Release <= 0 || dt >= e.Release {
			return 0
		}
		return e.releaseFrom * (1 - dt/e.Release)
	}
	dt := t - e.attackAt
	if dt < e.Attack {
		return e.velocity * dt / e.Attack
	}
	dt -= e.Attack
	if dt < e.Decay {
		return e.velocity * (1 - (1-e.Sustain)*dt/e.Decay)
	}
	return e.velocity * e.Sustain
}
