package audio

import (
	"fmt"
	"math"
	"sync/atomic"
)

// LFO is a free-running sine oscillator bounded to [min, max], used as the
// vibrato source. It runs continuously once started; note events never
// reset its phase, so repeated notes land on whatever phase the LFO is at.
type LFO struct {
	transport *Transport
	rate      *Signal // Hertz
	unit      Unit
	min, max  float64

	running atomic.Bool
	startAt float64
}

func NewLFO(tr *Transport, rate, min, max float64, unit Unit) (*LFO, error) {
	rateSig, err := NewSignal(Hertz, rate)
	if err != nil {
		return nil, fmt.Errorf("lfo rate: %w", err)
	}
	return &LFO{transport: tr, rate: rateSig, unit: unit, min: min, max: max}, nil
}

// Rate returns the rate signal. The handle is fixed; its value is writable.
func (l *LFO) Rate() *Signal { return l.rate }

func (l *LFO) Unit() Unit { return l.unit }

// Start begins oscillation at the current transport time. Starting twice is
// a no-op.
func (l *LFO) Start() {
	if l.running.Load() {
		return
	}
	l.startAt = l.transport.Now()
	l.running.Store(true)
}

func (l *LFO) Stop() { l.running.Store(false) }

// ValueAt samples the LFO at transport time t. Before Start it holds the
// midpoint of its range.
func (l *LFO) ValueAt(t float64) float64 {
	mid := (l.min + l.max) / 2
	if !l.running.Load() || t < l.startAt {
		return mid
	}
	phase := (t - l.startAt) * l.rate.ValueAt(t)
	return mid + (l.max-l.min)/2*math.Sin(twoPi*phase)
}
