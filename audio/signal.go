package audio

import (
	"fmt"
	"math"
	"sync/atomic"
)

// Unit is the physical unit of a control signal. A signal's unit is fixed
// at construction and connections are checked against it: routing between
// different units takes an explicit converting node, never an implicit
// cast.
type Unit int

const (
	Hertz Unit = iota
	Cents
	Decibels
	Ratio
)

func (u Unit) String() string {
	switch u {
	case Hertz:
		return "hertz"
	case Cents:
		return "cents"
	case Decibels:
		return "decibels"
	case Ratio:
		return "ratio"
	}
	return "unknown"
}

// check rejects values outside the unit's domain. Hertz and Ratio are
// strictly positive; Cents and Decibels are unbounded.
func (u Unit) check(v float64) error {
	switch u {
	case Hertz, Ratio:
		if v <= 0 {
			return fmt.Errorf("%s value must be positive: %v", u, v)
		}
	}
	return nil
}

// Node is a time-varying scalar that can be sampled at any transport time.
type Node interface {
	Unit() Unit
	ValueAt(t float64) float64
}

// Signal is a value-bearing node. The stored value can be updated from any
// goroutine while audio renders. Once upstream nodes are connected they
// take over: the stored value is ignored and the inputs sum.
type Signal struct {
	unit   Unit
	bits   uint64
	inputs []Node
}

func NewSignal(unit Unit, value float64) (*Signal, error) {
	if err := unit.check(value); err != nil {
		return nil, err
	}
	s := &Signal{unit: unit}
	s.store(value)
	return s, nil
}

func (s *Signal) store(v float64) {
	atomic.StoreUint64(&s.bits, math.Float64bits(v))
}

func (s *Signal) Unit() Unit { return s.unit }

// Value returns the stored value, ignoring any connected inputs.
func (s *Signal) Value() float64 {
	return math.Float64frombits(atomic.LoadUint64(&s.bits))
}

// SetValue updates the stored value. Values outside the unit's domain are
// rejected, never clamped.
func (s *Signal) SetValue(v float64) error {
	if err := s.unit.check(v); err != nil {
		return err
	}
	s.store(v)
	return nil
}

func (s *Signal) ValueAt(t float64) float64 {
	if len(s.inputs) == 0 {
		return s.Value()
	}
	var sum float64
	for _, in := range s.inputs {
		sum += in.ValueAt(t)
	}
	return sum
}

// disconnect drops all inputs. Only teardown uses it; the graph topology is
// otherwise fixed after construction.
func (s *Signal) disconnect() { s.inputs = nil }

// Connect wires src into dst. Both must carry the same unit. Multiple
// sources connected to the same signal sum at the input.
func Connect(dst *Signal, src Node) error {
	if src.Unit() != dst.unit {
		return fmt.Errorf("cannot connect %s source to %s signal", src.Unit(), dst.unit)
	}
	dst.inputs = append(dst.inputs, src)
	return nil
}

// Multiply scales an input node by a ratio signal. It is the bridge node
// for routing a signal into a differently scaled input, e.g. deriving the
// second voice's pitch from the first via the harmonicity ratio.
type Multiply struct {
	in     Node
	factor *Signal
}

func NewMultiply(in Node, factor *Signal) (*Multiply, error) {
	if factor.Unit() != Ratio {
		return nil, fmt.Errorf("multiply factor must be a ratio signal, got %s", factor.Unit())
	}
	return &Multiply{in: in, factor: factor}, nil
}

func (m *Multiply) Unit() Unit { return m.in.Unit() }

// Factor returns the ratio signal. The handle is fixed; its value is
// writable.
func (m *Multiply) Factor() *Signal { return m.factor }

func (m *Multiply) ValueAt(t float64) float64 {
	return m.in.ValueAt(t) * m.factor.ValueAt(t)
}

// Gain is a scalable pass-through node.
type Gain struct {
	in   Node
	bits uint64
}

func NewGain(in Node, gain float64) *Gain {
	g := &Gain{in: in}
	g.SetGain(gain)
	return g
}

func (g *Gain) Unit() Unit { return g.in.Unit() }

func (g *Gain) SetGain(v float64) {
	atomic.StoreUint64(&g.bits, math.Float64bits(v))
}

func (g *Gain) Gain() float64 {
	return math.Float64frombits(atomic.LoadUint64(&g.bits))
}

func (g *Gain) ValueAt(t float64) float64 {
	return g.in.ValueAt(t) * g.Gain()
}
