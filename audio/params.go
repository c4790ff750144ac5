package audio

import "fmt"

// Device is anything whose parameters can be set and read by name.
type Device interface {
	Set(name string, value float64) error
	Get(name string) (float64, error)
}

// Param adapts one controllable value for the registry.
type Param struct {
	Set func(float64) error
	Get func() float64
}

// Params maps names to controllable parameters. All registration happens at
// construction time; Set and Get are safe to call while audio is running,
// since every registered setter writes through a validated atomic value.
type Params struct {
	params map[string]Param
	order  []string
}

func NewParams() *Params {
	return &Params{params: make(map[string]Param)}
}

func (p *Params) RegisterParam(name string, param Param) {
	p.params[name] = param
	p.order = append(p.order, name)
}

// RegisterSignal exposes a signal's stored value under name.
func (p *Params) RegisterSignal(name string, s *Signal) {
	p.RegisterParam(name, Param{Set: s.SetValue, Get: s.Value})
}

// Set updates the named parameter. Domain violations are reported, never
// clamped.
func (p *Params) Set(name string, value float64) error {
	param, ok := p.params[name]
	if !ok {
		return fmt.Errorf("unknown parameter %s", name)
	}
	if err := param.Set(value); err != nil {
		return fmt.Errorf("set parameter %s: %w", name, err)
	}
	return nil
}

func (p *Params) Get(name string) (float64, error) {
	param, ok := p.params[name]
	if !ok {
		return 0, fmt.Errorf("unknown parameter %s", name)
	}
	return param.Get(), nil
}

// Names returns all registered parameter names in registration order.
func (p *Params) Names() []string {
	names := make([]string, len(p.order))
	copy(names, p.order)
	return names
}
