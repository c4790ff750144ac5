package audio

import (
	"fmt"
	"sort"
)

type preset map[string]float64

var presets = map[string]preset{
	"fifths": {
		"harmonicity":    1.5,
		"vibrato.amount": 0.1,
	},
	"honky": {
		"harmonicity":    2.,
		"detune":         8.,
		"vibrato.rate":   6.5,
		"vibrato.amount": 0.3,
	},
	"seasick": {
		"vibrato.rate":   0.8,
		"vibrato.amount": 4.,
	},
	"unison": {
		"harmonicity":    1.002,
		"vibrato.amount": 0.05,
	},
}

func LoadPreset(name string, d Device) error {
	p, ok := presets[name]
	if !ok {
		return fmt.Errorf("unknown preset: %v", name)
	}
	for k, v := range p {
		if err := d.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}

func PresetNames() []string {
	var names []string
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
