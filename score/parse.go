package score

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Step is one melodic step: a pitch, or a rest, held for Beats beats.
type Step struct {
	Name  string
	Freq  float64 // Hz, 0 for rests
	Beats float64
	Rest  bool
}

// Parse reads a melody line like "a4:1 c#5:0.5 r:0.5 e5". A step without an
// explicit duration lasts one beat.
func Parse(input string) ([]Step, error) {
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}

	var steps []Step
	pos := 0
	for tokens[pos].typ != typeEOF {
		tok := tokens[pos]
		if tok.typ != typeName {
			return nil, fmt.Errorf("expected a note name at position %d, got %q", tok.pos, tok.text)
		}
		step := Step{Name: tok.text, Beats: 1}
		if tok.text == "r" {
			step.Rest = true
		} else {
			freq, err := Pitch(tok.text)
			if err != nil {
				return nil, err
			}
			step.Freq = freq
		}
		pos++

		if tokens[pos].typ == typeColon {
			pos++
			num := tokens[pos]
			if num.typ != typeNumber {
				return nil, fmt.Errorf("expected a duration after %q", tok.text)
			}
			beats, err := strconv.ParseFloat(num.text, 64)
			if err != nil || beats <= 0 {
				return nil, fmt.Errorf("invalid duration %q for %q", num.text, tok.text)
			}
			step.Beats = beats
			pos++
		}
		steps = append(steps, step)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("empty melody line")
	}
	return steps, nil
}

var pitchClasses = map[byte]int{
	'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11,
}

// Pitch converts a note name like "a4", "c#5" or "bb2" to its equal
// tempered frequency, with a4 at 440 Hz.
func Pitch(name string) (float64, error) {
	s := strings.ToLower(name)
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid note name: %q", name)
	}

	class, ok := pitchClasses[s[0]]
	if !ok {
		return 0, fmt.Errorf("invalid note name: %q", name)
	}
	s = s[1:]

	for len(s) > 0 {
		if s[0] == '#' {
			class++
		} else if s[0] == 'b' && len(s) > 1 {
			// a trailing "b" before the octave is a flat; "b" alone would
			// have been the pitch letter
			class--
		} else {
			break
		}
		s = s[1:]
	}

	octave, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid octave in note %q", name)
	}

	midi := (octave+1)*12 + class
	return 440 * math.Pow(2, float64(midi-69)/12.0), nil
}
