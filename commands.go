package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/patricklittle/duotone/audio"
	"github.com/patricklittle/duotone/score"
)

type env struct {
	transport *audio.Transport
	synth     *audio.DuoSynth
	bpm       float64
}

type command struct {
	name  string
	usage string
	run   func(*env, []string) error
	arity int // -n means len(args) must be >= n
}

var commands []command

func init() {
	commands = []command{
		{"set", "set <param> <value>", setCommand, 2},
		{"get", "get <param>", getCommand, 1},
		{"params", "params", paramsCommand, 0},
		{"play", "play <note>", playCommand, 1},
		{"stop", "stop", stopCommand, 0},
		{"note", "note <note> [beats]", noteCommand, -1},
		{"seq", "seq <step>...", seqCommand, -1},
		{"preset", "preset <name>", presetCommand, 1},
		{"presets", "presets", presetsCommand, 0},
		{"help", "help", helpCommand, 0},
	}
}

func setCommand(e *env, args []string) error {
	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("not a number: %s", args[1])
	}
	return e.synth.Set(args[0], v)
}

func getCommand(e *env, args []string) error {
	v, err := e.synth.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Println(v)
	return nil
}

func paramsCommand(e *env, args []string) error {
	for _, name := range e.synth.Names() {
		v, err := e.synth.Get(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-16s %v\n", name, v)
	}
	return nil
}

// playCommand holds a note until stop is called.
func playCommand(e *env, args []string) error {
	freq, err := score.Pitch(args[0])
	if err != nil {
		return err
	}
	if err := e.synth.Frequency().SetValue(freq); err != nil {
		return err
	}
	e.synth.TriggerAttack(0, 1)
	return nil
}

func stopCommand(e *env, args []string) error {
	e.synth.TriggerRelease(0)
	return nil
}

func noteCommand(e *env, args []string) error {
	freq, err := score.Pitch(args[0])
	if err != nil {
		return err
	}
	beats := 1.0
	if len(args) > 1 {
		if beats, err = strconv.ParseFloat(args[1], 64); err != nil || beats <= 0 {
			return fmt.Errorf("invalid duration: %s", args[1])
		}
	}
	if err := e.synth.Frequency().SetValue(freq); err != nil {
		return err
	}
	t := e.transport.Now()
	e.synth.TriggerAttack(t, 1)
	e.synth.TriggerRelease(t + beats*60/e.bpm)
	return nil
}

func seqCommand(e *env, args []string) error {
	return e.playLine(strings.Join(args, " "))
}

func presetCommand(e *env, args []string) error {
	return audio.LoadPreset(args[0], e.synth)
}

func presetsCommand(e *env, args []string) error {
	for _, name := range audio.PresetNames() {
		fmt.Println(name)
	}
	return nil
}

func helpCommand(e *env, args []string) error {
	for _, cmd := range commands {
		fmt.Println(cmd.usage)
	}
	return nil
}

func (e *env) playLine(line string) error {
	steps, err := score.Parse(line)
	if err != nil {
		return err
	}
	scheduleSteps(e.transport, e.synth, steps, e.bpm, e.transport.Now())
	return nil
}

// gate is the fraction of a step during which the note is held; the rest
// separates it from the next step.
const gate = 0.9

// scheduleSteps queues attack/release pairs for a parsed melody starting at
// transport time start, and returns the time the last release tail ends.
func scheduleSteps(tr *audio.Transport, synth *audio.DuoSynth, steps []score.Step, bpm, start float64) float64 {
	t := start
	for _, step := range steps {
		dur := step.Beats * 60 / bpm
		if !step.Rest {
			at, freq := t, step.Freq
			tr.ScheduleAt(at, func() {
				if err := synth.Frequency().SetValue(freq); err != nil {
					return
				}
				synth.TriggerAttack(at, 1)
				synth.TriggerRelease(at + dur*gate)
			})
		}
		t += dur
	}
	return t + releaseTail(synth)
}

func releaseTail(synth *audio.DuoSynth) float64 {
	r0 := synth.Voice0().Release()
	if r1 := synth.Voice1().Release(); r1 > r0 {
		return r1
	}
	return r0
}
