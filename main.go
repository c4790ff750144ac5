package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/patricklittle/duotone/audio"
)

func main() {
	var (
		preset = flag.String("preset", "", "load a named preset at startup")
		midi   = flag.Bool("midi", false, "take note input from the default MIDI device")
		render = flag.String("render", "", "render -line to a wav file instead of playing live")
		line   = flag.String("line", "", `melody line, e.g. "a4:1 c5:0.5 r:0.5"`)
		bpm    = flag.Float64("bpm", 120, "beats per minute for -line and the seq command")
	)
	flag.Parse()

	transport := audio.NewTransport()
	synth, err := audio.NewDuoSynth(transport, audio.DefaultConfig())
	if err != nil {
		log.Fatal(err)
	}
	defer synth.Dispose()

	if *preset != "" {
		if err := audio.LoadPreset(*preset, synth); err != nil {
			log.Fatal(err)
		}
	}

	env := &env{transport: transport, synth: synth, bpm: *bpm}

	if *render != "" {
		if *line == "" {
			log.Fatal("-render needs a melody passed with -line")
		}
		if err := renderLine(*line, *bpm, *render); err != nil {
			log.Fatal(err)
		}
		return
	}

	sink, err := audio.NewSink()
	if err != nil {
		log.Fatal(err)
	}
	defer sink.Stop()
	sink.AddTicker(transport)
	sink.AddSources(synth)
	if err := sink.Start(); err != nil {
		log.Fatal(err)
	}

	if *midi {
		stop, err := listenMIDI(synth)
		if err != nil {
			log.Fatal(err)
		}
		defer stop()
	}

	if *line != "" {
		if err := env.playLine(*line); err != nil {
			log.Fatal(err)
		}
	}

	if err := repl(env); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
