// Command conengine runs a Lua game script, or a built-in demo, full-screen
// in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/conengine/audio"
	"github.com/lixenwraith/conengine/config"
	"github.com/lixenwraith/conengine/core"
	"github.com/lixenwraith/conengine/engine"
	"github.com/lixenwraith/conengine/script"
	"github.com/lixenwraith/conengine/terminal"
)

var (
	configFlag  = flag.String("config", "", "Config file (default "+config.DefaultPath+")")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/conengine.log")
	fpsFlag     = flag.Int("fps", 0, "Frame rate cap, 0 for unlimited")
	widthFlag   = flag.Int("width", 0, "Grid width in cells, 0 for full screen")
	heightFlag  = flag.Int("height", 0, "Grid height in cells, 0 for full screen")
	audioFlag   = flag.String("audio", "", "Audio backend: auto, speaker, oto, pipe, wav, none")
	wavFlag     = flag.String("wav", "", "Record audio to this WAV file")
	noAudioFlag = flag.Bool("no-audio", false, "Disable audio")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [script.lua]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logFile := setupLogging(*debugFlag)

	err := run(flag.Arg(0))

	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "conengine: %v\n", err)
		os.Exit(1)
	}
}

// run owns every resource so deferred cleanup finishes before main exits
func run(scriptPath string) error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	var game engine.Game = newDemo()
	var sg *script.Game
	if scriptPath != "" {
		sg, err = script.New(scriptPath)
		if err != nil {
			return err
		}
		defer sg.Close()
		game = sg
	}

	term, err := terminal.New(&cfg.Terminal)
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer term.Fini()

	cfg.Engine.Width, cfg.Engine.Height = term.Size()
	eng, err := engine.New(term, &cfg.Engine)
	if err != nil {
		return err
	}

	if ae := startAudio(&cfg.Audio); ae != nil {
		defer ae.Close()
		eng.SetAudio(ae)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := eng.Run(ctx, game)
	if sg != nil && sg.Err() != nil {
		return sg.Err()
	}
	return runErr
}

// applyFlags overrides configuration with flags given on the command line
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fps":
			cfg.Engine.FrameRate = *fpsFlag
		case "width":
			cfg.Terminal.Width = *widthFlag
		case "height":
			cfg.Terminal.Height = *heightFlag
		case "audio":
			cfg.Audio.Backend = *audioFlag
		case "wav":
			cfg.Audio.WAVPath = *wavFlag
			if *audioFlag == "" {
				cfg.Audio.Backend = audio.BackendNameWAV
			}
		case "no-audio":
			cfg.Audio.Enabled = !*noAudioFlag
		}
	})
}

// startAudio returns a running audio engine, or nil to continue silently
func startAudio(cfg *audio.Config) *audio.AudioEngine {
	if !cfg.Enabled {
		return nil
	}
	ae, err := audio.NewAudioEngine(cfg, nil)
	if err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		return nil
	}
	if err := ae.Start(); err != nil {
		log.Printf("Audio start failed: %v (continuing without audio)", err)
		return nil
	}
	return ae
}
