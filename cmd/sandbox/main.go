// Command sandbox runs the layer stack on a terminal: a typing scene at the bottom, the
// input inspector overlay above it, and optional audio click and event trace overlays.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lixenwraith/strata/audio"
	"github.com/lixenwraith/strata/config"
	"github.com/lixenwraith/strata/engine"
	"github.com/lixenwraith/strata/layers"
	"github.com/lixenwraith/strata/logging"
	"github.com/lixenwraith/strata/platform"
	"github.com/lixenwraith/strata/terminal"
)

var (
	configFlag = flag.String("config", "", "YAML configuration file")
	traceFlag  = flag.String("trace", "", "Event trace file (overrides trace.file)")
	dumpFlag   = flag.Bool("dump-config", false, "Print the effective configuration and exit")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sandbox: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *traceFlag != "" {
		cfg.Trace.File = *traceFlag
	}

	if *dumpFlag {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	// Log output must not share the terminal with the screen
	logOut := io.Discard
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	level := cfg.LogLevel()
	logging.Init(logging.New(logOut, level, "core"), logging.New(logOut, level, "app"))
	log := logging.App()

	var recorder *layers.Recorder
	if cfg.Trace.File != "" {
		trace, err := os.Create(cfg.Trace.File)
		if err != nil {
			return fmt.Errorf("open trace: %w", err)
		}
		defer trace.Close()
		if recorder, err = layers.NewRecorder(trace, cfg.Trace.Types); err != nil {
			return err
		}
	}

	player := openAudio(cfg.Audio, log)
	defer player.Close()

	win, surface, err := terminal.Open(terminal.Options{
		Title: cfg.Title,
		Mouse: cfg.Mouse,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	// Restore the terminal before the panic reaches the shell
	defer func() {
		win.HandleCrash(recover())
	}()

	host := engine.HostFuncs{
		Close: func(ctx *engine.DispatchContext) {
			log.Log(logging.LevelInfo, "close requested")
			ctx.Exit()
		},
		Resize: func(ctx *engine.DispatchContext, size platform.Size) {
			ctx.Resize(size)
		},
	}

	configure := func(ctx *engine.DispatchContext) {
		ctx.PushLayer(NewTyper(player, uint64(time.Now().UnixNano())))

		inspector := layers.NewInspector()
		inspector.SetVisible(cfg.Inspector)
		ctx.PushOverlay(inspector)

		if cfg.Audio.Enabled {
			ctx.PushOverlay(layers.NewClicker(player))
		}

		// Newest overlay, so it sees every event before anything can consume it
		if recorder != nil {
			ctx.PushOverlay(recorder)
		}
	}

	return engine.Run(cfg.EngineConfig(), win, surface, host, configure)
}

// openAudio starts the speaker when enabled; any failure degrades to silence
func openAudio(cfg config.Audio, log logging.Logger) audio.Player {
	if !cfg.Enabled {
		return audio.Nop{}
	}
	sp := audio.NewSpeaker(cfg.SampleRate, cfg.Volume)
	if err := sp.Init(); err != nil {
		log.Log(logging.LevelWarn, "audio unavailable, continuing without sound", "err", err)
		return audio.Nop{}
	}
	return sp
}
