package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"merry-go-round/internal/commands"
	"merry-go-round/internal/controls"
	"merry-go-round/internal/debug"
	"merry-go-round/internal/engineconfig"
	"merry-go-round/internal/gpu"
	"merry-go-round/internal/graphics"
	"merry-go-round/internal/logger"
	"merry-go-round/internal/scene"
	"merry-go-round/internal/terminal"
	"merry-go-round/internal/textures"
)

const dumpScale = 8

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", engineconfig.EngineConfigPath, "path to the YAML preferences")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (overrides the config)")
	headless := flag.Bool("headless", false, "run without a window against an in-memory device")
	frames := flag.Int("frames", 600, "frames to run with -headless")
	dumpDir := flag.String("dump-textures", "", "write the texture maps as PNGs into this directory and exit")
	flag.Parse()

	prefs, cfgErr := engineconfig.Load(*configPath)
	level := prefs.Log.Level
	if *logLevel != "" {
		level = *logLevel
	}
	log := logger.New(prefs.Log.Dir, level)
	if cfgErr != nil {
		log.Warn("config unreadable, using defaults", slog.String("path", *configPath), slog.Any("error", cfgErr))
	}

	switch {
	case *dumpDir != "":
		paths, err := textures.Dump(*dumpDir, dumpScale)
		if err != nil {
			log.Error("texture dump failed", slog.Any("error", err))
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		for _, p := range paths {
			fmt.Println(p)
		}
		return 0
	case *headless:
		return runHeadless(prefs, *frames, log)
	}

	if err := graphics.Open(prefs.Window); err != nil {
		log.Error("no graphics", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, "merry-go-round needs OpenGL 3.3 and a display:", err)
		return 1
	}
	defer graphics.Close()

	dev, err := graphics.NewDevice(prefs.Window.ClearColor, log)
	if err != nil {
		log.Error("graphics device", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer dev.Close()

	scn, err := scene.New(dev, prefs, graphics.Aspect(), log)
	if err != nil {
		log.Error("scene", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer scn.Close()

	dbg := debug.New()
	dbg.SetShowFPS(prefs.Debug.ShowFPS)
	dbg.SetShowMemAlloc(prefs.Debug.ShowMemAlloc)
	dbg.ShowClock = prefs.Debug.ShowClock
	dbg.Clock = scn

	reg := commands.NewRegistry()
	commands.RegisterScene(reg, scn, dbg, *configPath, log)
	term := terminal.New(log, reg)
	keys := &controls.Keyboard{Target: scn, Log: log, Enabled: func() bool { return !term.IsOpen() }}
	log.Log(scene.Help)

	update := func() {
		term.Update()
		keys.Update()
	}
	draw := func() bool {
		more := scn.Frame()
		term.Draw()
		dbg.Draw()
		return more
	}
	frames := graphics.Run(update, draw)
	log.Info("exit", slog.Int("frames", frames), slog.Float64("time", float64(scn.Time())), slog.Bool("halted", scn.Halted()))
	return 0
}

// runHeadless drives the scene against a recording device and reports what was drawn.
func runHeadless(prefs engineconfig.EnginePrefs, frames int, log *logger.Logger) int {
	dev := gpu.NewRecorder()
	w, h := prefs.Window.Width, prefs.Window.Height
	aspect := float32(1)
	if h > 0 {
		aspect = float32(w) / float32(h)
	}
	scn, err := scene.New(dev, prefs, aspect, log)
	if err != nil {
		log.Error("scene", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	drawn := 0
	for i := 0; i < frames; i++ {
		dev.Reset()
		if !scn.Frame() {
			break
		}
		drawn++
	}
	draws := dev.Count(gpu.OpDraw)
	scn.Close()
	log.Info("headless run", slog.Int("frames", drawn), slog.Float64("time", float64(scn.Time())),
		slog.Int("draws_per_frame", draws), slog.Int("live_meshes", dev.Live()))
	fmt.Printf("%d frames, %d draw calls per frame, clock %.1f\n", drawn, draws, scn.Time())
	return 0
}
