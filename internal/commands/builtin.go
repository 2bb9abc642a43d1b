package commands

import (
	"flag"
	"fmt"
	"log/slog"

	"merry-go-round/internal/engineconfig"
	"merry-go-round/internal/logger"
	"merry-go-round/internal/scene"
)

// Scene is the part of the running scene the console can drive.
type Scene interface {
	RequestHalt()
	ApplyCameraInput(in scene.CameraInput)
	TimeStep() float32
	SetTimeStep(dt float32)
}

// Overlay is the debug overlay toggled by "cmd fps".
type Overlay interface {
	SetShowFPS(show bool)
}

// RegisterScene adds halt, reset, step, fps and help. When configPath is set, "cmd fps"
// also records the choice there so the next run starts with it.
func RegisterScene(r *Registry, s Scene, overlay Overlay, configPath string, log *logger.Logger) {
	r.Register("halt", "stop the animation", nil, func() error {
		s.RequestHalt()
		return nil
	})

	r.Register("reset", "restore the starting camera", nil, func() error {
		s.ApplyCameraInput(scene.ResetCamera)
		log.Log("camera reset")
		return nil
	})

	stepFS := flag.NewFlagSet("step", flag.ContinueOnError)
	dt := stepFS.Float64("dt", -1, "clock advance per frame in degrees")
	r.Register("step", "-dt <degrees> sets the clock advance per frame", stepFS, func() error {
		if *dt < 0 {
			log.Log(fmt.Sprintf("step is %.3g", s.TimeStep()))
			return nil
		}
		s.SetTimeStep(float32(*dt))
		log.Info("time step changed", slog.Float64("dt", *dt))
		log.Log(fmt.Sprintf("step set to %.3g", *dt))
		*dt = -1
		return nil
	})

	fpsFS := flag.NewFlagSet("fps", flag.ContinueOnError)
	show := fpsFS.Bool("show", true, "show the FPS counter")
	r.Register("fps", "-show=<bool> toggles the FPS counter", fpsFS, func() error {
		want := *show
		*show = true
		overlay.SetShowFPS(want)
		if configPath == "" {
			return nil
		}
		if err := engineconfig.Update(configPath, func(p *engineconfig.EnginePrefs) { p.Debug.ShowFPS = want }); err != nil {
			return fmt.Errorf("fps: saving preference: %w", err)
		}
		log.Info("fps preference saved", slog.String("path", configPath), slog.Bool("show", want))
		return nil
	})

	r.Register("help", "list commands and keys", nil, func() error {
		for _, line := range r.Usage() {
			log.Log(line)
		}
		log.Log(scene.Help)
		return nil
	})
}
