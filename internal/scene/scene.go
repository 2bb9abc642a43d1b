package scene

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"merry-go-round/internal/engineconfig"
	"merry-go-round/internal/gpu"
	"merry-go-round/internal/logger"
	"merry-go-round/internal/primitives"
	"merry-go-round/internal/xform"
)

// Help lists the camera keys. Printed to the console on H or any unbound key.
const Help = "Camera: W forward, S back, A turn left, D turn right, R reset, Q halt, H help"

// Scene owns the animation clock, the camera, and everything drawn each frame: the
// billboard in world space and the carousel at its world position.
type Scene struct {
	Camera   *Camera
	Position []float32

	dev      gpu.Device
	log      *logger.Logger
	clock    float32
	step     float32
	halted   bool
	reg      *primitives.Registry
	sign     *primitives.Shape
	carousel *MerryGoRound
}

// New builds the scene on dev and sets the projection once from prefs and aspect.
func New(dev gpu.Device, prefs engineconfig.EnginePrefs, aspect float32, log *logger.Logger) (*Scene, error) {
	s := &Scene{
		Camera:   NewCamera(prefs.Camera),
		Position: prefs.Animation.WorldPosition,
		dev:      dev,
		log:      log,
		step:     prefs.Animation.TimeStep,
		reg:      primitives.NewRegistry(dev),
	}
	if _, ok := xform.ParsePosition(s.Position); !ok && s.Position != nil {
		log.Warn("world position ignored", slog.Any("position", s.Position))
	}

	var err error
	if s.sign, err = s.reg.Sign(); err != nil {
		s.reg.Close()
		return nil, fmt.Errorf("scene: sign: %w", err)
	}
	if s.carousel, err = NewMerryGoRound(dev); err != nil {
		s.reg.Close()
		return nil, fmt.Errorf("scene: carousel: %w", err)
	}
	if prefs.Animation.BobFrequency != 0 {
		s.carousel.BobFrequency = prefs.Animation.BobFrequency
	}

	c := prefs.Camera
	dev.SetProjection(mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, c.Near, c.Far))
	log.Info("scene ready", slog.Float64("aspect", float64(aspect)), slog.Float64("time_step", float64(s.step)))
	return s, nil
}

// Carousel returns the merry-go-round.
func (s *Scene) Carousel() *MerryGoRound { return s.carousel }

func (s *Scene) Time() float32 { return s.clock }

func (s *Scene) TimeStep() float32 { return s.step }

// SetTimeStep changes how far the clock advances per frame. Zero freezes the animation.
func (s *Scene) SetTimeStep(dt float32) { s.step = dt }

// AdvanceTime moves the clock one step forward.
func (s *Scene) AdvanceTime() { s.clock += s.step }

// ApplyCameraInput forwards a control action to the camera.
func (s *Scene) ApplyCameraInput(in CameraInput) {
	s.Camera.Apply(in)
	s.log.Debug("camera", slog.String("input", in.String()))
}

// RequestHalt stops the loop after the next clear.
func (s *Scene) RequestHalt() {
	if !s.halted {
		s.log.Log("halted")
	}
	s.halted = true
}

func (s *Scene) Halted() bool { return s.halted }

// Frame advances the clock and draws one frame. It returns false once the scene has been
// halted, after clearing, and the caller should stop scheduling frames.
func (s *Scene) Frame() bool {
	s.AdvanceTime()
	s.dev.Begin()
	if s.halted {
		s.dev.End()
		return false
	}
	s.dev.SetView(s.Camera.View())
	s.dev.SetTransform(xform.Identity)
	s.sign.Render()
	s.carousel.Render(s.clock, s.Position)
	s.dev.End()
	return true
}

// Close releases every buffer the scene uploaded.
func (s *Scene) Close() {
	if s.carousel != nil {
		s.carousel.Close()
	}
	s.reg.Close()
}
