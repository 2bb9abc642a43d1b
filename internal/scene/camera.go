package scene

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"merry-go-round/internal/engineconfig"
	"merry-go-round/internal/xform"
)

// CameraInput is one camera control action.
type CameraInput int

const (
	MoveForward CameraInput = iota
	MoveBackward
	TurnLeft
	TurnRight
	ResetCamera
)

func (c CameraInput) String() string {
	switch c {
	case MoveForward:
		return "forward"
	case MoveBackward:
		return "backward"
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	case ResetCamera:
		return "reset"
	default:
		return fmt.Sprintf("CameraInput(%d)", int(c))
	}
}

// Camera is a look-from point, a look direction relative to it, an up vector, and an
// accumulated rotation applied on top of the resulting view.
type Camera struct {
	Eye      mgl32.Vec3
	Look     mgl32.Vec3
	Up       mgl32.Vec3
	Rotation mgl32.Mat4

	MoveStep    float32
	TurnDegrees float32

	home engineconfig.Camera
}

// NewCamera returns a camera in the configured starting pose.
func NewCamera(cfg engineconfig.Camera) *Camera {
	c := &Camera{MoveStep: cfg.MoveStep, TurnDegrees: cfg.TurnDegrees, home: cfg}
	c.Reset()
	return c
}

// Reset restores the starting pose and clears the accumulated rotation.
func (c *Camera) Reset() {
	c.Eye = mgl32.Vec3(c.home.Eye)
	c.Look = mgl32.Vec3(c.home.Look)
	c.Up = mgl32.Vec3(c.home.Up)
	c.Rotation = mgl32.Ident4()
}

// View returns rotation x lookAt(eye, eye+look, up).
func (c *Camera) View() mgl32.Mat4 {
	return c.Rotation.Mul4(mgl32.LookAtV(c.Eye, c.Eye.Add(c.Look), c.Up))
}

// Apply performs one control action. Moving steps the eye along the look direction in the
// horizontal plane; turning spins the accumulated rotation and nudges the look direction.
func (c *Camera) Apply(in CameraInput) {
	step := mgl32.Vec3{c.MoveStep, 0, c.MoveStep}
	switch in {
	case MoveForward:
		c.Eye = c.Eye.Add(mulElem(step, c.Look))
	case MoveBackward:
		c.Eye = c.Eye.Sub(mulElem(step, c.Look))
	case TurnLeft:
		c.Rotation = xform.SpinY(-c.TurnDegrees).Mul4(c.Rotation)
		c.Look = c.Look.Add(heading(-c.TurnDegrees))
	case TurnRight:
		c.Rotation = xform.SpinY(c.TurnDegrees).Mul4(c.Rotation)
		c.Look = c.Look.Sub(heading(c.TurnDegrees))
	case ResetCamera:
		c.Reset()
	}
}

func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func heading(degrees float32) mgl32.Vec3 {
	r := mgl32.DegToRad(degrees)
	return mgl32.Vec3{math32.Cos(r), 0, math32.Sin(r)}
}
