package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merry-go-round/internal/engineconfig"
	"merry-go-round/internal/gpu"
	"merry-go-round/internal/xform"
)

const eps = 1e-4

// near is an absolute comparison for mgl32's ApproxFuncEqual.
func near(a, b float32) bool {
	return math32.Abs(a-b) <= eps
}

func newScene(t *testing.T) (*Scene, *gpu.Recorder) {
	t.Helper()
	dev := gpu.NewRecorder()
	s, err := New(dev, engineconfig.Default(), 4.0/3.0, nil)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, dev
}

func TestWorldTransform(t *testing.T) {
	pos := []float32{6, 0, 6}
	at0 := WorldTransform(0, pos).Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.True(t, at0.ApproxFuncEqual(mgl32.Vec4{7, 0, 6, 1}, near), "%v", at0)

	at90 := WorldTransform(90, pos).Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.True(t, at90.ApproxFuncEqual(mgl32.Vec4{6, 0, 7, 1}, near), "%v", at90)
}

func TestMalformedPositionIsOrigin(t *testing.T) {
	for _, p := range [][]float32{nil, {1, 2}, {1, 2, 3, 4}} {
		assert.True(t, WorldTransform(30, p).ApproxFuncEqual(xform.SpinY(30), near), "%v", p)
	}
}

func TestBobPhasesDiffer(t *testing.T) {
	m, err := NewMerryGoRound(gpu.NewRecorder())
	require.NoError(t, err)
	defer m.Close()

	for _, tm := range []float32{0, 17.3, 400} {
		seen := map[float32]bool{}
		for arm := 0; arm < NumArms; arm++ {
			b := m.Bob(arm, tm)
			assert.InDelta(t, math32.Sin(0.03*(tm+float32(arm*90))), b, eps)
			assert.False(t, seen[b], "arm %d at %v", arm, tm)
			seen[b] = true
		}
	}
}

func TestTransformsOrderAndPlacement(t *testing.T) {
	m, err := NewMerryGoRound(gpu.NewRecorder())
	require.NoError(t, err)
	defer m.Close()

	parts := m.Transforms(0, nil)
	var names []string
	for _, p := range parts {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{
		"base", "depth", "top", "mid", "sphere",
		"pole", "pole", "pole", "pole",
		"horse", "horse", "horse", "horse",
	}, names)

	for i := 0; i < NumArms; i++ {
		horse := parts[5+NumArms+i]
		assert.Equal(t, i, horse.Arm)
		got := horse.Model.Col(3).Vec3()
		want := armOffsets[i].Add(mgl32.Vec3{0, horseHeight + m.Bob(i, 0), 0})
		assert.True(t, got.ApproxFuncEqual(want, near), "arm %d: %v", i, got)
	}

	sphere := parts[4].Model.Col(3).Vec3()
	assert.True(t, sphere.ApproxFuncEqual(mgl32.Vec3{0, 7.5, 0}, near))
}

func TestRenderUploadsTransformBeforeEachPart(t *testing.T) {
	dev := gpu.NewRecorder()
	m, err := NewMerryGoRound(dev)
	require.NoError(t, err)
	defer m.Close()

	pos := []float32{6, 0, 6}
	m.Render(42, pos)
	parts := m.Transforms(42, pos)

	var transforms []xform.Transform
	for _, c := range dev.Commands {
		if c.Op == gpu.OpTransform {
			transforms = append(transforms, c.Transform)
		}
	}
	require.Len(t, transforms, len(parts))
	for i, p := range parts {
		assert.Equal(t, p.Model, transforms[i].Model)
		assert.Equal(t, xform.NormalMatrix(p.Model), transforms[i].Normal)
	}
	assert.Equal(t, gpu.OpTransform, dev.Commands[0].Op)
}

func TestFrameSequence(t *testing.T) {
	s, dev := newScene(t)
	require.Equal(t, gpu.OpProjection, dev.Commands[0].Op)
	dev.Reset()

	require.True(t, s.Frame())
	assert.InDelta(t, 0.8, s.Time(), eps)

	cmds := dev.Commands
	assert.Equal(t, gpu.OpBegin, cmds[0].Op)
	assert.Equal(t, gpu.OpView, cmds[1].Op)
	assert.Equal(t, s.Camera.View(), cmds[1].Matrix)
	assert.Equal(t, gpu.OpTransform, cmds[2].Op)
	assert.Equal(t, xform.Identity, cmds[2].Transform)
	assert.Equal(t, "sign", cmds[3].Mesh)
	assert.Equal(t, gpu.OpEnd, cmds[len(cmds)-1].Op)
	assert.Equal(t, 1+len(s.Carousel().Transforms(0, nil)), dev.Count(gpu.OpTransform))
	assert.Zero(t, dev.Count(gpu.OpProjection))
}

func TestFramesAreDeterministic(t *testing.T) {
	a, devA := newScene(t)
	b, devB := newScene(t)
	for i := 0; i < 5; i++ {
		a.Frame()
		b.Frame()
	}
	assert.Equal(t, devA.Commands, devB.Commands)
}

func TestHaltClearsThenStops(t *testing.T) {
	s, dev := newScene(t)
	dev.Reset()

	s.RequestHalt()
	assert.True(t, s.Halted())
	assert.False(t, s.Frame())
	require.Len(t, dev.Commands, 2)
	assert.Equal(t, gpu.OpBegin, dev.Commands[0].Op)
	assert.Equal(t, gpu.OpEnd, dev.Commands[1].Op)
}

func TestTimeStep(t *testing.T) {
	s, _ := newScene(t)
	s.SetTimeStep(0)
	s.Frame()
	assert.Zero(t, s.Time())
	s.SetTimeStep(2)
	s.AdvanceTime()
	assert.Equal(t, float32(2), s.Time())
}

func TestCloseReleasesEverything(t *testing.T) {
	dev := gpu.NewRecorder()
	s, err := New(dev, engineconfig.Default(), 1, nil)
	require.NoError(t, err)
	assert.Positive(t, dev.Live())
	s.Close()
	assert.Zero(t, dev.Live())
}

func TestCameraMoves(t *testing.T) {
	c := NewCamera(engineconfig.Default().Camera)
	assert.Equal(t, mgl32.LookAtV(c.Eye, c.Eye.Add(c.Look), c.Up), c.View())

	c.Apply(MoveForward)
	assert.True(t, c.Eye.ApproxFuncEqual(mgl32.Vec3{-2.4, 3, -2.4}, near), "%v", c.Eye)
	c.Apply(MoveBackward)
	assert.True(t, c.Eye.ApproxFuncEqual(mgl32.Vec3{-3, 3, -3}, near), "%v", c.Eye)
}

func TestCameraTurns(t *testing.T) {
	c := NewCamera(engineconfig.Default().Camera)
	c.Apply(TurnLeft)
	assert.True(t, c.Rotation.ApproxFuncEqual(xform.SpinY(-2), near))
	wantLook := mgl32.Vec3{6 + math32.Cos(mgl32.DegToRad(-2)), 0, 6 + math32.Sin(mgl32.DegToRad(-2))}
	assert.True(t, c.Look.ApproxFuncEqual(wantLook, near), "%v", c.Look)

	c.Apply(TurnRight)
	assert.True(t, c.Rotation.ApproxFuncEqual(mgl32.Ident4(), near))
	// The look nudges do not cancel: the heading drifts toward -z.
	assert.InDelta(t, 6-2*math32.Sin(mgl32.DegToRad(2)), c.Look.Z(), eps)

	c.Apply(ResetCamera)
	assert.Equal(t, mgl32.Vec3{6, 0, 6}, c.Look)
	assert.Equal(t, mgl32.Ident4(), c.Rotation)
}
