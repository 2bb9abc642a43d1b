package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"merry-go-round/internal/gpu"
	"merry-go-round/internal/mesh"
	"merry-go-round/internal/primitives"
	"merry-go-round/internal/xform"
)

const (
	// NumArms is the number of pole and horse pairs around the carousel.
	NumArms = 4
	// ArmPhase is added to the clock per arm index before the bob sine is taken.
	ArmPhase = 90
	// DefaultBobFrequency scales the clock inside the bob sine.
	DefaultBobFrequency = 0.03

	foundationSectors = 25
	poleSectors       = 12
)

var (
	structureColor = mesh.RGB(0.6, 0.6, 0.6)

	armOffsets = [NumArms]mgl32.Vec3{{4, 0, 1}, {1, 0, -4}, {-4, 0, -1}, {-1, 0, 4}}
	// horseAxes turn each horse to face along its circular path.
	horseAxes   = [NumArms]mgl32.Vec3{{-1, 0, 0}, {0, 0, 1}, {1, 0, 0}, {0, 0, -1}}
	poleColors  = [NumArms]mesh.Color{mesh.RGB(1, 0.5, 0.5), mesh.RGB(0.5, 1, 0.5), mesh.RGB(0.5, 0.5, 1), mesh.RGB(0.5, 0.5, 0.5)}
	horseHeight = float32(2.5)
	poleScale   = mgl32.Vec3{0.1, 5, 0.1}
	horseScale  = mgl32.Vec3{0.8, 2, 0.8}
)

// Placed is one part of the carousel with the model matrix it is drawn under this frame.
// Arm is -1 for the shared central parts.
type Placed struct {
	Name  string
	Arm   int
	Model mgl32.Mat4

	shape primitives.Renderable
}

type part struct {
	name  string
	shape primitives.Renderable
	local mgl32.Mat4
}

// MerryGoRound is the carousel: a central column (base, depth ring, top cap, mid pole,
// topper sphere) and NumArms pole and horse pairs. The whole structure spins about its
// vertical axis with the clock while the horses bob out of phase.
type MerryGoRound struct {
	BobFrequency float32

	dev     gpu.Device
	reg     *primitives.Registry
	central []part
	poles   [NumArms]part
	horses  [NumArms]part
}

// NewMerryGoRound builds and uploads every carousel part on dev.
func NewMerryGoRound(dev gpu.Device) (*MerryGoRound, error) {
	reg := primitives.NewRegistry(dev)
	m := &MerryGoRound{BobFrequency: DefaultBobFrequency, dev: dev, reg: reg}
	if err := m.build(); err != nil {
		reg.Close()
		return nil, err
	}
	return m, nil
}

func (m *MerryGoRound) build() error {
	// One cone serves as both base and top; one cylinder as both depth ring and mid pole.
	foundation, err := m.reg.Cone(foundationSectors, structureColor)
	if err != nil {
		return err
	}
	column, err := m.reg.Cylinder(foundationSectors, structureColor, true)
	if err != nil {
		return err
	}
	topper, err := m.reg.Sphere()
	if err != nil {
		return err
	}

	m.central = []part{
		{"base", foundation, xform.Compose(xform.Translate(mgl32.Vec3{0, 0.1, 0}), xform.Scale(mgl32.Vec3{5, 0.2, 5}))},
		{"depth", column, xform.Compose(xform.Translate(mgl32.Vec3{0, -0.4, 0}), xform.Scale(mgl32.Vec3{5, 0.5, 5}))},
		{"top", foundation, xform.Compose(xform.Translate(mgl32.Vec3{0, 5, 0}), xform.Scale(mgl32.Vec3{5, 2, 5}))},
		{"mid", column, xform.Scale(mgl32.Vec3{1, 5, 1})},
		{"sphere", topper, xform.Translate(mgl32.Vec3{0, 7.5, 0})},
	}

	for i := 0; i < NumArms; i++ {
		pole, err := m.reg.Cylinder(poleSectors, poleColors[i], false)
		if err != nil {
			return err
		}
		m.poles[i] = part{"pole", pole, xform.Compose(xform.Translate(armOffsets[i]), xform.Scale(poleScale))}

		horse, err := m.reg.Horse(structureColor)
		if err != nil {
			return err
		}
		at := armOffsets[i].Add(mgl32.Vec3{0, horseHeight, 0})
		m.horses[i] = part{"horse", horse, xform.Compose(
			xform.Translate(at), xform.Rotate(90, horseAxes[i]), xform.Scale(horseScale))}
	}
	return nil
}

// WorldTransform places the whole carousel: translate(position) x spin(time). Time is in
// degrees. A position that is not exactly three numbers is ignored.
func WorldTransform(time float32, position []float32) mgl32.Mat4 {
	return xform.Placement(position).Mul4(xform.SpinY(time))
}

// Bob returns the vertical offset of the horse on arm at the given time.
func (m *MerryGoRound) Bob(arm int, time float32) float32 {
	return math32.Sin(m.BobFrequency * (time + float32(arm*ArmPhase)))
}

// Transforms returns every part in draw order with its model matrix: the central parts,
// then the poles, then the horses. The result depends only on time and position.
func (m *MerryGoRound) Transforms(time float32, position []float32) []Placed {
	world := WorldTransform(time, position)
	out := make([]Placed, 0, len(m.central)+2*NumArms)
	for _, p := range m.central {
		out = append(out, Placed{Name: p.name, Arm: -1, Model: world.Mul4(p.local), shape: p.shape})
	}
	for i, p := range m.poles {
		out = append(out, Placed{Name: p.name, Arm: i, Model: world.Mul4(p.local), shape: p.shape})
	}
	for i, p := range m.horses {
		bob := mgl32.Translate3D(0, m.Bob(i, time), 0)
		out = append(out, Placed{Name: p.name, Arm: i, Model: world.Mul4(bob.Mul4(p.local)), shape: p.shape})
	}
	return out
}

// Render uploads each part's transform and draws it.
func (m *MerryGoRound) Render(time float32, position []float32) {
	for _, p := range m.Transforms(time, position) {
		m.dev.SetTransform(xform.New(p.Model))
		p.shape.Render()
	}
}

// Close releases every carousel buffer.
func (m *MerryGoRound) Close() {
	m.reg.Close()
}
