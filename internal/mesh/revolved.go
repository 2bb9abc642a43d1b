package mesh

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MinSectors is the fewest radial segments a cone or cylinder can be built with.
	MinSectors = 3
	// MaxSectors keeps the 4*(sectors+1) vertices of a cone or cylinder addressable by
	// uint16 indices.
	MaxSectors = MaxVertices/4 - 1
)

var (
	up   = mgl32.Vec3{0, 1, 0}
	down = mgl32.Vec3{0, -1, 0}
	apex = mgl32.Vec3{0, 1, 0}
)

// Cone builds a radius-1, height-1 cone standing on the XZ plane with its apex at (0,1,0).
//
// The lateral surface is a strip of 2*sectors+2 vertices alternating base ring and apex. Each
// strip step uses one slanted normal built from the cone's 45 degree half-angle rather than
// an exact per-face normal. The caps live in a second, duplicated vertex pool (so they can
// carry straight up/down normals) and are drawn as two indexed fans over that pool.
func Cone(sectors int, color Color) (*Mesh, error) {
	if sectors < MinSectors || sectors > MaxSectors {
		return nil, fmt.Errorf("%w: cone: %d sectors, need %d to %d", ErrInvalidMesh, sectors, MinSectors, MaxSectors)
	}
	ring := sectors + 1
	half := 2 * ring
	m := newMesh("cone", 2*half)

	dTheta := 2 * math32.Pi / float32(sectors)
	slope := math32.Sin(math32.Atan(1))

	for i := 0; i < ring; i++ {
		theta := float32(i) * dTheta
		u := float32(i) / float32(sectors)
		c, s := math32.Cos(theta), math32.Sin(theta)
		n := mgl32.Vec3{c, slope, s}.Normalize()

		m.add(mgl32.Vec3{c, 0, s}, n, mgl32.Vec2{u, 0}, Checkered)
		m.add(apex, n, mgl32.Vec2{u, 1}, Checkered)
	}
	for i := 0; i < ring; i++ {
		theta := float32(i) * dTheta
		u := float32(i) / float32(sectors)
		c, s := math32.Cos(theta), math32.Sin(theta)

		m.add(mgl32.Vec3{c, 0, s}, down, mgl32.Vec2{u, 0}, Checkered)
		m.add(apex, up, mgl32.Vec2{u, 1}, Checkered)
	}

	m.paint(color)
	m.Indices, m.Calls = capFans(sectors)
	return m, nil
}

// Cylinder builds a radius-1, height-1 cylinder standing on the XZ plane. The layout matches
// Cone: one lateral strip followed by a duplicated cap pool drawn as two indexed fans. When
// textured is false every vertex gets a zero texture coordinate and NoTexture so the shader
// uses the vertex color.
func Cylinder(sectors int, color Color, textured bool) (*Mesh, error) {
	if sectors < MinSectors || sectors > MaxSectors {
		return nil, fmt.Errorf("%w: cylinder: %d sectors, need %d to %d", ErrInvalidMesh, sectors, MinSectors, MaxSectors)
	}
	ring := sectors + 1
	half := 2 * ring
	m := newMesh("cylinder", 2*half)

	sel := NoTexture
	if textured {
		sel = Checkered
	}
	uv := func(u, v float32) mgl32.Vec2 {
		if !textured {
			return mgl32.Vec2{}
		}
		return mgl32.Vec2{u, v}
	}

	dTheta := 2 * math32.Pi / float32(sectors)
	for i := 0; i < ring; i++ {
		theta := float32(i) * dTheta
		u := float32(i) / float32(sectors)
		c, s := math32.Cos(theta), math32.Sin(theta)
		n := mgl32.Vec3{c, 0, s}

		m.add(mgl32.Vec3{c, 0, s}, n, uv(u, 0), sel)
		m.add(mgl32.Vec3{c, 1, s}, n, uv(u, 1), sel)
	}
	for i := 0; i < ring; i++ {
		theta := float32(i) * dTheta
		u := float32(i) / float32(sectors)
		c, s := math32.Cos(theta), math32.Sin(theta)

		m.add(mgl32.Vec3{c, 0, s}, down, uv(u, 0), sel)
		m.add(mgl32.Vec3{c, 1, s}, up, uv(u, 1), sel)
	}

	m.paint(color)
	m.Indices, m.Calls = capFans(sectors)
	return m, nil
}

// capFans returns the index buffer and recipe shared by Cone and Cylinder. The cap pool
// starts right after the 2*sectors+2 strip vertices and interleaves bottom and top ring
// vertices; the first fan walks the even entries and the second the odd ones.
func capFans(sectors int) ([]uint16, []DrawCall) {
	ring := sectors + 1
	half := 2 * ring

	indices := make([]uint16, 0, 2*ring)
	for i := 0; i < ring; i++ {
		indices = append(indices, uint16(half+2*i))
	}
	for i := 0; i < ring; i++ {
		indices = append(indices, uint16(half+2*i+1))
	}

	calls := []DrawCall{
		{Topology: TriangleStrip, First: 0, Count: half},
		{Topology: TriangleFan, First: 0, Count: ring, Indexed: true},
		{Topology: TriangleFan, First: ring, Count: ring, Indexed: true},
	}
	return indices, calls
}
