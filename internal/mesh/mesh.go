package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidMesh is returned when a mesh violates its own layout (mismatched attribute
// lengths, out-of-range indices or draw calls).
var ErrInvalidMesh = errors.New("invalid mesh")

// MaxVertices is the largest vertex pool a uint16 index can address.
const MaxVertices = math.MaxUint16 + 1

// Topology is the primitive assembly used by a draw call.
type Topology int

const (
	Triangles Topology = iota
	TriangleStrip
	TriangleFan
)

func (t Topology) String() string {
	switch t {
	case Triangles:
		return "triangles"
	case TriangleStrip:
		return "strip"
	case TriangleFan:
		return "fan"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// TexSelect tells the shader which texture (if any) a vertex samples.
type TexSelect float32

const (
	NoTexture TexSelect = 0
	Checkered TexSelect = 1
	Billboard TexSelect = 2
)

// DrawCall is one step of a mesh's render recipe. First and Count are in vertices for
// unindexed calls and in index-buffer entries for indexed ones.
type DrawCall struct {
	Topology Topology
	First    int
	Count    int
	Indexed  bool
}

// Mesh holds the static per-vertex attributes of one shape and the fixed recipe used to
// draw it. All per-vertex slices have the same length. A Mesh is never modified after its
// generator returns it.
type Mesh struct {
	Name      string
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Colors    []mgl32.Vec3
	TexCoords []mgl32.Vec2
	TexIndex  []TexSelect
	Indices   []uint16
	Calls     []DrawCall
}

func newMesh(name string, capacity int) *Mesh {
	return &Mesh{
		Name:      name,
		Positions: make([]mgl32.Vec3, 0, capacity),
		Normals:   make([]mgl32.Vec3, 0, capacity),
		TexCoords: make([]mgl32.Vec2, 0, capacity),
		TexIndex:  make([]TexSelect, 0, capacity),
	}
}

// add appends one vertex; colors are filled in afterwards by paint.
func (m *Mesh) add(p, n mgl32.Vec3, uv mgl32.Vec2, sel TexSelect) {
	m.Positions = append(m.Positions, p)
	m.Normals = append(m.Normals, n)
	m.TexCoords = append(m.TexCoords, uv)
	m.TexIndex = append(m.TexIndex, sel)
}

// paint gives every vertex a color: the validated one, or a fresh random color per vertex.
func (m *Mesh) paint(c Color) {
	m.Colors = make([]mgl32.Vec3, len(m.Positions))
	for i := range m.Colors {
		m.Colors[i] = c.sample()
	}
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// Validate checks the mesh layout invariants.
func (m *Mesh) Validate() error {
	n := len(m.Positions)
	if len(m.Normals) != n || len(m.Colors) != n || len(m.TexCoords) != n || len(m.TexIndex) != n {
		return fmt.Errorf("%w: %s: attribute lengths positions=%d normals=%d colors=%d texcoords=%d texindex=%d",
			ErrInvalidMesh, m.Name, n, len(m.Normals), len(m.Colors), len(m.TexCoords), len(m.TexIndex))
	}
	if n > MaxVertices {
		return fmt.Errorf("%w: %s: %d vertices, uint16 indices address at most %d", ErrInvalidMesh, m.Name, n, MaxVertices)
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: %s: index %d = %d out of range [0,%d)", ErrInvalidMesh, m.Name, i, idx, n)
		}
	}
	for i, dc := range m.Calls {
		limit := n
		if dc.Indexed {
			limit = len(m.Indices)
		}
		if dc.First < 0 || dc.Count < 3 || dc.First+dc.Count > limit {
			return fmt.Errorf("%w: %s: draw call %d (%s first=%d count=%d) exceeds %d",
				ErrInvalidMesh, m.Name, i, dc.Topology, dc.First, dc.Count, limit)
		}
		if dc.Topology == Triangles && dc.Count%3 != 0 {
			return fmt.Errorf("%w: %s: draw call %d has %d vertices, not a multiple of 3",
				ErrInvalidMesh, m.Name, i, dc.Count)
		}
	}
	return nil
}

// Triangles resolves a draw call into a triangle list of vertex indices. Strips alternate
// winding so every triangle keeps the orientation of the first.
func (m *Mesh) Triangles(dc DrawCall) []uint16 {
	vertex := func(k int) uint16 {
		if dc.Indexed {
			return m.Indices[dc.First+k]
		}
		return uint16(dc.First + k)
	}

	var tris []uint16
	switch dc.Topology {
	case Triangles:
		tris = make([]uint16, 0, dc.Count)
		for k := 0; k+2 < dc.Count; k += 3 {
			tris = append(tris, vertex(k), vertex(k+1), vertex(k+2))
		}
	case TriangleStrip:
		tris = make([]uint16, 0, 3*(dc.Count-2))
		for k := 0; k+2 < dc.Count; k++ {
			if k%2 == 0 {
				tris = append(tris, vertex(k), vertex(k+1), vertex(k+2))
			} else {
				tris = append(tris, vertex(k+1), vertex(k), vertex(k+2))
			}
		}
	case TriangleFan:
		tris = make([]uint16, 0, 3*(dc.Count-2))
		for k := 1; k+1 < dc.Count; k++ {
			tris = append(tris, vertex(0), vertex(k), vertex(k+1))
		}
	}
	return tris
}
