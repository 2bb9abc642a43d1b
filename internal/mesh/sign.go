package mesh

import "github.com/go-gl/mathgl/mgl32"

var signColor = mgl32.Vec3{0.8, 0.8, 0.8}

// Sign builds the billboard: one leaning quad as two triangles, textured with the
// billboard art. Its flat normal is the cross product of the two edges leaving the first
// corner.
func Sign() *Mesh {
	pts := [6]mgl32.Vec3{
		{0, 0, 18}, {0, 10, 23}, {10, 0, 13},
		{10, 0, 13}, {0, 10, 23}, {10, 10, 18},
	}
	uvs := [6]mgl32.Vec2{
		{1, 0}, {1, 1}, {0, 0},
		{0, 0}, {1, 1}, {0, 1},
	}
	n := pts[1].Sub(pts[0]).Cross(pts[2].Sub(pts[0])).Normalize()

	m := newMesh("sign", len(pts))
	for i, p := range pts {
		m.add(p, n, uvs[i], Billboard)
	}
	m.paint(Color{rgb: signColor, valid: true})
	m.Calls = []DrawCall{{Topology: Triangles, First: 0, Count: len(pts)}}
	return m
}
