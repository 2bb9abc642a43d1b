package mesh

import "github.com/go-gl/mathgl/mgl32"

// ShortCubeTop is the height of the short cube's top face. A unit cube would have 0.5; the
// top is pulled down so the cone head sits flush on it.
const ShortCubeTop = 0.2

// cubeFaceUV is the unwrap used for every face; the checkered texture is symmetric so one
// orientation serves all six.
var cubeFaceUV = [6]mgl32.Vec2{{1, 1}, {0, 1}, {0, 0}, {1, 1}, {0, 0}, {1, 0}}

// ShortCube builds the horse body: six independently specified faces, two triangles each,
// with no shared vertices.
func ShortCube(color Color) *Mesh {
	const t, h = ShortCubeTop, 0.5
	faces := []struct {
		normal mgl32.Vec3
		pts    [6]mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, [6]mgl32.Vec3{{-h, t, h}, {-h, -h, h}, {h, -h, h}, {-h, t, h}, {h, -h, h}, {h, t, h}}},
		{mgl32.Vec3{1, 0, 0}, [6]mgl32.Vec3{{h, t, h}, {h, -h, h}, {h, -h, -h}, {h, t, h}, {h, -h, -h}, {h, t, -h}}},
		{mgl32.Vec3{0, -1, 0}, [6]mgl32.Vec3{{h, -h, h}, {-h, -h, h}, {-h, -h, -h}, {h, -h, h}, {-h, -h, -h}, {h, -h, -h}}},
		{mgl32.Vec3{0, 1, 0}, [6]mgl32.Vec3{{h, t, -h}, {-h, t, -h}, {-h, t, h}, {h, t, -h}, {-h, t, h}, {h, t, h}}},
		{mgl32.Vec3{0, 0, -1}, [6]mgl32.Vec3{{-h, -h, -h}, {-h, t, -h}, {h, t, -h}, {-h, -h, -h}, {h, t, -h}, {h, -h, -h}}},
		{mgl32.Vec3{-1, 0, 0}, [6]mgl32.Vec3{{-h, t, -h}, {-h, -h, -h}, {-h, -h, h}, {-h, t, -h}, {-h, -h, h}, {-h, t, h}}},
	}

	m := newMesh("shortcube", 6*len(faces))
	for _, f := range faces {
		for i, p := range f.pts {
			m.add(p, f.normal, cubeFaceUV[i], Checkered)
		}
	}
	m.paint(color)
	m.Calls = []DrawCall{{Topology: Triangles, First: 0, Count: m.VertexCount()}}
	return m
}
