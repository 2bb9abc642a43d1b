package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// SphereLongitudes is the number of segments around each latitude ring.
	SphereLongitudes = 20
	// SphereLatitudes is the number of latitude bands from pole to pole.
	SphereLatitudes = 35
)

var sphereColor = mgl32.Vec3{0.6, 0.6, 0.6}

// Sphere builds the unit sphere centered at the origin.
//
// Layout: top pole, its ring; bottom pole, its ring (each drawn as a fan of
// SphereLongitudes+2 vertices), then SphereLatitudes-2 bands of 2*(SphereLongitudes+1)
// vertices drawn as strips. Normals are the normalized positions.
func Sphere() *Mesh {
	const (
		nLong = SphereLongitudes
		nLat  = SphereLatitudes
	)
	fan := nLong + 2
	band := 2 * (nLong + 1)
	m := newMesh("sphere", 2*fan+(nLat-2)*band)

	vertex := func(p mgl32.Vec3, uv mgl32.Vec2) {
		m.add(p, p.Normalize(), uv, Checkered)
	}

	phi := math32.Pi / nLat
	sinPhi, cosPhi := math32.Sin(phi), math32.Cos(phi)
	dTheta := 2 * math32.Pi / nLong

	vertex(mgl32.Vec3{0, 1, 0}, mgl32.Vec2{1, 1})
	for i := 0; i <= nLong; i++ {
		theta := float32(i) * dTheta
		vertex(mgl32.Vec3{sinPhi * math32.Cos(theta), cosPhi, sinPhi * math32.Sin(theta)},
			mgl32.Vec2{0, float32(i) / nLat})
	}

	vertex(mgl32.Vec3{0, -1, 0}, mgl32.Vec2{0, 0})
	for i := 0; i <= nLong; i++ {
		theta := float32(i) * dTheta
		vertex(mgl32.Vec3{sinPhi * math32.Cos(theta), -cosPhi, sinPhi * math32.Sin(theta)},
			mgl32.Vec2{0, float32(i) / nLat})
	}

	// Bands climb from just above the bottom cap to just below the top cap.
	dPhi := math32.Pi / nLat
	for i := 0; i < nLat-2; i++ {
		phi1 := float32(i+1) * dPhi
		phi2 := phi1 + dPhi
		sin1, cos1 := math32.Sin(phi1), math32.Cos(phi1)
		sin2, cos2 := math32.Sin(phi2), math32.Cos(phi2)
		v := float32(i) / nLat
		for j := 0; j <= nLong; j++ {
			theta := float32(j) * dTheta
			c, s := math32.Cos(theta), math32.Sin(theta)
			u := float32(j) / nLong
			vertex(mgl32.Vec3{sin1 * c, -cos1, sin1 * s}, mgl32.Vec2{u, v})
			vertex(mgl32.Vec3{sin2 * c, -cos2, sin2 * s}, mgl32.Vec2{u, v})
		}
	}

	m.paint(Color{rgb: sphereColor, valid: true})

	m.Calls = make([]DrawCall, 0, 2+nLat-2)
	m.Calls = append(m.Calls,
		DrawCall{Topology: TriangleFan, First: 0, Count: fan},
		DrawCall{Topology: TriangleFan, First: fan, Count: fan})
	for i := 0; i < nLat-2; i++ {
		m.Calls = append(m.Calls, DrawCall{Topology: TriangleStrip, First: 2*fan + i*band, Count: band})
	}
	return m
}
