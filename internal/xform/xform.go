// Package xform composes the 4x4 model transforms and derived normal matrices uploaded
// for every drawn part.
package xform

import "github.com/go-gl/mathgl/mgl32"

// Transform is a model matrix together with the matrix that keeps normals perpendicular to
// surfaces under it (the inverse transpose of its upper-left 3x3).
type Transform struct {
	Model  mgl32.Mat4
	Normal mgl32.Mat3
}

// Identity is the transform uploaded before any part sets its own.
var Identity = Transform{Model: mgl32.Ident4(), Normal: mgl32.Ident3()}

// New derives the normal matrix for m.
func New(m mgl32.Mat4) Transform {
	return Transform{Model: m, Normal: NormalMatrix(m)}
}

// NormalMatrix returns the inverse transpose of the upper-left 3x3 of m. A singular m
// yields the zero matrix.
func NormalMatrix(m mgl32.Mat4) mgl32.Mat3 {
	return m.Mat3().Inv().Transpose()
}

// Compose multiplies ms left to right, so the last matrix is applied to a vertex first.
func Compose(ms ...mgl32.Mat4) mgl32.Mat4 {
	out := mgl32.Ident4()
	for _, m := range ms {
		out = out.Mul4(m)
	}
	return out
}

// Translate returns a translation by v.
func Translate(v mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(v.X(), v.Y(), v.Z())
}

// Scale returns a non-uniform scale by v.
func Scale(v mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Scale3D(v.X(), v.Y(), v.Z())
}

// Rotate returns a rotation of degrees about axis, counterclockwise when looking down the
// axis toward the origin.
func Rotate(degrees float32, axis mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3D(mgl32.DegToRad(degrees), axis.Normalize())
}

// SpinY returns a rotation of degrees about +Y that turns clockwise when seen from above.
// The carousel and the camera both turn this way for positive angles.
func SpinY(degrees float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(-mgl32.DegToRad(degrees))
}

// ParsePosition accepts a position given as exactly three numbers. Anything else reports
// false and the caller treats the position as absent.
func ParsePosition(p []float32) (mgl32.Vec3, bool) {
	if len(p) != 3 {
		return mgl32.Vec3{}, false
	}
	return mgl32.Vec3{p[0], p[1], p[2]}, true
}

// Placement returns the translation for a position given as in ParsePosition; malformed
// input is the identity.
func Placement(p []float32) mgl32.Mat4 {
	v, ok := ParsePosition(p)
	if !ok {
		return mgl32.Ident4()
	}
	return Translate(v)
}
