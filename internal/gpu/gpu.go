// Package gpu describes what the scene needs from a graphics context: mesh upload, the
// frame-global matrices, a per-part transform, and draw calls. The naming contract with
// the shader program lives here too, so no other package spells out a location name.
package gpu

import (
	"errors"

	"merry-go-round/internal/mesh"
	"merry-go-round/internal/xform"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrUnknownHandle = errors.New("unknown mesh handle")

// Attrib is a per-vertex shader input.
type Attrib int

const (
	AttribPosition Attrib = iota
	AttribColor
	AttribNormal
	AttribTexCoords
	AttribTexIndex
)

// Attribs lists every vertex attribute the shader program declares.
var Attribs = []Attrib{AttribPosition, AttribColor, AttribNormal, AttribTexCoords, AttribTexIndex}

// Name is the attribute's identifier in the shader source.
func (a Attrib) Name() string {
	switch a {
	case AttribPosition:
		return "vPosition"
	case AttribColor:
		return "vColor"
	case AttribNormal:
		return "vNormal"
	case AttribTexCoords:
		return "vTexCoords"
	case AttribTexIndex:
		return "vTexIndex"
	default:
		return ""
	}
}

// Uniform is a shader uniform set from the CPU side.
type Uniform int

const (
	UniformTransformation Uniform = iota
	UniformNormalTransformation
	UniformModelView
	UniformProjection
	UniformCheckeredMap
	UniformBillboardMap
)

// Uniforms lists every uniform the shader program declares.
var Uniforms = []Uniform{
	UniformTransformation, UniformNormalTransformation, UniformModelView,
	UniformProjection, UniformCheckeredMap, UniformBillboardMap,
}

// Name is the uniform's identifier in the shader source.
func (u Uniform) Name() string {
	switch u {
	case UniformTransformation:
		return "vTransformation"
	case UniformNormalTransformation:
		return "vNormalTransformation"
	case UniformModelView:
		return "vModelView"
	case UniformProjection:
		return "vProjection"
	case UniformCheckeredMap:
		return "texMapCheckered"
	case UniformBillboardMap:
		return "texMapMGR"
	default:
		return ""
	}
}

// Handle names a mesh uploaded to a Device.
type Handle int

// Device is the graphics context the scene draws through. Calls happen on the render
// thread only.
type Device interface {
	// Upload copies m into GPU buffers. m must not change afterwards.
	Upload(m *mesh.Mesh) (Handle, error)
	// Release frees the buffers behind h.
	Release(h Handle)

	// Begin clears the frame; End finishes it.
	Begin()
	End()

	SetProjection(p mgl32.Mat4)
	SetView(v mgl32.Mat4)
	// SetTransform sets the object transform used by subsequent draws.
	SetTransform(t xform.Transform)
	// Draw issues step call of the recipe of the mesh behind h.
	Draw(h Handle, call int)
}
