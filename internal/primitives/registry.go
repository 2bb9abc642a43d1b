package primitives

import (
	"merry-go-round/internal/gpu"
	"merry-go-round/internal/mesh"
)

// Registry builds shapes on one device and remembers them so they can be released
// together. Build everything after the graphics context exists.
type Registry struct {
	dev    gpu.Device
	shapes []*Shape
}

// NewRegistry returns a registry with no shapes.
func NewRegistry(dev gpu.Device) *Registry {
	return &Registry{dev: dev}
}

func (r *Registry) add(m *mesh.Mesh, err error) (*Shape, error) {
	if err != nil {
		return nil, err
	}
	s, err := New(r.dev, m)
	if err != nil {
		return nil, err
	}
	r.shapes = append(r.shapes, s)
	return s, nil
}

// Cone builds a cone with the given number of radial sectors.
func (r *Registry) Cone(sectors int, color mesh.Color) (*Shape, error) {
	return r.add(mesh.Cone(sectors, color))
}

// Cylinder builds a cylinder; textured selects the checkered map over the vertex color.
func (r *Registry) Cylinder(sectors int, color mesh.Color, textured bool) (*Shape, error) {
	return r.add(mesh.Cylinder(sectors, color, textured))
}

// Sphere builds the unit sphere.
func (r *Registry) Sphere() (*Shape, error) {
	return r.add(mesh.Sphere(), nil)
}

// ShortCube builds a horse body.
func (r *Registry) ShortCube(color mesh.Color) (*Shape, error) {
	return r.add(mesh.ShortCube(color), nil)
}

// Sign builds the billboard.
func (r *Registry) Sign() (*Shape, error) {
	return r.add(mesh.Sign(), nil)
}

// Horse builds a horse whose head and body share color.
func (r *Registry) Horse(color mesh.Color) (*Horse, error) {
	return newHorse(r, color)
}

// Len returns the number of shapes built so far.
func (r *Registry) Len() int {
	return len(r.shapes)
}

// Close releases every shape built through r.
func (r *Registry) Close() {
	for _, s := range r.shapes {
		s.Close()
	}
	r.shapes = nil
}
