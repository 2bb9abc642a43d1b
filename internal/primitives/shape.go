package primitives

import (
	"fmt"

	"merry-go-round/internal/gpu"
	"merry-go-round/internal/mesh"
)

// Renderable draws itself under whatever transform is current on its device.
type Renderable interface {
	Render()
}

// Shape is a mesh together with the GPU buffers it was uploaded to. The buffers belong to
// the Shape alone: they are created by New and released by the first Close.
type Shape struct {
	dev      gpu.Device
	mesh     *mesh.Mesh
	handle   gpu.Handle
	released bool
}

// New uploads m to dev.
func New(dev gpu.Device, m *mesh.Mesh) (*Shape, error) {
	h, err := dev.Upload(m)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", m.Name, err)
	}
	return &Shape{dev: dev, mesh: m, handle: h}, nil
}

// Render issues the mesh's draw calls in recipe order.
func (s *Shape) Render() {
	if s.released {
		return
	}
	for i := range s.mesh.Calls {
		s.dev.Draw(s.handle, i)
	}
}

func (s *Shape) Mesh() *mesh.Mesh {
	return s.mesh
}

func (s *Shape) Handle() gpu.Handle {
	return s.handle
}

// Close releases the GPU buffers. Later calls do nothing.
func (s *Shape) Close() {
	if s.released {
		return
	}
	s.released = true
	s.dev.Release(s.handle)
}
