package primitives

import "merry-go-round/internal/mesh"

// HeadSectors is the radial resolution of every horse head.
const HeadSectors = 30

// Horse is a cone head on a short cube body. The two meshes are authored to line up, so
// the horse adds no transform of its own.
type Horse struct {
	Head *Shape
	Body *Shape
}

// Render draws the head, then the body.
func (h *Horse) Render() {
	h.Head.Render()
	h.Body.Render()
}

func (h *Horse) Close() {
	h.Head.Close()
	h.Body.Close()
}

func newHorse(r *Registry, color mesh.Color) (*Horse, error) {
	head, err := r.Cone(HeadSectors, color)
	if err != nil {
		return nil, err
	}
	body, err := r.ShortCube(color)
	if err != nil {
		return nil, err
	}
	return &Horse{Head: head, Body: body}, nil
}
