package primitives

import (
	"testing"

	"merry-go-round/internal/gpu"
	"merry-go-round/internal/mesh"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drawnMeshes(r *gpu.Recorder) []string {
	var names []string
	for _, c := range r.Commands {
		if c.Op == gpu.OpDraw {
			names = append(names, c.Mesh)
		}
	}
	return names
}

func TestShapeRendersRecipeInOrder(t *testing.T) {
	dev := gpu.NewRecorder()
	reg := NewRegistry(dev)
	cone, err := reg.Cone(25, mesh.RGB(0.6, 0.6, 0.6))
	require.NoError(t, err)

	cone.Render()
	require.Len(t, dev.Commands, 3)
	for i, c := range dev.Commands {
		assert.Equal(t, cone.Handle(), c.Handle)
		assert.Equal(t, i, c.Call)
	}
}

func TestHorseRendersHeadThenBody(t *testing.T) {
	dev := gpu.NewRecorder()
	reg := NewRegistry(dev)
	h, err := reg.Horse(mesh.RGB(0.6, 0.6, 0.6))
	require.NoError(t, err)

	assert.Len(t, h.Head.Mesh().Positions, 4*HeadSectors+4)
	assert.Equal(t, h.Head.Mesh().Colors[0], h.Body.Mesh().Colors[0])

	h.Render()
	assert.Equal(t, []string{"cone", "cone", "cone", "shortcube"}, drawnMeshes(dev))
}

func TestCloseReleasesOnce(t *testing.T) {
	dev := gpu.NewRecorder()
	reg := NewRegistry(dev)
	s, err := reg.Sphere()
	require.NoError(t, err)
	_, err = reg.Horse(mesh.Random)
	require.NoError(t, err)
	_, err = reg.Sign()
	require.NoError(t, err)
	assert.Equal(t, 4, reg.Len())
	assert.Equal(t, 4, dev.Live())

	s.Close()
	reg.Close()
	s.Close()
	assert.Zero(t, dev.Live())
	assert.Equal(t, 1, dev.Releases(s.Handle()))

	// A released shape draws nothing.
	s.Render()
	assert.Empty(t, dev.Commands)
}

func TestRegistryPropagatesErrors(t *testing.T) {
	reg := NewRegistry(gpu.NewRecorder())
	_, err := reg.Cylinder(1, mesh.Random, true)
	assert.ErrorIs(t, err, mesh.ErrInvalidMesh)
	assert.Zero(t, reg.Len())
}
