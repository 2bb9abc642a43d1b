package gpu

import (
	"testing"

	"merry-go-round/internal/mesh"
	"merry-go-round/internal/xform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamingContract(t *testing.T) {
	var names []string
	for _, a := range Attribs {
		names = append(names, a.Name())
	}
	assert.Equal(t, []string{"vPosition", "vColor", "vNormal", "vTexCoords", "vTexIndex"}, names)

	names = names[:0]
	for _, u := range Uniforms {
		names = append(names, u.Name())
	}
	assert.Equal(t, []string{"vTransformation", "vNormalTransformation", "vModelView", "vProjection",
		"texMapCheckered", "texMapMGR"}, names)
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	h, err := r.Upload(mesh.Sign())
	require.NoError(t, err)
	assert.Equal(t, 1, r.Live())

	r.Begin()
	r.SetTransform(xform.Identity)
	r.Draw(h, 0)
	r.End()

	assert.Equal(t, []Op{OpBegin, OpTransform, OpDraw, OpEnd},
		[]Op{r.Commands[0].Op, r.Commands[1].Op, r.Commands[2].Op, r.Commands[3].Op})
	assert.Equal(t, "sign", r.Commands[2].Mesh)
	assert.Equal(t, 1, r.Count(OpDraw))

	assert.Panics(t, func() { r.Draw(h, 1) })

	r.Release(h)
	assert.Zero(t, r.Live())
	assert.Equal(t, 1, r.Releases(h))
	assert.Panics(t, func() { r.Draw(h, 0) })

	r.Reset()
	assert.Empty(t, r.Commands)
}

func TestRecorderRejectsInvalidMesh(t *testing.T) {
	m := mesh.Sign()
	m.Colors = m.Colors[:1]
	_, err := NewRecorder().Upload(m)
	assert.ErrorIs(t, err, mesh.ErrInvalidMesh)
}
