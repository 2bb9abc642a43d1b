package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merry-go-round/internal/engineconfig"
	"merry-go-round/internal/logger"
	"merry-go-round/internal/scene"
)

type fakeScene struct {
	halted bool
	inputs []scene.CameraInput
	step   float32
}

func (f *fakeScene) RequestHalt()                          { f.halted = true }
func (f *fakeScene) ApplyCameraInput(in scene.CameraInput) { f.inputs = append(f.inputs, in) }
func (f *fakeScene) TimeStep() float32                     { return f.step }
func (f *fakeScene) SetTimeStep(dt float32)                { f.step = dt }

type fakeOverlay struct{ fps bool }

func (o *fakeOverlay) SetShowFPS(show bool) { o.fps = show }

func setup() (*Registry, *fakeScene, *fakeOverlay, *logger.Logger) {
	r := NewRegistry()
	s := &fakeScene{step: 0.8}
	o := &fakeOverlay{}
	log := logger.NewWithWriter(&bytes.Buffer{}, "info")
	RegisterScene(r, s, o, "", log)
	return r, s, o, log
}

func run(t *testing.T, r *Registry, line string) error {
	t.Helper()
	args, ok := Parse(line)
	require.True(t, ok, line)
	return r.Execute(args)
}

func TestParse(t *testing.T) {
	args, ok := Parse("cmd step -dt 2")
	assert.True(t, ok)
	assert.Equal(t, []string{"step", "-dt", "2"}, args)

	args, ok = Parse("cmd ")
	assert.True(t, ok)
	assert.Empty(t, args)

	_, ok = Parse("hello")
	assert.False(t, ok)
}

func TestExecuteErrors(t *testing.T) {
	r, _, _, _ := setup()
	assert.ErrorIs(t, r.Execute(nil), ErrMissing)
	assert.ErrorIs(t, r.Execute([]string{"spin"}), ErrUnknown)
	assert.Error(t, run(t, r, "cmd step -dt fast"))
}

func TestBuiltins(t *testing.T) {
	r, s, o, log := setup()

	require.NoError(t, run(t, r, "cmd step -dt 2.5"))
	assert.Equal(t, float32(2.5), s.step)
	require.NoError(t, run(t, r, "cmd step"))
	assert.Equal(t, float32(2.5), s.step)

	require.NoError(t, run(t, r, "cmd fps"))
	assert.True(t, o.fps)
	require.NoError(t, run(t, r, "cmd fps -show=false"))
	assert.False(t, o.fps)

	require.NoError(t, run(t, r, "cmd reset"))
	assert.Equal(t, []scene.CameraInput{scene.ResetCamera}, s.inputs)

	require.NoError(t, run(t, r, "cmd halt"))
	assert.True(t, s.halted)

	before := len(log.Lines())
	require.NoError(t, run(t, r, "cmd help"))
	assert.Len(t, log.Lines(), before+len(r.Names())+1)
	assert.Equal(t, []string{"fps", "halt", "help", "reset", "step"}, r.Names())
}

func TestFPSPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "mgr.yaml")
	r := NewRegistry()
	o := &fakeOverlay{}
	RegisterScene(r, &fakeScene{}, o, path, logger.NewWithWriter(&bytes.Buffer{}, "info"))

	require.NoError(t, run(t, r, "cmd fps -show=false"))
	assert.False(t, o.fps)
	p, err := engineconfig.Load(path)
	require.NoError(t, err)
	assert.False(t, p.Debug.ShowFPS)

	require.NoError(t, run(t, r, "cmd fps"))
	p, err = engineconfig.Load(path)
	require.NoError(t, err)
	assert.True(t, p.Debug.ShowFPS)
}
