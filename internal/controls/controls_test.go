package controls

import (
	"bytes"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merry-go-round/internal/logger"
	"merry-go-round/internal/scene"
)

type target struct {
	inputs []scene.CameraInput
	halts  int
}

func (t *target) ApplyCameraInput(in scene.CameraInput) { t.inputs = append(t.inputs, in) }
func (t *target) RequestHalt()                          { t.halts++ }

func TestLookup(t *testing.T) {
	assert.Equal(t, Binding{Action: Camera, Input: scene.MoveForward}, Lookup(rl.KeyW))
	assert.Equal(t, Binding{Action: Camera, Input: scene.TurnRight}, Lookup(rl.KeyD))
	assert.Equal(t, Halt, Lookup(rl.KeyQ).Action)
	assert.Equal(t, Help, Lookup(rl.KeyH).Action)
	assert.Equal(t, Help, Lookup(rl.KeyZ).Action)
}

func TestApply(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info")
	tg := &target{}

	for _, k := range []int32{rl.KeyW, rl.KeyA, rl.KeyR, rl.KeyQ, rl.KeyX} {
		Apply(Lookup(k), tg, log)
	}
	assert.Equal(t, []scene.CameraInput{scene.MoveForward, scene.TurnLeft, scene.ResetCamera}, tg.inputs)
	assert.Equal(t, 1, tg.halts)
	lines := log.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], scene.Help)
}

func TestModifiersIgnored(t *testing.T) {
	assert.True(t, isModifier(rl.KeyLeftShift))
	assert.True(t, isModifier(rl.KeyRightControl))
	assert.False(t, isModifier(rl.KeyW))
}
