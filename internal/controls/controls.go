// Package controls maps keyboard presses onto scene actions.
package controls

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"merry-go-round/internal/logger"
	"merry-go-round/internal/scene"
)

// Action is what a key does.
type Action int

const (
	None Action = iota
	Camera
	Halt
	Help
)

// Binding is the outcome of one key press.
type Binding struct {
	Action Action
	Input  scene.CameraInput
}

var bindings = map[int32]Binding{
	rl.KeyW: {Action: Camera, Input: scene.MoveForward},
	rl.KeyS: {Action: Camera, Input: scene.MoveBackward},
	rl.KeyA: {Action: Camera, Input: scene.TurnLeft},
	rl.KeyD: {Action: Camera, Input: scene.TurnRight},
	rl.KeyR: {Action: Camera, Input: scene.ResetCamera},
	rl.KeyQ: {Action: Halt},
	rl.KeyH: {Action: Help},
}

// Lookup returns the binding for key. Unbound keys ask for help.
func Lookup(key int32) Binding {
	if b, ok := bindings[key]; ok {
		return b
	}
	return Binding{Action: Help}
}

// Target is what key presses act on.
type Target interface {
	ApplyCameraInput(in scene.CameraInput)
	RequestHalt()
}

// Apply performs b on t. Help lines go to log.
func Apply(b Binding, t Target, log *logger.Logger) {
	switch b.Action {
	case Camera:
		t.ApplyCameraInput(b.Input)
	case Halt:
		t.RequestHalt()
	case Help:
		log.Log(scene.Help)
	}
}

// Keyboard feeds raylib key presses to a target while Enabled reports true.
type Keyboard struct {
	Target  Target
	Log     *logger.Logger
	Enabled func() bool
}

// Update drains the key queue for this frame and applies each press. Held movement and turn
// keys repeat.
func (k *Keyboard) Update() {
	if k.Enabled != nil && !k.Enabled() {
		return
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if key == rl.KeyEscape || isModifier(key) {
			continue
		}
		Apply(Lookup(key), k.Target, k.Log)
	}
	for _, key := range []int32{rl.KeyW, rl.KeyS, rl.KeyA, rl.KeyD} {
		if rl.IsKeyPressedRepeat(key) {
			Apply(bindings[key], k.Target, k.Log)
		}
	}
}

func isModifier(key int32) bool {
	return key >= rl.KeyLeftShift && key <= rl.KeyRightSuper
}
