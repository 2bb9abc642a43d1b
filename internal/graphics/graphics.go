package graphics

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"merry-go-round/internal/engineconfig"
)

// ErrNoGraphics is returned when no window with an OpenGL context could be created.
var ErrNoGraphics = errors.New("graphics: OpenGL context unavailable")

// Open creates the window described by w. ESC is left to the console; close via the window button.
func Open(w engineconfig.Window) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	if !rl.IsWindowReady() {
		return ErrNoGraphics
	}
	rl.SetExitKey(rl.KeyNull) // ESC toggles the console
	rl.SetTargetFPS(w.TargetFPS)
	return nil
}

// Close destroys the window and its context.
func Close() {
	rl.CloseWindow()
}

// Aspect is the current framebuffer width over height.
func Aspect() float32 {
	h := rl.GetScreenHeight()
	if h == 0 {
		return 1
	}
	return float32(rl.GetScreenWidth()) / float32(h)
}

// idleWait is how long a halted loop sleeps between event polls, in seconds.
const idleWait = 0.05

// window is the part of the raylib window the frame loop drives.
type window interface {
	ShouldClose() bool
	BeginFrame()
	EndFrame()
	// Idle services window events without presenting a frame.
	Idle()
}

type raylibWindow struct{}

func (raylibWindow) ShouldClose() bool { return rl.WindowShouldClose() }
func (raylibWindow) BeginFrame()       { rl.BeginDrawing() }
func (raylibWindow) EndFrame()         { rl.EndDrawing() }

func (raylibWindow) Idle() {
	rl.PollInputEvents()
	rl.WaitTime(idleWait)
}

// Run is the main loop. Each frame it calls update (input), then draw between BeginDrawing and
// EndDrawing. Once draw returns false no further frames are drawn, but the window stays open
// on the last presented frame until the user closes it.
func Run(update func(), draw func() bool) int {
	return loop(raylibWindow{}, update, draw)
}

// loop returns the number of frames drawn.
func loop(w window, update func(), draw func() bool) int {
	frames := 0
	halted := false
	for !w.ShouldClose() {
		if halted {
			w.Idle()
			continue
		}
		update()

		w.BeginFrame()
		more := draw()
		w.EndFrame()
		frames++
		halted = !more
	}
	return frames
}
