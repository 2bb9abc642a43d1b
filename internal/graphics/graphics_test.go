package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeWindow struct {
	polls  int // ShouldClose reports true once polls reaches this
	calls  int
	begun  int
	ended  int
	idles  int
	inside bool
}

func (w *fakeWindow) ShouldClose() bool {
	w.calls++
	return w.calls > w.polls
}

func (w *fakeWindow) BeginFrame() { w.begun++; w.inside = true }
func (w *fakeWindow) EndFrame()   { w.ended++; w.inside = false }
func (w *fakeWindow) Idle()       { w.idles++ }

func TestLoopStaysOpenAfterHalt(t *testing.T) {
	w := &fakeWindow{polls: 10}
	updates, draws := 0, 0
	frames := loop(w, func() { updates++ }, func() bool {
		assert.True(t, w.inside, "draw outside a frame")
		draws++
		return draws < 3
	})

	assert.Equal(t, 3, frames)
	assert.Equal(t, 3, updates)
	assert.Equal(t, 3, w.begun)
	assert.Equal(t, 3, w.ended)
	// The remaining polls keep the window serviced until it is closed.
	assert.Equal(t, 7, w.idles)
}

func TestLoopEndsWhenClosed(t *testing.T) {
	w := &fakeWindow{polls: 4}
	frames := loop(w, func() {}, func() bool { return true })
	assert.Equal(t, 4, frames)
	assert.Zero(t, w.idles)
}
