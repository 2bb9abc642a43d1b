package gpu

import (
	"fmt"

	"merry-go-round/internal/mesh"
	"merry-go-round/internal/xform"

	"github.com/go-gl/mathgl/mgl32"
)

// Op identifies a recorded Device call.
type Op int

const (
	OpBegin Op = iota
	OpEnd
	OpProjection
	OpView
	OpTransform
	OpDraw
)

func (o Op) String() string {
	switch o {
	case OpBegin:
		return "begin"
	case OpEnd:
		return "end"
	case OpProjection:
		return "projection"
	case OpView:
		return "view"
	case OpTransform:
		return "transform"
	case OpDraw:
		return "draw"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Command is one recorded call. Only the fields relevant to Op are set.
type Command struct {
	Op        Op
	Matrix    mgl32.Mat4
	Transform xform.Transform
	Handle    Handle
	Call      int
	Mesh      string
}

// Recorder is a Device that keeps everything in memory. It backs headless runs and tests.
type Recorder struct {
	Commands []Command

	meshes   map[Handle]*mesh.Mesh
	next     Handle
	released map[Handle]int
}

func NewRecorder() *Recorder {
	return &Recorder{
		meshes:   make(map[Handle]*mesh.Mesh),
		released: make(map[Handle]int),
	}
}

func (r *Recorder) Upload(m *mesh.Mesh) (Handle, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	r.next++
	r.meshes[r.next] = m
	return r.next, nil
}

func (r *Recorder) Release(h Handle) {
	r.released[h]++
	delete(r.meshes, h)
}

func (r *Recorder) Begin() { r.Commands = append(r.Commands, Command{Op: OpBegin}) }
func (r *Recorder) End()   { r.Commands = append(r.Commands, Command{Op: OpEnd}) }

func (r *Recorder) SetProjection(p mgl32.Mat4) {
	r.Commands = append(r.Commands, Command{Op: OpProjection, Matrix: p})
}

func (r *Recorder) SetView(v mgl32.Mat4) {
	r.Commands = append(r.Commands, Command{Op: OpView, Matrix: v})
}

func (r *Recorder) SetTransform(t xform.Transform) {
	r.Commands = append(r.Commands, Command{Op: OpTransform, Transform: t})
}

// Draw records the call. Draws through a released or unknown handle panic: they would be
// use-after-free on a real device.
func (r *Recorder) Draw(h Handle, call int) {
	m, ok := r.meshes[h]
	if !ok {
		panic(fmt.Errorf("draw %d: %w", h, ErrUnknownHandle))
	}
	if call < 0 || call >= len(m.Calls) {
		panic(fmt.Errorf("draw %d: %s has no call %d", h, m.Name, call))
	}
	r.Commands = append(r.Commands, Command{Op: OpDraw, Handle: h, Call: call, Mesh: m.Name})
}

// Live returns the number of uploaded meshes not yet released.
func (r *Recorder) Live() int {
	return len(r.meshes)
}

// Releases returns how many times h was released.
func (r *Recorder) Releases(h Handle) int {
	return r.released[h]
}

// Reset drops the recorded commands but keeps uploaded meshes.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Count returns the number of recorded commands with the given op.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}
