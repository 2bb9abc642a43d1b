package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// Text is refreshed every updateInterval frames to limit allocations.
	updateInterval = 30
)

// Clock reports the animation state shown by the overlay.
type Clock interface {
	Time() float32
	Halted() bool
}

// Debug draws optional overlays in the top-right corner: FPS, heap allocation and the
// animation clock. All are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowClock    bool
	Clock        Clock

	frameCount uint32
	lines      [3]string
	memStats   runtime.MemStats
}

func New() *Debug {
	return &Debug{}
}

func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// Lines returns the overlay text for this frame, refreshing it when due. Hidden overlays
// are empty strings.
func (d *Debug) Lines(fps int32) []string {
	d.frameCount++
	refresh := d.frameCount%updateInterval == 0

	if !d.ShowFPS {
		d.lines[0] = ""
	} else if refresh || d.lines[0] == "" {
		d.lines[0] = fmt.Sprintf("FPS: %d", fps)
	}

	if !d.ShowMemAlloc {
		d.lines[1] = ""
	} else if refresh || d.lines[1] == "" {
		runtime.ReadMemStats(&d.memStats)
		d.lines[1] = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
	}

	d.lines[2] = ""
	if d.ShowClock && d.Clock != nil {
		state := "running"
		if d.Clock.Halted() {
			state = "halted"
		}
		d.lines[2] = fmt.Sprintf("t: %.1f (%s)", d.Clock.Time(), state)
	}
	return d.lines[:]
}

// Draw renders the enabled overlays right-aligned in green. Call after the scene and the
// terminal in the draw loop.
func (d *Debug) Draw() {
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.Lines(rl.GetFPS()) {
		if text == "" {
			continue
		}
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
