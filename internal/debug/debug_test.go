package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type clock struct {
	t      float32
	halted bool
}

func (c clock) Time() float32 { return c.t }
func (c clock) Halted() bool  { return c.halted }

func TestLinesHiddenByDefault(t *testing.T) {
	d := New()
	assert.Equal(t, []string{"", "", ""}, d.Lines(60))
}

func TestLines(t *testing.T) {
	d := New()
	d.SetShowFPS(true)
	d.SetShowMemAlloc(true)
	d.ShowClock = true
	d.Clock = clock{t: 12.34, halted: true}

	lines := d.Lines(60)
	assert.Equal(t, "FPS: 60", lines[0])
	assert.Contains(t, lines[1], "MiB")
	assert.Equal(t, "t: 12.3 (halted)", lines[2])

	// FPS text is cached between refreshes.
	assert.Equal(t, "FPS: 60", d.Lines(30)[0])

	d.SetShowFPS(false)
	assert.Empty(t, d.Lines(30)[0])
}
