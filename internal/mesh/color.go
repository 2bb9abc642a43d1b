package mesh

import (
	"sync"
	"time"

	"github.com/MichaelTJones/pcg"
	"github.com/go-gl/mathgl/mgl32"
)

// Color is a vertex color that has already been checked. The zero value is the random
// fallback: every vertex painted with it gets its own random RGB.
type Color struct {
	rgb   mgl32.Vec3
	valid bool
}

// Random is the fallback marker.
var Random = Color{}

// ParseColor accepts exactly three components, each in [0,1]. Anything else yields Random.
func ParseColor(c []float32) Color {
	if len(c) != 3 {
		return Random
	}
	for _, v := range c {
		// written this way so NaN fails too
		if !(v >= 0 && v <= 1) {
			return Random
		}
	}
	return Color{rgb: mgl32.Vec3{c[0], c[1], c[2]}, valid: true}
}

// RGB is shorthand for ParseColor with three components.
func RGB(r, g, b float32) Color {
	return ParseColor([]float32{r, g, b})
}

// Valid reports whether c is a real color rather than the fallback marker.
func (c Color) Valid() bool {
	return c.valid
}

// Vec3 returns the color components; it is zero for the fallback marker.
func (c Color) Vec3() mgl32.Vec3 {
	return c.rgb
}

func (c Color) sample() mgl32.Vec3 {
	if c.valid {
		return c.rgb
	}
	return fallback.vec3()
}

// rng hands out the random fallback colors.
type rng struct {
	mu sync.Mutex
	r  *pcg.PCG32
}

var fallback = newRNG(time.Now().UnixNano())

func newRNG(seed int64) *rng {
	r := &rng{r: pcg.NewPCG32()}
	r.r.Seed(uint64(seed), 0xda3e39cb94b95bdb)
	return r
}

func (r *rng) float32() float32 {
	return float32(r.r.Random()) / (1<<32 - 1)
}

func (r *rng) vec3() mgl32.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return mgl32.Vec3{r.float32(), r.float32(), r.float32()}
}
