// Package textures paints the two texture maps sampled by the scene shader: a red and blue
// checkerboard wrapped around the carousel and the "MGR" billboard art.
//
// Images are returned in texture memory order: row 0 is sampled at v = 0.
package textures

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Size is the edge length in texels of both maps.
const Size = 32

const (
	checkerBlock = 4

	letterTop    = 2 // upright image coordinates
	letterHeight = 12
	letterWidth  = 9
	shaftX       = 14
	shaftWidth   = 5
	shaftTop     = 2
	headTop      = 9
	headRows     = 8
)

var (
	CheckerRed  = color.RGBA{255, 50, 50, 255}
	CheckerBlue = color.RGBA{50, 50, 255, 255}
	SignGrey    = color.RGBA{100, 100, 100, 255}
	SignWhite   = color.RGBA{255, 255, 255, 255}

	// Letters of the sign, one per white box, left to right.
	Letters = []struct {
		Glyph string
		Color color.RGBA
	}{
		{"M", color.RGBA{0, 255, 0, 255}},
		{"G", color.RGBA{0, 0, 255, 255}},
		{"R", color.RGBA{255, 0, 0, 255}},
	}
	letterX = []int{2, 12, 22}
)

// Checkered returns the checkerboard: red with 4x4 blue blocks on alternating cells.
func Checkered() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Size, Size))
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			c := CheckerRed
			if (x/checkerBlock)%2 == (y/checkerBlock)%2 {
				c = CheckerBlue
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Billboard returns the sign art: grey background, the letters M G R on white boxes along the
// bottom and a white arrow above them pointing down.
func Billboard() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Size, Size))
	draw.Draw(img, img.Bounds(), image.NewUniform(SignGrey), image.Point{}, draw.Src)

	boxTop := Size - letterTop - letterHeight
	face := basicfont.Face7x13
	for i, l := range Letters {
		box := image.Rect(letterX[i], boxTop, letterX[i]+letterWidth, boxTop+letterHeight)
		draw.Draw(img, box, image.NewUniform(SignWhite), image.Point{}, draw.Src)
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(l.Color),
			Face: face,
			Dot:  fixed.P(box.Min.X+1, box.Max.Y-1),
		}
		d.DrawString(l.Glyph)
	}

	shaft := image.Rect(shaftX, shaftTop, shaftX+shaftWidth, boxTop-2)
	draw.Draw(img, shaft, image.NewUniform(SignWhite), image.Point{}, draw.Src)
	mid := shaftX + shaftWidth/2
	for i := 0; i < headRows; i++ {
		half := headRows - 1 - i
		row := image.Rect(mid-half, headTop+i, mid+half+1, headTop+i+1)
		draw.Draw(img, row, image.NewUniform(SignWhite), image.Point{}, draw.Src)
	}

	// Painted upright; flip so the first row lands at v = 0.
	return transform.FlipV(img)
}

// Scale enlarges img by an integer factor without smoothing.
func Scale(img image.Image, factor int) *image.RGBA {
	b := img.Bounds()
	return transform.Resize(img, b.Dx()*factor, b.Dy()*factor, transform.NearestNeighbor)
}

// Dump writes both maps as PNGs into dir, enlarged by factor, and returns the file paths.
func Dump(dir string, factor int) ([]string, error) {
	if factor < 1 {
		factor = 1
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	maps := []struct {
		name string
		img  *image.RGBA
	}{
		{"checkered.png", Checkered()},
		{"billboard.png", transform.FlipV(Billboard())},
	}
	var paths []string
	for _, m := range maps {
		p := filepath.Join(dir, m.name)
		if err := imgio.Save(p, Scale(m.img, factor), imgio.PNGEncoder()); err != nil {
			return paths, fmt.Errorf("textures: write %s: %w", p, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}
