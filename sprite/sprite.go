// Package sprite implements fixed-size grids of (glyph, color) cells and the
// .spr binary container used to persist them.
package sprite

import (
	"math"

	"github.com/lixenwraith/conengine/constant"
)

// Sprite is a width x height grid of glyphs and color attributes
// Dimensions are fixed at creation; cells are row-major
type Sprite struct {
	width  int
	height int
	glyphs []uint16
	colors []uint16
}

// New creates a sprite filled with PixelEmpty glyphs and FgBlack colors
func New(width, height int) *Sprite {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	s := &Sprite{
		width:  width,
		height: height,
		glyphs: make([]uint16, size),
		colors: make([]uint16, size),
	}
	for i := range s.glyphs {
		s.glyphs[i] = constant.PixelEmpty
		s.colors[i] = constant.FgBlack
	}
	return s
}

// FromCells builds a sprite from raw row-major glyph and color arrays
// The slices are copied
func FromCells(width, height int, glyphs, colors []uint16) (*Sprite, error) {
	if width < 0 || height < 0 {
		return nil, ErrDimensions
	}
	size := width * height
	if len(glyphs) != size || len(colors) != size {
		return nil, ErrCellCount
	}
	s := &Sprite{
		width:  width,
		height: height,
		glyphs: make([]uint16, size),
		colors: make([]uint16, size),
	}
	copy(s.glyphs, glyphs)
	copy(s.colors, colors)
	return s, nil
}

// Width returns the sprite width in cells
func (s *Sprite) Width() int {
	return s.width
}

// Height returns the sprite height in cells
func (s *Sprite) Height() int {
	return s.height
}

func (s *Sprite) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// SetGlyph sets the glyph at (x, y); out-of-range writes are ignored
func (s *Sprite) SetGlyph(x, y int, g uint16) {
	if s.inBounds(x, y) {
		s.glyphs[y*s.width+x] = g
	}
}

// SetColor sets the color attribute at (x, y); out-of-range writes are ignored
func (s *Sprite) SetColor(x, y int, c uint16) {
	if s.inBounds(x, y) {
		s.colors[y*s.width+x] = c
	}
}

// Glyph returns the glyph at (x, y), or PixelEmpty if out of range
func (s *Sprite) Glyph(x, y int) uint16 {
	if s.inBounds(x, y) {
		return s.glyphs[y*s.width+x]
	}
	return constant.PixelEmpty
}

// Color returns the color at (x, y), or FgBlack if out of range
func (s *Sprite) Color(x, y int) uint16 {
	if s.inBounds(x, y) {
		return s.colors[y*s.width+x]
	}
	return constant.FgBlack
}

// SampleGlyph returns the glyph at normalized coordinates
// Coordinates outside [0,1) wrap, so the sprite tiles infinitely
func (s *Sprite) SampleGlyph(x, y float32) uint16 {
	sx, sy, ok := s.wrap(x, y)
	if !ok {
		return constant.PixelEmpty
	}
	return s.glyphs[sy*s.width+sx]
}

// SampleColor returns the color at normalized coordinates with wrapping
func (s *Sprite) SampleColor(x, y float32) uint16 {
	sx, sy, ok := s.wrap(x, y)
	if !ok {
		return constant.FgBlack
	}
	return s.colors[sy*s.width+sx]
}

// wrap maps normalized coordinates to a cell index pair
func (s *Sprite) wrap(x, y float32) (int, int, bool) {
	if s.width == 0 || s.height == 0 {
		return 0, 0, false
	}
	fx := float64(x) - math.Floor(float64(x))
	fy := float64(y) - math.Floor(float64(y))
	if math.IsNaN(fx) || math.IsNaN(fy) {
		return 0, 0, false
	}
	sx := euclidMod(int(math.Floor(fx*float64(s.width))), s.width)
	sy := euclidMod(int(math.Floor(fy*float64(s.height))), s.height)
	return sx, sy, true
}

func euclidMod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

// Clone returns a deep copy of the sprite
func (s *Sprite) Clone() *Sprite {
	c, _ := FromCells(s.width, s.height, s.glyphs, s.colors)
	return c
}
