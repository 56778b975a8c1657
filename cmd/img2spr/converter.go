package main

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"github.com/lixenwraith/conengine/constant"
	"github.com/lixenwraith/conengine/sprite"
)

// consolePalette holds the RGB value of each 4-bit color index
var consolePalette = [constant.PaletteSize]string{
	"#000000", "#000080", "#008000", "#008080",
	"#800000", "#800080", "#808000", "#c0c0c0",
	"#808080", "#0000ff", "#00ff00", "#00ffff",
	"#ff0000", "#ff00ff", "#ffff00", "#ffffff",
}

// shadeCoverage is the foreground share each pixel glyph shows
var shadeCoverage = []struct {
	glyph    uint16
	coverage float64
}{
	{constant.PixelSolid, 1},
	{constant.PixelThreeQuarters, 0.75},
	{constant.PixelHalf, 0.5},
	{constant.PixelQuarter, 0.25},
}

// charAspect compensates for cells being about twice as tall as wide
const charAspect = 0.5

// alphaThreshold is the opacity below which a pixel becomes transparent
const alphaThreshold = 0x80

// candidate is one glyph and attribute with its apparent color in Lab space
type candidate struct {
	glyph   uint16
	attr    uint16
	l, a, b float64
}

// Matcher finds the closest glyph and color pair for a pixel
type Matcher struct {
	candidates []candidate
}

// NewMatcher precomputes every distinct shade, foreground and background blend
func NewMatcher() *Matcher {
	var pal [constant.PaletteSize]colorful.Color
	for i, hex := range consolePalette {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic(err)
		}
		pal[i] = c
	}

	m := &Matcher{}
	for _, shade := range shadeCoverage {
		for fg := range pal {
			for bg := range pal {
				if shade.coverage == 1 && bg != 0 {
					continue // solid ignores background
				}
				if shade.coverage < 1 && fg == bg {
					continue // same as solid
				}
				mix := pal[bg].BlendLinearRgb(pal[fg], shade.coverage)
				l, a, b := mix.Lab()
				m.candidates = append(m.candidates, candidate{
					glyph: shade.glyph,
					attr:  constant.Attribute(uint8(fg), uint8(bg)),
					l:     l, a: a, b: b,
				})
			}
		}
	}
	return m
}

// Match returns the glyph and attribute that best reproduce c
// Mostly transparent pixels map to PixelEmpty
func (m *Matcher) Match(c color.Color) (uint16, uint16) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	if nc.A < alphaThreshold {
		return constant.PixelEmpty, constant.FgBlack
	}
	target, _ := colorful.MakeColor(color.NRGBA{R: nc.R, G: nc.G, B: nc.B, A: 0xff})
	l, a, b := target.Lab()

	best := m.candidates[0]
	bestDist := labDistSq(l, a, b, best)
	for _, cand := range m.candidates[1:] {
		if d := labDistSq(l, a, b, cand); d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best.glyph, best.attr
}

func labDistSq(l, a, b float64, c candidate) float64 {
	dl, da, db := l-c.l, a-c.a, b-c.b
	return dl*dl + da*da + db*db
}

// CellSize returns the sprite height for a target width, preserving aspect
func CellSize(srcW, srcH, width int) (int, int) {
	if srcW <= 0 || srcH <= 0 || width <= 0 {
		return 0, 0
	}
	h := int(float64(width) * float64(srcH) / float64(srcW) * charAspect)
	return width, max(h, 1)
}

// Convert scales img to width x height cells and matches every cell
func Convert(img image.Image, width, height int, m *Matcher) *sprite.Sprite {
	spr := sprite.New(width, height)
	if width <= 0 || height <= 0 || img.Bounds().Empty() {
		return spr
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			glyph, attr := m.Match(scaled.NRGBAAt(x, y))
			spr.SetGlyph(x, y, glyph)
			spr.SetColor(x, y, attr)
		}
	}
	return spr
}
