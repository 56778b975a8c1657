// Package render rasterizes text, geometry and sprites into a fixed-size
// grid of character cells.
package render

import (
	"unicode/utf16"

	"github.com/lixenwraith/conengine/constant"
)

// Cell is a single grid position: 16-bit code unit and 16-bit color attribute
type Cell struct {
	Glyph uint16
	Color uint16
}

// Buffer is the row-major screen grid, sized once at creation
// All writes are bounds-checked; off-grid writes are dropped
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions, cleared to black
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear(constant.FgBlack)
	return b
}

// Width returns the grid width in cells
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the grid height in cells
func (b *Buffer) Height() int {
	return b.height
}

// Cells exposes the row-major backing array for presentation
// Callers must not retain it across frames
func (b *Buffer) Cells() []Cell {
	return b.cells
}

// Cell returns the cell at (x, y), or the zero cell if out of range
func (b *Buffer) Cell(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// inBounds returns true if in screen bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Draw writes a single cell
func (b *Buffer) Draw(x, y int, glyph, color uint16) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Glyph: glyph, Color: color}
}

// Clear resets all cells to PixelEmpty with the given color using exponential copy
func (b *Buffer) Clear(color uint16) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Glyph: constant.PixelEmpty, Color: color}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Fill writes the half-open rectangle [x1,x2) x [y1,y2), clipped to the grid
func (b *Buffer) Fill(x1, y1, x2, y2 int, glyph, color uint16) {
	x1, x2 = clampSpan(x1, x2, b.width)
	y1, y2 = clampSpan(y1, y2, b.height)
	if x1 >= x2 || y1 >= y2 {
		return
	}
	c := Cell{Glyph: glyph, Color: color}
	for y := y1; y < y2; y++ {
		row := b.cells[y*b.width+x1 : y*b.width+x2]
		for i := range row {
			row[i] = c
		}
	}
}

// FillRect fills a w x h rectangle anchored at (x, y)
func (b *Buffer) FillRect(x, y, w, h int, glyph, color uint16) {
	if w <= 0 || h <= 0 {
		return
	}
	b.Fill(x, y, x+w, y+h, glyph, color)
}

func clampSpan(lo, hi, limit int) (int, int) {
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < 0 {
		lo = 0
	}
	if hi > limit {
		hi = limit
	}
	return lo, hi
}

// DrawString writes text as UTF-16 code units, one per cell, left to right
// Newlines restart at column x on the next row
func (b *Buffer) DrawString(x, y int, s string, color uint16) {
	b.drawString(x, y, s, color, false)
}

// DrawStringAlpha is DrawString that leaves cells under spaces untouched
func (b *Buffer) DrawStringAlpha(x, y int, s string, color uint16) {
	b.drawString(x, y, s, color, true)
}

func (b *Buffer) drawString(x, y int, s string, color uint16, alpha bool) {
	cx, cy := x, y
	for _, u := range utf16.Encode([]rune(s)) {
		if u == '\n' {
			cx = x
			cy++
			continue
		}
		if !(alpha && u == ' ') {
			b.Draw(cx, cy, u, color)
		}
		cx++
	}
}
