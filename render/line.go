package render

// plotFunc receives each rasterized cell
type plotFunc func(x, y int)

// Line draws a Bresenham line between two endpoints, inclusive
func (b *Buffer) Line(x1, y1, x2, y2 int, glyph, color uint16) {
	bresenham(x1, y1, x2, y2, func(x, y int) {
		b.Draw(x, y, glyph, color)
	})
}

// bresenham walks the major axis from the endpoint with the smaller major coordinate
// The minor axis advances by one toward the other endpoint when the decision variable allows
func bresenham(x1, y1, x2, y2 int, plot plotFunc) {
	dx := x2 - x1
	dy := y2 - y1
	dx1 := abs(dx)
	dy1 := abs(dy)

	// Minor step direction: +1 when dx and dy agree in sign
	minor := -1
	if (dx < 0 && dy < 0) || (dx > 0 && dy > 0) {
		minor = 1
	}

	if dy1 <= dx1 {
		x, y, xe := x1, y1, x2
		if dx < 0 {
			x, y, xe = x2, y2, x1
		}
		px := 2*dy1 - dx1
		plot(x, y)
		for x < xe {
			x++
			if px < 0 {
				px += 2 * dy1
			} else {
				y += minor
				px += 2 * (dy1 - dx1)
			}
			plot(x, y)
		}
		return
	}

	x, y, ye := x1, y1, y2
	if dy < 0 {
		x, y, ye = x2, y2, y1
	}
	py := 2*dx1 - dy1
	plot(x, y)
	for y < ye {
		y++
		if py <= 0 {
			py += 2 * dx1
		} else {
			x += minor
			py += 2 * (dx1 - dy1)
		}
		plot(x, y)
	}
}

// Rect draws the outline of the w x h cells covered by FillRect(x, y, w, h)
func (b *Buffer) Rect(x, y, w, h int, glyph, color uint16) {
	if w <= 0 || h <= 0 {
		return
	}
	x2, y2 := x+w-1, y+h-1
	b.Line(x, y, x2, y, glyph, color)
	b.Line(x2, y, x2, y2, glyph, color)
	b.Line(x2, y2, x, y2, glyph, color)
	b.Line(x, y2, x, y, glyph, color)
}

// Triangle draws a triangle outline as three lines in cyclic order
func (b *Buffer) Triangle(x1, y1, x2, y2, x3, y3 int, glyph, color uint16) {
	b.Line(x1, y1, x2, y2, glyph, color)
	b.Line(x2, y2, x3, y3, glyph, color)
	b.Line(x3, y3, x1, y1, glyph, color)
}

// FillTriangle fills a triangle with inclusive horizontal spans
func (b *Buffer) FillTriangle(x1, y1, x2, y2, x3, y3 int, glyph, color uint16) {
	fillTriangle(x1, y1, x2, y2, x3, y3, func(xa, xb, y int) {
		b.hline(xa, xb, y, glyph, color)
	})
}

// spanFunc receives an inclusive horizontal span with xa <= xb
type spanFunc func(xa, xb, y int)

// fillTriangle splits the triangle at the middle vertex into a flat-bottom
// and a flat-top half, walking the long edge (top to bottom) against the
// short edge of each half
func fillTriangle(x1, y1, x2, y2, x3, y3 int, span spanFunc) {
	// Sort by y
	if y2 < y1 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y3 < y1 {
		x1, y1, x3, y3 = x3, y3, x1, y1
	}
	if y3 < y2 {
		x2, y2, x3, y3 = x3, y3, x2, y2
	}

	if y1 == y3 {
		span(min(x1, x2, x3), max(x1, x2, x3), y1)
		return
	}

	// Top half: rows [y1, y2)
	for y := y1; y < y2; y++ {
		long := edgeX(x1, y1, x3, y3, y)
		short := edgeX(x1, y1, x2, y2, y)
		span(min(long, short), max(long, short), y)
	}

	// Bottom half: rows [y2, y3]
	if y2 == y3 {
		long := edgeX(x1, y1, x3, y3, y3)
		span(min(long, x2, x3), max(long, x2, x3), y3)
		return
	}
	for y := y2; y <= y3; y++ {
		long := edgeX(x1, y1, x3, y3, y)
		short := edgeX(x2, y2, x3, y3, y)
		span(min(long, short), max(long, short), y)
	}
}

// edgeX returns the x of edge (xa,ya)-(xb,yb) at row y, requires yb > ya
// Integer-only: the offset from xa is floor(k*|dx|/dy), stepping toward xb
func edgeX(xa, ya, xb, yb, y int) int {
	dy := yb - ya
	dx := xb - xa
	k := y - ya
	step := k * abs(dx) / dy
	if dx < 0 {
		return xa - step
	}
	return xa + step
}

// hline draws an inclusive horizontal span clipped to the grid
func (b *Buffer) hline(xa, xb, y int, glyph, color uint16) {
	if y < 0 || y >= b.height {
		return
	}
	if xa > xb {
		xa, xb = xb, xa
	}
	if xa < 0 {
		xa = 0
	}
	if xb >= b.width {
		xb = b.width - 1
	}
	if xa > xb {
		return
	}
	c := Cell{Glyph: glyph, Color: color}
	row := b.cells[y*b.width+xa : y*b.width+xb+1]
	for i := range row {
		row[i] = c
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
