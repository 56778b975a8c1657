package render

// Circle draws a midpoint circle outline centered on (xc, yc)
func (b *Buffer) Circle(xc, yc, r int, glyph, color uint16) {
	midpointCircle(r, func(x, y int) {
		b.Draw(xc+x, yc-y, glyph, color)
		b.Draw(xc+y, yc-x, glyph, color)
		b.Draw(xc+y, yc+x, glyph, color)
		b.Draw(xc+x, yc+y, glyph, color)
		b.Draw(xc-x, yc+y, glyph, color)
		b.Draw(xc-y, yc+x, glyph, color)
		b.Draw(xc-y, yc-x, glyph, color)
		b.Draw(xc-x, yc-y, glyph, color)
	})
}

// FillCircle draws a filled midpoint circle using symmetric row spans
func (b *Buffer) FillCircle(xc, yc, r int, glyph, color uint16) {
	midpointCircle(r, func(x, y int) {
		b.hline(xc-x, xc+x, yc-y, glyph, color)
		b.hline(xc-y, xc+y, yc-x, glyph, color)
		b.hline(xc-x, xc+x, yc+y, glyph, color)
		b.hline(xc-y, xc+y, yc+x, glyph, color)
	})
}

// midpointCircle visits one octant; the callback mirrors it
func midpointCircle(r int, octant plotFunc) {
	if r <= 0 {
		return
	}
	x, y := 0, r
	d := 3 - 2*r
	for y >= x {
		octant(x, y)
		if d < 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}
		x++
	}
}
