package render

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// FillPolygon fills a screen-space polygon with the even-odd rule
// Rows are sampled at their vertical center; spans are [ceil(left), floor(right)]
func (b *Buffer) FillPolygon(vertices []mgl32.Vec2, glyph, color uint16) {
	fillPolygon(vertices, b.height, func(xa, xb, y int) {
		b.hline(xa, xb, y, glyph, color)
	})
}

// fillPolygon emits spans for rows in [0, height)
func fillPolygon(vertices []mgl32.Vec2, height int, span spanFunc) {
	pts := make([]mgl32.Vec2, 0, len(vertices))
	for _, v := range vertices {
		if finite(v[0]) && finite(v[1]) {
			pts = append(pts, v)
		}
	}
	if len(pts) < 3 {
		return
	}

	minY, maxY := float64(pts[0][1]), float64(pts[0][1])
	for _, p := range pts[1:] {
		minY = math.Min(minY, float64(p[1]))
		maxY = math.Max(maxY, float64(p[1]))
	}

	// Clamp in float space so huge coordinates cannot overflow int
	first := math.Max(math.Floor(minY), 0)
	last := math.Min(math.Ceil(maxY), float64(height-1))
	if first > last {
		return
	}

	xs := make([]float64, 0, len(pts))
	for row := int(first); row <= int(last); row++ {
		sample := float64(row) + 0.5
		xs = xs[:0]

		for i := range pts {
			a := pts[i]
			c := pts[(i+1)%len(pts)]
			ay, cy := float64(a[1]), float64(c[1])
			if ay == cy {
				continue
			}
			ax, cx := float64(a[0]), float64(c[0])
			if ay > cy {
				ax, ay, cx, cy = cx, cy, ax, ay
			}
			if sample < ay || sample >= cy {
				continue
			}
			t := (sample - ay) / (cy - ay)
			xs = append(xs, ax+t*(cx-ax))
		}

		slices.Sort(xs)
		// Pairs only; an odd trailing intersection is dropped
		for i := 0; i+1 < len(xs); i += 2 {
			left := int(math.Ceil(xs[i]))
			right := int(math.Floor(xs[i+1]))
			if left <= right {
				span(left, right, row)
			}
		}
	}
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// modelTransform composes rotation r, uniform scale s and translation (x, y)
func modelTransform(x, y, r, s float32) mgl32.Mat3 {
	return mgl32.Translate2D(x, y).Mul3(mgl32.Scale2D(s, s)).Mul3(mgl32.HomogRotate2D(r))
}

// TransformModel returns the model vertices rotated, scaled then translated
func TransformModel(model []mgl32.Vec2, x, y, r, s float32) []mgl32.Vec2 {
	m := modelTransform(x, y, r, s)
	out := make([]mgl32.Vec2, len(model))
	for i, v := range model {
		out[i] = m.Mul3x1(mgl32.Vec3{v[0], v[1], 1}).Vec2()
	}
	return out
}

// WireframeModel draws a transformed model as a closed polyline
// Transformed coordinates are truncated toward zero
func (b *Buffer) WireframeModel(model []mgl32.Vec2, x, y, r, s float32, glyph, color uint16) {
	pts := TransformModel(model, x, y, r, s)
	n := len(pts)
	if n == 0 {
		return
	}
	for i := 0; i < n; i++ {
		a := pts[i]
		c := pts[(i+1)%n]
		b.Line(int(a[0]), int(a[1]), int(c[0]), int(c[1]), glyph, color)
	}
}

// FilledModel fills a transformed model with the even-odd rule
func (b *Buffer) FilledModel(model []mgl32.Vec2, x, y, r, s float32, glyph, color uint16) {
	b.FillPolygon(TransformModel(model, x, y, r, s), glyph, color)
}
