package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/conengine/constant"
	"github.com/lixenwraith/conengine/sprite"
)

type point struct{ x, y int }

func collectLine(x1, y1, x2, y2 int) []point {
	var pts []point
	bresenham(x1, y1, x2, y2, func(x, y int) {
		pts = append(pts, point{x, y})
	})
	return pts
}

func filled(b *Buffer) map[point]bool {
	set := make(map[point]bool)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Cell(x, y).Glyph == constant.PixelSolid {
				set[point{x, y}] = true
			}
		}
	}
	return set
}

// TestLineCanonicalSequence verifies the shallow-slope Bresenham walk
func TestLineCanonicalSequence(t *testing.T) {
	want := []point{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}}
	got := collectLine(0, 0, 4, 2)
	if len(got) != len(want) {
		t.Fatalf("Expected %d points, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Point %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

// TestLineEndpointsAndContinuity verifies every line hits both ends and is 8-connected
func TestLineEndpointsAndContinuity(t *testing.T) {
	tests := []struct{ x1, y1, x2, y2 int }{
		{0, 0, 7, 3}, {7, 3, 0, 0}, {0, 0, 3, 7}, {3, 7, 0, 0},
		{5, 0, 0, 5}, {0, 5, 5, 0}, {2, 2, 2, 9}, {9, 4, 1, 4}, {3, 3, 3, 3},
	}
	for _, tt := range tests {
		pts := collectLine(tt.x1, tt.y1, tt.x2, tt.y2)
		has := func(p point) bool {
			for _, q := range pts {
				if q == p {
					return true
				}
			}
			return false
		}
		if !has(point{tt.x1, tt.y1}) || !has(point{tt.x2, tt.y2}) {
			t.Errorf("Line %v: missing an endpoint in %v", tt, pts)
		}
		major := max(abs(tt.x2-tt.x1), abs(tt.y2-tt.y1))
		if len(pts) != major+1 {
			t.Errorf("Line %v: expected %d points, got %d", tt, major+1, len(pts))
		}
		for i := 1; i < len(pts); i++ {
			if abs(pts[i].x-pts[i-1].x) > 1 || abs(pts[i].y-pts[i-1].y) > 1 {
				t.Errorf("Line %v: gap between %v and %v", tt, pts[i-1], pts[i])
			}
		}
	}
}

// TestRectMatchesFillRectFootprint verifies the outline is the border of the FillRect area
func TestRectMatchesFillRectFootprint(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
	}{
		{"3x2", 0, 0, 3, 2},
		{"offset 4x3", 2, 1, 4, 3},
		{"single cell", 5, 5, 1, 1},
		{"single row", 1, 7, 5, 1},
		{"clipped", 7, 7, 6, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outline := NewBuffer(10, 10)
			outline.Rect(tt.x, tt.y, tt.w, tt.h, constant.PixelSolid, constant.FgWhite)
			area := NewBuffer(10, 10)
			area.FillRect(tt.x, tt.y, tt.w, tt.h, constant.PixelSolid, constant.FgWhite)

			got, inside := filled(outline), filled(area)
			for p := range inside {
				border := p.x == tt.x || p.x == tt.x+tt.w-1 || p.y == tt.y || p.y == tt.y+tt.h-1
				if got[p] != border {
					t.Errorf("(%d,%d): expected outline %v, got %v", p.x, p.y, border, got[p])
				}
			}
			for p := range got {
				if !inside[p] {
					t.Errorf("Expected outline inside FillRect area, got stray cell (%d,%d)", p.x, p.y)
				}
			}
		})
	}

	b := NewBuffer(10, 10)
	b.Rect(1, 1, 0, 3, constant.PixelSolid, constant.FgWhite)
	b.Rect(1, 1, 3, -1, constant.PixelSolid, constant.FgWhite)
	if n := len(filled(b)); n != 0 {
		t.Errorf("Expected empty rect to draw nothing, got %d cells", n)
	}
}

// TestTriangleOutlineIsEdgeUnion verifies the outline is exactly its three lines
func TestTriangleOutlineIsEdgeUnion(t *testing.T) {
	tests := []struct {
		name string
		v    [6]int
	}{
		{"right angle", [6]int{0, 0, 6, 0, 0, 6}},
		{"scalene", [6]int{1, 2, 9, 4, 3, 9}},
		{"degenerate", [6]int{0, 0, 4, 4, 8, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(12, 12)
			v := tt.v
			b.Triangle(v[0], v[1], v[2], v[3], v[4], v[5], constant.PixelSolid, constant.FgWhite)

			want := make(map[point]bool)
			for _, e := range [][4]int{
				{v[0], v[1], v[2], v[3]},
				{v[2], v[3], v[4], v[5]},
				{v[4], v[5], v[0], v[1]},
			} {
				for _, p := range collectLine(e[0], e[1], e[2], e[3]) {
					want[p] = true
				}
			}

			got := filled(b)
			if len(got) != len(want) {
				t.Errorf("Expected %d cells, got %d", len(want), len(got))
			}
			for p := range want {
				if !got[p] {
					t.Errorf("Expected edge cell (%d,%d) drawn", p.x, p.y)
				}
			}
		})
	}
}

// TestFillTriangleCoverage verifies the right triangle covers exactly x+y<=4
func TestFillTriangleCoverage(t *testing.T) {
	orders := [][6]int{
		{0, 0, 4, 0, 0, 4},
		{0, 4, 0, 0, 4, 0},
		{4, 0, 0, 4, 0, 0},
	}
	for _, o := range orders {
		b := NewBuffer(8, 8)
		b.FillTriangle(o[0], o[1], o[2], o[3], o[4], o[5], constant.PixelSolid, constant.FgWhite)
		got := filled(b)
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				want := x+y <= 4
				if got[point{x, y}] != want {
					t.Errorf("Order %v at (%d,%d): expected %v, got %v", o, x, y, want, got[point{x, y}])
				}
			}
		}
	}
}

// TestFillTriangleContainsVertices verifies general triangles include their corners
func TestFillTriangleContainsVertices(t *testing.T) {
	tris := [][6]int{
		{1, 1, 10, 3, 4, 9},
		{10, 1, 2, 5, 9, 9},
		{5, 0, 0, 9, 11, 9},
		{0, 5, 11, 5, 6, 0},
	}
	for _, tr := range tris {
		b := NewBuffer(12, 12)
		b.FillTriangle(tr[0], tr[1], tr[2], tr[3], tr[4], tr[5], constant.PixelSolid, constant.FgWhite)
		got := filled(b)
		for i := 0; i < 6; i += 2 {
			if !got[point{tr[i], tr[i+1]}] {
				t.Errorf("Triangle %v: vertex (%d,%d) not filled", tr, tr[i], tr[i+1])
			}
		}
	}
}

// TestFillTriangleFlat verifies a degenerate horizontal triangle draws one span
func TestFillTriangleFlat(t *testing.T) {
	b := NewBuffer(10, 3)
	b.FillTriangle(6, 1, 2, 1, 8, 1, constant.PixelSolid, constant.FgWhite)
	got := filled(b)
	if len(got) != 7 {
		t.Errorf("Expected 7 cells, got %d", len(got))
	}
	for x := 2; x <= 8; x++ {
		if !got[point{x, 1}] {
			t.Errorf("Expected (%d,1) filled", x)
		}
	}
}

// TestCircleRadiusOne verifies the radius one outline is a plus shape
func TestCircleRadiusOne(t *testing.T) {
	b := NewBuffer(5, 5)
	b.Circle(2, 2, 1, constant.PixelSolid, constant.FgWhite)
	got := filled(b)
	want := []point{{2, 1}, {3, 2}, {2, 3}, {1, 2}}
	if len(got) != len(want) {
		t.Fatalf("Expected %d cells, got %v", len(want), got)
	}
	for _, p := range want {
		if !got[p] {
			t.Errorf("Expected %v on outline", p)
		}
	}
}

// TestCircleNonPositiveRadius verifies radius zero or below draws nothing
func TestCircleNonPositiveRadius(t *testing.T) {
	b := NewBuffer(5, 5)
	b.Circle(2, 2, 0, constant.PixelSolid, constant.FgWhite)
	b.FillCircle(2, 2, -3, constant.PixelSolid, constant.FgWhite)
	if n := len(filled(b)); n != 0 {
		t.Errorf("Expected nothing drawn, got %d cells", n)
	}
}

// TestFillCircleSymmetric verifies filled circles are mirror symmetric and within radius
func TestFillCircleSymmetric(t *testing.T) {
	b := NewBuffer(21, 21)
	b.FillCircle(10, 10, 6, constant.PixelSolid, constant.FgWhite)
	got := filled(b)
	for p := range got {
		dx, dy := p.x-10, p.y-10
		if !got[point{10 - dx, p.y}] || !got[point{p.x, 10 - dy}] || !got[point{10 + dy, 10 + dx}] {
			t.Errorf("Fill not symmetric at %v", p)
		}
		if dx*dx+dy*dy > 7*7 {
			t.Errorf("Cell %v outside radius", p)
		}
	}
	if !got[point{10, 10}] || !got[point{10, 4}] || !got[point{16, 10}] {
		t.Error("Expected center and axis extremes filled")
	}
}

// TestFillPolygonSquare verifies center sampling of an axis aligned rectangle
func TestFillPolygonSquare(t *testing.T) {
	b := NewBuffer(8, 8)
	b.FillPolygon([]mgl32.Vec2{{1, 1}, {5, 1}, {5, 4}, {1, 4}}, constant.PixelSolid, constant.FgWhite)
	got := filled(b)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := x >= 1 && x <= 5 && y >= 1 && y <= 3
			if got[point{x, y}] != want {
				t.Errorf("(%d,%d): expected %v, got %v", x, y, want, got[point{x, y}])
			}
		}
	}
}

// TestFillPolygonConcavePairs verifies spans never overlap and come in pairs
func TestFillPolygonConcavePairs(t *testing.T) {
	// U shape: two prongs joined at the bottom
	shape := []mgl32.Vec2{{0, 0}, {3, 0}, {3, 5}, {6, 5}, {6, 0}, {9, 0}, {9, 8}, {0, 8}}
	rows := make(map[int][][2]int)
	fillPolygon(shape, 8, func(xa, xb, y int) {
		rows[y] = append(rows[y], [2]int{xa, xb})
	})
	for y := 0; y < 5; y++ {
		if len(rows[y]) != 2 {
			t.Errorf("Row %d: expected two spans, got %v", y, rows[y])
		}
	}
	for y := 5; y < 8; y++ {
		if len(rows[y]) != 1 {
			t.Errorf("Row %d: expected one span, got %v", y, rows[y])
		}
	}
	if spans := rows[2]; len(spans) == 2 && spans[0][1] >= spans[1][0] {
		t.Errorf("Row 2 spans overlap: %v", spans)
	}
}

// TestFillPolygonDegenerate verifies short and non-finite inputs are tolerated
func TestFillPolygonDegenerate(t *testing.T) {
	b := NewBuffer(6, 6)
	b.FillPolygon([]mgl32.Vec2{{0, 0}, {5, 5}}, constant.PixelSolid, constant.FgWhite)
	nan := float32(math.NaN())
	b.FillPolygon([]mgl32.Vec2{{0, 0}, {nan, 3}, {5, 5}}, constant.PixelSolid, constant.FgWhite)
	if n := len(filled(b)); n != 0 {
		t.Errorf("Expected nothing drawn, got %d cells", n)
	}
}

// TestFillPolygonClampsRows verifies rows outside the buffer are never visited
func TestFillPolygonClampsRows(t *testing.T) {
	huge := []mgl32.Vec2{{0, -5e7}, {40, 5e7}, {-40, 5e7}}
	calls := 0
	fillPolygon(huge, 25, func(xa, xb, y int) {
		calls++
		if y < 0 || y >= 25 {
			t.Errorf("Expected row in [0,25), got %d", y)
		}
	})
	if calls != 25 {
		t.Errorf("Expected 25 spans, got %d", calls)
	}

	calls = 0
	fillPolygon([]mgl32.Vec2{{0, 30}, {5, 30}, {0, 40}}, 25, func(int, int, int) { calls++ })
	if calls != 0 {
		t.Errorf("Expected no spans below the buffer, got %d", calls)
	}

	b := NewBuffer(80, 25)
	b.FillPolygon(huge, constant.PixelSolid, constant.FgWhite)
	if c := b.Cell(0, 12); c.Glyph != constant.PixelSolid {
		t.Errorf("Expected center column filled, got %+v", c)
	}
}

// TestTransformModelOrder verifies rotation happens before scale and translation
func TestTransformModelOrder(t *testing.T) {
	out := TransformModel([]mgl32.Vec2{{1, 0}}, 10, 10, math.Pi/2, 2)
	if math.Abs(float64(out[0][0]-10)) > 1e-4 || math.Abs(float64(out[0][1]-12)) > 1e-4 {
		t.Errorf("Expected (10,12), got %v", out[0])
	}
}

// TestFilledModel verifies a scaled unit square lands where expected
func TestFilledModel(t *testing.T) {
	square := []mgl32.Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	b := NewBuffer(10, 10)
	b.FilledModel(square, 5, 5, 0, 2, constant.PixelSolid, constant.FgWhite)
	got := filled(b)
	if len(got) != 5*4 {
		t.Errorf("Expected 20 cells, got %d", len(got))
	}
	if !got[point{3, 3}] || !got[point{7, 6}] || got[point{7, 7}] {
		t.Error("Unexpected fill extent")
	}

	w := NewBuffer(10, 10)
	w.WireframeModel(square, 5, 5, 0, 2, constant.PixelSolid, constant.FgWhite)
	edges := filled(w)
	if !edges[point{3, 3}] || !edges[point{7, 7}] || edges[point{5, 5}] {
		t.Error("Unexpected wireframe outline")
	}
}

// TestSpriteTransparency verifies empty sprite cells do not overwrite the buffer
func TestSpriteTransparency(t *testing.T) {
	spr := sprite.New(3, 1)
	spr.SetGlyph(0, 0, constant.PixelSolid)
	spr.SetColor(0, 0, constant.FgRed)
	spr.SetGlyph(2, 0, constant.PixelHalf)

	b := NewBuffer(5, 2)
	b.Fill(0, 0, 5, 2, '.', constant.FgGrey)
	b.Sprite(1, 0, spr)

	if c := b.Cell(1, 0); c.Glyph != constant.PixelSolid || c.Color != constant.FgRed {
		t.Errorf("Expected solid red at (1,0), got %+v", c)
	}
	if c := b.Cell(2, 0); c.Glyph != '.' {
		t.Errorf("Expected transparent cell at (2,0), got %+v", c)
	}
	if c := b.Cell(3, 0); c.Glyph != constant.PixelHalf {
		t.Errorf("Expected half at (3,0), got %+v", c)
	}
}

// TestPartialSpriteClips verifies region blits respect both sprite and buffer bounds
func TestPartialSpriteClips(t *testing.T) {
	spr := sprite.New(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			spr.SetGlyph(x, y, uint16('a'+y*4+x))
		}
	}
	b := NewBuffer(3, 3)
	b.PartialSprite(1, 1, spr, 2, 2, 5, 5)
	if g := b.Cell(1, 1).Glyph; g != 'a'+10 {
		t.Errorf("Expected k at (1,1), got %c", g)
	}
	if g := b.Cell(2, 2).Glyph; g != 'a'+15 {
		t.Errorf("Expected p at (2,2), got %c", g)
	}
	if g := b.Cell(0, 0).Glyph; g != constant.PixelEmpty {
		t.Errorf("Expected (0,0) untouched, got %c", g)
	}
}
