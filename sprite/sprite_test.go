package sprite

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/conengine/constant"
)

// TestNewDefaults verifies a new sprite is filled with empty black cells
func TestNewDefaults(t *testing.T) {
	s := New(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("Expected 3x2, got %dx%d", s.Width(), s.Height())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if g := s.Glyph(x, y); g != constant.PixelEmpty {
				t.Errorf("Expected empty glyph at (%d,%d), got %#x", x, y, g)
			}
			if c := s.Color(x, y); c != constant.FgBlack {
				t.Errorf("Expected black at (%d,%d), got %#x", x, y, c)
			}
		}
	}
}

// TestOutOfRangeAccess verifies out-of-range reads return defaults and writes are dropped
func TestOutOfRangeAccess(t *testing.T) {
	s := New(2, 2)
	s.SetGlyph(5, 5, constant.PixelSolid)
	s.SetColor(-1, 0, constant.FgRed)

	tests := []struct{ x, y int }{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, 100}}
	for _, tt := range tests {
		if g := s.Glyph(tt.x, tt.y); g != constant.PixelEmpty {
			t.Errorf("Glyph(%d,%d): expected PixelEmpty, got %#x", tt.x, tt.y, g)
		}
		if c := s.Color(tt.x, tt.y); c != constant.FgBlack {
			t.Errorf("Color(%d,%d): expected FgBlack, got %#x", tt.x, tt.y, c)
		}
	}

	s.SetGlyph(1, 1, constant.PixelHalf)
	s.SetColor(1, 1, constant.FgCyan|constant.BgRed)
	if s.Glyph(1, 1) != constant.PixelHalf || s.Color(1, 1) != constant.FgCyan|constant.BgRed {
		t.Errorf("Expected in-range write to stick")
	}
}

// TestSampleWraps verifies sampling is periodic with period one on both axes
func TestSampleWraps(t *testing.T) {
	s := New(4, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			s.SetGlyph(x, y, uint16('a'+y*4+x))
			s.SetColor(x, y, uint16(y*4+x))
		}
	}

	points := []float32{0, 0.125, 0.25, 0.5, 0.75, 0.875}
	offsets := []float32{-2, -1, 1, 3}
	for _, px := range points {
		for _, py := range points {
			want := s.SampleGlyph(px, py)
			wantColor := s.SampleColor(px, py)
			for _, o := range offsets {
				if got := s.SampleGlyph(px+o, py+o); got != want {
					t.Errorf("SampleGlyph(%v,%v): expected %c, got %c", px+o, py+o, want, got)
				}
				if got := s.SampleColor(px+o, py); got != wantColor {
					t.Errorf("SampleColor(%v,%v): expected %d, got %d", px+o, py, wantColor, got)
				}
			}
		}
	}

	if got := s.SampleGlyph(0.5, 0.5); got != 'a'+4+2 {
		t.Errorf("Expected glyph at cell (2,1), got %c", got)
	}
}

// TestSampleEmptySprite verifies a zero-size sprite samples to defaults
func TestSampleEmptySprite(t *testing.T) {
	s := New(0, 0)
	if g := s.SampleGlyph(0.3, 0.3); g != constant.PixelEmpty {
		t.Errorf("Expected PixelEmpty, got %#x", g)
	}
}

// TestFromCellsValidation verifies raw array sizes are checked
func TestFromCellsValidation(t *testing.T) {
	if _, err := FromCells(2, 2, make([]uint16, 3), make([]uint16, 4)); !errors.Is(err, ErrCellCount) {
		t.Errorf("Expected ErrCellCount, got %v", err)
	}
	if _, err := FromCells(-1, 2, nil, nil); !errors.Is(err, ErrDimensions) {
		t.Errorf("Expected ErrDimensions, got %v", err)
	}
}

// TestCodecRoundTrip verifies save then load reproduces identical cells
func TestCodecRoundTrip(t *testing.T) {
	s := New(5, 3)
	for i := 0; i < 15; i++ {
		s.SetGlyph(i%5, i/5, constant.Shades[i%len(constant.Shades)])
		s.SetColor(i%5, i/5, uint16(i)|constant.BgDarkBlue)
	}

	path := filepath.Join(t.TempDir(), "round.spr")
	if err := s.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Width() != 5 || loaded.Height() != 3 {
		t.Fatalf("Expected 5x3, got %dx%d", loaded.Width(), loaded.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if loaded.Glyph(x, y) != s.Glyph(x, y) || loaded.Color(x, y) != s.Color(x, y) {
				t.Errorf("Cell (%d,%d) differs after round trip", x, y)
			}
		}
	}
}

// TestCodecLayout verifies the header and section order of the encoding
func TestCodecLayout(t *testing.T) {
	s := New(1, 1)
	s.SetColor(0, 0, 0x00AB)
	s.SetGlyph(0, 0, 0x2588)

	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := []byte{1, 0, 0, 0, 1, 0, 0, 0, 0xAB, 0x00, 0x88, 0x25}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("Expected %v, got %v", want, buf.Bytes())
	}
}

// TestDecodeTruncated verifies short inputs are rejected
func TestDecodeTruncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"partial header", []byte{2, 0, 0}},
		{"missing cells", []byte{2, 0, 0, 0, 2, 0, 0, 0, 1, 0, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrTruncated) {
				t.Errorf("Expected ErrTruncated, got %v", err)
			}
		})
	}
}

// TestDecodeHugeDimensions verifies absurd headers fail without allocating
func TestDecodeHugeDimensions(t *testing.T) {
	data := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	_, err := Decode(bytes.NewReader(data))
	if err == nil {
		t.Fatal("Expected error for oversized dimensions")
	}
	if !errors.Is(err, ErrDimensions) && !errors.Is(err, ErrTruncated) {
		t.Errorf("Expected ErrDimensions or ErrTruncated, got %v", err)
	}
}

// TestCloneIndependent verifies clones do not share storage
func TestCloneIndependent(t *testing.T) {
	s := New(2, 2)
	c := s.Clone()
	c.SetGlyph(0, 0, constant.PixelSolid)
	if s.Glyph(0, 0) != constant.PixelEmpty {
		t.Error("Expected original unchanged after clone write")
	}
}
