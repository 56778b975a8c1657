package sprite

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

const headerSize = 8

// Sentinel errors
var (
	ErrTruncated  = errors.New("sprite data truncated")
	ErrDimensions = errors.New("sprite dimensions overflow")
	ErrCellCount  = errors.New("sprite cell count does not match dimensions")
)

// MarshalBinary encodes the sprite in .spr layout:
// u32 width, u32 height, width*height u16 colors, width*height u16 glyphs (all little-endian)
func (s *Sprite) MarshalBinary() ([]byte, error) {
	count := len(s.glyphs)
	buf := make([]byte, headerSize+count*4)
	binary.LittleEndian.PutUint32(buf[0:], uint32(s.width))
	binary.LittleEndian.PutUint32(buf[4:], uint32(s.height))

	off := headerSize
	for _, c := range s.colors {
		binary.LittleEndian.PutUint16(buf[off:], c)
		off += 2
	}
	for _, g := range s.glyphs {
		binary.LittleEndian.PutUint16(buf[off:], g)
		off += 2
	}
	return buf, nil
}

// UnmarshalBinary replaces the sprite with the decoded .spr data
// Trailing bytes beyond the computed size are ignored
func (s *Sprite) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize {
		return fmt.Errorf("%w: %d byte header", ErrTruncated, len(data))
	}

	w := uint64(binary.LittleEndian.Uint32(data[0:]))
	h := uint64(binary.LittleEndian.Uint32(data[4:]))
	count := w * h
	if h != 0 && count/h != w {
		return ErrDimensions
	}
	if count > (math.MaxInt-headerSize)/4 {
		return ErrDimensions
	}

	expected := headerSize + int(count)*4
	if len(data) < expected {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrTruncated, len(data), expected)
	}

	n := int(count)
	colors := make([]uint16, n)
	glyphs := make([]uint16, n)
	off := headerSize
	for i := range colors {
		colors[i] = binary.LittleEndian.Uint16(data[off:])
		off += 2
	}
	for i := range glyphs {
		glyphs[i] = binary.LittleEndian.Uint16(data[off:])
		off += 2
	}

	s.width = int(w)
	s.height = int(h)
	s.colors = colors
	s.glyphs = glyphs
	return nil
}

// Decode reads a complete .spr stream
func Decode(r io.Reader) (*Sprite, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read sprite: %w", err)
	}
	s := &Sprite{}
	if err := s.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return s, nil
}

// Encode writes the sprite as a .spr stream
func (s *Sprite) Encode(w io.Writer) error {
	data, err := s.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Load reads a sprite from a .spr file
func Load(path string) (*Sprite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load sprite: %w", err)
	}
	s := &Sprite{}
	if err := s.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("load sprite %s: %w", path, err)
	}
	return s, nil
}

// Save writes the sprite to a .spr file
func (s *Sprite) Save(path string) error {
	data, err := s.MarshalBinary()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save sprite: %w", err)
	}
	return nil
}
