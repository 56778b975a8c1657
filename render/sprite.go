package render

import (
	"github.com/lixenwraith/conengine/constant"
	"github.com/lixenwraith/conengine/sprite"
)

// Sprite blits a whole sprite with its top-left at (x, y)
// Cells holding PixelEmpty are transparent
func (b *Buffer) Sprite(x, y int, spr *sprite.Sprite) {
	if spr == nil {
		return
	}
	b.PartialSprite(x, y, spr, 0, 0, spr.Width(), spr.Height())
}

// PartialSprite blits the w x h region of spr starting at (ox, oy)
func (b *Buffer) PartialSprite(x, y int, spr *sprite.Sprite, ox, oy, w, h int) {
	if spr == nil {
		return
	}
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			g := spr.Glyph(ox+i, oy+j)
			if g == constant.PixelEmpty {
				continue
			}
			b.Draw(x+i, y+j, g, spr.Color(ox+i, oy+j))
		}
	}
}
