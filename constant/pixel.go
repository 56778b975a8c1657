package constant

// Block glyphs used as pixels, from solid to empty
const (
	PixelSolid         uint16 = 0x2588 // █
	PixelThreeQuarters uint16 = 0x2593 // ▓
	PixelHalf          uint16 = 0x2592 // ▒
	PixelQuarter       uint16 = 0x2591 // ░
	PixelEmpty         uint16 = 0x20   // space, transparent in sprite blits
)

// Shades orders the pixel glyphs by coverage, densest first
var Shades = [...]uint16{PixelSolid, PixelThreeQuarters, PixelHalf, PixelQuarter, PixelEmpty}
