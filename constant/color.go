package constant

// Color attributes pack a 4-bit foreground (low nibble) and a 4-bit
// background (second nibble). Combine with OR: FgYellow | BgDarkBlue
const (
	FgBlack       uint16 = 0x0000
	FgDarkBlue    uint16 = 0x0001
	FgDarkGreen   uint16 = 0x0002
	FgDarkCyan    uint16 = 0x0003
	FgDarkRed     uint16 = 0x0004
	FgDarkMagenta uint16 = 0x0005
	FgDarkYellow  uint16 = 0x0006
	FgGrey        uint16 = 0x0007
	FgDarkGrey    uint16 = 0x0008
	FgBlue        uint16 = 0x0009
	FgGreen       uint16 = 0x000A
	FgCyan        uint16 = 0x000B
	FgRed         uint16 = 0x000C
	FgMagenta     uint16 = 0x000D
	FgYellow      uint16 = 0x000E
	FgWhite       uint16 = 0x000F
)

const (
	BgBlack       uint16 = 0x0000
	BgDarkBlue    uint16 = 0x0010
	BgDarkGreen   uint16 = 0x0020
	BgDarkCyan    uint16 = 0x0030
	BgDarkRed     uint16 = 0x0040
	BgDarkMagenta uint16 = 0x0050
	BgDarkYellow  uint16 = 0x0060
	BgGrey        uint16 = 0x0070
	BgDarkGrey    uint16 = 0x0080
	BgBlue        uint16 = 0x0090
	BgGreen       uint16 = 0x00A0
	BgCyan        uint16 = 0x00B0
	BgRed         uint16 = 0x00C0
	BgMagenta     uint16 = 0x00D0
	BgYellow      uint16 = 0x00E0
	BgWhite       uint16 = 0x00F0
)

// PaletteSize is the number of distinct console colors per nibble
const PaletteSize = 16

// Foreground extracts the foreground palette index from an attribute
func Foreground(attr uint16) uint8 {
	return uint8(attr & 0x0F)
}

// Background extracts the background palette index from an attribute
func Background(attr uint16) uint8 {
	return uint8((attr >> 4) & 0x0F)
}

// Attribute packs foreground and background palette indices
func Attribute(fg, bg uint8) uint16 {
	return uint16(fg&0x0F) | uint16(bg&0x0F)<<4
}
