package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/conengine/constant"
)

// palette maps 4-bit color indices to the classic console colors
var palette = [constant.PaletteSize]tcell.Color{
	tcell.ColorBlack,
	tcell.ColorNavy,
	tcell.ColorGreen,
	tcell.ColorTeal,
	tcell.ColorMaroon,
	tcell.ColorPurple,
	tcell.ColorOlive,
	tcell.ColorSilver,
	tcell.ColorGray,
	tcell.ColorBlue,
	tcell.ColorLime,
	tcell.ColorAqua,
	tcell.ColorRed,
	tcell.ColorFuchsia,
	tcell.ColorYellow,
	tcell.ColorWhite,
}

// styleFor converts a color attribute to a tcell style
func styleFor(attr uint16) tcell.Style {
	return tcell.StyleDefault.
		Foreground(palette[constant.Foreground(attr)]).
		Background(palette[constant.Background(attr)])
}

// glyphRune converts a 16-bit code unit to a displayable rune
// Lone surrogates cannot be shown and render as '?'
func glyphRune(g uint16) rune {
	switch {
	case g == 0:
		return ' '
	case g >= 0xD800 && g <= 0xDFFF:
		return '?'
	}
	return rune(g)
}
