package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/conengine/input"
)

// specialKeys maps tcell named keys to logical keys
var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyUp:        input.KeyUp,
	tcell.KeyDown:      input.KeyDown,
	tcell.KeyLeft:      input.KeyLeft,
	tcell.KeyRight:     input.KeyRight,
	tcell.KeyHome:      input.KeyHome,
	tcell.KeyEnd:       input.KeyEnd,
	tcell.KeyPgUp:      input.KeyPageUp,
	tcell.KeyPgDn:      input.KeyPageDown,
	tcell.KeyInsert:    input.KeyInsert,
	tcell.KeyDelete:    input.KeyDelete,
	tcell.KeyPause:     input.KeyPause,
	tcell.KeyEnter:     input.KeyEnter,
	tcell.KeyTab:       input.KeyTab,
	tcell.KeyBackspace: input.KeyBackspace,
	tcell.KeyEscape:    input.KeyEscape,
	tcell.KeyF1:        input.KeyF1,
	tcell.KeyF2:        input.KeyF2,
	tcell.KeyF3:        input.KeyF3,
	tcell.KeyF4:        input.KeyF4,
	tcell.KeyF5:        input.KeyF5,
	tcell.KeyF6:        input.KeyF6,
	tcell.KeyF7:        input.KeyF7,
	tcell.KeyF8:        input.KeyF8,
	tcell.KeyF9:        input.KeyF9,
	tcell.KeyF10:       input.KeyF10,
	tcell.KeyF11:       input.KeyF11,
	tcell.KeyF12:       input.KeyF12,
}

// shiftedDigits maps US-layout shifted digit row symbols to their digit key
var shiftedDigits = map[rune]input.Key{
	')': input.Key0, '!': input.Key1, '@': input.Key2, '#': input.Key3, '$': input.Key4,
	'%': input.Key5, '^': input.Key6, '&': input.Key7, '*': input.Key8, '(': input.Key9,
}

// punctuation maps unshifted and shifted punctuation to logical keys
var punctuation = map[rune]struct {
	key     input.Key
	shifted bool
}{
	' ': {input.KeySpace, false},
	'.': {input.KeyPeriod, false}, '>': {input.KeyPeriod, true},
	',': {input.KeyComma, false}, '<': {input.KeyComma, true},
	'-': {input.KeyMinus, false}, '_': {input.KeyMinus, true},
	'=': {input.KeyEquals, false}, '+': {input.KeyEquals, true},
	';': {input.KeySemicolon, false}, ':': {input.KeySemicolon, true},
	'/': {input.KeySlash, false}, '?': {input.KeySlash, true},
	'`': {input.KeyBacktick, false}, '~': {input.KeyBacktick, true},
	'[': {input.KeyBracketLeft, false}, '{': {input.KeyBracketLeft, true},
	'\\': {input.KeyBackslash, false}, '|': {input.KeyBackslash, true},
	']': {input.KeyBracketRight, false}, '}': {input.KeyBracketRight, true},
	'\'': {input.KeyQuote, false}, '"': {input.KeyQuote, true},
}

// translateKey maps a tcell key event to logical keys that should read as down
// Returns nil for keys with no logical equivalent
func translateKey(ev *tcell.EventKey) []input.Key {
	k := ev.Key()
	mod := ev.Modifiers()

	var keys []input.Key
	switch {
	case k == tcell.KeyRune:
		key, shifted := keyFromRune(ev.Rune())
		if key == input.KeyNone {
			return nil
		}
		keys = append(keys, key)
		if shifted {
			keys = append(keys, input.KeyShift)
		}

	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ && (mod&tcell.ModCtrl != 0 || !typeable(k)):
		keys = append(keys, input.KeyA+input.Key(k-tcell.KeyCtrlA), input.KeyControl)

	default:
		key, ok := specialKeys[k]
		if !ok {
			return nil
		}
		keys = append(keys, key)
	}

	if mod&tcell.ModShift != 0 {
		keys = appendUnique(keys, input.KeyShift)
	}
	if mod&tcell.ModCtrl != 0 {
		keys = appendUnique(keys, input.KeyControl)
	}
	if mod&tcell.ModAlt != 0 {
		keys = appendUnique(keys, input.KeyAlt)
	}
	return keys
}

// typeable reports control codes that have their own key on the keyboard
func typeable(k tcell.Key) bool {
	return k == tcell.KeyTab || k == tcell.KeyEnter || k == tcell.KeyBackspace
}

// keyFromRune maps a printable rune to its key and whether shift produced it
func keyFromRune(r rune) (input.Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return input.KeyA + input.Key(r-'a'), false
	case r >= 'A' && r <= 'Z':
		return input.KeyA + input.Key(r-'A'), true
	case r >= '0' && r <= '9':
		return input.Key0 + input.Key(r-'0'), false
	}
	if k, ok := shiftedDigits[r]; ok {
		return k, true
	}
	if p, ok := punctuation[r]; ok {
		return p.key, p.shifted
	}
	return input.KeyNone, false
}

func appendUnique(keys []input.Key, k input.Key) []input.Key {
	for _, have := range keys {
		if have == k {
			return keys
		}
	}
	return append(keys, k)
}

// translateButtons maps tcell's button mask to the tracked buttons
func translateButtons(b tcell.ButtonMask) input.ButtonMask {
	var m input.ButtonMask
	if b&tcell.Button1 != 0 {
		m |= input.MaskOf(input.ButtonLeft)
	}
	if b&tcell.Button2 != 0 {
		m |= input.MaskOf(input.ButtonRight)
	}
	if b&tcell.Button3 != 0 {
		m |= input.MaskOf(input.ButtonMiddle)
	}
	if b&tcell.Button4 != 0 {
		m |= input.MaskOf(input.ButtonX1)
	}
	if b&tcell.Button5 != 0 {
		m |= input.MaskOf(input.ButtonX2)
	}
	return m
}
