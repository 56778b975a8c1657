// Package input tracks keyboard and mouse state across frames and derives
// one-frame pressed/released edges from raw "is down" samples.
package input

// Key is a dense logical key identifier
// Platforms translate raw codes to Key at their boundary
type Key uint8

const (
	KeyNone Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeySpace
	KeyTab
	KeyShift
	KeyControl
	KeyAlt
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyBackspace
	KeyEscape
	KeyEnter
	KeyPause
	KeyScrollLock
	KeyCapsLock
	KeyNumLock

	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadMultiply
	KeyNumpadAdd
	KeyNumpadDivide
	KeyNumpadSubtract
	KeyNumpadDecimal

	KeyPeriod
	KeyComma
	KeyMinus
	KeyEquals
	KeySemicolon
	KeySlash
	KeyBacktick
	KeyBracketLeft
	KeyBackslash
	KeyBracketRight
	KeyQuote

	// KeyCount is the number of key identifiers including KeyNone
	KeyCount
)

// KeyNumpadEnter shares the Enter key; terminals cannot tell them apart
const KeyNumpadEnter = KeyEnter

// Valid reports whether k names a real key
func (k Key) Valid() bool {
	return k > KeyNone && k < KeyCount
}

// Button is a mouse button identifier
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	ButtonX1
	ButtonX2

	// ButtonCount is the number of tracked mouse buttons
	ButtonCount
)

// ButtonMask is a bitset of held buttons, bit n for Button n
type ButtonMask uint8

// Has reports whether b is set in the mask
func (m ButtonMask) Has(b Button) bool {
	return b < ButtonCount && m&(1<<b) != 0
}

// MaskOf builds a mask from buttons
func MaskOf(buttons ...Button) ButtonMask {
	var m ButtonMask
	for _, b := range buttons {
		if b < ButtonCount {
			m |= 1 << b
		}
	}
	return m
}
