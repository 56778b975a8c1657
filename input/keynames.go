package input

// keyToName maps Key constants to canonical config and script names
var keyToName = [KeyCount]string{
	KeyA: "a", KeyB: "b", KeyC: "c", KeyD: "d", KeyE: "e", KeyF: "f", KeyG: "g",
	KeyH: "h", KeyI: "i", KeyJ: "j", KeyK: "k", KeyL: "l", KeyM: "m", KeyN: "n",
	KeyO: "o", KeyP: "p", KeyQ: "q", KeyR: "r", KeyS: "s", KeyT: "t", KeyU: "u",
	KeyV: "v", KeyW: "w", KeyX: "x", KeyY: "y", KeyZ: "z",

	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyInsert:   "insert",
	KeyDelete:   "delete",

	KeySpace:      "space",
	KeyTab:        "tab",
	KeyShift:      "shift",
	KeyControl:    "ctrl",
	KeyAlt:        "alt",
	KeyBackspace:  "backspace",
	KeyEscape:     "escape",
	KeyEnter:      "enter",
	KeyPause:      "pause",
	KeyScrollLock: "scroll_lock",
	KeyCapsLock:   "caps_lock",
	KeyNumLock:    "num_lock",

	KeyNumpad0:        "numpad_0",
	KeyNumpad1:        "numpad_1",
	KeyNumpad2:        "numpad_2",
	KeyNumpad3:        "numpad_3",
	KeyNumpad4:        "numpad_4",
	KeyNumpad5:        "numpad_5",
	KeyNumpad6:        "numpad_6",
	KeyNumpad7:        "numpad_7",
	KeyNumpad8:        "numpad_8",
	KeyNumpad9:        "numpad_9",
	KeyNumpadMultiply: "numpad_multiply",
	KeyNumpadAdd:      "numpad_add",
	KeyNumpadDivide:   "numpad_divide",
	KeyNumpadSubtract: "numpad_subtract",
	KeyNumpadDecimal:  "numpad_decimal",

	KeyPeriod:       "period",
	KeyComma:        "comma",
	KeyMinus:        "minus",
	KeyEquals:       "equals",
	KeySemicolon:    "semicolon",
	KeySlash:        "slash",
	KeyBacktick:     "backtick",
	KeyBracketLeft:  "bracket_left",
	KeyBackslash:    "backslash",
	KeyBracketRight: "bracket_right",
	KeyQuote:        "quote",
}

// nameToKey is the reverse lookup, built from keyToName
var nameToKey map[string]Key

func init() {
	nameToKey = make(map[string]Key, len(keyToName))
	for k, v := range keyToName {
		if v != "" {
			nameToKey[v] = Key(k)
		}
	}
	// Aliases
	nameToKey["esc"] = KeyEscape
	nameToKey["return"] = KeyEnter
	nameToKey["numpad_enter"] = KeyNumpadEnter
	nameToKey["control"] = KeyControl
	nameToKey["pgup"] = KeyPageUp
	nameToKey["pgdn"] = KeyPageDown
}

// String returns the canonical name for a Key constant
// Returns empty string for KeyNone and out-of-range values
func (k Key) String() string {
	if !k.Valid() {
		return ""
	}
	return keyToName[k]
}

// KeyByName resolves a canonical name to a Key constant
// Returns KeyNone and false if name is unknown
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[name]
	return k, ok
}

var buttonToName = [ButtonCount]string{
	ButtonLeft:   "left",
	ButtonRight:  "right",
	ButtonMiddle: "middle",
	ButtonX1:     "x1",
	ButtonX2:     "x2",
}

// String returns the canonical name of a mouse button
func (b Button) String() string {
	if b >= ButtonCount {
		return ""
	}
	return buttonToName[b]
}

// ButtonByName resolves a mouse button name
func ButtonByName(name string) (Button, bool) {
	for i, n := range buttonToName {
		if n == name {
			return Button(i), true
		}
	}
	return 0, false
}
