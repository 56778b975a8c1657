package input

// KeyState holds the per-frame edges of a key or mouse button
// Pressed and Released are true for exactly one frame per transition
type KeyState struct {
	Pressed  bool
	Released bool
	Held     bool
}

// KeySource reports whether a key is physically down right now
type KeySource interface {
	IsDown(k Key) bool
}

// EventKind discriminates queued mouse and focus records
type EventKind uint8

const (
	EventButtons EventKind = iota // Buttons carries the full held mask, X/Y the pointer
	EventMove                     // X/Y only
	EventFocus                    // Focused only
)

// Event is a discrete mouse or focus record drained from the platform
type Event struct {
	Kind    EventKind
	X, Y    int
	Buttons ButtonMask
	Focused bool
}

// Machine is the input state machine
// Double-buffers raw samples and derives edges once per frame
type Machine struct {
	keyNew [KeyCount]bool
	keyOld [KeyCount]bool
	keys   [KeyCount]KeyState

	mouseNew [ButtonCount]bool
	mouseOld [ButtonCount]bool
	mouse    [ButtonCount]KeyState

	mouseX, mouseY int
	focused        bool
}

// NewMachine creates a machine with every key up and focus held
func NewMachine() *Machine {
	return &Machine{focused: true}
}

// Update samples every key from src, folds the queued events and derives edges
// Called once per frame before the consumer runs
func (m *Machine) Update(src KeySource, events []Event) {
	for k := KeyNone + 1; k < KeyCount; k++ {
		if src != nil {
			m.keyNew[k] = src.IsDown(k)
		}
		advanceKey(&m.keys[k], m.keyNew[k], m.keyOld[k])
		m.keyOld[k] = m.keyNew[k]
	}

	for _, ev := range events {
		switch ev.Kind {
		case EventButtons:
			for b := Button(0); b < ButtonCount; b++ {
				m.mouseNew[b] = ev.Buttons.Has(b)
			}
			m.mouseX, m.mouseY = ev.X, ev.Y
		case EventMove:
			m.mouseX, m.mouseY = ev.X, ev.Y
		case EventFocus:
			m.focused = ev.Focused
		}
	}

	for b := Button(0); b < ButtonCount; b++ {
		advanceButton(&m.mouse[b], m.mouseNew[b], m.mouseOld[b])
		m.mouseOld[b] = m.mouseNew[b]
	}
}

// advanceKey applies the key transition table
// A press while already held is not reported again
func advanceKey(s *KeyState, down, wasDown bool) {
	s.Pressed = false
	s.Released = false
	if down == wasDown {
		return
	}
	if down {
		s.Pressed = !s.Held
		s.Held = true
	} else {
		s.Released = true
		s.Held = false
	}
}

// advanceButton applies the transition table with unconditional press edges
func advanceButton(s *KeyState, down, wasDown bool) {
	s.Pressed = false
	s.Released = false
	if down == wasDown {
		return
	}
	if down {
		s.Pressed = true
		s.Held = true
	} else {
		s.Released = true
		s.Held = false
	}
}

// Key returns the full state of k; out-of-range keys report the zero state
func (m *Machine) Key(k Key) KeyState {
	if !k.Valid() {
		return KeyState{}
	}
	return m.keys[k]
}

// Pressed reports a key's up to down edge this frame
func (m *Machine) Pressed(k Key) bool { return m.Key(k).Pressed }

// Released reports a key's down to up edge this frame
func (m *Machine) Released(k Key) bool { return m.Key(k).Released }

// Held reports whether a key is down this frame
func (m *Machine) Held(k Key) bool { return m.Key(k).Held }

// Button returns the full state of a mouse button
func (m *Machine) Button(b Button) KeyState {
	if b >= ButtonCount {
		return KeyState{}
	}
	return m.mouse[b]
}

func (m *Machine) MousePressed(b Button) bool  { return m.Button(b).Pressed }
func (m *Machine) MouseReleased(b Button) bool { return m.Button(b).Released }
func (m *Machine) MouseHeld(b Button) bool     { return m.Button(b).Held }

// Mouse returns the last reported pointer cell
func (m *Machine) Mouse() (int, int) { return m.mouseX, m.mouseY }

func (m *Machine) MouseX() int { return m.mouseX }
func (m *Machine) MouseY() int { return m.mouseY }

// Focused reports whether the console window has input focus
func (m *Machine) Focused() bool { return m.focused }
