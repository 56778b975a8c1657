package terminal

import (
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/conengine/core"
	"github.com/lixenwraith/conengine/input"
	"github.com/lixenwraith/conengine/render"
)

// Terminal is a tcell-backed platform: key polling, event queue, presentation
type Terminal struct {
	screen tcell.Screen
	config Config
	width  int
	height int

	// now is swapped in tests
	now func() time.Time

	mu        sync.Mutex
	lastSeen  [input.KeyCount]time.Time
	repeating [input.KeyCount]bool
	buttons   input.ButtonMask
	events    []input.Event
	dropped   uint64

	finalized atomic.Bool
	closed    chan struct{}
	closeOnce sync.Once
	finiOnce  sync.Once
	wg        sync.WaitGroup
}

// New opens the controlling terminal
// Fails with ErrNotTerminal when stdin or stdout is redirected
func New(cfg *Config) (*Terminal, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(screen, cfg)
}

// NewWithScreen initializes an existing screen, such as a simulation screen
func NewWithScreen(screen tcell.Screen, cfg *Config) (*Terminal, error) {
	return newTerminal(screen, cfg, time.Now)
}

func newTerminal(screen tcell.Screen, cfg *Config, now func() time.Time) (*Terminal, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, ErrBadSize
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	sw, sh := screen.Size()
	w, h := cfg.Width, cfg.Height
	if w == 0 {
		w = sw
	}
	if h == 0 {
		h = sh
	}
	if w > sw || h > sh {
		screen.Fini()
		return nil, fmt.Errorf("%w: want %dx%d, have %dx%d", ErrTooLarge, w, h, sw, sh)
	}

	if cfg.Mouse {
		screen.EnableMouse()
	}
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		config: *cfg,
		width:  w,
		height: h,
		now:    now,
		events: make([]input.Event, 0, maxQueuedEvents),
		closed: make(chan struct{}),
	}

	core.SetResetHook(screen.Fini)

	t.wg.Add(1)
	core.Go(t.poll)

	log.Printf("terminal: %dx%d grid on %dx%d screen", w, h, sw, sh)
	return t, nil
}

// Size returns the grid dimensions
func (t *Terminal) Size() (int, int) {
	return t.width, t.height
}

// Closed is closed on Ctrl-C or when the screen stops delivering events
func (t *Terminal) Closed() <-chan struct{} {
	return t.closed
}

func (t *Terminal) signalClosed() {
	t.closeOnce.Do(func() { close(t.closed) })
}

// Fini restores the terminal and stops the event poller. Safe to call multiple times
func (t *Terminal) Fini() {
	t.finiOnce.Do(func() {
		t.finalized.Store(true)
		core.SetResetHook(nil)
		t.screen.Fini()
		t.wg.Wait()
		t.signalClosed()
	})
}

// poll reads screen events until the screen is finalized
func (t *Terminal) poll() {
	defer t.wg.Done()
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			t.signalClosed()
			return
		}
		t.handleEvent(ev)
	}
}

func (t *Terminal) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if t.config.QuitOnCtrlC && ev.Key() == tcell.KeyCtrlC {
			t.signalClosed()
			return
		}
		now := t.now()
		t.mu.Lock()
		for _, k := range translateKey(ev) {
			t.touch(k, now)
		}
		t.mu.Unlock()

	case *tcell.EventMouse:
		x, y := ev.Position()
		buttons := translateButtons(ev.Buttons())
		t.mu.Lock()
		if buttons != t.buttons {
			t.buttons = buttons
			t.enqueue(input.Event{Kind: input.EventButtons, X: x, Y: y, Buttons: buttons})
		} else {
			t.enqueue(input.Event{Kind: input.EventMove, X: x, Y: y})
		}
		t.mu.Unlock()

	case *tcell.EventFocus:
		t.mu.Lock()
		t.enqueue(input.Event{Kind: input.EventFocus, Focused: ev.Focused})
		t.mu.Unlock()

	case *tcell.EventResize:
		t.screen.Sync()
	}
}

// touch records an event for k; a second event inside the window is auto-repeat
// Caller holds mu
func (t *Terminal) touch(k input.Key, now time.Time) {
	t.repeating[k] = t.downAt(k, now)
	t.lastSeen[k] = now
}

// downAt reports whether k is still inside its hold or repeat window
// Caller holds mu
func (t *Terminal) downAt(k input.Key, now time.Time) bool {
	last := t.lastSeen[k]
	if last.IsZero() {
		return false
	}
	window := t.config.HoldTimeout
	if t.repeating[k] {
		window = t.config.RepeatTimeout
	}
	return now.Sub(last) < window
}

// enqueue appends a record, dropping it once the per-frame limit is reached
// Caller holds mu
func (t *Terminal) enqueue(ev input.Event) {
	if len(t.events) >= maxQueuedEvents {
		t.dropped++
		return
	}
	t.events = append(t.events, ev)
}

// IsDown reports whether k should read as held this frame
func (t *Terminal) IsDown(k input.Key) bool {
	if !k.Valid() {
		return false
	}
	now := t.now()
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.downAt(k, now)
}

// DrainEvents appends queued mouse and focus records to dst and clears the queue
func (t *Terminal) DrainEvents(dst []input.Event) []input.Event {
	t.mu.Lock()
	dst = append(dst, t.events...)
	t.events = t.events[:0]
	t.mu.Unlock()
	return dst
}

// Present copies the buffer to the screen and flushes it
// Cells beyond the grid are ignored
func (t *Terminal) Present(buf *render.Buffer) error {
	if t.finalized.Load() {
		return ErrClosed
	}

	w := min(buf.Width(), t.width)
	h := min(buf.Height(), t.height)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := buf.Cell(x, y)
			t.screen.SetContent(x, y, glyphRune(c.Glyph), nil, styleFor(c.Color))
		}
	}
	t.screen.Show()
	return nil
}
