package terminal

import (
	"errors"
	"time"
)

// Config sizes the grid and tunes key-down emulation
type Config struct {
	// Width and Height of the grid in cells; zero uses the full screen
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// HoldTimeout keeps a key down after its first event
	HoldTimeout time.Duration `toml:"hold_timeout"`
	// RepeatTimeout keeps a key down between auto-repeat events
	RepeatTimeout time.Duration `toml:"repeat_timeout"`

	Mouse       bool `toml:"mouse"`
	QuitOnCtrlC bool `toml:"quit_on_ctrl_c"`
}

// DefaultConfig returns a full-screen grid with mouse enabled
func DefaultConfig() *Config {
	return &Config{
		HoldTimeout:   500 * time.Millisecond,
		RepeatTimeout: 100 * time.Millisecond,
		Mouse:         true,
		QuitOnCtrlC:   true,
	}
}

// maxQueuedEvents bounds mouse and focus records kept between frames
const maxQueuedEvents = 32

// Sentinel errors
var (
	ErrNotTerminal = errors.New("stdout is not a terminal")
	ErrTooLarge    = errors.New("requested grid is larger than the terminal")
	ErrBadSize     = errors.New("grid size must not be negative")
	ErrClosed      = errors.New("terminal closed")
)
