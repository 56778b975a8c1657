package engine

import "errors"

// Config sizes the screen buffer and caps the frame rate
// Buffer size follows the platform grid and is not read from files
type Config struct {
	Width  int `toml:"-"`
	Height int `toml:"-"`

	// FrameRate caps frames per second; 0 runs unthrottled
	FrameRate int `toml:"frame_rate"`
}

// DefaultConfig returns an unthrottled 80x25 screen
func DefaultConfig() *Config {
	return &Config{
		Width:  80,
		Height: 25,
	}
}

// Validate checks dimensions and frame rate
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return ErrBadSize
	}
	if c.FrameRate < 0 {
		return ErrBadFrameRate
	}
	return nil
}

var (
	ErrBadSize      = errors.New("screen dimensions must be positive")
	ErrBadFrameRate = errors.New("frame rate must not be negative")
	ErrNoPlatform   = errors.New("no platform")
	ErrSetup        = errors.New("game setup failed")
	ErrPresent      = errors.New("present failed")
	ErrRunning      = errors.New("engine already running")
)
