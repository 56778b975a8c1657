// Package config assembles engine, terminal and audio settings from a TOML
// file and CONENGINE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"

	"github.com/lixenwraith/conengine/audio"
	"github.com/lixenwraith/conengine/engine"
	"github.com/lixenwraith/conengine/terminal"
)

// DefaultPath is read when no file is given; a missing default file is not an error
const DefaultPath = "~/.config/conengine/config.toml"

var (
	ErrUnknownKey = errors.New("unknown config key")
	ErrInvalid    = errors.New("invalid config")
)

// Config is the complete runtime configuration
type Config struct {
	Engine   engine.Config   `toml:"engine"`
	Terminal terminal.Config `toml:"terminal"`
	Audio    audio.Config    `toml:"audio"`
}

// Default returns each section's defaults
func Default() *Config {
	return &Config{
		Engine:   *engine.DefaultConfig(),
		Terminal: *terminal.DefaultConfig(),
		Audio:    *audio.DefaultConfig(),
	}
}

// Load reads path over the defaults, applies environment overrides and validates
// An empty path reads DefaultPath if it exists
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", path, err)
	}

	if err := cfg.decodeFile(expanded); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg.LoadEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}
	return nil
}

// LoadEnv overrides fields from CONENGINE_* environment variables
// Malformed values are ignored
func (c *Config) LoadEnv() {
	if w, ok := envInt("CONENGINE_WIDTH"); ok {
		c.Terminal.Width = w
	}
	if h, ok := envInt("CONENGINE_HEIGHT"); ok {
		c.Terminal.Height = h
	}
	if fps, ok := envInt("CONENGINE_FPS"); ok {
		c.Engine.FrameRate = fps
	}
	c.Audio.LoadEnv()
}

func envInt(name string) (int, bool) {
	s := os.Getenv(name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// Validate checks every section
func (c *Config) Validate() error {
	if c.Terminal.Width < 0 || c.Terminal.Height < 0 {
		return fmt.Errorf("%w: terminal: %w", ErrInvalid, terminal.ErrBadSize)
	}
	if c.Terminal.HoldTimeout <= 0 || c.Terminal.RepeatTimeout <= 0 {
		return fmt.Errorf("%w: terminal: key timeouts must be positive", ErrInvalid)
	}
	if c.Engine.FrameRate < 0 {
		return fmt.Errorf("%w: engine: %w", ErrInvalid, engine.ErrBadFrameRate)
	}
	if err := c.Audio.Validate(); err != nil {
		return fmt.Errorf("%w: audio: %w", ErrInvalid, err)
	}
	return nil
}
