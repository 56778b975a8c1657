package audio

import (
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/conengine/constant"
)

// Backend names accepted in configuration
const (
	BackendNameAuto    = "auto"
	BackendNameSpeaker = "speaker"
	BackendNameOto     = "oto"
	BackendNamePipe    = "pipe"
	BackendNameWAV     = "wav"
	BackendNameNone    = "none"
)

// Config selects the output device and rendering rate
type Config struct {
	Enabled    bool   `toml:"enabled"`
	Backend    string `toml:"backend"`
	SampleRate int    `toml:"sample_rate"`
	WAVPath    string `toml:"wav_path"`
}

// DefaultConfig returns audio enabled on the first working backend
func DefaultConfig() *Config {
	return &Config{
		Enabled:    true,
		Backend:    BackendNameAuto,
		SampleRate: constant.AudioSampleRate,
	}
}

// LoadEnv overrides fields from CONENGINE_* environment variables
// Malformed values are ignored
func (c *Config) LoadEnv() {
	if enabled := os.Getenv("CONENGINE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Enabled = val
		}
	}

	if backend := os.Getenv("CONENGINE_AUDIO_BACKEND"); backend != "" {
		c.Backend = strings.ToLower(strings.TrimSpace(backend))
	}

	if sampleRate := os.Getenv("CONENGINE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.SampleRate = val
		}
	}

	if path := os.Getenv("CONENGINE_WAV_PATH"); path != "" {
		c.WAVPath = path
		if os.Getenv("CONENGINE_AUDIO_BACKEND") == "" {
			c.Backend = BackendNameWAV
		}
	}
}

// Validate reports configuration errors before the worker starts
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendNameAuto, BackendNameSpeaker, BackendNameOto, BackendNamePipe, BackendNameNone, "":
	case BackendNameWAV:
		if c.WAVPath == "" {
			return ErrNoWAVPath
		}
	default:
		return ErrUnknownBackend
	}
	if c.SampleRate <= 0 {
		return ErrBadSampleRate
	}
	return nil
}
