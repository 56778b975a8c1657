package audio

import (
	"errors"
)

// BackendType identifies the audio backend
type BackendType int

const (
	BackendPulse BackendType = iota
	BackendPipeWire
	BackendALSA
	BackendSoX
	BackendFFplay
	BackendOSS
)

// BackendConfig describes a CLI audio backend
type BackendConfig struct {
	Type BackendType
	Name string
	Path string
	Args []string
}

// Sample is decoded or synthesized 16-bit PCM, interleaved when stereo
type Sample struct {
	Channels int
	Data     []int16
}

// Frames returns the number of sample frames
func (s Sample) Frames() int {
	if s.Channels <= 0 {
		return 0
	}
	return len(s.Data) / s.Channels
}

// Stats is a snapshot of worker counters
type Stats struct {
	Chunks       uint64
	Commands     uint64
	ActiveNotes  int
	ActiveSounds int
}

// Sentinel errors
var (
	ErrNoAudioBackend    = errors.New("no compatible audio backend found")
	ErrPipeClosed        = errors.New("audio pipe closed")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrBadChannels       = errors.New("sample must be mono or stereo")
	ErrDeviceClosed      = errors.New("audio device closed")
	ErrNoWAVPath         = errors.New("wav backend requires a path")
	ErrUnknownBackend    = errors.New("unknown audio backend")
	ErrBadSampleRate     = errors.New("sample rate must be positive")
)
