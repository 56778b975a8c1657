package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate    = 44100
	AudioChannels      = 2
	AudioBitDepth      = 16
	AudioBytesPerFrame = AudioChannels * (AudioBitDepth / 8) // 4 bytes
)

// Audio Worker Timing
const (
	// AudioChunkFrames is stereo frames rendered per worker iteration
	AudioChunkFrames = 512

	// AudioIdleInterval is the pause between worker iterations
	AudioIdleInterval = 10 * time.Millisecond

	// AudioDevicePoolSize bounds chunks in flight between worker and device
	AudioDevicePoolSize = 4

	// AudioDeviceLatency is the buffer size requested from callback devices
	AudioDeviceLatency = 50 * time.Millisecond
)

// Live Note Envelope
const (
	NoteAttack  = 50 * time.Millisecond
	NoteRelease = 50 * time.Millisecond

	// NoteGain is split across simultaneously active notes
	NoteGain = 0.3

	// NoteFrequencyTolerance matches NoteOff to active notes (Hz)
	NoteFrequencyTolerance = 1e-3
)

// Note On/Off Bursts
const (
	NoteBurstFrames  = 100
	AttackBurstGain  = 0.1
	ReleaseBurstGain = 0.05
)

// Pre-rendered One-Shots
const (
	OneShotGain      = 0.95
	ChordGain        = 0.9
	OneShotRampPct   = 0.10
	TempSamplePrefix = "__temp_notes_"
)
