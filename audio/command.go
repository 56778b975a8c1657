package audio

// Command is a request consumed by the audio worker
// The variants are the exported types in this file
type Command interface {
	command()
}

// LoadSample decodes a WAV or MP3 file and registers it under its path
type LoadSample struct {
	Path string
}

// LoadSampleFromBuffer registers raw PCM under an arbitrary id
type LoadSampleFromBuffer struct {
	ID       string
	PCM      []int16
	Channels int
}

// PlaySample starts a new playback instance of a registered sample
type PlaySample struct {
	ID string
}

// NoteOn starts a sustained sine note
type NoteOn struct {
	Freq float64
}

// NoteOff releases every active note at the frequency
type NoteOff struct {
	Freq float64
}

// Quit stops the worker after the commands queued before it
type Quit struct{}

func (LoadSample) command()           {}
func (LoadSampleFromBuffer) command() {}
func (PlaySample) command()           {}
func (NoteOn) command()               {}
func (NoteOff) command()              {}
func (Quit) command()                 {}
