package audio

import (
	"math"

	"github.com/lixenwraith/conengine/constant"
)

// activeSound tracks a playing sample instance
type activeSound struct {
	sample Sample
	pos    int // frame cursor
}

// activeNote is a sustained sine voice with a linear amplitude ramp
type activeNote struct {
	freq   float64
	phase  float64
	amp    float64
	target float64
	step   float64
	active bool
}

// Mixer renders sounds and notes into interleaved stereo int16 chunks
// Accessed only by the worker goroutine
type Mixer struct {
	rate   int
	sounds []activeSound
	notes  []activeNote
	acc    []int32
}

// NewMixer creates a mixer for the given sample rate
func NewMixer(rate int) *Mixer {
	if rate <= 0 {
		rate = constant.AudioSampleRate
	}
	return &Mixer{
		rate:   rate,
		sounds: make([]activeSound, 0, 8),
		notes:  make([]activeNote, 0, 8),
	}
}

// AddSound starts playback of a private sample copy
func (m *Mixer) AddSound(s Sample) {
	if s.Frames() == 0 {
		return
	}
	m.sounds = append(m.sounds, activeSound{sample: s})
}

// NoteOn registers a note ramping from silence to full amplitude
func (m *Mixer) NoteOn(freq float64) {
	m.notes = append(m.notes, activeNote{
		freq:   freq,
		target: 1,
		step:   1 / (float64(m.rate) * constant.NoteAttack.Seconds()),
		active: true,
	})
}

// NoteOff starts the release ramp of every active note at freq
// Returns the number of notes matched
func (m *Mixer) NoteOff(freq float64) int {
	matched := 0
	for i := range m.notes {
		n := &m.notes[i]
		if n.active && math.Abs(n.freq-freq) < constant.NoteFrequencyTolerance {
			n.target = 0
			n.step = -1 / (float64(m.rate) * constant.NoteRelease.Seconds())
			matched++
		}
	}
	return matched
}

// Render mixes one chunk into out (len = 2*frames) and drops finished voices
func (m *Mixer) Render(out []int16) {
	frames := len(out) / constant.AudioChannels
	if cap(m.acc) < len(out) {
		m.acc = make([]int32, len(out))
	}
	acc := m.acc[:len(out)]
	clear(acc)

	m.mixSounds(acc, frames)
	m.mixNotes(acc, frames)

	for i, v := range acc {
		out[i] = clamp16(v)
	}

	m.sweep()
}

// mixSounds adds sample data; mono is duplicated to both channels
func (m *Mixer) mixSounds(acc []int32, frames int) {
	for i := range m.sounds {
		s := &m.sounds[i]
		total := s.sample.Frames()
		for f := 0; f < frames && s.pos < total; f++ {
			if s.sample.Channels == 1 {
				v := int32(s.sample.Data[s.pos])
				acc[2*f] += v
				acc[2*f+1] += v
			} else {
				acc[2*f] += int32(s.sample.Data[2*s.pos])
				acc[2*f+1] += int32(s.sample.Data[2*s.pos+1])
			}
			s.pos++
		}
	}
}

// mixNotes adds every active note with gain split across the note count
func (m *Mixer) mixNotes(acc []int32, frames int) {
	if len(m.notes) == 0 {
		return
	}
	gain := constant.NoteGain / math.Max(1, float64(len(m.notes)))
	phaseStep := 2 * math.Pi / float64(m.rate)

	for i := range m.notes {
		n := &m.notes[i]
		inc := phaseStep * n.freq
		for f := 0; f < frames && n.active; f++ {
			n.amp += n.step
			if (n.step > 0 && n.amp >= n.target) || (n.step < 0 && n.amp <= n.target) {
				n.amp = n.target
				n.step = 0
			}
			n.amp = math.Min(1, math.Max(0, n.amp))
			if n.target == 0 && n.amp == 0 {
				n.active = false
				break
			}

			v := int32(math.Sin(n.phase) * n.amp * gain * 32767)
			acc[2*f] += v
			acc[2*f+1] += v

			n.phase += inc
			if n.phase >= 2*math.Pi {
				n.phase -= 2 * math.Pi
			}
		}
	}
}

// sweep drops exhausted sounds and released notes in place
func (m *Mixer) sweep() {
	sounds := m.sounds[:0]
	for _, s := range m.sounds {
		if s.pos < s.sample.Frames() {
			sounds = append(sounds, s)
		}
	}
	clear(m.sounds[len(sounds):])
	m.sounds = sounds

	notes := m.notes[:0]
	for _, n := range m.notes {
		if n.active {
			notes = append(notes, n)
		}
	}
	m.notes = notes
}

// ActiveNotes returns the number of notes still sounding
func (m *Mixer) ActiveNotes() int {
	return len(m.notes)
}

// ActiveSounds returns the number of samples still playing
func (m *Mixer) ActiveSounds() int {
	return len(m.sounds)
}

func clamp16(v int32) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
