package audio

import "math"

// NoteFrequencies contains precomputed frequencies for MIDI notes 0-127
// A4 (note 69) = 440Hz, equal temperament
var NoteFrequencies [128]float64

func init() {
	for i := range NoteFrequencies {
		NoteFrequencies[i] = 440.0 * math.Exp2((float64(i)-69.0)/12.0)
	}
}

// NoteFreq returns frequency in Hz for MIDI note number
func NoteFreq(midi int) float64 {
	if midi < 0 || midi >= 128 {
		return 0
	}
	return NoteFrequencies[midi]
}

// Named pitches, octaves 1 through 8
const (
	NoteA1  = 55.00
	NoteAs1 = 58.27
	NoteB1  = 61.74
	NoteC2  = 65.41
	NoteCs2 = 69.30
	NoteD2  = 73.42
	NoteDs2 = 77.78
	NoteE2  = 82.41
	NoteF2  = 87.31
	NoteFs2 = 92.50
	NoteG2  = 98.00
	NoteGs2 = 103.83
	NoteA2  = 110.00
	NoteAs2 = 116.54
	NoteB2  = 123.47
	NoteC3  = 130.81
	NoteCs3 = 138.59
	NoteD3  = 146.83
	NoteDs3 = 155.56
	NoteE3  = 164.81
	NoteF3  = 174.61
	NoteFs3 = 185.00
	NoteG3  = 196.00
	NoteGs3 = 207.65
	NoteA3  = 220.00
	NoteAs3 = 233.08
	NoteB3  = 246.94
	NoteC4  = 261.63
	NoteCs4 = 277.18
	NoteD4  = 293.66
	NoteDs4 = 311.13
	NoteE4  = 329.63
	NoteF4  = 349.23
	NoteFs4 = 369.99
	NoteG4  = 392.00
	NoteGs4 = 415.30
	NoteA4  = 440.00
	NoteAs4 = 466.16
	NoteB4  = 493.88
	NoteC5  = 523.25
	NoteCs5 = 554.37
	NoteD5  = 587.33
	NoteDs5 = 622.25
	NoteE5  = 659.25
	NoteF5  = 698.46
	NoteFs5 = 739.99
	NoteG5  = 783.99
	NoteGs5 = 830.61
	NoteA5  = 880.00
	NoteAs5 = 932.33
	NoteB5  = 987.77
	NoteC6  = 1046.50
	NoteCs6 = 1108.73
	NoteD6  = 1174.66
	NoteDs6 = 1244.51
	NoteE6  = 1318.51
	NoteF6  = 1396.91
	NoteFs6 = 1479.98
	NoteG6  = 1567.98
	NoteGs6 = 1661.22
	NoteA6  = 1760.00
	NoteAs6 = 1864.66
	NoteB6  = 1975.53
	NoteC7  = 2093.00
	NoteCs7 = 2217.46
	NoteD7  = 2349.32
	NoteDs7 = 2489.02
	NoteE7  = 2637.02
	NoteF7  = 2793.83
	NoteFs7 = 2959.96
	NoteG7  = 3135.96
	NoteGs7 = 3322.44
	NoteA7  = 3520.00
	NoteAs7 = 3729.31
	NoteB7  = 3951.07
	NoteC8  = 4186.01
	NoteCs8 = 4434.92
	NoteD8  = 4698.63
	NoteDs8 = 4978.03
	NoteE8  = 5274.04
	NoteF8  = 5587.65
	NoteFs8 = 5919.91
	NoteG8  = 6271.93
	NoteGs8 = 6644.88
)
