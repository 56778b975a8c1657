package audio

import (
	"math"

	"github.com/lixenwraith/conengine/constant"
)

// sineBurst renders a short interleaved stereo sine at gain
// Used to mark note attack and release on the device immediately
func sineBurst(freq float64, frames, rate int, gain float64) []int16 {
	out := make([]int16, frames*constant.AudioChannels)
	inc := 2 * math.Pi * freq / float64(rate)
	for i := 0; i < frames; i++ {
		v := int16(math.Sin(inc*float64(i)) * gain * 32767)
		out[2*i] = v
		out[2*i+1] = v
	}
	return out
}

// renderTone pre-renders a mono chord of equal-gain sines
// A linear ramp over the first and last tenth removes clicks
func renderTone(freqs []float64, ms, rate int, gain float64) []int16 {
	frames := rate * ms / 1000
	if frames <= 0 || len(freqs) == 0 {
		return nil
	}
	ramp := int(float64(frames) * constant.OneShotRampPct)
	out := make([]int16, frames)
	for i := 0; i < frames; i++ {
		env := 1.0
		if ramp > 0 {
			if i < ramp {
				env = float64(i) / float64(ramp)
			} else if i >= frames-ramp {
				env = float64(frames-i) / float64(ramp)
			}
		}
		t := float64(i) / float64(rate)
		var v float64
		for _, f := range freqs {
			v += math.Sin(2 * math.Pi * f * t)
		}
		out[i] = clamp16(int32(v * env * gain * 32767))
	}
	return out
}
