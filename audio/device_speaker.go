package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/conengine/constant"
)

// speakerDevice plays through beep's speaker, pulling from a chunk stream
type speakerDevice struct {
	stream *chunkStream
}

func newSpeakerDevice() *speakerDevice {
	return &speakerDevice{}
}

func (d *speakerDevice) Open(rate int) error {
	sr := beep.SampleRate(rate)
	if err := speaker.Init(sr, sr.N(constant.AudioDeviceLatency)); err != nil {
		return err
	}
	d.stream = newChunkStream(constant.AudioChunkFrames * constant.AudioChannels)
	speaker.Play(beep.StreamerFunc(d.fill))
	return nil
}

// fill is called from the speaker goroutine
func (d *speakerDevice) fill(samples [][2]float64) (int, bool) {
	for i := range samples {
		l := d.stream.next()
		r := d.stream.next()
		samples[i][0] = float64(l) / 32768
		samples[i][1] = float64(r) / 32768
	}
	return len(samples), true
}

func (d *speakerDevice) Write(frames []int16) error {
	if d.stream == nil {
		return ErrDeviceClosed
	}
	return d.stream.push(frames)
}

func (d *speakerDevice) Close() error {
	if d.stream == nil {
		return nil
	}
	d.stream.close()
	speaker.Clear()
	speaker.Close()
	d.stream = nil
	return nil
}
