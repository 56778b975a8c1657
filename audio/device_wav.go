package audio

import (
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/lixenwraith/conengine/constant"
)

// wavPCMFormat is the WAVE format tag for integer PCM
const wavPCMFormat = 1

// wavDevice records the mixed output to a WAV file
type wavDevice struct {
	path string
	file *os.File
	enc  *wav.Encoder
	buf  *goaudio.IntBuffer
}

func newWAVDevice(path string) *wavDevice {
	return &wavDevice{path: path}
}

func (d *wavDevice) Open(rate int) error {
	f, err := os.Create(d.path)
	if err != nil {
		return fmt.Errorf("create recording: %w", err)
	}
	d.file = f
	d.enc = wav.NewEncoder(f, rate, constant.AudioBitDepth, constant.AudioChannels, wavPCMFormat)
	d.buf = &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: constant.AudioChannels, SampleRate: rate},
		SourceBitDepth: constant.AudioBitDepth,
	}
	return nil
}

func (d *wavDevice) Write(frames []int16) error {
	if d.enc == nil {
		return ErrDeviceClosed
	}
	data := d.buf.Data[:0]
	for _, v := range frames {
		data = append(data, int(v))
	}
	d.buf.Data = data
	return d.enc.Write(d.buf)
}

func (d *wavDevice) Close() error {
	if d.enc == nil {
		return nil
	}
	err := d.enc.Close()
	if cerr := d.file.Close(); err == nil {
		err = cerr
	}
	d.enc = nil
	d.file = nil
	return err
}
