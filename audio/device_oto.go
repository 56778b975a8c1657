package audio

import (
	"encoding/binary"

	"github.com/ebitengine/oto/v3"

	"github.com/lixenwraith/conengine/constant"
)

// otoDevice plays through an oto context; the player pulls via Read
type otoDevice struct {
	player *oto.Player
	stream *chunkStream
}

func newOtoDevice() *otoDevice {
	return &otoDevice{}
}

func (d *otoDevice) Open(rate int) error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: constant.AudioChannels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   constant.AudioDeviceLatency,
	})
	if err != nil {
		return err
	}
	<-ready

	d.stream = newChunkStream(constant.AudioChunkFrames * constant.AudioChannels)
	d.player = ctx.NewPlayer(otoReader{d.stream})
	d.player.Play()
	return nil
}

func (d *otoDevice) Write(frames []int16) error {
	if d.stream == nil {
		return ErrDeviceClosed
	}
	return d.stream.push(frames)
}

func (d *otoDevice) Close() error {
	if d.stream == nil {
		return nil
	}
	d.stream.close()
	err := d.player.Close()
	d.stream = nil
	d.player = nil
	return err
}

// otoReader adapts the chunk stream to little-endian bytes
type otoReader struct {
	stream *chunkStream
}

func (r otoReader) Read(p []byte) (int, error) {
	n := len(p) &^ 1
	for i := 0; i < n; i += 2 {
		binary.LittleEndian.PutUint16(p[i:], uint16(r.stream.next()))
	}
	return n, nil
}
