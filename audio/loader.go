package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
)

// resampleQuality is the beep interpolation window for rate conversion
const resampleQuality = 4

// LoadFile decodes a WAV or MP3 file into PCM at the target rate
// Mono sources stay mono; everything else is stored as stereo
func LoadFile(path string, rate int) (Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sample{}, fmt.Errorf("open sample: %w", err)
	}
	defer f.Close()

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stream, format, err = wav.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	default:
		return Sample{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return Sample{}, fmt.Errorf("decode %s: %w", path, err)
	}
	defer stream.Close()

	var src beep.Streamer = stream
	if int(format.SampleRate) != rate {
		src = beep.Resample(resampleQuality, format.SampleRate, beep.SampleRate(rate), stream)
	}

	channels := 2
	if format.NumChannels == 1 {
		channels = 1
	}
	return drainStreamer(src, channels)
}

// drainStreamer reads a beep streamer to exhaustion as int16 PCM
func drainStreamer(s beep.Streamer, channels int) (Sample, error) {
	buf := make([][2]float64, 1024)
	data := make([]int16, 0, len(buf)*channels)
	for {
		n, ok := s.Stream(buf)
		for _, fr := range buf[:n] {
			data = append(data, floatTo16(fr[0]))
			if channels == 2 {
				data = append(data, floatTo16(fr[1]))
			}
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return Sample{}, fmt.Errorf("stream sample: %w", err)
	}
	return Sample{Channels: channels, Data: data}, nil
}

func floatTo16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * 32767)
}
