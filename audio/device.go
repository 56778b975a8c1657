package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/lixenwraith/conengine/constant"
)

// Device consumes interleaved stereo int16 frames
// Open is called on the worker goroutine before the first Write; Close after the last
type Device interface {
	Open(rate int) error
	Write(frames []int16) error
	Close() error
}

// nullDevice discards all output
type nullDevice struct{}

func (nullDevice) Open(int) error      { return nil }
func (nullDevice) Write([]int16) error { return nil }
func (nullDevice) Close() error        { return nil }

// NullDevice returns a device that discards output
func NullDevice() Device { return nullDevice{} }

// fallbackDevice opens the first candidate that succeeds
type fallbackDevice struct {
	candidates []Device
	active     Device
}

func (d *fallbackDevice) Open(rate int) error {
	var errs []error
	for _, c := range d.candidates {
		if err := c.Open(rate); err != nil {
			log.Printf("audio: device %T unavailable: %v", c, err)
			errs = append(errs, err)
			continue
		}
		d.active = c
		return nil
	}
	return fmt.Errorf("%w: %v", ErrNoAudioBackend, errs)
}

func (d *fallbackDevice) Write(frames []int16) error {
	if d.active == nil {
		return ErrDeviceClosed
	}
	return d.active.Write(frames)
}

func (d *fallbackDevice) Close() error {
	if d.active == nil {
		return nil
	}
	err := d.active.Close()
	d.active = nil
	return err
}

// NewDevice resolves the configured backend into a device
func NewDevice(cfg *Config) (Device, error) {
	if !cfg.Enabled {
		return NullDevice(), nil
	}
	switch cfg.Backend {
	case BackendNameAuto, "":
		return &fallbackDevice{candidates: []Device{
			newSpeakerDevice(),
			newPipeDevice(),
			NullDevice(),
		}}, nil
	case BackendNameSpeaker:
		return newSpeakerDevice(), nil
	case BackendNameOto:
		return newOtoDevice(), nil
	case BackendNamePipe:
		return newPipeDevice(), nil
	case BackendNameWAV:
		if cfg.WAVPath == "" {
			return nil, ErrNoWAVPath
		}
		return newWAVDevice(cfg.WAVPath), nil
	case BackendNameNone:
		return NullDevice(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}

// chunkStream hands rendered chunks from the worker to a pulling device
// A fixed pool of buffers bounds latency; Write blocks when all are in flight
type chunkStream struct {
	free  chan []int16
	ready chan []int16
	done  chan struct{}
	once  sync.Once

	// Consumer side only
	cur []int16
	pos int
}

func newChunkStream(chunkLen int) *chunkStream {
	cs := &chunkStream{
		free:  make(chan []int16, constant.AudioDevicePoolSize),
		ready: make(chan []int16, constant.AudioDevicePoolSize),
		done:  make(chan struct{}),
	}
	for i := 0; i < constant.AudioDevicePoolSize; i++ {
		cs.free <- make([]int16, 0, chunkLen)
	}
	return cs
}

// push copies frames into a pooled buffer and queues it for the consumer
func (cs *chunkStream) push(frames []int16) error {
	var buf []int16
	select {
	case buf = <-cs.free:
	case <-cs.done:
		return ErrDeviceClosed
	}
	buf = append(buf[:0], frames...)
	select {
	case cs.ready <- buf:
		return nil
	case <-cs.done:
		return ErrDeviceClosed
	}
}

// next returns the next interleaved sample, or silence on underrun
func (cs *chunkStream) next() int16 {
	if cs.pos >= len(cs.cur) {
		if cs.cur != nil {
			cs.release(cs.cur)
			cs.cur = nil
		}
		select {
		case buf := <-cs.ready:
			cs.cur = buf
			cs.pos = 0
		default:
			return 0
		}
		if len(cs.cur) == 0 {
			return 0
		}
	}
	v := cs.cur[cs.pos]
	cs.pos++
	return v
}

// release returns a consumed buffer to the pool
func (cs *chunkStream) release(buf []int16) {
	select {
	case cs.free <- buf[:0]:
	default:
	}
}

// close unblocks a waiting producer
func (cs *chunkStream) close() {
	cs.once.Do(func() { close(cs.done) })
}
