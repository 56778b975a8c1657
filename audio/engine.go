// Package audio runs sample playback and note synthesis on a dedicated
// worker goroutine that callers reach only through a command queue.
package audio

import (
	"fmt"
	"log"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/conengine/constant"
	"github.com/lixenwraith/conengine/core"
)

// AudioEngine owns the worker goroutine, its device and sample library
// All public methods are asynchronous and safe for concurrent use
type AudioEngine struct {
	config *Config
	device Device
	queue  *commandQueue

	// Accessed only by the worker goroutine
	library *sampleLibrary
	mixer   *Mixer

	tempSeq  atomic.Uint64
	chunks   atomic.Uint64
	commands atomic.Uint64
	notes    atomic.Int64
	sounds   atomic.Int64

	running atomic.Bool
	failed  atomic.Bool
	started atomic.Bool

	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewAudioEngine creates an engine writing to dev
// A nil dev resolves the device from cfg
func NewAudioEngine(cfg *Config, dev Device) (*AudioEngine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if dev == nil {
		d, err := NewDevice(cfg)
		if err != nil {
			return nil, err
		}
		dev = d
	}
	return &AudioEngine{
		config:  cfg,
		device:  dev,
		queue:   newCommandQueue(),
		library: newSampleLibrary(),
		mixer:   NewMixer(cfg.SampleRate),
	}, nil
}

// Start launches the worker goroutine
func (ae *AudioEngine) Start() error {
	if !ae.started.CompareAndSwap(false, true) {
		return fmt.Errorf("audio engine already started")
	}
	ae.running.Store(true)
	ae.wg.Add(1)
	core.Go(ae.run)
	return nil
}

// Close sends Quit and waits for the worker to release the device
func (ae *AudioEngine) Close() {
	ae.closeOnce.Do(func() {
		ae.Send(Quit{})
		ae.wg.Wait()
	})
}

// Send enqueues a command; never blocks
func (ae *AudioEngine) Send(c Command) {
	ae.queue.push(c)
}

// LoadSample decodes a file on the worker and registers it under path
func (ae *AudioEngine) LoadSample(path string) {
	ae.Send(LoadSample{Path: path})
}

// LoadSampleFromBuffer registers a copy of pcm under id
func (ae *AudioEngine) LoadSampleFromBuffer(id string, pcm []int16, channels int) {
	ae.Send(LoadSampleFromBuffer{ID: id, PCM: slices.Clone(pcm), Channels: channels})
}

// PlaySample starts a playback instance of a loaded sample
func (ae *AudioEngine) PlaySample(id string) {
	ae.Send(PlaySample{ID: id})
}

// NoteOn starts a sustained note at freq Hz
func (ae *AudioEngine) NoteOn(freq float64) {
	ae.Send(NoteOn{Freq: freq})
}

// NoteOff releases the notes at freq Hz
func (ae *AudioEngine) NoteOff(freq float64) {
	ae.Send(NoteOff{Freq: freq})
}

// PlayNote renders a one-shot tone on the caller and queues it for playback
func (ae *AudioEngine) PlayNote(freq float64, ms int) {
	ae.playTone([]float64{freq}, ms, constant.OneShotGain)
}

// PlayNotes renders a one-shot chord with gain split across its notes
func (ae *AudioEngine) PlayNotes(freqs []float64, ms int) {
	if len(freqs) == 0 {
		return
	}
	ae.playTone(freqs, ms, constant.ChordGain/float64(len(freqs)))
}

func (ae *AudioEngine) playTone(freqs []float64, ms int, gain float64) {
	pcm := renderTone(freqs, ms, ae.config.SampleRate, gain)
	if len(pcm) == 0 {
		return
	}
	id := fmt.Sprintf("%s%d", constant.TempSamplePrefix, ae.tempSeq.Add(1))
	ae.Send(LoadSampleFromBuffer{ID: id, PCM: pcm, Channels: 1})
	ae.Send(PlaySample{ID: id})
}

// IsRunning returns true while the worker loop is active
func (ae *AudioEngine) IsRunning() bool {
	return ae.running.Load()
}

// Failed returns true if the device could not be opened or written
func (ae *AudioEngine) Failed() bool {
	return ae.failed.Load()
}

// Pending returns the number of commands not yet drained
func (ae *AudioEngine) Pending() int {
	return ae.queue.len()
}

// Stats returns worker counters
func (ae *AudioEngine) Stats() Stats {
	return Stats{
		Chunks:       ae.chunks.Load(),
		Commands:     ae.commands.Load(),
		ActiveNotes:  int(ae.notes.Load()),
		ActiveSounds: int(ae.sounds.Load()),
	}
}

// run is the worker loop: drain commands, render a chunk, write, idle
func (ae *AudioEngine) run() {
	defer ae.wg.Done()
	defer ae.running.Store(false)

	rate := ae.config.SampleRate
	if err := ae.device.Open(rate); err != nil {
		log.Printf("audio: device open failed, audio disabled: %v", err)
		ae.failed.Store(true)
		return
	}
	defer func() {
		if err := ae.device.Close(); err != nil {
			log.Printf("audio: device close: %v", err)
		}
	}()

	chunk := make([]int16, constant.AudioChunkFrames*constant.AudioChannels)
	var cmds []Command

	idle := time.NewTimer(constant.AudioIdleInterval)
	defer idle.Stop()

	for {
		cmds = ae.queue.drain(cmds[:0])
		for _, c := range cmds {
			if _, ok := c.(Quit); ok {
				ae.commands.Add(1)
				return
			}
			if err := ae.handle(c); err != nil {
				log.Printf("audio: write failed, stopping worker: %v", err)
				ae.failed.Store(true)
				return
			}
			ae.commands.Add(1)
		}
		clear(cmds)

		ae.mixer.Render(chunk)
		if err := ae.device.Write(chunk); err != nil {
			log.Printf("audio: write failed, stopping worker: %v", err)
			ae.failed.Store(true)
			return
		}
		ae.chunks.Add(1)
		ae.notes.Store(int64(ae.mixer.ActiveNotes()))
		ae.sounds.Store(int64(ae.mixer.ActiveSounds()))

		// Idle until the interval elapses or a command arrives
		idle.Reset(constant.AudioIdleInterval)
		select {
		case <-idle.C:
		case <-ae.queue.wake():
		}
	}
}

// handle applies one command; only device writes are fatal
func (ae *AudioEngine) handle(c Command) error {
	rate := ae.config.SampleRate
	switch cmd := c.(type) {
	case NoteOn:
		if err := ae.device.Write(sineBurst(cmd.Freq, constant.NoteBurstFrames, rate, constant.AttackBurstGain)); err != nil {
			return err
		}
		ae.mixer.NoteOn(cmd.Freq)

	case NoteOff:
		if err := ae.device.Write(sineBurst(cmd.Freq, constant.NoteBurstFrames, rate, constant.ReleaseBurstGain)); err != nil {
			return err
		}
		ae.mixer.NoteOff(cmd.Freq)

	case LoadSample:
		s, err := LoadFile(cmd.Path, rate)
		if err != nil {
			log.Printf("audio: load %s: %v", cmd.Path, err)
			return nil
		}
		ae.library.put(cmd.Path, s)

	case LoadSampleFromBuffer:
		if cmd.Channels != 1 && cmd.Channels != 2 {
			log.Printf("audio: sample %s: %v", cmd.ID, ErrBadChannels)
			return nil
		}
		ae.library.put(cmd.ID, Sample{Channels: cmd.Channels, Data: cmd.PCM})

	case PlaySample:
		s, ok := ae.library.instance(cmd.ID)
		if !ok {
			log.Printf("audio: unknown sample %q", cmd.ID)
			return nil
		}
		ae.mixer.AddSound(s)
	}
	return nil
}
