package audio

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// memDevice records writes in memory
type memDevice struct {
	mu      sync.Mutex
	openErr error
	opened  bool
	closed  bool
	writes  int
	samples int
	peak    int16
}

func (d *memDevice) Open(int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.openErr != nil {
		return d.openErr
	}
	d.opened = true
	return nil
}

func (d *memDevice) Write(frames []int16) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.writes++
	d.samples += len(frames)
	for _, v := range frames {
		d.peak = max(d.peak, v)
	}
	return nil
}

func (d *memDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

func (d *memDevice) maxSample() int16 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.peak
}

func (d *memDevice) state() (opened, closed bool, writes int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opened, d.closed, d.writes
}

func newTestEngine(t *testing.T, dev Device) *AudioEngine {
	t.Helper()
	ae, err := NewAudioEngine(DefaultConfig(), dev)
	if err != nil {
		t.Fatalf("NewAudioEngine failed: %v", err)
	}
	if err := ae.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	t.Cleanup(ae.Close)
	return ae
}

// waitFor polls cond until it holds or the deadline passes
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Timed out waiting for %s", what)
}

// TestEngineNoteLifecycle verifies a note on/off pair leaves nothing sounding
func TestEngineNoteLifecycle(t *testing.T) {
	dev := &memDevice{}
	ae := newTestEngine(t, dev)

	ae.NoteOn(440)
	ae.NoteOff(440)

	waitFor(t, "note release", func() bool {
		s := ae.Stats()
		return s.Commands >= 2 && s.Chunks > 0 && s.ActiveNotes == 0
	})
	if ae.Failed() {
		t.Error("Expected engine healthy")
	}
}

// TestEngineNoteOffWithoutMatch verifies an unmatched release neither panics nor stalls
func TestEngineNoteOffWithoutMatch(t *testing.T) {
	ae := newTestEngine(t, &memDevice{})
	ae.NoteOff(1000)
	waitFor(t, "command drained", func() bool { return ae.Stats().Commands >= 1 })

	done := make(chan struct{})
	go func() {
		ae.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Close deadlocked")
	}
}

// TestEnginePlayNoteOneShot verifies one-shots play and leave no library entry
func TestEnginePlayNoteOneShot(t *testing.T) {
	ae := newTestEngine(t, &memDevice{})
	ae.PlayNote(NoteA4, 20)
	ae.PlayNotes([]float64{NoteC4, NoteE4, NoteG4}, 20)

	waitFor(t, "one-shots finished", func() bool {
		s := ae.Stats()
		return s.Commands >= 4 && s.ActiveSounds == 0 && s.Chunks > 4
	})
	ae.Close()
	if n := ae.library.len(); n != 0 {
		t.Errorf("Expected temporary samples removed, %d remain", n)
	}
}

// TestEngineBufferCopiedOnLoad verifies later changes to a loaded slice are not heard
func TestEngineBufferCopiedOnLoad(t *testing.T) {
	dev := &memDevice{}
	ae := newTestEngine(t, dev)

	pcm := make([]int16, 256)
	for i := range pcm {
		pcm[i] = 1000
	}
	ae.LoadSampleFromBuffer("tone", pcm, 1)
	waitFor(t, "load drained", func() bool { return ae.Stats().Commands >= 1 })
	clear(pcm)

	ae.PlaySample("tone")
	waitFor(t, "play drained", func() bool { return ae.Stats().Commands >= 2 })
	chunks := ae.Stats().Chunks
	waitFor(t, "sample rendered", func() bool { return ae.Stats().Chunks >= chunks+2 })

	if got := dev.maxSample(); got != 1000 {
		t.Errorf("Expected peak 1000 from the loaded data, got %d", got)
	}
}

// TestEngineUnknownSample verifies bad ids are ignored
func TestEngineUnknownSample(t *testing.T) {
	ae := newTestEngine(t, &memDevice{})
	ae.PlaySample("missing.wav")
	ae.LoadSample("missing.wav")
	ae.LoadSampleFromBuffer("bad", []int16{1, 2, 3}, 3)
	waitFor(t, "commands drained", func() bool { return ae.Stats().Commands >= 3 })
	if ae.Failed() {
		t.Error("Expected bad commands to be non-fatal")
	}
}

// TestEngineDeviceFailure verifies open failure stops the worker but not producers
func TestEngineDeviceFailure(t *testing.T) {
	dev := &memDevice{openErr: errors.New("no sound card")}
	ae := newTestEngine(t, dev)

	waitFor(t, "worker exit", func() bool { return ae.Failed() && !ae.IsRunning() })

	ae.NoteOn(440)
	ae.PlaySample("x")
	if ae.Pending() != 2 {
		t.Errorf("Expected 2 pending commands, got %d", ae.Pending())
	}
	if ae.Stats().Commands != 0 {
		t.Errorf("Expected no commands processed")
	}
}

// TestEngineClosesDevice verifies the device is released when the worker exits
func TestEngineClosesDevice(t *testing.T) {
	dev := &memDevice{}
	ae := newTestEngine(t, dev)
	waitFor(t, "first chunk", func() bool { return ae.Stats().Chunks > 0 })
	ae.Close()

	opened, closed, writes := dev.state()
	if !opened || !closed || writes == 0 {
		t.Errorf("Expected opened, written and closed device, got %v %v %d", opened, closed, writes)
	}
	if ae.IsRunning() {
		t.Error("Expected worker stopped")
	}
}

// TestEngineDoubleStart verifies Start is single-use
func TestEngineDoubleStart(t *testing.T) {
	ae := newTestEngine(t, &memDevice{})
	if err := ae.Start(); err == nil {
		t.Error("Expected error on second Start")
	}
}

// TestNewAudioEngineValidates verifies bad configs fail before start
func TestNewAudioEngineValidates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend = "theremin"
	if _, err := NewAudioEngine(cfg, nil); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Expected ErrUnknownBackend, got %v", err)
	}
	cfg.Backend = BackendNameWAV
	if _, err := NewAudioEngine(cfg, nil); !errors.Is(err, ErrNoWAVPath) {
		t.Errorf("Expected ErrNoWAVPath, got %v", err)
	}
}
