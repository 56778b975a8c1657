package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// pipeDevice streams raw s16le frames to an external player process
type pipeDevice struct {
	backend *BackendConfig
	cmd     *exec.Cmd
	out     io.WriteCloser
	buf     []byte
}

func newPipeDevice() *pipeDevice {
	return &pipeDevice{}
}

func (d *pipeDevice) Open(rate int) error {
	backend, err := DetectBackend(rate)
	if err != nil {
		return err
	}
	d.backend = backend

	if backend.Type == BackendOSS {
		// Direct file write for OSS
		f, err := os.OpenFile(backend.Path, os.O_WRONLY, 0)
		if err != nil {
			return fmt.Errorf("open %s: %w", backend.Path, err)
		}
		d.out = f
		return nil
	}

	cmd := exec.Command(backend.Path, backend.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("%s stdin: %w", backend.Name, err)
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		return fmt.Errorf("start %s: %w", backend.Name, err)
	}
	d.cmd = cmd
	d.out = stdin
	return nil
}

func (d *pipeDevice) Write(frames []int16) error {
	if d.out == nil {
		return ErrDeviceClosed
	}
	d.buf = encodePCM(d.buf, frames)
	if _, err := d.out.Write(d.buf); err != nil {
		return fmt.Errorf("%w: %v", ErrPipeClosed, err)
	}
	return nil
}

func (d *pipeDevice) Close() error {
	if d.out == nil {
		return nil
	}
	err := d.out.Close()
	d.out = nil
	if d.cmd != nil && d.cmd.Process != nil {
		d.cmd.Process.Kill()
		d.cmd.Wait()
		d.cmd = nil
	}
	return err
}

// encodePCM converts int16 samples to little-endian bytes, reusing dst
func encodePCM(dst []byte, frames []int16) []byte {
	n := len(frames) * 2
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, v := range frames {
		binary.LittleEndian.PutUint16(dst[2*i:], uint16(v))
	}
	return dst
}
