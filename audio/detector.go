package audio

import (
	"os"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/lixenwraith/conengine/constant"
)

// pcmFormat is the raw stream every player is configured for
type pcmFormat struct {
	rate, channels, latencyMs string
}

// pipePlayer is a CLI program that reads raw PCM from stdin
type pipePlayer struct {
	typ  BackendType
	name string
	bin  string
	args func(f pcmFormat) []string
}

// pipePlayers in priority order: pacat > pw-cat > aplay > play (sox) > ffplay
var pipePlayers = []pipePlayer{
	// PulseAudio/PipeWire (works on Linux and FreeBSD with pulse installed)
	{BackendPulse, "pacat", "pacat", func(f pcmFormat) []string {
		return []string{"--raw", "--format=s16le", "--rate=" + f.rate, "--channels=" + f.channels,
			"--latency-msec=" + f.latencyMs, "--playback"}
	}},
	{BackendPipeWire, "pw-cat", "pw-cat", func(f pcmFormat) []string {
		return []string{"--playback", "--format=s16", "--rate=" + f.rate, "--channels=" + f.channels,
			"--latency=" + f.latencyMs + "ms", "-"}
	}},
	{BackendALSA, "aplay", "aplay", func(f pcmFormat) []string {
		return []string{"-t", "raw", "-f", "S16_LE", "-r", f.rate, "-c", f.channels, "-q"}
	}},
	{BackendSoX, "sox", "play", func(f pcmFormat) []string {
		return []string{"-t", "raw", "-e", "signed", "-b", "16", "-c", f.channels, "-r", f.rate, "-", "-d", "-q"}
	}},
	// Heavyweight fallback
	{BackendFFplay, "ffplay", "ffplay", func(f pcmFormat) []string {
		return []string{"-nodisp", "-autoexit", "-f", "s16le", "-ac", f.channels, "-ar", f.rate,
			"-probesize", "32", "-analyzeduration", "0", "-i", "pipe:0", "-loglevel", "quiet"}
	}},
}

// lookPath is swapped in tests
var lookPath = exec.LookPath

// DetectBackend returns the first installed player for s16le stereo at rate
// FreeBSD falls back to writing /dev/dsp directly
func DetectBackend(rate int) (*BackendConfig, error) {
	f := pcmFormat{
		rate:      strconv.Itoa(rate),
		channels:  strconv.Itoa(constant.AudioChannels),
		latencyMs: strconv.Itoa(int(constant.AudioDeviceLatency.Milliseconds())),
	}
	for _, p := range pipePlayers {
		path, err := lookPath(p.bin)
		if err != nil {
			continue
		}
		return &BackendConfig{Type: p.typ, Name: p.name, Path: path, Args: p.args(f)}, nil
	}

	if runtime.GOOS == "freebsd" {
		if _, err := os.Stat("/dev/dsp"); err == nil {
			return &BackendConfig{Type: BackendOSS, Name: "oss", Path: "/dev/dsp"}, nil
		}
	}
	return nil, ErrNoAudioBackend
}
