package audio

import (
	"strings"

	"github.com/lixenwraith/conengine/constant"
)

// sampleLibrary maps sample ids to decoded PCM
// Owned by the worker goroutine; no locking
type sampleLibrary struct {
	store map[string]Sample
}

func newSampleLibrary() *sampleLibrary {
	return &sampleLibrary{store: make(map[string]Sample)}
}

// put registers or replaces a sample
func (l *sampleLibrary) put(id string, s Sample) {
	l.store[id] = s
}

// instance returns a private copy of the sample for playback
// Temporary one-shot ids are removed once instantiated
func (l *sampleLibrary) instance(id string) (Sample, bool) {
	s, ok := l.store[id]
	if !ok {
		return Sample{}, false
	}
	if isTempID(id) {
		delete(l.store, id)
		return s, true
	}
	data := make([]int16, len(s.Data))
	copy(data, s.Data)
	return Sample{Channels: s.Channels, Data: data}, true
}

// has reports whether id is registered
func (l *sampleLibrary) has(id string) bool {
	_, ok := l.store[id]
	return ok
}

func (l *sampleLibrary) len() int {
	return len(l.store)
}

func isTempID(id string) bool {
	return strings.HasPrefix(id, constant.TempSamplePrefix)
}
