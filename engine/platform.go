package engine

import (
	"github.com/lixenwraith/conengine/input"
	"github.com/lixenwraith/conengine/render"
)

// Platform is the console the engine runs against
type Platform interface {
	input.KeySource

	// DrainEvents appends queued mouse and focus records to dst
	DrainEvents(dst []input.Event) []input.Event

	// Present displays the buffer
	Present(buf *render.Buffer) error

	// Closed is closed when the user or the console ends the session
	Closed() <-chan struct{}
}
