package audio

import "sync"

// commandQueue is an unbounded multi-producer, single-consumer FIFO
// Push never blocks; the signal channel wakes an idle consumer
type commandQueue struct {
	mu      sync.Mutex
	pending []Command
	signal  chan struct{}
}

func newCommandQueue() *commandQueue {
	return &commandQueue{
		signal: make(chan struct{}, 1),
	}
}

// push appends a command in arrival order
func (q *commandQueue) push(c Command) {
	q.mu.Lock()
	q.pending = append(q.pending, c)
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
}

// drain moves all pending commands into dst and returns it
func (q *commandQueue) drain(dst []Command) []Command {
	q.mu.Lock()
	dst = append(dst, q.pending...)
	clear(q.pending)
	q.pending = q.pending[:0]
	q.mu.Unlock()
	return dst
}

// wake fires after a push; at most one wakeup is buffered
func (q *commandQueue) wake() <-chan struct{} {
	return q.signal
}

// len returns the number of undrained commands
func (q *commandQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
