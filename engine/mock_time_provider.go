package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a controllable clock for frame loop tests
// With a non-zero step every Now call advances the clock, giving fixed frame deltas
type MockTimeProvider struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

// NewMockTimeProvider creates a stopped clock at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{current: start}
}

// NewSteppingTimeProvider creates a clock that advances by step after each reading
func NewSteppingTimeProvider(start time.Time, step time.Duration) *MockTimeProvider {
	return &MockTimeProvider{current: start, step: step}
}

// Now returns the mocked time, then applies the step
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.current
	m.current = m.current.Add(m.step)
	return now
}

// SetTime moves the clock to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.current = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.current = m.current.Add(d)
	m.mu.Unlock()
}
