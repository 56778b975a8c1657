package engine

import (
	"sync"
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if now := mock.Now(); !now.Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, now)
	}
	if now := mock.Now(); !now.Equal(start) {
		t.Errorf("Expected stopped clock to stay at %v, got %v", start, now)
	}

	later := start.Add(24 * time.Hour)
	mock.SetTime(later)
	mock.Advance(30 * time.Minute)
	if now := mock.Now(); !now.Equal(later.Add(30 * time.Minute)) {
		t.Errorf("Expected %v after SetTime and Advance, got %v", later.Add(30*time.Minute), now)
	}
}

func TestSteppingTimeProvider(t *testing.T) {
	start := time.Unix(100, 0)
	mock := NewSteppingTimeProvider(start, 10*time.Millisecond)

	for i := 0; i < 3; i++ {
		want := start.Add(time.Duration(i) * 10 * time.Millisecond)
		if now := mock.Now(); !now.Equal(want) {
			t.Errorf("Expected reading %d to be %v, got %v", i, want, now)
		}
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
	}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if got := mock.Now(); !got.Equal(time.Unix(0, 0).Add(250 * time.Millisecond)) {
		t.Errorf("Expected 250ms advanced, got %v", got.Sub(time.Unix(0, 0)))
	}
}
