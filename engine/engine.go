// Package engine drives the frame loop: it samples input, calls the game,
// and presents the screen buffer, all on the caller's goroutine.
package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/conengine/audio"
	"github.com/lixenwraith/conengine/input"
	"github.com/lixenwraith/conengine/render"
)

// fpsWindow is the span over which the frame rate is averaged
const fpsWindow = time.Second

// Engine owns the screen buffer and input state for one game session
type Engine struct {
	config   Config
	platform Platform
	clock    TimeProvider
	audio    *audio.AudioEngine

	screen *render.Buffer
	input  *input.Machine
	events []input.Event

	name    string
	state   State
	running bool

	frames     uint64
	fps        float64
	fpsFrames  int
	fpsElapsed float64
}

// New creates an engine rendering to platform
func New(platform Platform, cfg *Config) (*Engine, error) {
	if platform == nil {
		return nil, ErrNoPlatform
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		config:   *cfg,
		platform: platform,
		clock:    NewMonotonicTimeProvider(),
		screen:   render.NewBuffer(cfg.Width, cfg.Height),
		input:    input.NewMachine(),
		events:   make([]input.Event, 0, 32),
		state:    StateInitializing,
	}, nil
}

// SetTimeProvider replaces the wall clock; must be called before Run
func (e *Engine) SetTimeProvider(tp TimeProvider) {
	e.clock = tp
}

// SetAudio attaches an audio engine for games to reach through Audio
// The caller keeps ownership and closes it
func (e *Engine) SetAudio(a *audio.AudioEngine) {
	e.audio = a
}

// Screen returns the buffer games draw into
func (e *Engine) Screen() *render.Buffer { return e.screen }

// Input returns the per-frame key and mouse state
func (e *Engine) Input() *input.Machine { return e.input }

// Audio returns the attached audio engine, or nil
func (e *Engine) Audio() *audio.AudioEngine { return e.audio }

func (e *Engine) Width() int  { return e.config.Width }
func (e *Engine) Height() int { return e.config.Height }

// Name returns the running game's application name
func (e *Engine) Name() string { return e.name }

// State returns the lifecycle phase
func (e *Engine) State() State { return e.state }

// Frames returns the number of frames presented
func (e *Engine) Frames() uint64 { return e.frames }

// FPS returns the frame rate averaged over the last full second
func (e *Engine) FPS() float64 { return e.fps }

// Run drives game until it stops, the context is cancelled or the platform closes
// A presentation error ends the session immediately and is returned wrapped in ErrPresent
func (e *Engine) Run(ctx context.Context, game Game) error {
	if e.running {
		return ErrRunning
	}
	e.running = true
	defer func() { e.running = false }()

	e.name = gameName(game)
	e.setState(StateInitializing)

	if !game.Setup(e) {
		log.Printf("engine: %s setup failed", e.name)
		e.setState(StateShuttingDown)
		game.Teardown(e)
		e.setState(StateTerminated)
		return ErrSetup
	}

	for {
		e.setState(StateRunning)
		if err := e.loop(ctx, game); err != nil {
			e.setState(StateTerminated)
			return err
		}

		e.setState(StateShuttingDown)
		if game.Teardown(e) {
			break
		}
		if ctx.Err() != nil || e.platformClosed() {
			log.Printf("engine: %s teardown veto ignored, session ended externally", e.name)
			break
		}
		log.Printf("engine: %s teardown vetoed, resuming", e.name)
	}

	e.setState(StateTerminated)
	return nil
}

// loop runs frames until the game, context or platform ends the phase
func (e *Engine) loop(ctx context.Context, game Game) error {
	var interval time.Duration
	if e.config.FrameRate > 0 {
		interval = time.Second / time.Duration(e.config.FrameRate)
	}

	closed := e.platform.Closed()
	last := e.clock.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-closed:
			return nil
		default:
		}

		frameStart := time.Now()
		start := e.clock.Now()
		elapsed := start.Sub(last).Seconds()
		last = start

		e.events = e.platform.DrainEvents(e.events[:0])
		e.input.Update(e.platform, e.events)

		if !game.Update(e, elapsed) {
			return nil
		}

		if err := e.platform.Present(e.screen); err != nil {
			log.Printf("engine: %s present failed: %v", e.name, err)
			return fmt.Errorf("%w: %w", ErrPresent, err)
		}

		e.frames++
		e.trackFPS(elapsed)

		// Cap uses the wall clock regardless of the injected provider
		if interval > 0 {
			if wait := interval - time.Since(frameStart); wait > 0 {
				e.sleep(ctx, closed, wait)
			}
		}
	}
}

// sleep waits for d or until the session is ending
func (e *Engine) sleep(ctx context.Context, closed <-chan struct{}, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	case <-closed:
	}
}

func (e *Engine) trackFPS(elapsed float64) {
	e.fpsFrames++
	e.fpsElapsed += elapsed
	if e.fpsElapsed >= fpsWindow.Seconds() {
		e.fps = float64(e.fpsFrames) / e.fpsElapsed
		e.fpsFrames = 0
		e.fpsElapsed = 0
	}
}

func (e *Engine) platformClosed() bool {
	select {
	case <-e.platform.Closed():
		return true
	default:
		return false
	}
}

func (e *Engine) setState(s State) {
	if e.state != s {
		log.Printf("engine: %s %s -> %s", e.name, e.state, s)
	}
	e.state = s
}
