package engine

// Game is the consumer contract driven by the frame loop
// Every callback runs on the goroutine that called Run
type Game interface {
	// Setup runs once before the first frame; false aborts startup
	Setup(e *Engine) bool
	// Update runs every frame with the seconds elapsed since the previous one; false requests shutdown
	Update(e *Engine, elapsed float64) bool
	// Teardown runs on shutdown; false vetoes it and resumes the loop
	Teardown(e *Engine) bool
}

// Named is implemented by games that carry an application name
type Named interface {
	Name() string
}

// GameFuncs adapts plain functions to Game
// Nil callbacks succeed
type GameFuncs struct {
	Title      string
	OnSetup    func(e *Engine) bool
	OnUpdate   func(e *Engine, elapsed float64) bool
	OnTeardown func(e *Engine) bool
}

func (g *GameFuncs) Name() string {
	return g.Title
}

func (g *GameFuncs) Setup(e *Engine) bool {
	if g.OnSetup == nil {
		return true
	}
	return g.OnSetup(e)
}

func (g *GameFuncs) Update(e *Engine, elapsed float64) bool {
	if g.OnUpdate == nil {
		return true
	}
	return g.OnUpdate(e, elapsed)
}

func (g *GameFuncs) Teardown(e *Engine) bool {
	if g.OnTeardown == nil {
		return true
	}
	return g.OnTeardown(e)
}

// gameName returns the application name or a default
func gameName(g Game) string {
	if n, ok := g.(Named); ok && n.Name() != "" {
		return n.Name()
	}
	return "conengine"
}
