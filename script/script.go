// Package script runs games written in Lua. A script defines optional global
// functions setup(), update(dt) and teardown(); returning false from any of
// them has the same meaning as in engine.Game. Drawing, input, sprite and
// audio calls live in the global "con" table.
package script

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"

	"github.com/lixenwraith/conengine/engine"
	"github.com/lixenwraith/conengine/sprite"
)

var (
	ErrScript     = errors.New("script error")
	ErrNotRunning = errors.New("engine is not running")
)

// Game adapts a Lua script to engine.Game
// Not safe for concurrent use; the frame loop is its only caller
type Game struct {
	name string
	dir  string

	L       *lua.LState
	eng     *engine.Engine
	sprites []*sprite.Sprite

	err error
}

// New loads the script at path; relative asset paths resolve against its directory
func New(path string) (*Game, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	base := filepath.Base(path)
	name := base[:len(base)-len(filepath.Ext(base))]
	return newGame(name, filepath.Dir(path), string(src))
}

// NewFromSource compiles and runs the top level of source
// Assets resolve against the working directory
func NewFromSource(name, source string) (*Game, error) {
	return newGame(name, ".", source)
}

func newGame(name, dir, source string) (*Game, error) {
	g := &Game{
		name: name,
		dir:  dir,
		L:    lua.NewState(),
	}
	g.register()

	if err := g.L.DoString(source); err != nil {
		g.L.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrScript, name, err)
	}

	if v, ok := g.L.GetGlobal("name").(lua.LString); ok && v != "" {
		g.name = string(v)
	}
	return g, nil
}

// Name returns the script's global name, or its file name
func (g *Game) Name() string {
	return g.name
}

// Err returns the first runtime error raised by a callback
func (g *Game) Err() error {
	return g.err
}

// Close releases the Lua state
func (g *Game) Close() {
	g.L.Close()
}

func (g *Game) Setup(e *engine.Engine) bool {
	g.eng = e
	ok, err := g.call("setup")
	return err == nil && ok
}

func (g *Game) Update(e *engine.Engine, elapsed float64) bool {
	g.eng = e
	ok, err := g.call("update", lua.LNumber(elapsed))
	return err == nil && ok
}

// Teardown never vetoes once the script has failed
func (g *Game) Teardown(e *engine.Engine) bool {
	g.eng = e
	ok, err := g.call("teardown")
	if err != nil || g.err != nil {
		return true
	}
	return ok
}

// call invokes a global callback; missing callbacks succeed
// Anything but a false return counts as success
func (g *Game) call(fn string, args ...lua.LValue) (bool, error) {
	lv := g.L.GetGlobal(fn)
	if lv == lua.LNil {
		return true, nil
	}
	f, ok := lv.(*lua.LFunction)
	if !ok {
		return false, g.fail(fmt.Errorf("%w: %s: global %s is %s, not a function", ErrScript, g.name, fn, lv.Type()))
	}

	if err := g.L.CallByParam(lua.P{Fn: f, NRet: 1, Protect: true}, args...); err != nil {
		return false, g.fail(fmt.Errorf("%w: %s: %s: %w", ErrScript, g.name, fn, err))
	}
	ret := g.L.Get(-1)
	g.L.Pop(1)
	return ret != lua.LFalse, nil
}

func (g *Game) fail(err error) error {
	log.Printf("script: %v", err)
	if g.err == nil {
		g.err = err
	}
	return err
}

// resolve makes relative asset paths relative to the script
func (g *Game) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(g.dir, path)
}
