package script

import (
	"github.com/go-gl/mathgl/mgl32"
	lua "github.com/yuin/gopher-lua"

	"github.com/lixenwraith/conengine/audio"
	"github.com/lixenwraith/conengine/constant"
	"github.com/lixenwraith/conengine/input"
	"github.com/lixenwraith/conengine/render"
	"github.com/lixenwraith/conengine/sprite"
)

// colorNames are the palette indices exposed to scripts, in nibble order
var colorNames = [constant.PaletteSize]string{
	"BLACK", "DARK_BLUE", "DARK_GREEN", "DARK_CYAN",
	"DARK_RED", "DARK_MAGENTA", "DARK_YELLOW", "GREY",
	"DARK_GREY", "BLUE", "GREEN", "CYAN",
	"RED", "MAGENTA", "YELLOW", "WHITE",
}

var pixelNames = map[string]uint16{
	"SOLID":          constant.PixelSolid,
	"THREE_QUARTERS": constant.PixelThreeQuarters,
	"HALF":           constant.PixelHalf,
	"QUARTER":        constant.PixelQuarter,
	"EMPTY":          constant.PixelEmpty,
}

// register installs the con table
func (g *Game) register() {
	L := g.L
	con := L.NewTable()

	L.SetFuncs(con, map[string]lua.LGFunction{
		"width":  g.width,
		"height": g.height,
		"fps":    g.fps,
		"frames": g.frames,
		"color":  luaColor,
		"glyph":  luaGlyph,

		"clear":         g.clear,
		"draw":          g.draw,
		"fill":          g.fill,
		"fill_rect":     g.fillRect,
		"rect":          g.rect,
		"text":          g.text,
		"text_alpha":    g.textAlpha,
		"line":          g.line,
		"triangle":      g.triangle,
		"fill_triangle": g.fillTriangle,
		"circle":        g.circle,
		"fill_circle":   g.fillCircle,
		"polygon":       g.polygon,
		"wireframe":     g.wireframe,
		"filled_model":  g.filledModel,

		"load_sprite":  g.loadSprite,
		"new_sprite":   g.newSprite,
		"sprite_set":   g.spriteSet,
		"sprite_size":  g.spriteSize,
		"sprite_glyph": g.spriteGlyph,
		"blit":         g.blit,
		"blit_partial": g.blitPartial,

		"pressed":        g.keyQuery(func(s input.KeyState) bool { return s.Pressed }),
		"released":       g.keyQuery(func(s input.KeyState) bool { return s.Released }),
		"held":           g.keyQuery(func(s input.KeyState) bool { return s.Held }),
		"mouse_pressed":  g.buttonQuery(func(s input.KeyState) bool { return s.Pressed }),
		"mouse_released": g.buttonQuery(func(s input.KeyState) bool { return s.Released }),
		"mouse_held":     g.buttonQuery(func(s input.KeyState) bool { return s.Held }),
		"mouse":          g.mouse,
		"focused":        g.focused,

		"note":        luaNote,
		"play_note":   g.playNote,
		"play_notes":  g.playNotes,
		"note_on":     g.noteOn,
		"note_off":    g.noteOff,
		"load_sample": g.loadSample,
		"play_sample": g.playSample,
	})

	for i, name := range colorNames {
		L.SetField(con, name, lua.LNumber(i))
	}
	for name, glyph := range pixelNames {
		L.SetField(con, name, lua.LNumber(glyph))
	}

	L.SetGlobal("con", con)
}

// screen returns the running engine's buffer or raises a Lua error
func (g *Game) screen(L *lua.LState) *render.Buffer {
	if g.eng == nil {
		L.RaiseError("%s", ErrNotRunning)
		return nil
	}
	return g.eng.Screen()
}

func (g *Game) input(L *lua.LState) *input.Machine {
	if g.eng == nil {
		L.RaiseError("%s", ErrNotRunning)
		return nil
	}
	return g.eng.Input()
}

// sound returns the audio engine, or nil when audio is off or the engine is not running
func (g *Game) sound() *audio.AudioEngine {
	if g.eng == nil {
		return nil
	}
	return g.eng.Audio()
}

func checkU16(L *lua.LState, n int) uint16 {
	return uint16(L.CheckInt(n))
}

// optColor reads an optional color attribute, defaulting to white on black
func optColor(L *lua.LState, n int) uint16 {
	return uint16(L.OptInt(n, int(constant.FgWhite)))
}

// optGlyph reads an optional glyph, defaulting to the solid block
func optGlyph(L *lua.LState, n int) uint16 {
	return uint16(L.OptInt(n, int(constant.PixelSolid)))
}

func (g *Game) width(L *lua.LState) int {
	L.Push(lua.LNumber(g.screen(L).Width()))
	return 1
}

func (g *Game) height(L *lua.LState) int {
	L.Push(lua.LNumber(g.screen(L).Height()))
	return 1
}

func (g *Game) fps(L *lua.LState) int {
	g.screen(L)
	L.Push(lua.LNumber(g.eng.FPS()))
	return 1
}

func (g *Game) frames(L *lua.LState) int {
	g.screen(L)
	L.Push(lua.LNumber(g.eng.Frames()))
	return 1
}

// luaColor packs con.color(fg [, bg])
func luaColor(L *lua.LState) int {
	fg := L.CheckInt(1)
	bg := L.OptInt(2, 0)
	L.Push(lua.LNumber(constant.Attribute(uint8(fg), uint8(bg))))
	return 1
}

// luaGlyph returns the code unit of the first character of a string
func luaGlyph(L *lua.LState) int {
	s := L.CheckString(1)
	for _, r := range s {
		if r > 0xFFFF {
			L.ArgError(1, "character outside the basic multilingual plane")
		}
		L.Push(lua.LNumber(r))
		return 1
	}
	L.ArgError(1, "empty string")
	return 0
}

func (g *Game) clear(L *lua.LState) int {
	g.screen(L).Clear(uint16(L.OptInt(1, int(constant.FgBlack))))
	return 0
}

func (g *Game) draw(L *lua.LState) int {
	g.screen(L).Draw(L.CheckInt(1), L.CheckInt(2), optGlyph(L, 3), optColor(L, 4))
	return 0
}

func (g *Game) fill(L *lua.LState) int {
	g.screen(L).Fill(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), optGlyph(L, 5), optColor(L, 6))
	return 0
}

func (g *Game) fillRect(L *lua.LState) int {
	g.screen(L).FillRect(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), optGlyph(L, 5), optColor(L, 6))
	return 0
}

func (g *Game) rect(L *lua.LState) int {
	g.screen(L).Rect(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), optGlyph(L, 5), optColor(L, 6))
	return 0
}

func (g *Game) text(L *lua.LState) int {
	g.screen(L).DrawString(L.CheckInt(1), L.CheckInt(2), L.CheckString(3), optColor(L, 4))
	return 0
}

func (g *Game) textAlpha(L *lua.LState) int {
	g.screen(L).DrawStringAlpha(L.CheckInt(1), L.CheckInt(2), L.CheckString(3), optColor(L, 4))
	return 0
}

func (g *Game) line(L *lua.LState) int {
	g.screen(L).Line(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), optGlyph(L, 5), optColor(L, 6))
	return 0
}

func (g *Game) triangle(L *lua.LState) int {
	g.screen(L).Triangle(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), L.CheckInt(5), L.CheckInt(6),
		optGlyph(L, 7), optColor(L, 8))
	return 0
}

func (g *Game) fillTriangle(L *lua.LState) int {
	g.screen(L).FillTriangle(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), L.CheckInt(5), L.CheckInt(6),
		optGlyph(L, 7), optColor(L, 8))
	return 0
}

func (g *Game) circle(L *lua.LState) int {
	g.screen(L).Circle(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), optGlyph(L, 4), optColor(L, 5))
	return 0
}

func (g *Game) fillCircle(L *lua.LState) int {
	g.screen(L).FillCircle(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), optGlyph(L, 4), optColor(L, 5))
	return 0
}

// checkPoints reads a flat {x1, y1, x2, y2, ...} table
func checkPoints(L *lua.LState, n int) []mgl32.Vec2 {
	tb := L.CheckTable(n)
	count := tb.Len()
	if count%2 != 0 {
		L.ArgError(n, "point list needs an even number of coordinates")
	}
	pts := make([]mgl32.Vec2, 0, count/2)
	for i := 1; i < count; i += 2 {
		x, okx := tb.RawGetInt(i).(lua.LNumber)
		y, oky := tb.RawGetInt(i + 1).(lua.LNumber)
		if !okx || !oky {
			L.ArgError(n, "point list must contain numbers")
		}
		pts = append(pts, mgl32.Vec2{float32(x), float32(y)})
	}
	return pts
}

func (g *Game) polygon(L *lua.LState) int {
	g.screen(L).FillPolygon(checkPoints(L, 1), optGlyph(L, 2), optColor(L, 3))
	return 0
}

// model reads con.wireframe(points, x, y, r, s, glyph, color) arguments
func model(L *lua.LState) ([]mgl32.Vec2, float32, float32, float32, float32) {
	pts := checkPoints(L, 1)
	x := float32(L.CheckNumber(2))
	y := float32(L.CheckNumber(3))
	r := float32(L.OptNumber(4, 0))
	s := float32(L.OptNumber(5, 1))
	return pts, x, y, r, s
}

func (g *Game) wireframe(L *lua.LState) int {
	buf := g.screen(L)
	pts, x, y, r, s := model(L)
	buf.WireframeModel(pts, x, y, r, s, optGlyph(L, 6), optColor(L, 7))
	return 0
}

func (g *Game) filledModel(L *lua.LState) int {
	buf := g.screen(L)
	pts, x, y, r, s := model(L)
	buf.FilledModel(pts, x, y, r, s, optGlyph(L, 6), optColor(L, 7))
	return 0
}

// addSprite stores spr and returns its 1-based handle
func (g *Game) addSprite(spr *sprite.Sprite) lua.LNumber {
	g.sprites = append(g.sprites, spr)
	return lua.LNumber(len(g.sprites))
}

func (g *Game) checkSprite(L *lua.LState, n int) *sprite.Sprite {
	id := L.CheckInt(n)
	if id < 1 || id > len(g.sprites) {
		L.ArgError(n, "unknown sprite handle")
		return nil
	}
	return g.sprites[id-1]
}

// loadSprite returns a handle, or nil and the error message
func (g *Game) loadSprite(L *lua.LState) int {
	spr, err := sprite.Load(g.resolve(L.CheckString(1)))
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(g.addSprite(spr))
	return 1
}

func (g *Game) newSprite(L *lua.LState) int {
	w, h := L.CheckInt(1), L.CheckInt(2)
	if w < 0 || h < 0 {
		L.ArgError(1, "sprite dimensions must not be negative")
	}
	L.Push(g.addSprite(sprite.New(w, h)))
	return 1
}

func (g *Game) spriteSet(L *lua.LState) int {
	spr := g.checkSprite(L, 1)
	x, y := L.CheckInt(2), L.CheckInt(3)
	spr.SetGlyph(x, y, checkU16(L, 4))
	spr.SetColor(x, y, optColor(L, 5))
	return 0
}

func (g *Game) spriteSize(L *lua.LState) int {
	spr := g.checkSprite(L, 1)
	L.Push(lua.LNumber(spr.Width()))
	L.Push(lua.LNumber(spr.Height()))
	return 2
}

// spriteGlyph samples with normalized coordinates, returning glyph and color
func (g *Game) spriteGlyph(L *lua.LState) int {
	spr := g.checkSprite(L, 1)
	u, v := float32(L.CheckNumber(2)), float32(L.CheckNumber(3))
	L.Push(lua.LNumber(spr.SampleGlyph(u, v)))
	L.Push(lua.LNumber(spr.SampleColor(u, v)))
	return 2
}

func (g *Game) blit(L *lua.LState) int {
	buf := g.screen(L)
	buf.Sprite(L.CheckInt(2), L.CheckInt(3), g.checkSprite(L, 1))
	return 0
}

func (g *Game) blitPartial(L *lua.LState) int {
	buf := g.screen(L)
	spr := g.checkSprite(L, 1)
	buf.PartialSprite(L.CheckInt(2), L.CheckInt(3), spr, L.CheckInt(4), L.CheckInt(5), L.CheckInt(6), L.CheckInt(7))
	return 0
}

func (g *Game) keyQuery(pick func(input.KeyState) bool) lua.LGFunction {
	return func(L *lua.LState) int {
		in := g.input(L)
		k, ok := input.KeyByName(L.CheckString(1))
		if !ok {
			L.ArgError(1, "unknown key name")
			return 0
		}
		L.Push(lua.LBool(pick(in.Key(k))))
		return 1
	}
}

func (g *Game) buttonQuery(pick func(input.KeyState) bool) lua.LGFunction {
	return func(L *lua.LState) int {
		in := g.input(L)
		b, ok := input.ButtonByName(L.CheckString(1))
		if !ok {
			L.ArgError(1, "unknown button name")
			return 0
		}
		L.Push(lua.LBool(pick(in.Button(b))))
		return 1
	}
}

func (g *Game) mouse(L *lua.LState) int {
	x, y := g.input(L).Mouse()
	L.Push(lua.LNumber(x))
	L.Push(lua.LNumber(y))
	return 2
}

func (g *Game) focused(L *lua.LState) int {
	L.Push(lua.LBool(g.input(L).Focused()))
	return 1
}

// luaNote converts a MIDI note number to Hz
func luaNote(L *lua.LState) int {
	L.Push(lua.LNumber(audio.NoteFreq(L.CheckInt(1))))
	return 1
}

func (g *Game) playNote(L *lua.LState) int {
	freq, ms := float64(L.CheckNumber(1)), L.CheckInt(2)
	if a := g.sound(); a != nil {
		a.PlayNote(freq, ms)
	}
	return 0
}

func (g *Game) playNotes(L *lua.LState) int {
	tb := L.CheckTable(1)
	ms := L.CheckInt(2)
	freqs := make([]float64, 0, tb.Len())
	for i := 1; i <= tb.Len(); i++ {
		f, ok := tb.RawGetInt(i).(lua.LNumber)
		if !ok {
			L.ArgError(1, "frequencies must be numbers")
			return 0
		}
		freqs = append(freqs, float64(f))
	}
	if a := g.sound(); a != nil && len(freqs) > 0 {
		a.PlayNotes(freqs, ms)
	}
	return 0
}

func (g *Game) noteOn(L *lua.LState) int {
	freq := float64(L.CheckNumber(1))
	if a := g.sound(); a != nil {
		a.NoteOn(freq)
	}
	return 0
}

func (g *Game) noteOff(L *lua.LState) int {
	freq := float64(L.CheckNumber(1))
	if a := g.sound(); a != nil {
		a.NoteOff(freq)
	}
	return 0
}

func (g *Game) loadSample(L *lua.LState) int {
	path := g.resolve(L.CheckString(1))
	if a := g.sound(); a != nil {
		a.LoadSample(path)
	}
	return 0
}

func (g *Game) playSample(L *lua.LState) int {
	path := g.resolve(L.CheckString(1))
	if a := g.sound(); a != nil {
		a.PlaySample(path)
	}
	return 0
}
