package main

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/conengine/audio"
	"github.com/lixenwraith/conengine/constant"
	"github.com/lixenwraith/conengine/engine"
	"github.com/lixenwraith/conengine/input"
	"github.com/lixenwraith/conengine/sprite"
)

// pianoKeys maps the home row to a C major scale
var pianoKeys = []struct {
	key  input.Key
	freq float64
}{
	{input.KeyA, audio.NoteC4},
	{input.KeyS, audio.NoteD4},
	{input.KeyD, audio.NoteE4},
	{input.KeyF, audio.NoteF4},
	{input.KeyG, audio.NoteG4},
	{input.KeyH, audio.NoteA4},
	{input.KeyJ, audio.NoteB4},
	{input.KeyK, audio.NoteC5},
}

var shipModel = []mgl32.Vec2{{0, -1}, {0.8, 1}, {0, 0.5}, {-0.8, 1}}

// demo is the built-in game shown when no script is given
type demo struct {
	angle float32
	badge *sprite.Sprite
}

func newDemo() *engine.GameFuncs {
	d := &demo{}
	return &engine.GameFuncs{
		Title:    "conengine demo",
		OnSetup:  d.setup,
		OnUpdate: d.update,
	}
}

func (d *demo) setup(e *engine.Engine) bool {
	d.badge = sprite.New(len(constant.Shades), 2)
	for x, shade := range constant.Shades {
		d.badge.SetGlyph(x, 0, shade)
		d.badge.SetColor(x, 0, constant.FgCyan)
		d.badge.SetGlyph(x, 1, shade)
		d.badge.SetColor(x, 1, constant.FgMagenta)
	}
	return true
}

func (d *demo) update(e *engine.Engine, elapsed float64) bool {
	in := e.Input()
	if in.Pressed(input.KeyEscape) {
		return false
	}

	if a := e.Audio(); a != nil {
		for _, pk := range pianoKeys {
			if in.Pressed(pk.key) {
				a.NoteOn(pk.freq)
			}
			if in.Released(pk.key) {
				a.NoteOff(pk.freq)
			}
		}
		if in.Pressed(input.KeySpace) {
			a.PlayNotes([]float64{audio.NoteC4, audio.NoteE4, audio.NoteG4}, 300)
		}
	}

	d.angle += float32(elapsed) * math.Pi / 2

	buf := e.Screen()
	w, h := buf.Width(), buf.Height()
	buf.Clear(constant.FgBlack)

	buf.Rect(0, 0, w, h, constant.PixelQuarter, constant.FgDarkGrey)

	cx, cy := float32(w)/2, float32(h)/2
	scale := float32(min(w, h)) / 4
	buf.FilledModel(shipModel, cx, cy, d.angle, scale, constant.PixelHalf, constant.FgDarkBlue)
	buf.WireframeModel(shipModel, cx, cy, d.angle, scale, constant.PixelSolid, constant.FgYellow)

	mx, my := in.Mouse()
	if in.MouseHeld(input.ButtonLeft) {
		buf.FillCircle(mx, my, 3, constant.PixelSolid, constant.FgRed)
	} else {
		buf.Circle(mx, my, 3, constant.PixelSolid, constant.FgGreen)
	}

	buf.Sprite(w-len(constant.Shades)-2, 2, d.badge)

	buf.DrawString(2, 1, fmt.Sprintf("%s  %5.1f fps", e.Name(), e.FPS()), constant.FgWhite)
	buf.DrawStringAlpha(2, h-2, "A-K play  SPACE chord  ESC quit", constant.FgGrey)
	return true
}
