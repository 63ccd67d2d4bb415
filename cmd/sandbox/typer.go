package main

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/strata/audio"
	"github.com/lixenwraith/strata/engine"
	"github.com/lixenwraith/strata/event"
	"github.com/lixenwraith/strata/platform"
)

const (
	trailLength   = 8
	trailStep     = 50 * time.Millisecond
	trailLifetime = 500 * time.Millisecond
	errorBlink    = 500 * time.Millisecond
	cursorBlink   = 500 * time.Millisecond
	spawnInterval = 2 * time.Second
	maxGlyphs     = 20
	spawnAttempts = 16
)

const glyphSet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()_+-=[]{}|;:,.<>?/"

var (
	colorLower  = platform.RGB{R: 80, G: 200, B: 120}
	colorUpper  = platform.RGB{R: 90, G: 140, B: 255}
	colorDigit  = platform.RGB{R: 240, G: 210, B: 80}
	colorSymbol = platform.RGB{R: 190, G: 110, B: 230}
	colorCursor = platform.RGB{R: 230, G: 230, B: 230}
	colorError  = platform.RGB{R: 230, G: 60, B: 60}
	colorTrail  = platform.RGB{R: 255, G: 255, B: 255}
)

type glyph struct {
	ch   rune
	x, y int
	fg   platform.RGB
}

// trailPoint is negative-aged until its step delay elapses
type trailPoint struct {
	x, y      int
	intensity float64
	age       time.Duration
}

// Typer is the sandbox scene: glyphs spawn around the screen and typing one moves the
// cursor onto it, leaving a fading trail. Arrow keys and left clicks move the cursor.
type Typer struct {
	engine.BaseLayer

	rng    *rand.Rand
	player audio.Player

	width, height    int
	cursorX, cursorY int
	mouseX, mouseY   int

	glyphs []glyph
	trails []trailPoint

	sinceSpawn time.Duration
	sinceBlink time.Duration
	cursorOn   bool
	errorLeft  time.Duration

	hits, misses int
}

// NewTyper creates the scene; seed fixes glyph placement
func NewTyper(player audio.Player, seed uint64) *Typer {
	if player == nil {
		player = audio.Nop{}
	}
	return &Typer{
		BaseLayer: engine.BaseLayer{LayerName: "Typer"},
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		player:    player,
		cursorOn:  true,
	}
}

func (t *Typer) OnAttach(ctx *engine.FrameContext) {
	t.resize(ctx.Size())
	t.cursorX = t.width / 2
	t.cursorY = t.height / 2
}

func (t *Typer) OnUpdate(ctx *engine.FrameContext) {
	dt := ctx.DeltaTime()
	t.resize(ctx.Size())

	t.sinceSpawn += dt
	if t.sinceSpawn >= spawnInterval {
		t.sinceSpawn = 0
		if len(t.glyphs) < maxGlyphs {
			if g, ok := t.spawn(); ok {
				t.glyphs = append(t.glyphs, g)
			}
		}
	}

	t.sinceBlink += dt
	if t.sinceBlink >= cursorBlink {
		t.sinceBlink = 0
		t.cursorOn = !t.cursorOn
	}
	if t.errorLeft > 0 {
		t.errorLeft = max(0, t.errorLeft-dt)
	}

	kept := t.trails[:0]
	for _, p := range t.trails {
		p.age += dt
		if p.age < trailLifetime && p.fade() > 0.05 {
			kept = append(kept, p)
		}
	}
	t.trails = kept
}

func (t *Typer) OnEvent(_ *engine.DispatchContext, ev event.Event) bool {
	switch e := ev.(type) {
	case event.KeyTyped:
		return t.typed(e.Char)
	case event.KeyPressed:
		dx, dy := 0, 0
		switch e.Code {
		case event.KeyLeft:
			dx = -1
		case event.KeyRight:
			dx = 1
		case event.KeyUp:
			dy = -1
		case event.KeyDown:
			dy = 1
		default:
			return false
		}
		t.moveTo(t.cursorX+dx, t.cursorY+dy)
		return true
	case event.MouseMoved:
		t.mouseX, t.mouseY = int(e.X), int(e.Y)
	case event.MouseButtonPressed:
		if e.Button == event.MouseLeft {
			t.moveTo(t.mouseX, t.mouseY)
			return true
		}
	}
	return false
}

func (t *Typer) OnRender(_ *engine.FrameContext, frame *platform.Frame) {
	for _, g := range t.glyphs {
		frame.Set(g.x, g.y, g.ch, g.fg, frame.At(g.x, g.y).Bg, platform.AttrBold)
	}

	for _, p := range t.trails {
		if p.age < 0 {
			continue
		}
		frame.Set(p.x, p.y, '█', colorTrail.Scale(p.fade()), frame.At(p.x, p.y).Bg, platform.AttrNone)
	}

	if t.cursorOn || t.errorLeft > 0 {
		fg := colorCursor
		if t.errorLeft > 0 {
			fg = colorError
		}
		frame.Set(t.cursorX, t.cursorY, ' ', fg, frame.At(t.cursorX, t.cursorY).Bg, platform.AttrReverse)
	}
}

// Score returns matched and missed keystrokes
func (t *Typer) Score() (hits, misses int) {
	return t.hits, t.misses
}

func (t *Typer) typed(ch rune) bool {
	for i, g := range t.glyphs {
		if g.ch != ch {
			continue
		}
		t.moveTo(g.x, g.y)
		t.glyphs = append(t.glyphs[:i], t.glyphs[i+1:]...)
		t.hits++
		t.player.Play(audio.CueSpawn)
		t.cursorOn = true
		t.sinceBlink = 0
		return true
	}

	// Only visible glyphs count as misses
	if ch < ' ' {
		return false
	}
	t.misses++
	t.errorLeft = errorBlink
	t.player.Play(audio.CueError)
	return true
}

// moveTo clamps the target and lays a trail from the old position
func (t *Typer) moveTo(x, y int) {
	x = min(max(x, 0), max(t.width-1, 0))
	y = min(max(y, 0), max(t.height-1, 0))
	if x == t.cursorX && y == t.cursorY {
		return
	}

	dx := float64(x - t.cursorX)
	dy := float64(y - t.cursorY)
	for i := 1; i <= trailLength; i++ {
		progress := float64(i) / trailLength
		t.trails = append(t.trails, trailPoint{
			x:         t.cursorX + int(dx*progress),
			y:         t.cursorY + int(dy*progress),
			intensity: 1 - progress*0.8,
			age:       -time.Duration(i) * trailStep,
		})
	}
	t.cursorX, t.cursorY = x, y
}

// resize clamps the cursor and drops glyphs that fell off screen
func (t *Typer) resize(size platform.Size) {
	w, h := int(size.Width), int(size.Height)
	if w == t.width && h == t.height {
		return
	}
	t.width, t.height = w, h
	t.cursorX = min(t.cursorX, max(w-1, 0))
	t.cursorY = min(t.cursorY, max(h-1, 0))

	kept := t.glyphs[:0]
	for _, g := range t.glyphs {
		if g.x < w && g.y < h {
			kept = append(kept, g)
		}
	}
	t.glyphs = kept
}

// spawn picks a glyph away from the cursor; fails on screens too small to fit one
func (t *Typer) spawn() (glyph, bool) {
	if t.width <= 0 || t.height <= 0 {
		return glyph{}, false
	}
	for range spawnAttempts {
		x, y := t.rng.IntN(t.width), t.rng.IntN(t.height)
		if abs(x-t.cursorX) <= 5 && abs(y-t.cursorY) <= 3 {
			continue
		}
		ch := rune(glyphSet[t.rng.IntN(len(glyphSet))])
		return glyph{ch: ch, x: x, y: y, fg: glyphColor(ch)}, true
	}
	return glyph{}, false
}

func (p trailPoint) fade() float64 {
	if p.age <= 0 {
		return p.intensity
	}
	return p.intensity * (1 - float64(p.age)/float64(trailLifetime))
}

func glyphColor(ch rune) platform.RGB {
	switch {
	case ch >= 'a' && ch <= 'z':
		return colorLower
	case ch >= 'A' && ch <= 'Z':
		return colorUpper
	case ch >= '0' && ch <= '9':
		return colorDigit
	default:
		return colorSymbol
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
