package main

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/strata/audio"
	"github.com/lixenwraith/strata/engine"
	"github.com/lixenwraith/strata/event"
	"github.com/lixenwraith/strata/logging"
	"github.com/lixenwraith/strata/platform"
)

type stubWindow struct{}

func (stubWindow) Events() <-chan platform.Event { return nil }
func (stubWindow) Size() platform.Size           { return platform.Size{Width: 80, Height: 25} }
func (stubWindow) ScaleFactor() float64          { return 1 }
func (stubWindow) RequestRedraw()                {}
func (stubWindow) Close() error                  { return nil }

type stubSurface struct {
	size platform.Size
	last *platform.Frame
}

func (s *stubSurface) Configure(size platform.Size) { s.size = size }
func (s *stubSurface) AcquireFrame() (*platform.Frame, error) {
	return platform.NewFrame(int(s.size.Width), int(s.size.Height)), nil
}
func (s *stubSurface) Present(f *platform.Frame) { s.last = f }

type cueLog struct {
	cues []audio.Cue
}

func (c *cueLog) Play(cue audio.Cue) { c.cues = append(c.cues, cue) }
func (c *cueLog) Close()             {}

func newTyperRunner(t *testing.T) (*Typer, *engine.Runner, *stubSurface, *engine.MockClock, *cueLog) {
	t.Helper()
	cues := &cueLog{}
	typer := NewTyper(cues, 1)
	surf := &stubSurface{}
	clock := engine.NewMockClock(time.Unix(1000, 0))
	r := engine.NewRunner(engine.DefaultConfig(), stubWindow{}, surf, nil,
		engine.WithClock(clock), engine.WithLogger(logging.Nop{}))
	r.Configure(func(ctx *engine.DispatchContext) {
		ctx.PushLayer(typer)
	})
	return typer, r, surf, clock, cues
}

// TestTyperHitAndMiss tests cursor movement onto a typed glyph and the miss path
func TestTyperHitAndMiss(t *testing.T) {
	typer, r, _, _, cues := newTyperRunner(t)

	if typer.cursorX != 40 || typer.cursorY != 12 {
		t.Fatalf("initial cursor = (%d,%d), want (40,12)", typer.cursorX, typer.cursorY)
	}

	typer.glyphs = append(typer.glyphs, glyph{ch: 'x', x: 5, y: 5, fg: glyphColor('x')})
	if !r.Dispatch(event.KeyTyped{Char: 'x'}) {
		t.Error("matching glyph not consumed")
	}
	if typer.cursorX != 5 || typer.cursorY != 5 {
		t.Errorf("cursor = (%d,%d), want (5,5)", typer.cursorX, typer.cursorY)
	}
	if len(typer.glyphs) != 0 {
		t.Errorf("glyph not removed: %d left", len(typer.glyphs))
	}
	if len(typer.trails) != trailLength {
		t.Errorf("trail points = %d, want %d", len(typer.trails), trailLength)
	}

	if !r.Dispatch(event.KeyTyped{Char: '#'}) {
		t.Error("miss not consumed")
	}
	if typer.errorLeft != errorBlink {
		t.Errorf("errorLeft = %v, want %v", typer.errorLeft, errorBlink)
	}
	if r.Dispatch(event.KeyTyped{Char: '\n'}) {
		t.Error("control character consumed")
	}

	hits, misses := typer.Score()
	if hits != 1 || misses != 1 {
		t.Errorf("Score() = %d, %d, want 1, 1", hits, misses)
	}
	if diff := cmp.Diff([]audio.Cue{audio.CueSpawn, audio.CueError}, cues.cues); diff != "" {
		t.Errorf("cues mismatch (-want +got):\n%s", diff)
	}
}

// TestTyperCursorMovement tests arrow keys, clamping and click-to-move
func TestTyperCursorMovement(t *testing.T) {
	typer, r, _, _, _ := newTyperRunner(t)

	r.Dispatch(event.KeyPressed{Code: event.KeyLeft})
	r.Dispatch(event.KeyPressed{Code: event.KeyUp})
	if typer.cursorX != 39 || typer.cursorY != 11 {
		t.Errorf("cursor = (%d,%d), want (39,11)", typer.cursorX, typer.cursorY)
	}

	if r.Dispatch(event.KeyPressed{Code: event.KeyA}) {
		t.Error("non-arrow key consumed")
	}

	r.Dispatch(event.MouseMoved{X: 200, Y: 3})
	if !r.Dispatch(event.MouseButtonPressed{Button: event.MouseLeft}) {
		t.Error("left click not consumed")
	}
	if typer.cursorX != 79 || typer.cursorY != 3 {
		t.Errorf("cursor = (%d,%d), want (79,3)", typer.cursorX, typer.cursorY)
	}

	r.Dispatch(event.KeyPressed{Code: event.KeyRight})
	if typer.cursorX != 79 {
		t.Errorf("cursor moved past right edge: %d", typer.cursorX)
	}
}

// TestTyperSpawnAndFade tests timed spawning away from the cursor and trail expiry
func TestTyperSpawnAndFade(t *testing.T) {
	typer, r, surf, clock, _ := newTyperRunner(t)

	r.Dispatch(event.KeyPressed{Code: event.KeyDown})
	if len(typer.trails) == 0 {
		t.Fatal("no trail after move")
	}

	clock.Advance(spawnInterval)
	r.Handle(platform.RedrawRequested{})

	if len(typer.glyphs) != 1 {
		t.Fatalf("glyphs = %d, want 1", len(typer.glyphs))
	}
	g := typer.glyphs[0]
	if abs(g.x-typer.cursorX) <= 5 && abs(g.y-typer.cursorY) <= 3 {
		t.Errorf("glyph at (%d,%d) spawned next to cursor", g.x, g.y)
	}
	if len(typer.trails) != 0 {
		t.Errorf("trails = %d after %v, want 0", len(typer.trails), spawnInterval)
	}

	// Spawn runs in OnUpdate after render, so the glyph shows on the next frame
	clock.Advance(engine.DefaultFrameInterval)
	r.Handle(platform.RedrawRequested{})
	if got := surf.last.At(g.x, g.y).Rune; got != g.ch {
		t.Errorf("cell (%d,%d) = %q, want %q", g.x, g.y, got, g.ch)
	}
}

// TestTyperResize tests cursor clamping and glyph pruning on shrink
func TestTyperResize(t *testing.T) {
	typer := NewTyper(nil, 7)
	typer.width, typer.height = 80, 25
	typer.cursorX, typer.cursorY = 60, 20
	typer.glyphs = []glyph{{ch: 'a', x: 2, y: 2}, {ch: 'b', x: 50, y: 2}}

	typer.resize(platform.Size{Width: 10, Height: 5})

	if typer.cursorX != 9 || typer.cursorY != 4 {
		t.Errorf("cursor = (%d,%d), want (9,4)", typer.cursorX, typer.cursorY)
	}
	if len(typer.glyphs) != 1 || typer.glyphs[0].ch != 'a' {
		t.Errorf("glyphs after resize = %+v", typer.glyphs)
	}

	typer.resize(platform.Size{})
	if _, ok := typer.spawn(); ok {
		t.Error("spawn succeeded on an empty screen")
	}
}
