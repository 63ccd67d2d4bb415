package layers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lixenwraith/strata/engine"
	"github.com/lixenwraith/strata/event"
	"github.com/lixenwraith/strata/platform"
	"github.com/lixenwraith/strata/status"
)

// Inspector HUD colors
var (
	hudBorder = platform.RGB{R: 90, G: 160, B: 220}
	hudBg     = platform.RGB{R: 20, G: 24, B: 36}
	hudLabel  = platform.RGB{R: 140, G: 140, B: 160}
	hudValue  = platform.RGB{R: 230, G: 230, B: 230}
)

const (
	// ToggleKey shows/hides the inspector; the press and its release are consumed
	ToggleKey = event.KeyF1

	hudWidth     = 34
	typedLimit   = hudWidth - 10
	fpsSmoothing = 0.1
)

// Modifiers is the held state derived from left/right modifier keys
type Modifiers struct {
	Ctrl, Shift, Alt, Super bool
}

// String renders held modifiers as "C-S-A-W" initials, "-" for none
func (m Modifiers) String() string {
	var parts []string
	if m.Ctrl {
		parts = append(parts, "C")
	}
	if m.Shift {
		parts = append(parts, "S")
	}
	if m.Alt {
		parts = append(parts, "A")
	}
	if m.Super {
		parts = append(parts, "W")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "-")
}

// Inspector is a debug overlay tracking input state and engine metrics.
// It never consumes events other than ToggleKey.
type Inspector struct {
	engine.BaseLayer

	visible bool

	keysDown map[event.KeyCode]bool
	mods     Modifiers
	buttons  map[event.MouseButton]bool
	mouseX   float32
	mouseY   float32
	wheelX   float32
	wheelY   float32
	typed    []rune
	last     string

	size    platform.Size
	scale   float64
	focused bool
	fps     float64
	metrics []status.Metric
}

// NewInspector creates a visible inspector
func NewInspector() *Inspector {
	return &Inspector{
		BaseLayer: engine.BaseLayer{LayerName: "Inspector"},
		visible:   true,
		keysDown:  make(map[event.KeyCode]bool),
		buttons:   make(map[event.MouseButton]bool),
		focused:   true,
	}
}

// OnAttach captures the initial display size and scale
func (in *Inspector) OnAttach(ctx *engine.FrameContext) {
	in.size = ctx.Size()
	in.scale = ctx.ScaleFactor()
}

// OnUpdate refreshes frame rate and metrics
func (in *Inspector) OnUpdate(ctx *engine.FrameContext) {
	if dt := ctx.DeltaTime().Seconds(); dt > 0 {
		inst := 1 / dt
		if in.fps == 0 {
			in.fps = inst
		} else {
			in.fps += (inst - in.fps) * fpsSmoothing
		}
	}
	in.size = ctx.Size()
	if in.visible {
		in.metrics = ctx.Stats().Snapshot()
	}
}

// OnEvent records input state; only ToggleKey is consumed
func (in *Inspector) OnEvent(ctx *engine.DispatchContext, ev event.Event) bool {
	in.last = ev.String()

	switch e := ev.(type) {
	case event.WindowResize:
		in.size = platform.Size{Width: e.Width, Height: e.Height}
	case event.WindowScaleChanged:
		in.scale = e.Factor
	case event.WindowFocusGained:
		in.focused = true
	case event.WindowFocusLost:
		in.focused = false

	case event.KeyPressed:
		if e.Code == ToggleKey {
			if !e.Repeat {
				in.visible = !in.visible
			}
			return true
		}
		in.keysDown[e.Code] = true
		in.updateModifiers()
	case event.KeyReleased:
		if e.Code == ToggleKey {
			return true
		}
		delete(in.keysDown, e.Code)
		in.updateModifiers()
	case event.KeyTyped:
		in.typed = append(in.typed, e.Char)
		if len(in.typed) > typedLimit {
			in.typed = in.typed[len(in.typed)-typedLimit:]
		}

	case event.MouseButtonPressed:
		in.buttons[e.Button] = true
	case event.MouseButtonReleased:
		delete(in.buttons, e.Button)
	case event.MouseMoved:
		in.mouseX, in.mouseY = e.X, e.Y
	case event.MouseScrolled:
		in.wheelX, in.wheelY = e.DX, e.DY
	}
	return false
}

func (in *Inspector) updateModifiers() {
	in.mods = Modifiers{
		Ctrl:  in.keysDown[event.KeyLControl] || in.keysDown[event.KeyRControl],
		Shift: in.keysDown[event.KeyLShift] || in.keysDown[event.KeyRShift],
		Alt:   in.keysDown[event.KeyLAlt] || in.keysDown[event.KeyRAlt],
		Super: in.keysDown[event.KeyLWin] || in.keysDown[event.KeyRWin],
	}
}

// Visible reports whether the HUD is drawn
func (in *Inspector) Visible() bool {
	return in.visible
}

// SetVisible shows or hides the panel; state tracking continues while hidden
func (in *Inspector) SetVisible(v bool) {
	in.visible = v
}

// Modifiers returns the derived modifier state
func (in *Inspector) Modifiers() Modifiers {
	return in.mods
}

// KeysDown returns held keys in code order
func (in *Inspector) KeysDown() []event.KeyCode {
	keys := make([]event.KeyCode, 0, len(in.keysDown))
	for k := range in.keysDown {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ButtonsDown returns held mouse buttons in value order
func (in *Inspector) ButtonsDown() []event.MouseButton {
	buttons := make([]event.MouseButton, 0, len(in.buttons))
	for b := range in.buttons {
		buttons = append(buttons, b)
	}
	sort.Slice(buttons, func(i, j int) bool { return buttons[i] < buttons[j] })
	return buttons
}

// Mouse returns the last cursor position and wheel offset
func (in *Inspector) Mouse() (x, y, wheelX, wheelY float32) {
	return in.mouseX, in.mouseY, in.wheelX, in.wheelY
}

// DisplaySize returns the tracked display size
func (in *Inspector) DisplaySize() platform.Size {
	return in.size
}

// lines builds the HUD rows as label/value pairs
func (in *Inspector) lines() [][2]string {
	keys := make([]string, 0, len(in.keysDown))
	for _, k := range in.KeysDown() {
		keys = append(keys, k.String())
	}
	buttons := make([]string, 0, len(in.buttons))
	for _, b := range in.ButtonsDown() {
		buttons = append(buttons, b.String())
	}

	rows := [][2]string{
		{"display", fmt.Sprintf("%s @%.2gx", in.size, in.scale)},
		{"focus", fmt.Sprintf("%t", in.focused)},
		{"fps", fmt.Sprintf("%.1f", in.fps)},
		{"keys", orDash(strings.Join(keys, " "))},
		{"mods", in.mods.String()},
		{"typed", orDash(string(in.typed))},
		{"mouse", fmt.Sprintf("%g,%g", in.mouseX, in.mouseY)},
		{"buttons", orDash(strings.Join(buttons, " "))},
		{"wheel", fmt.Sprintf("%g,%g", in.wheelX, in.wheelY)},
		{"last", orDash(in.last)},
	}
	for _, m := range in.metrics {
		v := fmt.Sprintf("%.0f", m.Value)
		if m.Gauge {
			v = fmt.Sprintf("%.2f", m.Value)
		}
		rows = append(rows, [2]string{m.Key, v})
	}
	return rows
}

// OnRender draws the HUD box in the top-right corner
func (in *Inspector) OnRender(ctx *engine.FrameContext, frame *platform.Frame) {
	if !in.visible {
		return
	}
	rows := in.lines()
	w, h := hudWidth, len(rows)+2
	x := max(frame.Width-w, 0)

	frame.Box(x, 0, w, h, hudBorder, hudBg)
	frame.Text(x+2, 0, " inspector [F1] ", hudBorder, hudBg, platform.AttrBold)
	for i, row := range rows {
		col := frame.Text(x+1, i+1, fmt.Sprintf("%-12s", clip(row[0], 12)), hudLabel, hudBg, platform.AttrNone)
		frame.Text(col, i+1, clip(row[1], w-2-12), hudValue, hudBg, platform.AttrNone)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// clip truncates s to n runes
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 0 {
		return ""
	}
	return string(r[:n])
}
