package terminal

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/strata/platform"
)

// DefaultRepeatWindow is the longest gap between two identical key reports still
// treated as auto-repeat
const DefaultRepeatWindow = 60 * time.Millisecond

// Payloads posted through tcell's interrupt events
type (
	redrawSignal struct{}
	closeSignal  struct{}
)

// buttonOrder pairs tcell button bits with platform buttons
var buttonOrder = [...]struct {
	mask   tcell.ButtonMask
	button platform.MouseButton
}{
	{tcell.Button1, platform.MouseLeft},
	{tcell.Button2, platform.MouseRight},
	{tcell.Button3, platform.MouseMiddle},
	{tcell.Button4, platform.MouseOther + 1},
	{tcell.Button5, platform.MouseOther + 2},
	{tcell.Button6, platform.MouseOther + 3},
	{tcell.Button7, platform.MouseOther + 4},
	{tcell.Button8, platform.MouseOther + 5},
}

const buttonMask = tcell.Button1 | tcell.Button2 | tcell.Button3 | tcell.Button4 |
	tcell.Button5 | tcell.Button6 | tcell.Button7 | tcell.Button8

// wheelOrder maps wheel bits to one line of scroll; positive Y scrolls up
var wheelOrder = [...]struct {
	mask  tcell.ButtonMask
	delta platform.LineDelta
}{
	{tcell.WheelUp, platform.LineDelta{Y: 1}},
	{tcell.WheelDown, platform.LineDelta{Y: -1}},
	{tcell.WheelLeft, platform.LineDelta{X: -1}},
	{tcell.WheelRight, platform.LineDelta{X: 1}},
}

// translator turns tcell events into raw platform events. It keeps the state
// terminals do not report: held buttons, last cursor cell, last key and paste buffer.
// Not safe for concurrent use; the input goroutine owns it.
type translator struct {
	repeatWindow time.Duration

	lastKey  platform.Key
	lastRune rune
	lastAt   time.Time

	buttons tcell.ButtonMask
	x, y    int
	hasPos  bool

	pasting bool
	paste   strings.Builder
}

func newTranslator(repeatWindow time.Duration) *translator {
	if repeatWindow <= 0 {
		repeatWindow = DefaultRepeatWindow
	}
	return &translator{repeatWindow: repeatWindow}
}

// translate converts one tcell event observed at now. Events with no raw equivalent
// yield nil.
func (t *translator) translate(ev tcell.Event, now time.Time) []platform.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if t.pasting {
			t.pasteKey(ev)
			return nil
		}
		if ev.Key() == tcell.KeyCtrlC {
			return []platform.Event{platform.CloseRequested{}}
		}
		return t.key(ev, now)

	case *tcell.EventMouse:
		return t.mouse(ev)

	case *tcell.EventResize:
		w, h := ev.Size()
		return []platform.Event{platform.Resized{Width: clampDim(w), Height: clampDim(h)}}

	case *tcell.EventFocus:
		return []platform.Event{platform.Focused{Focused: ev.Focused}}

	case *tcell.EventPaste:
		if ev.Start() {
			t.pasting = true
			t.paste.Reset()
			return nil
		}
		t.pasting = false
		text := t.paste.String()
		t.paste.Reset()
		if text == "" {
			return nil
		}
		return []platform.Event{platform.Pasted{Text: text}}

	case *tcell.EventInterrupt:
		switch ev.Data().(type) {
		case redrawSignal:
			return []platform.Event{platform.RedrawRequested{}}
		case closeSignal:
			return []platform.Event{platform.CloseRequested{}}
		}
	}
	return nil
}

// key synthesizes a full press/release sequence since terminals only report presses.
// Held modifiers wrap the key: modifier presses first, releases last.
func (t *translator) key(ev *tcell.EventKey, now time.Time) []platform.Event {
	key, ch, implied := mapKey(ev)
	mods := modifierKeys(ev.Modifiers() | implied)

	repeat := key == t.lastKey && ch == t.lastRune && !t.lastAt.IsZero() && now.Sub(t.lastAt) <= t.repeatWindow
	t.lastKey, t.lastRune, t.lastAt = key, ch, now

	out := make([]platform.Event, 0, 2*len(mods)+3)
	for _, m := range mods {
		out = append(out, platform.KeyboardInput{Key: m, State: platform.Pressed})
	}
	out = append(out, platform.KeyboardInput{Key: key, State: platform.Pressed, Repeat: repeat})
	if ch != 0 {
		out = append(out, platform.ReceivedCharacter{Char: ch})
	}
	out = append(out, platform.KeyboardInput{Key: key, State: platform.Released})
	for i := len(mods) - 1; i >= 0; i-- {
		out = append(out, platform.KeyboardInput{Key: mods[i], State: platform.Released})
	}
	return out
}

func (t *translator) pasteKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyRune:
		t.paste.WriteRune(ev.Rune())
	case tcell.KeyEnter, tcell.KeyLF:
		t.paste.WriteByte('\n')
	case tcell.KeyTab:
		t.paste.WriteByte('\t')
	}
}

// mouse diffs the button mask against the previous report
func (t *translator) mouse(ev *tcell.EventMouse) []platform.Event {
	var out []platform.Event

	x, y := ev.Position()
	if !t.hasPos || x != t.x || y != t.y {
		t.x, t.y, t.hasPos = x, y, true
		out = append(out, platform.CursorMoved{X: float64(x), Y: float64(y)})
	}

	held := ev.Buttons() & buttonMask
	for _, b := range buttonOrder {
		was, is := t.buttons&b.mask != 0, held&b.mask != 0
		switch {
		case is && !was:
			out = append(out, platform.MouseInput{Button: b.button, State: platform.Pressed})
		case was && !is:
			out = append(out, platform.MouseInput{Button: b.button, State: platform.Released})
		}
	}
	t.buttons = held

	for _, w := range wheelOrder {
		if ev.Buttons()&w.mask != 0 {
			out = append(out, platform.MouseWheel{Delta: w.delta})
		}
	}
	return out
}

func clampDim(v int) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v)
}
