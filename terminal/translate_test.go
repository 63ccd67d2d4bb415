package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/strata/platform"
)

func press(k platform.Key) platform.KeyboardInput {
	return platform.KeyboardInput{Key: k, State: platform.Pressed}
}

func release(k platform.Key) platform.KeyboardInput {
	return platform.KeyboardInput{Key: k, State: platform.Released}
}

// TestTranslateRune tests the synthesized press, text, release sequence
func TestTranslateRune(t *testing.T) {
	tr := newTranslator(0)
	now := time.Unix(100, 0)

	got := tr.translate(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), now)
	want := []platform.Event{
		press(platform.KeyA),
		platform.ReceivedCharacter{Char: 'a'},
		release(platform.KeyA),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rune mismatch (-want +got):\n%s", diff)
	}

	// Non-ASCII text keeps its character without a physical key
	got = tr.translate(tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), now.Add(time.Second))
	want = []platform.Event{
		press(platform.KeyUnidentified),
		platform.ReceivedCharacter{Char: 'é'},
		release(platform.KeyUnidentified),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unicode mismatch (-want +got):\n%s", diff)
	}
}

// TestTranslateRepeat tests repeat detection by key and timing
func TestTranslateRepeat(t *testing.T) {
	tr := newTranslator(50 * time.Millisecond)
	start := time.Unix(100, 0)
	ev := func() *tcell.EventKey { return tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone) }

	tests := []struct {
		name string
		at   time.Duration
		key  *tcell.EventKey
		want bool
	}{
		{"first", 0, ev(), false},
		{"fast repeat", 30 * time.Millisecond, ev(), true},
		{"still repeating", 70 * time.Millisecond, ev(), true},
		{"gap", 500 * time.Millisecond, ev(), false},
		{"other key", 510 * time.Millisecond, tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), false},
	}

	for _, tt := range tests {
		out := tr.translate(tt.key, start.Add(tt.at))
		in, ok := out[0].(platform.KeyboardInput)
		if !ok || in.State != platform.Pressed {
			t.Fatalf("%s: first event = %#v, want press", tt.name, out[0])
		}
		if in.Repeat != tt.want {
			t.Errorf("%s: Repeat = %v, want %v", tt.name, in.Repeat, tt.want)
		}
	}
}

// TestTranslateModifiers tests control chords and implied modifiers
func TestTranslateModifiers(t *testing.T) {
	tr := newTranslator(0)
	now := time.Unix(100, 0)

	got := tr.translate(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModCtrl), now)
	want := []platform.Event{
		press(platform.KeyControlLeft),
		press(platform.KeyX),
		release(platform.KeyX),
		release(platform.KeyControlLeft),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ctrl chord mismatch (-want +got):\n%s", diff)
	}

	got = tr.translate(tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), now.Add(time.Second))
	want = []platform.Event{
		press(platform.KeyShiftLeft),
		press(platform.KeyTab),
		release(platform.KeyTab),
		release(platform.KeyShiftLeft),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("backtab mismatch (-want +got):\n%s", diff)
	}

	got = tr.translate(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), now)
	if diff := cmp.Diff([]platform.Event{platform.CloseRequested{}}, got); diff != "" {
		t.Errorf("ctrl+c mismatch (-want +got):\n%s", diff)
	}
}

// TestTranslateMouse tests cursor movement, button diffing and wheel lines
func TestTranslateMouse(t *testing.T) {
	tr := newTranslator(0)
	now := time.Unix(100, 0)

	steps := []struct {
		name string
		ev   *tcell.EventMouse
		want []platform.Event
	}{
		{
			"press left",
			tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone),
			[]platform.Event{
				platform.CursorMoved{X: 3, Y: 4},
				platform.MouseInput{Button: platform.MouseLeft, State: platform.Pressed},
			},
		},
		{
			"drag with right added",
			tcell.NewEventMouse(5, 4, tcell.Button1|tcell.Button2, tcell.ModNone),
			[]platform.Event{
				platform.CursorMoved{X: 5, Y: 4},
				platform.MouseInput{Button: platform.MouseRight, State: platform.Pressed},
			},
		},
		{
			"release all",
			tcell.NewEventMouse(5, 4, tcell.ButtonNone, tcell.ModNone),
			[]platform.Event{
				platform.MouseInput{Button: platform.MouseLeft, State: platform.Released},
				platform.MouseInput{Button: platform.MouseRight, State: platform.Released},
			},
		},
		{
			"wheel",
			tcell.NewEventMouse(5, 4, tcell.WheelDown, tcell.ModNone),
			[]platform.Event{
				platform.MouseWheel{Delta: platform.LineDelta{Y: -1}},
			},
		},
		{
			"side button",
			tcell.NewEventMouse(5, 4, tcell.Button4, tcell.ModNone),
			[]platform.Event{
				platform.MouseInput{Button: platform.MouseOther + 1, State: platform.Pressed},
			},
		},
	}

	for _, s := range steps {
		got := tr.translate(s.ev, now)
		if diff := cmp.Diff(s.want, got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", s.name, diff)
		}
	}
}

// TestTranslatePaste tests bracketed paste buffering
func TestTranslatePaste(t *testing.T) {
	tr := newTranslator(0)
	now := time.Unix(100, 0)

	var got []platform.Event
	for _, ev := range []tcell.Event{
		tcell.NewEventPaste(true),
		tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
		tcell.NewEventPaste(false),
	} {
		got = append(got, tr.translate(ev, now)...)
	}

	want := []platform.Event{platform.Pasted{Text: "hi\n"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("paste mismatch (-want +got):\n%s", diff)
	}

	// Empty paste emits nothing
	tr.translate(tcell.NewEventPaste(true), now)
	if out := tr.translate(tcell.NewEventPaste(false), now); out != nil {
		t.Errorf("empty paste = %v, want nil", out)
	}
}

// TestTranslateWindowEvents tests resize, focus and interrupt payloads
func TestTranslateWindowEvents(t *testing.T) {
	tr := newTranslator(0)
	now := time.Unix(100, 0)

	tests := []struct {
		ev   tcell.Event
		want []platform.Event
	}{
		{tcell.NewEventResize(120, 40), []platform.Event{platform.Resized{Width: 120, Height: 40}}},
		{tcell.NewEventFocus(false), []platform.Event{platform.Focused{Focused: false}}},
		{tcell.NewEventInterrupt(redrawSignal{}), []platform.Event{platform.RedrawRequested{}}},
		{tcell.NewEventInterrupt(closeSignal{}), []platform.Event{platform.CloseRequested{}}},
		{tcell.NewEventInterrupt("foreign"), nil},
	}

	for _, tt := range tests {
		got := tr.translate(tt.ev, now)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%T mismatch (-want +got):\n%s", tt.ev, diff)
		}
	}
}

// TestSpecialKeyTable tests that every mapped tcell key resolves to a distinct key
func TestSpecialKeyTable(t *testing.T) {
	for k, want := range specialKeys {
		got, ch, _ := mapKey(tcell.NewEventKey(k, 0, tcell.ModNone))
		if got != want {
			t.Errorf("mapKey(%v) = %v, want %v", k, got, want)
		}
		if ch != 0 {
			t.Errorf("mapKey(%v) produced text %q", k, ch)
		}
	}
}
