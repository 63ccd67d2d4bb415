package event

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/strata/platform"
)

// LineScrollScale converts line-based scroll deltas into logical pixels.
// Pixel deltas pass through unscaled so consumers see a single unit.
const LineScrollScale = 20

// ErrUnsupported marks a raw notification with no normalized counterpart.
// Callers drop the notification; it is never fatal.
var ErrUnsupported = errors.New("unsupported event")

// FromPlatform converts one raw notification into an Event.
// scale is the window scale factor used to turn physical cursor positions into
// logical ones; values <= 0 are treated as 1.
// The function is pure: each call yields exactly one Event or an error wrapping ErrUnsupported.
func FromPlatform(raw platform.Event, scale float64) (Event, error) {
	if scale <= 0 {
		scale = 1
	}

	switch ev := raw.(type) {
	case platform.CloseRequested:
		return WindowClose{}, nil

	case platform.Resized:
		return WindowResize{Width: ev.Width, Height: ev.Height}, nil

	case platform.Focused:
		if ev.Focused {
			return WindowFocusGained{}, nil
		}
		return WindowFocusLost{}, nil

	case platform.Moved:
		return WindowMoved{X: float32(ev.X), Y: float32(ev.Y)}, nil

	case platform.ScaleFactorChanged:
		return WindowScaleChanged{Factor: ev.ScaleFactor}, nil

	case platform.KeyboardInput:
		code, ok := platformKeys[ev.Key]
		if !ok {
			return nil, unsupported(raw, "unmapped key %d", ev.Key)
		}
		if ev.State == platform.Pressed {
			return KeyPressed{Code: code, Repeat: ev.Repeat}, nil
		}
		return KeyReleased{Code: code}, nil

	case platform.ReceivedCharacter:
		return KeyTyped{Char: ev.Char}, nil

	case platform.MouseInput:
		button, ok := convertButton(ev.Button)
		if !ok {
			return nil, unsupported(raw, "unmapped button %d", ev.Button)
		}
		if ev.State == platform.Pressed {
			return MouseButtonPressed{Button: button}, nil
		}
		return MouseButtonReleased{Button: button}, nil

	case platform.CursorMoved:
		return MouseMoved{X: float32(ev.X / scale), Y: float32(ev.Y / scale)}, nil

	case platform.MouseWheel:
		switch d := ev.Delta.(type) {
		case platform.LineDelta:
			return MouseScrolled{DX: d.X * LineScrollScale, DY: d.Y * LineScrollScale}, nil
		case platform.PixelDelta:
			return MouseScrolled{DX: float32(d.X), DY: float32(d.Y)}, nil
		default:
			return nil, unsupported(raw, "unknown scroll delta %T", ev.Delta)
		}
	}

	return nil, unsupported(raw, "no normalized variant")
}

func convertButton(b platform.MouseButton) (MouseButton, bool) {
	switch {
	case b == platform.MouseLeft:
		return MouseLeft, true
	case b == platform.MouseRight:
		return MouseRight, true
	case b == platform.MouseMiddle:
		return MouseMiddle, true
	case b > platform.MouseOther && b-platform.MouseOther <= 0xff:
		return OtherButton(uint8(b - platform.MouseOther)), true
	}
	return 0, false
}

func unsupported(raw platform.Event, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrUnsupported, platform.Kind(raw), fmt.Sprintf(format, args...))
}
