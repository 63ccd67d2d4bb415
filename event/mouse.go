package event

import "strconv"

// MouseButton identifies a mouse button: Left, Right, Middle, or an extra button
// built with OtherButton
type MouseButton uint16

const (
	MouseLeft MouseButton = iota + 1
	MouseRight
	MouseMiddle

	mouseOtherBase MouseButton = 0x100
)

// OtherButton returns the extra button with backend index n
func OtherButton(n uint8) MouseButton {
	return mouseOtherBase + MouseButton(n)
}

// Other returns the extra button index and true when b is not Left/Right/Middle
func (b MouseButton) Other() (uint8, bool) {
	if b < mouseOtherBase {
		return 0, false
	}
	return uint8(b - mouseOtherBase), true
}

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseRight:
		return "Right"
	case MouseMiddle:
		return "Middle"
	}
	if n, ok := b.Other(); ok {
		return "Other(" + strconv.Itoa(int(n)) + ")"
	}
	return "None"
}
