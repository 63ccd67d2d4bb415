package event

import (
	"fmt"
	"strconv"
)

// Type identifies an event variant
type Type uint8

const (
	// === Window Events ===

	// TypeWindowClose requests the window to close
	// Source: CloseRequested | Payload: none
	TypeWindowClose Type = iota + 1

	// TypeWindowResize reports a new drawable size
	// Source: Resized | Payload: Width, Height
	TypeWindowResize

	// TypeWindowFocusGained reports keyboard focus gained
	// Source: Focused{true} | Payload: none
	TypeWindowFocusGained

	// TypeWindowFocusLost reports keyboard focus lost
	// Source: Focused{false} | Payload: none
	TypeWindowFocusLost

	// TypeWindowMoved reports a new window position
	// Source: Moved | Payload: X, Y
	TypeWindowMoved

	// TypeWindowScaleChanged reports a new scale factor
	// Source: ScaleFactorChanged | Payload: Factor
	TypeWindowScaleChanged

	// === Application Events ===
	// Never produced by conversion; hosts inject them through Runner.Dispatch

	TypeAppTick
	TypeAppUpdate
	TypeAppRender

	// === Keyboard Events ===

	// TypeKeyPressed reports a key press or auto-repeat
	// Source: KeyboardInput{Pressed} | Payload: Code, Repeat
	TypeKeyPressed

	// TypeKeyReleased reports a key release
	// Source: KeyboardInput{Released} | Payload: Code
	TypeKeyReleased

	// TypeKeyTyped carries produced text
	// Source: ReceivedCharacter | Payload: Char
	TypeKeyTyped

	// === Mouse Events ===

	// TypeMouseButtonPressed | Source: MouseInput{Pressed} | Payload: Button
	TypeMouseButtonPressed

	// TypeMouseButtonReleased | Source: MouseInput{Released} | Payload: Button
	TypeMouseButtonReleased

	// TypeMouseMoved reports the cursor in logical coordinates
	// Source: CursorMoved | Payload: X, Y
	TypeMouseMoved

	// TypeMouseScrolled reports a scroll offset in logical pixels
	// Source: MouseWheel | Payload: DX, DY
	TypeMouseScrolled
)

// Category is a bitmask grouping event types
type Category uint8

const (
	CategoryNone        Category = 0
	CategoryApplication Category = 1 << 0
	CategoryWindow      Category = 1 << 1
	CategoryInput       Category = 1 << 2
	CategoryKeyboard    Category = 1 << 3
	CategoryMouse       Category = 1 << 4
	CategoryMouseButton Category = 1 << 5
)

// Event is a normalized, immutable occurrence.
// Implementations are the value types in this file; the set is closed.
type Event interface {
	Type() Type
	Category() Category
	String() string
	sealed()
}

// In reports whether ev belongs to any category in mask
func In(ev Event, mask Category) bool {
	return ev.Category()&mask != 0
}

// WindowClose requests the window to close
type WindowClose struct{}

// WindowResize carries the new size
type WindowResize struct {
	Width, Height uint32
}

// WindowFocusGained reports focus gained
type WindowFocusGained struct{}

// WindowFocusLost reports focus lost
type WindowFocusLost struct{}

// WindowMoved carries the new window position
type WindowMoved struct {
	X, Y float32
}

// WindowScaleChanged carries the new scale factor
type WindowScaleChanged struct {
	Factor float64
}

// AppTick is a host-driven fixed tick
type AppTick struct{}

// AppUpdate is a host-driven update notification
type AppUpdate struct{}

// AppRender is a host-driven render notification
type AppRender struct{}

// KeyPressed reports a key press; Repeat is set for auto-repeat
type KeyPressed struct {
	Code   KeyCode
	Repeat bool
}

// KeyReleased reports a key release
type KeyReleased struct {
	Code KeyCode
}

// KeyTyped carries one character of text input
type KeyTyped struct {
	Char rune
}

// MouseButtonPressed reports a mouse button press
type MouseButtonPressed struct {
	Button MouseButton
}

// MouseButtonReleased reports a mouse button release
type MouseButtonReleased struct {
	Button MouseButton
}

// MouseMoved carries the cursor position in logical coordinates
type MouseMoved struct {
	X, Y float32
}

// MouseScrolled carries a scroll offset in logical pixels
type MouseScrolled struct {
	DX, DY float32
}

func (WindowClose) Type() Type         { return TypeWindowClose }
func (WindowResize) Type() Type        { return TypeWindowResize }
func (WindowFocusGained) Type() Type   { return TypeWindowFocusGained }
func (WindowFocusLost) Type() Type     { return TypeWindowFocusLost }
func (WindowMoved) Type() Type         { return TypeWindowMoved }
func (WindowScaleChanged) Type() Type  { return TypeWindowScaleChanged }
func (AppTick) Type() Type             { return TypeAppTick }
func (AppUpdate) Type() Type           { return TypeAppUpdate }
func (AppRender) Type() Type           { return TypeAppRender }
func (KeyPressed) Type() Type          { return TypeKeyPressed }
func (KeyReleased) Type() Type         { return TypeKeyReleased }
func (KeyTyped) Type() Type            { return TypeKeyTyped }
func (MouseButtonPressed) Type() Type  { return TypeMouseButtonPressed }
func (MouseButtonReleased) Type() Type { return TypeMouseButtonReleased }
func (MouseMoved) Type() Type          { return TypeMouseMoved }
func (MouseScrolled) Type() Type       { return TypeMouseScrolled }

func (WindowClose) Category() Category        { return CategoryWindow }
func (WindowResize) Category() Category       { return CategoryWindow }
func (WindowFocusGained) Category() Category  { return CategoryWindow }
func (WindowFocusLost) Category() Category    { return CategoryWindow }
func (WindowMoved) Category() Category        { return CategoryWindow }
func (WindowScaleChanged) Category() Category { return CategoryWindow }
func (AppTick) Category() Category            { return CategoryApplication }
func (AppUpdate) Category() Category          { return CategoryApplication }
func (AppRender) Category() Category          { return CategoryApplication }
func (KeyPressed) Category() Category         { return CategoryInput | CategoryKeyboard }
func (KeyReleased) Category() Category        { return CategoryInput | CategoryKeyboard }
func (KeyTyped) Category() Category           { return CategoryInput | CategoryKeyboard }
func (MouseButtonPressed) Category() Category {
	return CategoryInput | CategoryMouse | CategoryMouseButton
}
func (MouseButtonReleased) Category() Category {
	return CategoryInput | CategoryMouse | CategoryMouseButton
}
func (MouseMoved) Category() Category    { return CategoryInput | CategoryMouse }
func (MouseScrolled) Category() Category { return CategoryInput | CategoryMouse }

func (WindowClose) String() string       { return "WindowClose" }
func (WindowFocusGained) String() string { return "WindowFocusGained" }
func (WindowFocusLost) String() string   { return "WindowFocusLost" }
func (AppTick) String() string           { return "AppTick" }
func (AppUpdate) String() string         { return "AppUpdate" }
func (AppRender) String() string         { return "AppRender" }
func (e WindowResize) String() string    { return fmt.Sprintf("WindowResize: %dx%d", e.Width, e.Height) }
func (e WindowMoved) String() string     { return "WindowMoved: " + pair(e.X, e.Y) }
func (e WindowScaleChanged) String() string {
	return "WindowScaleChanged: " + strconv.FormatFloat(e.Factor, 'f', -1, 64)
}
func (e KeyPressed) String() string {
	if e.Repeat {
		return "KeyPressed: " + e.Code.String() + " (repeat)"
	}
	return "KeyPressed: " + e.Code.String()
}
func (e KeyReleased) String() string         { return "KeyReleased: " + e.Code.String() }
func (e KeyTyped) String() string            { return "KeyTyped: " + strconv.QuoteRune(e.Char) }
func (e MouseButtonPressed) String() string  { return "MouseButtonPressed: " + e.Button.String() }
func (e MouseButtonReleased) String() string { return "MouseButtonReleased: " + e.Button.String() }
func (e MouseMoved) String() string          { return "MouseMoved: " + pair(e.X, e.Y) }
func (e MouseScrolled) String() string       { return "MouseScrolled: " + pair(e.DX, e.DY) }

func (WindowClose) sealed()         {}
func (WindowResize) sealed()        {}
func (WindowFocusGained) sealed()   {}
func (WindowFocusLost) sealed()     {}
func (WindowMoved) sealed()         {}
func (WindowScaleChanged) sealed()  {}
func (AppTick) sealed()             {}
func (AppUpdate) sealed()           {}
func (AppRender) sealed()           {}
func (KeyPressed) sealed()          {}
func (KeyReleased) sealed()         {}
func (KeyTyped) sealed()            {}
func (MouseButtonPressed) sealed()  {}
func (MouseButtonReleased) sealed() {}
func (MouseMoved) sealed()          {}
func (MouseScrolled) sealed()       {}

// pair formats two float32 values with the shortest exact representation
func pair(a, b float32) string {
	return strconv.FormatFloat(float64(a), 'f', -1, 32) + ", " + strconv.FormatFloat(float64(b), 'f', -1, 32)
}
