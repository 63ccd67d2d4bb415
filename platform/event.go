package platform

import "fmt"

// Event is a raw notification emitted by a Window.
// The set is closed: only types declared in this file implement it.
type Event interface {
	platformEvent()
}

// ElementState is the pressed/released state of a key or button
type ElementState uint8

const (
	Pressed ElementState = iota
	Released
)

// String returns the state name
func (s ElementState) String() string {
	if s == Pressed {
		return "Pressed"
	}
	return "Released"
}

// CloseRequested is sent when the user or the system asks the window to close
type CloseRequested struct{}

// Resized carries the new physical size of the drawable area
type Resized struct {
	Width, Height uint32
}

// Focused reports focus gained (true) or lost (false)
type Focused struct {
	Focused bool
}

// Moved carries the new physical position of the window
type Moved struct {
	X, Y int32
}

// ScaleFactorChanged reports a new physical-per-logical pixel ratio
type ScaleFactorChanged struct {
	ScaleFactor float64
}

// KeyboardInput is a key transition. Key is KeyUnidentified when the backend could
// not map the physical key.
type KeyboardInput struct {
	Key    Key
	State  ElementState
	Repeat bool
}

// ReceivedCharacter carries text produced by the keyboard
type ReceivedCharacter struct {
	Char rune
}

// MouseInput is a mouse button transition
type MouseInput struct {
	Button MouseButton
	State  ElementState
}

// CursorMoved carries the cursor position in physical pixels
type CursorMoved struct {
	X, Y float64
}

// ScrollDelta is either LineDelta or PixelDelta
type ScrollDelta interface {
	scrollDelta()
}

// LineDelta is a scroll amount in lines/rows
type LineDelta struct {
	X, Y float32
}

// PixelDelta is a scroll amount in physical pixels
type PixelDelta struct {
	X, Y float64
}

// MouseWheel carries a scroll delta
type MouseWheel struct {
	Delta ScrollDelta
}

// CursorEntered is sent when the cursor enters the window area
type CursorEntered struct{}

// CursorLeft is sent when the cursor leaves the window area
type CursorLeft struct{}

// Occluded reports whether the window is fully hidden
type Occluded struct {
	Occluded bool
}

// Pasted carries bracketed-paste text
type Pasted struct {
	Text string
}

// DroppedFile carries the path of a file dropped on the window
type DroppedFile struct {
	Path string
}

// RedrawRequested marks a redraw tick. Emitted in response to Window.RequestRedraw.
type RedrawRequested struct{}

func (CloseRequested) platformEvent()     {}
func (Resized) platformEvent()            {}
func (Focused) platformEvent()            {}
func (Moved) platformEvent()              {}
func (ScaleFactorChanged) platformEvent() {}
func (KeyboardInput) platformEvent()      {}
func (ReceivedCharacter) platformEvent()  {}
func (MouseInput) platformEvent()         {}
func (CursorMoved) platformEvent()        {}
func (MouseWheel) platformEvent()         {}
func (CursorEntered) platformEvent()      {}
func (CursorLeft) platformEvent()         {}
func (Occluded) platformEvent()           {}
func (Pasted) platformEvent()             {}
func (DroppedFile) platformEvent()        {}
func (RedrawRequested) platformEvent()    {}

func (LineDelta) scrollDelta()  {}
func (PixelDelta) scrollDelta() {}

// Kind returns a short name of the raw notification type, for diagnostics
func Kind(ev Event) string {
	switch ev.(type) {
	case nil:
		return "nil"
	case CloseRequested:
		return "CloseRequested"
	case Resized:
		return "Resized"
	case Focused:
		return "Focused"
	case Moved:
		return "Moved"
	case ScaleFactorChanged:
		return "ScaleFactorChanged"
	case KeyboardInput:
		return "KeyboardInput"
	case ReceivedCharacter:
		return "ReceivedCharacter"
	case MouseInput:
		return "MouseInput"
	case CursorMoved:
		return "CursorMoved"
	case MouseWheel:
		return "MouseWheel"
	case CursorEntered:
		return "CursorEntered"
	case CursorLeft:
		return "CursorLeft"
	case Occluded:
		return "Occluded"
	case Pasted:
		return "Pasted"
	case DroppedFile:
		return "DroppedFile"
	case RedrawRequested:
		return "RedrawRequested"
	default:
		return fmt.Sprintf("%T", ev)
	}
}
