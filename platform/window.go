package platform

import (
	"errors"
	"fmt"
)

// Surface errors. AcquireFrame wraps one of these so callers can branch with errors.Is.
var (
	// ErrSurfaceLost means the surface no longer matches the window; reconfigure and retry
	ErrSurfaceLost = errors.New("surface lost")
	// ErrOutOfMemory means the frame storage could not be allocated; not recoverable
	ErrOutOfMemory = errors.New("surface out of memory")
	// ErrSurfaceTimeout means no frame became available in time; skip the frame
	ErrSurfaceTimeout = errors.New("surface timeout")
)

// Size is a drawable area size in physical units
type Size struct {
	Width, Height uint32
}

// String formats the size as WxH
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Area returns Width*Height
func (s Size) Area() uint64 {
	return uint64(s.Width) * uint64(s.Height)
}

// Window is the windowing/input collaborator
type Window interface {
	// Events returns the raw notification stream. Closed when the window goes away.
	Events() <-chan Event

	// Size returns the current physical size
	Size() Size

	// ScaleFactor returns physical pixels per logical pixel
	ScaleFactor() float64

	// RequestRedraw schedules a RedrawRequested notification. Requests coalesce.
	RequestRedraw()

	// Close releases the window. Safe to call more than once.
	Close() error
}

// Surface is the graphics-surface collaborator
type Surface interface {
	// Configure (re)allocates backing storage for the given size
	Configure(size Size)

	// AcquireFrame returns the next frame to draw into
	AcquireFrame() (*Frame, error)

	// Present displays a frame obtained from AcquireFrame
	Present(frame *Frame)
}
