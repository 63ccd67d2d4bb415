package terminal

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/strata/platform"
)

// DefaultMaxCells caps the frame allocation; larger configurations fail with
// platform.ErrOutOfMemory
const DefaultMaxCells = 1 << 20

// Surface adapts a tcell screen to platform.Surface. One frame buffer is reused
// across acquisitions.
type Surface struct {
	screen   tcell.Screen
	maxCells int
	size     platform.Size
	frame    *platform.Frame

	// stale is set by the input goroutine on terminal resize and cleared by Configure
	stale atomic.Bool
}

func newSurface(screen tcell.Screen, maxCells int) *Surface {
	if maxCells <= 0 {
		maxCells = DefaultMaxCells
	}
	return &Surface{screen: screen, maxCells: maxCells}
}

// Configure sizes the frame buffer and forces a full repaint on the next present
func (s *Surface) Configure(size platform.Size) {
	s.size = size
	s.stale.Store(false)

	if size.Area() > uint64(s.maxCells) {
		s.frame = nil
		return
	}
	w, h := int(size.Width), int(size.Height)
	if s.frame == nil || s.frame.Width != w || s.frame.Height != h {
		s.frame = platform.NewFrame(w, h)
	}
	s.screen.Sync()
}

// AcquireFrame returns the frame buffer for painting.
// ErrSurfaceLost after a terminal resize the caller has not configured for,
// ErrOutOfMemory when the configured size exceeds the cell cap.
func (s *Surface) AcquireFrame() (*platform.Frame, error) {
	if s.stale.Load() {
		return nil, platform.ErrSurfaceLost
	}
	if s.frame == nil {
		return nil, platform.ErrOutOfMemory
	}
	return s.frame, nil
}

// Present copies frame to the screen, clipped to the terminal, and shows it
func (s *Surface) Present(frame *platform.Frame) {
	sw, sh := s.screen.Size()
	w, h := min(frame.Width, sw), min(frame.Height, sh)

	for y := 0; y < h; y++ {
		row := frame.Cells[y*frame.Width : y*frame.Width+frame.Width]
		for x := 0; x < w; x++ {
			c := row[x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			s.screen.SetContent(x, y, r, nil, cellStyle(c))
		}
	}
	s.screen.Show()
}

func (s *Surface) invalidate() {
	s.stale.Store(true)
}
