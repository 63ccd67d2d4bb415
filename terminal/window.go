package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/strata/logging"
	"github.com/lixenwraith/strata/platform"
)

// DefaultEventBuffer is the capacity of the raw event channel
const DefaultEventBuffer = 256

// Options configures a terminal window
type Options struct {
	// Title is set as the terminal window title when supported
	Title string
	// Mouse enables mouse reporting
	Mouse bool
	// RepeatWindow overrides DefaultRepeatWindow
	RepeatWindow time.Duration
	// EventBuffer overrides DefaultEventBuffer
	EventBuffer int
	// MaxCells overrides DefaultMaxCells for the surface
	MaxCells int
}

// Window adapts a tcell screen to platform.Window.
//
// Architecture:
//   - Input goroutine: PollEvent -> translator -> events channel (sole sender)
//   - Redraw and signal requests travel through tcell's queue as interrupts so they
//     stay ordered with input
//   - Close finalizes the screen; PollEvent then returns nil and the channel closes
type Window struct {
	screen  tcell.Screen
	surface *Surface
	tr      *translator
	log     logging.Logger

	events chan platform.Event
	sigCh  chan os.Signal
	stopCh chan struct{}
	doneCh chan struct{}

	redrawPending atomic.Bool
	closeOnce     sync.Once

	mu   sync.RWMutex
	size platform.Size
}

// Open creates a screen on the controlling terminal
func Open(opts Options) (*Window, *Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, nil, fmt.Errorf("terminal: create screen: %w", err)
	}
	return New(screen, opts)
}

// New initializes screen and starts the input goroutine. The screen must not be
// initialized yet; tests pass a tcell simulation screen.
func New(screen tcell.Screen, opts Options) (*Window, *Surface, error) {
	if err := screen.Init(); err != nil {
		return nil, nil, fmt.Errorf("terminal: init screen: %w", err)
	}
	if opts.Mouse {
		screen.EnableMouse()
	}
	screen.EnableFocus()
	screen.EnablePaste()
	screen.HideCursor()
	if opts.Title != "" {
		screen.SetTitle(opts.Title)
	}

	buffer := opts.EventBuffer
	if buffer <= 0 {
		buffer = DefaultEventBuffer
	}

	w, h := screen.Size()
	win := &Window{
		screen:  screen,
		surface: newSurface(screen, opts.MaxCells),
		tr:      newTranslator(opts.RepeatWindow),
		log:     logging.Core(),
		events:  make(chan platform.Event, buffer),
		sigCh:   make(chan os.Signal, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		size:    platform.Size{Width: clampDim(w), Height: clampDim(h)},
	}

	signal.Notify(win.sigCh, syscall.SIGTERM, syscall.SIGHUP)
	win.Go(win.signalLoop)
	win.Go(win.pollLoop)

	win.log.Log(logging.LevelDebug, "terminal window opened", "size", win.size.String(), "colors", screen.Colors())
	return win, win.surface, nil
}

// Events returns the raw event stream; it closes after Close
func (w *Window) Events() <-chan platform.Event {
	return w.events
}

// Size returns the last reported terminal size in cells
func (w *Window) Size() platform.Size {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.size
}

// ScaleFactor is always 1: a cell is both the physical and the logical unit
func (w *Window) ScaleFactor() float64 {
	return 1
}

// RequestRedraw schedules one RedrawRequested. Requests made before the pending one is
// delivered are merged.
func (w *Window) RequestRedraw() {
	if !w.redrawPending.CompareAndSwap(false, true) {
		return
	}
	if err := w.screen.PostEvent(tcell.NewEventInterrupt(redrawSignal{})); err != nil {
		w.redrawPending.Store(false)
		w.log.Log(logging.LevelTrace, "redraw request dropped", "err", err)
	}
}

// Close restores the terminal and stops the input goroutine. Safe to call repeatedly.
func (w *Window) Close() error {
	w.closeOnce.Do(func() {
		signal.Stop(w.sigCh)
		close(w.stopCh)
		w.screen.Fini()
		<-w.doneCh
		w.log.Log(logging.LevelDebug, "terminal window closed")
	})
	return nil
}

// pollLoop reads tcell events until the screen is finalized
func (w *Window) pollLoop() {
	defer close(w.doneCh)
	defer close(w.events)

	for {
		ev := w.screen.PollEvent()
		if ev == nil {
			return
		}

		switch e := ev.(type) {
		case *tcell.EventResize:
			cw, ch := e.Size()
			w.mu.Lock()
			w.size = platform.Size{Width: clampDim(cw), Height: clampDim(ch)}
			w.mu.Unlock()
			w.surface.invalidate()
		case *tcell.EventInterrupt:
			if _, ok := e.Data().(redrawSignal); ok {
				w.redrawPending.Store(false)
			}
		}

		for _, raw := range w.tr.translate(ev, ev.When()) {
			select {
			case w.events <- raw:
			case <-w.stopCh:
				return
			}
		}
	}
}

// signalLoop turns termination signals into close requests
func (w *Window) signalLoop() {
	for {
		select {
		case <-w.stopCh:
			return
		case sig := <-w.sigCh:
			w.log.Log(logging.LevelInfo, "signal received", "signal", sig.String())
			if err := w.screen.PostEvent(tcell.NewEventInterrupt(closeSignal{})); err != nil {
				w.log.Log(logging.LevelWarn, "close request dropped", "err", err)
			}
		}
	}
}
