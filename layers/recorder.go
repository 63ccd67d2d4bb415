package layers

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lixenwraith/strata/engine"
	"github.com/lixenwraith/strata/event"
	"github.com/lixenwraith/strata/logging"
)

// ErrUnknownType is returned for a filter name that matches no event type
var ErrUnknownType = errors.New("unknown event type")

// Recorder writes one trace line per event: seconds since attach and the event's
// String form. It never consumes events; push it as the newest overlay
// to see everything.
type Recorder struct {
	engine.BaseLayer

	w      io.Writer
	filter map[event.Type]bool
	clock  engine.Clock
	start  time.Time
	lines  int
	failed bool
}

// NewRecorder creates a recorder writing to w. types restricts recording to the
// named event types (case-insensitive); empty records all.
func NewRecorder(w io.Writer, types []string) (*Recorder, error) {
	r := &Recorder{
		BaseLayer: engine.BaseLayer{LayerName: "Recorder"},
		w:         w,
		clock:     engine.SystemClock{},
	}
	for _, name := range types {
		if strings.TrimSpace(name) == "" {
			continue
		}
		t, ok := event.TypeByName(name)
		if !ok {
			return nil, fmt.Errorf("recorder filter %q: %w", name, ErrUnknownType)
		}
		if r.filter == nil {
			r.filter = make(map[event.Type]bool)
		}
		r.filter[t] = true
	}
	return r, nil
}

// SetClock replaces the time source, mainly for tests
func (r *Recorder) SetClock(c engine.Clock) {
	r.clock = c
}

// OnAttach starts the trace clock
func (r *Recorder) OnAttach(*engine.FrameContext) {
	r.start = r.clock.Now()
}

// OnEvent writes the trace line and passes the event on
func (r *Recorder) OnEvent(_ *engine.DispatchContext, ev event.Event) bool {
	if r.failed || (r.filter != nil && !r.filter[ev.Type()]) {
		return false
	}

	if _, err := fmt.Fprintf(r.w, "%10.3f %s\n", r.clock.Now().Sub(r.start).Seconds(), ev); err != nil {
		// Report once, then stop writing
		r.failed = true
		logging.App().Log(logging.LevelError, "trace write failed", "err", err)
		return false
	}
	r.lines++
	return false
}

// Lines returns the number of trace lines written
func (r *Recorder) Lines() int {
	return r.lines
}
