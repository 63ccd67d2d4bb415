package engine

import (
	"fmt"

	"github.com/lixenwraith/strata/event"
	"github.com/lixenwraith/strata/platform"
)

// fakeWindow feeds raw notifications from a buffered channel
type fakeWindow struct {
	events   chan platform.Event
	size     platform.Size
	scale    float64
	redraws  int
	closed   bool
	autoDraw bool // when set, RequestRedraw enqueues RedrawRequested
}

func newFakeWindow(w, h uint32) *fakeWindow {
	return &fakeWindow{
		events: make(chan platform.Event, 64),
		size:   platform.Size{Width: w, Height: h},
		scale:  1,
	}
}

func (w *fakeWindow) Events() <-chan platform.Event { return w.events }
func (w *fakeWindow) Size() platform.Size           { return w.size }
func (w *fakeWindow) ScaleFactor() float64          { return w.scale }
func (w *fakeWindow) Close() error                  { w.closed = true; return nil }

func (w *fakeWindow) RequestRedraw() {
	w.redraws++
	if w.autoDraw {
		select {
		case w.events <- platform.RedrawRequested{}:
		default:
		}
	}
}

// fakeSurface records surface calls and can fail the next acquisitions
type fakeSurface struct {
	configured []platform.Size
	acquired   int
	presented  []*platform.Frame
	failures   []error
	size       platform.Size
}

func (s *fakeSurface) Configure(size platform.Size) {
	s.size = size
	s.configured = append(s.configured, size)
}

func (s *fakeSurface) AcquireFrame() (*platform.Frame, error) {
	s.acquired++
	if len(s.failures) > 0 {
		err := s.failures[0]
		s.failures = s.failures[1:]
		return nil, err
	}
	return platform.NewFrame(int(s.size.Width), int(s.size.Height)), nil
}

func (s *fakeSurface) Present(frame *platform.Frame) {
	s.presented = append(s.presented, frame)
}

// callLog collects hook invocations across layers in call order
type callLog struct {
	calls []string
}

func (c *callLog) add(format string, args ...any) {
	c.calls = append(c.calls, fmt.Sprintf(format, args...))
}

// probeLayer records every hook call and optionally handles events
type probeLayer struct {
	name    string
	log     *callLog
	handles func(ev event.Event) bool
	onEvent func(ctx *DispatchContext, ev event.Event)

	attached, detached int
	updates, events    int
	lastFrame          *FrameContext
}

func newProbe(name string, log *callLog) *probeLayer {
	return &probeLayer{name: name, log: log}
}

func (p *probeLayer) Name() string { return p.name }

func (p *probeLayer) OnAttach(ctx *FrameContext) {
	p.attached++
	p.log.add("%s.attach", p.name)
}

func (p *probeLayer) OnDetach(ctx *FrameContext) {
	p.detached++
	p.log.add("%s.detach", p.name)
}

func (p *probeLayer) OnUpdate(ctx *FrameContext) {
	p.updates++
	p.lastFrame = ctx
	p.log.add("%s.update", p.name)
}

func (p *probeLayer) OnEvent(ctx *DispatchContext, ev event.Event) bool {
	p.events++
	p.log.add("%s.event(%s)", p.name, ev)
	if p.onEvent != nil {
		p.onEvent(ctx, ev)
	}
	return p.handles != nil && p.handles(ev)
}

// paintLayer draws its initial into cell (0,0) and records render order
type paintLayer struct {
	BaseLayer
	mark rune
	log  *callLog
}

func (p *paintLayer) OnRender(ctx *FrameContext, frame *platform.Frame) {
	p.log.add("%s.render", p.LayerName)
	frame.Set(0, 0, p.mark, platform.RGB{}, platform.RGB{}, platform.AttrNone)
}

// hostProbe records host-level handler calls
type hostProbe struct {
	closes  int
	resizes []platform.Size
	exit    bool
}

func (h *hostProbe) OnWindowClose(ctx *DispatchContext) {
	h.closes++
	if h.exit {
		ctx.Exit()
	}
}

func (h *hostProbe) OnWindowResize(ctx *DispatchContext, size platform.Size) {
	h.resizes = append(h.resizes, size)
	ctx.Resize(size)
}
