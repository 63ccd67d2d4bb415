package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/strata/event"
	"github.com/lixenwraith/strata/logging"
	"github.com/lixenwraith/strata/platform"
	"github.com/lixenwraith/strata/status"
)

// ErrAlreadyRunning is returned by Run when the loop is already active
var ErrAlreadyRunning = errors.New("engine: runner already running")

// Runner owns the event loop, the layer stack and the window/surface handles.
//
// Architecture:
//   - Single goroutine: every hook runs on the goroutine that called Run
//   - One DispatchContext per event, one FrameContext per hook call
//   - Exit requests are checked once per loop iteration
//
// Usage:
//  1. NewRunner(cfg, window, surface, host)
//  2. Configure(func(ctx) { ctx.PushLayer(...) })
//  3. Run() blocks until exit, window closure or a fatal surface error
type Runner struct {
	cfg   Config
	app   *application
	stack *LayerStack
	host  any
	clock Clock

	last          time.Time
	exitRequested bool
	running       bool
	fatal         error
}

// NewRunner creates a runner and configures the surface at the window's current size.
// host may implement CloseHandler and/or ResizeHandler; nil uses the defaults.
func NewRunner(cfg Config, window platform.Window, surface platform.Surface, host any, opts ...Option) *Runner {
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = DefaultFrameInterval
	}
	r := &Runner{
		cfg: cfg,
		app: &application{
			window:  window,
			surface: surface,
			size:    window.Size(),
			stats:   status.NewRegistry(),
			log:     logging.Core(),
		},
		stack: NewLayerStack(),
		host:  host,
		clock: SystemClock{},
	}
	for _, opt := range opts {
		opt(r)
	}

	r.app.surface.Configure(r.app.size)
	r.last = r.clock.Now()
	return r
}

// Stack exposes the layer stack for inspection. Mutate it through a DispatchContext.
func (r *Runner) Stack() *LayerStack {
	return r.stack
}

// Stats returns the metrics registry
func (r *Runner) Stats() *status.Registry {
	return r.app.stats
}

// Err returns the fatal error that stopped or would stop the loop
func (r *Runner) Err() error {
	return r.fatal
}

// Configure runs fn with a DispatchContext before the loop starts.
// Exit is a no-op inside fn because no control-flow sink is attached yet.
func (r *Runner) Configure(fn func(ctx *DispatchContext)) {
	ctx := newDispatchContext(0, r.app, r.stack)
	defer ctx.release()
	fn(ctx)
}

// Run pumps window notifications until an exit request, closure of the window's event
// stream, or a fatal surface error. Remaining layers are detached before returning.
func (r *Runner) Run() error {
	if r.running {
		return ErrAlreadyRunning
	}
	r.running = true
	r.exitRequested = false
	r.app.exit = &r.exitRequested
	defer func() {
		r.app.exit = nil
		r.running = false
		r.Shutdown()
	}()

	log := r.app.log
	log.Log(logging.LevelInfo, "event loop started", "size", r.app.size.String(), "layers", r.stack.Len())

	ticker := time.NewTicker(r.cfg.FrameInterval)
	defer ticker.Stop()

	events := r.app.window.Events()
	r.last = r.clock.Now()
	r.app.window.RequestRedraw()

	for {
		select {
		case raw, ok := <-events:
			if !ok {
				log.Log(logging.LevelInfo, "window event stream closed")
				return nil
			}
			r.Handle(raw)
		case <-ticker.C:
			r.app.window.RequestRedraw()
		}

		if r.fatal != nil {
			log.Log(logging.LevelError, "event loop terminated", "err", r.fatal)
			return r.fatal
		}
		if r.exitRequested {
			log.Log(logging.LevelInfo, "event loop exit requested")
			return nil
		}
	}
}

// Handle processes one raw notification: redraw ticks run the frame, everything else
// is converted and dispatched. Unsupported notifications are dropped.
func (r *Runner) Handle(raw platform.Event) {
	delta := r.tick()

	if _, ok := raw.(platform.RedrawRequested); ok {
		r.redraw(delta)
		return
	}

	ev, err := event.FromPlatform(raw, r.app.window.ScaleFactor())
	if err != nil {
		r.app.stats.Counter(status.EventsUnsupported).Add(1)
		r.app.log.Log(logging.LevelTrace, "raw event dropped", "err", err)
		return
	}
	r.dispatch(delta, ev)
}

// Dispatch delivers a normalized event as if it came from the window, e.g. host-driven
// AppTick. Returns true when a layer handled it.
func (r *Runner) Dispatch(ev event.Event) bool {
	return r.dispatch(r.tick(), ev)
}

// tick returns the time since the previous iteration and advances the mark
func (r *Runner) tick() time.Duration {
	now := r.clock.Now()
	delta := now.Sub(r.last)
	r.last = now
	if delta < 0 {
		return 0
	}
	return delta
}

func (r *Runner) dispatch(delta time.Duration, ev event.Event) bool {
	ctx := newDispatchContext(delta, r.app, r.stack)
	defer ctx.release()

	r.app.stats.Counter(status.EventsDispatched).Add(1)
	if r.app.log.Enabled(logging.LevelTrace) {
		r.app.log.Log(logging.LevelTrace, "dispatch", "event", ev.String())
	}

	// Host-level handling never vetoes the layer walk
	switch e := ev.(type) {
	case event.WindowClose:
		if h, ok := r.host.(CloseHandler); ok {
			h.OnWindowClose(ctx)
		} else {
			ctx.Exit()
		}
	case event.WindowResize:
		if h, ok := r.host.(ResizeHandler); ok {
			h.OnWindowResize(ctx, platform.Size{Width: e.Width, Height: e.Height})
		}
	}

	// Walk a snapshot so layers may push/pop during dispatch: popped entries are
	// skipped, pushed entries wait for the next event
	for _, id := range r.stack.DispatchOrder() {
		l, ok := r.stack.Get(id)
		if !ok {
			continue
		}
		if l.OnEvent(ctx, ev) {
			r.app.stats.Counter(status.EventsHandled).Add(1)
			return true
		}
	}
	return false
}

func (r *Runner) redraw(delta time.Duration) {
	start := r.clock.Now()

	if err := r.render(delta); err != nil {
		switch {
		case errors.Is(err, platform.ErrSurfaceLost):
			r.app.log.Log(logging.LevelWarn, "surface lost, reconfiguring", "size", r.app.size.String())
			r.app.stats.Counter(status.FramesSkipped).Add(1)
			r.app.resize(r.app.size)
		case errors.Is(err, platform.ErrOutOfMemory):
			r.fatal = fmt.Errorf("render: %w", err)
			return
		default:
			r.app.log.Log(logging.LevelError, "render failed, frame skipped", "err", err)
			r.app.stats.Counter(status.FramesSkipped).Add(1)
		}
	}

	for _, id := range r.stack.DispatchOrder() {
		l, ok := r.stack.Get(id)
		if !ok {
			continue
		}
		fc := newFrameContext(delta, r.app)
		l.OnUpdate(fc)
		fc.release()
	}

	r.app.stats.Gauge(status.FrameTimeMs).Set(float64(r.clock.Now().Sub(start).Microseconds()) / 1000)
}

// render acquires exactly one frame, lets Renderer layers paint bottom-up, and presents it
func (r *Runner) render(delta time.Duration) error {
	frame, err := r.app.surface.AcquireFrame()
	if err != nil {
		return err
	}
	frame.Clear(r.cfg.ClearColor)

	for i := 0; i < r.stack.Len(); i++ {
		_, l := r.stack.At(i)
		p, ok := l.(Renderer)
		if !ok {
			continue
		}
		fc := newFrameContext(delta, r.app)
		p.OnRender(fc, frame)
		fc.release()
	}

	r.app.surface.Present(frame)
	r.app.stats.Counter(status.FramesRendered).Add(1)
	return nil
}

// Shutdown detaches every remaining entry in dispatch order. Safe to call repeatedly.
func (r *Runner) Shutdown() {
	for _, id := range r.stack.DispatchOrder() {
		l, ok := r.stack.PopOverlay(id)
		if !ok {
			l, ok = r.stack.PopLayer(id)
		}
		if !ok {
			continue
		}
		fc := newFrameContext(0, r.app)
		l.OnDetach(fc)
		fc.release()
		r.app.log.Log(logging.LevelDebug, "layer detached on shutdown", "id", uint64(id), "name", l.Name())
	}
	r.app.syncLayerCount(r.stack)
}

// Run builds a Runner, applies configure, and runs the loop
func Run(cfg Config, window platform.Window, surface platform.Surface, host any, configure func(ctx *DispatchContext), opts ...Option) error {
	r := NewRunner(cfg, window, surface, host, opts...)
	if configure != nil {
		r.Configure(configure)
	}
	return r.Run()
}
