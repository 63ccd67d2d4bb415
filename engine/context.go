package engine

import (
	"errors"
	"time"

	"github.com/lixenwraith/strata/logging"
	"github.com/lixenwraith/strata/platform"
	"github.com/lixenwraith/strata/status"
)

// ErrContextReleased is the panic value raised when a context is used after the hook
// that received it has returned
var ErrContextReleased = errors.New("engine: context used after its hook returned")

// FrameContext is passed to OnAttach, OnDetach, OnUpdate and OnRender.
// It is created fresh for one call and released when the call returns.
type FrameContext struct {
	delta    time.Duration
	app      *application
	released bool
}

func newFrameContext(delta time.Duration, app *application) *FrameContext {
	if delta < 0 {
		delta = 0
	}
	return &FrameContext{delta: delta, app: app}
}

func (c *FrameContext) check() {
	if c.released {
		panic(ErrContextReleased)
	}
}

func (c *FrameContext) release() {
	c.released = true
}

// DeltaTime returns the time elapsed since the previous loop iteration, never negative
func (c *FrameContext) DeltaTime() time.Duration {
	c.check()
	return c.delta
}

// Size returns the last configured surface size
func (c *FrameContext) Size() platform.Size {
	c.check()
	return c.app.size
}

// ScaleFactor returns the window scale factor
func (c *FrameContext) ScaleFactor() float64 {
	c.check()
	return c.app.window.ScaleFactor()
}

// Resize reconfigures the surface for size
func (c *FrameContext) Resize(size platform.Size) {
	c.check()
	c.app.resize(size)
}

// Exit requests loop termination at the end of the current iteration.
// No effect before the loop starts (e.g. while configuring the initial stack).
func (c *FrameContext) Exit() {
	c.check()
	c.app.requestExit()
}

// Stats returns the engine metrics registry
func (c *FrameContext) Stats() *status.Registry {
	c.check()
	return c.app.stats
}

// DispatchContext is passed to OnEvent and to host handlers for one event. It adds
// stack mutation to FrameContext; pushes and pops run the matching lifecycle hook
// before returning.
type DispatchContext struct {
	FrameContext
	stack *LayerStack
}

func newDispatchContext(delta time.Duration, app *application, stack *LayerStack) *DispatchContext {
	if delta < 0 {
		delta = 0
	}
	return &DispatchContext{
		FrameContext: FrameContext{delta: delta, app: app},
		stack:        stack,
	}
}

// PushLayer attaches l and inserts it at the layer/overlay boundary
func (c *DispatchContext) PushLayer(l Layer) LayerID {
	c.check()
	c.hook(l.OnAttach)
	id := c.stack.PushLayer(l)
	c.app.syncLayerCount(c.stack)
	c.app.log.Log(logging.LevelDebug, "layer pushed", "id", uint64(id), "name", l.Name())
	return id
}

// PushOverlay attaches l and appends it as the newest overlay
func (c *DispatchContext) PushOverlay(l Layer) LayerID {
	c.check()
	c.hook(l.OnAttach)
	id := c.stack.PushOverlay(l)
	c.app.syncLayerCount(c.stack)
	c.app.log.Log(logging.LevelDebug, "overlay pushed", "id", uint64(id), "name", l.Name())
	return id
}

// PopLayer removes and detaches the layer with id. Ownership passes to the caller.
func (c *DispatchContext) PopLayer(id LayerID) (Layer, bool) {
	c.check()
	l, ok := c.stack.PopLayer(id)
	if !ok {
		return nil, false
	}
	c.detached(id, l)
	return l, true
}

// PopOverlay removes and detaches the overlay with id
func (c *DispatchContext) PopOverlay(id LayerID) (Layer, bool) {
	c.check()
	l, ok := c.stack.PopOverlay(id)
	if !ok {
		return nil, false
	}
	c.detached(id, l)
	return l, true
}

// Layers returns the number of stack entries
func (c *DispatchContext) Layers() int {
	c.check()
	return c.stack.Len()
}

func (c *DispatchContext) detached(id LayerID, l Layer) {
	c.hook(l.OnDetach)
	c.app.syncLayerCount(c.stack)
	c.app.log.Log(logging.LevelDebug, "layer popped", "id", uint64(id), "name", l.Name())
}

// hook runs fn with a fresh FrameContext sharing this dispatch's timing
func (c *DispatchContext) hook(fn func(*FrameContext)) {
	fc := newFrameContext(c.delta, c.app)
	defer fc.release()
	fn(fc)
}
