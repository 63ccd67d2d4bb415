package engine

import (
	"github.com/lixenwraith/strata/logging"
	"github.com/lixenwraith/strata/platform"
	"github.com/lixenwraith/strata/status"
)

// application is the host state lent to contexts. Layers reach it only through
// FrameContext/DispatchContext methods.
type application struct {
	window  platform.Window
	surface platform.Surface
	size    platform.Size
	stats   *status.Registry
	log     logging.Logger

	// exit is the control-flow sink; nil while the loop is not running
	exit *bool
}

// resize records the new size and reconfigures the surface
func (a *application) resize(size platform.Size) {
	a.size = size
	a.surface.Configure(size)
	a.stats.Counter(status.SurfaceReconfigured).Add(1)
	a.log.Log(logging.LevelDebug, "surface configured", "size", size.String())
}

// requestExit flags the loop for exit at the end of the current iteration
func (a *application) requestExit() {
	if a.exit == nil {
		a.log.Log(logging.LevelDebug, "exit requested outside the event loop, ignored")
		return
	}
	*a.exit = true
}

func (a *application) syncLayerCount(stack *LayerStack) {
	a.stats.Gauge(status.LayerCount).Set(float64(stack.Len()))
}
