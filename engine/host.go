package engine

import "github.com/lixenwraith/strata/platform"

// CloseHandler is implemented by hosts that decide what a close request does.
// Without it, a close request exits the loop.
type CloseHandler interface {
	OnWindowClose(ctx *DispatchContext)
}

// ResizeHandler is implemented by hosts that react to window resizes, typically by
// calling ctx.Resize. Without it, resizes are ignored at host level.
type ResizeHandler interface {
	OnWindowResize(ctx *DispatchContext, size platform.Size)
}

// HostFuncs adapts plain functions to the host handler interfaces.
// A nil field falls back to the default behaviour.
type HostFuncs struct {
	Close  func(ctx *DispatchContext)
	Resize func(ctx *DispatchContext, size platform.Size)
}

func (h HostFuncs) OnWindowClose(ctx *DispatchContext) {
	if h.Close == nil {
		ctx.Exit()
		return
	}
	h.Close(ctx)
}

func (h HostFuncs) OnWindowResize(ctx *DispatchContext, size platform.Size) {
	if h.Resize != nil {
		h.Resize(ctx, size)
	}
}
