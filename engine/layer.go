package engine

import (
	"github.com/lixenwraith/strata/event"
	"github.com/lixenwraith/strata/platform"
)

// Layer is a pluggable behaviour unit owned by a LayerStack from push until pop.
//
// Lifecycle: OnAttach runs exactly once before any OnUpdate/OnEvent, OnDetach exactly
// once when the layer leaves the stack. Contexts passed to hooks are only valid for
// the duration of the call.
type Layer interface {
	// Name identifies the layer in logs
	Name() string

	OnAttach(ctx *FrameContext)
	OnDetach(ctx *FrameContext)

	// OnUpdate runs once per redraw tick
	OnUpdate(ctx *FrameContext)

	// OnEvent returns true when the event is handled; later layers are not notified
	OnEvent(ctx *DispatchContext, ev event.Event) bool
}

// Renderer is implemented by layers that paint during the render path.
// Painting runs bottom-up (first layer first, newest overlay last) so overlays end on top.
type Renderer interface {
	OnRender(ctx *FrameContext, frame *platform.Frame)
}

// BaseLayer provides no-op hooks. Embed it and override what the layer needs.
type BaseLayer struct {
	LayerName string
}

func (b BaseLayer) Name() string                             { return b.LayerName }
func (BaseLayer) OnAttach(*FrameContext)                     {}
func (BaseLayer) OnDetach(*FrameContext)                     {}
func (BaseLayer) OnUpdate(*FrameContext)                     {}
func (BaseLayer) OnEvent(*DispatchContext, event.Event) bool { return false }
