package layers

import (
	"github.com/lixenwraith/strata/audio"
	"github.com/lixenwraith/strata/engine"
	"github.com/lixenwraith/strata/event"
)

// Clicker plays an audio cue for key and mouse presses. Auto-repeat and modifier
// keys are silent. Never consumes events. The player is borrowed; its owner closes it.
type Clicker struct {
	engine.BaseLayer
	player audio.Player
}

// NewClicker creates a clicker playing through p
func NewClicker(p audio.Player) *Clicker {
	return &Clicker{
		BaseLayer: engine.BaseLayer{LayerName: "Clicker"},
		player:    p,
	}
}

func (c *Clicker) OnEvent(_ *engine.DispatchContext, ev event.Event) bool {
	switch e := ev.(type) {
	case event.KeyPressed:
		if !e.Repeat && !e.Code.IsModifier() {
			c.player.Play(audio.CueClick)
		}
	case event.MouseButtonPressed:
		c.player.Play(audio.CueToggle)
	}
	return false
}
