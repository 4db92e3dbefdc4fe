package components

import (
	cfg "github.com/automoto/forward-fighter/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Sample shifts the current state into Previous and records pressed as the
// new current state.
func (d *InputData) Sample(pressed func(cfg.ActionID) bool) {
	d.Previous = d.Current
	for a := cfg.ActionID(0); a < cfg.ActionCount; a++ {
		d.Current[a] = pressed(a)
	}
}

func (d *InputData) Pressed(a cfg.ActionID) bool {
	return d.Current[a]
}

func (d *InputData) JustPressed(a cfg.ActionID) bool {
	return d.Current[a] && !d.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
