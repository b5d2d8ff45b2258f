package components

import (
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/yohamta/donburi"
)

// ControlsData is the per-player held state of every logical action for the
// current tick. Keyboard polling and the CPU controller both write here.
type ControlsData struct {
	Held [cfg.ActionCount]bool
}

func (c *ControlsData) Pressed(a cfg.ActionID) bool {
	return c.Held[a]
}

func (c *ControlsData) Clear() {
	c.Held = [cfg.ActionCount]bool{}
}

var Controls = donburi.NewComponentType[ControlsData]()
