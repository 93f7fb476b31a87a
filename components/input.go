package components

import (
	"github.com/automoto/robotjump/shared/simconfig"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed     bool // Currently held down
	JustPressed bool // Pressed this tick
}

// InputData stores the current and previous tick's pressed state for one player.
// JustPressed is computed on demand by comparing ticks.
type InputData struct {
	Current  [simconfig.ActionCount]bool
	Previous [simconfig.ActionCount]bool
}

// Push swaps buffers: current becomes previous, then actions becomes current.
func (in *InputData) Push(actions [simconfig.ActionCount]bool) {
	in.Previous = in.Current
	in.Current = actions
}

// Action returns the full ActionState for an action ID.
func (in *InputData) Action(id simconfig.ActionID) ActionState {
	curr := in.Current[id]
	prev := in.Previous[id]
	return ActionState{
		Pressed:     curr,
		JustPressed: curr && !prev,
	}
}

var Input = donburi.NewComponentType[InputData]()
