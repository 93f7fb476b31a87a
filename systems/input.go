package systems

import (
	"github.com/automoto/robotjump/components"
	"github.com/automoto/robotjump/shared/simconfig"
	"github.com/yohamta/donburi"
)

// Actions is one player's pressed state for a tick, indexed by ActionID.
type Actions = [simconfig.ActionCount]bool

// ApplyInput pushes this tick's actions into every robot's input buffer. A robot
// with no entry in frame sees nothing pressed.
func ApplyInput(w donburi.World, frame map[int]Actions) {
	components.Input.Each(w, func(e *donburi.Entry) {
		idx := components.Character.Get(e).PlayerIndex
		components.Input.Get(e).Push(frame[idx])
	})
}
