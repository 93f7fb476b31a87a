package scenes

import (
	cfg "github.com/automoto/robotjump/config"
	"github.com/automoto/robotjump/shared/simconfig"
	"github.com/automoto/robotjump/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

// PollFrame reads the keyboard for the first players control schemes.
func PollFrame(players int) sim.Frame {
	frame := make(sim.Frame, players)
	for i := 0; i < players && i < len(cfg.Input.Schemes); i++ {
		var actions [simconfig.ActionCount]bool
		for actionID, keys := range cfg.Input.Schemes[i].Bindings {
			for _, key := range keys {
				if ebiten.IsKeyPressed(key) {
					actions[actionID] = true
				}
			}
		}
		frame[i] = actions
	}
	return frame
}
