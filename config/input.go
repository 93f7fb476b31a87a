package config

import (
	"github.com/automoto/robotjump/shared/simconfig"
	"github.com/hajimehoshi/ebiten/v2"
)

// ControlScheme maps one player's actions to keyboard keys.
type ControlScheme struct {
	Name     string
	Bindings map[simconfig.ActionID][]ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	// Schemes is indexed by player index.
	Schemes []ControlScheme

	ToggleDebug      ebiten.Key
	ToggleFullscreen ebiten.Key
	NextLevel        ebiten.Key
	Restart          ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Schemes: []ControlScheme{
			{
				Name: "A D W",
				Bindings: map[simconfig.ActionID][]ebiten.Key{
					simconfig.ActionMoveLeft:  {ebiten.KeyA},
					simconfig.ActionMoveRight: {ebiten.KeyD},
					simconfig.ActionJump:      {ebiten.KeyW},
				},
			},
			{
				Name: "K ; O",
				Bindings: map[simconfig.ActionID][]ebiten.Key{
					simconfig.ActionMoveLeft:  {ebiten.KeyK},
					simconfig.ActionMoveRight: {ebiten.KeySemicolon},
					simconfig.ActionJump:      {ebiten.KeyO},
				},
			},
			{
				Name: "arrows",
				Bindings: map[simconfig.ActionID][]ebiten.Key{
					simconfig.ActionMoveLeft:  {ebiten.KeyArrowLeft},
					simconfig.ActionMoveRight: {ebiten.KeyArrowRight},
					simconfig.ActionJump:      {ebiten.KeyArrowUp},
				},
			},
			{
				Name: "numpad 4 6 8",
				Bindings: map[simconfig.ActionID][]ebiten.Key{
					simconfig.ActionMoveLeft:  {ebiten.KeyNumpad4},
					simconfig.ActionMoveRight: {ebiten.KeyNumpad6},
					simconfig.ActionJump:      {ebiten.KeyNumpad8},
				},
			},
		},
		ToggleDebug:      ebiten.KeyF1,
		ToggleFullscreen: ebiten.KeyF11,
		NextLevel:        ebiten.KeyTab,
		Restart:          ebiten.KeyR,
	}
}
