package components

import (
	"github.com/automoto/robotjump/shared/simconfig"
	"github.com/yohamta/donburi"
)

// SpriteData is everything the renderer needs to pick a robot image.
type SpriteData struct {
	Frame simconfig.SpriteFrame
	FlipX bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
