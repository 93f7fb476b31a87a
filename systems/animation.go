package systems

import (
	"github.com/automoto/robotjump/components"
	"github.com/automoto/robotjump/shared/simconfig"
	"github.com/automoto/robotjump/tags"
	"github.com/yohamta/donburi"
)

// UpdateAnimation picks each robot's sprite frame from its last move.
func UpdateAnimation(w donburi.World) {
	tags.Character.Each(w, func(e *donburi.Entry) {
		c := components.Character.Get(e)
		components.Sprite.SetValue(e, SpriteFor(c))
	})
}

// SpriteFor maps a character's state to the frame it shows. A jump faces left
// only when the last move was left; idle always faces right.
func SpriteFor(c *components.CharacterData) components.SpriteData {
	left := c.LastMove == simconfig.MoveLeft
	switch {
	case c.IsJumping():
		return components.SpriteData{Frame: simconfig.FrameJump, FlipX: left}
	case c.LastMove == simconfig.MoveIdle:
		return components.SpriteData{Frame: simconfig.FrameIdle}
	default:
		return components.SpriteData{Frame: WalkFrame(c.RepeatCount, c.Config.WalkTicksPerFrame), FlipX: left}
	}
}

// WalkFrame returns the walk cycle frame shown after repeat ticks of walking.
func WalkFrame(repeat, ticksPerFrame int) simconfig.SpriteFrame {
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	return simconfig.FrameWalk0 + simconfig.SpriteFrame((repeat/ticksPerFrame)%simconfig.WalkFrames)
}
