package sim

import (
	"image/color"

	"github.com/automoto/robotjump/components"
	"github.com/automoto/robotjump/shared/geom"
	"github.com/automoto/robotjump/shared/simconfig"
	"github.com/yohamta/donburi"
)

// Character is a read-only copy of one robot's state after a tick.
type Character struct {
	PlayerIndex int
	X, Y        float64

	Sprite    geom.Rect
	Collision geom.Rect
	Feet      geom.Rect

	Jump      simconfig.JumpState
	JumpSpeed float64
	LastMove  simconfig.Move
	Frame     simconfig.SpriteFrame
	FlipX     bool

	Blocked    bool
	HeadBumped bool
	Landed     bool
}

// Block is a read-only copy of one level block.
type Block struct {
	Rect  geom.Rect
	Color color.RGBA
}

func snapshotCharacter(e *donburi.Entry) Character {
	c := components.Character.Get(e)
	sprite := components.Sprite.Get(e)
	return Character{
		PlayerIndex: c.PlayerIndex,
		X:           c.X,
		Y:           c.Y,
		Sprite:      c.SpriteBox(),
		Collision:   c.CollisionBox(),
		Feet:        c.FeetProbe(),
		Jump:        c.Jump,
		JumpSpeed:   c.JumpSpeed,
		LastMove:    c.LastMove,
		Frame:       sprite.Frame,
		FlipX:       sprite.FlipX,
		Blocked:     c.Blocked,
		HeadBumped:  c.HeadBumped,
		Landed:      c.Landed,
	}
}
