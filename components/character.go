package components

import (
	"github.com/automoto/robotjump/shared/geom"
	"github.com/automoto/robotjump/shared/simconfig"
	"github.com/yohamta/donburi"
)

// CharacterData is the simulated state of one robot. X and Y are the top-left
// corner of the sprite box; every other rectangle is derived from them.
type CharacterData struct {
	PlayerIndex int
	X, Y        float64
	Config      simconfig.CharacterConfig

	Jump      simconfig.JumpState
	JumpSpeed float64

	// Animation only, not physics
	LastMove    simconfig.Move
	RepeatCount int

	// Per-tick collision report
	Blocked    bool // horizontal move was clamped
	HeadBumped bool // ascent was truncated by a ceiling
	Landed     bool // feet probe found a surface this tick
}

// SpriteBox is the full image rectangle.
func (c *CharacterData) SpriteBox() geom.Rect {
	return geom.NewRect(c.X, c.Y, c.Config.Width, c.Config.Height)
}

// CollisionBox is the sprite box inset from both sides and the top.
func (c *CharacterData) CollisionBox() geom.Rect {
	w := c.Config.Width - c.Config.CollideInsetX
	edge := (c.Config.Width - w) / 2
	return geom.NewRect(c.X+edge, c.Y+c.Config.CollideTop, w, c.Config.Height-c.Config.CollideTop)
}

// FeetProbe is a 1 px strip directly under the sprite, narrower than it.
func (c *CharacterData) FeetProbe() geom.Rect {
	w := c.Config.Width - c.Config.FeetInset
	edge := (c.Config.Width - w) / 2
	return geom.NewRect(c.X+edge, c.Y+c.Config.Height, w, 1)
}

// SpriteXForCollisionRight returns the sprite x that puts the collision box's
// right edge at right.
func (c *CharacterData) SpriteXForCollisionRight(right float64) float64 {
	box := c.CollisionBox()
	rightBuffer := c.SpriteBox().Right() - box.Right()
	return right - c.Config.Width + rightBuffer
}

// SpriteXForCollisionLeft returns the sprite x that puts the collision box's
// left edge at left.
func (c *CharacterData) SpriteXForCollisionLeft(left float64) float64 {
	leftBuffer := c.CollisionBox().Left() - c.X
	return left - leftBuffer
}

// SpriteYForCollisionTop returns the sprite y that puts the collision box's top
// edge at top.
func (c *CharacterData) SpriteYForCollisionTop(top float64) float64 {
	return top - c.Config.CollideTop
}

func (c *CharacterData) IsJumping() bool { return c.Jump == simconfig.Jumping }

// ChangeLastMove records move, counting how many ticks in a row it repeated.
func (c *CharacterData) ChangeLastMove(move simconfig.Move) {
	if c.LastMove == move {
		c.RepeatCount++
		return
	}
	c.LastMove = move
	c.RepeatCount = 0
}

var Character = donburi.NewComponentType[CharacterData]()
