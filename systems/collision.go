package systems

import (
	"github.com/automoto/robotjump/components"
	"github.com/automoto/robotjump/shared/geom"
	"github.com/automoto/robotjump/shared/simconfig"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// setX moves the character to sprite x and pushes it back out of anything its
// collision box now overlaps. On each side the tightest contact wins; when both
// sides are hit the right side takes precedence.
func setX(w donburi.World, e *donburi.Entry, c *components.CharacterData, x float64) {
	c.X = x
	box := c.CollisionBox()

	maxRight := box.Right()
	minLeft := box.Left()
	for _, o := range Obstacles(w, e, box) {
		if geom.RightContact(box, o.Rect) && o.Rect.Left() < maxRight {
			maxRight = o.Rect.Left()
		}
		if geom.LeftContact(box, o.Rect) && o.Rect.Right() > minLeft {
			minLeft = o.Rect.Right()
		}
	}

	switch {
	case maxRight < box.Right():
		c.X = c.SpriteXForCollisionRight(maxRight)
		c.Blocked = true
	case minLeft > box.Left():
		c.X = c.SpriteXForCollisionLeft(minLeft)
		c.Blocked = true
	}
	if c.Blocked {
		log.WithFields(log.Fields{
			"player": c.PlayerIndex,
			"x":      c.X,
		}).Trace("horizontal move clamped")
	}
}

// setY moves the character to sprite y and snaps it onto the first surface its
// feet probe touches. Without a surface the character is airborne. A downward
// move that pushes the collision box into a ledge beside the feet lands on that
// ledge instead.
func setY(w donburi.World, e *donburi.Entry, c *components.CharacterData, y float64) {
	from := c.CollisionBox().Bottom()
	c.Y = y
	under := Obstacles(w, e, c.FeetProbe())
	if len(under) > 0 {
		c.Y = under[0].Rect.Top() - c.Config.Height
		land(c)
	} else if c.Jump == simconfig.Grounded {
		c.Jump = simconfig.Falling
	}
	if c.CollisionBox().Bottom() > from {
		catchLedge(w, e, c, from, under)
	}
}

// groundUnder returns the first obstacle, in resolution order, under the feet.
func groundUnder(w donburi.World, e *donburi.Entry, c *components.CharacterData) (geom.Rect, bool) {
	obstacles := Obstacles(w, e, c.FeetProbe())
	if len(obstacles) == 0 {
		return geom.Rect{}, false
	}
	return obstacles[0].Rect, true
}

// catchLedge lands the character on the highest obstacle its collision box
// sank into this move, counting only tops at or below the box bottom it started
// from. Obstacles the feet probe touched were already settled by list order.
func catchLedge(w donburi.World, e *donburi.Entry, c *components.CharacterData, from float64, under []Obstacle) {
	top, hit := 0.0, false
	for _, o := range Obstacles(w, e, c.CollisionBox()) {
		if o.Rect.Top() < from || touchedBy(o, under) {
			continue
		}
		if !hit || o.Rect.Top() < top {
			top = o.Rect.Top()
		}
		hit = true
	}
	if !hit {
		return
	}
	c.Y = top - c.Config.Height
	land(c)
	log.WithFields(log.Fields{
		"player": c.PlayerIndex,
		"ledge":  top,
	}).Trace("caught on ledge")
}

func touchedBy(o Obstacle, under []Obstacle) bool {
	for _, u := range under {
		if u.Entry == o.Entry {
			return true
		}
	}
	return false
}

func land(c *components.CharacterData) {
	if c.Jump != simconfig.Grounded {
		log.WithFields(log.Fields{
			"player": c.PlayerIndex,
			"y":      c.Y,
		}).Debug("landed")
	}
	c.Jump = simconfig.Grounded
	c.JumpSpeed = c.Config.JumpStartVelocity
	c.Landed = true
}

// bumpHead ends an ascent when something overlaps the top of the collision box.
// The box is moved down to the lowest ceiling bottom so the robot never stays
// inside the obstacle it hit.
func bumpHead(w donburi.World, e *donburi.Entry, c *components.CharacterData) {
	box := c.CollisionBox()
	ceiling, hit := 0.0, false
	for _, o := range Obstacles(w, e, box) {
		if !geom.TopContact(box, o.Rect) {
			continue
		}
		if !hit || o.Rect.Bottom() > ceiling {
			ceiling = o.Rect.Bottom()
		}
		hit = true
	}
	if !hit {
		return
	}
	c.JumpSpeed = 0
	c.HeadBumped = true
	if ceiling > box.Top() {
		c.Y = c.SpriteYForCollisionTop(ceiling)
	}
	log.WithFields(log.Fields{
		"player":  c.PlayerIndex,
		"ceiling": ceiling,
	}).Debug("head bump")
}
