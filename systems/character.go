package systems

import (
	"sort"

	"github.com/automoto/robotjump/components"
	"github.com/automoto/robotjump/shared/gamemath"
	"github.com/automoto/robotjump/shared/simconfig"
	"github.com/automoto/robotjump/tags"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// CharactersInOrder returns every robot sorted by player index.
func CharactersInOrder(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Character.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	sort.Slice(out, func(i, j int) bool {
		return components.Character.Get(out[i]).PlayerIndex < components.Character.Get(out[j]).PlayerIndex
	})
	return out
}

// UpdateCharacters advances every robot by one tick. Robots update in player
// index order, each one seeing the robots before it at their new positions.
func UpdateCharacters(w donburi.World) {
	for _, e := range CharactersInOrder(w) {
		updateCharacter(w, e)
		syncObject(w, e)
	}
}

func updateCharacter(w donburi.World, e *donburi.Entry) {
	c := components.Character.Get(e)
	input := components.Input.Get(e)

	c.Blocked, c.HeadBumped, c.Landed = false, false, false

	handleMovementInput(w, e, c, input)
	handleJumpInput(c, input)

	if c.IsJumping() {
		updateAscent(w, e, c)
		return
	}
	if _, ok := groundUnder(w, e, c); !ok {
		setY(w, e, c, c.Y+c.Config.Gravity)
	}
}

// handleMovementInput applies the horizontal command. Left and right together
// cancel out. A tick with neither a horizontal move nor jump held records an
// idle move.
func handleMovementInput(w donburi.World, e *donburi.Entry, c *components.CharacterData, input *components.InputData) {
	left := input.Action(simconfig.ActionMoveLeft).Pressed
	right := input.Action(simconfig.ActionMoveRight).Pressed
	jump := input.Action(simconfig.ActionJump).Pressed

	switch {
	case right && !left:
		setX(w, e, c, c.X+c.Config.Speed)
		c.ChangeLastMove(simconfig.MoveRight)
	case left && !right:
		setX(w, e, c, c.X-c.Config.Speed)
		c.ChangeLastMove(simconfig.MoveLeft)
	case !jump:
		c.ChangeLastMove(simconfig.MoveIdle)
	}
}

func handleJumpInput(c *components.CharacterData, input *components.InputData) {
	jump := input.Action(simconfig.ActionJump)
	triggered := jump.JustPressed
	if c.Config.JumpOnHold {
		triggered = jump.Pressed
	}
	if !triggered || c.Jump != simconfig.Grounded {
		return
	}
	c.Jump = simconfig.Jumping
	c.JumpSpeed = c.Config.JumpStartVelocity
	log.WithField("player", c.PlayerIndex).Debug("jump")
}

// updateAscent integrates one tick of a jump. JumpSpeed falls by one per tick,
// so the robot rises, stalls and then comes down under the same curve.
func updateAscent(w donburi.World, e *donburi.Entry, c *components.CharacterData) {
	force := gamemath.JumpForce(c.JumpSpeed, c.Config.JumpMass, c.Config.MaxForce)
	setY(w, e, c, c.Y-force)
	if !c.IsJumping() {
		return
	}
	c.JumpSpeed--
	if force > 0 {
		bumpHead(w, e, c)
	}
}
