// Package simconfig holds the tuning values and closed enums of the simulation.
// It must have zero dependencies on ebiten so the headless runner and the tests
// never link a graphics backend.
package simconfig

// ActionID represents a logical per-player action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionCount // Must be last - used for array sizing
)

func (a ActionID) String() string {
	switch a {
	case ActionMoveLeft:
		return "left"
	case ActionMoveRight:
		return "right"
	case ActionJump:
		return "jump"
	default:
		return "none"
	}
}

// ParseAction returns the action named by s, as printed by String.
func ParseAction(s string) (ActionID, bool) {
	for a := ActionMoveLeft; a < ActionCount; a++ {
		if a.String() == s {
			return a, true
		}
	}
	return ActionNone, false
}

// Move is the horizontal command a character carried out on its last tick.
type Move int

const (
	MoveIdle Move = iota
	MoveLeft
	MoveRight
)

func (m Move) String() string {
	switch m {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	default:
		return "idle"
	}
}

// JumpState is the vertical state machine of a character.
type JumpState int

const (
	Grounded JumpState = iota
	Jumping
	Falling
)

func (s JumpState) String() string {
	switch s {
	case Jumping:
		return "jumping"
	case Falling:
		return "falling"
	default:
		return "grounded"
	}
}

// SpriteFrame identifies which robot image a character shows.
type SpriteFrame int

const (
	FrameIdle SpriteFrame = iota
	FrameJump
	FrameWalk0
	FrameWalk1
	FrameWalk2
	FrameWalk3
	FrameWalk4
	FrameWalk5
	FrameWalk6
	FrameWalk7
	FrameCount
)

// WalkFrames is the number of frames in the walk cycle.
const WalkFrames = int(FrameWalk7-FrameWalk0) + 1

// CharacterConfig contains all character physics and geometry values.
type CharacterConfig struct {
	// Sprite box
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// Collision box: CollideInsetX is split evenly between left and right,
	// CollideTop is cut from the top only.
	CollideInsetX float64 `toml:"collide_inset_x"`
	CollideTop    float64 `toml:"collide_top"`

	// Feet probe is Width-FeetInset wide and 1 px tall, centred under the sprite.
	FeetInset float64 `toml:"feet_inset"`

	// Movement
	Speed float64 `toml:"speed"` // pixels per tick

	// Jump
	JumpStartVelocity float64 `toml:"jump_start_velocity"`
	JumpMass          float64 `toml:"jump_mass"`
	MaxForce          float64 `toml:"max_force"`
	Gravity           float64 `toml:"gravity"`      // pixels per tick while unsupported
	JumpOnHold        bool    `toml:"jump_on_hold"` // jump while the key is held instead of on press

	// Animation
	WalkTicksPerFrame int `toml:"walk_ticks_per_frame"`
}

// SimConfig contains simulation-wide values.
type SimConfig struct {
	TicksPerSecond int `toml:"ticks_per_second"`
	MaxPlayers     int `toml:"max_players"`

	// Broad-phase grid cell size
	CellSize int `toml:"cell_size"`
	// Margin added around the level bounds so edge walls at negative
	// coordinates still land inside the collision space.
	SpaceMargin float64 `toml:"space_margin"`
}

var (
	Character CharacterConfig
	Sim       SimConfig
)

func init() {
	Character = CharacterConfig{
		// Robot sprite size
		Width:  96,
		Height: 128,

		CollideInsetX: 26,
		CollideTop:    35,
		FeetInset:     54,

		Speed: 8,

		JumpStartVelocity: 10,
		JumpMass:          2,
		MaxForce:          20,
		Gravity:           15,
		JumpOnHold:        false,

		WalkTicksPerFrame: 2,
	}

	Sim = SimConfig{
		TicksPerSecond: 30,
		MaxPlayers:     4,
		CellSize:       32,
		SpaceMargin:    256,
	}
}
