package sim

import (
	"context"
	"testing"
	"time"

	"github.com/automoto/robotjump/shared/leveldata"
	"github.com/automoto/robotjump/shared/simconfig"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	floorTop = 480.0
	standY   = floorTop - 128 // sprite y of a robot standing on the floor
)

func flatLevel(extra ...leveldata.Block) *leveldata.Level {
	blocks := []leveldata.Block{
		leveldata.BlockFromBottom(0, 500, 800, 20, leveldata.Brown),
	}
	return &leveldata.Level{
		Name:   "flat",
		Width:  800,
		Height: 500,
		Blocks: append(blocks, extra...),
		SpawnPoints: []leveldata.SpawnPoint{
			{X: 100, Y: standY, Index: 0},
			{X: 500, Y: standY, Index: 1},
		},
	}
}

func newSim(t *testing.T, level *leveldata.Level, opts ...Option) *Simulation {
	t.Helper()
	s, err := New(level, opts...)
	require.NoError(t, err)
	return s
}

func player(t *testing.T, s *Simulation, idx int) Character {
	t.Helper()
	c, ok := s.Character(idx)
	require.True(t, ok)
	return c
}

func run(s *Simulation, ticks int, frame Frame) {
	for i := 0; i < ticks; i++ {
		s.Step(frame)
	}
}

func TestNew_Errors(t *testing.T) {
	t.Run("too many players", func(t *testing.T) {
		_, err := New(flatLevel(), WithPlayers(3))
		assert.ErrorIs(t, err, ErrTooManyPlayers)
	})

	t.Run("invalid block", func(t *testing.T) {
		level := flatLevel(leveldata.Block{X: 10, Y: 10, W: 0, H: 10})
		_, err := New(level)
		assert.ErrorIs(t, err, leveldata.ErrInvalidBlock)
	})

	t.Run("no spawns", func(t *testing.T) {
		level := flatLevel()
		level.SpawnPoints = nil
		_, err := New(level)
		assert.ErrorIs(t, err, leveldata.ErrNoSpawns)
	})

	t.Run("zero players", func(t *testing.T) {
		_, err := New(flatLevel(), WithPlayers(0))
		assert.Error(t, err)
	})

	t.Run("spawn inside a block", func(t *testing.T) {
		wall := leveldata.BlockFromBottom(0, floorTop, 120, 60, leveldata.Blue)
		_, err := New(flatLevel(wall))
		assert.ErrorIs(t, err, ErrSpawnBlocked)
	})

	badSim := []struct {
		name   string
		modify func(*simconfig.SimConfig)
	}{
		{"zero cell size", func(sc *simconfig.SimConfig) { sc.CellSize = 0 }},
		{"zero tick rate", func(sc *simconfig.SimConfig) { sc.TicksPerSecond = 0 }},
		{"negative space margin", func(sc *simconfig.SimConfig) { sc.SpaceMargin = -1 }},
	}
	for _, tt := range badSim {
		t.Run(tt.name, func(t *testing.T) {
			sc := simconfig.Sim
			tt.modify(&sc)
			_, err := New(flatLevel(), WithSimConfig(sc))
			assert.ErrorIs(t, err, simconfig.ErrInvalidTuning)
		})
	}

	badCharacter := []struct {
		name   string
		modify func(*simconfig.CharacterConfig)
	}{
		{"zero gravity", func(cc *simconfig.CharacterConfig) { cc.Gravity = 0 }},
		{"zero speed", func(cc *simconfig.CharacterConfig) { cc.Speed = 0 }},
		{"zero jump mass", func(cc *simconfig.CharacterConfig) { cc.JumpMass = 0 }},
		{"negative max force", func(cc *simconfig.CharacterConfig) { cc.MaxForce = -20 }},
	}
	for _, tt := range badCharacter {
		t.Run(tt.name, func(t *testing.T) {
			cc := simconfig.Character
			tt.modify(&cc)
			_, err := New(flatLevel(), WithCharacterConfig(cc))
			assert.ErrorIs(t, err, simconfig.ErrInvalidTuning)
		})
	}

	t.Run("tuning option", func(t *testing.T) {
		tuning := simconfig.DefaultTuning()
		tuning.Sim.CellSize = 0
		_, err := New(flatLevel(), WithTuning(tuning))
		assert.ErrorIs(t, err, simconfig.ErrInvalidTuning)
	})
}

func TestNew_SpawnsInPlayerOrder(t *testing.T) {
	level := flatLevel()
	s := newSim(t, level)
	assert.Same(t, level, s.Level())

	chars := s.Characters()
	require.Len(t, chars, 2)
	assert.Equal(t, 0, chars[0].PlayerIndex)
	assert.Equal(t, 100.0, chars[0].X)
	assert.Equal(t, 1, chars[1].PlayerIndex)
	assert.Equal(t, 500.0, chars[1].X)
	assert.Len(t, s.Blocks(), 1)
	assert.Zero(t, s.Tick())
}

func TestNew_RightAlignedSpawnFollowsWidth(t *testing.T) {
	cc := simconfig.Character
	cc.Width = 100
	s := newSim(t, leveldata.Walls(), WithCharacterConfig(cc))

	assert.Equal(t, 10.0, player(t, s, 0).X)
	assert.Equal(t, 700.0, player(t, s, 1).X)
	assert.Equal(t, 800.0, player(t, s, 1).Sprite.Right())
}

func TestNew_LogsMapName(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	newSim(t, flatLevel())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "simulation ready", entry.Message)
	assert.Equal(t, "flat", entry.Data["map"])
	assert.NotContains(t, entry.Data, "level")
}

func TestLanding_Idempotent(t *testing.T) {
	s := newSim(t, flatLevel(), WithPlayers(1))

	for i := 0; i < 10; i++ {
		s.Step(nil)
		c := player(t, s, 0)
		assert.Equal(t, standY, c.Y, "tick %d", i)
		assert.Equal(t, simconfig.Grounded, c.Jump)
	}
}

func TestFalling_SnapsOntoFloor(t *testing.T) {
	level := flatLevel()
	level.SpawnPoints = []leveldata.SpawnPoint{{X: 100, Y: 10}}
	s := newSim(t, level, WithPlayers(1))

	s.Step(nil)
	c := player(t, s, 0)
	assert.Equal(t, 25.0, c.Y)
	assert.Equal(t, simconfig.Falling, c.Jump)

	run(s, 40, nil)
	c = player(t, s, 0)
	assert.Equal(t, standY, c.Y)
	assert.Equal(t, simconfig.Grounded, c.Jump)
	assert.Equal(t, floorTop, c.Collision.Bottom())
}

func TestFalling_LandsOnLedgeBesideFeet(t *testing.T) {
	// Only the collision box reaches over the wall; the feet probe clears it.
	wall := leveldata.BlockFromBottom(0, floorTop, 120, 60, leveldata.Blue)
	level := flatLevel(wall)
	level.SpawnPoints = []leveldata.SpawnPoint{{X: 100, Y: 10}}
	s := newSim(t, level, WithPlayers(1))

	run(s, 40, nil)
	c := player(t, s, 0)
	assert.Equal(t, 420.0-128, c.Y)
	assert.Equal(t, simconfig.Grounded, c.Jump)
	assert.False(t, c.Collision.Overlaps(wall.Rect()))
	assert.False(t, c.Feet.Overlaps(wall.Rect()))

	// Walking right off the ledge drops back to the floor.
	run(s, 20, Press(0, simconfig.ActionMoveRight))
	run(s, 20, nil)
	c = player(t, s, 0)
	assert.Equal(t, standY, c.Y)
	assert.False(t, c.Collision.Overlaps(wall.Rect()))
}

func TestJump_PeakAndReturn(t *testing.T) {
	s := newSim(t, flatLevel(), WithPlayers(1))

	s.Step(Press(0, simconfig.ActionJump))
	c := player(t, s, 0)
	assert.Equal(t, simconfig.Jumping, c.Jump)
	assert.Equal(t, standY-20, c.Y)

	minY := c.Y
	peakTick := 1
	for tick := 2; tick <= 21; tick++ {
		// Holding jump must not start a second jump.
		s.Step(Press(0, simconfig.ActionJump))
		c = player(t, s, 0)
		if c.Y < minY {
			minY, peakTick = c.Y, tick
		}
		if tick < 21 {
			assert.Equal(t, simconfig.Jumping, c.Jump, "tick %d", tick)
		}
	}

	assert.Equal(t, standY-110, minY)
	assert.Equal(t, 10, peakTick)
	assert.Equal(t, standY, c.Y)
	assert.Equal(t, simconfig.Grounded, c.Jump)
	assert.True(t, c.Landed)
	assert.Equal(t, 10.0, c.JumpSpeed)

	run(s, 10, Press(0, simconfig.ActionJump))
	c = player(t, s, 0)
	assert.Equal(t, standY, c.Y)
	assert.Equal(t, simconfig.Grounded, c.Jump)
}

func TestJump_OnHoldRepeats(t *testing.T) {
	s := newSim(t, flatLevel(), WithPlayers(1), WithJumpOnHold(true))

	run(s, 21, Press(0, simconfig.ActionJump))
	assert.Equal(t, simconfig.Grounded, player(t, s, 0).Jump)

	s.Step(Press(0, simconfig.ActionJump))
	c := player(t, s, 0)
	assert.Equal(t, simconfig.Jumping, c.Jump)
	assert.Equal(t, standY-20, c.Y)
}

func TestJump_IgnoredWhileFalling(t *testing.T) {
	level := flatLevel()
	level.SpawnPoints = []leveldata.SpawnPoint{{X: 100, Y: 10}}
	s := newSim(t, level, WithPlayers(1))

	s.Step(nil)
	s.Step(Press(0, simconfig.ActionJump))
	c := player(t, s, 0)
	assert.Equal(t, simconfig.Falling, c.Jump)
	assert.Equal(t, 40.0, c.Y)
}

func TestHeadBump_TruncatesAscent(t *testing.T) {
	ceiling := leveldata.Block{X: 0, Y: 300, W: 800, H: 40, Color: leveldata.Brown}
	s := newSim(t, flatLevel(ceiling), WithPlayers(1))

	s.Step(Press(0, simconfig.ActionJump))
	s.Step(nil)
	c := player(t, s, 0)
	assert.False(t, c.HeadBumped)
	assert.Equal(t, standY-38, c.Y)

	s.Step(nil)
	c = player(t, s, 0)
	assert.True(t, c.HeadBumped)
	assert.Equal(t, 340.0, c.Collision.Top())
	assert.Equal(t, 305.0, c.Y)
	assert.Zero(t, c.JumpSpeed)
	assert.False(t, c.Collision.Overlaps(ceiling.Rect()))

	// Stalls for one tick, then falls back down.
	s.Step(nil)
	c = player(t, s, 0)
	assert.Equal(t, 305.0, c.Y)

	for i := 0; i < 20; i++ {
		s.Step(nil)
		c = player(t, s, 0)
		assert.GreaterOrEqual(t, c.Y, 305.0)
	}
	assert.Equal(t, standY, c.Y)
	assert.Equal(t, simconfig.Grounded, c.Jump)
}

func TestHorizontal_ClampIsEdgeAdjacent(t *testing.T) {
	wall := leveldata.BlockFromBottom(300, floorTop, 20, 200, leveldata.Blue)

	t.Run("right", func(t *testing.T) {
		s := newSim(t, flatLevel(wall), WithPlayers(1))
		run(s, 30, Press(0, simconfig.ActionMoveRight))

		c := player(t, s, 0)
		assert.True(t, c.Blocked)
		assert.Equal(t, 300.0, c.Collision.Right())
		assert.Equal(t, 217.0, c.X)
		assert.False(t, c.Collision.Overlaps(wall.Rect()))
	})

	t.Run("left", func(t *testing.T) {
		level := flatLevel(wall)
		level.SpawnPoints = []leveldata.SpawnPoint{{X: 500, Y: standY}}
		s := newSim(t, level, WithPlayers(1))
		run(s, 40, Press(0, simconfig.ActionMoveLeft))

		c := player(t, s, 0)
		assert.True(t, c.Blocked)
		assert.Equal(t, 320.0, c.Collision.Left())
		assert.Equal(t, 307.0, c.X)
		assert.False(t, c.Collision.Overlaps(wall.Rect()))
	})

	t.Run("free move is not blocked", func(t *testing.T) {
		s := newSim(t, flatLevel(wall), WithPlayers(1))
		s.Step(Press(0, simconfig.ActionMoveRight))

		c := player(t, s, 0)
		assert.False(t, c.Blocked)
		assert.Equal(t, 108.0, c.X)
	})
}

func TestHorizontal_OppositeKeysCancel(t *testing.T) {
	s := newSim(t, flatLevel(), WithPlayers(1))
	run(s, 3, Press(0, simconfig.ActionMoveRight))

	s.Step(Press(0, simconfig.ActionMoveLeft, simconfig.ActionMoveRight))
	c := player(t, s, 0)
	assert.Equal(t, 124.0, c.X)
	assert.Equal(t, simconfig.MoveIdle, c.LastMove)
	assert.Equal(t, simconfig.FrameIdle, c.Frame)
}

func TestTwoRobots_StopAtCollisionWidth(t *testing.T) {
	s := newSim(t, flatLevel())

	frame := Press(0, simconfig.ActionMoveRight)
	frame.Set(1, simconfig.ActionMoveLeft)
	run(s, 40, frame)

	a, b := player(t, s, 0), player(t, s, 1)
	assert.Equal(t, 70.0, b.Collision.CenterX()-a.Collision.CenterX())
	assert.Equal(t, a.Collision.Right(), b.Collision.Left())
	assert.False(t, a.Collision.Overlaps(b.Collision))
}

func TestFeetProbe_FirstInLevelOrderWins(t *testing.T) {
	high := leveldata.BlockFromBottom(0, 500, 800, 30, leveldata.Brown)
	low := leveldata.BlockFromBottom(0, 500, 800, 25, leveldata.Blue)

	cases := []struct {
		name   string
		blocks []leveldata.Block
		wantY  float64
	}{
		{"higher first", []leveldata.Block{high, low}, 470 - 128},
		{"lower first", []leveldata.Block{low, high}, 475 - 128},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			level := &leveldata.Level{
				Name: "stacked", Width: 800, Height: 500,
				Blocks:      tc.blocks,
				SpawnPoints: []leveldata.SpawnPoint{{X: 100, Y: 10}},
			}
			s := newSim(t, level, WithPlayers(1))
			run(s, 30, nil)

			c := player(t, s, 0)
			assert.Equal(t, tc.wantY, c.Y)
			assert.Equal(t, simconfig.Grounded, c.Jump)
		})
	}
}

func TestRobot_StandsOnRobot(t *testing.T) {
	level := flatLevel()
	level.SpawnPoints = []leveldata.SpawnPoint{
		{X: 100, Y: standY},
		{X: 100, Y: 10},
	}
	s := newSim(t, level)
	run(s, 30, nil)

	bottom, top := player(t, s, 0), player(t, s, 1)
	assert.Equal(t, standY, bottom.Y)
	assert.Equal(t, bottom.Collision.Top()-128, top.Y)
	assert.Equal(t, simconfig.Grounded, top.Jump)
}

func TestAnimation_WalkCycle(t *testing.T) {
	s := newSim(t, flatLevel(), WithPlayers(1))

	s.Step(Press(0, simconfig.ActionMoveRight))
	c := player(t, s, 0)
	assert.Equal(t, simconfig.FrameWalk0, c.Frame)
	assert.False(t, c.FlipX)

	run(s, 4, Press(0, simconfig.ActionMoveRight))
	assert.Equal(t, simconfig.FrameWalk2, player(t, s, 0).Frame)

	s.Step(Press(0, simconfig.ActionMoveLeft))
	c = player(t, s, 0)
	assert.Equal(t, simconfig.FrameWalk0, c.Frame)
	assert.True(t, c.FlipX)

	s.Step(Press(0, simconfig.ActionMoveLeft, simconfig.ActionJump))
	c = player(t, s, 0)
	assert.Equal(t, simconfig.FrameJump, c.Frame)
	assert.True(t, c.FlipX)

	s.Step(nil)
	assert.Equal(t, simconfig.FrameJump, player(t, s, 0).Frame)
}

func TestAdvance_FixedStep(t *testing.T) {
	s := newSim(t, flatLevel(), WithPlayers(1))

	assert.Equal(t, 3, s.Advance(100*time.Millisecond, nil))
	assert.Equal(t, uint64(3), s.Tick())
	assert.Equal(t, 0, s.Advance(0, nil))
	assert.Equal(t, 0, s.Advance(-time.Second, nil))
	assert.Equal(t, 30, s.Advance(time.Second, Press(0, simconfig.ActionMoveRight)))
	assert.Equal(t, 100.0+30*8, player(t, s, 0).X)
}

func TestLoop_RunsUntilInputEnds(t *testing.T) {
	s := newSim(t, flatLevel(), WithPlayers(1))

	var seen []uint64
	loop := NewLoop(s, func(tick uint64) (Frame, bool) {
		return Press(0, simconfig.ActionMoveRight), tick < 5
	}, false)
	loop.OnTick = func(s *Simulation) { seen = append(seen, s.Tick()) }

	require.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, []uint64{1, 2, 3, 4, 5}, seen)
	assert.Equal(t, 140.0, player(t, s, 0).X)
}

func TestLoop_StopsOnCancel(t *testing.T) {
	s := newSim(t, flatLevel(), WithPlayers(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loop := NewLoop(s, func(uint64) (Frame, bool) { return nil, true }, true)
	assert.ErrorIs(t, loop.Run(ctx), context.Canceled)
}
