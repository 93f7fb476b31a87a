// Package sim owns one running robot world. It is the only entry point the
// window client and the headless runner use to advance the game.
package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/robotjump/components"
	"github.com/automoto/robotjump/shared/geom"
	"github.com/automoto/robotjump/shared/leveldata"
	"github.com/automoto/robotjump/shared/simconfig"
	"github.com/automoto/robotjump/systems"
	"github.com/automoto/robotjump/systems/factory"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

var (
	// ErrTooManyPlayers is returned when a level has fewer spawn points than players.
	ErrTooManyPlayers = errors.New("more players than spawn points")
	// ErrSpawnBlocked is returned when a robot would start inside a block.
	ErrSpawnBlocked = errors.New("spawn point inside a block")
)

// Frame holds the actions of every player for one tick, keyed by player index.
type Frame map[int]systems.Actions

// Press returns a Frame with the listed actions held for player.
func Press(player int, actions ...simconfig.ActionID) Frame {
	f := Frame{}
	f.Set(player, actions...)
	return f
}

// Set marks actions as held for player, keeping anything already held.
func (f Frame) Set(player int, actions ...simconfig.ActionID) {
	a := f[player]
	for _, id := range actions {
		a[id] = true
	}
	f[player] = a
}

// Simulation is a fixed-step world of robots and blocks.
type Simulation struct {
	world  donburi.World
	level  *leveldata.Level
	config config

	characters []*donburi.Entry
	blocks     []*donburi.Entry

	tick    uint64
	pending time.Duration
}

// New builds the world for level. Geometry is validated before anything is
// spawned, so a returned Simulation is always runnable.
func New(level *leveldata.Level, opts ...Option) (*Simulation, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("build simulation: %w", err)
	}
	if err := (simconfig.Tuning{Character: cfg.character, Sim: cfg.sim}).Validate(); err != nil {
		return nil, fmt.Errorf("build simulation: %w", err)
	}
	if cfg.players < 1 {
		return nil, fmt.Errorf("players must be positive, got %d", cfg.players)
	}
	if cfg.players > len(level.SpawnPoints) {
		return nil, fmt.Errorf("level %q has %d spawn points for %d players: %w",
			level.Name, len(level.SpawnPoints), cfg.players, ErrTooManyPlayers)
	}
	if cfg.players > cfg.sim.MaxPlayers {
		return nil, fmt.Errorf("%d players exceeds limit of %d: %w", cfg.players, cfg.sim.MaxPlayers, ErrTooManyPlayers)
	}
	if err := checkSpawns(level, cfg.players, cfg.character); err != nil {
		return nil, err
	}

	s := &Simulation{
		world:  donburi.NewWorld(),
		level:  level,
		config: cfg,
	}

	bounds := geom.NewRect(0, 0, float64(level.Width), float64(level.Height))
	for _, b := range level.Blocks {
		bounds = bounds.Union(b.Rect())
	}
	factory.CreateSpace(s.world, bounds, cfg.sim.SpaceMargin, cfg.sim.CellSize)

	for i, b := range level.Blocks {
		s.blocks = append(s.blocks, factory.CreateBlock(s.world, b, i))
	}
	for i := 0; i < cfg.players; i++ {
		s.characters = append(s.characters, factory.CreateCharacter(s.world, level.SpawnPoints[i], i, cfg.character))
	}

	log.WithFields(log.Fields{
		"map":     level.Name,
		"blocks":  len(s.blocks),
		"players": cfg.players,
	}).Info("simulation ready")

	return s, nil
}

// checkSpawns rejects levels where a robot's collision box would start inside
// a block.
func checkSpawns(level *leveldata.Level, players int, cc simconfig.CharacterConfig) error {
	for i := 0; i < players; i++ {
		sp := level.SpawnPoints[i]
		c := components.CharacterData{X: sp.SpriteX(cc.Width), Y: sp.Y, Config: cc}
		box := c.CollisionBox()
		for j, b := range level.Blocks {
			if box.Overlaps(b.Rect()) {
				return fmt.Errorf("level %q player %d at (%g, %g) overlaps block %d: %w",
					level.Name, i+1, c.X, c.Y, j, ErrSpawnBlocked)
			}
		}
	}
	return nil
}

// Step runs exactly one tick: input, movement and collision, then animation.
func (s *Simulation) Step(frame Frame) {
	systems.ApplyInput(s.world, frame)
	systems.UpdateCharacters(s.world)
	systems.UpdateAnimation(s.world)
	s.tick++
}

// Advance accumulates dt and runs one Step per whole tick it covers, holding
// frame for each of them. It returns the number of ticks run.
func (s *Simulation) Advance(dt time.Duration, frame Frame) int {
	if dt <= 0 {
		return 0
	}
	s.pending += dt
	interval := s.TickInterval()
	n := 0
	for s.pending >= interval {
		s.pending -= interval
		s.Step(frame)
		n++
	}
	return n
}

// TickInterval is the simulated time covered by one Step.
func (s *Simulation) TickInterval() time.Duration {
	return time.Second / time.Duration(s.config.sim.TicksPerSecond)
}

// Tick is the number of Steps run so far.
func (s *Simulation) Tick() uint64 { return s.tick }

// Level is the level the simulation was built from.
func (s *Simulation) Level() *leveldata.Level { return s.level }

// World exposes the underlying donburi world for renderers.
func (s *Simulation) World() donburi.World { return s.world }

// Players is the number of robots.
func (s *Simulation) Players() int { return len(s.characters) }

// Characters returns a snapshot of every robot in player index order.
func (s *Simulation) Characters() []Character {
	out := make([]Character, 0, len(s.characters))
	for _, e := range s.characters {
		out = append(out, snapshotCharacter(e))
	}
	return out
}

// Character returns the snapshot of one robot.
func (s *Simulation) Character(player int) (Character, bool) {
	if player < 0 || player >= len(s.characters) {
		return Character{}, false
	}
	return snapshotCharacter(s.characters[player]), true
}

// Blocks returns the level blocks in level order.
func (s *Simulation) Blocks() []Block {
	out := make([]Block, 0, len(s.blocks))
	for _, e := range s.blocks {
		b := components.Block.Get(e)
		out = append(out, Block{Rect: b.Rect, Color: b.Color})
	}
	return out
}
