package simconfig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrUnknownTuningKey is returned for keys in a tuning file that match no field.
var ErrUnknownTuningKey = errors.New("unknown tuning key")

// ErrInvalidTuning is returned for values the simulation cannot run with.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning is the on-disk form of the simulation values. Keys left out of the
// file keep their defaults.
//
//	[character]
//	speed = 10
//	gravity = 12
//
//	[sim]
//	ticks_per_second = 60
type Tuning struct {
	Character CharacterConfig `toml:"character"`
	Sim       SimConfig       `toml:"sim"`
}

// DefaultTuning returns the built-in values.
func DefaultTuning() Tuning {
	return Tuning{Character: Character, Sim: Sim}
}

// DecodeTuning reads a TOML tuning file over the defaults.
func DecodeTuning(r io.Reader) (Tuning, error) {
	t := DefaultTuning()
	md, err := toml.NewDecoder(r).Decode(&t)
	if err != nil {
		return Tuning{}, fmt.Errorf("decode tuning: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Tuning{}, fmt.Errorf("%s: %w", strings.Join(keys, ", "), ErrUnknownTuningKey)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// LoadTuning reads the tuning file at path.
func LoadTuning(path string) (Tuning, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("open tuning: %w", err)
	}
	defer f.Close()
	return DecodeTuning(f)
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	if err := t.check(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTuning, err)
	}
	return nil
}

func (t Tuning) check() error {
	c := t.Character
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("character size %gx%g must be positive", c.Width, c.Height)
	case c.CollideInsetX < 0 || c.CollideInsetX >= c.Width:
		return fmt.Errorf("collide_inset_x %g must be in [0, width)", c.CollideInsetX)
	case c.CollideTop < 0 || c.CollideTop >= c.Height:
		return fmt.Errorf("collide_top %g must be in [0, height)", c.CollideTop)
	case c.FeetInset < 0 || c.FeetInset >= c.Width:
		return fmt.Errorf("feet_inset %g must be in [0, width)", c.FeetInset)
	case c.Speed <= 0:
		return fmt.Errorf("speed must be positive, got %g", c.Speed)
	case c.JumpStartVelocity < 0:
		return fmt.Errorf("jump_start_velocity must not be negative, got %g", c.JumpStartVelocity)
	case c.JumpMass <= 0:
		return fmt.Errorf("jump_mass must be positive, got %g", c.JumpMass)
	case c.MaxForce <= 0:
		return fmt.Errorf("max_force must be positive, got %g", c.MaxForce)
	case c.Gravity <= 0:
		return fmt.Errorf("gravity must be positive, got %g", c.Gravity)
	case c.WalkTicksPerFrame < 1:
		return fmt.Errorf("walk_ticks_per_frame must be positive, got %d", c.WalkTicksPerFrame)
	case t.Sim.TicksPerSecond < 1:
		return fmt.Errorf("ticks_per_second must be positive, got %d", t.Sim.TicksPerSecond)
	case t.Sim.MaxPlayers < 1:
		return fmt.Errorf("max_players must be positive, got %d", t.Sim.MaxPlayers)
	case t.Sim.CellSize < 1:
		return fmt.Errorf("cell_size must be positive, got %d", t.Sim.CellSize)
	case t.Sim.SpaceMargin < 0:
		return fmt.Errorf("space_margin must not be negative, got %g", t.Sim.SpaceMargin)
	}
	return nil
}
