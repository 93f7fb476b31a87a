package sim

import "github.com/automoto/robotjump/shared/simconfig"

type config struct {
	players   int
	character simconfig.CharacterConfig
	sim       simconfig.SimConfig
}

func defaultConfig() config {
	return config{
		players:   2,
		character: simconfig.Character,
		sim:       simconfig.Sim,
	}
}

// Option customises a Simulation at construction.
type Option func(*config)

// WithPlayers sets how many robots spawn. The level needs that many spawn points.
func WithPlayers(n int) Option {
	return func(c *config) { c.players = n }
}

// WithCharacterConfig replaces the physics and geometry of every robot.
func WithCharacterConfig(cc simconfig.CharacterConfig) Option {
	return func(c *config) { c.character = cc }
}

// WithJumpOnHold makes a held jump key start a new jump on every landing.
func WithJumpOnHold(on bool) Option {
	return func(c *config) { c.character.JumpOnHold = on }
}

// WithSimConfig replaces the world-level settings.
func WithSimConfig(sc simconfig.SimConfig) Option {
	return func(c *config) { c.sim = sc }
}

// WithTuning applies a tuning file's character and world values.
func WithTuning(t simconfig.Tuning) Option {
	return func(c *config) {
		c.character = t.Character
		c.sim = t.Sim
	}
}
