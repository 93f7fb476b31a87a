package sim

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// FrameSource supplies the input for each tick. ok is false once input runs out.
type FrameSource func(tick uint64) (frame Frame, ok bool)

// Loop drives a Simulation from a FrameSource, either paced by a ticker at the
// simulation's tick rate or as fast as possible.
type Loop struct {
	sim    *Simulation
	source FrameSource
	paced  bool

	// OnTick runs after every Step.
	OnTick func(s *Simulation)
}

func NewLoop(s *Simulation, source FrameSource, paced bool) *Loop {
	return &Loop{
		sim:    s,
		source: source,
		paced:  paced,
	}
}

// Run steps until the source is exhausted or ctx is done. It returns the
// context's error when cancelled and nil when input ran out.
func (l *Loop) Run(ctx context.Context) error {
	log.WithFields(log.Fields{
		"tps":   l.sim.config.sim.TicksPerSecond,
		"paced": l.paced,
	}).Info("loop started")

	if !l.paced {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !l.tick() {
				return nil
			}
		}
	}

	ticker := time.NewTicker(l.sim.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("loop stopped")
			return ctx.Err()
		case <-ticker.C:
			if !l.tick() {
				return nil
			}
		}
	}
}

func (l *Loop) tick() bool {
	frame, ok := l.source(l.sim.Tick())
	if !ok {
		log.WithField("tick", l.sim.Tick()).Info("input exhausted")
		return false
	}
	l.sim.Step(frame)
	if l.OnTick != nil {
		l.OnTick(l.sim)
	}
	return true
}
