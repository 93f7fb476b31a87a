package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/automoto/robotjump/shared/simconfig"
	"github.com/automoto/robotjump/sim"
)

var ErrBadScript = errors.New("bad input script")

// Script is a recorded input session. Each span holds actions for one player
// over the half-open tick range [From, To).
type Script struct {
	Level   string `json:"level"`
	Players int    `json:"players"`
	Ticks   uint64 `json:"ticks"`
	Spans   []Span `json:"inputs"`
}

type Span struct {
	Player  int      `json:"player"`
	From    uint64   `json:"from"`
	To      uint64   `json:"to"`
	Actions []string `json:"actions"`

	ids []simconfig.ActionID
}

// ReadScript decodes and checks a script.
func ReadScript(r io.Reader) (*Script, error) {
	var s Script
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if s.Players == 0 {
		s.Players = 1
	}
	for i := range s.Spans {
		span := &s.Spans[i]
		if span.To < span.From {
			return nil, fmt.Errorf("input %d ends at %d before it starts at %d: %w", i, span.To, span.From, ErrBadScript)
		}
		if span.Player < 0 || span.Player >= s.Players {
			return nil, fmt.Errorf("input %d is for player %d of %d: %w", i, span.Player, s.Players, ErrBadScript)
		}
		for _, name := range span.Actions {
			id, ok := simconfig.ParseAction(name)
			if !ok {
				return nil, fmt.Errorf("input %d has unknown action %q: %w", i, name, ErrBadScript)
			}
			span.ids = append(span.ids, id)
		}
		if span.To > s.Ticks {
			s.Ticks = span.To
		}
	}
	return &s, nil
}

// Frame returns the input held at tick.
func (s *Script) Frame(tick uint64) sim.Frame {
	frame := sim.Frame{}
	for _, span := range s.Spans {
		if tick >= span.From && tick < span.To {
			frame.Set(span.Player, span.ids...)
		}
	}
	return frame
}

// Source replays the script for Ticks ticks.
func (s *Script) Source() sim.FrameSource {
	return func(tick uint64) (sim.Frame, bool) {
		if tick >= s.Ticks {
			return nil, false
		}
		return s.Frame(tick), true
	}
}
