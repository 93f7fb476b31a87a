// Package leveldata describes level geometry: the static blocks, the player
// spawn points and the play-area size. It has no dependencies on ebiten,
// donburi or resolv.
package leveldata

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/automoto/robotjump/shared/geom"
)

var (
	// ErrInvalidBlock is returned for blocks with zero or negative size.
	ErrInvalidBlock = errors.New("invalid block")
	// ErrNoSpawns is returned for levels without a player spawn point.
	ErrNoSpawns = errors.New("no player spawn points")
)

// Level holds everything needed to build a simulation world.
type Level struct {
	Name        string
	Width       int
	Height      int
	Blocks      []Block
	SpawnPoints []SpawnPoint
}

// Block is a static solid rectangle.
type Block struct {
	X, Y, W, H float64
	Color      color.RGBA
}

// Rect returns the block's rectangle.
func (b Block) Rect() geom.Rect {
	return geom.NewRect(b.X, b.Y, b.W, b.H)
}

// SpawnPoint is the initial top-left sprite position of a player. With
// AlignRight set, X is the right edge of the sprite instead, so the spawn
// does not depend on the robot's width.
type SpawnPoint struct {
	X, Y       float64
	Index      int
	AlignRight bool
}

// SpriteX returns the left edge of a sprite of the given width at this spawn.
func (p SpawnPoint) SpriteX(width float64) float64 {
	if p.AlignRight {
		return p.X - width
	}
	return p.X
}

// BlockFromBottom builds a block anchored by its bottom-left corner, which is how
// the built-in levels are laid out: y is the bottom edge.
func BlockFromBottom(x, bottom, w, h float64, c color.RGBA) Block {
	return Block{X: x, Y: bottom - h, W: w, H: h, Color: c}
}

// Validate rejects geometry the simulation cannot use.
func (l *Level) Validate() error {
	for i, b := range l.Blocks {
		if b.W <= 0 || b.H <= 0 {
			return fmt.Errorf("level %q block %d (%gx%g): %w", l.Name, i, b.W, b.H, ErrInvalidBlock)
		}
	}
	if len(l.SpawnPoints) == 0 {
		return fmt.Errorf("level %q: %w", l.Name, ErrNoSpawns)
	}
	return nil
}
