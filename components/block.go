package components

import (
	"image/color"

	"github.com/automoto/robotjump/shared/geom"
	"github.com/yohamta/donburi"
)

// BlockData is an immutable solid rectangle. Order is its position in the
// level's block list and decides which block wins when several match.
type BlockData struct {
	Rect  geom.Rect
	Color color.RGBA
	Order int
}

var Block = donburi.NewComponentType[BlockData]()
