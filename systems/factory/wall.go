package factory

import (
	"github.com/automoto/robotjump/archetypes"
	"github.com/automoto/robotjump/components"
	"github.com/automoto/robotjump/shared/leveldata"
	"github.com/automoto/robotjump/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateBlock adds a static solid block. order is the block's index in the level.
func CreateBlock(w donburi.World, b leveldata.Block, order int) *donburi.Entry {
	block := archetypes.Block.Spawn(w)

	rect := b.Rect()
	components.Block.SetValue(block, components.BlockData{
		Rect:  rect,
		Color: b.Color,
		Order: order,
	})

	// Create collision object
	obj := resolv.NewObject(0, 0, b.W, b.H, tags.ResolvSolid)
	obj.Data = block // Link for O(1) lookup
	components.Object.SetValue(block, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(w); ok {
		space := components.Space.Get(spaceEntry)
		space.Add(obj)
		space.Place(obj, rect)
	}

	return block
}
