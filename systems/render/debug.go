package render

import (
	"image/color"

	cfg "github.com/automoto/robotjump/config"
	"github.com/automoto/robotjump/components"
	"github.com/automoto/robotjump/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	solidOutline     = color.RGBA{100, 100, 100, 255} // Grey
	characterOutline = color.RGBA{0, 0, 255, 255}     // Blue
	probeOutline     = color.RGBA{0, 255, 255, 255}   // Cyan
)

// DrawDebug outlines every broad-phase object, mapped back from space to world
// coordinates. The last query probe shows up in cyan.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		x := obj.X + space.Origin.X
		y := obj.Y + space.Origin.Y

		c := probeOutline
		if obj.HasTags(tags.ResolvSolid) {
			c = solidOutline
		} else if obj.HasTags(tags.ResolvCharacter) {
			c = characterOutline
		}

		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}
}
