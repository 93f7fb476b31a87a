package factory

import (
	"math"

	"github.com/automoto/robotjump/archetypes"
	"github.com/automoto/robotjump/components"
	"github.com/automoto/robotjump/shared/geom"
	"github.com/automoto/robotjump/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace builds the broad-phase space covering bounds plus margin on every
// side. Objects outside the space are never reported by queries.
func CreateSpace(w donburi.World, bounds geom.Rect, margin float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)

	origin := geom.Point{X: bounds.X - margin, Y: bounds.Y - margin}
	width := int(math.Ceil(bounds.W + 2*margin))
	height := int(math.Ceil(bounds.H + 2*margin))

	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	data := components.SpaceData{
		Space:  resolv.NewSpace(width, height, cellSize, cellSize),
		Origin: origin,
		Probe:  probe,
	}
	data.Add(probe)
	components.Space.SetValue(space, data)

	return space
}
