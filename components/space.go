package components

import (
	"github.com/automoto/robotjump/shared/geom"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData is the broad-phase collision space. resolv cells start at 0,0, so
// world coordinates are shifted by Origin before entering the space.
type SpaceData struct {
	*resolv.Space
	Origin geom.Point
	// Probe is a reusable query object living in the space.
	Probe *resolv.Object
}

// ToSpace converts a world rectangle into space coordinates.
func (s *SpaceData) ToSpace(r geom.Rect) geom.Rect {
	return r.Moved(-s.Origin.X, -s.Origin.Y)
}

// Place moves obj to cover the world rectangle r.
func (s *SpaceData) Place(obj *resolv.Object, r geom.Rect) {
	local := s.ToSpace(r)
	obj.X, obj.Y, obj.W, obj.H = local.X, local.Y, local.W, local.H
	obj.Update()
}

var Space = donburi.NewComponentType[SpaceData]()
