package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's proxy in the broad-phase space. Its coordinates are
// shifted by the space origin, see SpaceData.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
