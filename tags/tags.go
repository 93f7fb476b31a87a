package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Block     = donburi.NewTag().SetName("Block")
)

// Resolv tags for broad-phase collision
const (
	ResolvSolid     = "solid"
	ResolvCharacter = "character"
	ResolvProbe     = "probe"
)
