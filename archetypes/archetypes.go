package archetypes

import (
	"github.com/automoto/robotjump/components"
	"github.com/automoto/robotjump/tags"
	"github.com/yohamta/donburi"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Input,
		components.Sprite,
		components.Object,
	)
	Block = newArchetype(
		tags.Block,
		components.Block,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
