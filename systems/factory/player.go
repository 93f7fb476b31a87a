package factory

import (
	"github.com/automoto/robotjump/archetypes"
	"github.com/automoto/robotjump/components"
	"github.com/automoto/robotjump/shared/leveldata"
	"github.com/automoto/robotjump/shared/simconfig"
	"github.com/automoto/robotjump/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateCharacter spawns a robot with its sprite box at the spawn point. The
// robot starts grounded; the first tick's feet probe decides whether it falls.
func CreateCharacter(w donburi.World, spawn leveldata.SpawnPoint, playerIndex int, cfg simconfig.CharacterConfig) *donburi.Entry {
	character := archetypes.Character.Spawn(w)

	components.Character.SetValue(character, components.CharacterData{
		PlayerIndex: playerIndex,
		X:           spawn.SpriteX(cfg.Width),
		Y:           spawn.Y,
		Config:      cfg,
		Jump:        simconfig.Grounded,
		JumpSpeed:   cfg.JumpStartVelocity,
		LastMove:    simconfig.MoveIdle,
	})
	components.Sprite.SetValue(character, components.SpriteData{
		Frame: simconfig.FrameIdle,
	})

	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvCharacter)
	obj.Data = character
	components.Object.SetValue(character, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(w); ok {
		space := components.Space.Get(spaceEntry)
		space.Add(obj)
		space.Place(obj, components.Character.Get(character).CollisionBox())
	}

	return character
}
