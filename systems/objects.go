package systems

import (
	"sort"

	"github.com/automoto/robotjump/components"
	"github.com/automoto/robotjump/shared/geom"
	"github.com/automoto/robotjump/tags"
	"github.com/yohamta/donburi"
)

// Obstacle is one rectangle a character resolves against this tick.
type Obstacle struct {
	Rect  geom.Rect
	Entry *donburi.Entry
	order int
}

// IsCharacter reports whether the obstacle is another robot's collision box.
func (o Obstacle) IsCharacter() bool {
	return o.Entry != nil && o.Entry.HasComponent(components.Character)
}

// Obstacles returns every rectangle overlapping query that self must not pass
// through, in resolution order: other characters by player index, then level
// blocks in level order. Characters are read at their current position, so a
// character sees lower-indexed robots where they ended this tick.
func Obstacles(w donburi.World, self *donburi.Entry, query geom.Rect) []Obstacle {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	// Grow the query so fractional coordinates never fall between cells.
	probeRect := geom.NewRect(query.X-1, query.Y-1, query.W+2, query.H+2)
	space.Place(space.Probe, probeRect)

	check := space.Probe.Check(0, 0, tags.ResolvSolid, tags.ResolvCharacter)
	if check == nil {
		return nil
	}

	var out []Obstacle
	for _, obj := range check.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || entry == self || !entry.Valid() {
			continue
		}
		o, ok := obstacleFor(entry)
		if !ok || !o.Rect.Overlaps(query) {
			continue
		}
		out = append(out, o)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].order < out[j].order
	})
	return out
}

func obstacleFor(entry *donburi.Entry) (Obstacle, bool) {
	switch {
	case entry.HasComponent(components.Character):
		c := components.Character.Get(entry)
		return Obstacle{Rect: c.CollisionBox(), Entry: entry, order: c.PlayerIndex}, true
	case entry.HasComponent(components.Block):
		b := components.Block.Get(entry)
		return Obstacle{Rect: b.Rect, Entry: entry, order: characterOrderSpan + b.Order}, true
	}
	return Obstacle{}, false
}

// characterOrderSpan keeps every character ahead of every block.
const characterOrderSpan = 1 << 20

// syncObject moves a character's broad-phase proxy onto its collision box.
func syncObject(w donburi.World, entry *donburi.Entry) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	obj := components.Object.Get(entry)
	space.Place(obj.Object, components.Character.Get(entry).CollisionBox())
}
