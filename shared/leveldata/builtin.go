package leveldata

import (
	"fmt"
	"image/color"
	"sort"
)

// Block colours used by the built-in levels.
var (
	Brown = color.RGBA{R: 165, G: 42, B: 42, A: 255}
	Blue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

const (
	groundTileWidth  = 50
	groundTileHeight = 20
	edgeWallWidth    = 100
	spawnX           = 10
	spawnY           = 10
)

var builtins = map[string]func() *Level{
	"tiles":     Tiles,
	"walls":     Walls,
	"challenge": Challenge,
}

// Builtin returns a fresh copy of the named built-in level.
func Builtin(name string) (*Level, error) {
	gen, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown built-in level %q", name)
	}
	return gen(), nil
}

// BuiltinNames returns the sorted names of the built-in levels.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tiles is a single-player floor made of ground tiles with two stepping tiles.
// It has no edge walls: walking off the side falls out of the world.
func Tiles() *Level {
	const w, h = 800, 500
	level := &Level{Name: "tiles", Width: w, Height: h}

	for x := 0; x < w; x += groundTileWidth {
		level.Blocks = append(level.Blocks, Block{
			X: float64(x), Y: h - groundTileHeight,
			W: groundTileWidth, H: groundTileHeight,
			Color: Brown,
		})
	}
	level.Blocks = append(level.Blocks,
		Block{X: 200, Y: h - 100, W: groundTileWidth, H: groundTileHeight, Color: Blue},
		Block{X: 300, Y: h - 200, W: groundTileWidth, H: groundTileHeight, Color: Blue},
	)

	level.SpawnPoints = []SpawnPoint{{X: spawnX, Y: spawnY, Index: 0}}
	return level
}

// Walls has stairs, two low walls and the world edges, for two players.
func Walls() *Level {
	const w, h = 800, 500
	floorY := float64(h - groundTileHeight)
	level := &Level{Name: "walls", Width: w, Height: h}

	level.Blocks = []Block{
		BlockFromBottom(0, h, w, groundTileHeight, Brown),
		// Stairs
		BlockFromBottom(200, h-150, 100, 20, Blue),
		BlockFromBottom(300, h-250, 100, 20, Blue),
		BlockFromBottom(400, h-350, 100, 20, Blue),
		// Low walls
		BlockFromBottom(100, floorY, 100, 60, Blue),
		BlockFromBottom(w-200, floorY, 100, 60, Blue),
	}
	level.Blocks = append(level.Blocks, edgeWalls(w, h)...)
	level.SpawnPoints = twoSpawns(w)
	return level
}

// Challenge splits the play area with a barrier wall too tall to jump.
func Challenge() *Level {
	const w, h = 1200, 800
	level := &Level{Name: "challenge", Width: w, Height: h}

	level.Blocks = []Block{
		BlockFromBottom(0, h, w, groundTileHeight, Brown),
		// Barrier
		BlockFromBottom(w/2, h, 20, 600, Brown),
	}
	level.Blocks = append(level.Blocks, edgeWalls(w, h)...)
	level.SpawnPoints = twoSpawns(w)
	return level
}

// edgeWalls keeps players from walking off either side of the play area.
func edgeWalls(w, h float64) []Block {
	return []Block{
		BlockFromBottom(-edgeWallWidth, h, edgeWallWidth, h, Blue),
		BlockFromBottom(w, h, edgeWallWidth, h, Blue),
	}
}

// twoSpawns puts player 1 at the top-left and player 2 at the top-right corner.
func twoSpawns(w float64) []SpawnPoint {
	return []SpawnPoint{
		{X: spawnX, Y: spawnY, Index: 0},
		{X: w, Y: spawnY, Index: 1, AlignRight: true},
	}
}
