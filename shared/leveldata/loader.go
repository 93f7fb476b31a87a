package leveldata

import (
	"fmt"
	"image/color"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX files.
const (
	blocksGroup = "Blocks"
	spawnGroup  = "PlayerSpawn"
)

// LoadTMX parses a TMX file and returns its level data. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case blocksGroup:
			for _, o := range og.Objects {
				level.Blocks = append(level.Blocks, Block{
					X:     o.X,
					Y:     o.Y,
					W:     o.Width,
					H:     o.Height,
					Color: parseColor(o.Properties.GetString("color")),
				})
			}
		case spawnGroup:
			for _, o := range og.Objects {
				level.SpawnPoints = append(level.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	// Player N always gets the spawn with the N-th smallest index.
	sort.SliceStable(level.SpawnPoints, func(i, j int) bool {
		return level.SpawnPoints[i].Index < level.SpawnPoints[j].Index
	})

	if err := level.Validate(); err != nil {
		return nil, err
	}
	return level, nil
}

// LoadAllTMX discovers all .tmx files in levelsDir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllTMX(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadTMX(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// parseColor reads "#rrggbb" colours written by Tiled. Anything else falls back
// to the brown used for solid ground.
func parseColor(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	// Tiled writes #aarrggbb when the alpha channel is set.
	if len(s) == 8 {
		s = s[2:]
	}
	var r, g, b uint8
	if len(s) != 6 {
		return Brown
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Brown
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
