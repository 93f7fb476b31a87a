package leveldata

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed levels/*.tmx
var levelFS embed.FS

// LoadEmbedded loads the TMX levels shipped with the game.
func LoadEmbedded() (map[string]*Level, []string, error) {
	return LoadAllTMX(levelFS, "levels")
}

// Find returns a built-in level by name, falling back to the shipped TMX levels.
// A name ending in .tmx is read from disk instead.
func Find(name string) (*Level, error) {
	if strings.HasSuffix(name, ".tmx") {
		return LoadTMX(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	}
	if _, ok := builtins[name]; ok {
		return Builtin(name)
	}
	levels, _, err := LoadEmbedded()
	if err != nil {
		return nil, err
	}
	level, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("unknown level %q", name)
	}
	return level, nil
}

// Names lists every level Find accepts.
func Names() ([]string, error) {
	_, tmx, err := LoadEmbedded()
	if err != nil {
		return nil, err
	}
	return append(BuiltinNames(), tmx...), nil
}
