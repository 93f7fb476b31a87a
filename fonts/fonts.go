package fonts

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
)

func (f FontName) Get() *text.GoTextFace {
	return getFont(f)
}

var (
	source *text.GoTextFaceSource
	fonts  = map[FontName]*text.GoTextFace{}
)

// LoadGoRegular parses the bundled Go font once. Faces share the parsed source.
func LoadGoRegular() error {
	if source != nil {
		return nil
	}
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("parse go regular font: %w", err)
	}
	source = s
	return nil
}

func LoadFontWithSize(name FontName, size float64) error {
	if err := LoadGoRegular(); err != nil {
		return err
	}
	fonts[name] = &text.GoTextFace{Source: source, Size: size}
	return nil
}

func getFont(name FontName) *text.GoTextFace {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
