// Package banner times the level title: shown at full opacity, then faded out.
package banner

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Banner shows a message at full opacity for a while, then fades it out.
type Banner struct {
	Text  string
	hold  float32
	fade  *gween.Tween
	alpha float32
	done  bool
}

func New(text string, hold, fade float32) *Banner {
	return &Banner{
		Text:  text,
		hold:  hold,
		fade:  gween.New(1, 0, fade, ease.InQuad),
		alpha: 1,
	}
}

// Update advances the banner by dt seconds. Time left over when the hold ends
// goes into the fade.
func (b *Banner) Update(dt float32) {
	if b.hold > 0 {
		b.hold -= dt
		if b.hold >= 0 {
			return
		}
		dt, b.hold = -b.hold, 0
	}
	b.alpha, b.done = b.fade.Update(dt)
}

// Alpha is the current opacity, 0 once the fade has finished.
func (b *Banner) Alpha() float32 {
	return b.alpha
}

// Done reports whether the fade has finished.
func (b *Banner) Done() bool {
	return b.done
}
