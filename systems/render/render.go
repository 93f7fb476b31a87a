// Package render draws a robot world. It only reads simulation state.
package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/robotjump/assets"
	cfg "github.com/automoto/robotjump/config"
	"github.com/automoto/robotjump/components"
	"github.com/automoto/robotjump/fonts"
	"github.com/automoto/robotjump/shared/gamemath"
	"github.com/automoto/robotjump/shared/geom"
	"github.com/automoto/robotjump/systems"
	"github.com/automoto/robotjump/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
	textOp = &text.DrawOptions{}
)

// Renderer holds the images shared by every draw call.
type Renderer struct {
	Robots *assets.RobotImages
}

// DrawBlocks fills every level block with its colour.
func (r *Renderer) DrawBlocks(e *ecs.ECS, screen *ebiten.Image) {
	tags.Block.Each(e.World, func(entry *donburi.Entry) {
		b := components.Block.Get(entry)
		fillRect(screen, b.Rect, b.Color)
	})
}

// DrawCharacters blits each robot at its sprite box, flipped when facing left.
// With the debug overlay on, the collision box is drawn under the sprite and
// the feet probe on top of it.
func (r *Renderer) DrawCharacters(e *ecs.ECS, screen *ebiten.Image) {
	for _, entry := range systems.CharactersInOrder(e.World) {
		c := components.Character.Get(entry)
		sprite := components.Sprite.Get(entry)

		if cfg.Debug.Overlay {
			fillRect(screen, c.CollisionBox(), cfg.UI.CollisionBoxColor)
		}

		img := r.Robots.Frame(sprite.Frame)
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		if sprite.FlipX {
			drawOp.GeoM.Scale(-1, 1)
			drawOp.GeoM.Translate(float64(img.Bounds().Dx()), 0)
		}
		drawOp.GeoM.Translate(c.X, c.Y)
		if c.PlayerIndex < len(cfg.UI.PlayerTints) {
			drawOp.ColorScale.ScaleWithColor(cfg.UI.PlayerTints[c.PlayerIndex])
		}
		screen.DrawImage(img, drawOp)

		if cfg.Debug.Overlay {
			fillRect(screen, c.FeetProbe(), cfg.UI.FeetProbeColor)
		}
	}
}

// DrawHUD writes the control hints and, with the overlay on, each robot's state.
func (r *Renderer) DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUD.Get()
	y := cfg.UI.HUDMargin
	for _, entry := range systems.CharactersInOrder(e.World) {
		c := components.Character.Get(entry)
		line := fmt.Sprintf("P%d", c.PlayerIndex+1)
		if c.PlayerIndex < len(cfg.Input.Schemes) {
			line += "  " + cfg.Input.Schemes[c.PlayerIndex].Name
		}
		if cfg.Debug.Overlay {
			peak, rise := gamemath.JumpPeak(c.Config.JumpStartVelocity, c.Config.JumpMass, c.Config.MaxForce)
			air := gamemath.JumpAirTicks(c.Config.JumpStartVelocity, c.Config.JumpMass, c.Config.MaxForce)
			line += fmt.Sprintf("  x=%.0f y=%.0f %s v=%.0f  peak=%.0fpx/%dt air=%dt",
				c.X, c.Y, c.Jump, c.JumpSpeed, peak, rise, air)
		}
		drawText(screen, line, face, cfg.UI.HUDMargin, y, cfg.UI.HUDTextColor)
		y += face.Size + 4
	}
}

// DrawBanner draws centred text at the given alpha.
func DrawBanner(screen *ebiten.Image, msg string, alpha float32) {
	if alpha <= 0 {
		return
	}
	face := fonts.Title.Get()
	w, h := text.Measure(msg, face, 0)
	x := (float64(screen.Bounds().Dx()) - w) / 2
	y := float64(screen.Bounds().Dy())/3 - h/2

	textOp.GeoM.Reset()
	textOp.ColorScale.Reset()
	textOp.GeoM.Translate(x, y)
	textOp.ColorScale.ScaleWithColor(cfg.UI.HUDTextColor)
	textOp.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, msg, face, textOp)
}

func drawText(screen *ebiten.Image, msg string, face text.Face, x, y float64, clr color.Color) {
	textOp.GeoM.Reset()
	textOp.ColorScale.Reset()
	textOp.GeoM.Translate(x, y)
	textOp.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, msg, face, textOp)
}

func fillRect(screen *ebiten.Image, r geom.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}
