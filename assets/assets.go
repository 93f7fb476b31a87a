package assets

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/automoto/robotjump/shared/simconfig"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	log "github.com/sirupsen/logrus"
)

// ErrMissingSprite is returned when a robot image is not in the asset directory.
var ErrMissingSprite = errors.New("missing robot sprite")

// RobotImages holds one right-facing image per sprite frame. Left-facing frames
// are drawn by flipping at draw time.
type RobotImages struct {
	Frames [simconfig.FrameCount]*ebiten.Image
}

// Frame returns the image for f.
func (r *RobotImages) Frame(f simconfig.SpriteFrame) *ebiten.Image {
	if f < 0 || f >= simconfig.FrameCount {
		f = simconfig.FrameIdle
	}
	return r.Frames[f]
}

// FrameFile is the file name of a frame inside the robot asset directory.
func FrameFile(f simconfig.SpriteFrame) string {
	switch {
	case f == simconfig.FrameIdle:
		return "character_robot_idle.png"
	case f == simconfig.FrameJump:
		return "character_robot_jump.png"
	default:
		return fmt.Sprintf("character_robot_walk%d.png", int(f-simconfig.FrameWalk0))
	}
}

// LoadRobot reads every robot frame from dir. All frames are loaded up front so
// a missing file fails at startup rather than mid-game.
func LoadRobot(dir string) (*RobotImages, error) {
	var imgs RobotImages
	for f := simconfig.FrameIdle; f < simconfig.FrameCount; f++ {
		path := filepath.Join(dir, FrameFile(f))
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%s: %w", path, ErrMissingSprite)
		}
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		imgs.Frames[f] = img
	}
	log.WithField("dir", dir).Info("loaded robot sprites")
	return &imgs, nil
}

var (
	robotBody   = color.RGBA{R: 150, G: 160, B: 175, A: 255}
	robotDark   = color.RGBA{R: 70, G: 75, B: 90, A: 255}
	robotVisor  = color.RGBA{R: 90, G: 200, B: 230, A: 255}
	robotAccent = color.RGBA{R: 240, G: 150, B: 40, A: 255}
)

// PlaceholderRobot draws simple robot frames of the given size. The transparent
// margins match the sprite layout the collision box expects: empty space above
// the head and at both sides.
func PlaceholderRobot(w, h int) *RobotImages {
	var imgs RobotImages
	for f := simconfig.FrameIdle; f < simconfig.FrameCount; f++ {
		imgs.Frames[f] = drawPlaceholder(w, h, f)
	}
	return &imgs
}

func drawPlaceholder(w, h int, f simconfig.SpriteFrame) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)

	// Head and visor
	vector.DrawFilledRect(img, fw*0.3, fh*0.28, fw*0.4, fh*0.2, robotBody, false)
	vector.DrawFilledRect(img, fw*0.5, fh*0.33, fw*0.18, fh*0.06, robotVisor, false)
	vector.DrawFilledRect(img, fw*0.48, fh*0.2, fw*0.04, fh*0.08, robotDark, false)

	// Torso
	vector.DrawFilledRect(img, fw*0.25, fh*0.5, fw*0.5, fh*0.28, robotBody, false)
	vector.DrawFilledRect(img, fw*0.3, fh*0.56, fw*0.12, fh*0.05, robotAccent, false)

	// Legs swing through the walk cycle
	var stride float32
	switch f {
	case simconfig.FrameIdle:
	case simconfig.FrameJump:
		stride = fw * 0.1
		vector.DrawFilledRect(img, fw*0.12, fh*0.5, fw*0.1, fh*0.08, robotDark, false)
		vector.DrawFilledRect(img, fw*0.78, fh*0.5, fw*0.1, fh*0.08, robotDark, false)
	default:
		phase := int(f - simconfig.FrameWalk0)
		offsets := [simconfig.WalkFrames]float32{0, 0.04, 0.08, 0.04, 0, -0.04, -0.08, -0.04}
		stride = fw * offsets[phase]
	}
	vector.DrawFilledRect(img, fw*0.3+stride, fh*0.78, fw*0.14, fh*0.22, robotDark, false)
	vector.DrawFilledRect(img, fw*0.56-stride, fh*0.78, fw*0.14, fh*0.22, robotDark, false)

	return img
}
