package main

import (
	"flag"

	"github.com/automoto/robotjump/assets"
	"github.com/automoto/robotjump/config"
	"github.com/automoto/robotjump/fonts"
	"github.com/automoto/robotjump/scenes"
	"github.com/automoto/robotjump/settings"
	"github.com/automoto/robotjump/shared/leveldata"
	"github.com/automoto/robotjump/shared/simconfig"
	"github.com/automoto/robotjump/sim"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Layout() (int, int)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout uses the current level's size as the screen.
func (g *Game) Layout(width, height int) (int, int) {
	return g.scene.Layout()
}

func main() {
	levelName := flag.String("level", "challenge", "Level name or path to a .tmx file")
	players := flag.Int("players", 2, "Number of robots (1-4)")
	assetDir := flag.String("assets", "", "Robot sprite directory, e.g. assets/robot (empty = placeholder robots)")
	debug := flag.Bool("debug", false, "Draw collision boxes and feet probes")
	jumpOnHold := flag.Bool("jump-on-hold", false, "Keep jumping while the jump key is held")
	tuningPath := flag.String("tuning", "", "TOML file overriding physics and world values")
	logLevel := flag.String("log", "info", "Log level (trace, debug, info, warn, error)")
	flag.Parse()

	lvl, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("bad log level: %v", err)
	}
	log.SetLevel(lvl)

	store, _ := settings.Open(config.Settings.AppName, config.Settings.ItemKey)
	saved, _ := store.Load()
	applySaved(saved)
	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	if saved != nil && saved.Level != "" && !explicit["level"] {
		*levelName = saved.Level
	}
	if saved != nil && saved.Players > 0 && !explicit["players"] {
		*players = saved.Players
	}
	if *debug {
		config.Debug.Overlay = true
	}

	tuning, err := loadTuning(*tuningPath)
	if err != nil {
		log.Fatal(err)
	}

	names, err := leveldata.Names()
	if err != nil {
		log.Fatalf("list levels: %v", err)
	}
	levels, index := levelCycle(names, *levelName)

	robots, err := loadRobots(*assetDir, tuning.Character)
	if err != nil {
		log.Fatalf("load sprites: %v", err)
	}
	if err := fonts.LoadFontWithSize(fonts.HUD, config.UI.HUDFontSize); err != nil {
		log.Fatal(err)
	}
	if err := fonts.LoadFontWithSize(fonts.Title, config.UI.TitleFontSize); err != nil {
		log.Fatal(err)
	}

	g := &Game{}
	scene, err := scenes.NewRobotScene(g, scenes.RobotSceneConfig{
		Levels:     levels,
		LevelIndex: index,
		Players:    *players,
		Options:    []sim.Option{sim.WithTuning(tuning), sim.WithJumpOnHold(*jumpOnHold || tuning.Character.JumpOnHold)},
		Robots:     robots,
		Store:      store,
	})
	if err != nil {
		log.Fatal(err)
	}
	g.scene = scene

	ebiten.SetWindowSize(scene.Layout())
	ebiten.SetWindowTitle(config.Display.Title)
	ebiten.SetTPS(tuning.Sim.TicksPerSecond)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func applySaved(saved *settings.Saved) {
	if saved == nil {
		return
	}
	config.Debug.Overlay = saved.DebugOverlay
	ebiten.SetFullscreen(saved.Fullscreen)
}

// levelCycle returns the levels Tab cycles through and where to start. A
// .tmx path is played first and joins the cycle.
func levelCycle(names []string, start string) ([]string, int) {
	for i, n := range names {
		if n == start {
			return names, i
		}
	}
	return append([]string{start}, names...), 0
}

func loadTuning(path string) (simconfig.Tuning, error) {
	if path == "" {
		return simconfig.DefaultTuning(), nil
	}
	t, err := simconfig.LoadTuning(path)
	if err != nil {
		return simconfig.Tuning{}, err
	}
	log.WithField("file", path).Info("loaded tuning")
	return t, nil
}

func loadRobots(dir string, c simconfig.CharacterConfig) (*assets.RobotImages, error) {
	if dir == "" {
		log.Info("using placeholder robots")
		return assets.PlaceholderRobot(int(c.Width), int(c.Height)), nil
	}
	return assets.LoadRobot(dir)
}
