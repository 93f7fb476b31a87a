package scenes

import (
	"fmt"

	"github.com/automoto/robotjump/assets"
	"github.com/automoto/robotjump/scenes/banner"
	cfg "github.com/automoto/robotjump/config"
	"github.com/automoto/robotjump/settings"
	"github.com/automoto/robotjump/shared/leveldata"
	"github.com/automoto/robotjump/sim"
	"github.com/automoto/robotjump/systems/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// RobotSceneConfig is what a RobotScene needs to build its levels.
type RobotSceneConfig struct {
	Levels     []string // level names in cycling order
	LevelIndex int
	Players    int
	Options    []sim.Option
	Robots     *assets.RobotImages
	Store      *settings.Store
}

// RobotScene runs one simulation and draws it.
type RobotScene struct {
	ecs          *ecs.ECS
	sim          *sim.Simulation
	sceneChanger SceneChanger
	config       RobotSceneConfig
	renderer     *render.Renderer
	banner       *banner.Banner
}

// NewRobotScene builds the simulation for the configured level. The error is
// returned rather than deferred so a broken level fails before the window runs.
func NewRobotScene(sc SceneChanger, c RobotSceneConfig) (*RobotScene, error) {
	if len(c.Levels) == 0 {
		return nil, fmt.Errorf("no levels to play")
	}
	name := c.Levels[c.LevelIndex%len(c.Levels)]
	level, err := leveldata.Find(name)
	if err != nil {
		return nil, err
	}

	players := c.Players
	if players > len(level.SpawnPoints) {
		log.WithFields(log.Fields{
			"map":     level.Name,
			"players": players,
			"spawns":  len(level.SpawnPoints),
		}).Warn("not enough spawn points, dropping players")
		players = len(level.SpawnPoints)
	}

	opts := append([]sim.Option{sim.WithPlayers(players)}, c.Options...)
	s, err := sim.New(level, opts...)
	if err != nil {
		return nil, fmt.Errorf("start level %q: %w", name, err)
	}

	rs := &RobotScene{
		sim:          s,
		sceneChanger: sc,
		config:       c,
		renderer:     &render.Renderer{Robots: c.Robots},
		banner:       banner.New(level.Name, cfg.UI.BannerHoldTime, cfg.UI.BannerSeconds),
	}
	rs.configure()
	return rs, nil
}

func (rs *RobotScene) configure() {
	rs.ecs = ecs.NewECS(rs.sim.World())

	rs.ecs.AddSystem(rs.updateSimulation)

	rs.ecs.AddRenderer(cfg.Default, rs.renderer.DrawBlocks)
	rs.ecs.AddRenderer(cfg.Default, rs.renderer.DrawCharacters)
	rs.ecs.AddRenderer(cfg.Overlay, render.DrawDebug)
	rs.ecs.AddRenderer(cfg.Overlay, rs.renderer.DrawHUD)
}

func (rs *RobotScene) updateSimulation(_ *ecs.ECS) {
	rs.sim.Step(PollFrame(rs.sim.Players()))
	rs.banner.Update(float32(rs.sim.TickInterval().Seconds()))
}

func (rs *RobotScene) Update() {
	rs.handleHotkeys()
	rs.ecs.Update()
}

func (rs *RobotScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Display.ClearColor)
	rs.ecs.Draw(screen)
	render.DrawBanner(screen, rs.banner.Text, rs.banner.Alpha())
}

// Layout is the size of the level being played.
func (rs *RobotScene) Layout() (int, int) {
	level := rs.sim.Level()
	return level.Width, level.Height
}

func (rs *RobotScene) handleHotkeys() {
	switch {
	case inpututil.IsKeyJustPressed(cfg.Input.ToggleDebug):
		cfg.Debug.Overlay = !cfg.Debug.Overlay
		rs.save()
	case inpututil.IsKeyJustPressed(cfg.Input.ToggleFullscreen):
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		rs.save()
	case inpututil.IsKeyJustPressed(cfg.Input.NextLevel):
		rs.switchLevel(rs.config.LevelIndex + 1)
	case inpututil.IsKeyJustPressed(cfg.Input.Restart):
		rs.switchLevel(rs.config.LevelIndex)
	}
}

func (rs *RobotScene) switchLevel(index int) {
	next := rs.config
	next.LevelIndex = index % len(next.Levels)
	scene, err := NewRobotScene(rs.sceneChanger, next)
	if err != nil {
		log.WithError(err).Warn("could not switch level")
		return
	}
	log.WithField("map", next.Levels[next.LevelIndex]).Info("switching level")
	if !ebiten.IsFullscreen() {
		ebiten.SetWindowSize(scene.Layout())
	}
	rs.sceneChanger.ChangeScene(scene)
	scene.save()
}

func (rs *RobotScene) save() {
	_ = rs.config.Store.Save(&settings.Saved{
		Fullscreen:   ebiten.IsFullscreen(),
		DebugOverlay: cfg.Debug.Overlay,
		Level:        rs.config.Levels[rs.config.LevelIndex],
		Players:      rs.config.Players,
	})
}
