// Command robotsim replays an input script against a level without a window
// and prints every robot's state after each tick.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/robotjump/shared/leveldata"
	"github.com/automoto/robotjump/shared/simconfig"
	"github.com/automoto/robotjump/sim"
	log "github.com/sirupsen/logrus"
)

func main() {
	scriptPath := flag.String("script", "", "Input script (JSON); empty reads stdin")
	levelName := flag.String("level", "", "Level name or .tmx path; overrides the script")
	paced := flag.Bool("paced", false, "Run at the real tick rate instead of as fast as possible")
	jumpOnHold := flag.Bool("jump-on-hold", false, "Keep jumping while the jump key is held")
	tuningPath := flag.String("tuning", "", "TOML file overriding physics and world values")
	logLevel := flag.String("log", "warn", "Log level (trace, debug, info, warn, error)")
	flag.Parse()

	lvl, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("bad log level: %v", err)
	}
	log.SetLevel(lvl)

	script, err := openScript(*scriptPath)
	if err != nil {
		log.Fatal(err)
	}
	if *levelName != "" {
		script.Level = *levelName
	}
	if script.Level == "" {
		script.Level = "challenge"
	}

	level, err := leveldata.Find(script.Level)
	if err != nil {
		log.Fatalf("load level: %v", err)
	}
	tuning := simconfig.DefaultTuning()
	if *tuningPath != "" {
		if tuning, err = simconfig.LoadTuning(*tuningPath); err != nil {
			log.Fatal(err)
		}
	}
	s, err := sim.New(level,
		sim.WithTuning(tuning),
		sim.WithPlayers(script.Players),
		sim.WithJumpOnHold(*jumpOnHold || tuning.Character.JumpOnHold),
	)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := sim.NewLoop(s, script.Source(), *paced)
	loop.OnTick = func(s *sim.Simulation) {
		printTick(os.Stdout, s)
	}
	if err := loop.Run(ctx); err != nil {
		log.WithError(err).Warn("stopped early")
	}
}

func openScript(path string) (*Script, error) {
	if path == "" {
		return ReadScript(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return ReadScript(f)
}

func printTick(w io.Writer, s *sim.Simulation) {
	for _, c := range s.Characters() {
		fmt.Fprintf(w, "%d\tp%d\tx=%g\ty=%g\t%s\t%s\tframe=%d\n",
			s.Tick(), c.PlayerIndex+1, c.X, c.Y, c.Jump, c.LastMove, c.Frame)
	}
}
