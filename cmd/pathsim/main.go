package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/tigerbot-team/tigerbot/go-motion/pkg/angle"
	"github.com/tigerbot-team/tigerbot/go-motion/pkg/arm"
	"github.com/tigerbot-team/tigerbot/go-motion/pkg/config"
	"github.com/tigerbot-team/tigerbot/go-motion/pkg/drive"
	"github.com/tigerbot-team/tigerbot/go-motion/pkg/pathfollow"
	"github.com/tigerbot-team/tigerbot/go-motion/pkg/sim"
	"github.com/tigerbot-team/tigerbot/go-motion/pkg/vec"
)

var CLI struct {
	Config     string `help:"YAML tuning file." default:"${config_path}" type:"path"`
	SaveConfig string `help:"Write the config in use to this file." type:"path"`
	LogLevel   string `help:"debug, info, warn or error." default:"info"`
	Ticks      int    `help:"Maximum number of control ticks to run." default:"3000"`
	Lag        int    `help:"Ticks before the planner has a path." default:"0"`
	CSV        string `name:"csv" help:"Write per-tick samples to this CSV file." type:"path"`
	PNG        string `name:"png" help:"Plot the run to this PNG file." type:"path"`

	Drive DriveCmd `cmd:"" help:"Drive a holonomic base along a path in metres."`
	Arm   ArmCmd   `cmd:"" help:"Move a two-joint arm along a path in joint space (radians)."`
}

type Context struct {
	ctx context.Context
	cfg config.Config
	log *zap.Logger
}

type DriveCmd struct {
	Waypoints       pointList `help:"Planned path, x,y;x,y;..." default:"0,0;0,1;1,2"`
	Start           point     `help:"Start position x,y." default:"0,0"`
	StartHeadingDeg float64   `help:"Start heading, degrees anti-clockwise."`
	GoalHeadingDeg  float64   `help:"Goal heading, degrees anti-clockwise."`
}

func (d *DriveCmd) Run(c *Context) error {
	waypoints := d.Waypoints.Points
	goal := waypoints[len(waypoints)-1]

	planner := sim.NewLagPlanner[vec.Vec2d](pathfollow.NewStaticPlanner(waypoints), CLI.Lag)
	ctrl := drive.New(c.cfg.Drive, planner, c.log)
	ctrl.SetGoal(goal, angle.CCWDeg(d.GoalHeadingDeg))

	start := drive.Pose{Position: vec.Vec2d(d.Start), Heading: angle.CCWDeg(d.StartHeadingDeg)}
	samples, err := sim.RunDrive(c.ctx, ctrl, start, c.cfg.TickInterval, CLI.Ticks)
	if err != nil {
		return err
	}
	return report(c, waypoints, samples)
}

type ArmCmd struct {
	Waypoints pointList `help:"Planned path, bottom,top;bottom,top;..." default:"0,0;0.5,0.25;1,1"`
	Start     point     `help:"Start pose bottom,top." default:"0,0"`
}

func (a *ArmCmd) Run(c *Context) error {
	var path []arm.Pose
	for _, p := range a.Waypoints.Points {
		path = append(path, arm.NewPose(p.X, p.Y))
	}
	target := path[len(path)-1]

	planner := sim.NewLagPlanner[arm.Pose](pathfollow.NewStaticPlanner(path), CLI.Lag)
	ctrl := arm.New(c.cfg.Arm, planner, c.log)
	ctrl.SetTarget(target)

	samples, err := sim.RunArm(c.ctx, ctrl, arm.NewPose(a.Start.X, a.Start.Y), c.cfg.TickInterval, CLI.Ticks)
	if err != nil {
		return err
	}
	return report(c, a.Waypoints.Points, samples)
}

func report(c *Context, waypoints []vec.Vec2d, samples []sim.Sample) error {
	if len(samples) == 0 {
		return errors.New("no ticks ran")
	}
	last := samples[len(samples)-1]
	c.log.Info("Run finished",
		zap.Int("ticks", len(samples)),
		zap.Bool("done", last.Done),
		zap.Float64("x", last.X),
		zap.Float64("y", last.Y))

	if CLI.CSV != "" {
		f, err := os.Create(CLI.CSV)
		if err != nil {
			return errors.Wrap(err, "creating CSV")
		}
		defer f.Close()
		if err := sim.WriteCSV(f, samples); err != nil {
			return err
		}
	}
	if CLI.PNG != "" {
		if err := sim.RenderPNG(CLI.PNG, waypoints, samples); err != nil {
			return err
		}
	}
	if !last.Done {
		return errors.Errorf("did not arrive within %d ticks", CLI.Ticks)
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "bad log level")
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = lvl
	return zc.Build()
}

func main() {
	fmt.Print("---- pathsim ----\n\n")
	fmt.Println("GOMAXPROCS", runtime.GOMAXPROCS(0))

	k := kong.Parse(&CLI,
		kong.Name("pathsim"),
		kong.Description("Simulate the path follower against an ideal robot."),
		kong.Vars{"config_path": config.DefaultPath},
	)

	log, err := newLogger(CLI.LogLevel)
	k.FatalIfErrorf(err)
	defer log.Sync()

	cfg, err := config.Load(CLI.Config)
	k.FatalIfErrorf(err)
	log.Info("Using config", zap.Any("config", cfg))
	if CLI.SaveConfig != "" {
		if err := config.Save(CLI.SaveConfig, cfg); err != nil {
			log.Warn("Failed to save config in use", zap.Error(err))
		}
	}

	// Our global context, we cancel it to trigger shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 2)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		s := <-signals
		log.Info("Signal", zap.Stringer("signal", s))
		cancel()
	}()

	err = k.Run(&Context{ctx: ctx, cfg: cfg, log: log})
	k.FatalIfErrorf(err)
}
