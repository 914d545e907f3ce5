package arm

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/tigerbot-team/tigerbot/go-motion/pkg/pathfollow"
	"github.com/tigerbot-team/tigerbot/go-motion/pkg/tolerance"
)

type Config struct {
	// Speed is the joint-space speed of the feedforward command.
	Speed float64 `yaml:"speed"`
	// StopTolerance is the error below which the arm stops moving.
	StopTolerance float64 `yaml:"stop_tolerance"`
	// StartTolerance is the error above which it starts again.  Must be
	// larger than StopTolerance.
	StartTolerance float64 `yaml:"start_tolerance"`
	// FollowTolerance is how close to a path segment counts as on it.
	FollowTolerance float64 `yaml:"follow_tolerance"`
}

func DefaultConfig() Config {
	return Config{
		Speed:           0.5,
		StopTolerance:   0.01,
		StartTolerance:  0.02,
		FollowTolerance: 0.04,
	}
}

// Output holds the motor outputs for one tick.
type Output struct {
	Bottom, Top float64
	State       pathfollow.State
	Target      Pose
	Settled     bool
	// Idle is set when there is no target at all.
	Idle bool
}

type Controller struct {
	cfg      Config
	planner  pathfollow.Planner[Pose]
	follower *pathfollow.Follower[Pose]
	gate     *tolerance.Gate
	log      *zap.Logger

	target    Pose
	hasTarget bool
	lastState pathfollow.State
	hasTicked bool
}

func New(cfg Config, planner pathfollow.Planner[Pose], log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		cfg:      cfg,
		planner:  planner,
		follower: pathfollow.New[Pose](cfg.FollowTolerance),
		gate:     tolerance.NewGate(cfg.StartTolerance, cfg.StopTolerance),
		log:      log.Named("arm"),
	}
}

func (c *Controller) SetTarget(target Pose) {
	c.target = target
	c.hasTarget = true
	c.log.Info("New target", zap.Stringer("target", target))
}

// ClearTarget idles the arm.
func (c *Controller) ClearTarget() {
	c.hasTarget = false
	c.gate.Reset()
}

func (c *Controller) Target() (Pose, bool) {
	return c.target, c.hasTarget
}

func (c *Controller) Tick(current Pose) (Output, error) {
	if !c.hasTarget {
		return Output{Idle: true, State: pathfollow.Invalid}, nil
	}

	c.planner.SetGoal(c.target)
	target := c.follower.SelectTarget(c.planner, current, c.target)
	c.noteState(target.State)

	// Off the path we still move, straight at the target, while the planner
	// catches up.
	towardsTarget := target.Point.StateSpace().Sub(current.StateSpace())

	out := Output{
		State:  target.State,
		Target: target.Point,
	}
	// Tolerance hysteresis so the motors don't chatter around the target.
	if c.gate.Update(towardsTarget.MagnitudeSq()) {
		out.Settled = true
		return out, nil
	}

	v, err := pathfollow.Feedforward(towardsTarget, c.cfg.Speed)
	if err != nil {
		return Output{}, errors.Wrapf(err, "arm: moving from %v to %v", current, target.Point)
	}
	out.Bottom = v.X
	out.Top = v.Y

	c.log.Debug("Tick",
		zap.Stringer("current", current),
		zap.Stringer("target", target.Point),
		zap.Float64("bottomOut", out.Bottom),
		zap.Float64("topOut", out.Top))
	return out, nil
}

func (c *Controller) noteState(state pathfollow.State) {
	if c.hasTicked && state == c.lastState {
		return
	}
	switch state {
	case pathfollow.OnPath:
		c.log.Info("Following path")
	default:
		c.log.Info("Not on a path, going straight to target", zap.Stringer("state", state))
	}
	c.lastState = state
	c.hasTicked = true
}
