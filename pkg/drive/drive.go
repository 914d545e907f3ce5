// Package drive follows a planned path with a holonomic drivetrain while
// holding a goal heading.
package drive

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/tigerbot-team/tigerbot/go-motion/pkg/angle"
	"github.com/tigerbot-team/tigerbot/go-motion/pkg/mathutil"
	"github.com/tigerbot-team/tigerbot/go-motion/pkg/pathfollow"
	"github.com/tigerbot-team/tigerbot/go-motion/pkg/vec"
)

type Config struct {
	// Speed is the translation speed in m/s.
	Speed float64 `yaml:"speed"`
	// FollowTolerance is how close in metres the robot must be to a path
	// segment to follow it.  It must be larger than the planner's tile size.
	FollowTolerance float64 `yaml:"follow_tolerance"`
	// ArrivalTolerance is how close in metres counts as at the target.
	ArrivalTolerance float64 `yaml:"arrival_tolerance"`
	// AngleToleranceDeg is how close the heading must be to the goal.
	AngleToleranceDeg float64 `yaml:"angle_tolerance_deg"`
	// TurnGain maps heading error in radians to turn rate in rad/s.
	TurnGain float64 `yaml:"turn_gain"`
	// MaxTurnRate caps the turn rate, rad/s.
	MaxTurnRate float64 `yaml:"max_turn_rate"`
}

func DefaultConfig() Config {
	return Config{
		Speed:             0.3,
		FollowTolerance:   0.175,
		ArrivalTolerance:  0.175,
		AngleToleranceDeg: 3,
		TurnGain:          2,
		MaxTurnRate:       math.Pi / 2,
	}
}

// Pose is where the robot is: field position in metres and heading.
type Pose struct {
	Position vec.Vec2d
	Heading  angle.CCWAngle
}

// Output is the per-tick command for the drivetrain.
type Output struct {
	// Velocity is field relative, m/s.
	Velocity vec.Vec2d
	// TurnRate is anti-clockwise rad/s.
	TurnRate float64
	State    pathfollow.State
	Target   vec.Vec2d
	// Done is set once the robot is at the goal position and heading.
	Done bool
}

type Controller struct {
	cfg      Config
	planner  pathfollow.Planner[vec.Vec2d]
	follower *pathfollow.Follower[vec.Vec2d]
	log      *zap.Logger

	goal        vec.Vec2d
	goalHeading angle.CCWAngle
	lastState   pathfollow.State
	hasTicked   bool
}

func New(cfg Config, planner pathfollow.Planner[vec.Vec2d], log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		cfg:         cfg,
		planner:     planner,
		follower:    pathfollow.New[vec.Vec2d](cfg.FollowTolerance),
		log:         log.Named("drive"),
		goalHeading: angle.CCWRad(0),
	}
}

// SetGoal replaces the goal.  Nothing needs cleaning up from the previous
// one; the next tick simply steers somewhere else.
func (c *Controller) SetGoal(position vec.Vec2d, heading angle.CCWAngle) {
	c.goal = position
	c.goalHeading = heading
	c.log.Info("New goal", zap.Stringer("position", position), zap.Stringer("heading", heading))
}

func (c *Controller) Goal() (vec.Vec2d, angle.CCWAngle) {
	return c.goal, c.goalHeading
}

// Tick runs one control cycle.
func (c *Controller) Tick(pose Pose) (Output, error) {
	c.planner.SetGoal(c.goal)
	target := c.follower.SelectTarget(c.planner, pose.Position, c.goal)
	c.noteState(target.State)

	out := Output{
		State:  target.State,
		Target: target.Point,
	}
	turnRate, headingOK := c.turn(pose.Heading)
	out.TurnRate = turnRate

	if target.State == pathfollow.OffPath {
		// The path is stale.  Hold still rather than jump at it.
		return out, nil
	}

	delta := target.Point.Sub(pose.Position)
	if delta.Magnitude() < c.cfg.ArrivalTolerance {
		// With ArrivalTolerance no larger than FollowTolerance, being this
		// close to an intermediate point puts us on the next segment, so
		// only the end of the path gets here.
		out.Done = headingOK
		return out, nil
	}

	v, err := pathfollow.Feedforward(delta, c.cfg.Speed)
	if err != nil {
		return Output{}, errors.Wrapf(err, "drive: steering %v towards %v", pose.Position, target.Point)
	}
	out.Velocity = v

	c.log.Debug("Tick",
		zap.Stringer("position", pose.Position),
		zap.Stringer("target", target.Point),
		zap.Stringer("velocity", v),
		zap.Float64("turnRate", turnRate))
	return out, nil
}

// turn returns the heading-hold turn rate and whether the heading is already
// within tolerance.
func (c *Controller) turn(heading angle.CCWAngle) (float64, bool) {
	if heading.InTolerance(c.goalHeading, angle.CCWDeg(c.cfg.AngleToleranceDeg)) {
		return 0, true
	}
	headingError := c.goalHeading.Sub(heading).WrapRadRange(math.Pi)
	return mathutil.Clamp(c.cfg.TurnGain*headingError.Rad(), -c.cfg.MaxTurnRate, c.cfg.MaxTurnRate), false
}

func (c *Controller) noteState(state pathfollow.State) {
	if c.hasTicked && state == c.lastState {
		return
	}
	switch state {
	case pathfollow.Invalid:
		c.log.Warn("Path bad, heading straight for goal", zap.Stringer("goal", c.goal))
	case pathfollow.OffPath:
		c.log.Warn("Waiting for path to catch up", zap.Stringer("goal", c.goal))
	default:
		c.log.Info("Following path", zap.Stringer("goal", c.goal))
	}
	c.lastState = state
	c.hasTicked = true
}
