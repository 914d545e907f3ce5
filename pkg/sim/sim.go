// Package sim runs the motion controllers against an ideal plant at a fixed
// tick, for trying out tunings without a robot.
package sim

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/tigerbot-team/tigerbot/go-motion/pkg/angle"
	"github.com/tigerbot-team/tigerbot/go-motion/pkg/arm"
	"github.com/tigerbot-team/tigerbot/go-motion/pkg/drive"
	"github.com/tigerbot-team/tigerbot/go-motion/pkg/vec"
)

// Sample is one tick of a run.  For the arm, X and Y are the bottom and top
// joint angles in radians.
type Sample struct {
	Tick       int     `csv:"tick"`
	TimeSecs   float64 `csv:"time_s"`
	X          float64 `csv:"x"`
	Y          float64 `csv:"y"`
	HeadingDeg float64 `csv:"heading_deg"`
	TargetX    float64 `csv:"target_x"`
	TargetY    float64 `csv:"target_y"`
	VX         float64 `csv:"vx"`
	VY         float64 `csv:"vy"`
	TurnRate   float64 `csv:"turn_rate"`
	State      string  `csv:"state"`
	Done       bool    `csv:"done"`
}

// Position returns the sample's position as a vector.
func (s Sample) Position() vec.Vec2d {
	return vec.New(s.X, s.Y)
}

// RunDrive ticks the drive controller until it reports done, maxTicks have
// run or ctx is cancelled.  The plant moves exactly as commanded.
func RunDrive(ctx context.Context, c *drive.Controller, start drive.Pose, dt time.Duration, maxTicks int) ([]Sample, error) {
	pose := start
	var samples []Sample
	for tick := 0; tick < maxTicks; tick++ {
		if err := ctx.Err(); err != nil {
			return samples, err
		}
		out, err := c.Tick(pose)
		if err != nil {
			return samples, errors.Wrapf(err, "tick %d", tick)
		}
		samples = append(samples, Sample{
			Tick:       tick,
			TimeSecs:   float64(tick) * dt.Seconds(),
			X:          pose.Position.X,
			Y:          pose.Position.Y,
			HeadingDeg: pose.Heading.Deg(),
			TargetX:    out.Target.X,
			TargetY:    out.Target.Y,
			VX:         out.Velocity.X,
			VY:         out.Velocity.Y,
			TurnRate:   out.TurnRate,
			State:      out.State.String(),
			Done:       out.Done,
		})
		if out.Done {
			break
		}
		pose = drive.Pose{
			Position: pose.Position.Add(out.Velocity.Mul(dt.Seconds())),
			Heading:  pose.Heading.Add(angle.CCWRad(out.TurnRate * dt.Seconds())).WrapRadRange(math.Pi),
		}
	}
	return samples, nil
}

// RunArm ticks the arm controller until it settles, maxTicks have run or
// ctx is cancelled.  Motor outputs are treated as joint speeds in rad/s.
func RunArm(ctx context.Context, c *arm.Controller, start arm.Pose, dt time.Duration, maxTicks int) ([]Sample, error) {
	pose := start
	var samples []Sample
	for tick := 0; tick < maxTicks; tick++ {
		if err := ctx.Err(); err != nil {
			return samples, err
		}
		out, err := c.Tick(pose)
		if err != nil {
			return samples, errors.Wrapf(err, "tick %d", tick)
		}
		target := out.Target.StateSpace()
		samples = append(samples, Sample{
			Tick:     tick,
			TimeSecs: float64(tick) * dt.Seconds(),
			X:        pose.Bottom.Rad(),
			Y:        pose.Top.Rad(),
			TargetX:  target.X,
			TargetY:  target.Y,
			VX:       out.Bottom,
			VY:       out.Top,
			State:    out.State.String(),
			Done:     out.Settled || out.Idle,
		})
		if out.Settled || out.Idle {
			break
		}
		pose = arm.Pose{
			Bottom: pose.Bottom.Add(angle.CCWRad(out.Bottom * dt.Seconds())),
			Top:    pose.Top.Add(angle.CCWRad(out.Top * dt.Seconds())),
		}
	}
	return samples, nil
}
