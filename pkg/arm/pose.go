// Package arm drives a two-joint arm along a path planned in joint space.
//
// All arm kinematics is treated as a 2d coordinate system: the bottom joint
// angle is the X axis and the top joint angle the Y axis.
package arm

import (
	"fmt"
	"math"

	"github.com/tigerbot-team/tigerbot/go-motion/pkg/angle"
	"github.com/tigerbot-team/tigerbot/go-motion/pkg/vec"
)

// Pose is a pair of joint angles, anti-clockwise positive.
type Pose struct {
	Bottom angle.CCWAngle
	Top    angle.CCWAngle
}

func NewPose(bottomRad, topRad float64) Pose {
	return Pose{Bottom: angle.CCWRad(bottomRad), Top: angle.CCWRad(topRad)}
}

// StateSpace maps the pose into the joint-space plane.  The top joint is
// wrapped into [-π, π) so that equivalent poses land on the same point.
func (p Pose) StateSpace() vec.Vec2d {
	return vec.New(p.Bottom.Rad(), p.Top.WrapRadRange(math.Pi).Rad())
}

func (p Pose) DistanceToLineSegmentSq(a, b Pose) float64 {
	return p.StateSpace().DistanceToLineSegmentSq(a.StateSpace(), b.StateSpace())
}

// Equal compares joint orientations.
func (p Pose) Equal(o Pose) bool {
	return p.Bottom.Equal(o.Bottom) && p.Top.Equal(o.Top)
}

func (p Pose) String() string {
	return fmt.Sprintf("bottom %v top %v", p.Bottom, p.Top)
}
