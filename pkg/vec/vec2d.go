// Package vec provides a 2-D vector used both for Cartesian positions and
// for points in a two-joint configuration space.
package vec

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/tigerbot-team/tigerbot/go-motion/pkg/angle"
	"github.com/tigerbot-team/tigerbot/go-motion/pkg/mathutil"
)

// ErrDegenerateVector is returned when normalizing a vector with no usable
// direction (zero, NaN or infinite length).
var ErrDegenerateVector = errors.New("vec: cannot normalize degenerate vector")

// Vec2d has the same layout as r2.Vec so the two convert freely.
type Vec2d struct {
	X, Y float64
}

func New(x, y float64) Vec2d {
	return Vec2d{X: x, Y: y}
}

// FromPolar builds a vector from a direction and length using the
// standard maths convention, i.e. the angle's counterclockwise value.
func FromPolar(a angle.Any, magnitude float64) Vec2d {
	ccw := a.CCW()
	return Vec2d{X: magnitude * ccw.Cos(), Y: magnitude * ccw.Sin()}
}

func (v Vec2d) toR2() r2.Vec {
	return r2.Vec(v)
}

func (v Vec2d) Add(o Vec2d) Vec2d {
	return Vec2d(r2.Add(v.toR2(), o.toR2()))
}

func (v Vec2d) Sub(o Vec2d) Vec2d {
	return Vec2d(r2.Sub(v.toR2(), o.toR2()))
}

func (v Vec2d) Mul(s float64) Vec2d {
	return Vec2d(r2.Scale(s, v.toR2()))
}

func (v Vec2d) Div(s float64) Vec2d {
	return Vec2d(r2.Scale(1/s, v.toR2()))
}

// MulXY scales each component independently.
func (v Vec2d) MulXY(sx, sy float64) Vec2d {
	return Vec2d{X: v.X * sx, Y: v.Y * sy}
}

func (v Vec2d) Neg() Vec2d {
	return v.Mul(-1)
}

func (v Vec2d) Dot(o Vec2d) float64 {
	return r2.Dot(v.toR2(), o.toR2())
}

func (v Vec2d) MagnitudeSq() float64 {
	return r2.Norm2(v.toR2())
}

func (v Vec2d) Magnitude() float64 {
	return r2.Norm(v.toR2())
}

// Normalize returns the unit vector in the direction of v.  A vector with
// no direction is a caller bug, reported as ErrDegenerateVector rather than
// as a zero or NaN result.
func (v Vec2d) Normalize() (Vec2d, error) {
	m := v.Magnitude()
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return Vec2d{}, errors.WithMessagef(ErrDegenerateVector, "normalize %v", v)
	}
	return v.Div(m), nil
}

// DistanceSq is the squared distance between two points.
func (v Vec2d) DistanceSq(o Vec2d) float64 {
	return v.Sub(o).MagnitudeSq()
}

// DistanceToLineSegmentSq returns the squared distance from v to the closest
// point on the segment [a, b].
func (v Vec2d) DistanceToLineSegmentSq(a, b Vec2d) float64 {
	ab := b.Sub(a)
	lenSq := ab.MagnitudeSq()
	if lenSq == 0 {
		return v.DistanceSq(a)
	}
	t := mathutil.Clamp(v.Sub(a).Dot(ab)/lenSq, 0, 1)
	return v.DistanceSq(a.Add(ab.Mul(t)))
}

// Angle returns the counterclockwise direction of v from the +X axis.
func (v Vec2d) Angle() angle.CCWAngle {
	return angle.CCWRad(math.Atan2(v.Y, v.X))
}

func (v Vec2d) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}
