// Package angle implements directional angles.
//
// An Angle[D] is an immutable radian measure tagged with a rotational
// convention.  Arithmetic only accepts angles with the same tag, while
// comparison, equality and the shortest-distance helpers all work on the
// counterclockwise-canonical value, so two angles describing the same
// orientation compare equal whichever convention built them.
package angle

import (
	"fmt"
	"math"

	"github.com/tigerbot-team/tigerbot/go-motion/pkg/mathutil"
)

// Any is satisfied by every Angle regardless of its tag.
type Any interface {
	Rad() float64
	CCW() Angle[Counterclockwise]
}

// Angle is a radian measure in the convention D.
//
// Angles are not comparable with ==; use Equal, which compares orientation.
type Angle[D Direction] struct {
	_   [0]func()
	rad float64

	// Sin and cos are computed on first use and kept for the lifetime of
	// the value.  Nil for zero values, which compute every time.
	trig *trigCache
}

type trigCache struct {
	sin, cos         float64
	haveSin, haveCos bool
}

// Rad creates an angle from radians.
func Rad[D Direction](rad float64) Angle[D] {
	return Angle[D]{rad: rad, trig: &trigCache{}}
}

// Deg creates an angle from degrees.
func Deg[D Direction](deg float64) Angle[D] {
	return Rad[D](deg * math.Pi / 180)
}

// Rot creates an angle from rotations (whole turns).
func Rot[D Direction](rot float64) Angle[D] {
	return Rad[D](rot * mathutil.Tau)
}

func CCWRad(rad float64) CCWAngle { return Rad[Counterclockwise](rad) }
func CCWDeg(deg float64) CCWAngle { return Deg[Counterclockwise](deg) }
func CWRad(rad float64) CWAngle   { return Rad[Clockwise](rad) }
func CWDeg(deg float64) CWAngle   { return Deg[Clockwise](deg) }
func AbsRad(rad float64) AbsAngle { return Rad[Absolute](rad) }
func AbsDeg(deg float64) AbsAngle { return Deg[Absolute](deg) }

func (a Angle[D]) Rad() float64 {
	return a.rad
}

func (a Angle[D]) Deg() float64 {
	return a.rad * 180 / math.Pi
}

func (a Angle[D]) Rot() float64 {
	return a.rad / mathutil.Tau
}

func (a Angle[D]) Add(o Angle[D]) Angle[D] {
	return Rad[D](a.rad + o.rad)
}

func (a Angle[D]) Sub(o Angle[D]) Angle[D] {
	return Rad[D](a.rad - o.rad)
}

func (a Angle[D]) Mul(scalar float64) Angle[D] {
	return Rad[D](a.rad * scalar)
}

func (a Angle[D]) Div(scalar float64) Angle[D] {
	return Rad[D](a.rad / scalar)
}

// Abs returns the angle with a non-negative measure in the same convention.
func (a Angle[D]) Abs() Angle[D] {
	return Rad[D](math.Abs(a.rad))
}

// Negate reverses the rotational sense.  The tag is unchanged.
func (a Angle[D]) Negate() Angle[D] {
	return Rad[D](-a.rad)
}

// WrapRad returns the equivalent angle in [min, max) radians.
func (a Angle[D]) WrapRad(min, max float64) Angle[D] {
	return Rad[D](mathutil.Wrap(a.rad, min, max))
}

func (a Angle[D]) WrapDeg(min, max float64) Angle[D] {
	return a.WrapRad(min*math.Pi/180, max*math.Pi/180)
}

func (a Angle[D]) WrapRot(min, max float64) Angle[D] {
	return a.WrapRad(min*mathutil.Tau, max*mathutil.Tau)
}

func (a Angle[D]) Wrap(min, max Angle[D]) Angle[D] {
	return a.WrapRad(min.rad, max.rad)
}

// WrapRadRange wraps into [-r, r) radians.
func (a Angle[D]) WrapRadRange(r float64) Angle[D] {
	return a.WrapRad(-r, r)
}

func (a Angle[D]) WrapDegRange(r float64) Angle[D] {
	return a.WrapDeg(-r, r)
}

func (a Angle[D]) WrapRotRange(r float64) Angle[D] {
	return a.WrapRot(-r, r)
}

// AbsDiff returns the shortest angular distance to o, in [0, π].
func (a Angle[D]) AbsDiff(o Angle[D]) Angle[D] {
	return Rad[D](absDiffRad(a.ccwRad(), o.ccwRad()))
}

// InTolerance reports whether o is strictly closer than tol to a.  The
// tolerance's sign and convention are ignored.
func (a Angle[D]) InTolerance(o Angle[D], tol Any) bool {
	return absDiffRad(a.ccwRad(), o.ccwRad()) < math.Abs(tol.CCW().rad)
}

func absDiffRad(a, b float64) float64 {
	a = mathutil.Wrap(a, 0, mathutil.Tau)
	b = mathutil.Wrap(b, 0, mathutil.Tau)
	direct := math.Abs(b - a)
	return math.Min(direct, mathutil.Tau-direct)
}

func (a Angle[D]) Sin() float64 {
	if a.trig == nil {
		return math.Sin(a.rad)
	}
	if !a.trig.haveSin {
		a.trig.sin = math.Sin(a.rad)
		a.trig.haveSin = true
	}
	return a.trig.sin
}

func (a Angle[D]) Cos() float64 {
	if a.trig == nil {
		return math.Cos(a.rad)
	}
	if !a.trig.haveCos {
		a.trig.cos = math.Cos(a.rad)
		a.trig.haveCos = true
	}
	return a.trig.cos
}

// CCW projects the angle into the counterclockwise-positive convention.
func (a Angle[D]) CCW() CCWAngle {
	var d D
	if d.ccwSign() == 1 {
		return Angle[Counterclockwise]{rad: a.rad, trig: a.trig}
	}
	return CCWRad(-a.rad)
}

// CW projects the angle into the clockwise-positive convention.
func (a Angle[D]) CW() CWAngle {
	var d D
	if d.cwSign() == 1 {
		return Angle[Clockwise]{rad: a.rad, trig: a.trig}
	}
	return CWRad(-a.rad)
}

// AsAbsolute drops the convention, keeping the stored value.
func (a Angle[D]) AsAbsolute() AbsAngle {
	return Angle[Absolute]{rad: a.rad, trig: a.trig}
}

func (a Angle[D]) ccwRad() float64 {
	var d D
	return d.ccwSign() * a.rad
}

// Equal reports whether o describes the same orientation as a.
func (a Angle[D]) Equal(o Any) bool {
	return a.ccwRad() == o.CCW().rad
}

// Key returns the counterclockwise-canonical radians, suitable as a map
// key for angles of mixed conventions.
func (a Angle[D]) Key() float64 {
	k := a.ccwRad()
	if k == 0 {
		// Fold -0 onto 0.
		return 0
	}
	return k
}

func (a Angle[D]) String() string {
	var d D
	return fmt.Sprintf("%.2f° %s", a.Deg(), d.name())
}

// Equal reports whether a and b describe the same orientation.
func Equal(a, b Any) bool {
	return a.CCW().rad == b.CCW().rad
}
