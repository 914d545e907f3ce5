package angle

import (
	"math"

	"periph.io/x/periph/conn/physic"
)

// PlusMinus180 is a heading in degrees, stored as a value in range (-180, 180],
// positive anti-clockwise.  This is how the IMU reports yaw.  All operations
// clamp their output into range.
type PlusMinus180 struct {
	float64
}

func (a PlusMinus180) Add(b PlusMinus180) PlusMinus180 {
	return FromFloat(a.float64 + b.float64)
}

func (a PlusMinus180) Sub(b PlusMinus180) PlusMinus180 {
	return FromFloat(a.float64 - b.float64)
}

func (a PlusMinus180) AddFloat(f float64) PlusMinus180 {
	return FromFloat(a.float64 + f)
}

func (a PlusMinus180) SubFloat(f float64) PlusMinus180 {
	return FromFloat(a.float64 - f)
}

// Float returns the heading in degrees, range (-180, 180].
func (a PlusMinus180) Float() float64 {
	return a.float64
}

// FromFloat converts a float of any magnitude to a PlusMinus180 by calculating
// f mod 360 and shifting into range.
func FromFloat(f float64) PlusMinus180 {
	d := math.Mod(f, 360)
	if d <= -180 {
		d += 360
	} else if d > 180 {
		d -= 360
	}
	return PlusMinus180{d}
}

// FromHeading converts an IMU heading to a counterclockwise angle.
func FromHeading(h PlusMinus180) CCWAngle {
	return CCWDeg(h.float64)
}

// ToHeading converts any angle to a heading, wrapping it into (-180, 180].
func ToHeading(a Any) PlusMinus180 {
	return FromFloat(a.CCW().Deg())
}

// FromPhysic converts a periph angle, which is counterclockwise nano-radians.
func FromPhysic(p physic.Angle) CCWAngle {
	return CCWRad(float64(p) / float64(physic.Radian))
}

// ToPhysic converts to a periph angle, rounding to the nearest nano-radian.
func ToPhysic(a Any) physic.Angle {
	return physic.Angle(math.Round(a.CCW().Rad() * float64(physic.Radian)))
}
