// Package pathfollow picks a lookahead target on a planned path.
//
// The planner runs asynchronously and its path can lag well behind where the
// robot really is.  Each tick the follower looks for the most advanced path
// segment the robot is close to and steers for that segment's far end.  If
// the planner has nothing, the caller steers straight for the goal; if the
// robot is nowhere near the path, the caller should hold until the planner
// catches up.
package pathfollow

import (
	"github.com/pkg/errors"

	"github.com/tigerbot-team/tigerbot/go-motion/pkg/vec"
)

// State tags how a Target was chosen.  It is for diagnostics; control
// decisions go on the Target itself.
type State int

const (
	// Invalid means the planner had no usable path.
	Invalid State = iota
	// OffPath means there is a path but the robot is not near any of it.
	OffPath
	// OnPath means the target is the end of a path segment.
	OnPath
)

func (s State) String() string {
	switch s {
	case Invalid:
		return "INVALID"
	case OffPath:
		return "OFF_PATH"
	case OnPath:
		return "ON_PATH"
	}
	return "UNKNOWN"
}

// Point is a position in a configuration space.  vec.Vec2d is one; a
// joint-space pose can be another by projecting into a vector.
type Point[P any] interface {
	DistanceToLineSegmentSq(a, b P) float64
}

// Planner is the external path planner.  SetGoal is asynchronous: Path may
// still describe an earlier goal after it returns.
type Planner[P any] interface {
	IsValid() bool
	Path() []P
	SetGoal(goal P)
}

// Target is the result of a selection.  For Invalid and OffPath, Point is
// the goal that was passed in.
type Target[P any] struct {
	State State
	Point P
	// Segment is the index i of the matched segment (path[i-1], path[i]),
	// or -1.
	Segment int
}

func (t Target[P]) OnPath() bool {
	return t.State == OnPath
}

type Follower[P Point[P]] struct {
	// Tolerance is how close the current position must be to a segment to
	// count as being on it.
	Tolerance float64
}

func New[P Point[P]](tolerance float64) *Follower[P] {
	return &Follower[P]{Tolerance: tolerance}
}

// SelectTarget chooses this tick's target.  The planner is checked for
// validity every call.
func (f *Follower[P]) SelectTarget(planner Planner[P], current, goal P) Target[P] {
	if !planner.IsValid() {
		return Target[P]{State: Invalid, Point: goal, Segment: -1}
	}
	return f.SelectOnPath(planner.Path(), current, goal)
}

// SelectOnPath scans path from its end back to its start and returns the end
// of the first segment within tolerance of current.  Where several disjoint
// segments qualify, the one nearest the end of the path wins.
func (f *Follower[P]) SelectOnPath(path []P, current, goal P) Target[P] {
	tolSq := f.Tolerance * f.Tolerance
	for i := len(path) - 1; i > 0; i-- {
		if current.DistanceToLineSegmentSq(path[i], path[i-1]) < tolSq {
			return Target[P]{State: OnPath, Point: path[i], Segment: i}
		}
	}
	return Target[P]{State: OffPath, Point: goal, Segment: -1}
}

// Feedforward turns the error towards a target into a velocity of the given
// speed.  The caller must have decided the error is large enough to act on;
// a zero error is reported as vec.ErrDegenerateVector.
func Feedforward(delta vec.Vec2d, speed float64) (vec.Vec2d, error) {
	dir, err := delta.Normalize()
	if err != nil {
		return vec.Vec2d{}, errors.Wrap(err, "feedforward")
	}
	return dir.Mul(speed), nil
}
