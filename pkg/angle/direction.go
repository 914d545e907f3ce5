package angle

// Direction is the directional tag of an Angle.  It is carried in the type
// parameter so that adding a clockwise angle to a counterclockwise one does
// not compile.  Only the three tags below implement it.
type Direction interface {
	// ccwSign converts a stored value in this convention to the
	// counterclockwise-positive convention.
	ccwSign() float64
	// cwSign converts a stored value to the clockwise-positive convention.
	cwSign() float64
	name() string
}

// Counterclockwise is the standard maths convention: positive angles turn
// anti-clockwise.
type Counterclockwise struct{}

// Clockwise angles are positive when turning clockwise, like a compass.
type Clockwise struct{}

// Absolute angles have no preferred sense.  Converting one to either
// convention keeps the stored value.
type Absolute struct{}

func (Counterclockwise) ccwSign() float64 { return 1 }
func (Counterclockwise) cwSign() float64  { return -1 }
func (Counterclockwise) name() string     { return "ccw" }

func (Clockwise) ccwSign() float64 { return -1 }
func (Clockwise) cwSign() float64  { return 1 }
func (Clockwise) name() string     { return "cw" }

func (Absolute) ccwSign() float64 { return 1 }
func (Absolute) cwSign() float64  { return 1 }
func (Absolute) name() string     { return "abs" }

type (
	CCWAngle = Angle[Counterclockwise]
	CWAngle  = Angle[Clockwise]
	AbsAngle = Angle[Absolute]
)
