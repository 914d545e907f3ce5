// Package tolerance implements a hysteresis gate that stops a controller
// chattering around its goal.
package tolerance

// Gate converts a continuously varying error into a settled/moving state.
// It becomes settled once the error drops below StopTolerance and only
// starts moving again once the error exceeds StartTolerance.  Between the
// two the state is left alone.
//
// StopTolerance must be smaller than StartTolerance.  This is not checked
// here; get it wrong and the gate oscillates.
type Gate struct {
	StartTolerance float64
	StopTolerance  float64

	settled bool
}

func NewGate(startTolerance, stopTolerance float64) *Gate {
	return &Gate{
		StartTolerance: startTolerance,
		StopTolerance:  stopTolerance,
	}
}

// Update feeds the squared error magnitude for this tick and returns the
// new state.
func (g *Gate) Update(errorSq float64) bool {
	if errorSq > g.StartTolerance*g.StartTolerance {
		g.settled = false
	} else if errorSq < g.StopTolerance*g.StopTolerance {
		g.settled = true
	}
	return g.settled
}

func (g *Gate) Settled() bool {
	return g.settled
}

// Reset returns the gate to the moving state.
func (g *Gate) Reset() {
	g.settled = false
}
