package pathfollow

// StaticPlanner serves a fixed path.  It records goals but never replans,
// which is enough to drive the follower in tests and simulation.
type StaticPlanner[P any] struct {
	path  []P
	valid bool

	goal    P
	hasGoal bool
}

func NewStaticPlanner[P any](path []P) *StaticPlanner[P] {
	return &StaticPlanner[P]{path: path, valid: len(path) > 0}
}

func (s *StaticPlanner[P]) IsValid() bool {
	return s.valid
}

func (s *StaticPlanner[P]) Path() []P {
	return s.path
}

func (s *StaticPlanner[P]) SetGoal(goal P) {
	s.goal = goal
	s.hasGoal = true
}

// Goal returns the last goal passed to SetGoal.
func (s *StaticPlanner[P]) Goal() (P, bool) {
	return s.goal, s.hasGoal
}

// SetPath replaces the path; an empty path makes the planner invalid.
func (s *StaticPlanner[P]) SetPath(path []P) {
	s.path = path
	s.valid = len(path) > 0
}

// SetValid overrides validity, e.g. to model a planner that has lost its
// solution while still holding a stale path.
func (s *StaticPlanner[P]) SetValid(valid bool) {
	s.valid = valid
}
