package sim

import "github.com/tigerbot-team/tigerbot/go-motion/pkg/pathfollow"

// LagPlanner models a planner that takes a while to produce its first path:
// it stays invalid until it has been given a goal Lag times.
type LagPlanner[P any] struct {
	pathfollow.Planner[P]
	Lag int

	calls int
}

func NewLagPlanner[P any](inner pathfollow.Planner[P], lag int) *LagPlanner[P] {
	return &LagPlanner[P]{Planner: inner, Lag: lag}
}

func (l *LagPlanner[P]) SetGoal(goal P) {
	l.calls++
	l.Planner.SetGoal(goal)
}

func (l *LagPlanner[P]) IsValid() bool {
	return l.calls >= l.Lag && l.Planner.IsValid()
}
