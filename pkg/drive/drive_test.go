package drive

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tigerbot-team/tigerbot/go-motion/pkg/angle"
	"github.com/tigerbot-team/tigerbot/go-motion/pkg/pathfollow"
	"github.com/tigerbot-team/tigerbot/go-motion/pkg/vec"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Speed = 1
	cfg.FollowTolerance = 0.3
	cfg.ArrivalTolerance = 0.1
	return cfg
}

func straightPath() []vec.Vec2d {
	return []vec.Vec2d{vec.New(0, 0), vec.New(0, 1), vec.New(0, 2)}
}

func TestFollowsPath(t *testing.T) {
	planner := pathfollow.NewStaticPlanner(straightPath())
	c := New(testConfig(), planner, nil)
	c.SetGoal(vec.New(0, 2), angle.CCWRad(0))

	out, err := c.Tick(Pose{Position: vec.New(0, 0.5), Heading: angle.CCWRad(0)})
	require.NoError(t, err)
	assert.Equal(t, pathfollow.OnPath, out.State)
	assert.Equal(t, vec.New(0, 1), out.Target)
	assert.InDelta(t, 0, out.Velocity.X, 1e-12)
	assert.InDelta(t, 1, out.Velocity.Y, 1e-12)
	assert.Equal(t, 0.0, out.TurnRate)
	assert.False(t, out.Done)

	goal, ok := planner.Goal()
	require.True(t, ok)
	assert.Equal(t, vec.New(0, 2), goal)
}

func TestInvalidPathHeadsForGoal(t *testing.T) {
	planner := pathfollow.NewStaticPlanner[vec.Vec2d](nil)
	c := New(testConfig(), planner, nil)
	c.SetGoal(vec.New(3, 4), angle.CCWRad(0))

	out, err := c.Tick(Pose{Position: vec.New(0, 0), Heading: angle.CCWRad(0)})
	require.NoError(t, err)
	assert.Equal(t, pathfollow.Invalid, out.State)
	assert.InDelta(t, 0.6, out.Velocity.X, 1e-12)
	assert.InDelta(t, 0.8, out.Velocity.Y, 1e-12)
}

func TestOffPathHolds(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	planner := pathfollow.NewStaticPlanner(straightPath())
	c := New(testConfig(), planner, zap.New(core))
	c.SetGoal(vec.New(0, 2), angle.CCWRad(0))

	for i := 0; i < 3; i++ {
		out, err := c.Tick(Pose{Position: vec.New(2, 1), Heading: angle.CCWRad(0)})
		require.NoError(t, err)
		assert.Equal(t, pathfollow.OffPath, out.State)
		assert.Equal(t, vec.Vec2d{}, out.Velocity)
		assert.False(t, out.Done)
	}
	assert.Equal(t, 1, logs.FilterMessage("Waiting for path to catch up").Len())

	// Back on the path, then off again: a second warning.
	_, err := c.Tick(Pose{Position: vec.New(0, 1.5), Heading: angle.CCWRad(0)})
	require.NoError(t, err)
	_, err = c.Tick(Pose{Position: vec.New(2, 1), Heading: angle.CCWRad(0)})
	require.NoError(t, err)
	assert.Equal(t, 2, logs.FilterMessage("Waiting for path to catch up").Len())
	assert.Equal(t, 1, logs.FilterMessage("Following path").Len())
}

func TestArrival(t *testing.T) {
	planner := pathfollow.NewStaticPlanner(straightPath())
	c := New(testConfig(), planner, nil)
	c.SetGoal(vec.New(0, 2), angle.CCWDeg(90))

	// In position, heading well off: turn but not done.
	out, err := c.Tick(Pose{Position: vec.New(0, 1.95), Heading: angle.CCWDeg(80)})
	require.NoError(t, err)
	assert.Equal(t, vec.Vec2d{}, out.Velocity)
	assert.Greater(t, out.TurnRate, 0.0)
	assert.False(t, out.Done)

	// Heading within 3 degrees: done.
	out, err = c.Tick(Pose{Position: vec.New(0, 1.95), Heading: angle.CCWDeg(88)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, out.TurnRate)
	assert.True(t, out.Done)
}

func TestTurnTakesShortWayAndIsCapped(t *testing.T) {
	cfg := testConfig()
	cfg.TurnGain = 1
	cfg.MaxTurnRate = 0.5
	c := New(cfg, pathfollow.NewStaticPlanner(straightPath()), nil)

	// 170 to -170 is 20 degrees anti-clockwise.
	c.SetGoal(vec.New(0, 2), angle.CCWDeg(-170))
	out, err := c.Tick(Pose{Position: vec.New(0, 0.5), Heading: angle.CCWDeg(170)})
	require.NoError(t, err)
	assert.InDelta(t, 20*math.Pi/180, out.TurnRate, 1e-9)

	// A quarter turn clockwise is capped.
	c.SetGoal(vec.New(0, 2), angle.CCWDeg(-90))
	out, err = c.Tick(Pose{Position: vec.New(0, 0.5), Heading: angle.CCWDeg(0)})
	require.NoError(t, err)
	assert.Equal(t, -0.5, out.TurnRate)
}

func TestZeroArrivalToleranceReportsDegenerateVector(t *testing.T) {
	cfg := testConfig()
	cfg.ArrivalTolerance = 0
	c := New(cfg, pathfollow.NewStaticPlanner[vec.Vec2d](nil), nil)
	c.SetGoal(vec.New(1, 1), angle.CCWRad(0))

	_, err := c.Tick(Pose{Position: vec.New(1, 1), Heading: angle.CCWRad(0)})
	require.Error(t, err)
	assert.ErrorIs(t, err, vec.ErrDegenerateVector)
}
