package sim

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/tigerbot-team/tigerbot/go-motion/pkg/angle"
	"github.com/tigerbot-team/tigerbot/go-motion/pkg/arm"
	"github.com/tigerbot-team/tigerbot/go-motion/pkg/drive"
	"github.com/tigerbot-team/tigerbot/go-motion/pkg/pathfollow"
	"github.com/tigerbot-team/tigerbot/go-motion/pkg/vec"
)

const dt = 20 * time.Millisecond

func waypoints() []vec.Vec2d {
	return []vec.Vec2d{vec.New(0, 0), vec.New(0, 1), vec.New(0, 2)}
}

func TestDriveReachesGoal(t *testing.T) {
	cfg := drive.DefaultConfig()
	planner := NewLagPlanner[vec.Vec2d](pathfollow.NewStaticPlanner(waypoints()), 5)
	c := drive.New(cfg, planner, zaptest.NewLogger(t))
	goal := vec.New(0, 2)
	c.SetGoal(goal, angle.CCWRad(0))

	samples, err := RunDrive(context.Background(), c, drive.Pose{Heading: angle.CCWRad(0)}, dt, 1000)
	require.NoError(t, err)
	require.NotEmpty(t, samples)

	last := samples[len(samples)-1]
	assert.True(t, last.Done)
	assert.Less(t, last.Position().DistanceSq(goal), cfg.ArrivalTolerance*cfg.ArrivalTolerance)

	// The planner is not ready for the first few ticks.
	for _, s := range samples[:4] {
		assert.Equal(t, "INVALID", s.State)
	}
	assert.Equal(t, "ON_PATH", samples[4].State)

	// The robot only ever moves forward along the path.
	for i := 1; i < len(samples); i++ {
		assert.GreaterOrEqual(t, samples[i].Y, samples[i-1].Y)
	}
}

func TestDriveStopsAtMaxTicks(t *testing.T) {
	c := drive.New(drive.DefaultConfig(), pathfollow.NewStaticPlanner(waypoints()), nil)
	c.SetGoal(vec.New(0, 2), angle.CCWRad(0))

	samples, err := RunDrive(context.Background(), c, drive.Pose{Heading: angle.CCWRad(0)}, dt, 10)
	require.NoError(t, err)
	assert.Len(t, samples, 10)
	assert.False(t, samples[9].Done)
}

func TestDriveHonoursCancellation(t *testing.T) {
	c := drive.New(drive.DefaultConfig(), pathfollow.NewStaticPlanner(waypoints()), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	samples, err := RunDrive(ctx, c, drive.Pose{Heading: angle.CCWRad(0)}, dt, 10)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, samples)
}

func TestArmSettles(t *testing.T) {
	c := arm.New(arm.DefaultConfig(), pathfollow.NewStaticPlanner[arm.Pose](nil), zaptest.NewLogger(t))
	c.SetTarget(arm.NewPose(0.5, 0.5))

	samples, err := RunArm(context.Background(), c, arm.NewPose(0, 0), dt, 500)
	require.NoError(t, err)
	require.NotEmpty(t, samples)

	last := samples[len(samples)-1]
	assert.True(t, last.Done)
	assert.InDelta(t, 0.5, last.X, 0.01)
	assert.InDelta(t, 0.5, last.Y, 0.01)
	assert.Less(t, len(samples), 500)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []Sample{{Tick: 0, X: 1, Y: 2, State: "ON_PATH"}, {Tick: 1, Done: true}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "tick,time_s,x,y,heading_deg,target_x,target_y,vx,vy,turn_rate,state,done", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0,0,1,2,"))
	assert.True(t, strings.HasSuffix(lines[2], ",true"))
}

func TestRenderPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "run.png")
	samples := []Sample{{X: 0, Y: 0, TargetX: 0, TargetY: 1}, {X: 0, Y: 0.5, TargetX: 0, TargetY: 2}}
	require.NoError(t, RenderPNG(out, waypoints(), samples))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	assert.Error(t, RenderPNG(out, nil, nil))
}
