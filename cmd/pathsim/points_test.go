package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tigerbot-team/tigerbot/go-motion/pkg/vec"
)

func TestPointListParses(t *testing.T) {
	var pl pointList
	require.NoError(t, pl.UnmarshalText([]byte("0,0; 1.5,-2 ;3,4;")))
	assert.Equal(t, []vec.Vec2d{vec.New(0, 0), vec.New(1.5, -2), vec.New(3, 4)}, pl.Points)
}

func TestPointListRejectsJunk(t *testing.T) {
	for _, s := range []string{"", ";", "1", "1,2,3", "a,1", "1,b"} {
		var pl pointList
		assert.Error(t, pl.UnmarshalText([]byte(s)), s)
	}
}

func TestPoint(t *testing.T) {
	var p point
	require.NoError(t, p.UnmarshalText([]byte("0.25, 0.5")))
	assert.Equal(t, vec.New(0.25, 0.5), vec.Vec2d(p))
	assert.Error(t, p.UnmarshalText([]byte("0.25")))
}
