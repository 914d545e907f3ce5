package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/tigerbot-team/tigerbot/go-motion/pkg/vec"
)

// pointList parses "x,y;x,y;..." from the command line.
type pointList struct {
	Points []vec.Vec2d
}

func (p *pointList) UnmarshalText(text []byte) error {
	var points []vec.Vec2d
	for _, part := range strings.Split(string(text), ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := parsePoint(part)
		if err != nil {
			return err
		}
		points = append(points, v)
	}
	if len(points) == 0 {
		return errors.New("no points given")
	}
	p.Points = points
	return nil
}

// point parses a single "x,y".
type point vec.Vec2d

func (p *point) UnmarshalText(text []byte) error {
	v, err := parsePoint(string(text))
	if err != nil {
		return err
	}
	*p = point(v)
	return nil
}

func parsePoint(s string) (vec.Vec2d, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 2 {
		return vec.Vec2d{}, errors.Errorf("bad point %q, expected x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return vec.Vec2d{}, errors.Wrapf(err, "bad x in %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return vec.Vec2d{}, errors.Wrapf(err, "bad y in %q", s)
	}
	return vec.New(x, y), nil
}
