package sim

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/tigerbot-team/tigerbot/go-motion/pkg/vec"
)

// WriteCSV writes the samples with a header row.
func WriteCSV(w io.Writer, samples []Sample) error {
	return errors.Wrap(gocsv.Marshal(samples, w), "writing samples")
}

const (
	plotSize   = 512
	plotMargin = 32
)

// RenderPNG plots the planned path (blue) and the run (red, with targets in
// green) and saves it to path.
func RenderPNG(path string, waypoints []vec.Vec2d, samples []Sample) error {
	var points []vec.Vec2d
	points = append(points, waypoints...)
	for _, s := range samples {
		points = append(points, s.Position(), vec.New(s.TargetX, s.TargetY))
	}
	if len(points) == 0 {
		return errors.New("nothing to plot")
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	span := math.Max(maxX-minX, maxY-minY)
	if span == 0 {
		span = 1
	}
	scale := (plotSize - 2*plotMargin) / span
	// Y up, like the field.
	toPixels := func(p vec.Vec2d) (float64, float64) {
		return plotMargin + (p.X-minX)*scale, plotSize - plotMargin - (p.Y-minY)*scale
	}

	dc := gg.NewContext(plotSize, plotSize)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0, 0.3, 1)
	dc.SetLineWidth(3)
	for i, p := range waypoints {
		x, y := toPixels(p)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()
	for _, p := range waypoints {
		x, y := toPixels(p)
		dc.DrawCircle(x, y, 4)
	}
	dc.Fill()

	dc.SetRGB(0, 0.7, 0.2)
	for _, s := range samples {
		x, y := toPixels(vec.New(s.TargetX, s.TargetY))
		dc.DrawRectangle(x-2, y-2, 4, 4)
	}
	dc.Fill()

	dc.SetRGB(1, 0.2, 0)
	for _, s := range samples {
		x, y := toPixels(s.Position())
		dc.DrawCircle(x, y, 1.5)
	}
	dc.Fill()

	return errors.Wrapf(dc.SavePNG(path), "saving plot %s", path)
}
