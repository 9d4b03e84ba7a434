// seehuhn.de/go/svgpath - processing of SVG path data
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package svgpath

import (
	"log/slog"
	"math"

	"seehuhn.de/go/geom/vec"
)

// FlattenStats reports on the curves processed by [Flatten].
type FlattenStats struct {
	// Curves is the number of curved segments which were approximated.
	Curves int

	// Unconverged is the number of curves where the angle bound still
	// failed after Options.MaxSteps rounds of refinement.
	Unconverged int
}

// Flatten replaces all curves in p by sequences of straight lines.
//
// The result contains only MoveTo, LineTo and Close commands.  H and V
// commands become LineTo, and elliptical arcs are converted to cubic
// Bézier curves before flattening.  Straight lines are copied unchanged,
// so that flattening an already flat path gives the same path again.
func Flatten(p Path, opts Options) (Path, FlattenStats, error) {
	var stats FlattenStats
	if err := opts.Validate(); err != nil {
		return nil, stats, err
	}
	opts = opts.withDefaults()

	res := make(Path, 0, len(p))
	addSegment := func(seg Segment) {
		stats.Curves++
		pts, ok := FlattenSegment(seg, opts)
		if !ok {
			stats.Unconverged++
			Logger().Warn("curve flattening did not converge",
				slog.Any("start", seg.Start()),
				slog.Any("end", seg.End()),
				slog.Int("maxSteps", opts.MaxSteps))
		}
		for _, pt := range pts {
			res = append(res, LineTo{P: pt})
		}
	}

	p.walk(func(cmd Command, from, to vec.Vec2) {
		switch c := cmd.(type) {
		case MoveTo:
			res = append(res, c)
		case LineTo:
			res = append(res, c)
		case HLineTo, VLineTo:
			res = append(res, LineTo{P: to})
		case CubeTo:
			addSegment(Cubic(from, c.C1, c.C2, c.P))
		case QuadTo:
			addSegment(Quad(from, c.C, c.P))
		case ArcTo:
			start := from
			for _, sub := range ArcToCubics(from, c) {
				switch s := sub.(type) {
				case CubeTo:
					addSegment(Cubic(start, s.C1, s.C2, s.P))
					start = s.P
				case LineTo:
					res = append(res, s)
					start = s.P
				}
			}
		case Close:
			res = append(res, c)
		}
	})

	return res, stats, nil
}

// FlattenSegment approximates a single segment by a polyline.
//
// The returned points exclude the start point of the segment; the last
// point is always the exact end point.  The boolean result is false if the
// AngleBounded policy stopped refining because Options.MaxSteps was
// reached while the angle bound was still violated.
func FlattenSegment(seg Segment, opts Options) ([]vec.Vec2, bool) {
	opts = opts.withDefaults()
	if seg.Kind == SegmentLine {
		return []vec.Vec2{seg.End()}, true
	}
	switch opts.Policy {
	case Uniform:
		return flattenUniform(seg, opts.UniformPointCount), true
	default:
		return flattenAngleBounded(seg, opts.MaxAngleDegrees, opts.MaxSteps)
	}
}

// flattenUniform samples n-2 interior points at evenly spaced parameter
// values, followed by the end point.
func flattenUniform(seg Segment, n int) []vec.Vec2 {
	res := make([]vec.Vec2, 0, n-1)
	for i := 1; i <= n-2; i++ {
		t := float64(i) / float64(n-1)
		res = append(res, seg.Point(t))
	}
	return append(res, seg.End())
}

// flattenAngleBounded refines the parameter values {0, 0.5, 1} by
// inserting midpoints between neighbours whose unit tangents differ by
// more than maxAngle degrees.  At most maxSteps rounds are performed.
func flattenAngleBounded(seg Segment, maxAngle float64, maxSteps int) ([]vec.Vec2, bool) {
	if seg.hullLength() == 0 {
		return []vec.Vec2{seg.End()}, true
	}

	limit := math.Cos(maxAngle * math.Pi / 180)
	params := []float64{0, 0.5, 1}
	tangents := []vec.Vec2{seg.Tangent(0), seg.Tangent(0.5), seg.Tangent(1)}

	steps := 0
	converged := false
	for steps < maxSteps {
		steps++
		newParams := make([]float64, 0, 2*len(params)-1)
		newTangents := make([]vec.Vec2, 0, 2*len(params)-1)
		updated := false
		for i := range params {
			if i > 0 && tangents[i-1].Dot(tangents[i]) < limit {
				mid := (params[i-1] + params[i]) / 2
				newParams = append(newParams, mid)
				newTangents = append(newTangents, seg.Tangent(mid))
				updated = true
			}
			newParams = append(newParams, params[i])
			newTangents = append(newTangents, tangents[i])
		}
		params, tangents = newParams, newTangents
		if !updated {
			converged = true
			break
		}
	}
	if !converged {
		converged = true
		for i := 1; i < len(tangents); i++ {
			if tangents[i-1].Dot(tangents[i]) < limit {
				converged = false
				break
			}
		}
	}

	Logger().Debug("curve flattened",
		slog.Int("points", len(params)-1),
		slog.Int("rounds", steps),
		slog.Bool("converged", converged))

	res := make([]vec.Vec2, 0, len(params)-1)
	for _, t := range params[1 : len(params)-1] {
		res = append(res, seg.Point(t))
	}
	return append(res, seg.End()), converged
}
