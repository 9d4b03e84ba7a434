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
	"math"

	"seehuhn.de/go/geom/vec"
)

// SegmentKind describes the degree of a [Segment].
type SegmentKind int

// These are the supported segment kinds.
const (
	SegmentLine SegmentKind = iota + 1
	SegmentQuad
	SegmentCubic
)

// Segment is a straight line or a Bézier curve.
//
// Only the first Kind+1 entries of Ctrl are used.  Ctrl[0] is the start
// point and Ctrl[Kind] is the end point.
type Segment struct {
	Kind SegmentKind
	Ctrl [4]vec.Vec2
}

// Line returns the straight segment from a to b.
func Line(a, b vec.Vec2) Segment {
	return Segment{Kind: SegmentLine, Ctrl: [4]vec.Vec2{a, b}}
}

// Quad returns the quadratic Bézier curve with control point c.
func Quad(a, c, b vec.Vec2) Segment {
	return Segment{Kind: SegmentQuad, Ctrl: [4]vec.Vec2{a, c, b}}
}

// Cubic returns the cubic Bézier curve with control points c1 and c2.
func Cubic(a, c1, c2, b vec.Vec2) Segment {
	return Segment{Kind: SegmentCubic, Ctrl: [4]vec.Vec2{a, c1, c2, b}}
}

// Start returns the first point of the segment.
func (s Segment) Start() vec.Vec2 {
	return s.Ctrl[0]
}

// End returns the last point of the segment.
func (s Segment) End() vec.Vec2 {
	return s.Ctrl[s.Kind]
}

// Point returns the point at parameter t in [0, 1].
func (s Segment) Point(t float64) vec.Vec2 {
	u := 1 - t
	p := s.Ctrl
	switch s.Kind {
	case SegmentLine:
		return p[0].Mul(u).Add(p[1].Mul(t))
	case SegmentQuad:
		return p[0].Mul(u * u).Add(p[1].Mul(2 * u * t)).Add(p[2].Mul(t * t))
	default:
		return p[0].Mul(u * u * u).
			Add(p[1].Mul(3 * u * u * t)).
			Add(p[2].Mul(3 * u * t * t)).
			Add(p[3].Mul(t * t * t))
	}
}

// derivative returns the derivative of the curve at parameter t.
func (s Segment) derivative(t float64) vec.Vec2 {
	u := 1 - t
	p := s.Ctrl
	switch s.Kind {
	case SegmentLine:
		return p[1].Sub(p[0])
	case SegmentQuad:
		return p[1].Sub(p[0]).Mul(2 * u).Add(p[2].Sub(p[1]).Mul(2 * t))
	default:
		return p[1].Sub(p[0]).Mul(3 * u * u).
			Add(p[2].Sub(p[1]).Mul(6 * u * t)).
			Add(p[3].Sub(p[2]).Mul(3 * t * t))
	}
}

// Tangent returns the unit tangent vector at parameter t.
//
// Where the derivative vanishes, for example at an end point which
// coincides with its control point, the direction of a short chord around
// t is used instead, and failing that the direction from the start point
// to the end point.  The zero vector is returned only if all control
// points coincide.
func (s Segment) Tangent(t float64) vec.Vec2 {
	scale := s.hullLength()
	if scale == 0 {
		return vec.Vec2{}
	}
	eps := 1e-12 * scale

	if d := s.derivative(t); d.Length() > eps {
		return unit(d)
	}

	const h = 1e-6
	d := s.Point(math.Min(t+h, 1)).Sub(s.Point(math.Max(t-h, 0)))
	if d.Length() > eps*h {
		return unit(d)
	}

	if d := s.End().Sub(s.Start()); d.Length() > eps {
		return unit(d)
	}
	return vec.Vec2{}
}

// hullLength returns the length of the control polygon.
func (s Segment) hullLength() float64 {
	var l float64
	for i := 1; i <= int(s.Kind); i++ {
		l += s.Ctrl[i].Sub(s.Ctrl[i-1]).Length()
	}
	return l
}

func unit(v vec.Vec2) vec.Vec2 {
	return v.Mul(1 / v.Length())
}
