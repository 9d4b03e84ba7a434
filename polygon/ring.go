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

// Package polygon implements compound polygons and the boolean operations
// needed to assemble them from individual contours.
//
// A compound polygon is a set of simple rings.  Fill rings share one
// orientation, the reference orientation, and hole rings have the opposite
// orientation.  Because the winding rule is baked into the geometry in
// this way, the result can be filled using the nonzero rule.
package polygon

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Orientation describes the direction in which a ring is traversed.
type Orientation int

// These are the possible orientations of a ring.  Orientations are given
// for a coordinate system where the y-axis points up; in SVG coordinates,
// where y points down, the visual direction is reversed.
const (
	Degenerate Orientation = iota
	CounterClockwise
	Clockwise
)

func (o Orientation) String() string {
	switch o {
	case CounterClockwise:
		return "ccw"
	case Clockwise:
		return "cw"
	default:
		return "degenerate"
	}
}

// Opposite returns the reversed orientation.
// Degenerate is its own opposite.
func (o Orientation) Opposite() Orientation {
	switch o {
	case CounterClockwise:
		return Clockwise
	case Clockwise:
		return CounterClockwise
	default:
		return Degenerate
	}
}

// Ring is a closed polygonal chain.  The last point is implicitly
// connected to the first one and should not repeat it.
type Ring []vec.Vec2

// SignedArea returns the area enclosed by the ring.  The result is
// positive for counter-clockwise rings.
func (r Ring) SignedArea() float64 {
	n := len(r)
	if n < 3 {
		return 0
	}
	// coordinates relative to r[0], to avoid cancellation far from the
	// origin
	o := r[0]
	var sum float64
	p := r[n-1].Sub(o)
	for _, q := range r {
		q = q.Sub(o)
		sum += p.X*q.Y - q.X*p.Y
		p = q
	}
	return sum / 2
}

// Area returns the absolute value of the signed area.
func (r Ring) Area() float64 {
	return math.Abs(r.SignedArea())
}

// Orientation returns the orientation of the ring.  Rings with fewer than
// three distinct points, and rings whose area is negligible compared to
// their size, are Degenerate.
func (r Ring) Orientation() Orientation {
	if r.distinctPoints() < 3 {
		return Degenerate
	}
	b := r.Bounds()
	size := math.Max(b.URx-b.LLx, b.URy-b.LLy)
	a := r.SignedArea()
	switch {
	case math.Abs(a) <= areaEps*size*size:
		return Degenerate
	case a > 0:
		return CounterClockwise
	default:
		return Clockwise
	}
}

// traversal is like Orientation, but a ring whose signed area cancels
// out, such as a symmetric figure eight, gets the direction in which it
// turns at its leftmost vertex, taking the lowest one among ties.  This
// vertex lies on the convex hull, so the turn gives the orientation of
// the lobe through it.
func (r Ring) traversal() Orientation {
	if o := r.Orientation(); o != Degenerate || r.distinctPoints() < 3 {
		return o
	}

	k := 0
	for i, p := range r {
		if p.X < r[k].X || p.X == r[k].X && p.Y < r[k].Y {
			k = i
		}
	}
	n := len(r)
	v := r[k]
	prev, next := v, v
	for i := 1; i < n && prev == v; i++ {
		prev = r[(k-i+n)%n]
	}
	for i := 1; i < n && next == v; i++ {
		next = r[(k+i)%n]
	}
	switch c := cross(v.Sub(prev), next.Sub(v)); {
	case c > 0:
		return CounterClockwise
	case c < 0:
		return Clockwise
	default:
		return Degenerate
	}
}

// areaEps is the relative size below which a ring is considered to have
// no area.
const areaEps = 1e-12

func (r Ring) distinctPoints() int {
	count := 0
	for i, p := range r {
		dup := false
		for _, q := range r[:i] {
			if p == q {
				dup = true
				break
			}
		}
		if !dup {
			count++
			if count >= 3 {
				break
			}
		}
	}
	return count
}

// Reversed returns a copy of the ring with the opposite orientation.
func (r Ring) Reversed() Ring {
	res := make(Ring, len(r))
	for i, p := range r {
		res[len(r)-1-i] = p
	}
	return res
}

// Winding returns the winding number of the ring around pt.  The result
// is positive if pt is inside a counter-clockwise ring.  Points on the
// boundary may be counted as inside or outside.
func (r Ring) Winding(pt vec.Vec2) int {
	n := len(r)
	if n < 3 {
		return 0
	}
	w := 0
	a := r[n-1]
	for _, b := range r {
		if a.Y <= pt.Y {
			if b.Y > pt.Y && isLeft(a, b, pt) > 0 {
				w++
			}
		} else {
			if b.Y <= pt.Y && isLeft(a, b, pt) < 0 {
				w--
			}
		}
		a = b
	}
	return w
}

// Bounds returns the bounding box of the ring.
func (r Ring) Bounds() rect.Rect {
	if len(r) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{LLx: r[0].X, LLy: r[0].Y, URx: r[0].X, URy: r[0].Y}
	for _, p := range r[1:] {
		b.LLx = math.Min(b.LLx, p.X)
		b.LLy = math.Min(b.LLy, p.Y)
		b.URx = math.Max(b.URx, p.X)
		b.URy = math.Max(b.URy, p.Y)
	}
	return b
}

// isLeft is positive if c lies to the left of the line from a to b.
func isLeft(a, b, c vec.Vec2) float64 {
	return cross(b.Sub(a), c.Sub(a))
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

func winding(rings []Ring, pt vec.Vec2) int {
	w := 0
	for _, r := range rings {
		w += r.Winding(pt)
	}
	return w
}
