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

package polygon

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrDegenerate is matched by errors which are caused by contours without
// area.
var ErrDegenerate = errors.New("degenerate geometry")

// DegenerateFirstContourError is returned by [Compose] when the first
// contour encloses no area, so that the reference orientation is
// undefined.
type DegenerateFirstContourError struct {
	Points int
	Area   float64
}

func (err *DegenerateFirstContourError) Error() string {
	return fmt.Sprintf("first contour is degenerate (%d points, area %g)",
		err.Points, err.Area)
}

// Is allows the error to be matched against [ErrDegenerate].
func (err *DegenerateFirstContourError) Is(target error) bool {
	return target == ErrDegenerate
}

// CompoundPolygon is a region bounded by simple, non-crossing rings.
//
// Fill rings have the orientation Reference, hole rings have the opposite
// orientation.  Every hole lies inside a fill ring.  CompoundPolygon
// values are never modified after construction.
type CompoundPolygon struct {
	Fills     []Ring
	Holes     []Ring
	Reference Orientation
}

// Rings returns all fill rings, followed by all hole rings.
func (cp CompoundPolygon) Rings() []Ring {
	res := make([]Ring, 0, len(cp.Fills)+len(cp.Holes))
	res = append(res, cp.Fills...)
	return append(res, cp.Holes...)
}

// Area returns the area of the region.
func (cp CompoundPolygon) Area() float64 {
	var a float64
	for _, r := range cp.Fills {
		a += r.Area()
	}
	for _, r := range cp.Holes {
		a -= r.Area()
	}
	return a
}

// IsEmpty reports whether the region has no fill rings.
func (cp CompoundPolygon) IsEmpty() bool {
	return len(cp.Fills) == 0
}

// Contains reports whether pt lies inside the region.
func (cp CompoundPolygon) Contains(pt vec.Vec2) bool {
	return winding(cp.Rings(), pt) != 0
}

// Bounds returns the bounding box of all fill rings.
func (cp CompoundPolygon) Bounds() rect.Rect {
	var b rect.Rect
	for i, r := range cp.Fills {
		rb := r.Bounds()
		if i == 0 {
			b = rb
			continue
		}
		b.LLx = math.Min(b.LLx, rb.LLx)
		b.LLy = math.Min(b.LLy, rb.LLy)
		b.URx = math.Max(b.URx, rb.URx)
		b.URy = math.Max(b.URy, rb.URy)
	}
	return b
}

// Groups returns the fill rings, each followed by the holes it contains.
// Every hole is assigned to the smallest fill ring which contains it.
func (cp CompoundPolygon) Groups() [][]Ring {
	res := make([][]Ring, len(cp.Fills))
	for i, f := range cp.Fills {
		res[i] = []Ring{f}
	}
	for _, h := range cp.Holes {
		best := -1
		bestArea := math.Inf(1)
		for i, f := range cp.Fills {
			if a := f.Area(); a < bestArea && encloses(f, h) {
				best, bestArea = i, a
			}
		}
		if best < 0 {
			logger().Debug("hole outside all fill rings", slog.Int("points", len(h)))
			continue
		}
		res[best] = append(res[best], h)
	}
	return res
}

// encloses reports whether the hole h lies inside the fill ring f.
// Vertices of h may touch the boundary of f, so the first vertex with an
// unambiguous answer decides.
func encloses(f, h Ring) bool {
	for i, p := range h {
		q := h[(i+1)%len(h)]
		mid := p.Add(q.Sub(p).Mul(0.5))
		for _, pt := range []vec.Vec2{p, mid} {
			if onBoundary(f, pt) {
				continue
			}
			return f.Winding(pt) != 0
		}
	}
	return false
}

func onBoundary(r Ring, pt vec.Vec2) bool {
	b := r.Bounds()
	tol := relTol * math.Max(math.Max(b.URx-b.LLx, b.URy-b.LLy), 1)
	n := len(r)
	for i, p := range r {
		q := r[(i+1)%n]
		d := q.Sub(p)
		l := d.Length()
		if l == 0 {
			continue
		}
		if math.Abs(cross(d, pt.Sub(p))) > tol*l {
			continue
		}
		t := pt.Sub(p).Dot(d) / (l * l)
		if t >= -relTol && t <= 1+relTol {
			return true
		}
	}
	return false
}

// fromBoundary turns rings with positive area into fills and rings with
// negative area into holes, and reorients everything to ref.
func fromBoundary(rings []Ring, ref Orientation) CompoundPolygon {
	cp := CompoundPolygon{Reference: ref}
	for _, r := range rings {
		isFill := r.SignedArea() > 0
		if ref == Clockwise {
			r = r.Reversed()
		}
		if isFill {
			cp.Fills = append(cp.Fills, r)
		} else {
			cp.Holes = append(cp.Holes, r)
		}
	}
	return cp
}

// Simplify removes self-intersections from r.  The region enclosed by r
// according to the nonzero rule is returned as simple rings: fill rings
// with orientation orient and hole rings with the opposite orientation.
// If orient is Degenerate, fills are counter-clockwise.
func Simplify(r Ring, orient Orientation) []Ring {
	if orient == Degenerate {
		orient = CounterClockwise
	}
	return fromBoundary(combine(nil, []Ring{r}, opSettle), orient).Rings()
}

// Union returns the union of cp and the region enclosed by r, using the
// nonzero rule for r.  If cp is empty and has no reference orientation,
// the orientation of r is used.
func Union(cp CompoundPolygon, r Ring) CompoundPolygon {
	ref := cp.Reference
	if ref == Degenerate {
		ref = r.Orientation()
	}
	return fromBoundary(combine(cp.Rings(), []Ring{r}, opUnion), ref)
}

// Subtract returns the part of cp which lies outside the region enclosed
// by r, using the nonzero rule for r.
func Subtract(cp CompoundPolygon, r Ring) CompoundPolygon {
	return fromBoundary(combine(cp.Rings(), []Ring{r}, opSubtract), cp.Reference)
}

// Compose assembles a compound polygon from a list of contours.
//
// The orientation of the first contour is used as the reference
// orientation.  Every following contour with the same orientation is added
// to the region, and every contour with the opposite orientation is
// removed from it.  Self-intersecting contours are simplified first.
// Contours which enclose no area after simplification are skipped.
//
// If the first contour has no area, a [*DegenerateFirstContourError] is
// returned.  An empty list of contours gives an empty polygon.
func Compose(contours [][]vec.Vec2) (CompoundPolygon, error) {
	if len(contours) == 0 {
		return CompoundPolygon{}, nil
	}

	first := Ring(contours[0])
	ref := first.Orientation()
	if ref == Degenerate {
		return CompoundPolygon{}, &DegenerateFirstContourError{
			Points: len(first),
			Area:   first.SignedArea(),
		}
	}

	acc := fromBoundary(combine(nil, []Ring{first}, opSettle), ref)
	for i, c := range contours[1:] {
		r := Ring(c)
		var simple []Ring
		if r.distinctPoints() >= 3 {
			simple = combine(nil, []Ring{r}, opSettle)
		}
		orient := r.traversal()
		if len(simple) == 0 || orient == Degenerate {
			logger().Debug("degenerate contour skipped",
				slog.Int("index", i+1),
				slog.Int("points", len(r)))
			continue
		}
		if orient == ref {
			acc = fromBoundary(combine(acc.Rings(), simple, opUnion), ref)
		} else {
			acc = fromBoundary(combine(acc.Rings(), simple, opSubtract), ref)
		}
	}
	return acc, nil
}
