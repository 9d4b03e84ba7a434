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
	"errors"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgpath/polygon"
)

// Polygonize converts a path into a compound polygon.
//
// The path is flattened using opts, split into contours, and the contours
// are combined using [polygon.Compose]: the first contour fixes the
// reference orientation, contours with the same orientation add to the
// region, and contours with the opposite orientation cut holes into it.
// The result can be filled with the nonzero rule.
//
// If the first contour encloses no area, a [*DegenerateGeometryError] is
// returned.
func Polygonize(p Path, opts Options) (polygon.CompoundPolygon, error) {
	flat, _, err := Flatten(p, opts)
	if err != nil {
		return polygon.CompoundPolygon{}, err
	}
	subPaths, err := Contours(flat)
	if err != nil {
		return polygon.CompoundPolygon{}, err
	}
	cp, err := polygon.Compose(Rings(subPaths))
	if errors.Is(err, polygon.ErrDegenerate) {
		return polygon.CompoundPolygon{}, &DegenerateGeometryError{Msg: err.Error(), Err: err}
	} else if err != nil {
		return polygon.CompoundPolygon{}, err
	}
	return cp, nil
}

// FromPolygon converts a compound polygon into a path.  Every fill ring is
// followed by the holes it contains, and every ring becomes a closed
// subpath.
func FromPolygon(cp polygon.CompoundPolygon) Path {
	var res Path
	for _, group := range cp.Groups() {
		res = append(res, ringsPath(group)...)
	}
	return res
}

// PathStrings returns one path string for each fill ring of cp, including
// the holes inside this fill ring.
func PathStrings(cp polygon.CompoundPolygon) []string {
	groups := cp.Groups()
	res := make([]string, len(groups))
	for i, group := range groups {
		res[i] = Format(ringsPath(group))
	}
	return res
}

func ringsPath(rings []polygon.Ring) Path {
	var res Path
	for _, r := range rings {
		if len(r) == 0 {
			continue
		}
		res = append(res, MoveTo{P: r[0]})
		for _, pt := range r[1:] {
			res = append(res, LineTo{P: pt})
		}
		res = append(res, Close{})
	}
	return res
}

// ToGeomPath converts p into the path representation used by
// seehuhn.de/go/geom.  H and V commands become lines, and elliptical arcs
// become cubic Bézier curves.
func ToGeomPath(p Path) *path.Data {
	res := &path.Data{}
	p.walk(func(cmd Command, from, to vec.Vec2) {
		switch c := cmd.(type) {
		case MoveTo:
			res = res.MoveTo(c.P)
		case LineTo, HLineTo, VLineTo:
			res = res.LineTo(to)
		case QuadTo:
			res = res.QuadTo(c.C, c.P)
		case CubeTo:
			res = res.CubeTo(c.C1, c.C2, c.P)
		case ArcTo:
			for _, sub := range ArcToCubics(from, c) {
				switch s := sub.(type) {
				case CubeTo:
					res = res.CubeTo(s.C1, s.C2, s.P)
				case LineTo:
					res = res.LineTo(s.P)
				}
			}
		case Close:
			res = res.Close()
		}
	})
	return res
}

// Bounds returns a rectangle which encloses the path.  The rectangle
// contains all end points and control points, so it may be larger than
// the tight bounding box of a curved path.
func Bounds(p Path) rect.Rect {
	var b rect.Rect
	first := true
	add := func(v vec.Vec2) {
		if first {
			b = rect.Rect{LLx: v.X, LLy: v.Y, URx: v.X, URy: v.Y}
			first = false
			return
		}
		b.LLx = math.Min(b.LLx, v.X)
		b.LLy = math.Min(b.LLy, v.Y)
		b.URx = math.Max(b.URx, v.X)
		b.URy = math.Max(b.URy, v.Y)
	}
	p.walk(func(cmd Command, from, to vec.Vec2) {
		switch c := cmd.(type) {
		case MoveTo, LineTo, HLineTo, VLineTo:
			add(to)
		case QuadTo:
			add(c.C)
			add(c.P)
		case CubeTo:
			add(c.C1)
			add(c.C2)
			add(c.P)
		case ArcTo:
			for _, sub := range ArcToCubics(from, c) {
				switch s := sub.(type) {
				case CubeTo:
					add(s.C1)
					add(s.C2)
				}
			}
			add(c.P)
		}
	})
	return b
}
