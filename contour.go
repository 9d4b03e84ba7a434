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
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// SubPath is one contour of a flattened path.
//
// If Closed is true, the last point equals the first point.
type SubPath struct {
	Points []vec.Vec2
	Closed bool
}

// Contours splits a flat path into its subpaths.
//
// Every MoveTo starts a new subpath, including a MoveTo directly following
// another one, so that a lone MoveTo gives a subpath with a single point.
// When a subpath is closed and its last point differs from the first one,
// a closing point is appended.  A Close command which is followed by a
// drawing command starts a new subpath at the same start point, as in SVG.
//
// The path must not contain curves or H/V commands; use [Flatten] first.
// Drawing commands before the first MoveTo are an error.
func Contours(p Path) ([]SubPath, error) {
	var res []SubPath
	var start vec.Vec2

	for i, cmd := range p {
		switch c := cmd.(type) {
		case MoveTo:
			res = append(res, SubPath{Points: []vec.Vec2{c.P}})
			start = c.P
		case LineTo:
			if len(res) == 0 {
				return nil, errNoMoveTo(i)
			}
			if res[len(res)-1].Closed {
				res = append(res, SubPath{Points: []vec.Vec2{start}})
			}
			cur := &res[len(res)-1]
			cur.Points = append(cur.Points, c.P)
		case Close:
			if len(res) == 0 {
				return nil, errNoMoveTo(i)
			}
			cur := &res[len(res)-1]
			if cur.Closed {
				continue
			}
			if last := cur.Points[len(cur.Points)-1]; last != start {
				cur.Points = append(cur.Points, start)
			}
			cur.Closed = true
		default:
			return nil, &MalformedPathError{
				Pos: i,
				Msg: fmt.Sprintf("%c command in unflattened path", cmd.Letter()),
			}
		}
	}
	return res, nil
}

func errNoMoveTo(pos int) error {
	return &MalformedPathError{Pos: pos, Msg: "path does not start with MoveTo"}
}

// Path converts the subpath back into path commands.
func (sp SubPath) Path() Path {
	if len(sp.Points) == 0 {
		return nil
	}
	n := len(sp.Points)
	if sp.Closed && n > 1 {
		n-- // the closing point is implied by Close
	}
	res := make(Path, 0, n+1)
	res = append(res, MoveTo{P: sp.Points[0]})
	for _, pt := range sp.Points[1:n] {
		res = append(res, LineTo{P: pt})
	}
	if sp.Closed {
		res = append(res, Close{})
	}
	return res
}

// Rings returns the point lists of the subpaths in the form expected by
// [polygon.Compose].  Open subpaths are treated as if they were closed, as
// is usual for filling.  Subpaths consisting of a single point are
// omitted.
func Rings(subPaths []SubPath) [][]vec.Vec2 {
	res := make([][]vec.Vec2, 0, len(subPaths))
	for _, sp := range subPaths {
		pts := sp.Points
		if len(pts) < 2 {
			continue
		}
		if n := len(pts); n > 1 && pts[0] == pts[n-1] {
			pts = pts[:n-1]
		}
		res = append(res, pts)
	}
	return res
}
