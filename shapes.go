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

// Rect returns a closed rectangular path with corner (x, y), width w and
// height h.
func Rect(x, y, w, h float64) Path {
	return Path{
		MoveTo{P: vec.Vec2{X: x, Y: y}},
		LineTo{P: vec.Vec2{X: x + w, Y: y}},
		LineTo{P: vec.Vec2{X: x + w, Y: y + h}},
		LineTo{P: vec.Vec2{X: x, Y: y + h}},
		Close{},
	}
}

// maxCirclePoints limits the number of vertices generated by [Circle].
const maxCirclePoints = 1 << 16

// Circle returns a closed polygon approximating the circle with center
// (cx, cy) and radius r.  Consecutive vertices are at most maxAngle
// degrees apart, as seen from the center.  The first vertex is (cx, cy+r).
//
// If maxAngle is not positive (or NaN), the default angle from
// [DefaultOptions] is used.  The polygon has at least 3 and at most
// 65536 vertices.
func Circle(cx, cy, r, maxAngle float64) Path {
	if !(maxAngle > 0) {
		maxAngle = DefaultOptions().MaxAngleDegrees
	}
	steps := math.Ceil(360 / maxAngle)
	n := maxCirclePoints
	if steps < maxCirclePoints {
		n = max(int(steps), 3)
	}
	res := make(Path, 0, n+1)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		s, c := math.Sincos(phi)
		pt := vec.Vec2{X: cx + r*s, Y: cy + r*c}
		if i == 0 {
			res = append(res, MoveTo{P: pt})
		} else {
			res = append(res, LineTo{P: pt})
		}
	}
	return append(res, Close{})
}
