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

package testcases

import "math"

var fillCases = []TestCase{
	{
		Name:   "rectangle",
		Path:   newPath().rect(10, 10, 54, 54, false).String(),
		Width:  64,
		Height: 64,
		Area:   44 * 44,
	},
	{
		Name:   "rectangle_reversed",
		Path:   newPath().rect(10, 10, 54, 54, true).String(),
		Width:  64,
		Height: 64,
		Area:   44 * 44,
	},
	{
		Name:   "triangle",
		Path:   newPath().polygon(10, 50, 32, 10, 54, 50).String(),
		Width:  64,
		Height: 64,
		Area:   44 * 40 / 2,
	},
	{
		Name:   "hv_lines",
		Path:   newPath().MoveTo(8, 8).HLineTo(56).VLineTo(32).HLineTo(32).VLineTo(56).HLineTo(8).Close().String(),
		Width:  64,
		Height: 64,
		Area:   48*24 + 24*24,
	},
	{
		Name:   "star_nonzero",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "open_triangle",
		Path:   newPath().MoveTo(10, 50).LineTo(32, 10).LineTo(54, 50).String(),
		Width:  64,
		Height: 64,
		Area:   44 * 40 / 2,
	},
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) string {
	xy := make([]float64, 0, 10)
	for _, i := range []int{0, 2, 4, 1, 3} {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		xy = append(xy, cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return newPath().polygon(xy...).String()
}
