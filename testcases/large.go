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

import "seehuhn.de/go/geom/matrix"

// largeCases use coordinates far from the origin or very large shapes,
// to check that tolerances scale with the input.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Path:   newPath().rect(50, 50, 462, 462, false).String(),
		Width:  512,
		Height: 512,
		Area:   412 * 412,
	},
	{
		Name:   "large_concentric",
		Path:   newPath().rect(56, 56, 456, 456, false).rect(156, 156, 356, 356, true).String(),
		Width:  512,
		Height: 512,
		Area:   400*400 - 200*200,
	},
	{
		Name:   "large_grid",
		Path:   rectangleGrid(8, 8, 512, 512, 4),
		Width:  512,
		Height: 512,
		Area:   64 * 56 * 56,
	},
	{
		Name:   "far_from_origin",
		Path:   newPath().rect(1e6, 1e6, 1e6+40, 1e6+40, false).rect(1e6+10, 1e6+10, 1e6+30, 1e6+30, true).String(),
		Width:  64,
		Height: 64,
		CTM:    matrix.Identity.Translate(-1e6+12, -1e6+12),
		Area:   40*40 - 20*20,
	},
	{
		Name:   "font_units",
		Path:   newPath().circle(1000, 1000, 800, false).circle(1000, 1000, 400, true).String(),
		Width:  128,
		Height: 128,
		CTM:    matrix.Scale(0.05, 0.05).Translate(14, 14),
	},
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) string {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	d := newPath()
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap
			d.rect(x1, y1, x2, y2, false)
		}
	}
	return d.String()
}
