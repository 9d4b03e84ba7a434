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

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Path:   twoTriangles(16, 32, 48, 32, 12),
		Width:  64,
		Height: 64,
		Area:   2 * (24 * 24 / 2),
	},
	{
		Name:   "overlapping_rectangles",
		Path:   newPath().rect(10, 10, 40, 40, false).rect(24, 24, 54, 54, false).String(),
		Width:  64,
		Height: 64,
		Area:   2*30*30 - 16*16,
	},
	{
		Name:   "ring_shape",
		Path:   newPath().rect(7, 7, 57, 57, false).rect(20, 20, 44, 44, true).String(),
		Width:  64,
		Height: 64,
		Area:   50*50 - 24*24,
	},
	{
		Name:   "ring_shape_reversed",
		Path:   newPath().rect(7, 7, 57, 57, true).rect(20, 20, 44, 44, false).String(),
		Width:  64,
		Height: 64,
		Area:   50*50 - 24*24,
	},
	{
		Name:   "multiple_rings",
		Path:   multipleRings(64, 64),
		Width:  128,
		Height: 128,
		Area:   3 * (40*40 - 20*20),
	},
	{
		Name:   "island_in_hole",
		Path:   newPath().rect(8, 8, 56, 56, false).rect(16, 16, 48, 48, true).rect(24, 24, 40, 40, false).String(),
		Width:  64,
		Height: 64,
		Area:   48*48 - 32*32 + 16*16,
	},
	{
		Name:   "many_small_shapes",
		Path:   manySmallShapes(8, 8),
		Width:  128,
		Height: 128,
		Area:   64 * (10 * 10 / 2),
	},
	{
		Name:   "lone_moveto",
		Path:   newPath().rect(10, 10, 54, 54, false).MoveTo(5, 5).String(),
		Width:  64,
		Height: 64,
		Area:   44 * 44,
	},
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) string {
	return newPath().
		polygon(cx1, cy1-size, cx1+size, cy1+size, cx1-size, cy1+size).
		polygon(cx2, cy2-size, cx2+size, cy2+size, cx2-size, cy2+size).
		String()
}

// multipleRings builds three square rings.
func multipleRings(cx, cy float64) string {
	rings := []struct{ cx, cy, outer, inner float64 }{
		{cx - 30, cy - 30, 20, 10},
		{cx + 30, cy - 30, 20, 10},
		{cx, cy + 30, 20, 10},
	}
	d := newPath()
	for _, ring := range rings {
		d.rect(ring.cx-ring.outer, ring.cy-ring.outer, ring.cx+ring.outer, ring.cy+ring.outer, false)
		d.rect(ring.cx-ring.inner, ring.cy-ring.inner, ring.cx+ring.inner, ring.cy+ring.inner, true)
	}
	return d.String()
}

// manySmallShapes builds a grid of small triangles.
func manySmallShapes(rows, cols int) string {
	const size = 5.0
	const spacing = 14.0
	d := newPath()
	for row := range rows {
		for col := range cols {
			cx := 10.0 + float64(col)*spacing
			cy := 10.0 + float64(row)*spacing
			d.polygon(cx, cy-size, cx+size, cy+size, cx-size, cy+size)
		}
	}
	return d.String()
}
