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

var complexCases = []TestCase{
	{
		Name:   "mixed_lines_curves",
		Path:   newPath().MoveTo(10, 50).LineTo(20, 30).QuadTo(32, 10, 44, 30).LineTo(54, 50).CubeTo(48, 60, 16, 60, 10, 50).Close().String(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "glyph_like",
		Path:   glyphLikeShape(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "letter_o",
		Path:   newPath().circle(32, 32, 26, false).circle(32, 32, 14, true).String(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "letter_o_arcs",
		Path:   newPath().arcCircle(32, 32, 26, true).arcCircle(32, 32, 14, false).String(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "letter_i",
		Path:   newPath().rect(27, 24, 37, 58, false).circle(32, 13, 6, false).String(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "letter_b",
		Path:   letterB(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "digit_8",
		Path:   newPath().circle(32, 20, 13, false).circle(32, 43, 16, false).circle(32, 20, 6, true).circle(32, 43, 8, true).String(),
		Width:  64,
		Height: 64,
	},
}

// glyphLikeShape builds a single contour similar to a lowercase 'a': a
// bowl with a stem, where the counter is drawn in the opposite direction
// within the same subpath.
func glyphLikeShape() string {
	cx, cy := 32.0, 38.0
	r := 18.0
	k := r * kappa
	ir := 8.0
	ik := ir * kappa

	return newPath().
		MoveTo(cx+r, cy).
		CubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r).
		CubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy).
		CubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r).
		CubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy).
		LineTo(cx+r, 10).
		LineTo(cx+r-6, 10).
		LineTo(cx+r-6, cy).
		LineTo(cx+ir, cy).
		CubeTo(cx+ir, cy+ik, cx+ik, cy+ir, cx, cy+ir).
		CubeTo(cx-ik, cy+ir, cx-ir, cy+ik, cx-ir, cy).
		CubeTo(cx-ir, cy-ik, cx-ik, cy-ir, cx, cy-ir).
		CubeTo(cx+ik, cy-ir, cx+ir, cy-ik, cx+ir, cy).
		Close().String()
}

// letterB builds a stem and two bowls which overlap the stem, each bowl
// with a counter.
func letterB() string {
	d := newPath()
	d.rect(10, 6, 20, 58, false)
	d.MoveTo(14, 6).HLineTo(34).ArcTo(12, 12, 0, false, true, 34, 30).HLineTo(14).Close()
	d.MoveTo(14, 30).HLineTo(36).ArcTo(14, 14, 0, false, true, 36, 58).HLineTo(14).Close()
	d.MoveTo(20, 13).VLineTo(23).HLineTo(33).ArcTo(5, 5, 0, false, false, 33, 13).Close()
	d.MoveTo(20, 37).VLineTo(51).HLineTo(35).ArcTo(7, 7, 0, false, false, 35, 37).Close()
	return d.String()
}
