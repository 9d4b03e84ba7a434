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

import (
	"seehuhn.de/go/geom/matrix"
)

var ctmCases = []TestCase{
	// uniform scaling
	{
		Name:   "scale_2x",
		Path:   newPath().rect(0, 0, 20, 20, false).String(),
		Width:  128,
		Height: 128,
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
		Area:   40 * 40,
	},
	{
		Name:   "scale_half",
		Path:   newPath().rect(0, 0, 80, 80, false).String(),
		Width:  64,
		Height: 64,
		CTM:    matrix.Scale(0.5, 0.5).Translate(12, 12),
		Area:   40 * 40,
	},

	// rotation
	{
		Name:   "rotate_45deg",
		Path:   newPath().rect(-10, -10, 10, 10, false).String(),
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
		Area:   20 * 20,
	},
	{
		Name:   "rotate_90deg_hv",
		Path:   newPath().MoveTo(-15, -10).HLineTo(15).VLineTo(10).HLineTo(-15).Close().String(),
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(90).Translate(32, 32),
		Area:   30 * 20,
	},
	{
		Name:   "rotate_arcs",
		Path:   newPath().arcCircle(0, 0, 20, false).arcCircle(0, 0, 10, true).String(),
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
	},

	// non-uniform scaling
	{
		Name:   "scale_2x_1y",
		Path:   newPath().rect(-10, -10, 10, 10, false).String(),
		Width:  128,
		Height: 64,
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
		Area:   40 * 20,
	},
	{
		Name:   "circle_to_ellipse",
		Path:   newPath().circle(0, 0, 15, false).String(),
		Width:  128,
		Height: 64,
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
	},
	{
		Name:   "arc_circle_to_ellipse",
		Path:   newPath().arcCircle(0, 0, 15, false).String(),
		Width:  128,
		Height: 64,
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
	},
	{
		Name:   "rotated_arc_nonuniform",
		Path:   newPath().MoveTo(-20, 0).ArcTo(20, 8, 30, false, true, 20, 0).ArcTo(20, 8, 30, false, true, -20, 0).Close().String(),
		Width:  128,
		Height: 64,
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
	},

	// reflection
	{
		Name:   "reflect_y",
		Path:   newPath().rect(-20, -10, 20, 10, false).rect(-5, -5, 5, 5, true).String(),
		Width:  64,
		Height: 64,
		CTM:    matrix.Scale(1, -1).Translate(32, 32),
		Area:   40*20 - 10*10,
	},
	{
		Name:   "reflect_arcs",
		Path:   newPath().arcCircle(0, 0, 24, false).arcCircle(0, 0, 12, true).String(),
		Width:  64,
		Height: 64,
		CTM:    matrix.Scale(-1, 1).Translate(32, 32),
	},

	// shear
	{
		Name:   "shear_horizontal",
		Path:   newPath().rect(-15, -15, 15, 15, false).String(),
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
		Area:   30 * 30,
	},
	{
		Name:   "shear_vertical_hv",
		Path:   newPath().MoveTo(-15, -15).HLineTo(15).VLineTo(15).HLineTo(-15).Close().String(),
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1, 0.5, 0, 1, 0, 0}.Translate(32, 32),
		Area:   30 * 30,
	},
	{
		Name:   "shear_arcs",
		Path:   newPath().arcCircle(0, 0, 16, false).arcCircle(0, 0, 8, true).String(),
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
	},
	{
		Name:   "shear_and_rotate",
		Path:   newPath().rect(-12, -12, 12, 12, false).String(),
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1, 0, 0.3, 1, 0, 0}.RotateDeg(30).Translate(32, 32),
		Area:   24 * 24,
	},
}
