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

// precisionCases contain touching and coincident edges, which the polygon
// operations must handle without leaving slivers.
var precisionCases = []TestCase{
	{
		Name:   "subpixel_offset",
		Path:   newPath().rect(20.25, 20.25, 44.25, 44.25, false).String(),
		Width:  64,
		Height: 64,
		Area:   24 * 24,
	},
	{
		Name:   "shared_edge",
		Path:   newPath().rect(10, 10, 32, 54, false).rect(32, 10, 54, 54, false).String(),
		Width:  64,
		Height: 64,
		Area:   44 * 44,
	},
	{
		Name:   "partial_shared_edge",
		Path:   newPath().rect(10, 10, 32, 40, false).rect(32, 20, 54, 54, false).String(),
		Width:  64,
		Height: 64,
		Area:   22*30 + 22*34,
	},
	{
		Name:   "touching_corners",
		Path:   newPath().rect(10, 10, 32, 32, false).rect(32, 32, 54, 54, false).String(),
		Width:  64,
		Height: 64,
		Area:   2 * 22 * 22,
	},
	{
		Name:   "hole_touching_boundary",
		Path:   newPath().rect(10, 10, 54, 54, false).polygon(32, 10, 22, 30, 42, 30).String(),
		Width:  64,
		Height: 64,
		Area:   44*44 - 20*20/2,
	},
	{
		Name:   "hole_sharing_edge",
		Path:   newPath().rect(10, 10, 54, 54, false).rect(10, 20, 30, 40, true).String(),
		Width:  64,
		Height: 64,
		Area:   44*44 - 20*20,
	},
	{
		Name:   "t_junction",
		Path:   newPath().rect(10, 10, 54, 30, false).rect(22, 30, 42, 54, false).String(),
		Width:  64,
		Height: 64,
		Area:   44*20 + 20*24,
	},
	{
		Name:   "duplicate_contour",
		Path:   newPath().rect(10, 10, 54, 54, false).rect(10, 10, 54, 54, false).String(),
		Width:  64,
		Height: 64,
		Area:   44 * 44,
	},
	{
		Name:   "repeated_points",
		Path:   newPath().MoveTo(10, 10).LineTo(10, 10).LineTo(54, 10).LineTo(54, 10).LineTo(54, 54).LineTo(10, 54).LineTo(10, 10).Close().String(),
		Width:  64,
		Height: 64,
		Area:   44 * 44,
	},
}
