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

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   newPath().MoveTo(10, 50).QuadTo(32, 0, 54, 50).Close().String(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic",
		Path:   newPath().MoveTo(10, 50).CubeTo(10, 0, 54, 0, 54, 50).Close().String(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "s_curve_quadratic",
		Path:   sCurveQuadratic(10, 32, 54, 32),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle",
		Path:   newPath().circle(32, 32, 25, false).String(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_arcs",
		Path:   newPath().arcCircle(32, 32, 25, false).String(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 32, 28, 14),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rotated_ellipse_arcs",
		Path:   newPath().MoveTo(12, 32).ArcTo(24, 10, 30, false, true, 52, 32).ArcTo(24, 10, 30, false, true, 12, 32).Close().String(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "pie_slice",
		Path:   newPath().MoveTo(32, 32).LineTo(57, 32).ArcTo(25, 25, 0, true, true, 32, 7).Close().String(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rounded_rectangle",
		Path:   roundedRectangle(8, 12, 56, 52, 8),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cusp",
		Path:   newPath().MoveTo(10, 54).CubeTo(54, 10, 10, 10, 54, 54).Close().String(),
		Width:  64,
		Height: 64,
	},
}

// sCurveQuadratic builds a closed S-shaped path from two quadratic Bézier
// curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) string {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2
	return newPath().
		MoveTo(x1, y1).
		QuadTo((x1+midX)/2, y1-20, midX, midY).
		QuadTo((midX+x2)/2, y2+20, x2, y2).
		Close().String()
}

// ellipse builds an axis-aligned ellipse from four cubic Bézier curves.
func ellipse(cx, cy, rx, ry float64) string {
	kx := rx * kappa
	ky := ry * kappa
	return newPath().
		MoveTo(cx+rx, cy).
		CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry).
		CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy).
		CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry).
		CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy).
		Close().String()
}

// roundedRectangle builds a rectangle with circular corners of radius r,
// using elliptical arcs and H/V lines.
func roundedRectangle(x1, y1, x2, y2, r float64) string {
	return newPath().
		MoveTo(x1+r, y1).
		HLineTo(x2-r).
		ArcTo(r, r, 0, false, true, x2, y1+r).
		VLineTo(y2-r).
		ArcTo(r, r, 0, false, true, x2-r, y2).
		HLineTo(x1+r).
		ArcTo(r, r, 0, false, true, x1, y2-r).
		VLineTo(y1+r).
		ArcTo(r, r, 0, false, true, x1+r, y1).
		Close().String()
}
