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
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
)

// TestCase defines a single path processing test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Path   string        // SVG path data, absolute commands only
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)

	// Area is the expected area of the compound polygon, after applying the
	// CTM.  Zero means that the area is not checked, which is used for
	// curved shapes.
	Area float64
}

// Matrix returns the transformation matrix of the test case, replacing
// the zero value by the identity.
func (tc TestCase) Matrix() matrix.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return tc.CTM
}

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936

// pathData accumulates SVG path data.
type pathData struct {
	b strings.Builder
}

func (d *pathData) cmd(letter byte, args ...float64) *pathData {
	if d.b.Len() > 0 {
		d.b.WriteByte(' ')
	}
	d.b.WriteByte(letter)
	for i, x := range args {
		if i > 0 {
			d.b.WriteByte(' ')
		}
		d.b.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
	}
	return d
}

func (d *pathData) MoveTo(x, y float64) *pathData { return d.cmd('M', x, y) }
func (d *pathData) LineTo(x, y float64) *pathData { return d.cmd('L', x, y) }
func (d *pathData) HLineTo(x float64) *pathData   { return d.cmd('H', x) }
func (d *pathData) VLineTo(y float64) *pathData   { return d.cmd('V', y) }
func (d *pathData) Close() *pathData              { return d.cmd('Z') }

func (d *pathData) QuadTo(cx, cy, x, y float64) *pathData {
	return d.cmd('Q', cx, cy, x, y)
}

func (d *pathData) CubeTo(c1x, c1y, c2x, c2y, x, y float64) *pathData {
	return d.cmd('C', c1x, c1y, c2x, c2y, x, y)
}

func (d *pathData) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) *pathData {
	return d.cmd('A', rx, ry, rot, flag(large), flag(sweep), x, y)
}

func (d *pathData) String() string {
	return d.b.String()
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// polygon appends a closed polygon through the given points.
func (d *pathData) polygon(xy ...float64) *pathData {
	d.MoveTo(xy[0], xy[1])
	for i := 2; i+1 < len(xy); i += 2 {
		d.LineTo(xy[i], xy[i+1])
	}
	return d.Close()
}

// rect appends a closed rectangle.  If reverse is set, the rectangle is
// traversed in the opposite direction, so that it cuts a hole into a
// rectangle drawn without reverse.
func (d *pathData) rect(x1, y1, x2, y2 float64, reverse bool) *pathData {
	if reverse {
		return d.polygon(x1, y1, x1, y2, x2, y2, x2, y1)
	}
	return d.polygon(x1, y1, x2, y1, x2, y2, x1, y2)
}

// circle appends a circle built from four cubic Bézier curves.
func (d *pathData) circle(cx, cy, r float64, reverse bool) *pathData {
	k := r * kappa
	d.MoveTo(cx+r, cy)
	if reverse {
		d.CubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		d.CubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		d.CubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		d.CubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	} else {
		d.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		d.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		d.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		d.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	}
	return d.Close()
}

// arcCircle appends a circle built from two elliptical arcs.
func (d *pathData) arcCircle(cx, cy, r float64, reverse bool) *pathData {
	d.MoveTo(cx+r, cy)
	d.ArcTo(r, r, 0, false, !reverse, cx-r, cy)
	d.ArcTo(r, r, 0, false, !reverse, cx+r, cy)
	return d.Close()
}

func newPath() *pathData {
	return &pathData{}
}
