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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// similarityTol is the relative tolerance used to decide whether the linear
// part of a matrix is a similarity transform.
const similarityTol = 1e-9

// Transform applies the affine map m to every command of p.
//
// The command kinds are preserved wherever possible.  H and V commands
// stay horizontal and vertical lines only when m has no rotation or shear
// component (m[1] == m[2] == 0); otherwise they become LineTo commands.
// Elliptical arcs are mapped exactly when m is a similarity transform, or
// when m only scales the coordinate axes and the ellipse is aligned with
// the axes.  In all other cases arcs are converted to cubic Bézier curves
// first, see [ArcToCubics].
//
// The identity matrix returns an unchanged copy of p.  A singular matrix
// gives a [*DegenerateGeometryError].
func Transform(p Path, m matrix.Matrix) (Path, error) {
	if m == matrix.Identity {
		return p.Clone(), nil
	}
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return nil, &DegenerateGeometryError{Msg: "transformation matrix is singular"}
	}
	axisAligned := m[1] == 0 && m[2] == 0

	res := make(Path, 0, len(p))
	p.walk(func(cmd Command, from, to vec.Vec2) {
		switch c := cmd.(type) {
		case MoveTo:
			res = append(res, MoveTo{P: apply(m, c.P)})
		case LineTo:
			res = append(res, LineTo{P: apply(m, c.P)})
		case HLineTo:
			if axisAligned {
				res = append(res, HLineTo{X: m[0]*c.X + m[4]})
			} else {
				res = append(res, LineTo{P: apply(m, to)})
			}
		case VLineTo:
			if axisAligned {
				res = append(res, VLineTo{Y: m[3]*c.Y + m[5]})
			} else {
				res = append(res, LineTo{P: apply(m, to)})
			}
		case CubeTo:
			res = append(res, CubeTo{
				C1: apply(m, c.C1),
				C2: apply(m, c.C2),
				P:  apply(m, c.P),
			})
		case QuadTo:
			res = append(res, QuadTo{C: apply(m, c.C), P: apply(m, c.P)})
		case ArcTo:
			res = append(res, transformArc(m, from, c)...)
		case Close:
			res = append(res, Close{})
		}
	})
	return res, nil
}

// transformArc maps an elliptical arc starting at from.
func transformArc(m matrix.Matrix, from vec.Vec2, arc ArcTo) []Command {
	q, r := similarityParts(m)
	scale := q + r

	switch {
	case r <= similarityTol*scale:
		// rotation and uniform scaling
		theta := math.Atan2((m[1]-m[2])/2, (m[0]+m[3])/2) * 180 / math.Pi
		rot := arc.Rotation
		if theta != 0 {
			rot = normalizeDegrees(rot + theta)
		}
		return []Command{ArcTo{
			RX:       arc.RX * q,
			RY:       arc.RY * q,
			Rotation: rot,
			LargeArc: arc.LargeArc,
			Sweep:    arc.Sweep,
			P:        apply(m, arc.P),
		}}

	case q <= similarityTol*scale:
		// reflection and uniform scaling
		alpha := math.Atan2((m[1]+m[2])/2, (m[0]-m[3])/2) * 180 / math.Pi
		return []Command{ArcTo{
			RX:       arc.RX * r,
			RY:       arc.RY * r,
			Rotation: normalizeDegrees(alpha - arc.Rotation),
			LargeArc: arc.LargeArc,
			Sweep:    flipFlag(arc.Sweep),
			P:        apply(m, arc.P),
		}}

	case m[1] == 0 && m[2] == 0 && math.Mod(arc.Rotation, 90) == 0:
		// axis-aligned ellipse under axis scaling
		sx, sy := math.Abs(m[0]), math.Abs(m[3])
		if math.Mod(arc.Rotation, 180) != 0 {
			sx, sy = sy, sx
		}
		sweep := arc.Sweep
		if m[0]*m[3] < 0 {
			sweep = flipFlag(sweep)
		}
		return []Command{ArcTo{
			RX:       arc.RX * sx,
			RY:       arc.RY * sy,
			Rotation: arc.Rotation,
			LargeArc: arc.LargeArc,
			Sweep:    sweep,
			P:        apply(m, arc.P),
		}}
	}

	curves := ArcToCubics(from, arc)
	res := make([]Command, len(curves))
	for i, cmd := range curves {
		switch c := cmd.(type) {
		case CubeTo:
			res[i] = CubeTo{C1: apply(m, c.C1), C2: apply(m, c.C2), P: apply(m, c.P)}
		case LineTo:
			res[i] = LineTo{P: apply(m, c.P)}
		}
	}
	return res
}

// Compose returns the matrix which is equivalent to applying first and
// then second.
func Compose(first, second matrix.Matrix) matrix.Matrix {
	return matrix.Matrix{
		second[0]*first[0] + second[2]*first[1],
		second[1]*first[0] + second[3]*first[1],
		second[0]*first[2] + second[2]*first[3],
		second[1]*first[2] + second[3]*first[3],
		second[0]*first[4] + second[2]*first[5] + second[4],
		second[1]*first[4] + second[3]*first[5] + second[5],
	}
}

// SingularValues returns the singular values s1 >= s2 >= 0 of the linear
// part of m.  The linear part is a similarity transform if and only if
// s1 == s2.
func SingularValues(m matrix.Matrix) (s1, s2 float64) {
	q, r := similarityParts(m)
	return q + r, math.Abs(q - r)
}

// similarityParts splits the linear part of m into a rotation-scaling part
// of size q and a reflection-scaling part of size r.
func similarityParts(m matrix.Matrix) (q, r float64) {
	e := (m[0] + m[3]) / 2
	f := (m[0] - m[3]) / 2
	g := (m[1] + m[2]) / 2
	h := (m[1] - m[2]) / 2
	return math.Hypot(e, h), math.Hypot(f, g)
}

func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// normalizeDegrees maps an ellipse rotation angle to [0, 180).
func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 180)
	if deg < 0 {
		deg += 180
	}
	if deg >= 180 {
		deg = 0
	}
	return deg
}

func flipFlag(x float64) float64 {
	if x != 0 {
		return 0
	}
	return 1
}
