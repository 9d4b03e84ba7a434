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

// ArcToCubics converts an elliptical arc starting at from into a sequence
// of cubic Bézier curves.
//
// Each curve covers at most a quarter of the ellipse; the maximal radial
// error is below 0.03% of the radius.  Radii which are too small to reach
// the end point are scaled up, as required for SVG.  An arc with a zero
// radius becomes a single LineTo, and an arc which ends where it starts is
// omitted.
func ArcToCubics(from vec.Vec2, arc ArcTo) []Command {
	to := arc.P
	if from == to {
		return nil
	}
	rx, ry := math.Abs(arc.RX), math.Abs(arc.RY)
	if rx == 0 || ry == 0 {
		return []Command{LineTo{P: to}}
	}

	phi := arc.Rotation * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	// end point to center parameterisation
	dx2 := (from.X - to.X) / 2
	dy2 := (from.Y - to.Y) / 2
	x1 := cosPhi*dx2 + sinPhi*dy2
	y1 := -sinPhi*dx2 + cosPhi*dy2

	lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := 0.0
	if num > 0 {
		coef = math.Sqrt(num / den)
	}
	if arc.IsLarge() == arc.IsSweep() {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx
	center := vec.Vec2{
		X: cosPhi*cx1 - sinPhi*cy1 + (from.X+to.X)/2,
		Y: sinPhi*cx1 + cosPhi*cy1 + (from.Y+to.Y)/2,
	}

	theta1 := math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	theta2 := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx)
	delta := theta2 - theta1
	if arc.IsSweep() && delta < 0 {
		delta += 2 * math.Pi
	} else if !arc.IsSweep() && delta > 0 {
		delta -= 2 * math.Pi
	}

	e := ellipse{center: center, rx: rx, ry: ry, sin: sinPhi, cos: cosPhi}
	n := int(math.Ceil(math.Abs(delta)/(math.Pi/2) - 1e-9))
	if n < 1 {
		n = 1
	}
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	res := make([]Command, 0, n)
	t0 := theta1
	p0 := from
	for i := 1; i <= n; i++ {
		t1 := theta1 + float64(i)*step
		p1 := e.point(t1)
		if i == n {
			p1 = to
		}
		res = append(res, CubeTo{
			C1: p0.Add(e.derivative(t0).Mul(k)),
			C2: p1.Sub(e.derivative(t1).Mul(k)),
			P:  p1,
		})
		t0, p0 = t1, p1
	}
	return res
}

type ellipse struct {
	center   vec.Vec2
	rx, ry   float64
	sin, cos float64
}

func (e ellipse) point(t float64) vec.Vec2 {
	s, c := math.Sincos(t)
	return vec.Vec2{
		X: e.center.X + e.rx*e.cos*c - e.ry*e.sin*s,
		Y: e.center.Y + e.rx*e.sin*c + e.ry*e.cos*s,
	}
}

func (e ellipse) derivative(t float64) vec.Vec2 {
	s, c := math.Sincos(t)
	return vec.Vec2{
		X: -e.rx*e.cos*s - e.ry*e.sin*c,
		Y: -e.rx*e.sin*s + e.ry*e.cos*c,
	}
}
