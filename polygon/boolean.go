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

package polygon

import (
	"math"
	"slices"

	"github.com/tdewolff/canvas"
	"seehuhn.de/go/geom/vec"
)

// The boolean operations are evaluated by the path intersection code of
// github.com/tdewolff/canvas.  Both operands are read with the nonzero
// rule.  The result consists of counter-clockwise rings around filled
// regions and clockwise rings around holes; a ring which visits a vertex
// twice is split there, so that every returned ring is simple.

type op int

const (
	opSettle op = iota
	opUnion
	opSubtract
)

// relTol is the size of geometric noise, relative to the size of the input.
const relTol = 1e-9

// combine applies f to the regions enclosed by a and b and returns the
// boundary rings of the result.  For opSettle, only b is used.
func combine(a, b []Ring, f op) []Ring {
	var res *canvas.Path
	switch f {
	case opSettle:
		if len(b) == 0 {
			return nil
		}
		res = toPath(b).Settle(canvas.NonZero)
	case opUnion:
		switch {
		case len(a) == 0:
			return combine(nil, b, opSettle)
		case len(b) == 0:
			return combine(nil, a, opSettle)
		}
		res = toPath(a).Or(toPath(b))
	case opSubtract:
		switch {
		case len(a) == 0:
			return nil
		case len(b) == 0:
			return combine(nil, a, opSettle)
		}
		res = toPath(a).Not(toPath(b))
	}
	if res == nil {
		return nil
	}
	return fromPath(res, extent(a, b))
}

// toPath converts rings into a path with one closed subpath per ring.
func toPath(rings []Ring) *canvas.Path {
	p := &canvas.Path{}
	for _, r := range rings {
		if len(r) < 3 {
			continue
		}
		p.MoveTo(r[0].X, r[0].Y)
		for _, pt := range r[1:] {
			p.LineTo(pt.X, pt.Y)
		}
		p.Close()
	}
	return p
}

// fromPath reads the rings of a flat, closed path.  Rings are split where
// they touch themselves, collinear vertices are removed, and rings with no
// area left are dropped.
func fromPath(p *canvas.Path, ext float64) []Ring {
	tol := relTol * math.Max(ext, 1)

	var res []Ring
	for _, sub := range p.Split() {
		coords := sub.Coords()
		if n := len(coords); n > 1 && coords[0] == coords[n-1] {
			coords = coords[:n-1]
		}
		loop := make(Ring, len(coords))
		for i, c := range coords {
			loop[i] = vec.Vec2{X: c.X, Y: c.Y}
		}
		for _, r := range splitLoop(loop) {
			r = dropCollinear(r, tol)
			if len(r) < 3 || math.Abs(r.SignedArea()) <= tol*math.Max(ext, 1) {
				continue
			}
			res = append(res, r)
		}
	}
	return res
}

// extent returns the largest absolute coordinate in a and b.
func extent(a, b []Ring) float64 {
	var ext float64
	for _, rings := range [][]Ring{a, b} {
		for _, r := range rings {
			for _, p := range r {
				ext = math.Max(ext, math.Max(math.Abs(p.X), math.Abs(p.Y)))
			}
		}
	}
	return ext
}

// splitLoop splits a closed loop which visits some vertex more than once
// into loops which visit every vertex only once.
func splitLoop(loop Ring) []Ring {
	var res []Ring
	var stack Ring
	pos := make(map[vec.Vec2]int)
	for _, pt := range loop {
		if k, seen := pos[pt]; seen {
			res = append(res, slices.Clone(stack[k:]))
			for _, x := range stack[k+1:] {
				delete(pos, x)
			}
			stack = stack[:k+1]
			continue
		}
		pos[pt] = len(stack)
		stack = append(stack, pt)
	}
	return append(res, stack)
}

// dropCollinear removes vertices which lie on the line through their
// neighbours.
func dropCollinear(r Ring, tol float64) Ring {
	for changed := true; changed && len(r) >= 3; {
		changed = false
		n := len(r)
		res := make(Ring, 0, n)
		for i, p := range r {
			prev := r[(i+n-1)%n]
			if len(res) > 0 {
				prev = res[len(res)-1]
			}
			next := r[(i+1)%n]
			d := next.Sub(prev)
			if l := d.Length(); l > 0 && math.Abs(cross(d, p.Sub(prev))) <= tol*l {
				changed = true
				continue
			}
			res = append(res, p)
		}
		r = res
	}
	return r
}
