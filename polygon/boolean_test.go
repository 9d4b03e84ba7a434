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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func totalArea(rings []Ring) float64 {
	var a float64
	for _, r := range rings {
		a += r.SignedArea()
	}
	return a
}

func TestCombine(t *testing.T) {
	a := square(0, 0, 10, true)
	b := square(5, 5, 10, true)
	cases := []struct {
		name  string
		f     op
		area  float64
		rings int
	}{
		{"union", opUnion, 175, 1},
		{"subtract", opSubtract, 75, 1},
		{"settle", opSettle, 100, 1},
	}
	for _, c := range cases {
		res := combine([]Ring{a}, []Ring{b}, c.f)
		if len(res) != c.rings {
			t.Errorf("%s: got %d rings, want %d", c.name, len(res), c.rings)
		}
		if got := totalArea(res); math.Abs(got-c.area) > 1e-7 {
			t.Errorf("%s: area %g, want %g", c.name, got, c.area)
		}
	}
}

func TestCombineEmptyOperands(t *testing.T) {
	a := []Ring{square(0, 0, 10, false)}
	if res := combine(nil, a, opUnion); math.Abs(totalArea(res)-100) > 1e-7 {
		t.Errorf("union with empty: area %g", totalArea(res))
	}
	if res := combine(a, nil, opUnion); math.Abs(totalArea(res)-100) > 1e-7 {
		t.Errorf("union of empty: area %g", totalArea(res))
	}
	if res := combine(nil, a, opSubtract); len(res) != 0 {
		t.Errorf("subtract from empty: got %v", res)
	}
	if res := combine(a, nil, opSubtract); math.Abs(totalArea(res)-100) > 1e-7 {
		t.Errorf("subtract nothing: area %g", totalArea(res))
	}
	if res := combine(nil, nil, opSettle); len(res) != 0 {
		t.Errorf("settle nothing: got %v", res)
	}
}

func TestCombineOrientationIndependent(t *testing.T) {
	// nonzero rule: the orientation of the operands does not matter, and
	// the result always has counter-clockwise outer rings
	a := square(0, 0, 10, false)
	b := square(5, 5, 10, true)
	res := combine([]Ring{a}, []Ring{b}, opUnion)
	if got := totalArea(res); math.Abs(got-175) > 1e-7 {
		t.Errorf("area %g, want 175", got)
	}
	for _, r := range res {
		if r.Orientation() != CounterClockwise {
			t.Errorf("outer ring is %s", r.Orientation())
		}
	}
}

func TestCombineSelfIntersecting(t *testing.T) {
	bowtie := Ring{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	res := combine(nil, []Ring{bowtie}, opSettle)
	if len(res) != 2 {
		t.Fatalf("got %d rings, want 2", len(res))
	}
	for _, r := range res {
		if len(r) != 3 {
			t.Errorf("lobe has %d vertices, want 3", len(r))
		}
		if a := r.SignedArea(); math.Abs(a-25) > 1e-7 {
			t.Errorf("lobe area %g, want 25", a)
		}
	}

	s := star(0, 0, 10)
	res = combine(nil, []Ring{s}, opSettle)
	if len(res) != 1 {
		t.Fatalf("star: got %d rings, want 1", len(res))
	}
	if len(res[0]) != 10 {
		t.Errorf("star outline has %d vertices, want 10", len(res[0]))
	}
	if got, want := res[0].SignedArea(), starArea(10); math.Abs(got-want) > 1e-6 {
		t.Errorf("star area %g, want %g", got, want)
	}
}

func TestCombineTouching(t *testing.T) {
	cases := []struct {
		name  string
		b     Ring
		f     op
		area  float64
		rings int
	}{
		{"corner", square(10, 10, 10, true), opUnion, 200, 2},
		{"shared_edge", square(10, 0, 10, true), opUnion, 200, 1},
		{"partial_edge", square(10, 5, 10, true), opUnion, 200, 1},
		{"inside_edge", square(0, 0, 5, true), opSubtract, 75, 1},
		{"identical", square(0, 0, 10, true), opUnion, 100, 1},
		{"identical_subtract", square(0, 0, 10, true), opSubtract, 0, 0},
	}
	a := square(0, 0, 10, true)
	for _, c := range cases {
		res := combine([]Ring{a}, []Ring{c.b}, c.f)
		if len(res) != c.rings {
			t.Errorf("%s: got %d rings, want %d", c.name, len(res), c.rings)
		}
		if got := totalArea(res); math.Abs(got-c.area) > 1e-7 {
			t.Errorf("%s: area %g, want %g", c.name, got, c.area)
		}
	}
}

func TestCombineSharedEdgeMerges(t *testing.T) {
	res := combine([]Ring{square(0, 0, 10, true)}, []Ring{square(10, 0, 10, true)}, opUnion)
	if len(res) != 1 || len(res[0]) != 4 {
		t.Fatalf("got %v, want one rectangle", res)
	}
}

func TestCombineHole(t *testing.T) {
	res := combine([]Ring{square(0, 0, 30, true)}, []Ring{square(10, 10, 10, true)}, opSubtract)
	if len(res) != 2 {
		t.Fatalf("got %d rings, want 2", len(res))
	}
	var pos, neg int
	for _, r := range res {
		switch r.Orientation() {
		case CounterClockwise:
			pos++
		case Clockwise:
			neg++
		}
	}
	if pos != 1 || neg != 1 {
		t.Errorf("got %d outer and %d inner rings", pos, neg)
	}
	if got := totalArea(res); math.Abs(got-800) > 1e-7 {
		t.Errorf("area %g, want 800", got)
	}
}

func TestPathConversion(t *testing.T) {
	rings := []Ring{square(0, 0, 10, true), square(20, 0, 5, false)}
	got := fromPath(toPath(rings), 25)
	if len(got) != 2 {
		t.Fatalf("got %d rings, want 2", len(got))
	}
	for i, r := range got {
		if len(r) != 4 {
			t.Errorf("ring %d: got %v", i, r)
		}
		if a, want := r.SignedArea(), rings[i].SignedArea(); a != want {
			t.Errorf("ring %d: area %g, want %g", i, a, want)
		}
	}

	// rings with fewer than three points are not converted
	if got := fromPath(toPath([]Ring{{{X: 1, Y: 1}, {X: 2, Y: 2}}}), 2); len(got) != 0 {
		t.Errorf("got %v", got)
	}
}

func TestSplitLoop(t *testing.T) {
	p := func(x float64) vec.Vec2 { return vec.Vec2{X: x, Y: x * x} }
	got := splitLoop(Ring{p(1), p(2), p(3), p(2), p(4)})
	want := []Ring{{p(2), p(3)}, {p(1), p(2), p(4)}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	simple := splitLoop(Ring{p(5), p(6), p(7)})
	if len(simple) != 1 || !slices.Equal(simple[0], Ring{p(5), p(6), p(7)}) {
		t.Errorf("simple loop changed: %v", simple)
	}
}

func TestDropCollinear(t *testing.T) {
	r := Ring{
		{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0},
		{X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 5},
	}
	got := dropCollinear(r, 1e-9)
	if len(got) != 4 {
		t.Errorf("got %v, want 4 corners", got)
	}
	if a := got.SignedArea(); a != 100 {
		t.Errorf("area changed to %g", a)
	}
}
