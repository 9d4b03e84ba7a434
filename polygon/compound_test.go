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
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func contours(rings ...Ring) [][]vec.Vec2 {
	res := make([][]vec.Vec2, len(rings))
	for i, r := range rings {
		res[i] = r
	}
	return res
}

func mustCompose(t *testing.T, rings ...Ring) CompoundPolygon {
	t.Helper()
	cp, err := Compose(contours(rings...))
	if err != nil {
		t.Fatal(err)
	}
	return cp
}

func checkArea(t *testing.T, cp CompoundPolygon, want float64) {
	t.Helper()
	if got := cp.Area(); math.Abs(got-want) > 1e-7*math.Max(1, want) {
		t.Errorf("area %g, want %g", got, want)
	}
}

func TestComposeDisjoint(t *testing.T) {
	cp := mustCompose(t, square(0, 0, 10, true), square(20, 0, 10, true))
	if len(cp.Fills) != 2 || len(cp.Holes) != 0 {
		t.Errorf("got %d fills and %d holes", len(cp.Fills), len(cp.Holes))
	}
	checkArea(t, cp, 200)
}

func TestComposeNested(t *testing.T) {
	cp := mustCompose(t, square(0, 0, 30, true), square(10, 10, 10, false))
	if len(cp.Fills) != 1 || len(cp.Holes) != 1 {
		t.Fatalf("got %d fills and %d holes, want 1 and 1", len(cp.Fills), len(cp.Holes))
	}
	checkArea(t, cp, 900-100)
	if cp.Reference != CounterClockwise {
		t.Errorf("reference %s, want ccw", cp.Reference)
	}
	if cp.Fills[0].Orientation() != CounterClockwise || cp.Holes[0].Orientation() != Clockwise {
		t.Error("wrong ring orientations")
	}
}

func TestComposeClockwiseReference(t *testing.T) {
	cp := mustCompose(t, square(0, 0, 30, false), square(10, 10, 10, true))
	if cp.Reference != Clockwise {
		t.Fatalf("reference %s, want cw", cp.Reference)
	}
	if len(cp.Fills) != 1 || len(cp.Holes) != 1 {
		t.Fatalf("got %d fills and %d holes, want 1 and 1", len(cp.Fills), len(cp.Holes))
	}
	if cp.Fills[0].Orientation() != Clockwise || cp.Holes[0].Orientation() != CounterClockwise {
		t.Error("wrong ring orientations")
	}
	checkArea(t, cp, 800)
}

func TestComposeIslandInHole(t *testing.T) {
	cp := mustCompose(t,
		square(0, 0, 30, true),
		square(5, 5, 20, false),
		square(10, 10, 10, true),
	)
	if len(cp.Fills) != 2 || len(cp.Holes) != 1 {
		t.Fatalf("got %d fills and %d holes, want 2 and 1", len(cp.Fills), len(cp.Holes))
	}
	checkArea(t, cp, 900-400+100)

	if !cp.Contains(vec.Vec2{X: 2, Y: 2}) || cp.Contains(vec.Vec2{X: 7, Y: 7}) || !cp.Contains(vec.Vec2{X: 15, Y: 15}) {
		t.Error("Contains gives wrong results")
	}

	groups := cp.Groups()
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	sizes := map[int]int{}
	for _, g := range groups {
		sizes[len(g)]++
	}
	if sizes[1] != 1 || sizes[2] != 1 {
		t.Errorf("unexpected group sizes %v", sizes)
	}
}

func TestComposeHoleCrossingBoundary(t *testing.T) {
	cp := mustCompose(t, square(0, 0, 20, true), Ring{
		{X: 10, Y: 5}, {X: 10, Y: 15}, {X: 30, Y: 15}, {X: 30, Y: 5},
	})
	if len(cp.Fills) != 1 || len(cp.Holes) != 0 {
		t.Errorf("got %d fills and %d holes, want 1 and 0", len(cp.Fills), len(cp.Holes))
	}
	checkArea(t, cp, 400-100)
}

func TestComposeOverlappingUnion(t *testing.T) {
	cp := mustCompose(t, square(0, 0, 10, true), square(5, 5, 10, true))
	if len(cp.Fills) != 1 {
		t.Errorf("got %d fills, want 1", len(cp.Fills))
	}
	checkArea(t, cp, 175)
}

func TestComposeSelfIntersecting(t *testing.T) {
	// a star as first contour is simplified into its outline
	cp := mustCompose(t, star(0, 0, 10))
	if len(cp.Fills) != 1 || len(cp.Holes) != 0 {
		t.Errorf("got %d fills and %d holes", len(cp.Fills), len(cp.Holes))
	}
	checkArea(t, cp, starArea(10))

	// a star with opposite orientation cuts a star-shaped hole
	cp = mustCompose(t, square(-20, -20, 40, true), star(0, 0, 10).Reversed())
	if len(cp.Fills) != 1 || len(cp.Holes) != 1 {
		t.Errorf("got %d fills and %d holes", len(cp.Fills), len(cp.Holes))
	}
	checkArea(t, cp, 1600-starArea(10))
}

func TestComposeDegenerate(t *testing.T) {
	_, err := Compose(contours(
		Ring{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 10}},
		square(0, 0, 10, true),
	))
	if !errors.Is(err, ErrDegenerate) {
		t.Fatalf("got error %v, want ErrDegenerate", err)
	}
	var e *DegenerateFirstContourError
	if !errors.As(err, &e) || e.Points != 4 {
		t.Errorf("got error %#v", err)
	}

	// later degenerate contours are skipped
	cp := mustCompose(t, square(0, 0, 10, true), Ring{{X: 0, Y: 0}, {X: 20, Y: 20}}, square(20, 0, 10, true))
	checkArea(t, cp, 200)
}

func TestComposeFigureEight(t *testing.T) {
	// The signed areas of the two lobes cancel.  The lobe through the
	// leftmost vertex is counter-clockwise, so the figure is added.
	eight := Ring{{X: 20, Y: 0}, {X: 30, Y: 10}, {X: 30, Y: 0}, {X: 20, Y: 10}}
	cp := mustCompose(t, square(0, 0, 10, true), eight)
	if len(cp.Fills) != 3 {
		t.Errorf("got %d fills, want 3", len(cp.Fills))
	}
	checkArea(t, cp, 150)

	// traversed the other way, it cuts two triangular holes
	hole := Ring{{X: 10, Y: 10}, {X: 10, Y: 20}, {X: 20, Y: 10}, {X: 20, Y: 20}}
	cp = mustCompose(t, square(0, 0, 30, true), hole)
	checkArea(t, cp, 850)
}

func TestRingTraversal(t *testing.T) {
	cases := []struct {
		name string
		r    Ring
		want Orientation
	}{
		{"ccw", square(0, 0, 1, true), CounterClockwise},
		{"cw", square(0, 0, 1, false), Clockwise},
		{"eight", Ring{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 10}}, CounterClockwise},
		{"eight_reversed", Ring{{X: 0, Y: 10}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0}}, Clockwise},
		{"line", Ring{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, Degenerate},
		{"two_points", Ring{{X: 0, Y: 0}, {X: 1, Y: 1}}, Degenerate},
	}
	for _, c := range cases {
		if got := c.r.traversal(); got != c.want {
			t.Errorf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}

func TestComposeEmpty(t *testing.T) {
	cp, err := Compose(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !cp.IsEmpty() || cp.Area() != 0 || cp.Reference != Degenerate {
		t.Errorf("unexpected result %v", cp)
	}
}

func TestComposeRemovesEverything(t *testing.T) {
	cp := mustCompose(t, square(0, 0, 10, true), square(-5, -5, 20, false), square(30, 30, 5, true))
	if len(cp.Fills) != 1 || len(cp.Holes) != 0 {
		t.Errorf("got %d fills and %d holes", len(cp.Fills), len(cp.Holes))
	}
	checkArea(t, cp, 25)
	if cp.Reference != CounterClockwise {
		t.Errorf("reference %s, want ccw", cp.Reference)
	}
}

func TestUnionSubtract(t *testing.T) {
	cp := Union(CompoundPolygon{}, square(0, 0, 10, false))
	if cp.Reference != Clockwise {
		t.Errorf("reference %s, want cw", cp.Reference)
	}
	checkArea(t, cp, 100)

	cp = Union(cp, square(10, 0, 10, true))
	checkArea(t, cp, 200)
	if len(cp.Fills) != 1 || cp.Fills[0].Orientation() != Clockwise {
		t.Error("wrong fill rings after union")
	}

	cp = Subtract(cp, Ring{{X: 5, Y: -5}, {X: 15, Y: -5}, {X: 15, Y: 15}, {X: 5, Y: 15}})
	checkArea(t, cp, 100)
	if len(cp.Fills) != 2 {
		t.Errorf("got %d fills after subtract, want 2", len(cp.Fills))
	}

	empty := Subtract(CompoundPolygon{}, square(0, 0, 1, true))
	if !empty.IsEmpty() {
		t.Error("subtracting from an empty polygon gave a non-empty polygon")
	}
}

func TestSimplify(t *testing.T) {
	bowtie := Ring{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	for _, orient := range []Orientation{CounterClockwise, Clockwise, Degenerate} {
		rings := Simplify(bowtie, orient)
		if len(rings) != 2 {
			t.Fatalf("%s: got %d rings, want 2", orient, len(rings))
		}
		want := orient
		if want == Degenerate {
			want = CounterClockwise
		}
		var area float64
		for _, r := range rings {
			if r.Orientation() != want {
				t.Errorf("%s: ring orientation %s", orient, r.Orientation())
			}
			area += r.Area()
		}
		if math.Abs(area-50) > 1e-9 {
			t.Errorf("%s: area %g, want 50", orient, area)
		}
	}
}

func TestBoundsAndRings(t *testing.T) {
	cp := mustCompose(t, square(0, 0, 30, true), square(10, 10, 10, false), square(40, -5, 5, true))
	b := cp.Bounds()
	if b.LLx != 0 || b.LLy != -5 || b.URx != 45 || b.URy != 30 {
		t.Errorf("Bounds() = %v", b)
	}
	if n := len(cp.Rings()); n != 3 {
		t.Errorf("got %d rings, want 3", n)
	}
}
