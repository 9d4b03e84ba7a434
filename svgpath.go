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

// Package svgpath implements a processing engine for SVG path data.
//
// A path is read from the SVG path mini-language with [Parse], can be
// mapped through an affine transformation with [Transform], turned into a
// polygonal approximation with [Flatten], split into contours with
// [Contours], and combined into a compound polygon with [Polygonize].
// Only absolute coordinates are supported.
//
// All functions are pure: paths are never modified in place, and
// independent paths can be processed concurrently without coordination.
package svgpath

//go:generate go run ./testcases/export

import (
	"seehuhn.de/go/geom/vec"
)

// Command is a single drawing command of a path.
//
// The set of commands is closed: MoveTo, LineTo, HLineTo, VLineTo, CubeTo,
// QuadTo, ArcTo and Close.
type Command interface {
	// Letter returns the SVG command letter.
	Letter() byte

	// Args returns the operands in the order they appear in path data.
	Args() []float64

	isCommand()
}

// MoveTo starts a new subpath at P.
type MoveTo struct {
	P vec.Vec2
}

// LineTo draws a straight line to P.
type LineTo struct {
	P vec.Vec2
}

// HLineTo draws a horizontal line to the given x coordinate.
type HLineTo struct {
	X float64
}

// VLineTo draws a vertical line to the given y coordinate.
type VLineTo struct {
	Y float64
}

// CubeTo draws a cubic Bézier curve with control points C1 and C2,
// ending at P.
type CubeTo struct {
	C1, C2, P vec.Vec2
}

// QuadTo draws a quadratic Bézier curve with control point C, ending at P.
type QuadTo struct {
	C, P vec.Vec2
}

// ArcTo draws an elliptical arc ending at P.
//
// Rotation is the angle of the ellipse's x-axis in degrees.  The two flags
// keep the number found in the path data, so that they can be written back
// unchanged; any non-zero value means "set".
type ArcTo struct {
	RX, RY   float64
	Rotation float64
	LargeArc float64
	Sweep    float64
	P        vec.Vec2
}

// Close closes the current subpath.
type Close struct{}

func (MoveTo) Letter() byte  { return 'M' }
func (LineTo) Letter() byte  { return 'L' }
func (HLineTo) Letter() byte { return 'H' }
func (VLineTo) Letter() byte { return 'V' }
func (CubeTo) Letter() byte  { return 'C' }
func (QuadTo) Letter() byte  { return 'Q' }
func (ArcTo) Letter() byte   { return 'A' }
func (Close) Letter() byte   { return 'Z' }

func (c MoveTo) Args() []float64  { return []float64{c.P.X, c.P.Y} }
func (c LineTo) Args() []float64  { return []float64{c.P.X, c.P.Y} }
func (c HLineTo) Args() []float64 { return []float64{c.X} }
func (c VLineTo) Args() []float64 { return []float64{c.Y} }
func (c CubeTo) Args() []float64 {
	return []float64{c.C1.X, c.C1.Y, c.C2.X, c.C2.Y, c.P.X, c.P.Y}
}
func (c QuadTo) Args() []float64 { return []float64{c.C.X, c.C.Y, c.P.X, c.P.Y} }
func (c ArcTo) Args() []float64 {
	return []float64{c.RX, c.RY, c.Rotation, c.LargeArc, c.Sweep, c.P.X, c.P.Y}
}
func (Close) Args() []float64 { return nil }

func (MoveTo) isCommand()  {}
func (LineTo) isCommand()  {}
func (HLineTo) isCommand() {}
func (VLineTo) isCommand() {}
func (CubeTo) isCommand()  {}
func (QuadTo) isCommand()  {}
func (ArcTo) isCommand()   {}
func (Close) isCommand()   {}

// IsLarge reports whether the large-arc flag is set.
func (c ArcTo) IsLarge() bool { return c.LargeArc != 0 }

// IsSweep reports whether the sweep flag is set.
func (c ArcTo) IsSweep() bool { return c.Sweep != 0 }

// arity gives the number of operands for each supported command letter.
var arity = map[byte]int{
	'M': 2,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'Q': 4,
	'A': 7,
	'Z': 0,
}

// Path is a sequence of drawing commands.
//
// Paths are treated as immutable values: all functions in this package
// return new paths instead of modifying their arguments.
type Path []Command

// Clone returns a copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	res := make(Path, len(p))
	copy(res, p)
	return res
}

// IsFlat reports whether the path consists only of MoveTo, LineTo and
// Close commands.
func (p Path) IsFlat() bool {
	for _, cmd := range p {
		switch cmd.(type) {
		case MoveTo, LineTo, Close:
		default:
			return false
		}
	}
	return true
}

// walk calls fn for every command, together with the current point
// before and after the command.  The current point starts at the origin;
// Close returns it to the start of the subpath.
func (p Path) walk(fn func(cmd Command, from, to vec.Vec2)) {
	var current, start vec.Vec2
	for _, cmd := range p {
		next := endPoint(cmd, current, start)
		if _, isMove := cmd.(MoveTo); isMove {
			start = next
		}
		fn(cmd, current, next)
		current = next
	}
}

// endPoint returns the current point after cmd has been executed.
func endPoint(cmd Command, current, start vec.Vec2) vec.Vec2 {
	switch c := cmd.(type) {
	case MoveTo:
		return c.P
	case LineTo:
		return c.P
	case HLineTo:
		return vec.Vec2{X: c.X, Y: current.Y}
	case VLineTo:
		return vec.Vec2{X: current.X, Y: c.Y}
	case CubeTo:
		return c.P
	case QuadTo:
		return c.P
	case ArcTo:
		return c.P
	case Close:
		return start
	default:
		panic("svgpath: unknown command type")
	}
}
