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
	"errors"
	"fmt"
)

// Sentinel errors, for use with [errors.Is].
var (
	ErrMalformedPath        = errors.New("malformed path data")
	ErrNumberFormat         = errors.New("invalid number")
	ErrDegenerateGeometry   = errors.New("degenerate geometry")
	ErrUnsupportedTransform = errors.New("unsupported path data")
	ErrInvalidOptions       = errors.New("invalid options")
)

// MalformedPathError is returned when path data does not follow the
// command grammar.
type MalformedPathError struct {
	Pos int // byte offset for Parse, command index otherwise
	Msg string
}

func (err *MalformedPathError) Error() string {
	return fmt.Sprintf("malformed path data at offset %d: %s", err.Pos, err.Msg)
}

// Is allows the error to be matched against [ErrMalformedPath].
func (err *MalformedPathError) Is(target error) bool {
	return target == ErrMalformedPath
}

// NumberFormatError is returned when a numeric operand cannot be read.
type NumberFormatError struct {
	Pos   int
	Token string
}

func (err *NumberFormatError) Error() string {
	return fmt.Sprintf("invalid number %q at offset %d", err.Token, err.Pos)
}

// Is allows the error to be matched against [ErrNumberFormat].
func (err *NumberFormatError) Is(target error) bool {
	return target == ErrNumberFormat
}

// DegenerateGeometryError is returned when an operation would have to
// divide by zero, for example when a singular matrix is applied to a path.
type DegenerateGeometryError struct {
	Msg string
	Err error // underlying cause, may be nil
}

func (err *DegenerateGeometryError) Error() string {
	return "degenerate geometry: " + err.Msg
}

// Is allows the error to be matched against [ErrDegenerateGeometry].
func (err *DegenerateGeometryError) Is(target error) bool {
	return target == ErrDegenerateGeometry
}

func (err *DegenerateGeometryError) Unwrap() error {
	return err.Err
}

// UnsupportedTransformError is returned for relative path commands.
type UnsupportedTransformError struct {
	Pos     int
	Command byte
}

func (err *UnsupportedTransformError) Error() string {
	return fmt.Sprintf("relative command %q at offset %d is not supported",
		err.Command, err.Pos)
}

// Is allows the error to be matched against [ErrUnsupportedTransform].
func (err *UnsupportedTransformError) Is(target error) bool {
	return target == ErrUnsupportedTransform
}
