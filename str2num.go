// Copyright © 2024 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package str2num parses numeric text into fixed width integers and floats
// without panics or error values. Every call reports a Status (Success,
// Overflow, Underflow or Inconvertible) and the position where parsing
// stopped.
//
// Parsing is stricter than strconv in one way and looser in another: input
// starting with whitespace is never trimmed, and with WithStopPosition a
// numeric prefix is accepted and the index of the first unconsumed unit is
// reported.
//
//	r := str2num.Parse[int32]("2030300 apples", str2num.WithStopPosition())
//	// r.Status == str2num.Success, r.Value == 2030300, r.Stop == 7
//
//	if v, ok := str2num.TryParse[uint16]("65535"); ok {
//		...
//	}
package str2num

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type a string can be parsed into.
type Number interface {
	constraints.Integer | constraints.Float
}

// Status classifies the outcome of a single parse.
type Status uint8

const (
	Success       Status = iota // value and stop position are valid
	Overflow                    // above the largest value of the target type
	Underflow                   // below the smallest value of the target type
	Inconvertible               // empty, leading whitespace, no numeric prefix, or trailing text
)

var (
	ErrOverflow      = errors.New("value out of range: overflow")
	ErrUnderflow     = errors.New("value out of range: underflow")
	ErrInconvertible = errors.New("invalid syntax")
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Overflow:
		return "overflow"
	case Underflow:
		return "underflow"
	case Inconvertible:
		return "inconvertible"
	}
	return "unknown"
}

// Err returns the sentinel error for s, or nil for Success.
func (s Status) Err() error {
	switch s {
	case Success:
		return nil
	case Overflow:
		return ErrOverflow
	case Underflow:
		return ErrUnderflow
	}
	return ErrInconvertible
}

// Result of parsing into T. Value and Stop are only meaningful when Status
// is Success; otherwise Value is the zero value.
//
// Stop is counted in input units: bytes for string and []byte, runes for
// []rune.
type Result[T Number] struct {
	Status Status
	Value  T
	Stop   int
}

// OK reports whether the parse succeeded.
func (r Result[T]) OK() bool {
	return r.Status == Success
}

// Err is shorthand for r.Status.Err().
func (r Result[T]) Err() error {
	return r.Status.Err()
}

func fail[T Number](s Status) Result[T] {
	return Result[T]{Status: s}
}
