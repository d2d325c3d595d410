// Copyright © 2024 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package str2num

import (
	"errors"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Parse is the generic entry point: it parses in as T under the given
// options. Integers honour WithBase. Without WithStopPosition any trailing
// text makes the result Inconvertible.
func Parse[T Number, S Text](in S, opts ...Option) Result[T] {
	return parse[T](classOf(in), newConfig(opts))
}

// ParseInteger parses the longest integer prefix of in. A prefix that does
// not fit T is Overflow or Underflow, never truncated. With full set,
// trailing text is Inconvertible.
func ParseInteger[T constraints.Integer, S Text](in S, base int, full bool) Result[T] {
	return parseInteger[T](classOf(in), base, full)
}

// ParseFloating parses the longest floating point prefix of in. Trailing text
// is allowed; Stop reports where it begins.
func ParseFloating[T constraints.Float, S Text](in S) Result[T] {
	return parseFloating[T](classOf(in))
}

func ParseInt32(s string, opts ...Option) Result[int32]   { return Parse[int32](s, opts...) }
func ParseUint32(s string, opts ...Option) Result[uint32] { return Parse[uint32](s, opts...) }
func ParseInt(s string, opts ...Option) Result[int]       { return Parse[int](s, opts...) }
func ParseUint(s string, opts ...Option) Result[uint]     { return Parse[uint](s, opts...) }
func ParseInt64(s string, opts ...Option) Result[int64]   { return Parse[int64](s, opts...) }
func ParseUint64(s string, opts ...Option) Result[uint64] { return Parse[uint64](s, opts...) }

func ParseFloat32(s string, opts ...Option) Result[float32] { return Parse[float32](s, opts...) }
func ParseFloat64(s string, opts ...Option) Result[float64] { return Parse[float64](s, opts...) }

func parse[T Number](c charclass, cfg Config) Result[T] {
	full := !cfg.ReportStop
	if !isFloat[T]() {
		return parseInteger[T](c, cfg.Base, full)
	}
	r := parseFloating[T](c)
	if r.OK() && full && r.Stop != c.len() {
		return fail[T](Inconvertible)
	}
	return r
}

func parseInteger[T Number](c charclass, base int, full bool) Result[T] {
	if c.len() == 0 || c.space(0) || !validBase(base) {
		return fail[T](Inconvertible)
	}
	digits, end, neg := scanInteger(c, base)
	if end == 0 {
		return fail[T](Inconvertible)
	}
	var (
		v      T
		status Status
	)
	if isSigned[T]() {
		v, status = fromInt64[T](c.text(0, end), base)
	} else {
		v, status = fromUint64[T](c.text(digits, end), base, neg)
	}
	if status != Success {
		return fail[T](status)
	}
	if full && end != c.len() {
		return fail[T](Inconvertible)
	}
	return Result[T]{Status: Success, Value: v, Stop: end}
}

// fromInt64 converts through the int64 intermediate. strconv saturates at the
// int64 limits, so a narrower T needs its own bound check: any value that
// does not survive the round trip through T is out of range.
func fromInt64[T Number](text string, base int) (T, Status) {
	i, err := strconv.ParseInt(text, base, 64)
	saturated := errors.Is(err, strconv.ErrRange)
	if err != nil && !saturated {
		return 0, Inconvertible
	}
	v := T(i)
	if saturated || int64(v) != i {
		if i > 0 {
			return 0, Overflow
		}
		return 0, Underflow
	}
	return v, Success
}

// fromUint64 converts the unsigned magnitude in text. Any negative non-zero
// magnitude is Underflow, including one too large for uint64.
func fromUint64[T Number](text string, base int, neg bool) (T, Status) {
	u, err := strconv.ParseUint(text, base, 64)
	saturated := errors.Is(err, strconv.ErrRange)
	if err != nil && !saturated {
		return 0, Inconvertible
	}
	if neg && (saturated || u != 0) {
		return 0, Underflow
	}
	v := T(u)
	if saturated || uint64(v) != u {
		return 0, Overflow
	}
	return v, Success
}

func parseFloating[T Number](c charclass) Result[T] {
	if c.len() == 0 || c.space(0) {
		return fail[T](Inconvertible)
	}
	end := scanFloat(c)
	if end == 0 {
		return fail[T](Inconvertible)
	}
	f, err := strconv.ParseFloat(c.text(0, end), floatBits[T]())
	switch {
	case errors.Is(err, strconv.ErrRange):
		if math.IsInf(f, 1) {
			return fail[T](Overflow)
		}
		return fail[T](Underflow)
	case err != nil:
		return fail[T](Inconvertible)
	}
	return Result[T]{Status: Success, Value: T(f), Stop: end}
}

func isFloat[T Number]() bool {
	one := T(1)
	return one/2 != 0
}

func isSigned[T Number]() bool {
	var zero T
	return zero-1 < zero
}

// floatBits reports 32 when T cannot hold twice the largest float32.
func floatBits[T Number]() int {
	big := float64(math.MaxFloat32)
	x := T(big)
	x *= 2
	if math.IsInf(float64(x), 1) {
		return 32
	}
	return 64
}
