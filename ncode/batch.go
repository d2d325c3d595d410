// Copyright © 2023 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package ncode

import (
	"github.com/aerth/str2num"
	"github.com/aerth/str2num/filters"
	"go.uber.org/multierr"
)

// ParseAll parses every element of in. Unlike TwistParse it does not stop
// at the first failure: failed elements are left as zero and every failure
// is returned, combined with multierr (use multierr.Errors to split them).
func ParseAll[T str2num.Number](in []string, opts ...str2num.Option) ([]T, error) {
	var err error
	out := TwistAny(in, func(s string) T {
		r := str2num.Parse[T](s, opts...)
		if !r.OK() {
			multierr.AppendInto(&err, &NumError{Func: "ParseAll", Num: s, Status: r.Status})
		}
		return r.Value
	})
	return out, err
}

// ParseValid parses in and keeps only the elements that convert, in order.
// With str2num.WithStopPosition an element with a numeric prefix counts.
func ParseValid[T str2num.Number](in []string, opts ...str2num.Option) []T {
	rs := parseEach[T](in, opts)
	return filters.Values(filters.FilterInPlace(rs, filters.OK[T]))
}

// Failures returns the elements of in that do not parse as T.
func Failures[T str2num.Number](in []string, opts ...str2num.Option) []string {
	rs := parseEach[T](in, opts)
	i := 0
	return filters.FilterCopy(in, func(string) bool {
		failed := !rs[i].OK()
		i++
		return failed
	})
}

func parseEach[T str2num.Number](in []string, opts []str2num.Option) []str2num.Result[T] {
	return TwistAny(in, func(s string) str2num.Result[T] {
		return str2num.Parse[T](s, opts...)
	})
}
