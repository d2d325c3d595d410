// Copyright © 2023 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package filters drops elements from slices, mostly slices of parse
// results.
package filters

import "github.com/aerth/str2num"

// FilterInPlace keeps the elements of a for which keep returns true,
// compacting them to the front of a's backing array.
//
// Warning: every slice sharing that backing array sees the change; use the
// return value.
func FilterInPlace[S ~[]T, T any](a S, keep func(T) bool) S {
	good := 0
	for i := range a {
		if !keep(a[i]) {
			continue
		}
		if i != good {
			a[good] = a[i]
		}
		good++
	}
	return a[:good]
}

// FilterCopy returns a new slice with the elements of a for which keep
// returns true. a is not modified. The result is nil when nothing passes.
func FilterCopy[S ~[]T, T any](a S, keep func(T) bool) (out S) {
	for _, v := range a {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// OK keeps successful results.
func OK[T str2num.Number](r str2num.Result[T]) bool {
	return r.OK()
}

// Failed keeps results that did not convert.
func Failed[T str2num.Number](r str2num.Result[T]) bool {
	return !r.OK()
}

// Status returns a keep func matching any of the given statuses.
func Status[T str2num.Number](want ...str2num.Status) func(str2num.Result[T]) bool {
	return func(r str2num.Result[T]) bool {
		for _, s := range want {
			if r.Status == s {
				return true
			}
		}
		return false
	}
}

// Values returns the values of rs, in order.
func Values[T str2num.Number](rs []str2num.Result[T]) []T {
	out := make([]T, len(rs))
	for i, r := range rs {
		out[i] = r.Value
	}
	return out
}
