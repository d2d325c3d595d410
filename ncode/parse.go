// Copyright © 2023 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package ncode

import (
	"strconv"

	"github.com/aerth/str2num"
	"github.com/aerth/str2num/stackerr"
)

// NumError records a failed conversion. It unwraps to the str2num sentinel
// for its status, so errors.Is(err, str2num.ErrOverflow) works.
type NumError struct {
	Func   string         // ParseNumber, ParseBase, ...
	Num    string         // the input
	Status str2num.Status // never Success
}

func (e *NumError) Error() string {
	return "ncode." + e.Func + ": parsing " + strconv.Quote(e.Num) + ": " + e.Status.String()
}

func (e *NumError) Unwrap() error {
	return e.Status.Err()
}

// ParseNumber string->number, whole string, base 10
func ParseNumber[T str2num.Number](in string) (T, error) {
	return parseBase[T]("ParseNumber", in, 10)
}

// ParseBase string->number in base (0 detects a 0x/0o/0b prefix, floats ignore it)
func ParseBase[T str2num.Number](in string, base int) (T, error) {
	return parseBase[T]("ParseBase", in, base)
}

func parseBase[T str2num.Number](fn, in string, base int) (T, error) {
	r := str2num.Parse[T](in, str2num.WithBase(base))
	if !r.OK() {
		// skip parseBase and the exported wrapper
		return r.Value, stackerr.Wrap(&NumError{Func: fn, Num: in, Status: r.Status}, 2)
	}
	return r.Value, nil
}
