// Copyright (c) 2024 aerth
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package stackerr annotates errors with the function and line that created them.
package stackerr

import (
	"errors"
	"fmt"
)

// Wrap err with the caller of Wrap (nil error returns nil).
// skips moves further up the stack, eg. Wrap(err, 1) from a helper names the helper's caller.
func Wrap(err error, skips ...int) error {
	if err == nil {
		return nil
	}
	return &StackError{error: err, St: GetFuncCallerInfo(skips...)}
}

// Errorf is fmt.Errorf plus caller info. Use %w to keep the chain.
func Errorf(format string, args ...interface{}) error {
	return &StackError{error: fmt.Errorf(format, args...), St: GetFuncCallerInfo()}
}

type StackError struct {
	error
	St FuncCallerInfo
}

var _ error = (*StackError)(nil)

// Format prints the message for %v and %s. %+v adds the origin of every
// StackError in the chain, innermost last.
func (s *StackError) Format(f fmt.State, c rune) {
	switch c {
	case 'v':
		if f.Flag('+') {
			fmt.Fprint(f, s.Error())
			for e := error(s); e != nil; e = errors.Unwrap(e) {
				if se, ok := e.(*StackError); ok {
					fmt.Fprintf(f, "\n\tfrom %s", se.St)
				}
			}
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(f, s.Error())
	case 'q':
		fmt.Fprintf(f, "%q", s.Error())
	}
}

func (s *StackError) Unwrap() error {
	return s.error
}

func (s *StackError) Stack() FuncCallerInfo {
	return s.St
}
