// Copyright © 2024 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package str2num

import (
	"reflect"
	"unicode"
)

// Text is a narrow (string, []byte) or wide ([]rune) character sequence.
type Text interface {
	~string | ~[]byte | ~[]rune
}

// charclass is what the scanners need from an encoding.
type charclass interface {
	len() int
	at(i int) rune
	space(i int) bool
	text(i, j int) string
}

// narrow text is indexed by byte. Whitespace is the C locale set.
type narrow string

func (s narrow) len() int             { return len(s) }
func (s narrow) at(i int) rune        { return rune(s[i]) }
func (s narrow) text(i, j int) string { return string(s[i:j]) }

func (s narrow) space(i int) bool {
	switch s[i] {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// wide text is indexed by rune. Whitespace is anything unicode.IsSpace accepts.
type wide []rune

func (s wide) len() int             { return len(s) }
func (s wide) at(i int) rune        { return s[i] }
func (s wide) text(i, j int) string { return string(s[i:j]) }
func (s wide) space(i int) bool     { return unicode.IsSpace(s[i]) }

var runesType = reflect.TypeOf([]rune(nil))

func classOf[S Text](in S) charclass {
	switch v := any(in).(type) {
	case string:
		return narrow(v)
	case []byte:
		return narrow(v)
	case []rune:
		return wide(v)
	}
	// named types
	rv := reflect.ValueOf(in)
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Int32 {
		return wide(rv.Convert(runesType).Interface().([]rune))
	}
	return narrow(string(in))
}
