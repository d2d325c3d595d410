// Copyright © 2023 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package ncode

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aerth/str2num"
)

// ErrZeroLength 404 not found
var ErrZeroLength = fmt.Errorf("cannot decode zero length")

// DecodeJsonNumber decodes a JSON number into T without going through
// float64, so large integers keep their precision and do not silently wrap.
// Quoted numbers ("123") are accepted too. null decodes as zero.
func DecodeJsonNumber[T str2num.Number](b []byte) (T, error) {
	var v T
	if len(b) == 0 {
		return v, ErrZeroLength
	}
	if bytes.Equal(b, []byte("null")) {
		return v, nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return v, err
		}
		b = []byte(s)
	}
	r := str2num.Parse[T](b)
	if !r.OK() {
		return v, &NumError{Func: "DecodeJsonNumber", Num: string(b), Status: r.Status}
	}
	return r.Value, nil
}

// JsonNumber is a json.Unmarshaler for numeric struct fields, eg:
//
//	var x struct{ N ncode.JsonNumber[uint32] `json:"n"` }
type JsonNumber[T str2num.Number] struct {
	Value T
}

func (n JsonNumber[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Value)
}

func (n *JsonNumber[T]) UnmarshalJSON(b []byte) error {
	v, err := DecodeJsonNumber[T](b)
	if err != nil {
		return err
	}
	n.Value = v
	return nil
}
