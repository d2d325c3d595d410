// Copyright © 2024 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package str2num

// TryParse returns the value of in as T and true, or the zero value and
// false for any status other than Success. The whole input must be
// consumed; a WithStopPosition option is ignored.
func TryParse[T Number, S Text](in S, opts ...Option) (T, bool) {
	cfg := newConfig(opts)
	cfg.ReportStop = false
	r := parse[T](classOf(in), cfg)
	return r.Value, r.OK()
}

// TryParsePrefix parses as much of in as possible and returns the value,
// the index of the first unconsumed unit and true on success.
func TryParsePrefix[T Number, S Text](in S, opts ...Option) (T, int, bool) {
	cfg := newConfig(opts)
	cfg.ReportStop = true
	r := parse[T](classOf(in), cfg)
	if !r.OK() {
		return r.Value, 0, false
	}
	return r.Value, r.Stop, true
}
