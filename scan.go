// Copyright © 2024 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package str2num

// digitValue returns the value of r as a base 36 digit, or 36 if r is not one.
func digitValue(r rune) int {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0')
	case 'a' <= r && r <= 'z':
		return int(r-'a') + 10
	case 'A' <= r && r <= 'Z':
		return int(r-'A') + 10
	}
	return 36
}

func lower(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// scanDigits returns the end of the run of radix digits starting at i.
func scanDigits(c charclass, i, radix int) int {
	for n := c.len(); i < n && digitValue(c.at(i)) < radix; i++ {
	}
	return i
}

func scanSign(c charclass, i int) (int, bool) {
	if i < c.len() {
		switch c.at(i) {
		case '-':
			return i + 1, true
		case '+':
			return i + 1, false
		}
	}
	return i, false
}

// radixPrefix detects the radix of a base 0 literal at i and the length of
// its 0x, 0o or 0b marker. A lone leading 0 means octal with no marker.
func radixPrefix(c charclass, i int) (radix, skip int) {
	n := c.len()
	if i >= n || c.at(i) != '0' {
		return 10, 0
	}
	if i+1 < n {
		switch lower(c.at(i + 1)) {
		case 'x':
			return 16, 2
		case 'o':
			return 8, 2
		case 'b':
			return 2, 2
		}
	}
	return 8, 0
}

// scanInteger finds the longest integer prefix of c. digits is where the
// number starts after any sign, end is where it stops, and end == 0 means
// nothing could be consumed.
func scanInteger(c charclass, base int) (digits, end int, neg bool) {
	digits, neg = scanSign(c, 0)
	radix, skip := base, 0
	if base == 0 {
		radix, skip = radixPrefix(c, digits)
	}
	if skip > 0 {
		if e := scanDigits(c, digits+skip, radix); e > digits+skip {
			return digits, e, neg
		}
		// "0x" without hex digits is just the zero
		return digits, digits + 1, neg
	}
	end = scanDigits(c, digits, radix)
	if end == digits {
		return digits, 0, neg
	}
	return digits, end, neg
}

// scanWord matches w case-insensitively at i and returns the end, or i.
func scanWord(c charclass, i int, w string) int {
	if c.len()-i < len(w) {
		return i
	}
	for k := 0; k < len(w); k++ {
		if lower(c.at(i+k)) != rune(w[k]) {
			return i
		}
	}
	return i + len(w)
}

// scanExponent consumes an exponent marker, optional sign and at least one
// decimal digit, or nothing.
func scanExponent(c charclass, i int, marker rune) int {
	if i >= c.len() || lower(c.at(i)) != marker {
		return i
	}
	j, _ := scanSign(c, i+1)
	if e := scanDigits(c, j, 10); e > j {
		return e
	}
	return i
}

// scanMantissa consumes digits with an optional single point and returns the
// end and the number of digits seen.
func scanMantissa(c charclass, i, radix int) (end, ndigits int) {
	end = scanDigits(c, i, radix)
	ndigits = end - i
	if end < c.len() && c.at(end) == '.' {
		f := scanDigits(c, end+1, radix)
		ndigits += f - (end + 1)
		end = f
	}
	return end, ndigits
}

// scanFloat returns the end of the longest prefix strconv.ParseFloat accepts,
// or 0 when there is none.
func scanFloat(c charclass) int {
	i, signed := scanSign(c, 0)
	if e := scanWord(c, i, "infinity"); e > i {
		return e
	}
	if e := scanWord(c, i, "inf"); e > i {
		return e
	}
	if !signed {
		if e := scanWord(c, i, "nan"); e > i {
			return e
		}
	}
	// hex floats need a binary exponent
	if e := scanWord(c, i, "0x"); e > i {
		if m, nd := scanMantissa(c, e, 16); nd > 0 {
			if p := scanExponent(c, m, 'p'); p > m {
				return p
			}
		}
	}
	m, nd := scanMantissa(c, i, 10)
	if nd == 0 {
		return 0
	}
	return scanExponent(c, m, 'e')
}
