package str2num

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInteger(t *testing.T) {
	t.Run("partial input reports stop", func(t *testing.T) {
		r := Parse[int32]("2030300 This is test", WithStopPosition())
		require.Equal(t, Success, r.Status)
		assert.EqualValues(t, 2030300, r.Value)
		assert.Equal(t, 7, r.Stop)
		assert.Equal(t, " This is test", "2030300 This is test"[r.Stop:])
	})
	t.Run("partial input without stop is inconvertible", func(t *testing.T) {
		r := Parse[int32]("2030300 This is test")
		assert.Equal(t, Inconvertible, r.Status)
		assert.Zero(t, r.Value)
	})
	t.Run("narrow target overflow", func(t *testing.T) {
		assert.Equal(t, Overflow, ParseInt32("9999999999").Status)
		r := ParseInt64("9999999999")
		require.True(t, r.OK())
		assert.EqualValues(t, 9999999999, r.Value)
	})
	t.Run("narrow target underflow", func(t *testing.T) {
		assert.Equal(t, Underflow, ParseInt32("-9999999999").Status)
		assert.True(t, ParseInt64("-9999999999").OK())
	})
	t.Run("range checks come before trailing text", func(t *testing.T) {
		assert.Equal(t, Overflow, ParseInt32("9999999999abc").Status)
		assert.Equal(t, Underflow, ParseInt32("-9999999999 ").Status)
	})

	tests := []struct {
		name   string
		in     string
		status Status
		value  int64
	}{
		{"empty", "", Inconvertible, 0},
		{"leading space", " 123", Inconvertible, 0},
		{"leading tab", "\t123", Inconvertible, 0},
		{"leading newline", "\n1", Inconvertible, 0},
		{"letters", "asdasd", Inconvertible, 0},
		{"sign only", "-", Inconvertible, 0},
		{"plus only", "+", Inconvertible, 0},
		{"plus", "+42", Success, 42},
		{"zero", "0", Success, 0},
		{"negative zero", "-0", Success, 0},
		{"max", "9223372036854775807", Success, math.MaxInt64},
		{"min", "-9223372036854775808", Success, math.MinInt64},
		{"above max", "9223372036854775808", Overflow, 0},
		{"below min", "-9223372036854775809", Underflow, 0},
		{"far above max", "99999999999999999999999999", Overflow, 0},
		{"underscore", "1_000", Inconvertible, 0},
		{"decimal point", "1.5", Inconvertible, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ParseInt64(tt.in)
			assert.Equal(t, tt.status, r.Status)
			assert.Equal(t, tt.value, r.Value)
		})
	}
}

func TestParseIntegerWidths(t *testing.T) {
	assert.Equal(t, Overflow, Parse[int8]("128").Status)
	assert.Equal(t, Underflow, Parse[int8]("-129").Status)
	assert.EqualValues(t, -128, Parse[int8]("-128").Value)
	assert.Equal(t, Overflow, Parse[int16]("32768").Status)
	assert.EqualValues(t, math.MaxInt32, ParseInt32("2147483647").Value)
	assert.Equal(t, Overflow, ParseInt32("2147483648").Status)
	assert.EqualValues(t, math.MinInt32, ParseInt32("-2147483648").Value)
	assert.Equal(t, Underflow, ParseInt32("-2147483649").Status)
	assert.Equal(t, Overflow, Parse[uint8]("256").Status)
}

func TestParseUnsigned(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		status Status
		value  uint32
	}{
		{"max", "4294967295", Success, math.MaxUint32},
		{"above max", "4294967296", Overflow, 0},
		{"negative", "-1", Underflow, 0},
		{"negative zero", "-0", Success, 0},
		{"plus", "+7", Success, 7},
		{"negative huge", "-99999999999999999999999", Underflow, 0},
		{"huge", "99999999999999999999999", Overflow, 0},
		{"leading space", " 1", Inconvertible, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ParseUint32(tt.in)
			assert.Equal(t, tt.status, r.Status)
			assert.Equal(t, tt.value, r.Value)
		})
	}

	r := ParseUint64("18446744073709551615")
	require.True(t, r.OK())
	assert.Equal(t, uint64(math.MaxUint64), r.Value)
	assert.Equal(t, Overflow, ParseUint64("18446744073709551616").Status)
	assert.Equal(t, Underflow, ParseUint64("-18446744073709551616").Status)
	assert.Equal(t, Underflow, ParseUint("-5").Status)
}

func TestParseBase(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		base   int
		status Status
		value  int64
		stop   int
	}{
		{"hex lower", "ff", 16, Success, 255, 2},
		{"hex upper", "FF", 16, Success, 255, 2},
		{"binary", "101", 2, Success, 5, 3},
		{"binary stops at 2", "1012", 2, Success, 5, 3},
		{"base 36", "z", 36, Success, 35, 1},
		{"negative hex", "-1a", 16, Success, -26, 3},
		{"hex prefix needs base 0", "0x1f", 16, Success, 0, 1},
		{"detect hex", "0x1f", 0, Success, 31, 4},
		{"detect hex upper", "0X1F", 0, Success, 31, 4},
		{"detect negative hex", "-0x10", 0, Success, -16, 5},
		{"detect binary", "0b101", 0, Success, 5, 5},
		{"detect octal marker", "0o17", 0, Success, 15, 4},
		{"detect octal", "017", 0, Success, 15, 3},
		{"octal stops at 9", "09", 0, Success, 0, 1},
		{"marker without digits", "0x", 0, Success, 0, 1},
		{"marker with bad digit", "0xg", 0, Success, 0, 1},
		{"detect decimal", "42", 0, Success, 42, 2},
		{"base 1", "1", 1, Inconvertible, 0, 0},
		{"base 37", "1", 37, Inconvertible, 0, 0},
		{"negative base", "1", -2, Inconvertible, 0, 0},
		{"no digits for base", "9", 8, Inconvertible, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Parse[int64](tt.in, WithBase(tt.base), WithStopPosition())
			require.Equal(t, tt.status, r.Status)
			assert.Equal(t, tt.value, r.Value)
			assert.Equal(t, tt.stop, r.Stop)
		})
	}

	t.Run("unsigned detect hex", func(t *testing.T) {
		r := ParseInteger[uint16]("0xffff", 0, true)
		require.True(t, r.OK())
		assert.EqualValues(t, 0xffff, r.Value)
		assert.Equal(t, Overflow, ParseInteger[uint16]("0x10000", 0, true).Status)
	})
	t.Run("full consumption with prefix mismatch", func(t *testing.T) {
		assert.Equal(t, Inconvertible, ParseInteger[int]("0x1f", 16, true).Status)
	})
}

func TestParseFloating(t *testing.T) {
	inconvertible := []string{"", " ", "asdasd", ".", "-", "e5", " 1.5", "\t1"}
	for _, in := range inconvertible {
		assert.Equal(t, Inconvertible, ParseFloating[float64](in).Status, "%q", in)
		assert.Equal(t, Inconvertible, ParseFloating[float32](in).Status, "%q", in)
	}
	for _, in := range []string{"1e550", "1e600"} {
		assert.Equal(t, Overflow, ParseFloating[float64](in).Status, in)
		assert.Equal(t, Overflow, ParseFloating[float32](in).Status, in)
	}
	for _, in := range []string{"-1e550", "-1e600"} {
		assert.Equal(t, Underflow, ParseFloating[float64](in).Status, in)
		assert.Equal(t, Underflow, ParseFloating[float32](in).Status, in)
	}
	for _, in := range []string{"120.1423", ".010101", "-0.5", "5.", "1e10", "6.02214076e23"} {
		want64, err := strconv.ParseFloat(in, 64)
		require.NoError(t, err)
		r64 := ParseFloating[float64](in)
		require.True(t, r64.OK(), in)
		assert.Equal(t, want64, r64.Value)
		assert.Equal(t, len(in), r64.Stop)

		want32, err := strconv.ParseFloat(in, 32)
		require.NoError(t, err)
		r32 := ParseFloating[float32](in)
		require.True(t, r32.OK(), in)
		assert.Equal(t, float32(want32), r32.Value)
	}

	t.Run("float32 range is narrower", func(t *testing.T) {
		assert.Equal(t, Overflow, ParseFloating[float32]("1e39").Status)
		assert.True(t, ParseFloating[float64]("1e39").OK())
	})

	t.Run("width follows the underlying type", func(t *testing.T) {
		type celsius float32
		type meters float64
		assert.Equal(t, 32, floatBits[float32]())
		assert.Equal(t, 32, floatBits[celsius]())
		assert.Equal(t, 64, floatBits[float64]())
		assert.Equal(t, 64, floatBits[meters]())
		assert.Equal(t, Overflow, ParseFloating[celsius]("1e39").Status)
		assert.True(t, ParseFloating[meters]("1e39").OK())
	})
	t.Run("trailing text", func(t *testing.T) {
		r := ParseFloating[float64]("1230.213 as")
		require.True(t, r.OK())
		assert.Equal(t, 1230.213, r.Value)
		assert.Equal(t, 8, r.Stop)
		assert.Equal(t, Inconvertible, ParseFloat64("1230.213 as").Status)
		assert.True(t, ParseFloat64("1230.213 as", WithStopPosition()).OK())
	})
	t.Run("exponent needs digits", func(t *testing.T) {
		assert.Equal(t, 1, ParseFloating[float64]("1e").Stop)
		assert.Equal(t, 1, ParseFloating[float64]("1e+").Stop)
		assert.Equal(t, 3, ParseFloating[float64]("1e5x").Stop)
		assert.Equal(t, 4, ParseFloating[float64]("1E-5").Stop)
	})
	t.Run("special values", func(t *testing.T) {
		assert.True(t, math.IsInf(ParseFloat64("inf").Value, 1))
		assert.True(t, math.IsInf(ParseFloat64("-Infinity").Value, -1))
		assert.True(t, math.IsInf(float64(ParseFloat32("+INF").Value), 1))
		assert.True(t, math.IsNaN(ParseFloat64("NaN").Value))
		r := ParseFloating[float64]("infinite")
		require.True(t, r.OK())
		assert.Equal(t, 3, r.Stop)
		assert.Equal(t, Inconvertible, ParseFloat64("-nan").Status)
	})
	t.Run("hex floats", func(t *testing.T) {
		assert.Equal(t, 0.25, ParseFloat64("0x1p-2").Value)
		assert.Equal(t, 3.0, ParseFloat64("0x1.8p1").Value)
		r := ParseFloating[float64]("0x1A")
		require.True(t, r.OK())
		assert.Equal(t, 0.0, r.Value)
		assert.Equal(t, 1, r.Stop)
	})
	t.Run("tiny magnitudes round to zero", func(t *testing.T) {
		r := ParseFloat64("1e-400")
		require.True(t, r.OK())
		assert.Equal(t, 0.0, r.Value)
	})
	t.Run("base is ignored", func(t *testing.T) {
		assert.Equal(t, 1.5, ParseFloat64("1.5", WithBase(16)).Value)
	})
}

func TestRoundTrip(t *testing.T) {
	signed := []int64{0, 1, -1, 42, -42, math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64}
	for _, v := range signed {
		r := ParseInt64(strconv.FormatInt(v, 10))
		require.True(t, r.OK(), v)
		assert.Equal(t, v, r.Value)
		if v >= math.MinInt32 && v <= math.MaxInt32 {
			assert.Equal(t, int32(v), ParseInt32(strconv.FormatInt(v, 10)).Value)
		}
	}
	unsigned := []uint64{0, 1, math.MaxUint32, math.MaxUint64}
	for _, v := range unsigned {
		r := ParseUint64(strconv.FormatUint(v, 10))
		require.True(t, r.OK(), v)
		assert.Equal(t, v, r.Value)
	}
	for base := 2; base <= 36; base++ {
		s := strconv.FormatInt(-123456789, base)
		r := Parse[int64](s, WithBase(base))
		require.True(t, r.OK(), "base %d: %s", base, s)
		assert.EqualValues(t, -123456789, r.Value)
	}
}

func TestDeterminism(t *testing.T) {
	for _, in := range []string{"", "12x", "-9999999999", "0x1f", "1e550", "3.25kg"} {
		assert.Equal(t, Parse[int32](in, WithStopPosition()), Parse[int32](in, WithStopPosition()))
		assert.Equal(t, ParseFloating[float64](in), ParseFloating[float64](in))
	}
}

type runes []rune
type str string

func TestWideText(t *testing.T) {
	t.Run("same result as narrow", func(t *testing.T) {
		for _, in := range []string{"2030300 This is test", "-9999999999", "", "0x1f", "42"} {
			assert.Equal(t,
				Parse[int32](in, WithStopPosition(), WithBase(0)),
				Parse[int32]([]rune(in), WithStopPosition(), WithBase(0)), in)
		}
		assert.Equal(t, ParseFloating[float64]("1.5e3 m"), ParseFloating[float64]([]rune("1.5e3 m")))
	})
	t.Run("unicode whitespace", func(t *testing.T) {
		assert.Equal(t, Inconvertible, Parse[int]([]rune("　123")).Status)
		assert.Equal(t, Inconvertible, Parse[int]([]rune(" 123")).Status)
		assert.Equal(t, Inconvertible, ParseFloating[float64]([]rune("  1.5")).Status)
	})
	t.Run("stop counts runes", func(t *testing.T) {
		v, stop, ok := TryParsePrefix[int]([]rune("12€€"))
		require.True(t, ok)
		assert.Equal(t, 12, v)
		assert.Equal(t, 2, stop)
	})
	t.Run("byte slices and named types", func(t *testing.T) {
		assert.Equal(t, 77, Parse[int]([]byte("77")).Value)
		assert.Equal(t, 77, Parse[int](str("77")).Value)
		assert.Equal(t, 77, Parse[int](runes("77")).Value)
		assert.Equal(t, Inconvertible, Parse[int](runes("　")).Status)
	})
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "overflow", Overflow.String())
	assert.Equal(t, "underflow", Underflow.String())
	assert.Equal(t, "inconvertible", Inconvertible.String())
	assert.Equal(t, "unknown", Status(9).String())
	assert.NoError(t, Success.Err())
	assert.ErrorIs(t, ParseInt32("9999999999").Err(), ErrOverflow)
	assert.ErrorIs(t, ParseInt32("-9999999999").Err(), ErrUnderflow)
	assert.ErrorIs(t, ParseInt32("x").Err(), ErrInconvertible)
}
