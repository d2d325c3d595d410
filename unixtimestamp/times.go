// unixtimestamp package provides a time.Time wrapper that marshals to/from Unix timestamp (integer, seconds)
//
// Decoding goes through str2num, so "1e3", " 12" or a timestamp that does
// not fit int64 is an error instead of a silently wrong time.
package unixtimestamp

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"strconv"
	"time"

	"github.com/aerth/str2num"
	"github.com/aerth/str2num/ncode"
)

var Errorf = fmt.Errorf

// New existing time.Time
func New(t time.Time) *UnixTimestamp {
	return &UnixTimestamp{Time: t}
}

// Now returns a new UnixTimestamp for the current time
func Now() *UnixTimestamp {
	return New(time.Now().UTC()) // nil tz and remove monotonic clock
}

// Parse decimal integer text in FuncTo units (seconds by default). "0" is the zero time.
func Parse(s string) (*UnixTimestamp, error) {
	r := str2num.Parse[int64](s)
	if !r.OK() {
		return nil, Errorf("UnixTimestamp: parsing %q: %w", s, r.Err())
	}
	return fromUnix(r.Value), nil
}

// Endian is the default byte order for UnixTimestamp for MarshalBinary interface
var Endian = binary.LittleEndian

// UnixTimestamp is a time.Time that marshals to/from Unix timestamp (seconds)
// Use pointer (*UnixTimestamp) and `omitempty` in structs for JSON marshaling
// Use New(t) or Now() to create a UnixTimestamp
type UnixTimestamp = UnixTimestampNull

type UnixTimestampNotNull struct {
	UnixTimestamp
}
type UnixTimestampNull struct {
	time.Time
}

func fromUnix(unix int64) *UnixTimestamp {
	if unix == 0 {
		return &UnixTimestamp{}
	}
	return New(FuncTo(unix))
}

func (ut UnixTimestamp) MarshalJSON() ([]byte, error) {
	if ut.Time.After(zerotime) {
		return []byte(strconv.FormatInt(FuncFrom(ut.Time), 10)), nil
	}
	return []byte("0"), nil
}

// UnmarshalJSON accepts a number or a quoted number. null leaves the zero time.
func (ut *UnixTimestamp) UnmarshalJSON(dat []byte) error {
	unix, err := ncode.DecodeJsonNumber[int64](dat)
	if err != nil {
		return Errorf("UnixTimestamp: %w", err)
	}
	ut.Time = fromUnix(unix).Time
	return nil
}

// MarshalBinary uses Endian var, set Endian to binary.BigEndian if needed
func (ut UnixTimestamp) MarshalBinary() ([]byte, error) {
	var buf [8]byte
	if ut.Time.After(zerotime) {
		Endian.PutUint64(buf[:], uint64(FuncFrom(ut.Time)))
	}
	return buf[:], nil
}

// UnmarshalBinary uses Endian var, set Endian to binary.BigEndian if needed
func (ut *UnixTimestamp) UnmarshalBinary(dat []byte) error {
	if len(dat) != 8 {
		return Errorf("UnixTimestamp: binary length %d, want 8", len(dat))
	}
	ut.Time = FuncTo(int64(Endian.Uint64(dat)))
	if !ut.Time.After(zerotime) {
		ut.Time = time.Time{}
	}
	return nil
}

// Scan accepts time.Time, int64, and text holding either an integer
// timestamp or an RFC3339 time.
func (u *UnixTimestamp) Scan(v interface{}) error {
	if v == nil {
		u.Time = time.Time{} // reset in case reused
		return nil
	}
	switch x := v.(type) {
	case time.Time: // this is the most common case
		u.Time = x
	case int64:
		u.Time = fromUnix(x).Time
	case string:
		return u.scanText(x)
	case []byte:
		return u.scanText(string(x))
	default:
		return Errorf("UnixTimestamp: unsupported type : %T", v)
	}
	return u.check()
}

func (u *UnixTimestamp) scanText(s string) error {
	switch r := str2num.Parse[int64](s); r.Status {
	case str2num.Success:
		u.Time = fromUnix(r.Value).Time
	case str2num.Overflow, str2num.Underflow:
		return Errorf("UnixTimestamp: %q: %w", s, r.Err())
	default:
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return err
		}
		u.Time = t
	}
	return u.check()
}

func (u *UnixTimestamp) check() error {
	if NoCheckTimeScan || u.Time.IsZero() {
		return nil
	}
	// parsed, check for "valid" time
	if u.Time.Before(zerotime) {
		return Errorf("UnixTimestamp: time too early: %v", u.Time)
	}
	if u.Time.After(toofarfuture) {
		return Errorf("UnixTimestamp: time too far in future: %v", u.Time)
	}
	return nil
}

func (u *UnixTimestampNotNull) Value() (driver.Value, error) {
	if u == nil {
		return time.Time{}, nil
	}
	return u.Time, nil
}

// Value is returns nil if zero time. Wrap with UnixTimestampNotNull for not null
func (u UnixTimestampNull) Value() (driver.Value, error) {
	if u.Time.IsZero() {
		return nil, nil
	}
	return u.Time, nil
}

var NoCheckTimeScan bool
var zerotime = time.Unix(0, 0)
var nineties, _ = time.Parse("2006-01-02", "1990-01-01")

// thousands of years in the future, to detect if someone uses milliseconds by accident
var toofarfuture = time.Unix(nineties.UnixMilli(), 0)

// for switching between seconds, milliseconds, and microseconds (json/txt marshal)

var FuncTo = TSeconds   // consider TMilli
var FuncFrom = FSeconds // Change FuncTo also. consider FMilli.

func FSeconds(t time.Time) int64 {
	return t.Unix()
}

func FMilli(t time.Time) int64 {
	return t.UnixMilli()
}

func FMicro(t time.Time) int64 {
	return t.UnixMicro()
}

func TSeconds(i int64) time.Time {
	return time.Unix(i, 0)
}

func TMilli(i int64) time.Time {
	return time.UnixMilli(i)
}

func TMicro(i int64) time.Time {
	return time.UnixMicro(i)
}
