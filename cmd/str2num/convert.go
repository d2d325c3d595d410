package main

import (
	"fmt"
	"sort"

	"github.com/aerth/str2num"
)

// row is one line of output.
type row struct {
	Input  string
	Status str2num.Status
	Value  string // empty unless Status is Success
	Stop   int
}

func (r row) String() string {
	return fmt.Sprintf("%q\t%s\t%s\t%d", r.Input, r.Status, r.Value, r.Stop)
}

type converter func(in string, wide bool, opts []str2num.Option) row

var converters = map[string]converter{
	"int":     convert[int],
	"int8":    convert[int8],
	"int16":   convert[int16],
	"int32":   convert[int32],
	"int64":   convert[int64],
	"uint":    convert[uint],
	"uint8":   convert[uint8],
	"uint16":  convert[uint16],
	"uint32":  convert[uint32],
	"uint64":  convert[uint64],
	"float32": convert[float32],
	"float64": convert[float64],
}

func typeNames() []string {
	names := make([]string, 0, len(converters))
	for name := range converters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func convert[T str2num.Number](in string, wide bool, opts []str2num.Option) row {
	var r str2num.Result[T]
	if wide {
		r = str2num.Parse[T]([]rune(in), opts...)
	} else {
		r = str2num.Parse[T](in, opts...)
	}
	out := row{Input: in, Status: r.Status}
	if r.OK() {
		out.Value = fmt.Sprint(r.Value)
		out.Stop = r.Stop
	}
	return out
}
