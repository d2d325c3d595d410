// flagpkg package provides some additional flag functions. (InverseBoolVar, BaseVar, ChoiceVar)
package flagpkg

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/aerth/str2num"
)

// InverseBoolVar defines a flag that inverts a bool value.
//
// For example, "--no-foo" would set foo to false.
//
// Using --no-foo=false would set to true.
//
// Omitting flag does not change the value at all.
//
// If multiple flag.BoolVar and InverseBoolVar are used, the last one (on cmdline) wins.
func InverseBoolVar(p *bool, name string, value bool, usage string) {
	InverseBoolVarSet(flag.CommandLine, p, name, value, usage)
}

func InverseBoolVarSet(fs *flag.FlagSet, p *bool, name string, value bool, usage string) {
	*p = value
	fs.Var((*inverseboolValue)(p), name, usage)
}

// -- inversebool  Value
// mostly from https://go.dev/src/flag/flag.go
// except: we invert the value below, in Set
type inverseboolValue bool

func (b *inverseboolValue) Set(s string) error {
	v, ok := str2bool(s)
	if !ok {
		return fmt.Errorf("invalid bool value: %q", s)
	}
	*b = inverseboolValue(!v) // invert value
	return nil
}

func str2bool(s string) (bool, bool) {
	v, err := strconv.ParseBool(s)
	return v, err == nil
}

func (b *inverseboolValue) Get() any { return bool(*b) }

func (b *inverseboolValue) String() string {
	if b == nil {
		return "false"
	}
	return strconv.FormatBool(bool(*b))
}

func (b *inverseboolValue) IsBoolFlag() bool { return true }

// BaseVar defines an integer radix flag: 0 (detect prefix) or 2 through 36.
func BaseVar(fs *flag.FlagSet, p *int, name string, value int, usage string) {
	*p = value
	fs.Var((*baseValue)(p), name, usage)
}

type baseValue int

func (b *baseValue) Set(s string) error {
	v, ok := str2num.TryParse[int](s)
	if !ok || (v != 0 && (v < 2 || v > 36)) {
		return fmt.Errorf("invalid base %q: want 0 or 2..36", s)
	}
	*b = baseValue(v)
	return nil
}

func (b *baseValue) Get() any { return int(*b) }

func (b *baseValue) String() string {
	if b == nil {
		return "0"
	}
	return strconv.Itoa(int(*b))
}

// ChoiceVar defines a string flag restricted to choices.
func ChoiceVar(fs *flag.FlagSet, p *string, name string, value string, usage string, choices ...string) {
	*p = value
	fs.Var(&choiceValue{p: p, choices: choices}, name, usage+" ("+strings.Join(choices, ", ")+")")
}

type choiceValue struct {
	p       *string
	choices []string
}

func (c *choiceValue) Set(s string) error {
	for _, choice := range c.choices {
		if s == choice {
			*c.p = s
			return nil
		}
	}
	return fmt.Errorf("invalid value %q: want one of %s", s, strings.Join(c.choices, ", "))
}

func (c *choiceValue) Get() any { return *c.p }

func (c *choiceValue) String() string {
	if c == nil || c.p == nil {
		return ""
	}
	return *c.p
}
