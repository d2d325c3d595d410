// Copyright © 2024 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package str2num

// Config controls a parse. The zero Config is not the default: use
// DefaultConfig, which sets Base to 10.
type Config struct {
	// Base is the integer radix, 2 through 36, or 0 to detect it from a
	// 0x, 0o, 0b or leading 0 prefix. Ignored for floats.
	Base int
	// ReportStop allows trailing text after the number; Result.Stop tells
	// where it starts. When false, the whole input must be consumed.
	ReportStop bool
}

// Option modifies a Config.
type Option func(*Config)

// DefaultConfig is base 10 with full consumption required.
func DefaultConfig() Config {
	return Config{Base: 10}
}

// WithBase sets the integer radix.
func WithBase(base int) Option {
	return func(c *Config) {
		c.Base = base
	}
}

// WithStopPosition accepts a numeric prefix and reports where it ends.
func WithStopPosition() Option {
	return func(c *Config) {
		c.ReportStop = true
	}
}

func newConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func validBase(base int) bool {
	return base == 0 || (base >= 2 && base <= 36)
}
