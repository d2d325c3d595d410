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

package stackerr

import (
	"fmt"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

type FuncCallerInfo struct {
	Func string // package.Function
	File string // module-relative when possible
	Line int
}

func (fci FuncCallerInfo) String() string {
	return fmt.Sprintf("%s (%s:%d)", fci.Func, fci.File, fci.Line)
}

// GetFuncCallerInfo describes the caller of the function calling it, plus skips[0] frames.
func GetFuncCallerInfo(skips ...int) FuncCallerInfo {
	skip := 2
	if len(skips) > 0 {
		skip += skips[0]
	}
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return FuncCallerInfo{Func: "unknown", File: "unknown"}
	}
	name := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = filepath.Base(fn.Name())
	}
	return FuncCallerInfo{Func: name, File: CleanModulePath(file), Line: line}
}

var (
	modonce   sync.Once
	modprefix string
)

// CleanModulePath trims the main module path from p, returning p unchanged
// when it is outside the module.
func CleanModulePath(p string) string {
	modonce.Do(func() {
		if info, ok := debug.ReadBuildInfo(); ok {
			modprefix = info.Main.Path
		}
	})
	if modprefix == "" {
		return p
	}
	if i := strings.Index(p, modprefix+"/"); i >= 0 {
		return p[i+len(modprefix)+1:]
	}
	return p
}
