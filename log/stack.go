// log/stack.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// StackFrame is one entry in a captured call stack.
type StackFrame struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function"`
}

func (f StackFrame) String() string {
	return f.File + ":" + strconv.Itoa(f.Line) + ":" + f.Function
}

// StackFrames is a captured call stack, innermost frame first.
type StackFrames []StackFrame

// Strings renders the stack as one string per frame, suitable for log
// attributes.
func (fr StackFrames) Strings() []string {
	s := make([]string, len(fr))
	for i, f := range fr {
		s[i] = f.String()
	}
	return s
}

// String renders the stack as one frame per line.
func (fr StackFrames) String() string {
	return strings.Join(fr.Strings(), "\n")
}

// Callstack captures the call stack above its caller, reusing fr's backing
// array when it has enough capacity.
func Callstack(fr []StackFrame) StackFrames {
	var callers [16]uintptr
	n := runtime.Callers(3, callers[:]) // skip up to the function doing the logging
	frames := runtime.CallersFrames(callers[:n])

	if cap(fr) < n {
		fr = make([]StackFrame, n)
	} else {
		fr = fr[:n]
	}

	for i := 0; i < n; i++ {
		frame, more := frames.Next()
		fn := strings.TrimPrefix(frame.Function, "github.com/pabloteleco22/flagsearch-go/")
		fn = strings.TrimPrefix(fn, "main.")

		fr[i] = StackFrame{
			File:     filepath.Base(frame.File),
			Line:     frame.Line,
			Function: fn,
		}

		if !more || frame.Function == "main.main" {
			fr = fr[:i+1]
			break
		}
	}
	return fr
}
