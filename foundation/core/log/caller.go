// File: caller.go
// Title: Caller Location
// Description: Formats the calling goroutine, package, function and line for
//              local log records.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

type frame struct {
	pkg      string
	function string
	file     string
	line     int
}

// callerFrame(0) describes the caller of the function that calls
// callerFrame; each extra skip moves one frame further out.
func callerFrame(skip int) (frame, bool) {
	pc, file, line, ok := runtime.Caller(skip + 2)
	if !ok {
		return frame{}, false
	}
	f := frame{file: filepath.Base(file), line: line, function: "unknown"}
	if fn := runtime.FuncForPC(pc); fn != nil {
		f.pkg, f.function = splitFuncName(fn.Name())
	}
	return f, true
}

// splitFuncName splits "github.com/a/b.(*T).M" into "github.com/a/b" and
// "(*T).M".
func splitFuncName(name string) (pkg, function string) {
	slash := strings.LastIndex(name, "/")
	dot := strings.Index(name[slash+1:], ".")
	if dot < 0 {
		return "", name
	}
	dot += slash + 1
	return name[:dot], name[dot+1:]
}

func goroutineID() string {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// "goroutine 18 [running]:"
	fields := strings.Fields(string(buf[:n]))
	if len(fields) < 2 {
		return "g?"
	}
	return "g" + fields[1]
}

// tracePrefix returns "g18@pkg::function(42): ". With skip 0 it describes
// the caller of the function that calls tracePrefix.
func tracePrefix(skip int) string {
	f, ok := callerFrame(skip + 1)
	if !ok {
		return ""
	}
	return goroutineID() + "@" + f.pkg + "::" + f.function + "(" + strconv.Itoa(f.line) + "): "
}

// CallerLocation describes the caller of the function that invokes it as
// "[fn]function [file]file(line)". It returns "" when the stack is too
// shallow.
func CallerLocation() string {
	f, ok := callerFrame(1)
	if !ok {
		return ""
	}
	return "[fn]" + f.pkg + "." + f.function + " [file]" + f.file + "(" + strconv.Itoa(f.line) + ")"
}
