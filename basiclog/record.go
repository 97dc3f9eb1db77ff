package basiclog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// global state
var (
	// out receives finished log lines. Defaults to standard error.
	out io.Writer = os.Stderr

	// outMutex serializes flushes so lines from concurrent statements never
	// interleave.
	outMutex sync.Mutex
)

// SetOutput redirects finished log lines to w. Intended for tests and for
// embedding the logger in a larger program's output plumbing.
func SetOutput(w io.Writer) {
	outMutex.Lock()
	defer outMutex.Unlock()
	out = w
}

// Record accumulates one log statement. It is created by Log, receives zero
// or more Append calls, and is finished by exactly one Flush. A Record
// belongs to the call stack that created it and must not be shared or
// retained beyond the statement.
type Record struct {
	buf     *strings.Builder
	noSpace bool
}

// Log starts a log statement at the given level, capturing the caller's
// file name and line number. The threshold comparison happens once, here:
// a record below the current threshold is inert and every further operation
// on it is a cheap no-op.
func Log(level Level) *Record {
	if level < CurrentLevel() {
		return &Record{}
	}
	file, line := "???", 0
	if _, f, l, ok := runtime.Caller(1); ok {
		file, line = filepath.Base(f), l
	}
	return LogAt(level, file, line)
}

// LogAt starts a log statement with an explicit call site. Wrappers that
// put an extra stack frame between the caller and Log use this to keep the
// original location.
func LogAt(level Level, file string, line int) *Record {
	if level < CurrentLevel() {
		return &Record{}
	}
	r := &Record{buf: &strings.Builder{}}
	r.buf.WriteByte('[')
	r.buf.WriteString(level.String())
	r.buf.WriteString("][")
	r.buf.WriteString(time.Now().Format("2006-01-02 15:04:05"))
	r.buf.WriteString("][")
	r.buf.WriteString(file)
	r.buf.WriteByte(':')
	r.buf.WriteString(strconv.Itoa(line))
	r.buf.WriteString("]:")
	return r
}

// Active reports whether the record cleared the threshold at creation.
func (r *Record) Active() bool {
	return r.buf != nil
}

// Append renders each value and adds it to the pending line, preceded by a
// single space unless NoSpace armed the one-shot suppression for that
// value. Returns the record so calls chain left to right.
func (r *Record) Append(values ...any) *Record {
	if r.buf == nil {
		return r
	}
	for _, v := range values {
		if r.noSpace {
			r.noSpace = false
		} else {
			r.buf.WriteByte(' ')
		}
		writeValue(r.buf, v)
	}
	return r
}

// NoSpace suppresses the separator before the next appended value only.
// The flag is consumed by that append and reset.
func (r *Record) NoSpace() *Record {
	if r.buf != nil {
		r.noSpace = true
	}
	return r
}

// Flush writes the finished line, newline-terminated, to the output stream.
// It runs at most once; later calls are no-ops, so a deferred Flush is safe
// alongside an explicit one. Inert records flush nothing.
//
// Defer the Flush when the statement body can return early or panic:
//
//	defer basiclog.Log(basiclog.ERROR).Append("rolling back", id).Flush()
func (r *Record) Flush() {
	if r.buf == nil {
		return
	}
	line := r.buf.String()
	r.buf = nil
	outMutex.Lock()
	defer outMutex.Unlock()
	fmt.Fprintln(out, line)
}
