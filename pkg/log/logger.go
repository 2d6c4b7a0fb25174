// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in licenses/BSD-golang.txt.

// Portions of this file are additionally subject to the following
// license and copyright.
//
// Copyright 2026 The Multical Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Portions of this code originated in the standard library 'log' package.

package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Logger writes leveled logs to an io.Writer, with a header format
// determined by its flags.
type Logger struct {
	w        io.Writer
	flag     Flag
	basePath string // Trimmed from file names with Llongfile, optional.
}

const newline = "\n"

// New returns a new Logger writing to a synchronized os.Stderr with
// LstdFlags, unless options say otherwise:
//
//      Myymmdd hh:mm:ss.micros file:line] message
//      I260419 06:33:04.606396 calibrate.go:42] message
func New(options ...Option) *Logger {
	l := &Logger{
		w:    DefaultWriter(),
		flag: LstdFlags,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// Discarder returns a Logger configured to discard all writes.
func Discarder() *Logger {
	return New(Writer(io.Discard))
}

// Info logs to the INFO log. Arguments are handled in the manner of
// fmt.Println.
func (l *Logger) Info(v ...interface{}) {
	l.log(InfoMode, fmt.Sprintln(v...))
}

// Infof logs to the INFO log. Arguments are handled in the manner of
// fmt.Printf; a newline is appended at the end.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.log(InfoMode, fmt.Sprintf(format+newline, v...))
}

// Warn logs to the WARN log.
func (l *Logger) Warn(v ...interface{}) {
	l.log(WarnMode, fmt.Sprintln(v...))
}

// Warnf logs to the WARN log.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.log(WarnMode, fmt.Sprintf(format+newline, v...))
}

// Error logs to the ERROR log.
func (l *Logger) Error(v ...interface{}) {
	l.log(ErrorMode, fmt.Sprintln(v...))
}

// Errorf logs to the ERROR log.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.log(ErrorMode, fmt.Sprintf(format+newline, v...))
}

// Fatal logs to the FATAL log, then calls os.Exit(255). Fatal logs are never
// filtered out.
func (l *Logger) Fatal(v ...interface{}) {
	l.log(FatalMode, fmt.Sprintln(v...))
	os.Exit(255)
}

// Fatalf logs to the FATAL log, then calls os.Exit(255).
func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.log(FatalMode, fmt.Sprintf(format+newline, v...))
	os.Exit(255)
}

// Debug logs to the DEBUG log.
func (l *Logger) Debug(v ...interface{}) {
	l.log(DebugMode, fmt.Sprintln(v...))
}

// Debugf logs to the DEBUG log.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.log(DebugMode, fmt.Sprintf(format+newline, v...))
}

// Enabled reports whether logs at lmode are currently emitted.
func Enabled(lmode Mode) bool {
	return GetGlobalLogMode()&lmode != DisabledMode || lmode&FatalMode != DisabledMode
}

// log is only to be called from the exported wrappers above; the depth of
// two skips log and the wrapper to reach their caller.
func (l *Logger) log(lmode Mode, data string) {
	if !Enabled(lmode) {
		return
	}

	file, line := caller(2)
	var buf bytes.Buffer
	buf.Write(l.header(lmode, time.Now(), file, line))
	buf.WriteString(data)
	l.w.Write(buf.Bytes())
}

// header formats the log header for the given mode, time and call site as
// per l.flag.
func (l *Logger) header(lmode Mode, t time.Time, file string, line int) []byte {
	var b []byte
	if l.flag&Lmode != 0 {
		b = append(b, lmode.byte())
	}
	if l.flag&LUTC != 0 {
		t = t.UTC()
	}

	datef := l.flag&Ldate != 0
	timef := l.flag&(Ltime|Lmicroseconds) != 0
	if datef {
		b = t.AppendFormat(b, "060102")
	}
	if datef && timef {
		b = append(b, ' ')
	}
	if timef {
		layout := "15:04:05"
		if l.flag&Lmicroseconds != 0 {
			layout += ".000000"
		}
		b = t.AppendFormat(b, layout)
	}
	b = append(b, ' ')

	if l.flag&(Lshortfile|Llongfile) != 0 {
		if l.flag&Lshortfile != 0 {
			file = filepath.Base(file)
		} else if l.basePath != "" {
			file = strings.TrimPrefix(strings.TrimPrefix(file, l.basePath), "/")
		}
		b = append(b, file...)
		b = append(b, ':')
		b = strconv.AppendInt(b, int64(line), 10)
		b = append(b, "] "...)
	}
	return b
}

// caller returns the file and line number depth frames above its own
// caller.
func caller(depth int) (file string, line int) {
	// +1 to account for the call to caller itself.
	_, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		file = "[???]"
		line = -1
	}
	return file, line
}
