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

package log

import "io"

// Flag selects the fields of the log header.
type Flag int

const (
	Lmode         Flag = 1 << iota // Log level, as a single letter: I, W, E, F or D.
	Ldate                          // Date in the local time zone: yymmdd.
	Ltime                          // Time in the local time zone: hh:mm:ss.
	Lmicroseconds                  // Microsecond resolution: hh:mm:ss.micros. Assumes Ltime.
	Llongfile                      // Full file name and line number: /a/b/c/d.go:23.
	Lshortfile                     // Final file name element and line number: d.go:23. Overrides Llongfile.
	LUTC                           // If Ldate or Ltime is set, use UTC rather than the local time zone.

	LstdFlags = Lmode | Ldate | Ltime | Lmicroseconds | Lshortfile
)

// Option configures a Logger built by New.
type Option func(l *Logger)

// Writer sets where logs are written to.
func Writer(w io.Writer) Option {
	return func(l *Logger) {
		l.w = w
	}
}

// Flags sets the header fields.
func Flags(f Flag) Option {
	return func(l *Logger) {
		l.flag = f
	}
}

// BasePath is trimmed from file names printed with Llongfile.
func BasePath(path string) Option {
	return func(l *Logger) {
		l.basePath = path
	}
}
