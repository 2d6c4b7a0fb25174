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

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Mode is a bit set of log levels.
type Mode int

const (
	InfoMode Mode = 1 << iota
	WarnMode
	ErrorMode
	FatalMode
	DebugMode

	// The zero-value of DisabledMode can also be used to check if modes
	// intersect, i.e. (lmode&gmode) != DisabledMode checks if the local
	// logger mode is filtered through by the global mode.
	DisabledMode = 0
	DefaultMode  = InfoMode | WarnMode | ErrorMode
)

func (m Mode) byte() byte {
	switch m {
	case InfoMode:
		return 'I'
	case WarnMode:
		return 'W'
	case ErrorMode:
		return 'E'
	case FatalMode:
		return 'F'
	case DebugMode:
		return 'D'
	default:
		return '?'
	}
}

// String lists the levels in m, e.g. "info|warn|error".
func (m Mode) String() string {
	if m == DisabledMode {
		return "disabled"
	}
	var names []string
	for _, l := range []struct {
		m    Mode
		name string
	}{
		{DebugMode, "debug"},
		{InfoMode, "info"},
		{WarnMode, "warn"},
		{ErrorMode, "error"},
		{FatalMode, "fatal"},
	} {
		if m&l.m != DisabledMode {
			names = append(names, l.name)
		}
	}
	return strings.Join(names, "|")
}

// ParseLevel converts a level name into the mode that emits that level and
// everything more severe. Names are case-insensitive: DEBUG, INFO, WARN (or
// WARNING), ERROR, CRITICAL (or FATAL).
func ParseLevel(level string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DebugMode | InfoMode | WarnMode | ErrorMode | FatalMode, nil
	case "INFO":
		return InfoMode | WarnMode | ErrorMode | FatalMode, nil
	case "WARN", "WARNING":
		return WarnMode | ErrorMode | FatalMode, nil
	case "ERROR":
		return ErrorMode | FatalMode, nil
	case "CRITICAL", "FATAL":
		return FatalMode, nil
	default:
		return DisabledMode, fmt.Errorf("unrecognized log level %q (choose from DEBUG, INFO, WARNING, ERROR, CRITICAL)", level)
	}
}

var gmode atomic.Int64

func init() {
	gmode.Store(int64(DefaultMode))
}

// SetGlobalLogMode sets the levels emitted by every Logger.
func SetGlobalLogMode(m Mode) {
	gmode.Store(int64(m))
}

// GetGlobalLogMode returns the levels emitted by every Logger.
func GetGlobalLogMode() Mode {
	return Mode(gmode.Load())
}
