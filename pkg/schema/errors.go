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

package schema

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

// ErrHelp is returned by Resolve when -h or --help is among the tokens.
var ErrHelp = flag.ErrHelp

// UsageError reports a command line that cannot be matched to a sub-command
// or to its options: no sub-command, an unknown one, an undeclared option or
// surplus positionals.
type UsageError struct {
	Subcommand string // Empty when the error precedes sub-command selection.
	Reason     string
	Valid      []string // Alternatives to offer, if any.
	Suggestion string   // Closest valid alternative, if any.
}

func (e *UsageError) Error() string {
	var b strings.Builder
	if e.Subcommand != "" {
		b.WriteString(e.Subcommand)
		b.WriteString(": ")
	}
	b.WriteString(e.Reason)
	if len(e.Valid) > 0 {
		fmt.Fprintf(&b, " (choose from %s)", strings.Join(e.Valid, ", "))
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "; did you mean %q?", e.Suggestion)
	}
	return b.String()
}

// MissingArgumentError reports a required positional that was not given.
type MissingArgumentError struct {
	Subcommand string
	Argument   string
	Usage      string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%s: the following argument is required: %s (usage: %s)",
		e.Subcommand, e.Argument, e.Usage)
}

// TypeCoercionError reports a value that does not convert to the declared
// type of its argument.
type TypeCoercionError struct {
	Subcommand string
	Argument   string
	Value      string
	Type       Type
	Err        error
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("%s: argument %s: invalid %s value: %q", e.Subcommand, e.Argument, e.Type, e.Value)
}

func (e *TypeCoercionError) Unwrap() error {
	return e.Err
}

// ChoiceViolationError reports a value outside the closed set of an
// enumerated option.
type ChoiceViolationError struct {
	Subcommand string
	Argument   string
	Value      string
	Choices    []string
}

func (e *ChoiceViolationError) Error() string {
	return fmt.Sprintf("%s: argument %s: invalid choice: %q (choose from %s)",
		e.Subcommand, e.Argument, e.Value, strings.Join(e.Choices, ", "))
}

// IsResolutionError reports whether err, or any error it wraps, is one of
// the resolution errors of this package.
func IsResolutionError(err error) bool {
	if err == nil {
		return false
	}
	var (
		usage   *UsageError
		missing *MissingArgumentError
		coerce  *TypeCoercionError
		choice  *ChoiceViolationError
	)
	return errors.As(err, &usage) || errors.As(err, &missing) ||
		errors.As(err, &coerce) || errors.As(err, &choice)
}
