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
	"io"
	"strings"
)

// resolution is the mutable state of a single Resolve call.
type resolution struct {
	values   map[string]interface{}
	explicit map[string]bool
	err      error // First typed error raised by a value.Set.
}

// value adapts an Argument to flag.Value, converting tokens as they are set.
type value struct {
	subcommand string
	arg        *Argument
	r          *resolution
}

func (v *value) String() string {
	if v == nil || v.r == nil {
		return ""
	}
	if val := v.r.values[v.arg.Name]; val != nil {
		return fmt.Sprint(val)
	}
	return ""
}

func (v *value) Set(raw string) error {
	parsed, err := v.arg.parse(v.subcommand, raw)
	if err != nil {
		if v.r.err == nil {
			v.r.err = err
		}
		return err
	}
	v.r.values[v.arg.Name] = parsed
	v.r.explicit[v.arg.Name] = true
	return nil
}

func (v *value) Get() interface{} {
	return v.r.values[v.arg.Name]
}

// IsBoolFlag lets the flag package accept "--show" without a value.
func (v *value) IsBoolFlag() bool {
	return v.arg.Type == BoolType
}

// Resolve binds tokens (the arguments following the sub-command name) to the
// schema. Options may come before, between or after positionals, and may be
// written "--name value", "--name=value" or with a single dash. A bare "--"
// ends option parsing.
//
// On success every declared argument has an entry in Config.Values. Resolve
// does not touch the file system.
func (s *Schema) Resolve(tokens []string) (*Config, error) {
	r := &resolution{
		values:   make(map[string]interface{}, len(s.args)),
		explicit: make(map[string]bool),
	}

	fs := flag.NewFlagSet(s.name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	for i := range s.args {
		a := &s.args[i]
		r.values[a.Name] = a.Default
		if a.Kind != KindPositional {
			fs.Var(&value{subcommand: s.name, arg: a, r: r}, a.Name, a.Help)
		}
	}

	// The flag package stops at the first positional, so we resume parsing
	// after each one.
	var positionals []string
	rest := tokens
	for len(rest) > 0 {
		if err := fs.Parse(rest); err != nil {
			if r.err != nil {
				return nil, r.err
			}
			if errors.Is(err, flag.ErrHelp) {
				return nil, ErrHelp
			}
			return nil, s.flagError(err)
		}

		remaining := fs.Args()
		consumed := len(rest) - len(remaining)
		if s.endsOptions(rest[:consumed]) {
			positionals = append(positionals, remaining...)
			break
		}
		if len(remaining) == 0 {
			break
		}
		positionals = append(positionals, remaining[0])
		rest = remaining[1:]
	}

	declared := s.Positionals()
	for i, a := range declared {
		if i >= len(positionals) {
			return nil, &MissingArgumentError{
				Subcommand: s.name,
				Argument:   a.Name,
				Usage:      s.UsageLine(),
			}
		}
		parsed, err := a.parse(s.name, positionals[i])
		if err != nil {
			return nil, err
		}
		r.values[a.Name] = parsed
		r.explicit[a.Name] = true
	}
	if len(positionals) > len(declared) {
		return nil, &UsageError{
			Subcommand: s.name,
			Reason:     "unrecognized arguments: " + strings.Join(positionals[len(declared):], " "),
		}
	}

	return &Config{Subcommand: s.name, Values: r.values, explicit: r.explicit}, nil
}

// endsOptions reports whether the tokens consumed by one flag parse ended
// with the "--" terminator, rather than with "--" as the value of an option.
func (s *Schema) endsOptions(consumed []string) bool {
	for i := 0; i < len(consumed); i++ {
		tok := consumed[i]
		if tok == "--" {
			return true
		}
		if s.takesValue(tok) {
			i++
		}
	}
	return false
}

// takesValue reports whether tok names an option whose value is the next
// token, as in "--iter 5".
func (s *Schema) takesValue(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' {
		return false
	}
	name := strings.TrimPrefix(tok[1:], "-")
	if strings.Contains(name, "=") {
		return false
	}
	a, ok := s.index.Get(&Argument{Name: name})
	return ok && a.Kind == KindOption
}

const (
	undefinedFlagPrefix = "flag provided but not defined: -"
	missingValuePrefix  = "flag needs an argument: -"
)

// flagError turns a flag package error into a UsageError, suggesting the
// closest declared option for misspelt ones.
func (s *Schema) flagError(err error) error {
	msg := err.Error()
	if strings.HasPrefix(msg, missingValuePrefix) {
		name := strings.TrimPrefix(msg, missingValuePrefix)
		return &UsageError{Subcommand: s.name, Reason: "argument --" + name + ": expected one argument"}
	}
	if !strings.HasPrefix(msg, undefinedFlagPrefix) {
		return &UsageError{Subcommand: s.name, Reason: msg}
	}

	name := strings.TrimPrefix(msg, undefinedFlagPrefix)
	uerr := &UsageError{
		Subcommand: s.name,
		Reason:     "unrecognized arguments: --" + name,
	}
	if suggestion, ok := Suggest(name, s.Options()); ok {
		uerr.Suggestion = "--" + suggestion
	}
	return uerr
}
