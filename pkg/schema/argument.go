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
	"fmt"
	"strconv"
	"strings"
)

// Kind tells positional parameters apart from named options.
type Kind int

const (
	// KindPositional arguments are bound by position and are always required.
	KindPositional Kind = iota
	// KindFlag options are booleans that take no value on the command line.
	KindFlag
	// KindOption options take a typed value.
	KindOption
)

func (k Kind) String() string {
	switch k {
	case KindPositional:
		return "positional"
	case KindFlag:
		return "flag"
	case KindOption:
		return "option"
	default:
		return "?"
	}
}

// Type is the value type of an argument.
type Type int

const (
	StringType Type = iota
	IntType
	FloatType
	BoolType
	// EnumType is a string restricted to Argument.Choices.
	EnumType
)

func (t Type) String() string {
	switch t {
	case StringType:
		return "string"
	case IntType:
		return "int"
	case FloatType:
		return "float"
	case BoolType:
		return "bool"
	case EnumType:
		return "choice"
	default:
		return "?"
	}
}

// Argument describes one positional parameter or option of a sub-command.
//
// Default holds a value of the Go type matching Type (string, int, float64 or
// bool). A nil Default on an option means the option is unset unless given,
// which consumers use to derive a value of their own.
type Argument struct {
	Name    string
	Kind    Kind
	Type    Type
	Default interface{}
	Choices []string
	Help    string

	// Group is used for help output only.
	Group string
}

// Positional declares a required string positional.
func Positional(name, help string) Argument {
	return Argument{Name: name, Kind: KindPositional, Type: StringType, Help: help}
}

// String declares a string option with a default.
func String(name, def, help string) Argument {
	return Argument{Name: name, Kind: KindOption, Type: StringType, Default: def, Help: help}
}

// OptionalString declares a string option that is unset by default.
func OptionalString(name, help string) Argument {
	return Argument{Name: name, Kind: KindOption, Type: StringType, Help: help}
}

// Int declares an integer option.
func Int(name string, def int, help string) Argument {
	return Argument{Name: name, Kind: KindOption, Type: IntType, Default: def, Help: help}
}

// Float declares a floating point option.
func Float(name string, def float64, help string) Argument {
	return Argument{Name: name, Kind: KindOption, Type: FloatType, Default: def, Help: help}
}

// OptionalFloat declares a floating point option that is unset by default.
func OptionalFloat(name, help string) Argument {
	return Argument{Name: name, Kind: KindOption, Type: FloatType, Help: help}
}

// Bool declares a boolean flag, false unless given.
func Bool(name, help string) Argument {
	return Argument{Name: name, Kind: KindFlag, Type: BoolType, Default: false, Help: help}
}

// Enum declares a string option restricted to choices.
func Enum(name, def string, choices []string, help string) Argument {
	return Argument{
		Name:    name,
		Kind:    KindOption,
		Type:    EnumType,
		Default: def,
		Choices: append([]string(nil), choices...),
		Help:    help,
	}
}

// Required reports whether the argument has to appear in the tokens.
func (a Argument) Required() bool {
	return a.Kind == KindPositional
}

// Flag returns the option as written on the command line, e.g. "--iter". For
// positionals this is the bare name.
func (a Argument) Flag() string {
	if a.Kind == KindPositional {
		return a.Name
	}
	return "--" + a.Name
}

// validate checks the declaration itself, independently of any tokens.
func (a Argument) validate() error {
	if a.Name == "" {
		return errors.New("argument with empty name")
	}
	if strings.HasPrefix(a.Name, "-") {
		return fmt.Errorf("argument %q: names are declared without leading dashes", a.Name)
	}
	if strings.ContainsAny(a.Name, " =\t") {
		return fmt.Errorf("argument %q: name contains whitespace or '='", a.Name)
	}
	if a.Name == "h" || a.Name == "help" {
		return fmt.Errorf("argument %q: name is reserved for help", a.Name)
	}

	switch a.Kind {
	case KindPositional:
		if a.Default != nil {
			return fmt.Errorf("argument %q: positionals are required and take no default", a.Name)
		}
		if a.Type == BoolType {
			return fmt.Errorf("argument %q: positionals cannot be booleans", a.Name)
		}
	case KindFlag:
		if a.Type != BoolType {
			return fmt.Errorf("argument %q: flags must be booleans, got %s", a.Name, a.Type)
		}
	case KindOption:
		if a.Type == BoolType {
			return fmt.Errorf("argument %q: boolean options must be declared as flags", a.Name)
		}
	default:
		return fmt.Errorf("argument %q: unknown kind %d", a.Name, int(a.Kind))
	}

	if a.Type == EnumType {
		if len(a.Choices) == 0 {
			return fmt.Errorf("argument %q: enumerated option without choices", a.Name)
		}
	} else if len(a.Choices) != 0 {
		return fmt.Errorf("argument %q: choices given for a %s option", a.Name, a.Type)
	}

	if a.Default == nil {
		if a.Type == BoolType || a.Type == EnumType {
			return fmt.Errorf("argument %q: %s options need a default", a.Name, a.Type)
		}
		return nil
	}

	var ok bool
	switch a.Type {
	case StringType:
		_, ok = a.Default.(string)
	case IntType:
		_, ok = a.Default.(int)
	case FloatType:
		_, ok = a.Default.(float64)
	case BoolType:
		_, ok = a.Default.(bool)
	case EnumType:
		var def string
		if def, ok = a.Default.(string); ok && !contains(a.Choices, def) {
			return fmt.Errorf("argument %q: default %q is not one of %s",
				a.Name, def, strings.Join(a.Choices, ", "))
		}
	}
	if !ok {
		return fmt.Errorf("argument %q: default %v (%T) is not a %s", a.Name, a.Default, a.Default, a.Type)
	}
	return nil
}

// parse converts a raw token into the argument's value type.
func (a Argument) parse(subcommand, raw string) (interface{}, error) {
	coercionErr := func(err error) error {
		return &TypeCoercionError{
			Subcommand: subcommand,
			Argument:   a.Flag(),
			Value:      raw,
			Type:       a.Type,
			Err:        err,
		}
	}

	switch a.Type {
	case IntType:
		i, err := strconv.Atoi(raw)
		if err != nil {
			return nil, coercionErr(err)
		}
		return i, nil
	case FloatType:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, coercionErr(err)
		}
		return f, nil
	case BoolType:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, coercionErr(err)
		}
		return b, nil
	case EnumType:
		if !contains(a.Choices, raw) {
			return nil, &ChoiceViolationError{
				Subcommand: subcommand,
				Argument:   a.Flag(),
				Value:      raw,
				Choices:    append([]string(nil), a.Choices...),
			}
		}
		return raw, nil
	default:
		return raw, nil
	}
}

func contains(set []string, s string) bool {
	for _, e := range set {
		if e == s {
			return true
		}
	}
	return false
}
