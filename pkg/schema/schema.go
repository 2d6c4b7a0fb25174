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
	"strings"

	"github.com/google/btree"
)

// Section is a run of arguments sharing a presentation group.
type Section struct {
	group string
	args  []Argument
}

// Group places args under the named group in help output. Grouping has no
// effect on resolution.
func Group(name string, args ...Argument) Section {
	return Section{group: name, args: args}
}

// Ungrouped returns args without a group. Positionals are listed under
// "positional arguments" and options under "options".
func Ungrouped(args ...Argument) Section {
	return Group("", args...)
}

// Schema is the immutable set of arguments of one sub-command. Arguments keep
// their declaration order, which is the order positionals are bound in and
// the order help lists them in.
type Schema struct {
	name   string
	args   []Argument
	index  *btree.BTreeG[*Argument] // by name
	groups []string
}

// New builds a Schema. It fails if any argument is malformed or if two
// arguments share a name.
func New(name string, sections ...Section) (*Schema, error) {
	if name == "" {
		return nil, errors.New("schema with empty name")
	}

	s := &Schema{
		name:  name,
		index: btree.NewG(8, func(a, b *Argument) bool { return a.Name < b.Name }),
	}
	seen := make(map[string]bool)
	for _, sec := range sections {
		if sec.group != "" && !seen[sec.group] {
			seen[sec.group] = true
			s.groups = append(s.groups, sec.group)
		}
		for _, a := range sec.args {
			a.Group = sec.group
			a.Choices = append([]string(nil), a.Choices...)
			if err := a.validate(); err != nil {
				return nil, fmt.Errorf("schema %s: %v", name, err)
			}
			s.args = append(s.args, a)
		}
	}

	// Indexed only once s.args is final, the index points into it.
	for i := range s.args {
		if _, dup := s.index.ReplaceOrInsert(&s.args[i]); dup {
			return nil, fmt.Errorf("schema %s: duplicate argument %q", name, s.args[i].Name)
		}
	}
	return s, nil
}

// MustNew is like New but panics on error. It is meant for package level
// schema declarations.
func MustNew(name string, sections ...Section) *Schema {
	s, err := New(name, sections...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the sub-command name.
func (s *Schema) Name() string {
	return s.name
}

// Arguments returns a copy of the declared arguments in declaration order.
func (s *Schema) Arguments() []Argument {
	args := make([]Argument, len(s.args))
	for i, a := range s.args {
		a.Choices = append([]string(nil), a.Choices...)
		args[i] = a
	}
	return args
}

// Lookup returns the argument with the given name.
func (s *Schema) Lookup(name string) (Argument, bool) {
	a, ok := s.index.Get(&Argument{Name: name})
	if !ok {
		return Argument{}, false
	}
	arg := *a
	arg.Choices = append([]string(nil), a.Choices...)
	return arg, true
}

// Positionals returns the positional arguments in binding order.
func (s *Schema) Positionals() []Argument {
	var pos []Argument
	for _, a := range s.args {
		if a.Kind == KindPositional {
			pos = append(pos, a)
		}
	}
	return pos
}

// Options returns the names of all non-positional arguments, sorted.
func (s *Schema) Options() []string {
	var names []string
	s.index.Ascend(func(a *Argument) bool {
		if a.Kind != KindPositional {
			names = append(names, a.Name)
		}
		return true
	})
	return names
}

// Groups returns the named groups in the order they were first declared.
func (s *Schema) Groups() []string {
	return append([]string(nil), s.groups...)
}

// UsageLine returns the one-line usage, e.g. "calibrate [options] image_path".
func (s *Schema) UsageLine() string {
	parts := []string{s.name}
	if len(s.args) > len(s.Positionals()) {
		parts = append(parts, "[options]")
	}
	for _, a := range s.Positionals() {
		parts = append(parts, a.Name)
	}
	return strings.Join(parts, " ")
}
