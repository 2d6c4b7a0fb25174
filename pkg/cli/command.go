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

// Portions of this code originated in the Go source code, under cmd/go/internal/base.

package cli

import (
	"github.com/multical/multical/pkg/schema"
)

// A Command is an implementation of a CLI command like '<program> calibrate
// ...'. Its arguments are declared by Schema and resolved before Run is
// called.
//
// A Command without Run and Schema is a documentation pseudo-command named
// Topic, accessible only via '<program> help <topic>'.
type Command struct {
	// Run runs the command with the configuration resolved from the
	// arguments following the command name. Errors are propagated to the
	// caller of Process.
	Run func(cmd *Command, cfg *schema.Config) error

	// Schema declares the positionals and options of the command. Its name
	// is the command name.
	Schema *schema.Schema

	// Topic names a documentation pseudo-command.
	Topic string

	// Short is the short description shown in the '<program> help' output.
	Short string

	// Long is the long description shown in the '<program> help <command>'
	// output.
	Long string
}

type Commands []*Command

// Name returns the command's name.
func (c *Command) Name() string {
	if c.Schema != nil {
		return c.Schema.Name()
	}
	return c.Topic
}

// UsageLine returns the one-line usage message.
func (c *Command) UsageLine() string {
	if c.Schema != nil {
		return c.Schema.UsageLine()
	}
	return c.Topic
}

// Runnable reports whether the command can be run; otherwise it is
// a documentation pseudo-command.
func (c *Command) Runnable() bool {
	return c.Run != nil && c.Schema != nil
}

// Lookup returns the command or topic with the given name.
func (cs Commands) Lookup(name string) (*Command, bool) {
	for _, c := range cs {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Names returns the names of the runnable commands, in registration order.
func (cs Commands) Names() []string {
	var names []string
	for _, c := range cs {
		if c.Runnable() {
			names = append(names, c.Name())
		}
	}
	return names
}

// Topics returns the names of the documentation pseudo-commands.
func (cs Commands) Topics() []string {
	var names []string
	for _, c := range cs {
		if !c.Runnable() {
			names = append(names, c.Name())
		}
	}
	return names
}
