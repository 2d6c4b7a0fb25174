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

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/multical/multical/pkg/schema"
)

// Process is the entry point for CLI commands. User provided arguments are
// captured from os.Args and handed to Execute, with output directed at
// os.Stdout and os.Stderr.
//
// Usage and resolution errors have already been printed by the time Execute
// returns them, so Process exits with status 2 on those. Errors returned by a
// command's Run are propagated to the caller.
func Process(abstract string, commands Commands) error {
	program := filepath.Base(os.Args[0])
	err := Execute(program, abstract, commands, os.Args[1:], os.Stdout, os.Stderr)
	if schema.IsResolutionError(err) {
		os.Exit(2)
	}
	return err
}

// Execute selects the command named by args[0], resolves the remaining
// arguments against its schema and runs it. There's no root level command or
// flags.
//
//  - No arguments at all print the full usage to stderr and return a
//    *schema.UsageError; a command is required.
//  - '<program> help', '-h' and '--help' print the full usage to stdout.
//  - '<program> help <command>' prints the command's help.
//  - An unknown command returns a *schema.UsageError listing valid ones.
//  - A resolution error is printed to stderr along with the command's usage
//    and returned.
func Execute(program, abstract string, commands Commands, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printFullUsage(stderr, program, abstract, commands)
		err := &schema.UsageError{Reason: "no command given", Valid: commands.Names()}
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, upcaseInitial(err.Error()))
		return err
	}

	command := args[0]
	if isHelp(command) && len(args) == 1 {
		printFullUsage(stdout, program, abstract, commands)
		return nil
	}

	// '<program> help cmd' works with every command and topic.
	if command == "help" {
		if len(args) > 2 {
			fmt.Fprintf(stderr, "Usage: %s help [command]\n\n", program)
			fmt.Fprintln(stderr, "Too many arguments given.")
			return &schema.UsageError{Reason: "too many arguments given to help"}
		}

		cmd, ok := commands.Lookup(args[1])
		if !ok {
			err := &schema.UsageError{Reason: fmt.Sprintf("unknown help topic %q", args[1])}
			err.Suggestion, _ = schema.Suggest(args[1], append(commands.Names(), commands.Topics()...))
			fmt.Fprintln(stderr, upcaseInitial(err.Error()))
			fmt.Fprintln(stderr)
			fmt.Fprintf(stderr, "Run '%s help' for available topics.\n", program)
			return err
		}
		printCommandUsage(stdout, program, cmd)
		return nil
	}

	cmd, ok := commands.Lookup(command)
	if !ok || !cmd.Runnable() {
		err := &schema.UsageError{Reason: fmt.Sprintf("unknown command %q", command), Valid: commands.Names()}
		err.Suggestion, _ = schema.Suggest(command, err.Valid)
		fmt.Fprintln(stderr, upcaseInitial(err.Error()))
		fmt.Fprintln(stderr)
		fmt.Fprintf(stderr, "Run '%s help' for available commands.\n", program)
		return err
	}

	cfg, err := cmd.Schema.Resolve(args[1:])
	if errors.Is(err, schema.ErrHelp) {
		printCommandHelp(stdout, program, cmd)
		return nil
	}
	if err != nil {
		printCommandParsingError(stderr, program, cmd, err)
		return err
	}
	return cmd.Run(cmd, cfg)
}

func isHelp(arg string) bool {
	switch arg {
	case "help", "-h", "-help", "--help":
		return true
	}
	return false
}
