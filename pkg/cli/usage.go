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

// Portions of this code originated in the Go source code, under cmd/go/internal/help.

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"unicode"

	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"
)

const defaultWidth = 80

var usageTemplate = `{{abstract | wrap}}

Usage:

    {{program}} command [arguments]

The commands are:
{{range .}}{{if .Runnable}}
	{{.Name | printf "%-20s"}}   {{.Short}}{{end}}{{end}}

Use '{{program}} help [command]' for more information about a command.
{{if topics}}
Additional help topics:
{{range .}}{{if not .Runnable}}
	{{.Name | printf "%-20s"}}   {{.Short}}{{end}}{{end}}

Use "{{program}} help [topic]" for more information about that topic.
{{end}}`

var helpTemplate = `{{if .Runnable}}Usage: {{program}} {{.UsageLine}}

{{else}}Topic: {{.Short}}

{{end}}{{.Long | trim | wrap}}
`

var cmdErrorHelpTemplate = `Usage:

  {{program}} {{.UsageLine}}

`

// tmpl executes the given template text on data, writing the result to w.
func tmpl(w io.Writer, templateText, program, abstract string, data interface{}) {
	width := terminalWidth(w)
	t := template.New("")
	t.Funcs(template.FuncMap{
		"trim":     strings.TrimSpace,
		"wrap":     func(s string) string { return wordwrap.WrapString(s, uint(width)) },
		"abstract": func() string { return abstract },
		"program":  func() string { return program },
		"topics": func() bool {
			cmds, _ := data.(Commands)
			return len(cmds.Topics()) > 0
		},
	})
	template.Must(t.Parse(templateText))
	if err := t.Execute(w, data); err != nil {
		panic(err)
	}
}

// terminalWidth returns the width of the terminal w writes to, or
// defaultWidth if w is not a terminal.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultWidth
}

// printFullUsage prints the entire top level usage, including the program
// abstract, all commands and help topics.
func printFullUsage(w io.Writer, program, abstract string, commands Commands) {
	tmpl(w, usageTemplate, program, abstract, commands)
}

// printCommandUsage prints the help output for the given command or topic.
// This is what's visible when '<program> help command' is invoked.
func printCommandUsage(w io.Writer, program string, cmd *Command) {
	tmpl(w, helpTemplate, program, "", cmd)
	if cmd.Runnable() {
		fmt.Fprintln(w)
		cmd.Schema.WriteHelp(w, terminalWidth(w))
	}
}

// printCommandParsingError prints the resolution error along with brief usage
// information and the command's arguments.
func printCommandParsingError(w io.Writer, program string, cmd *Command, err error) {
	fmt.Fprintln(w, upcaseInitial(err.Error()))
	tmpl(w, cmdErrorHelpTemplate, program, "", cmd)
	cmd.Schema.WriteHelp(w, terminalWidth(w))
}

// printCommandHelp prints the usage line and arguments of the given command.
// This is what's visible when '<program> command -h' is invoked.
func printCommandHelp(w io.Writer, program string, cmd *Command) {
	tmpl(w, cmdErrorHelpTemplate, program, "", cmd)
	cmd.Schema.WriteHelp(w, terminalWidth(w))
}

// upcaseInitial upper-cases the first rune of str.
func upcaseInitial(str string) string {
	for i, v := range str {
		return string(unicode.ToUpper(v)) + str[i+len(string(v)):]
	}
	return ""
}
