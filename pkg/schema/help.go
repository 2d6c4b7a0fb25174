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
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

const (
	helpIndent   = 2
	helpColumn   = 26 // Where descriptions start.
	minHelpWidth = helpColumn + 20
)

// WriteHelp writes the arguments of the schema to w, one section per group,
// wrapping descriptions to width columns.
//
//      positional arguments:
//        image_path              input image path
//
//      paths:
//        --name string           name for this calibration (default "calibration")
func (s *Schema) WriteHelp(w io.Writer, width int) {
	if width < minHelpWidth {
		width = minHelpWidth
	}

	var positional, ungrouped []Argument
	grouped := make(map[string][]Argument)
	for _, a := range s.args {
		switch {
		case a.Kind == KindPositional:
			positional = append(positional, a)
		case a.Group == "":
			ungrouped = append(ungrouped, a)
		default:
			grouped[a.Group] = append(grouped[a.Group], a)
		}
	}

	first := true
	section := func(title string, args []Argument) {
		if len(args) == 0 {
			return
		}
		if !first {
			fmt.Fprintln(w)
		}
		first = false
		fmt.Fprintf(w, "%s:\n", title)
		for _, a := range args {
			writeArgument(w, a, width)
		}
	}

	section("positional arguments", positional)
	section("options", ungrouped)
	for _, g := range s.groups {
		section(g, grouped[g])
	}
}

func writeArgument(w io.Writer, a Argument, width int) {
	label := strings.Repeat(" ", helpIndent) + a.Flag()
	if mv := metavar(a); mv != "" {
		label += " " + mv
	}

	desc := a.Help
	if def := defaultText(a); def != "" {
		desc = strings.TrimSpace(desc + " " + def)
	}
	lines := strings.Split(wordwrap.WrapString(desc, uint(width-helpColumn)), "\n")

	pad := strings.Repeat(" ", helpColumn)
	if len(label) >= helpColumn-1 {
		fmt.Fprintln(w, label)
	} else {
		fmt.Fprint(w, label+strings.Repeat(" ", helpColumn-len(label)))
		fmt.Fprintln(w, lines[0])
		lines = lines[1:]
	}
	for _, l := range lines {
		fmt.Fprintln(w, pad+l)
	}
}

func metavar(a Argument) string {
	switch a.Kind {
	case KindPositional, KindFlag:
		return ""
	}
	if a.Type == EnumType {
		return "{" + strings.Join(a.Choices, ",") + "}"
	}
	return a.Type.String()
}

func defaultText(a Argument) string {
	switch v := a.Default.(type) {
	case nil, bool:
		return ""
	case string:
		return fmt.Sprintf("(default %q)", v)
	default:
		return fmt.Sprintf("(default %v)", v)
	}
}
