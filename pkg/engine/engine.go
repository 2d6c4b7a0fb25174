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

// Package engine is where resolved configurations leave multical. The
// calibration, board detection and visualization engines consume them;
// Printer stands in for those engines by writing each configuration out as
// a YAML document, which keeps the commands usable as a front end for
// external tooling.
package engine

import (
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

// Printer writes configurations to w as YAML documents keyed by sub-command:
//
//      check_boards:
//        boards: boards.yaml
//        detect: null
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes cfg, which should carry yaml struct tags, as a single YAML
// document.
func (p *Printer) Print(subcommand string, cfg interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]interface{}{subcommand: cfg}); err != nil {
		return fmt.Errorf("encoding %s configuration: %w", subcommand, err)
	}
	return enc.Close()
}
