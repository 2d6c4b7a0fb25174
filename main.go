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

package main

import (
	"os"

	"github.com/multical/multical/doc"
	"github.com/multical/multical/pkg/cli"
	"github.com/multical/multical/pkg/engine"
	"github.com/multical/multical/pkg/log"

	"github.com/multical/multical/cmd/calibrate"
	checkboards "github.com/multical/multical/cmd/check-boards"
	showresult "github.com/multical/multical/cmd/show-result"
)

func main() {
	logger := log.New()

	// Resolved configurations are handed off as YAML on stdout; logs go to
	// stderr.
	printer := engine.NewPrinter(os.Stdout)

	// We aggregate all the top-level commands (i.e. 'multical <command> ...')
	// here.
	var commands cli.Commands
	commands = append(commands, calibrate.NewCmd(logger, func(cfg calibrate.Config) error {
		return printer.Print(calibrate.Schema.Name(), cfg)
	}))
	commands = append(commands, checkboards.NewCmd(logger, func(cfg checkboards.Config) error {
		return printer.Print(checkboards.Schema.Name(), cfg)
	}))
	commands = append(commands, showresult.NewCmd(logger, func(cfg showresult.Config) error {
		return printer.Print(showresult.Schema.Name(), cfg)
	}))

	// Documentation pseudo-commands, reachable through 'multical help <topic>'.
	commands = append(commands, doc.BoardsTopic)
	commands = append(commands, doc.OptimizationTopic)

	abstract := "Multical calibrates multi-camera rigs from images of calibration boards."
	if err := cli.Process(abstract, commands); err != nil {
		os.Exit(1)
	}
}
