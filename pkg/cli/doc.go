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

// Package cli allows the construction of structured command-line interfaces
// with sub-commands and help topics. This is very similar to the interface in
// git where the top-level program name (git) is followed by a qualifier that
// determines what sub-command to execute (git {reflog,commit,cherry-pick}).
//
// Each sub-command declares its arguments with a schema.Schema; the
// dispatcher resolves the remaining arguments against it before running the
// command, so commands only ever see a complete, validated configuration.
//
// Example (from multical):
//
//      var commands cli.Commands
//      commands = append(commands, calibrate.NewCmd(logger, engine.Calibrate))
//      commands = append(commands, checkboards.NewCmd(logger, engine.CheckBoards))
//      commands = append(commands, showresult.NewCmd(logger, engine.ShowResult))
//
//      // Documentation pseudo-commands.
//      commands = append(commands, doc.BoardsTopic)
//
//      abstract := "Multical calibrates multi-camera rigs from images of calibration boards."
//      if err := cli.Process(abstract, commands); err != nil {
//          os.Exit(1)
//      }
//
// This generates the following top-level behaviour:
//
//      $ multical help
//      Multical calibrates multi-camera rigs from images of calibration boards.
//
//      Usage:
//
//          multical command [arguments]
//
//      The commands are:
//
//              calibrate              calibrate a camera rig from board images
//              check_boards           check a board configuration file
//              show_result            show a saved calibration workspace
//
//      Use 'multical help [command]' for more information about a command.
//
//      Additional help topics:
//
//              boards                 board configuration files
//
//      Use "multical help [topic]" for more information about that topic.
//
// Individual commands list their arguments, grouped as declared, with
// 'multical help <command>' or 'multical <command> -h':
//
//      $ multical check_boards -h
//      Usage:
//
//        multical check_boards [options] boards
//
//      positional arguments:
//        boards                  configuration file (YAML) for calibration boards
//
//      options:
//        --detect string         show detections from an image
package cli
