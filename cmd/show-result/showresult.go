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

package showresult

import (
	"fmt"

	"github.com/multical/multical/pkg/cli"
	"github.com/multical/multical/pkg/log"
	"github.com/multical/multical/pkg/schema"
)

// Schema declares the arguments of 'multical show_result'.
var Schema = schema.MustNew("show_result",
	schema.Ungrouped(
		schema.Positional("workspace_file", "workspace saved by a previous calibration"),
	),
)

// Config is the typed form of a resolved 'show_result' command line.
type Config struct {
	WorkspaceFile string `mapstructure:"workspace_file" yaml:"workspace_file"`
}

// Engine displays a saved calibration.
type Engine func(cfg Config) error

// NewCmd returns the 'show_result' command.
func NewCmd(logger *log.Logger, engine Engine) *cli.Command {
	return &cli.Command{
		Run: func(cmd *cli.Command, resolved *schema.Config) error {
			var cfg Config
			if err := resolved.Decode(&cfg); err != nil {
				return err
			}
			logger.Infof("showing %s", cfg.WorkspaceFile)
			if err := engine(cfg); err != nil {
				return fmt.Errorf("show_result: %w", err)
			}
			return nil
		},
		Schema: Schema,
		Short:  "show a saved calibration",
		Long: `
Show_result opens the workspace written by a previous 'calibrate' run and
displays its cameras, boards and reprojection errors.
    `,
	}
}
