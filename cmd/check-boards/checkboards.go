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

package checkboards

import (
	"fmt"

	"github.com/multical/multical/pkg/cli"
	"github.com/multical/multical/pkg/log"
	"github.com/multical/multical/pkg/schema"
)

// Schema declares the arguments of 'multical check_boards'.
var Schema = schema.MustNew("check_boards",
	schema.Ungrouped(
		schema.Positional("boards", "configuration file (YAML) for calibration boards"),
		schema.OptionalString("detect", "show detections from an image"),
	),
)

// Config is the typed form of a resolved 'check_boards' command line.
type Config struct {
	Boards string  `mapstructure:"boards" yaml:"boards"`
	Detect *string `mapstructure:"detect" yaml:"detect"`
}

// Engine checks a board configuration.
type Engine func(cfg Config) error

// NewCmd returns the 'check_boards' command, handing configurations to
// engine.
func NewCmd(logger *log.Logger, engine Engine) *cli.Command {
	return &cli.Command{
		Run: func(cmd *cli.Command, resolved *schema.Config) error {
			var cfg Config
			if err := resolved.Decode(&cfg); err != nil {
				return err
			}

			if cfg.Detect != nil {
				logger.Infof("checking boards %s against detections in %s", cfg.Boards, *cfg.Detect)
			} else {
				logger.Infof("checking boards %s", cfg.Boards)
			}
			if err := engine(cfg); err != nil {
				return fmt.Errorf("check_boards: %w", err)
			}
			return nil
		},
		Schema: Schema,
		Short:  "check a board configuration file",
		Long: `
Check_boards loads the board configuration in boards and displays the boards
it describes. With --detect, detections of those boards in the given image
are shown instead, which helps when tuning board parameters.
    `,
	}
}
