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

package calibrate

import (
	"fmt"

	"github.com/multical/multical/pkg/affinity"
	"github.com/multical/multical/pkg/cli"
	"github.com/multical/multical/pkg/log"
	"github.com/multical/multical/pkg/schema"
)

var (
	distortionModels = []string{"standard", "rational", "thin_prism", "tilted"}
	lossFunctions    = []string{"linear", "soft_l1", "huber", "cauchy", "arctan"}
	motionModels     = []string{"rolling", "static"}
)

// Schema declares the arguments of 'multical calibrate'. The default number
// of jobs is sampled once, here.
var Schema = schema.MustNew("calibrate",
	schema.Ungrouped(
		schema.Positional("image_path", "input image path"),
	),
	schema.Group("paths",
		schema.OptionalString("save", "save calibration as json (default: <output_path>/<name>.json)"),
		schema.String("name", "calibration", "name for this calibration (used to name output files)"),
		schema.OptionalString("output_path", "specify output path (default: image_path)"),
	),
	schema.Group("image paths",
		schema.OptionalString("intrinsic_pattern", `use separate images for intrinsic calibration, example "{camera}/intrinsic"`),
		schema.OptionalString("image_pattern", `pattern to find images for explicitly provided cameras, example "{camera}/extrinsic"`),
		schema.OptionalString("cameras", "explicit comma separated list of cameras (default: find subdirectories with matching images)"),
		schema.Int("intrinsic_images", 50, "limit images for initial intrinsic calibration"),
	),
	schema.Group("camera settings",
		schema.Bool("fix_aspect", "force cameras to have same focal length"),
		schema.Bool("allow_skew", "allow skew in intrinsic matrix"),
		schema.Enum("distortion", "standard", distortionModels, "lens distortion model"),
		schema.OptionalString("master", "use camera as master when exporting (default: first camera)"),
	),
	schema.Group("optimization",
		schema.Int("iter", 3, "iterations of bundle adjustment/outlier rejection"),
		schema.OptionalString("boards", "configuration file (YAML) for calibration boards"),
		schema.Enum("loss", "linear", lossFunctions, "loss function in optimizer"),
		schema.Float("outlier", 5.0, "threshold for outliers (factor of upper quartile of reprojection error)"),
		schema.OptionalFloat("auto_scale", "threshold for auto_scale to reduce outlier influence (factor of upper quartile of reprojection error), requires non-linear loss"),
	),
	schema.Group("enable/disable optimization",
		schema.Bool("fix_intrinsic", "fix intrinsics in optimization"),
		schema.Bool("fix_camera_poses", "fix camera pose optimization"),
		schema.Bool("fix_board_poses", "fix relative board positions (rely on initialization)"),
		schema.Bool("fix_motion", "fix motion optimization (rely on initialization)"),
		schema.Bool("optimize_board", "optimize non-planarity of board points"),
		schema.Enum("motion_model", "static", motionModels, "motion model"),
	),
	schema.Group("misc",
		schema.Int("j", affinity.Count(), "concurrent jobs"),
		schema.String("log_level", "INFO", "logging level for output to terminal"),
		schema.Bool("no_cache", "don't load detections from cache"),
		schema.Bool("show", "show result after calibration"),
	),
)

// Engine runs a calibration with a validated configuration.
type Engine func(cfg Config) error

// NewCmd returns the 'calibrate' command, handing configurations to engine.
func NewCmd(logger *log.Logger, engine Engine) *cli.Command {
	return &cli.Command{
		Run: func(cmd *cli.Command, resolved *schema.Config) error {
			return run(logger, engine, resolved)
		},
		Schema: Schema,
		Short:  "calibrate a camera rig from board images",
		Long: `
Calibrate finds the cameras under image_path (one sub-directory per camera
unless --cameras or --image_pattern say otherwise), detects the calibration
boards in their images and estimates intrinsics and relative poses of every
camera with bundle adjustment.

Results are written to --save, by default <output_path>/<name>.json where
output_path defaults to image_path.
    `,
	}
}

func run(logger *log.Logger, engine Engine, resolved *schema.Config) error {
	var cfg Config
	if err := resolved.Decode(&cfg); err != nil {
		return err
	}

	warnings, err := cfg.Validate()
	if err != nil {
		logger.Error(err)
		return err
	}

	mode, _ := log.ParseLevel(cfg.LogLevel) // Validated above.
	log.SetGlobalLogMode(mode)
	for _, w := range warnings {
		logger.Warn(w)
	}

	logger.Infof("calibrating %s with %d jobs, output %s", cfg.ImagePath, cfg.J, cfg.SavePath())
	logger.Debugf("distortion %s, loss %s, motion model %s, %d iterations",
		cfg.Distortion, cfg.Loss, cfg.MotionModel, cfg.Iter)
	if err := engine(cfg); err != nil {
		logger.Errorf("calibration failed: %v", err)
		return fmt.Errorf("calibrate: %w", err)
	}
	return nil
}
