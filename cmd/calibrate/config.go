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
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/multical/multical/pkg/log"
)

// Config is the typed form of a resolved 'calibrate' command line. Options
// that are unset by default are nil pointers; the helpers below apply the
// rules engines use to derive their values.
type Config struct {
	ImagePath string `mapstructure:"image_path" yaml:"image_path"`

	Save       *string `mapstructure:"save" yaml:"save"`
	Name       string  `mapstructure:"name" yaml:"name"`
	OutputPath *string `mapstructure:"output_path" yaml:"output_path"`

	IntrinsicPattern *string `mapstructure:"intrinsic_pattern" yaml:"intrinsic_pattern"`
	ImagePattern     *string `mapstructure:"image_pattern" yaml:"image_pattern"`
	Cameras          *string `mapstructure:"cameras" yaml:"cameras"`
	IntrinsicImages  int     `mapstructure:"intrinsic_images" yaml:"intrinsic_images"`

	FixAspect  bool    `mapstructure:"fix_aspect" yaml:"fix_aspect"`
	AllowSkew  bool    `mapstructure:"allow_skew" yaml:"allow_skew"`
	Distortion string  `mapstructure:"distortion" yaml:"distortion"`
	Master     *string `mapstructure:"master" yaml:"master"`

	Iter      int      `mapstructure:"iter" yaml:"iter"`
	Boards    *string  `mapstructure:"boards" yaml:"boards"`
	Loss      string   `mapstructure:"loss" yaml:"loss"`
	Outlier   float64  `mapstructure:"outlier" yaml:"outlier"`
	AutoScale *float64 `mapstructure:"auto_scale" yaml:"auto_scale"`

	FixIntrinsic   bool   `mapstructure:"fix_intrinsic" yaml:"fix_intrinsic"`
	FixCameraPoses bool   `mapstructure:"fix_camera_poses" yaml:"fix_camera_poses"`
	FixBoardPoses  bool   `mapstructure:"fix_board_poses" yaml:"fix_board_poses"`
	FixMotion      bool   `mapstructure:"fix_motion" yaml:"fix_motion"`
	OptimizeBoard  bool   `mapstructure:"optimize_board" yaml:"optimize_board"`
	MotionModel    string `mapstructure:"motion_model" yaml:"motion_model"`

	J        int    `mapstructure:"j" yaml:"j"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	NoCache  bool   `mapstructure:"no_cache" yaml:"no_cache"`
	Show     bool   `mapstructure:"show" yaml:"show"`
}

// Validate checks constraints spanning several options, or ranges the
// schema does not express. Combinations that are legal but pointless are
// returned as warnings.
func (c *Config) Validate() (warnings []string, err error) {
	var errs []error
	if _, perr := log.ParseLevel(c.LogLevel); perr != nil {
		errs = append(errs, fmt.Errorf("argument --log_level: %v", perr))
	}
	if c.J < 1 {
		errs = append(errs, fmt.Errorf("argument --j: expected at least one job, got %d", c.J))
	}
	if c.Iter < 0 {
		errs = append(errs, fmt.Errorf("argument --iter: expected a non-negative count, got %d", c.Iter))
	}
	if c.IntrinsicImages < 1 {
		errs = append(errs, fmt.Errorf("argument --intrinsic_images: expected at least one image, got %d", c.IntrinsicImages))
	}
	if !positiveFinite(c.Outlier) {
		errs = append(errs, fmt.Errorf("argument --outlier: expected a positive threshold, got %g", c.Outlier))
	}
	if c.AutoScale != nil && !positiveFinite(*c.AutoScale) {
		errs = append(errs, fmt.Errorf("argument --auto_scale: expected a positive threshold, got %g", *c.AutoScale))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if c.AutoScale != nil && c.Loss == "linear" {
		warnings = append(warnings, fmt.Sprintf(
			"--auto_scale %g has no effect with linear loss, use one of --loss %s",
			*c.AutoScale, strings.Join(lossFunctions[1:], ", ")))
	}
	if c.FixIntrinsic && c.FixCameraPoses && c.FixBoardPoses && c.FixMotion && !c.OptimizeBoard {
		warnings = append(warnings, "all parameters are fixed, bundle adjustment will only reject outliers")
	}
	return warnings, nil
}

// positiveFinite is false for NaN and infinities, which strconv accepts.
func positiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}

// OutputDir returns --output_path, or image_path when unset.
func (c *Config) OutputDir() string {
	if c.OutputPath != nil {
		return *c.OutputPath
	}
	return c.ImagePath
}

// SavePath returns --save, or <OutputDir>/<name>.json when unset.
func (c *Config) SavePath() string {
	if c.Save != nil {
		return *c.Save
	}
	return filepath.Join(c.OutputDir(), c.Name+".json")
}

// CameraNames returns the cameras given with --cameras. A nil result means
// cameras are discovered as sub-directories of image_path.
func (c *Config) CameraNames() []string {
	if c.Cameras == nil {
		return nil
	}
	var names []string
	for _, name := range strings.Split(*c.Cameras, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// MasterCamera returns the camera used as master when exporting: --master,
// or the first of cameras when unset.
func (c *Config) MasterCamera(cameras []string) (string, bool) {
	if c.Master != nil {
		return *c.Master, true
	}
	if len(cameras) == 0 {
		return "", false
	}
	return cameras[0], true
}
