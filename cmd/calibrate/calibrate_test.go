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
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multical/multical/pkg/affinity"
	"github.com/multical/multical/pkg/log"
	"github.com/multical/multical/pkg/schema"
)

func strp(s string) *string      { return &s }
func floatp(f float64) *float64 { return &f }

func defaultConfig(imagePath string) Config {
	return Config{
		ImagePath:       imagePath,
		Name:            "calibration",
		IntrinsicImages: 50,
		Distortion:      "standard",
		Iter:            3,
		Loss:            "linear",
		Outlier:         5.0,
		MotionModel:     "static",
		J:               affinity.Count(),
		LogLevel:        "INFO",
	}
}

func resolve(t *testing.T, tokens ...string) Config {
	t.Helper()
	resolved, err := Schema.Resolve(tokens)
	require.NoError(t, err)
	var cfg Config
	require.NoError(t, resolved.Decode(&cfg))
	return cfg
}

func TestDefaults(t *testing.T) {
	if diff := cmp.Diff(defaultConfig("mydir"), resolve(t, "mydir")); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestResolveOverrides(t *testing.T) {
	want := defaultConfig("mydir")
	want.Name = "rig1"
	want.Iter = 5
	if diff := cmp.Diff(want, resolve(t, "mydir", "--name", "rig1", "--iter", "5")); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}

	want = defaultConfig("imgs")
	want.Save = strp("out/rig.json")
	want.OutputPath = strp("out")
	want.IntrinsicPattern = strp("{camera}/intrinsic")
	want.ImagePattern = strp("{camera}/extrinsic")
	want.Cameras = strp("cam1,cam2")
	want.IntrinsicImages = 20
	want.FixAspect = true
	want.AllowSkew = true
	want.Distortion = "rational"
	want.Master = strp("cam2")
	want.Iter = 0
	want.Boards = strp("boards.yaml")
	want.Loss = "huber"
	want.Outlier = 3.5
	want.AutoScale = floatp(2)
	want.FixIntrinsic = true
	want.FixCameraPoses = true
	want.FixBoardPoses = true
	want.FixMotion = true
	want.OptimizeBoard = true
	want.MotionModel = "rolling"
	want.J = 2
	want.LogLevel = "DEBUG"
	want.NoCache = true
	want.Show = true

	got := resolve(t,
		"--save", "out/rig.json", "--output_path", "out",
		"--intrinsic_pattern", "{camera}/intrinsic", "--image_pattern", "{camera}/extrinsic",
		"--cameras", "cam1,cam2", "--intrinsic_images", "20",
		"--fix_aspect", "--allow_skew", "--distortion", "rational", "--master", "cam2",
		"imgs",
		"--iter", "0", "--boards", "boards.yaml", "--loss", "huber", "--outlier", "3.5", "--auto_scale", "2",
		"--fix_intrinsic", "--fix_camera_poses", "--fix_board_poses", "--fix_motion", "--optimize_board",
		"--motion_model", "rolling",
		"--j", "2", "--log_level", "DEBUG", "--no_cache", "--show",
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestSchemaMatchesConfig(t *testing.T) {
	resolved, err := Schema.Resolve([]string{"mydir"})
	require.NoError(t, err)
	assert.Len(t, resolved.Values, 27)
	for _, a := range Schema.Arguments() {
		_, ok := resolved.Get(a.Name)
		assert.True(t, ok, a.Name)
	}
	assert.Equal(t, []string{
		"paths", "image paths", "camera settings", "optimization", "enable/disable optimization", "misc",
	}, Schema.Groups())
}

func TestResolveErrors(t *testing.T) {
	var choice *schema.ChoiceViolationError
	for _, tokens := range [][]string{
		{"mydir", "--distortion", "foo"},
		{"mydir", "--loss", "l1"},
		{"mydir", "--motion_model", "dynamic"},
	} {
		_, err := Schema.Resolve(tokens)
		assert.True(t, errors.As(err, &choice), "%v: got %v", tokens, err)
	}

	_, err := Schema.Resolve([]string{"mydir", "--distortion", "foo"})
	require.True(t, errors.As(err, &choice))
	assert.Equal(t, []string{"standard", "rational", "thin_prism", "tilted"}, choice.Choices)

	var coerce *schema.TypeCoercionError
	_, err = Schema.Resolve([]string{"mydir", "--iter", "abc"})
	assert.True(t, errors.As(err, &coerce), "got %v", err)
	_, err = Schema.Resolve([]string{"mydir", "--outlier", "five"})
	assert.True(t, errors.As(err, &coerce), "got %v", err)

	var missing *schema.MissingArgumentError
	_, err = Schema.Resolve([]string{"--name", "rig1"})
	require.True(t, errors.As(err, &missing), "got %v", err)
	assert.Equal(t, "image_path", missing.Argument)
}

func TestValidate(t *testing.T) {
	var tests = []struct {
		name     string
		modify   func(c *Config)
		err      string
		warnings int
	}{
		{"defaults", func(c *Config) {}, "", 0},
		{"auto_scale with linear loss", func(c *Config) { c.AutoScale = floatp(2) }, "", 1},
		{"auto_scale with robust loss", func(c *Config) { c.AutoScale = floatp(2); c.Loss = "cauchy" }, "", 0},
		{"everything fixed", func(c *Config) {
			c.FixIntrinsic, c.FixCameraPoses, c.FixBoardPoses, c.FixMotion = true, true, true, true
		}, "", 1},
		{"lower case level", func(c *Config) { c.LogLevel = "warning" }, "", 0},
		{"unknown level", func(c *Config) { c.LogLevel = "LOUD" }, "--log_level", 0},
		{"no jobs", func(c *Config) { c.J = 0 }, "--j", 0},
		{"negative iter", func(c *Config) { c.Iter = -1 }, "--iter", 0},
		{"no intrinsic images", func(c *Config) { c.IntrinsicImages = 0 }, "--intrinsic_images", 0},
		{"zero outlier", func(c *Config) { c.Outlier = 0 }, "--outlier", 0},
		{"negative auto_scale", func(c *Config) { c.AutoScale = floatp(-1); c.Loss = "huber" }, "--auto_scale", 0},
		{"nan outlier", func(c *Config) { c.Outlier = math.NaN() }, "--outlier", 0},
		{"infinite outlier", func(c *Config) { c.Outlier = math.Inf(1) }, "--outlier", 0},
		{"nan auto_scale", func(c *Config) { c.AutoScale = floatp(math.NaN()); c.Loss = "huber" }, "--auto_scale", 0},
		{"infinite auto_scale", func(c *Config) { c.AutoScale = floatp(math.Inf(1)); c.Loss = "huber" }, "--auto_scale", 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := defaultConfig("mydir")
			test.modify(&cfg)
			warnings, err := cfg.Validate()
			if test.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), test.err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, warnings, test.warnings)
		})
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := defaultConfig("data/rig")
	assert.Equal(t, "data/rig", cfg.OutputDir())
	assert.Equal(t, filepath.Join("data/rig", "calibration.json"), cfg.SavePath())
	assert.Nil(t, cfg.CameraNames())

	master, ok := cfg.MasterCamera([]string{"cam1", "cam2"})
	assert.True(t, ok)
	assert.Equal(t, "cam1", master)
	_, ok = cfg.MasterCamera(nil)
	assert.False(t, ok)

	cfg.OutputPath = strp("out")
	cfg.Name = "rig1"
	assert.Equal(t, filepath.Join("out", "rig1.json"), cfg.SavePath())

	cfg.Save = strp("elsewhere.json")
	assert.Equal(t, "elsewhere.json", cfg.SavePath())

	cfg.Cameras = strp("cam1, cam2,,cam3")
	assert.Equal(t, []string{"cam1", "cam2", "cam3"}, cfg.CameraNames())

	cfg.Master = strp("cam3")
	master, _ = cfg.MasterCamera(cfg.CameraNames())
	assert.Equal(t, "cam3", master)
}

func TestCommand(t *testing.T) {
	defer log.SetGlobalLogMode(log.DefaultMode)

	var logs strings.Builder
	logger := log.New(log.Writer(&logs), log.Flags(log.Lmode))

	var got []Config
	cmd := NewCmd(logger, func(cfg Config) error {
		got = append(got, cfg)
		return nil
	})
	assert.Equal(t, "calibrate", cmd.Name())
	assert.True(t, cmd.Runnable())

	resolved, err := cmd.Schema.Resolve([]string{"mydir", "--auto_scale", "2", "--log_level", "WARNING"})
	require.NoError(t, err)
	require.NoError(t, cmd.Run(cmd, resolved))

	require.Len(t, got, 1)
	assert.Equal(t, "mydir", got[0].ImagePath)
	assert.Equal(t, log.WarnMode|log.ErrorMode|log.FatalMode, log.GetGlobalLogMode())
	assert.Contains(t, logs.String(), "W --auto_scale 2 has no effect with linear loss")
	assert.NotContains(t, logs.String(), "calibrating")
}

func TestCommandErrors(t *testing.T) {
	defer log.SetGlobalLogMode(log.DefaultMode)

	called := false
	cmd := NewCmd(log.Discarder(), func(cfg Config) error {
		called = true
		return errors.New("no boards detected")
	})

	resolved, err := cmd.Schema.Resolve([]string{"mydir", "--j", "0"})
	require.NoError(t, err)
	err = cmd.Run(cmd, resolved)
	assert.Error(t, err)
	assert.False(t, called)

	for _, tokens := range [][]string{
		{"mydir", "--outlier", "NaN"},
		{"mydir", "--loss", "huber", "--auto_scale", "nan"},
		{"mydir", "--outlier", "+Inf"},
	} {
		resolved, err = cmd.Schema.Resolve(tokens)
		require.NoError(t, err)
		assert.Error(t, cmd.Run(cmd, resolved), "%v", tokens)
		assert.False(t, called, "%v", tokens)
	}

	resolved, err = cmd.Schema.Resolve([]string{"mydir"})
	require.NoError(t, err)
	err = cmd.Run(cmd, resolved)
	assert.EqualError(t, err, "calibrate: no boards detected")
	assert.True(t, called)
}
