package integration

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/multical/multical/doc"
	"github.com/multical/multical/pkg/affinity"
	"github.com/multical/multical/pkg/cli"
	"github.com/multical/multical/pkg/engine"
	"github.com/multical/multical/pkg/log"
	"github.com/multical/multical/pkg/schema"

	"github.com/multical/multical/cmd/calibrate"
	checkboards "github.com/multical/multical/cmd/check-boards"
	showresult "github.com/multical/multical/cmd/show-result"
)

const abstract = "Multical calibrates multi-camera rigs from images of calibration boards."

// harness wires the real commands to a Printer, the way main does, and
// counts engine invocations.
type harness struct {
	out      bytes.Buffer
	stdout   bytes.Buffer
	stderr   bytes.Buffer
	calls    int
	commands cli.Commands
}

func newHarness() *harness {
	h := &harness{}
	logger := log.Discarder()
	printer := engine.NewPrinter(&h.out)
	h.commands = cli.Commands{
		calibrate.NewCmd(logger, func(cfg calibrate.Config) error {
			h.calls++
			return printer.Print("calibrate", cfg)
		}),
		checkboards.NewCmd(logger, func(cfg checkboards.Config) error {
			h.calls++
			return printer.Print("check_boards", cfg)
		}),
		showresult.NewCmd(logger, func(cfg showresult.Config) error {
			h.calls++
			return printer.Print("show_result", cfg)
		}),
		doc.BoardsTopic,
		doc.OptimizationTopic,
	}
	return h
}

func (h *harness) run(args ...string) error {
	return cli.Execute("multical", abstract, h.commands, args, &h.stdout, &h.stderr)
}

// printed decodes the single document written by the engine.
func (h *harness) printed(t *testing.T, subcommand string) map[string]interface{} {
	t.Helper()
	var doc map[string]map[string]interface{}
	if err := yaml.Unmarshal(h.out.Bytes(), &doc); err != nil {
		t.Fatalf("unexpected error decoding %q: %v", h.out.String(), err)
	}
	values, ok := doc[subcommand]
	if !ok {
		t.Fatalf("expected a %s document, got %q", subcommand, h.out.String())
	}
	return values
}

func TestCalibrate(t *testing.T) {
	defer log.SetGlobalLogMode(log.DefaultMode)

	h := newHarness()
	if err := h.run("calibrate", "mydir", "--name", "rig1", "--iter", "5"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.calls != 1 {
		t.Fatalf("expected 1 engine call, got %d", h.calls)
	}

	got := h.printed(t, "calibrate")
	want := map[string]interface{}{
		"image_path":        "mydir",
		"save":              nil,
		"name":              "rig1",
		"output_path":       nil,
		"intrinsic_pattern": nil,
		"image_pattern":     nil,
		"cameras":           nil,
		"intrinsic_images":  50,
		"fix_aspect":        false,
		"allow_skew":        false,
		"distortion":        "standard",
		"master":            nil,
		"iter":              5,
		"boards":            nil,
		"loss":              "linear",
		"outlier":           5.0,
		"auto_scale":        nil,
		"fix_intrinsic":     false,
		"fix_camera_poses":  false,
		"fix_board_poses":   false,
		"fix_motion":        false,
		"optimize_board":    false,
		"motion_model":      "static",
		"j":                 affinity.Count(),
		"log_level":         "INFO",
		"no_cache":          false,
		"show":              false,
	}
	if len(got) != len(want) {
		t.Errorf("expected %d values, got %d: %v", len(want), len(got), got)
	}
	for name, w := range want {
		g, ok := got[name]
		if !ok {
			t.Errorf("expected %s to be bound", name)
			continue
		}
		// Whole floats are written without a fraction.
		if fmt.Sprint(g) != fmt.Sprint(w) {
			t.Errorf("expected %s = %v, got %v", name, w, g)
		}
	}
}

func TestCheckBoards(t *testing.T) {
	h := newHarness()
	if err := h.run("check_boards", "boards.yaml", "--detect", "img1.png"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := h.printed(t, "check_boards")
	if got["boards"] != "boards.yaml" || got["detect"] != "img1.png" || len(got) != 2 {
		t.Fatalf(`expected {boards: "boards.yaml", detect: "img1.png"}, got %v`, got)
	}
}

func TestShowResult(t *testing.T) {
	h := newHarness()
	if err := h.run("show_result", "run.json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := h.printed(t, "show_result")
	if got["workspace_file"] != "run.json" || len(got) != 1 {
		t.Fatalf(`expected {workspace_file: "run.json"}, got %v`, got)
	}
}

func TestResolutionErrors(t *testing.T) {
	var tests = []struct {
		args  []string
		check func(err error) bool
		kind  string
	}{
		{nil, is[*schema.UsageError], "UsageError"},
		{[]string{"calibrat", "mydir"}, is[*schema.UsageError], "UsageError"},
		{[]string{"boards"}, is[*schema.UsageError], "UsageError"},
		{[]string{"calibrate", "mydir", "--distortion", "foo"}, is[*schema.ChoiceViolationError], "ChoiceViolationError"},
		{[]string{"calibrate", "mydir", "--iter", "abc"}, is[*schema.TypeCoercionError], "TypeCoercionError"},
		{[]string{"calibrate", "--name", "rig1"}, is[*schema.MissingArgumentError], "MissingArgumentError"},
		{[]string{"check_boards"}, is[*schema.MissingArgumentError], "MissingArgumentError"},
		{[]string{"show_result", "run.json", "--detect", "x"}, is[*schema.UsageError], "UsageError"},
	}

	for _, test := range tests {
		h := newHarness()
		err := h.run(test.args...)
		if !test.check(err) {
			t.Errorf("%v: expected %s, got %v", test.args, test.kind, err)
		}
		if !schema.IsResolutionError(err) {
			t.Errorf("%v: expected a resolution error, got %v", test.args, err)
		}
		if h.calls != 0 || h.out.Len() != 0 {
			t.Errorf("%v: expected no engine calls, got %d", test.args, h.calls)
		}
		if h.stderr.Len() == 0 {
			t.Errorf("%v: expected an error message on stderr", test.args)
		}
	}
}

func TestNoCommandListsCommands(t *testing.T) {
	h := newHarness()
	err := h.run()

	var uerr *schema.UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UsageError, got %v", err)
	}
	want := []string{"calibrate", "check_boards", "show_result"}
	if strings.Join(uerr.Valid, ",") != strings.Join(want, ",") {
		t.Errorf("expected %v, got %v", want, uerr.Valid)
	}
	if !strings.Contains(h.stderr.String(), "Usage:") {
		t.Errorf("expected full usage on stderr, got %q", h.stderr.String())
	}
}

func TestValidationFailureSkipsEngine(t *testing.T) {
	defer log.SetGlobalLogMode(log.DefaultMode)

	h := newHarness()
	err := h.run("calibrate", "mydir", "--log_level", "LOUD")
	if err == nil {
		t.Fatal("expected an error for an unknown log level")
	}
	if schema.IsResolutionError(err) {
		t.Errorf("expected a validation error, got resolution error %v", err)
	}
	if h.calls != 0 {
		t.Errorf("expected no engine calls, got %d", h.calls)
	}
}

func TestHelp(t *testing.T) {
	var tests = []struct {
		args []string
		want []string
	}{
		{[]string{"help"}, []string{abstract, "calibrate", "check_boards", "show_result", "boards", "optimization"}},
		{[]string{"--help"}, []string{abstract}},
		{[]string{"help", "calibrate"}, []string{"calibrate [options] image_path", "camera settings:", "--distortion {standard,rational,thin_prism,tilted}"}},
		{[]string{"calibrate", "-h"}, []string{"enable/disable optimization:", "--motion_model {rolling,static}"}},
		{[]string{"help", "optimization"}, []string{"--auto_scale"}},
		{[]string{"help", "boards"}, []string{"check_boards", "engine chooses the board"}},
	}

	for _, test := range tests {
		h := newHarness()
		if err := h.run(test.args...); err != nil {
			t.Errorf("%v: unexpected error: %v", test.args, err)
			continue
		}
		for _, w := range test.want {
			if !strings.Contains(h.stdout.String(), w) {
				t.Errorf("%v: expected output to contain %q, got:\n%s", test.args, w, h.stdout.String())
			}
		}
		if h.calls != 0 {
			t.Errorf("%v: expected no engine calls, got %d", test.args, h.calls)
		}
	}
}

func is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}
