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

// Package schema declares the arguments accepted by a sub-command and
// resolves a token sequence against them. A Schema is built once, typically
// as a package level variable, and never modified afterwards:
//
//      var Schema = schema.MustNew("check_boards",
//          schema.Ungrouped(
//              schema.Positional("boards", "configuration file (YAML) for calibration boards"),
//              schema.OptionalString("detect", "show detections from an image"),
//          ),
//      )
//
// Resolving binds every declared argument, either to the value found in the
// tokens or to its default, and returns a Config:
//
//      cfg, err := Schema.Resolve([]string{"boards.yaml", "--detect", "img1.png"})
//      // cfg.Values == map[string]interface{}{"boards": "boards.yaml", "detect": "img1.png"}
//
// Options that default to "unset" are bound to nil. Config.Decode turns the
// values into a typed struct, where unset options stay nil pointers.
//
// Resolution only looks at the tokens. Paths are not opened or checked; that
// is left to whoever consumes the Config. Failures are reported through
// *UsageError, *MissingArgumentError, *TypeCoercionError and
// *ChoiceViolationError.
package schema
