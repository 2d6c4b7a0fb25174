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

package schema

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Config is the result of a successful Resolve. Values holds an entry for
// every argument of the schema; options left unset by default map to nil.
type Config struct {
	Subcommand string
	Values     map[string]interface{}

	explicit map[string]bool
}

// Get returns the value bound to name.
func (c *Config) Get(name string) (interface{}, bool) {
	v, ok := c.Values[name]
	return v, ok
}

// Explicit reports whether name was given in the tokens rather than
// defaulted.
func (c *Config) Explicit(name string) bool {
	return c.explicit[name]
}

// Decode copies the values into out, a pointer to a struct whose fields are
// tagged `mapstructure:"<argument name>"`. Optional arguments should be
// pointer fields; they stay nil when unset. Values without a matching field
// are an error, so a struct that falls behind its schema is caught early.
func (c *Config) Decode(out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(c.Values); err != nil {
		return fmt.Errorf("decoding %s configuration: %w", c.Subcommand, err)
	}
	return nil
}
