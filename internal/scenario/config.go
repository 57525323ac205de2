// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package scenario runs scripted sequences of operations, described in
// YAML, against a union-find forest and a range minimum segment tree and
// checks their results against stated expectations.
package scenario

import (
	"context"
	"fmt"
	"slices"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/dsalgo/dserrors"
	"cloudeng.io/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Config represents a scenario file.
//
//	name: example
//	unionfind:
//	  size: 5
//	  steps:
//	    - op: join
//	      args: [0, 1]
//	    - op: connected
//	      args: [0, 1]
//	      expect: 1
//	rangemin:
//	  values: [4, 3, 5, 2, 1]
//	  steps:
//	    - op: query
//	      args: [1, 3]
//	      expect: 2
//	    - op: update
//	      args: [7, 0]
//	      expect_error: index-out-of-range
type Config struct {
	Name      string           `yaml:"name"`
	UnionFind *UnionFindConfig `yaml:"unionfind"`
	RangeMin  *RangeMinConfig  `yaml:"rangemin"`
}

// UnionFindConfig describes a union-find forest over {0,...,size} and
// the operations to apply to it. Supported operations are join, find,
// size, connected (1 for true, 0 for false) and count.
type UnionFindConfig struct {
	Size  int    `yaml:"size"`
	Steps []Step `yaml:"steps"`
}

// RangeMinConfig describes a range minimum tree and the operations
// to apply to it. Length defaults to the number of values. Unless
// DeferBuild is set the tree is built from Values before the first
// step, otherwise an explicit build step is required. Supported
// operations are build, query, update and at.
type RangeMinConfig struct {
	Length     int     `yaml:"length"`
	Values     []int64 `yaml:"values"`
	DeferBuild bool    `yaml:"defer_build"`
	Steps      []Step  `yaml:"steps"`
}

// Step is a single operation. Expect, if set, is compared with the
// value returned by the operation. ExpectError, if set, requires the
// operation to fail with the named kind of error.
type Step struct {
	Op          string    `yaml:"op"`
	Args        []int64   `yaml:"args,flow"`
	Expect      *int64    `yaml:"expect,omitempty"`
	ExpectError ErrorKind `yaml:"expect_error,omitempty"`
}

// ErrorKind is the YAML representation of one of the error kinds
// defined in dserrors: invalid-argument, index-out-of-range or
// invalid-state.
type ErrorKind struct {
	Name string
	Kind error
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (ek *ErrorKind) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	kind, ok := dserrors.KindFromName(name)
	if !ok {
		return fmt.Errorf("line %v: unknown error kind %q", node.Line, name)
	}
	ek.Name, ek.Kind = name, kind
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (ek ErrorKind) MarshalYAML() (any, error) {
	return ek.Name, nil
}

// IsSet returns true if an error kind was specified.
func (ek ErrorKind) IsSet() bool {
	return ek.Kind != nil
}

// number of arguments required by each operation.
var (
	unionFindOps = map[string]int{
		"join":      2,
		"find":      1,
		"size":      1,
		"connected": 2,
		"count":     0,
	}
	rangeMinOps = map[string]int{
		"build":  0,
		"query":  2,
		"update": 2,
		"at":     1,
	}
)

// Parse parses a scenario, unknown fields are reported as errors.
func Parse(spec []byte) (*Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseFile is like Parse but reads the scenario from the named file.
func ParseFile(ctx context.Context, filename string) (*Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateSteps(section string, ops map[string]int, steps []Step) error {
	errs := &errors.M{}
	for i, s := range steps {
		nargs, ok := ops[s.Op]
		if !ok {
			errs.Append(fmt.Errorf("%v: step %v: unsupported operation %q, must be one of %v", section, i, s.Op, supported(ops)))
			continue
		}
		if len(s.Args) != nargs {
			errs.Append(fmt.Errorf("%v: step %v: %v requires %v arguments, got %v", section, i, s.Op, nargs, len(s.Args)))
		}
		if s.Expect != nil && s.ExpectError.IsSet() {
			errs.Append(fmt.Errorf("%v: step %v: only one of expect and expect_error may be specified", section, i))
		}
	}
	return errs.Err()
}

func supported(ops map[string]int) []string {
	names := lo.Keys(ops)
	slices.Sort(names)
	return names
}

// Validate checks that every step names a supported operation with the
// correct number of arguments.
func (c *Config) Validate() error {
	errs := &errors.M{}
	if c.UnionFind == nil && c.RangeMin == nil {
		errs.Append(fmt.Errorf("at least one of unionfind or rangemin must be specified"))
	}
	if uf := c.UnionFind; uf != nil {
		errs.Append(validateSteps("unionfind", unionFindOps, uf.Steps))
	}
	if rm := c.RangeMin; rm != nil {
		errs.Append(validateSteps("rangemin", rangeMinOps, rm.Steps))
	}
	return errs.Err()
}
