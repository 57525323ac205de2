// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cloudeng.io/dsalgo/container/segtree"
	"cloudeng.io/dsalgo/container/unionfind"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/samber/lo"
)

// Report summarises the outcome of running a scenario.
type Report struct {
	Name   string
	Steps  int
	Failed int

	// Final state of the union-find forest, if any.
	Sets     [][]int
	SetCount int

	// Final minimum over the whole range minimum tree, if it was
	// built and is not empty.
	Min    int64
	HasMin bool
}

// String implements fmt.Stringer.
func (r *Report) String() string {
	out := &strings.Builder{}
	fmt.Fprintf(out, "%v: %v steps, %v failed", r.Name, r.Steps, r.Failed)
	if r.Sets != nil {
		sets := lo.Map(r.Sets, func(s []int, _ int) string {
			return fmt.Sprintf("%v", s)
		})
		fmt.Fprintf(out, "\n  unionfind: %v sets: %v", r.SetCount, strings.Join(sets, " "))
	}
	if r.HasMin {
		fmt.Fprintf(out, "\n  rangemin: min: %v", r.Min)
	}
	return out.String()
}

type outcome struct {
	value    int64
	hasValue bool
	err      error
}

type runner struct {
	logger *slog.Logger
	report *Report
	errs   *errors.M
}

func (r *runner) check(section string, i int, s Step, o outcome) {
	r.report.Steps++
	r.logger.Debug("step", "section", section, "step", i, "op", s.Op, "args", s.Args, "value", o.value, "error", o.err)
	var err error
	switch {
	case s.ExpectError.IsSet():
		if !errors.Is(o.err, s.ExpectError.Kind) {
			err = fmt.Errorf("expected %v error, got: %v", s.ExpectError.Name, o.err)
		}
	case o.err != nil:
		err = o.err
	case s.Expect != nil && !o.hasValue:
		err = fmt.Errorf("expected %v, but %v does not return a value", *s.Expect, s.Op)
	case s.Expect != nil && o.value != *s.Expect:
		err = fmt.Errorf("got %v, want %v", o.value, *s.Expect)
	}
	if err != nil {
		r.report.Failed++
		r.errs.Append(fmt.Errorf("%v: step %v: %v %v: %w", section, i, s.Op, s.Args, err))
	}
}

func boolValue(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func (r *runner) unionFind(cfg *UnionFindConfig) {
	u, err := unionfind.New(cfg.Size)
	if err != nil {
		r.report.Failed++
		r.errs.Append(fmt.Errorf("unionfind: %w", err))
		return
	}
	for i, s := range cfg.Steps {
		var o outcome
		a := s.Args
		switch s.Op {
		case "join":
			o.err = u.Join(int(a[0]), int(a[1]))
		case "find":
			var v int
			v, o.err = u.Find(int(a[0]))
			o.value, o.hasValue = int64(v), true
		case "size":
			var v int
			v, o.err = u.Size(int(a[0]))
			o.value, o.hasValue = int64(v), true
		case "connected":
			var v bool
			v, o.err = u.Connected(int(a[0]), int(a[1]))
			o.value, o.hasValue = boolValue(v), true
		case "count":
			o.value, o.hasValue = int64(u.Count()), true
		}
		r.check("unionfind", i, s, o)
	}
	r.report.Sets = u.Sets()
	r.report.SetCount = u.Count()
}

func (r *runner) rangeMin(cfg *RangeMinConfig) {
	n := cfg.Length
	if n == 0 {
		n = len(cfg.Values)
	}
	rm, err := segtree.NewRangeMin[int64](n)
	if err != nil {
		r.report.Failed++
		r.errs.Append(fmt.Errorf("rangemin: %w", err))
		return
	}
	if !cfg.DeferBuild {
		if err := rm.Build(cfg.Values); err != nil {
			r.report.Failed++
			r.errs.Append(fmt.Errorf("rangemin: %w", err))
			return
		}
	}
	for i, s := range cfg.Steps {
		var o outcome
		a := s.Args
		switch s.Op {
		case "build":
			o.err = rm.Build(cfg.Values)
		case "query":
			o.value, o.err = rm.Query(int(a[0]), int(a[1]))
			o.hasValue = true
		case "update":
			o.err = rm.Update(int(a[0]), a[1])
		case "at":
			o.value, o.err = rm.At(int(a[0]))
			o.hasValue = true
		}
		r.check("rangemin", i, s, o)
	}
	if rm.Built() && rm.Len() > 0 {
		r.report.Min, _ = rm.Query(0, rm.Len()-1)
		r.report.HasMin = true
	}
}

// Run validates and then executes the scenario. Every step is run
// regardless of earlier failures, all failures are returned
// as a single error.
func Run(ctx context.Context, cfg *Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &runner{
		logger: ctxlog.Logger(ctx).With("scenario", cfg.Name),
		report: &Report{Name: cfg.Name},
		errs:   &errors.M{},
	}
	if cfg.UnionFind != nil {
		r.unionFind(cfg.UnionFind)
	}
	if cfg.RangeMin != nil {
		r.rangeMin(cfg.RangeMin)
	}
	r.logger.Info("scenario complete", "steps", r.report.Steps, "failed", r.report.Failed)
	return r.report, r.errs.Err()
}
