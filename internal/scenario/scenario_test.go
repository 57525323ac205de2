// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package scenario_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"cloudeng.io/dsalgo/dserrors"
	"cloudeng.io/dsalgo/internal/scenario"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

func runFile(t *testing.T, ctx context.Context, name string) (*scenario.Report, error) {
	t.Helper()
	cfg, err := scenario.ParseFile(ctx, filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("%v: %v", name, err)
	}
	return scenario.Run(ctx, cfg)
}

func TestExamples(t *testing.T) {
	ctx := context.Background()
	for _, tc := range []struct {
		file     string
		steps    int
		sets     [][]int
		setCount int
		min      int64
	}{
		{"examples.yaml", 10, [][]int{{0, 1, 2}, {3}, {4}, {5}}, 4, 0},
		{"single.yaml", 8, [][]int{{0, 1}, {2}, {3}, {4}}, 4, 2},
		{"errors.yaml", 10, [][]int{{0}, {1}, {2}}, 3, 7},
	} {
		report, err := runFile(t, ctx, tc.file)
		if err != nil {
			t.Errorf("%v: %v", tc.file, err)
			continue
		}
		if got, want := report.Steps, tc.steps; got != want {
			t.Errorf("%v: steps: got %v, want %v", tc.file, got, want)
		}
		if got, want := report.Failed, 0; got != want {
			t.Errorf("%v: failed: got %v, want %v", tc.file, got, want)
		}
		if got, want := report.Sets, tc.sets; !reflect.DeepEqual(got, want) {
			t.Errorf("%v: sets: got %v, want %v", tc.file, got, want)
		}
		if got, want := report.SetCount, tc.setCount; got != want {
			t.Errorf("%v: set count: got %v, want %v", tc.file, got, want)
		}
		if !report.HasMin {
			t.Errorf("%v: expected a minimum", tc.file)
		}
		if got, want := report.Min, tc.min; got != want {
			t.Errorf("%v: min: got %v, want %v", tc.file, got, want)
		}
	}
}

func TestFailures(t *testing.T) {
	report, err := runFile(t, context.Background(), "failing.yaml")
	if err == nil {
		t.Fatal("expected an error")
	}
	if got, want := report.Steps, 5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := report.Failed, 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !errors.Is(err, dserrors.ErrIndexOutOfRange) {
		t.Errorf("expected the out of range failure to be reported: %v", err)
	}
	for _, msg := range []string{
		"unionfind: step 1: connected [0 2]: got 0, want 1",
		"unionfind: step 2: find [9]: unionfind.Find: index out of range",
		"rangemin: step 0: query [0 1]: got 5, want 6",
		"rangemin: step 1: update [1 1]: expected invalid-state error, got: <nil>",
	} {
		if !strings.Contains(err.Error(), msg) {
			t.Errorf("%q not found in %v", msg, err)
		}
	}
	if got, want := report.String(), "failing: 5 steps, 4 failed\n  unionfind: 3 sets: [0 1] [2] [3]\n  rangemin: min: 1"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLogging(t *testing.T) {
	out := &bytes.Buffer{}
	ctx := ctxlog.NewJSONLogger(context.Background(), out, &slog.HandlerOptions{Level: slog.LevelDebug})
	if _, err := runFile(t, ctx, "single.yaml"); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if got, want := len(lines), 9; got != want {
		t.Fatalf("got %v, want %v: %s", got, want, out.String())
	}
	var last struct {
		Msg      string `json:"msg"`
		Scenario string `json:"scenario"`
		Steps    int    `json:"steps"`
	}
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &last); err != nil {
		t.Fatal(err)
	}
	if got, want := last.Msg, "scenario complete"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := last.Scenario, "single"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := last.Steps, 8; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestValidate(t *testing.T) {
	for i, tc := range []struct {
		spec string
		msg  string
	}{
		{`name: empty`, "at least one of unionfind or rangemin must be specified"},
		{`unionfind:
  size: 2
  steps:
    - op: merge
      args: [0, 1]`, `unionfind: step 0: unsupported operation "merge", must be one of [connected count find join size]`},
		{`rangemin:
  values: [1]
  steps:
    - op: query
      args: [0]`, "rangemin: step 0: query requires 2 arguments, got 1"},
		{`rangemin:
  values: [1]
  steps:
    - op: at
      args: [0]
      expect: 1
      expect_error: invalid-state`, "rangemin: step 0: only one of expect and expect_error may be specified"},
	} {
		cfg, err := scenario.Parse([]byte(tc.spec))
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		err = cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), tc.msg) {
			t.Errorf("%v: %v does not contain %q", i, err, tc.msg)
		}
		if _, err := scenario.Run(context.Background(), cfg); err == nil {
			t.Errorf("%v: expected Run to fail validation", i)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for i, tc := range []struct {
		spec string
		msg  string
	}{
		{`unionfind:
  size: 2
  steps:
    - op: find
      args: [0]
      expect_error: no-such-error`, `unknown error kind "no-such-error"`},
		{`unionfind:
  size: 2
  unknown: 3`, "field unknown not found"},
	} {
		_, err := scenario.Parse([]byte(tc.spec))
		if err == nil || !strings.Contains(err.Error(), tc.msg) {
			t.Errorf("%v: %v does not contain %q", i, err, tc.msg)
		}
	}
}

func TestConstructionFailures(t *testing.T) {
	cfg := &scenario.Config{
		Name:      "bad",
		UnionFind: &scenario.UnionFindConfig{Size: -1},
		RangeMin:  &scenario.RangeMinConfig{Length: 3, Values: []int64{1}},
	}
	report, err := scenario.Run(context.Background(), cfg)
	if !errors.Is(err, dserrors.ErrInvalidArgument) {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := report.Failed, 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if report.HasMin || report.Sets != nil {
		t.Errorf("unexpected final state: %v", report)
	}
}
