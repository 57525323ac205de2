// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloudeng.io/dsalgo/internal/scenario"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

func runScenarios(ctx context.Context, values any, args []string) error {
	fv := values.(*runFlags)
	logger, err := fv.LoggingConfig().NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()
	ctx = ctxlog.Context(ctx, logger.Logger)
	return runFiles(ctx, os.Stdout, fv.Quiet, args)
}

func runFiles(ctx context.Context, out io.Writer, quiet bool, files []string) error {
	errs := &errors.M{}
	for _, file := range files {
		cfg, err := scenario.ParseFile(ctx, file)
		if err != nil {
			errs.Append(err)
			continue
		}
		if len(cfg.Name) == 0 {
			cfg.Name = file
		}
		ctxlog.Logger(ctx).Info("running scenario", "file", file)
		report, err := scenario.Run(ctx, cfg)
		if err != nil {
			errs.Append(fmt.Errorf("%v: %w", file, err))
		}
		if report != nil && (!quiet || report.Failed > 0) {
			fmt.Fprintln(out, report)
		}
	}
	return errs.Err()
}

func checkScenarios(ctx context.Context, _ any, args []string) error {
	return checkFiles(ctx, os.Stdout, args)
}

func checkFiles(ctx context.Context, out io.Writer, files []string) error {
	errs := &errors.M{}
	for _, file := range files {
		cfg, err := scenario.ParseFile(ctx, file)
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			errs.Append(fmt.Errorf("%v: %w", file, err))
			continue
		}
		fmt.Fprintf(out, "%v: ok\n", file)
	}
	return errs.Err()
}
