// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command dsdemo runs scenario files against the union-find and range
// minimum containers and reports on whether their expectations are met.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: dsdemo
summary: run scripted operations against the union-find and range minimum containers
commands:
  - name: run
    summary: run the specified scenario files and report on their outcome
    arguments:
      - <scenario.yaml>
      - ...
  - name: check
    summary: parse and validate the specified scenario files without running them
    arguments:
      - <scenario.yaml>
      - ...
`

type runFlags struct {
	cmdutil.LoggingFlags
	Quiet bool `subcmd:"quiet,false,only report failures"`
}

type checkFlags struct{}

func cli() *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("run").MustRunnerAndFlags(runScenarios,
		subcmd.MustRegisteredFlagSet(&runFlags{}))
	cmdSet.Set("check").MustRunnerAndFlags(checkScenarios,
		subcmd.MustRegisteredFlagSet(&checkFlags{}))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), cli())
}
