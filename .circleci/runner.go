// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"cloudeng.io/errors"
)

var (
	packagesFlag  bool
	testFlag      bool
	lintFlag      bool
	scenariosFlag bool
)

// scenarios that are expected to pass, failing.yaml is expected to fail
// and is covered by the scenario package's tests.
var scenarios = []string{"examples.yaml", "single.yaml", "errors.yaml"}

func done(msg string, err error) {
	fmt.Printf("Failed: %s: %s\n", msg, err)
	os.Exit(1)
}

func main() {
	ctx := context.Background()
	flag.BoolVar(&packagesFlag, "packages", false, "print the packages in this repo that contain tests")
	flag.BoolVar(&testFlag, "test", false, "run tests")
	flag.BoolVar(&lintFlag, "lint", false, "run lint")
	flag.BoolVar(&scenariosFlag, "scenarios", false, "run the dsdemo command against the sample scenarios")

	flag.Parse()

	if !packagesFlag && !testFlag && !lintFlag && !scenariosFlag {
		fmt.Fprintf(os.Stderr, "at least one flag is required\n")
		flag.Usage()
		os.Exit(1)
	}

	pkgs := flag.Args()
	if len(pkgs) == 0 {
		var err error
		pkgs, err = testedPackages()
		if err != nil {
			done("finding packages", err)
		}
	}

	if packagesFlag {
		fmt.Println(strings.Join(pkgs, " "))
		return
	}

	errs := &errors.M{}
	if testFlag {
		for _, pkg := range pkgs {
			errs.Append(run(ctx, pkg, "go", "test", "-failfast", "--covermode=atomic", "-race", pkg))
		}
	}
	if lintFlag {
		errs.Append(run(ctx, "lint", "golangci-lint", "run", "./..."))
	}
	if scenariosFlag {
		args := []string{"run", "./cmd/dsdemo", "run", "--log-level=2", "--log-format=text"}
		for _, s := range scenarios {
			args = append(args, filepath.Join("internal", "scenario", "testdata", s))
		}
		errs.Append(run(ctx, "scenarios", "go", args...))
	}
	if err := errs.Err(); err != nil {
		done("ci", err)
	}
}

// testedPackages returns the directories, relative to the root of the
// module, that contain _test.go files.
func testedPackages() ([]string, error) {
	seen := map[string]bool{}
	var pkgs []string
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); path != "." && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "testdata") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, "_test.go") {
			return nil
		}
		dir := "./" + filepath.ToSlash(filepath.Dir(path))
		if !seen[dir] {
			seen[dir] = true
			pkgs = append(pkgs, dir)
		}
		return nil
	})
	return pkgs, err
}

func run(ctx context.Context, name, command string, args ...string) error {
	fmt.Printf("%v...\n", name)
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Printf("%v... failed\n", name)
		return fmt.Errorf("%v: %w", name, err)
	}
	fmt.Printf("%v... ok\n", name)
	return nil
}
