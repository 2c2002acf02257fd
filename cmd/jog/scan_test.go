// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jogrun/jog/pkg/flagscan"
	"github.com/jogrun/jog/pkg/runnercfg"
)

func runnerWithArgs(args string) runnercfg.Runner {
	return runnercfg.Runner{Command: "jest", Args: args}
}

func TestScanArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want scanState
	}{
		{
			name: "bare invocation",
			args: nil,
			want: scanState{},
		},
		{
			name: "runner with passthrough flags",
			args: []string{"jest", "--coverage", "-t", "login"},
			want: scanState{
				command:    "run",
				runner:     "jest",
				runnerArgs: []string{"--coverage", "-t", "login"},
			},
		},
		{
			name: "jog flags stop at the runner name",
			args: []string{"--no-install", "jest", "--no-install"},
			want: scanState{
				command:    "run",
				noInstall:  true,
				runner:     "jest",
				runnerArgs: []string{"--no-install"},
			},
		},
		{
			name: "explicit run subcommand",
			args: []string{"-v", "run", "vitest", "--reporter", "dot"},
			want: scanState{
				verbose:    true,
				command:    "run",
				runner:     "vitest",
				runnerArgs: []string{"--reporter", "dot"},
			},
		},
		{
			name: "runner flag hands off the rest",
			args: []string{"--runner", "vitest", "run", "--coverage"},
			want: scanState{
				command:    "run",
				runner:     "vitest",
				runnerArgs: []string{"run", "--coverage"},
			},
		},
		{
			name: "coverage before runner stays with jog",
			args: []string{"--coverage", "jest"},
			want: scanState{
				command:  "run",
				coverage: true,
				runner:   "jest",
			},
		},
		{
			name: "tokens after the runner pass through verbatim",
			args: []string{"jest", "--", "-t", "smoke"},
			want: scanState{
				command:    "run",
				runner:     "jest",
				runnerArgs: []string{"--", "-t", "smoke"},
			},
		},
		{
			name: "list subcommand",
			args: []string{"list", "--config", "x/jog.toml"},
			want: scanState{command: "list", configPath: "x/jog.toml"},
		},
		{
			name: "version subcommand",
			args: []string{"version"},
			want: scanState{command: "version"},
		},
		{
			name: "help short-circuits unknown flags",
			args: []string{"-h", "--definitely-not-a-flag"},
			want: scanState{help: true, runnerArgs: []string{"--definitely-not-a-flag"}},
		},
		{
			name: "config via equals",
			args: []string{"--config=ci/jog.toml", "jest"},
			want: scanState{
				command:    "run",
				configPath: "ci/jog.toml",
				runner:     "jest",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scanArgs(tt.args)
			if err != nil {
				t.Fatalf("scanArgs(%v) error = %v", tt.args, err)
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(scanState{})); diff != "" {
				t.Errorf("scanArgs(%v) mismatch (-want +got):\n%s", tt.args, diff)
			}
		})
	}
}

func TestScanArgs_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantKind flagscan.FlagErrorKind
	}{
		{
			name:     "unknown jog flag",
			args:     []string{"--watch"},
			wantKind: flagscan.UnknownFlag,
		},
		{
			name:     "run-only flag after list",
			args:     []string{"list", "--no-install"},
			wantKind: flagscan.UnknownFlag,
		},
		{
			name:     "config without a value",
			args:     []string{"--config"},
			wantKind: flagscan.MissingFlagValue,
		},
		{
			name:     "value attached to a switch",
			args:     []string{"--verbose=yes"},
			wantKind: flagscan.UnexpectedFlagValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scanArgs(tt.args)
			var ferr *flagscan.FlagError
			if !errors.As(err, &ferr) {
				t.Fatalf("scanArgs(%v) error = %v, want *FlagError", tt.args, err)
			}
			if ferr.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", ferr.Kind, tt.wantKind)
			}
		})
	}

	// A second positional after a non-run subcommand is a caller error,
	// not a flag error.
	_, err := scanArgs([]string{"list", "extra"})
	var aerr *flagscan.ArgError
	if !errors.As(err, &aerr) {
		t.Fatalf("scanArgs(list extra) error = %v, want *ArgError", err)
	}
	if aerr.Token != "extra" {
		t.Errorf("Token = %q, want %q", aerr.Token, "extra")
	}
}

func TestBuildRunnerArgs(t *testing.T) {
	st := scanState{coverage: true, runnerArgs: []string{"-t", "smoke"}}
	got, err := buildRunnerArgs(runnerWithArgs("--colors"), st)
	if err != nil {
		t.Fatalf("buildRunnerArgs() error = %v", err)
	}
	want := []string{"--colors", "--coverage", "-t", "smoke"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("buildRunnerArgs() mismatch (-want +got):\n%s", diff)
	}
}
