// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/jogrun/jog/pkg/flagscan"
)

// scanState is the value threaded through the argument scan. Callbacks
// receive a copy and return a replacement; nothing here is mutated in place.
type scanState struct {
	verbose    bool
	help       bool
	noInstall  bool
	coverage   bool
	configPath string
	command    string   // "run", "list" or "version"; "" until decided
	runner     string   // selected runner name
	runnerArgs []string // tokens passed through to the runner verbatim
}

// scanRules derives the active flag set from the scan state. Run-only flags
// disappear once a non-run subcommand has been seen.
func scanRules(s scanState) []flagscan.FlagRule[scanState] {
	rules := []flagscan.FlagRule[scanState]{
		flagscan.NewSwitch(func(s scanState) flagscan.Result[scanState] {
			s.help = true
			// Nothing after -h matters; stop classifying.
			return flagscan.OkRest(s)
		}, "-h", "--help").WithHelp("Show this help"),
		flagscan.NewSwitch(func(s scanState) flagscan.Result[scanState] {
			s.verbose = true
			return flagscan.Ok(s)
		}, "-v", "--verbose").WithHelp("Log what jog is doing"),
		flagscan.NewValue("PATH", func(v string, s scanState) flagscan.Result[scanState] {
			s.configPath = v
			return flagscan.Ok(s)
		}, "-c", "--config").WithHelp("Use this jog.toml instead of searching upward"),
	}

	if s.command == "" || s.command == "run" {
		rules = append(rules,
			flagscan.NewSwitch(func(s scanState) flagscan.Result[scanState] {
				s.noInstall = true
				return flagscan.Ok(s)
			}, "--no-install").WithHelp("Fail instead of running the runner's install command"),
			flagscan.NewSwitch(func(s scanState) flagscan.Result[scanState] {
				s.coverage = true
				return flagscan.Ok(s)
			}, "--coverage").WithHelp("Append --coverage to the runner invocation"),
			flagscan.NewValue("NAME", func(v string, s scanState) flagscan.Result[scanState] {
				s.command = "run"
				s.runner = v
				// Everything after the selection belongs to the runner.
				return flagscan.OkRest(s)
			}, "-r", "--runner").WithHelp("Select the runner and pass the remaining args to it"),
		)
	}
	return rules
}

func scanPositional(tok string, s scanState) flagscan.Result[scanState] {
	if s.command == "" {
		switch tok {
		case "run", "list", "version":
			s.command = tok
			return flagscan.Ok(s)
		}
		// An unrecognized first word names the runner directly.
		s.command = "run"
		s.runner = tok
		return flagscan.OkRest(s)
	}
	if s.command == "run" && s.runner == "" {
		s.runner = tok
		return flagscan.OkRest(s)
	}
	return flagscan.Fail[scanState](fmt.Errorf("unexpected argument %q", tok))
}

func scanRest(rest []string, s scanState) flagscan.Result[scanState] {
	if len(rest) == 0 {
		return flagscan.Ok(s)
	}
	args := make([]string, 0, len(s.runnerArgs)+len(rest))
	args = append(args, s.runnerArgs...)
	args = append(args, rest...)
	s.runnerArgs = args
	return flagscan.Ok(s)
}

func scanArgs(args []string) (scanState, error) {
	return flagscan.Scan(args, flagscan.Config[scanState]{
		Rules:      scanRules,
		Positional: scanPositional,
		Rest:       scanRest,
	})
}
