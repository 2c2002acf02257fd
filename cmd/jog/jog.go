// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command jog is a thin wrapper around a project's test runners. It scans
// its own flags with pkg/flagscan, resolves the runner from jog.toml, and
// hands every remaining token to the runner untouched.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/jogrun/jog/pkg/cmdutil"
	"github.com/jogrun/jog/pkg/flagscan"
	"github.com/jogrun/jog/pkg/flagscan/usage"
	"github.com/jogrun/jog/pkg/runnercfg"
)

const jogVersion = "0.4.2"

var jogCommand = usage.Command{
	Name:  "jog",
	About: "run your project's test runners with shared defaults",
	Usage: "[OPTIONS] [RUNNER] [RUNNER ARGS...]",
	Examples: []string{
		"jog jest --coverage",
		"jog --no-install jest --watch",
		"jog -r vitest run --reporter dot",
		"jog list",
	},
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("jog: ")
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	st, err := scanArgs(args)
	if err != nil {
		printError(err)
		var ferr *flagscan.FlagError
		if errors.As(err, &ferr) {
			fmt.Fprintln(os.Stderr, "Run 'jog --help' for usage.")
			return 2
		}
		return 1
	}

	if st.help {
		fmt.Print(usage.Render(jogCommand, scanRules(st)))
		return 0
	}

	switch st.command {
	case "version":
		fmt.Printf("jog %s\n", jogVersion)
		return 0
	case "list":
		return runList(st)
	default:
		return runRunner(st)
	}
}

func loadConfig(path string) (*runnercfg.Config, error) {
	if path != "" {
		return runnercfg.Load(path)
	}
	loc, err := runnercfg.LoadFromCwd()
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, nil
	}
	return loc.Config, nil
}

func runList(st scanState) int {
	cfg, err := loadConfig(st.configPath)
	if err != nil {
		printError(err)
		return 1
	}
	names := cfg.Names()
	if len(names) == 0 {
		fmt.Println("No runners configured. Add a [runner.NAME] table to jog.toml.")
		return 0
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, name := range names {
		runner, _ := cfg.Resolve(name)
		mark := ""
		if name == cfg.Default {
			mark = " (default)"
		}
		fmt.Fprintf(w, "%s%s\t%s %s\n", name, mark, runner.Command, runner.Args)
	}
	w.Flush()
	return 0
}

func runRunner(st scanState) int {
	cfg, err := loadConfig(st.configPath)
	if err != nil {
		printError(err)
		return 1
	}

	runner, ok := cfg.Resolve(st.runner)
	if !ok {
		if st.runner == "" {
			printError(errors.New("no runner named and no default configured; try 'jog list'"))
			return 1
		}
		// Unconfigured runners are invoked directly with no defaults.
		runner = runnercfg.Runner{Command: st.runner}
	}

	runnerArgs, err := buildRunnerArgs(runner, st)
	if err != nil {
		printError(err)
		return 1
	}

	if !cmdutil.LookPath(runner.Command) {
		if code := installRunner(runner, st); code != 0 {
			return code
		}
	}

	if st.verbose {
		log.Printf("exec %s %s", runner.Command, strings.Join(runnerArgs, " "))
	}
	code, err := cmdutil.Run(cmdutil.NewStdCmd(runner.Command, runnerArgs...), runner.Env)
	if err != nil {
		printError(err)
		return 1
	}
	return code
}

// buildRunnerArgs layers the invocation: configured defaults first, then
// jog-level conveniences, then everything collected from the command line.
func buildRunnerArgs(runner runnercfg.Runner, st scanState) ([]string, error) {
	args, err := runner.ArgTokens()
	if err != nil {
		return nil, err
	}
	if st.coverage {
		args = append(args, "--coverage")
	}
	return append(args, st.runnerArgs...), nil
}

func installRunner(runner runnercfg.Runner, st scanState) int {
	if runner.Install == "" {
		printError(fmt.Errorf("runner %q not found on PATH", runner.Command))
		return 1
	}
	if st.noInstall {
		printError(fmt.Errorf("runner %q not found on PATH (install skipped)", runner.Command))
		return 1
	}
	tokens, err := runner.InstallTokens()
	if err != nil {
		printError(err)
		return 1
	}
	if len(tokens) == 0 {
		printError(fmt.Errorf("runner %q has an empty install command", runner.Command))
		return 1
	}
	if st.verbose {
		log.Printf("installing: %s", strings.Join(tokens, " "))
	}
	code, err := cmdutil.Run(cmdutil.NewStdCmd(tokens[0], tokens[1:]...), runner.Env)
	if err != nil {
		printError(err)
		return 1
	}
	if code != 0 {
		printError(fmt.Errorf("install command exited with status %d", code))
		return code
	}
	return 0
}

func printError(err error) {
	msg := fmt.Sprintf("Error: %v", err)
	if term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprintln(os.Stderr, color.RedString(msg))
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}
