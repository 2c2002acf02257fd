// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package usage renders plain-text help for a flagscan rule set. It is a
// consumer of the scanner's public surface; the scanner itself never
// formats output.
package usage

import (
	"fmt"
	"strings"

	"github.com/jogrun/jog/pkg/flagscan"
)

// Command carries the front-end metadata shown around the options block.
type Command struct {
	Name     string
	About    string
	Usage    string // argument synopsis, e.g. "[OPTIONS] RUNNER [ARGS...]"
	Examples []string
}

// Render produces a help screen for the given rule set. Rules appear in
// declaration order, which is also their match order.
func Render[S any](cmd Command, rules []flagscan.FlagRule[S]) string {
	var b strings.Builder

	b.WriteString(cmd.Name)
	if cmd.About != "" {
		b.WriteString(" - ")
		b.WriteString(cmd.About)
	}
	b.WriteString("\n\n")

	b.WriteString("USAGE:\n")
	synopsis := cmd.Usage
	if synopsis == "" {
		synopsis = "[OPTIONS] [ARGS...]"
	}
	b.WriteString(fmt.Sprintf("    %s %s\n\n", cmd.Name, synopsis))

	if len(rules) > 0 {
		b.WriteString("OPTIONS:\n")
		for _, rule := range rules {
			b.WriteString(optionLine(rule))
		}
		b.WriteString("\n")
	}

	if len(cmd.Examples) > 0 {
		b.WriteString("EXAMPLES:\n")
		for _, example := range cmd.Examples {
			b.WriteString(fmt.Sprintf("    %s\n", example))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func optionLine[S any](rule flagscan.FlagRule[S]) string {
	flagStr := "    " + strings.Join(rule.Spellings(), ", ")
	if rule.Arity() == flagscan.Value {
		desc := rule.ValueDesc()
		if desc == "" {
			desc = "VALUE"
		}
		flagStr += fmt.Sprintf(" <%s>", desc)
	}

	if rule.Help() == "" {
		return flagStr + "\n"
	}
	return fmt.Sprintf("%-28s %s\n", flagStr, rule.Help())
}
