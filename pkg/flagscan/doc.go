// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flagscan classifies and dispatches command-line arguments against a
// state-dependent rule set.
//
// The scanner walks an argument list left to right, classifies each token as a
// flag, a bundled short-flag group, a positional argument, or the "--"
// terminator, and invokes caller callbacks for each match. Callbacks receive
// the current scan state and return a replacement; the active rule set is
// recomputed from the new state after every callback, so the flags a scan
// accepts can change mid-scan (for example, after a subcommand token has been
// seen).
//
// # Basic Usage
//
//	type state struct {
//	    verbose bool
//	    files   []string
//	}
//
//	rules := func(s state) []flagscan.FlagRule[state] {
//	    return []flagscan.FlagRule[state]{
//	        flagscan.NewSwitch(func(s state) flagscan.Result[state] {
//	            s.verbose = true
//	            return flagscan.Ok(s)
//	        }, "-v", "--verbose"),
//	        flagscan.NewValue("FILE", func(v string, s state) flagscan.Result[state] {
//	            s.files = append(s.files, v)
//	            return flagscan.Ok(s)
//	        }, "-f", "--file"),
//	    }
//	}
//
//	final, err := flagscan.Scan(os.Args[1:], flagscan.Config[state]{
//	    Rules: rules,
//	    Positional: func(tok string, s state) flagscan.Result[state] {
//	        s.files = append(s.files, tok)
//	        return flagscan.Ok(s)
//	    },
//	})
//
// # Flag Syntax
//
// Recognized token shapes:
//   - Switches: -v, --verbose
//   - Values with equals: -f=a.txt, --file=a.txt (an empty value is allowed)
//   - Values from the next token: -f a.txt, --file a.txt
//   - Bundled short flags: -vqf x expands to -v -q -f x; only the last flag
//     in a bundle may take a value
//   - "--" ends flag classification; every later token goes to the rest
//     handler verbatim
//
// A bare "-", a token with three or more leading dashes, and "-=" or "--="
// are not flags; they are delivered to the positional handler unchanged.
//
// # Errors
//
// Scan fails fast. Structural problems (unknown flag, a value attached to a
// switch, a missing value, a value flag bundled before the end of a group)
// are reported as *FlagError with the offending spelling attached. Errors
// returned by the caller's own callbacks abort the scan as well: flag
// callback errors are wrapped in a *FlagError, positional and rest handler
// errors in an *ArgError. Callbacks that already ran keep their effects;
// nothing is rolled back.
package flagscan
