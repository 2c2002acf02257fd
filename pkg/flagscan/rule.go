// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagscan

// Arity says whether a flag rule takes a value.
type Arity int

const (
	// Switch flags take no value. Attaching one with "=" is an error.
	Switch Arity = iota
	// Value flags require exactly one value, from an "=" suffix or the
	// next token.
	Value
)

// FlagRule describes one recognized flag: the spellings that select it, its
// arity, and the callback to invoke on a match. Rules are matched in list
// order; when two rules share a spelling, the first one wins.
type FlagRule[S any] struct {
	spellings []string
	arity     Arity
	valueDesc string
	help      string
	onSwitch  func(S) Result[S]
	onValue   func(value string, state S) Result[S]
}

// NewSwitch returns a rule for a flag that takes no value. The spellings
// must include their dashes, e.g. NewSwitch(cb, "-v", "--verbose").
func NewSwitch[S any](cb func(S) Result[S], spellings ...string) FlagRule[S] {
	return FlagRule[S]{spellings: spellings, arity: Switch, onSwitch: cb}
}

// NewValue returns a rule for a flag that requires a value. valueDesc is a
// short human-readable label for the expected value (e.g. "FILE"); it is
// surfaced in errors and help output.
func NewValue[S any](valueDesc string, cb func(value string, state S) Result[S], spellings ...string) FlagRule[S] {
	return FlagRule[S]{spellings: spellings, arity: Value, valueDesc: valueDesc, onValue: cb}
}

// WithHelp attaches help text to the rule for usage rendering.
func (r FlagRule[S]) WithHelp(text string) FlagRule[S] {
	r.help = text
	return r
}

// Spellings returns the spellings that select this rule, in declaration
// order.
func (r FlagRule[S]) Spellings() []string { return r.spellings }

// Arity returns whether the rule takes a value.
func (r FlagRule[S]) Arity() Arity { return r.arity }

// ValueDesc returns the value label for Value rules, "" for switches.
func (r FlagRule[S]) ValueDesc() string { return r.valueDesc }

// Help returns the help text attached with WithHelp.
func (r FlagRule[S]) Help() string { return r.help }

func (r FlagRule[S]) matches(spelling string) bool {
	for _, s := range r.spellings {
		if s == spelling {
			return true
		}
	}
	return false
}

// Result is the outcome of a single callback invocation: a replacement
// state, or an error that aborts the scan.
type Result[S any] struct {
	state S
	rest  bool
	err   error
}

// Ok accepts the callback's replacement state and continues the scan.
func Ok[S any](state S) Result[S] {
	return Result[S]{state: state}
}

// OkRest accepts the replacement state and asks the scanner to stop
// classifying: every token after the current cursor position is handed to
// the rest handler verbatim, as if "--" had been seen.
func OkRest[S any](state S) Result[S] {
	return Result[S]{state: state, rest: true}
}

// Fail aborts the scan with the given error. Flag callback errors surface
// as *FlagError, positional and rest handler errors as *ArgError.
func Fail[S any](err error) Result[S] {
	return Result[S]{err: err}
}
