// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagscan

// Config wires a scan: the initial state, the rule generator, and the
// handlers for positional and rest tokens. Every field is optional: a nil
// Rules generator recognizes no flags, and nil handlers accept their tokens
// without effect.
type Config[S any] struct {
	// Initial seeds the scan state.
	Initial S
	// Rules derives the active rule set from the current state. It must be
	// pure: it is called once before scanning and again after every
	// successful callback, and the result resolves the very next token.
	Rules func(S) []FlagRule[S]
	// Positional is invoked once per positional token, in order.
	Positional func(token string, state S) Result[S]
	// Rest is invoked at most once, with every token after the "--"
	// terminator or after a callback returned OkRest.
	Rest func(rest []string, state S) Result[S]
}

// Scan walks args left to right, resolving flag tokens against the rule set
// derived from the current state and handing other tokens to the configured
// handlers. It returns the final state, or the first error encountered: a
// *FlagError for anything flag-related, an *ArgError for positional or rest
// handler failures. The scan stops at the first error; effects of callbacks
// that already ran are kept.
func Scan[S any](args []string, cfg Config[S]) (S, error) {
	var zero S
	state := cfg.Initial
	rules := cfg.rules(state)

	for cur := (&cursor{args: args}); !cur.done(); cur.advance(1) {
		tok := cur.current()

		if tok == terminator {
			return cfg.finishRest(cur.rest(), state)
		}

		ft, isFlag := classifyFlag(tok)
		if !isFlag {
			res := cfg.positional(tok, state)
			if res.err != nil {
				return zero, &ArgError{Token: tok, Err: res.err}
			}
			state = res.state
			rules = cfg.rules(state)
			if res.rest {
				return cfg.finishRest(cur.rest(), state)
			}
			continue
		}

		src, value := nextArgMissing, ""
		if ft.hasEquals {
			src, value = viaEquals, ft.attached
		} else if next, ok := cur.peek(); ok {
			src, value = viaNextArg, next
		}

		handoff := false
		for _, cand := range expand(ft, src, value) {
			rule, ok := lookup(rules, cand.spelling)
			if !ok {
				return zero, &FlagError{Kind: UnknownFlag, Spelling: cand.spelling}
			}
			res, ferr := resolve(rule, cand, state)
			if ferr != nil {
				return zero, ferr
			}
			if cand.src == viaNextArg && rule.arity == Value {
				cur.advance(1)
			}
			if res.err != nil {
				return zero, &FlagError{
					Kind:      CallbackError,
					Spelling:  cand.spelling,
					ValueDesc: rule.valueDesc,
					Err:       res.err,
				}
			}
			state = res.state
			rules = cfg.rules(state)
			if res.rest {
				handoff = true
				break
			}
		}
		if handoff {
			return cfg.finishRest(cur.rest(), state)
		}
	}
	return state, nil
}

// lookup finds the first rule whose spelling set contains spelling.
func lookup[S any](rules []FlagRule[S], spelling string) (FlagRule[S], bool) {
	for _, r := range rules {
		if r.matches(spelling) {
			return r, true
		}
	}
	return FlagRule[S]{}, false
}

// resolve checks the candidate's value source against the rule's arity and
// invokes the callback. Structural mismatches come back as a *FlagError
// before any callback runs.
func resolve[S any](rule FlagRule[S], cand candidate, state S) (Result[S], *FlagError) {
	switch rule.arity {
	case Value:
		switch cand.src {
		case notLastInGroup:
			return Result[S]{}, &FlagError{
				Kind:      ValueNotLastInGroup,
				Spelling:  cand.spelling,
				ValueDesc: rule.valueDesc,
			}
		case nextArgMissing:
			return Result[S]{}, &FlagError{
				Kind:      MissingFlagValue,
				Spelling:  cand.spelling,
				ValueDesc: rule.valueDesc,
			}
		}
		return rule.onValue(cand.value, state), nil
	default:
		if cand.src == viaEquals {
			return Result[S]{}, &FlagError{
				Kind:     UnexpectedFlagValue,
				Spelling: cand.spelling,
				Value:    cand.value,
			}
		}
		return rule.onSwitch(state), nil
	}
}

func (cfg Config[S]) rules(state S) []FlagRule[S] {
	if cfg.Rules == nil {
		return nil
	}
	return cfg.Rules(state)
}

func (cfg Config[S]) positional(token string, state S) Result[S] {
	if cfg.Positional == nil {
		return Ok(state)
	}
	return cfg.Positional(token, state)
}

func (cfg Config[S]) finishRest(rest []string, state S) (S, error) {
	if cfg.Rest == nil {
		return state, nil
	}
	res := cfg.Rest(rest, state)
	if res.err != nil {
		var zero S
		return zero, &ArgError{Err: res.err}
	}
	return res.state, nil
}
