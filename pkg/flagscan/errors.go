// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagscan

import "fmt"

// FlagErrorKind identifies the failure class of a FlagError.
type FlagErrorKind int

const (
	// UnknownFlag: no rule in the active rule set matched the spelling.
	UnknownFlag FlagErrorKind = iota
	// UnexpectedFlagValue: a value was attached with "=" to a switch.
	UnexpectedFlagValue
	// MissingFlagValue: a value flag had neither an "=" suffix nor a
	// following token.
	MissingFlagValue
	// ValueNotLastInGroup: a value flag appeared in a short-flag bundle
	// before the final position.
	ValueNotLastInGroup
	// CallbackError: the rule's own callback returned an error.
	CallbackError
)

func (k FlagErrorKind) String() string {
	switch k {
	case UnknownFlag:
		return "unknown flag"
	case UnexpectedFlagValue:
		return "unexpected flag value"
	case MissingFlagValue:
		return "missing flag value"
	case ValueNotLastInGroup:
		return "value flag not last in group"
	case CallbackError:
		return "flag callback error"
	}
	return "flag error"
}

// FlagError is returned when a flag token cannot be resolved or its rule's
// callback fails. Spelling is the single spelling that failed ("-b", not the
// whole bundle it came from).
type FlagError struct {
	Kind     FlagErrorKind
	Spelling string
	// Value is the attached value, set for UnexpectedFlagValue.
	Value string
	// ValueDesc is the matched rule's value label, when the rule was a
	// value flag.
	ValueDesc string
	// Err is the caller's error, set for CallbackError.
	Err error
}

func (e *FlagError) Error() string {
	switch e.Kind {
	case UnknownFlag:
		return fmt.Sprintf("unknown flag: %s", e.Spelling)
	case UnexpectedFlagValue:
		return fmt.Sprintf("flag %s does not take a value (got %q)", e.Spelling, e.Value)
	case MissingFlagValue:
		if e.ValueDesc != "" {
			return fmt.Sprintf("flag %s requires a value: %s", e.Spelling, e.ValueDesc)
		}
		return fmt.Sprintf("flag %s requires a value", e.Spelling)
	case ValueNotLastInGroup:
		return fmt.Sprintf("flag %s requires a value and must come last in a group", e.Spelling)
	case CallbackError:
		return fmt.Sprintf("flag %s: %v", e.Spelling, e.Err)
	}
	return fmt.Sprintf("flag %s: %s", e.Spelling, e.Kind)
}

func (e *FlagError) Unwrap() error { return e.Err }

// ArgError wraps an error returned by the positional or rest handler. The
// scanner does not interpret the wrapped error; it only records which token
// was being handled. Token is empty when the rest handler failed.
type ArgError struct {
	Token string
	Err   error
}

func (e *ArgError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("argument %q: %v", e.Token, e.Err)
	}
	return e.Err.Error()
}

func (e *ArgError) Unwrap() error { return e.Err }
