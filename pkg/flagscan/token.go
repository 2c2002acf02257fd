// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagscan

import "strings"

// terminator ends flag classification for the remainder of the scan.
const terminator = "--"

// flagToken is a classified flag-shaped token, dashes stripped.
type flagToken struct {
	name      string // name portion, no dashes, no "=" suffix
	double    bool   // "--name" rather than "-name"
	hasEquals bool   // an "=" suffix was present (possibly empty)
	attached  string // the "=" suffix text
}

// classifyFlag reports whether tok has flag shape: one or two leading
// dashes, a name whose first character is neither "-" nor "=" and whose
// remainder contains no "=", then an optional "=" plus arbitrary suffix.
// "-", "---x", "-=v" and "--=v" all fail and are positional. The terminator
// "--" must be checked before calling this.
func classifyFlag(tok string) (flagToken, bool) {
	dashes := 0
	for dashes < len(tok) && tok[dashes] == '-' {
		dashes++
	}
	if dashes < 1 || dashes > 2 {
		return flagToken{}, false
	}
	rest := tok[dashes:]
	if rest == "" || rest[0] == '=' {
		return flagToken{}, false
	}
	ft := flagToken{double: dashes == 2}
	if i := strings.IndexByte(rest, '='); i >= 0 {
		ft.name = rest[:i]
		ft.hasEquals = true
		ft.attached = rest[i+1:]
	} else {
		ft.name = rest
	}
	return ft, true
}

// valueSource says where a matched flag's value would come from.
type valueSource int

const (
	// viaEquals: an "=" suffix was attached to the token itself.
	viaEquals valueSource = iota
	// viaNextArg: the following token is available as the value. It is
	// consumed only if the matched rule actually takes a value.
	viaNextArg
	// nextArgMissing: no "=" suffix and no following token.
	nextArgMissing
	// notLastInGroup: the candidate sits before the end of a short-flag
	// bundle and can carry no value at all.
	notLastInGroup
)

// candidate is one resolvable flag spelling with its value source.
type candidate struct {
	spelling string
	src      valueSource
	value    string // set for viaEquals and viaNextArg
}

// expand turns a classified flag token into resolver candidates. Single-dash
// names are split per character into a short-flag bundle; every candidate
// but the last is tagged notLastInGroup. Double-dash names are a single
// candidate. src and value describe where the (sole or final) candidate's
// value would come from.
func expand(ft flagToken, src valueSource, value string) []candidate {
	if ft.double {
		return []candidate{{spelling: "--" + ft.name, src: src, value: value}}
	}
	runes := []rune(ft.name)
	cands := make([]candidate, len(runes))
	for i, r := range runes {
		cands[i] = candidate{spelling: "-" + string(r), src: notLastInGroup}
	}
	cands[len(cands)-1].src = src
	cands[len(cands)-1].value = value
	return cands
}

// cursor is an explicit position over the token list. Lookahead consumption
// is a deliberate two-step: peek the next token, then commit the advance
// only once the matched rule is known to take a value.
type cursor struct {
	args []string
	pos  int
}

func (c *cursor) done() bool { return c.pos >= len(c.args) }

// current returns the token under the cursor.
func (c *cursor) current() string { return c.args[c.pos] }

// peek returns the token after the current one, if any.
func (c *cursor) peek() (string, bool) {
	if c.pos+1 < len(c.args) {
		return c.args[c.pos+1], true
	}
	return "", false
}

// advance moves the cursor forward n positions.
func (c *cursor) advance(n int) { c.pos += n }

// rest returns all tokens strictly after the current position.
func (c *cursor) rest() []string { return c.args[c.pos+1:] }
