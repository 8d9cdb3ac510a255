// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lsystem

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/maps"
)

// Grammar maps a single symbol to its replacement string.
// Replacements may be empty and may contain any characters,
// including symbols that have no rule of their own.
// Rules are not checked for cycles; a rule that references
// itself grows the string exponentially with the level.
type Grammar map[rune]string

// NewGrammar returns a [Grammar] from the given direct mapping.
// Every key must be exactly one character long.
func NewGrammar(rules map[string]string) (Grammar, error) {
	g := make(Grammar, len(rules))
	for k, v := range rules {
		r, n := utf8.DecodeRuneInString(k)
		if n == 0 || n != len(k) || r == utf8.RuneError {
			return nil, fmt.Errorf("lsystem.NewGrammar: rule symbol %q is not a single character", k)
		}
		g[r] = v
	}
	return g, nil
}

// ParseGrammar returns a [Grammar] from a string of whitespace-separated
// tokens read as alternating symbol and replacement pairs, for example
// "F F+F-F-F+F X F[+X]". An odd trailing token has no replacement and
// is dropped. A symbol token longer than one character could never
// match a single symbol of the string being expanded, so it is also
// dropped.
func ParseGrammar(rules string) Grammar {
	tokens := strings.Fields(rules)
	g := make(Grammar, len(tokens)/2)
	for i := 0; i+1 < len(tokens); i += 2 {
		sym, rep := tokens[i], tokens[i+1]
		r, n := utf8.DecodeRuneInString(sym)
		if n != len(sym) {
			slog.Debug("lsystem: dropping multi-character rule symbol", "symbol", sym)
			continue
		}
		g[r] = rep
	}
	if len(tokens)%2 != 0 {
		slog.Debug("lsystem: dropping unpaired trailing rule token", "token", tokens[len(tokens)-1])
	}
	return g
}

// String returns the grammar as a token string in symbol order,
// which [ParseGrammar] reads back as long as no replacement is
// empty or contains whitespace.
func (g Grammar) String() string {
	syms := maps.Keys(g)
	slices.Sort(syms)
	var b strings.Builder
	for i, s := range syms {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(s)
		b.WriteByte(' ')
		b.WriteString(g[s])
	}
	return b.String()
}

// Expand applies the grammar to start level times. In each level
// every symbol of the current string is replaced by its rule, or kept
// if it has none, and all replacements in a level are taken from the
// string as it was before that level. A level of 0 or less returns
// start unchanged. There is no limit on the length of the result.
func Expand(start string, g Grammar, level int) string {
	s := start
	var b strings.Builder
	for i := 0; i < level; i++ {
		b.Reset()
		b.Grow(len(s))
		for _, c := range s {
			if rep, ok := g[c]; ok {
				b.WriteString(rep)
			} else {
				b.WriteRune(c)
			}
		}
		s = b.String()
	}
	return s
}
