// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package lexer

// TokenSet is a fixed-size bitset over TokenKind, const-constructible and
// cheap to copy and compare.
type TokenSet uint32

// NewTokenSet builds a set containing the given kinds.
func NewTokenSet(kinds ...TokenKind) TokenSet {
	var s TokenSet
	for _, k := range kinds {
		s = s.With(k)
	}
	return s
}

// With returns a copy of s with k added.
func (s TokenSet) With(k TokenKind) TokenSet { return s | (1 << uint(k)) }

// Contains reports whether k is a member of s.
func (s TokenSet) Contains(k TokenKind) bool { return s&(1<<uint(k)) != 0 }

// Kinds returns the set's members in declaration order.
func (s TokenSet) Kinds() []TokenKind {
	var out []TokenKind
	for i := TokenKind(0); i <= Error; i++ {
		if s.Contains(i) {
			out = append(out, i)
		}
	}
	return out
}
