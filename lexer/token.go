// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package lexer

import "fmt"

// TokenKind identifies the lexical category of a Token. Variants are
// densely numbered; Error must remain the last variant since TokenSet
// uses it as an upper bound when iterating set members.
type TokenKind uint16

const (
	Bodyweight TokenKind = iota
	X
	Plus
	Integer
	Float
	Hour
	Minute
	Second
	Colon
	Hash
	Comma
	Newline
	Space
	Ident
	Eof
	Error
)

var tokenKindNames = [...]string{
	"Bodyweight", "X", "Plus", "Integer", "Float", "Hour", "Minute", "Second",
	"Colon", "Hash", "Comma", "Newline", "Space", "Ident", "Eof", "Error",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", uint16(k))
}

// Token is a single lexed unit: a kind plus the byte range it occupies in
// the source it was lexed from.
type Token struct {
	Kind  TokenKind
	Range TextRange
}

// Text slices the token's range out of source.
func (t Token) Text(source string) string { return t.Range.Slice(source) }
