// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package parser

import (
	"encoding/json"

	"github.com/liftscript/liftscript/lexer"
)

// ParseErrorKind discriminates the shape of a ParseError.
type ParseErrorKind int

const (
	KindExpected ParseErrorKind = iota
	KindExpectedOneOf
	KindCustom
	KindUnexpectedEof
)

// ParseError is a single recovered parse diagnostic, anchored to the
// token index where it was detected.
type ParseError struct {
	TokenIdx int
	Kind     ParseErrorKind

	Expected    lexer.TokenKind // valid when Kind == KindExpected
	ExpectedSet lexer.TokenSet  // valid when Kind == KindExpectedOneOf
	Message     string          // valid when Kind == KindCustom
}

// Expected builds a "missing a specific token" error.
func Expected(tokenIdx int, kind lexer.TokenKind) ParseError {
	return ParseError{TokenIdx: tokenIdx, Kind: KindExpected, Expected: kind}
}

// ExpectedOneOf builds a "missing one of several tokens" error.
func ExpectedOneOf(tokenIdx int, set lexer.TokenSet) ParseError {
	return ParseError{TokenIdx: tokenIdx, Kind: KindExpectedOneOf, ExpectedSet: set}
}

// Custom builds a free-form diagnostic.
func Custom(tokenIdx int, message string) ParseError {
	return ParseError{TokenIdx: tokenIdx, Kind: KindCustom, Message: message}
}

// UnexpectedEof builds an end-of-input diagnostic.
func UnexpectedEof(tokenIdx int) ParseError {
	return ParseError{TokenIdx: tokenIdx, Kind: KindUnexpectedEof}
}

type errorKindJSON struct {
	Type    string   `json:"type"`
	Token   string   `json:"token,omitempty"`
	Tokens  []string `json:"tokens,omitempty"`
	Message string   `json:"message,omitempty"`
}

type errorJSON struct {
	TokenIdx int           `json:"token_idx"`
	Kind     errorKindJSON `json:"kind"`
}

// MarshalJSON encodes the diagnostic as a snake_case tagged union.
func (e ParseError) MarshalJSON() ([]byte, error) {
	var k errorKindJSON
	switch e.Kind {
	case KindExpected:
		k = errorKindJSON{Type: "expected", Token: e.Expected.String()}
	case KindExpectedOneOf:
		for _, tk := range e.ExpectedSet.Kinds() {
			k.Tokens = append(k.Tokens, tk.String())
		}
		k.Type = "expected_one_of"
	case KindCustom:
		k = errorKindJSON{Type: "custom", Message: e.Message}
	case KindUnexpectedEof:
		k = errorKindJSON{Type: "unexpected_eof"}
	}
	return json.Marshal(errorJSON{TokenIdx: e.TokenIdx, Kind: k})
}
