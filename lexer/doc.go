// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

// Package lexer turns workout-log source text into a flat token stream.
//
// It owns the primitive types that the rest of the pipeline shares:
// TokenKind, TextRange and TokenSet. Lexing never fails — every byte of
// input ends up covered by exactly one token, with unrecognized input
// represented by the Error token kind rather than an error return.
package lexer
