// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

// Package parser implements an error-recovering, event-based recursive
// descent parser over a lexer.Token stream. It records a flat sequence of
// open/close/advance events while parsing, then replays them into a
// cst.Builder to produce a lossless syntax tree alongside a list of
// ParseError diagnostics. Parsing never panics on malformed input: every
// production either matches, or records an error and recovers.
package parser
