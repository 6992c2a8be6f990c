// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package lexer

// TextRange is a half-open byte range [Start, End) into some source text.
type TextRange struct {
	Start uint32
	End   uint32
}

// NewTextRange builds a range, panicking if end precedes start.
func NewTextRange(start, end uint32) TextRange {
	if end < start {
		panic("lexer: TextRange end before start")
	}
	return TextRange{Start: start, End: end}
}

// EmptyRange returns a zero-width range at offset.
func EmptyRange(offset uint32) TextRange { return TextRange{Start: offset, End: offset} }

// Len returns the number of bytes the range covers.
func (r TextRange) Len() uint32 { return r.End - r.Start }

// ContainsRange reports whether other lies entirely within r.
func (r TextRange) ContainsRange(other TextRange) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Slice returns the substring of source covered by r.
func (r TextRange) Slice(source string) string { return source[r.Start:r.End] }
