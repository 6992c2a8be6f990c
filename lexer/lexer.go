// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package lexer

import "unicode/utf8"

// Lex scans source into a flat token stream covering every byte exactly
// once. There is no error return: unrecognized input becomes Error tokens.
func Lex(source string) []Token {
	s := &scanner{src: source}
	var tokens []Token
	for s.pos < len(s.src) {
		tokens = append(tokens, s.next())
	}
	return tokens
}

type scanner struct {
	src string
	pos int
}

func mkRange(start, end int) TextRange { return NewTextRange(uint32(start), uint32(end)) }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func foldEq(b, want byte) bool {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	return b == want
}

func (s *scanner) next() Token {
	start := s.pos
	rest := s.src[s.pos:]
	b := rest[0]

	switch {
	case len(rest) >= 2 && foldEq(rest[0], 'b') && foldEq(rest[1], 'w'):
		if len(rest) > 2 && isASCIILetter(rest[2]) {
			return s.lexIdent(start)
		}
		s.pos += 2
		return Token{Bodyweight, mkRange(start, s.pos)}

	case foldEq(b, 'x'):
		// x/X never merges into an identifier: see DESIGN.md's
		// "x/X reserved-letter disambiguation" entry.
		s.pos++
		return Token{X, mkRange(start, s.pos)}

	case b == '+':
		s.pos++
		return Token{Plus, mkRange(start, s.pos)}

	case foldEq(b, 'h'):
		return s.lexReservedLetter(start, Hour)

	case foldEq(b, 'm'):
		return s.lexReservedLetter(start, Minute)

	case foldEq(b, 's'):
		return s.lexReservedLetter(start, Second)

	case b == ':':
		s.pos++
		return Token{Colon, mkRange(start, s.pos)}

	case b == '#':
		s.pos++
		return Token{Hash, mkRange(start, s.pos)}

	case b == ',':
		s.pos++
		return Token{Comma, mkRange(start, s.pos)}

	case b == '\n':
		for s.pos < len(s.src) && s.src[s.pos] == '\n' {
			s.pos++
		}
		return Token{Newline, mkRange(start, s.pos)}

	case b == ' ' || b == '\t':
		for s.pos < len(s.src) && (s.src[s.pos] == ' ' || s.src[s.pos] == '\t') {
			s.pos++
		}
		return Token{Space, mkRange(start, s.pos)}

	case isDigit(b):
		return s.lexNumber(start)

	case b == '.':
		s.pos++
		for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
			s.pos++
		}
		return Token{Float, mkRange(start, s.pos)}

	case isASCIILetter(b):
		return s.lexIdent(start)

	default:
		_, size := utf8.DecodeRuneInString(rest)
		if size == 0 {
			size = 1
		}
		s.pos += size
		return Token{Error, mkRange(start, s.pos)}
	}
}

// lexReservedLetter handles the single-character reserved words (h, m, s
// and their uppercase variants). If the letter is immediately followed by
// another ASCII letter, the whole run is an Ident instead (e.g. "Squat").
func (s *scanner) lexReservedLetter(start int, kind TokenKind) Token {
	next := s.pos + 1
	if next < len(s.src) && isASCIILetter(s.src[next]) {
		return s.lexIdent(start)
	}
	s.pos++
	return Token{kind, mkRange(start, s.pos)}
}

// lexIdent consumes an identifier starting at start (which must be an
// ASCII letter). It greedily scans until a comma or newline, trimming
// trailing spaces/tabs so that "Bench Press  " does not swallow its
// trailing whitespace into the identifier.
func (s *scanner) lexIdent(start int) Token {
	i := start + 1
	lastSignificant := i
	for i < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[i:])
		if r == ',' || r == '\n' {
			break
		}
		i += size
		if r != ' ' && r != '\t' {
			lastSignificant = i
		}
	}
	s.pos = lastSignificant
	return Token{Ident, mkRange(start, s.pos)}
}

// lexNumber consumes a digit run, continuing into a Float if a '.'
// follows.
func (s *scanner) lexNumber(start int) Token {
	i := start
	for i < len(s.src) && isDigit(s.src[i]) {
		i++
	}
	if i < len(s.src) && s.src[i] == '.' {
		i++
		for i < len(s.src) && isDigit(s.src[i]) {
			i++
		}
		s.pos = i
		return Token{Float, mkRange(start, s.pos)}
	}
	s.pos = i
	return Token{Integer, mkRange(start, s.pos)}
}
