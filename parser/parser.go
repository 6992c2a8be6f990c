// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package parser

import (
	"github.com/liftscript/liftscript/cst"
	"github.com/liftscript/liftscript/lexer"
)

type eventKind int

const (
	evOpen eventKind = iota
	evClose
	evAdvance
)

type event struct {
	kind eventKind
	node cst.NodeKind
}

// markOpened marks a not-yet-closed node in the event stream; close
// assigns its final kind.
type markOpened struct{ index int }

// markClosed marks a node that has already been assigned its final kind;
// openBefore can still wrap it in a new parent.
type markClosed struct{ index int }

const initialFuel = 256

// parser holds the mutable state of one parse: position in the token
// stream, the event log being built, accumulated diagnostics, and a fuel
// counter that guards against productions that get stuck without
// consuming input.
type parser struct {
	tokens []lexer.Token
	pos    int
	fuel   int
	events []event
	errors []ParseError
}

func newParser(tokens []lexer.Token) *parser {
	return &parser{tokens: tokens, fuel: initialFuel}
}

func (p *parser) open() markOpened {
	idx := len(p.events)
	p.events = append(p.events, event{kind: evOpen, node: cst.NodeError})
	return markOpened{idx}
}

// openBefore retroactively opens a new node that starts just before m,
// effectively wrapping everything from m onward. Used to promote an
// already-closed node into a child of a new parent.
func (p *parser) openBefore(m markClosed) markOpened {
	p.events = append(p.events, event{})
	copy(p.events[m.index+1:], p.events[m.index:])
	p.events[m.index] = event{kind: evOpen, node: cst.NodeError}
	return markOpened{m.index}
}

func (p *parser) close(m markOpened, kind cst.NodeKind) markClosed {
	p.events[m.index] = event{kind: evOpen, node: kind}
	p.events = append(p.events, event{kind: evClose})
	return markClosed{m.index}
}

func (p *parser) advance() {
	if p.eof() {
		panic("parser: advance called at eof")
	}
	p.fuel = initialFuel
	p.events = append(p.events, event{kind: evAdvance})
	p.pos++
}

func (p *parser) eof() bool { return p.pos >= len(p.tokens) }

// nth returns the kind of the token `look` positions ahead of the cursor,
// or Eof past the end of input. It burns fuel on every call so that a
// production which loops without ever calling advance is caught rather
// than hanging forever.
func (p *parser) nth(look int) lexer.TokenKind {
	if p.fuel == 0 {
		panic("parser: fuel exhausted, a production is stuck without making progress")
	}
	p.fuel--
	idx := p.pos + look
	if idx >= len(p.tokens) {
		return lexer.Eof
	}
	return p.tokens[idx].Kind
}

func (p *parser) at(k lexer.TokenKind) bool   { return p.nth(0) == k }
func (p *parser) atAny(s lexer.TokenSet) bool { return s.Contains(p.nth(0)) }

func (p *parser) eat(k lexer.TokenKind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) eatAny(s lexer.TokenSet) bool {
	if p.atAny(s) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(k lexer.TokenKind) bool {
	if p.eat(k) {
		return true
	}
	p.errors = append(p.errors, Expected(p.pos, k))
	return false
}

func (p *parser) expectAny(s lexer.TokenSet) bool {
	if p.eatAny(s) {
		return true
	}
	p.errors = append(p.errors, ExpectedOneOf(p.pos, s))
	return false
}

// expectAndSkipTill expects k; on failure it opens an error node and
// consumes tokens until one in recovery is reached (or eof), so the
// surrounding production can keep going on the next line.
func (p *parser) expectAndSkipTill(k lexer.TokenKind, recovery lexer.TokenSet) bool {
	if p.expect(k) {
		return true
	}
	m := p.open()
	for !p.atAny(recovery) && !p.eof() {
		p.advance()
	}
	p.close(m, cst.NodeError)
	return false
}

// advanceWithError records a custom diagnostic and consumes one token
// (wrapped in an error node), or records an unexpected-eof diagnostic if
// there is nothing left to consume.
func (p *parser) advanceWithError(msg string) {
	if p.eof() {
		p.errors = append(p.errors, UnexpectedEof(p.pos))
		return
	}
	m := p.open()
	p.errors = append(p.errors, Custom(p.pos, msg))
	p.advance()
	p.close(m, cst.NodeError)
}

var whitespaceSet = lexer.NewTokenSet(lexer.Space, lexer.Newline)

func (p *parser) eatWS() {
	for p.atAny(whitespaceSet) {
		p.advance()
	}
}

// buildTree replays the recorded events into a cst.Builder.
func (p *parser) buildTree(source string) *cst.Tree {
	b := cst.NewBuilder(source)
	ti := 0
	for _, e := range p.events {
		switch e.kind {
		case evOpen:
			b.StartNode(e.node)
		case evClose:
			b.FinishNode()
		case evAdvance:
			tok := p.tokens[ti]
			ti++
			b.AddToken(tok.Kind, tok.Range)
		}
	}
	if ti != len(p.tokens) {
		panic("parser: not all tokens were consumed while building the tree")
	}
	return b.Finish()
}

// Parse lexes and parses source, returning the resulting lossless syntax
// tree together with any recovered diagnostics. It never panics on
// malformed *input* — the panics above are all invariant violations in
// the parser itself.
func Parse(source string) (*cst.Tree, []ParseError) {
	tokens := lexer.Lex(source)
	p := newParser(tokens)
	workout(p)
	return p.buildTree(source), p.errors
}
