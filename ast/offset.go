// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package ast

import (
	"errors"

	"github.com/liftscript/liftscript/cst"
	"github.com/liftscript/liftscript/lexer"
)

// TokenContext is the result of an offset lookup: the token under the
// queried offset and the innermost enclosing node, if any.
type TokenContext struct {
	Token   cst.Token
	Node    cst.Node
	HasNode bool
}

var errFound = errors.New("ast: offset lookup stopped early")

type offsetLookup struct {
	target lexer.TextRange
	stack  []cst.Node
	result TokenContext
}

func (l *offsetLookup) StartTree(n cst.Node) error {
	l.stack = append(l.stack, n)
	return nil
}

func (l *offsetLookup) EndTree(cst.Node) error {
	l.stack = l.stack[:len(l.stack)-1]
	return nil
}

func (l *offsetLookup) Token(t cst.Token) error {
	if t.Range().ContainsRange(l.target) {
		l.result = TokenContext{Token: t}
		if len(l.stack) > 0 {
			l.result.Node = l.stack[len(l.stack)-1]
			l.result.HasNode = true
		}
		return errFound
	}
	return nil
}

// LookupOffset finds the innermost (token, enclosing node) pair whose token
// range contains the zero-width range at offset. It reports false if no
// token contains offset (for example, past the end of input).
func LookupOffset(root cst.Node, offset uint32) (TokenContext, bool) {
	l := &offsetLookup{target: lexer.EmptyRange(offset)}
	err := Walk(l, root)
	if err == nil {
		return TokenContext{}, false
	}
	if !errors.Is(err, errFound) {
		return TokenContext{}, false
	}
	return l.result, true
}
