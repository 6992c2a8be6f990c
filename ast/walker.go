// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/liftscript/liftscript/cst"
	"github.com/liftscript/liftscript/lexer"
)

// Visitor is the walker protocol: three hooks invoked in depth-first order.
// All state lives inside the visitor itself; the tree is never mutated
// during a walk, so traversals are re-entrant and composable.
type Visitor interface {
	StartTree(n cst.Node) error
	EndTree(n cst.Node) error
	Token(t cst.Token) error
}

// Walk performs a depth-first traversal of n, invoking StartTree on entry,
// recursing into children in stored order, then EndTree on exit. The first
// error returned by any hook aborts the traversal and is returned.
func Walk(v Visitor, n cst.Node) error {
	if err := v.StartTree(n); err != nil {
		return err
	}
	for _, el := range n.Children() {
		if el.Kind == cst.ElementNode {
			if err := Walk(v, el.Node); err != nil {
				return err
			}
		} else if err := v.Token(el.Token); err != nil {
			return err
		}
	}
	return v.EndTree(n)
}

// PlainPrinter concatenates every visited token's text, round-tripping the
// original source when walked from a tree's root.
type PlainPrinter struct {
	sb strings.Builder
}

func (p *PlainPrinter) StartTree(cst.Node) error { return nil }
func (p *PlainPrinter) EndTree(cst.Node) error   { return nil }

func (p *PlainPrinter) Token(t cst.Token) error {
	p.sb.WriteString(t.Text())
	return nil
}

// String returns the text accumulated so far.
func (p *PlainPrinter) String() string { return p.sb.String() }

// CstPrinter renders an indented debug dump in the stable CST dump format:
// two spaces per depth level, node lines as "<NodeKind>", token lines as
// "'<text>'" except Space/Newline which report their byte length.
type CstPrinter struct {
	level int
	out   io.Writer
}

// NewCstPrinter returns a printer that writes to out.
func NewCstPrinter(out io.Writer) *CstPrinter {
	return &CstPrinter{level: -1, out: out}
}

func (p *CstPrinter) indent() string { return strings.Repeat("  ", p.level) }

func (p *CstPrinter) StartTree(n cst.Node) error {
	p.level++
	_, err := fmt.Fprintf(p.out, "%s%s\n", p.indent(), n.Kind())
	return err
}

func (p *CstPrinter) EndTree(cst.Node) error {
	p.level--
	return nil
}

func (p *CstPrinter) Token(t cst.Token) error {
	indent := p.indent()
	text := t.Text()
	switch t.Kind() {
	case lexer.Space:
		_, err := fmt.Fprintf(p.out, "%s  Space(%d)\n", indent, len(text))
		return err
	case lexer.Newline:
		_, err := fmt.Fprintf(p.out, "%s  Nl(%d)\n", indent, len(text))
		return err
	default:
		_, err := fmt.Fprintf(p.out, "%s  '%s'\n", indent, text)
		return err
	}
}

// Dump returns the CST dump of n as a string, the form used by the golden
// tests in this package.
func Dump(n cst.Node) string {
	var sb strings.Builder
	_ = Walk(NewCstPrinter(&sb), n)
	return sb.String()
}
