// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package cst

import "github.com/liftscript/liftscript/lexer"

// Builder constructs a Tree from a sequence of StartNode/AddToken/FinishNode
// calls that must nest correctly (every StartNode needs a matching
// FinishNode, and calls must be balanced before Finish is called).
type Builder struct {
	tree        *Tree
	stack       []int // indices into tree.nodes currently open
	startOffset []uint32
	offset      uint32
}

// NewBuilder returns a Builder that will build a tree over source.
func NewBuilder(source string) *Builder {
	return &Builder{tree: &Tree{source: source}}
}

// StartNode opens a new node of the given kind as a child of whatever node
// is currently open (or as the root, if none is).
func (b *Builder) StartNode(kind NodeKind) {
	idx := len(b.tree.nodes)
	b.tree.nodes = append(b.tree.nodes, nodeRecord{kind: kind})
	if len(b.stack) > 0 {
		parent := b.stack[len(b.stack)-1]
		b.tree.nodes[parent].children = append(b.tree.nodes[parent].children, childRef{kind: ElementNode, idx: idx})
	}
	b.stack = append(b.stack, idx)
	b.startOffset = append(b.startOffset, b.offset)
}

// AddToken appends a token as a child of the currently open node.
func (b *Builder) AddToken(kind lexer.TokenKind, rng lexer.TextRange) {
	if len(b.stack) == 0 {
		panic("cst: AddToken called with no open node")
	}
	idx := len(b.tree.tokens)
	b.tree.tokens = append(b.tree.tokens, tokenRecord{kind: kind, rng: rng})
	parent := b.stack[len(b.stack)-1]
	b.tree.nodes[parent].children = append(b.tree.nodes[parent].children, childRef{kind: ElementToken, idx: idx})
	b.offset = rng.End
}

// FinishNode closes the most recently opened node, computing its range
// from its children (or, if it has none, a zero-width range at the offset
// it was opened at).
func (b *Builder) FinishNode() {
	if len(b.stack) == 0 {
		panic("cst: FinishNode called with no open node")
	}
	idx := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	startOff := b.startOffset[len(b.startOffset)-1]
	b.startOffset = b.startOffset[:len(b.startOffset)-1]

	rec := &b.tree.nodes[idx]
	if len(rec.children) == 0 {
		rec.rng = lexer.EmptyRange(startOff)
		return
	}
	first := rec.children[0]
	last := rec.children[len(rec.children)-1]
	rec.rng = lexer.NewTextRange(elementStart(b.tree, first), elementEnd(b.tree, last))
}

func elementStart(t *Tree, ref childRef) uint32 {
	if ref.kind == ElementNode {
		return t.nodes[ref.idx].rng.Start
	}
	return t.tokens[ref.idx].rng.Start
}

func elementEnd(t *Tree, ref childRef) uint32 {
	if ref.kind == ElementNode {
		return t.nodes[ref.idx].rng.End
	}
	return t.tokens[ref.idx].rng.End
}

// Finish returns the built Tree. It panics if any StartNode call was left
// unmatched by a FinishNode, or if nothing was ever opened.
func (b *Builder) Finish() *Tree {
	if len(b.stack) != 0 {
		panic("cst: Finish called with unclosed nodes")
	}
	if len(b.tree.nodes) == 0 {
		panic("cst: Finish called with no root node")
	}
	b.tree.root = 0
	return b.tree
}
