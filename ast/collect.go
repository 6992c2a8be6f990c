// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package ast

import (
	"github.com/liftscript/liftscript/cst"
	"github.com/liftscript/liftscript/lexer"
)

// identCollector gathers the text and range of every Ident token visited,
// seeding completion candidates directly out of a parsed workout.
type identCollector struct {
	idents []string
	ranges []lexer.TextRange
}

func (c *identCollector) StartTree(cst.Node) error { return nil }
func (c *identCollector) EndTree(cst.Node) error   { return nil }

func (c *identCollector) Token(t cst.Token) error {
	if t.Kind() == lexer.Ident {
		c.idents = append(c.idents, t.Text())
		c.ranges = append(c.ranges, t.Range())
	}
	return nil
}

// CollectIdents walks root and returns the text of every Ident token in
// source order. Callers use this to seed a completion trie with exercise
// names already present in a user's own workout history, without a
// separate exercise-name extraction pass.
func CollectIdents(root cst.Node) []string {
	c := &identCollector{}
	_ = Walk(c, root)
	return c.idents
}

// CollectIdentRanges walks root and returns the source range of every
// Ident token, index-paired with CollectIdents' result, so a caller can
// tag each extracted exercise name with the span it came from (for
// example, via complete.Trie.InsertLocalExercises).
func CollectIdentRanges(root cst.Node) []lexer.TextRange {
	c := &identCollector{}
	_ = Walk(c, root)
	return c.ranges
}
