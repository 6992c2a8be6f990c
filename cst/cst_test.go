// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package cst_test

import (
	"testing"

	"github.com/liftscript/liftscript/cst"
	"github.com/liftscript/liftscript/lexer"
)

func TestBuilderRoundTrip(t *testing.T) {
	source := "#Squat\n"
	b := cst.NewBuilder(source)
	b.StartNode(cst.NodeWorkout)
	b.StartNode(cst.NodeSetGroup)
	b.StartNode(cst.NodeExercise)
	b.AddToken(lexer.Hash, lexer.NewTextRange(0, 1))
	b.AddToken(lexer.Ident, lexer.NewTextRange(1, 6))
	b.FinishNode()
	b.AddToken(lexer.Newline, lexer.NewTextRange(6, 7))
	b.FinishNode()
	b.FinishNode()
	tree := b.Finish()

	root := tree.Root()
	if root.Kind() != cst.NodeWorkout {
		t.Fatalf("root kind = %v, want Workout", root.Kind())
	}
	if root.Range() != lexer.NewTextRange(0, 7) {
		t.Fatalf("root range = %v, want [0,7)", root.Range())
	}

	var rebuilt []byte
	var walk func(n cst.Node)
	walk = func(n cst.Node) {
		for i := 0; i < n.NumChildren(); i++ {
			el := n.ChildAt(i)
			if el.Kind == cst.ElementNode {
				walk(el.Node)
			} else {
				rebuilt = append(rebuilt, el.Token.Text()...)
			}
		}
	}
	walk(root)
	if string(rebuilt) != source {
		t.Fatalf("round-trip = %q, want %q", rebuilt, source)
	}
}

func TestEmptyNodeGetsZeroWidthRange(t *testing.T) {
	b := cst.NewBuilder("")
	b.StartNode(cst.NodeWorkout)
	b.FinishNode()
	tree := b.Finish()
	if tree.Root().Range() != lexer.EmptyRange(0) {
		t.Fatalf("range = %v, want empty range at 0", tree.Root().Range())
	}
}

func TestNodeContainment(t *testing.T) {
	source := "#Squat\n225 x5\n"
	tokens := lexer.Lex(source)
	b := cst.NewBuilder(source)
	b.StartNode(cst.NodeWorkout)
	b.StartNode(cst.NodeSetGroup)
	b.StartNode(cst.NodeExercise)
	b.AddToken(tokens[0].Kind, tokens[0].Range) // Hash
	b.AddToken(tokens[1].Kind, tokens[1].Range) // Ident
	b.FinishNode()
	b.AddToken(tokens[2].Kind, tokens[2].Range) // Newline
	b.StartNode(cst.NodeSet)
	b.StartNode(cst.NodeWeight)
	b.AddToken(tokens[3].Kind, tokens[3].Range) // Integer
	b.FinishNode()
	b.AddToken(tokens[4].Kind, tokens[4].Range) // Space
	b.StartNode(cst.NodeReps)
	b.AddToken(tokens[5].Kind, tokens[5].Range) // X
	b.AddToken(tokens[6].Kind, tokens[6].Range) // Integer
	b.FinishNode()
	b.FinishNode()
	b.AddToken(tokens[7].Kind, tokens[7].Range) // Newline
	b.FinishNode()
	b.FinishNode()
	tree := b.Finish()

	root := tree.Root()
	for i := 0; i < root.NumChildren(); i++ {
		child := root.ChildAt(i)
		if child.Kind != cst.ElementNode {
			continue
		}
		if !root.Range().ContainsRange(child.Node.Range()) {
			t.Fatalf("child %v not contained in root range %v", child.Node.Range(), root.Range())
		}
	}
}
