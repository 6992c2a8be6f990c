// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package parser_test

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/liftscript/liftscript/cst"
	"github.com/liftscript/liftscript/lexer"
	"github.com/liftscript/liftscript/parser"
)

func findChildNode(n cst.Node, kind cst.NodeKind) (cst.Node, bool) {
	for i := 0; i < n.NumChildren(); i++ {
		el := n.ChildAt(i)
		if el.Kind == cst.ElementNode && el.Node.Kind() == kind {
			return el.Node, true
		}
	}
	return cst.Node{}, false
}

func plainText(n cst.Node) string {
	var sb []byte
	var walk func(n cst.Node)
	walk = func(n cst.Node) {
		for i := 0; i < n.NumChildren(); i++ {
			el := n.ChildAt(i)
			if el.Kind == cst.ElementNode {
				walk(el.Node)
			} else {
				sb = append(sb, el.Token.Text()...)
			}
		}
	}
	walk(n)
	return string(sb)
}

func TestParseRoundTrips(t *testing.T) {
	sources := []string{
		"#Squat\n225x5, 135x5\n",
		"#Bench Press\n225 x5\n",
		"#Deadlift\nbw+25 x8\n",
		"#Plank\n1:30\n",
		"#Run\n1:02:03\n",
		"",
	}
	for _, source := range sources {
		tree, _ := parser.Parse(source)
		if got := plainText(tree.Root()); got != source {
			t.Errorf("round-trip(%q) = %q", source, got)
		}
	}
}

func TestParseSimpleWorkout(t *testing.T) {
	tree, errs := parser.Parse("#Squat\n225 x5\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	root := tree.Root()
	if root.Kind() != cst.NodeWorkout {
		t.Fatalf("root kind = %v", root.Kind())
	}
	if root.NumChildren() != 1 {
		t.Fatalf("want 1 set group, got %d", root.NumChildren())
	}
	sg := root.ChildAt(0).Node
	if sg.Kind() != cst.NodeSetGroup {
		t.Fatalf("child kind = %v, want SetGroup", sg.Kind())
	}
}

func TestParseQuantityThenWeight(t *testing.T) {
	_, errs := parser.Parse("#Squat\nx5 225\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestParseBodyweightPlusExtra(t *testing.T) {
	tree, errs := parser.Parse("#Dip\nbw+25 x8\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	root := tree.Root()
	sg, ok := findChildNode(root.ChildAt(0).Node, cst.NodeSet)
	if !ok {
		t.Fatalf("did not find set node")
	}
	if _, ok := findChildNode(sg, cst.NodeWeight); !ok {
		t.Fatalf("did not find weight node")
	}
}

func TestParseLongDuration(t *testing.T) {
	tree, errs := parser.Parse("#Run\nbw 1:02:03\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	root := tree.Root()
	set, ok := findChildNode(root.ChildAt(0).Node, cst.NodeSet)
	if !ok {
		t.Fatalf("did not find set node")
	}
	if _, ok := findChildNode(set, cst.NodeLongDuration); !ok {
		t.Fatalf("expected a LongDuration node")
	}
}

func TestParseMalformedRep(t *testing.T) {
	_, errs := parser.Parse("#Bench Press\n225 xbench")
	want := []parser.ParseError{parser.Expected(6, lexer.Integer)}
	if diff := deep.Equal(errs, want); diff != nil {
		t.Fatalf("errors diff: %v (got %+v)", diff, errs)
	}
}

func TestParseOnlyNewline(t *testing.T) {
	_, errs := parser.Parse("\n")
	want := []parser.ParseError{parser.UnexpectedEof(1)}
	if diff := deep.Equal(errs, want); diff != nil {
		t.Fatalf("errors diff: %v (got %+v)", diff, errs)
	}
}
