// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package ast_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/liftscript/liftscript/ast"
	"github.com/liftscript/liftscript/parser"
)

func TestWorkoutTypedView(t *testing.T) {
	tree, errs := parser.Parse("#Bench Press\n225 x5\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	w, ok := ast.CastWorkout(tree.Root())
	if !ok {
		t.Fatalf("root did not cast to Workout")
	}
	groups := w.SetGroups()
	if len(groups) != 1 {
		t.Fatalf("want 1 set group, got %d", len(groups))
	}

	ex, ok := groups[0].Exercise()
	if !ok {
		t.Fatalf("set group has no exercise")
	}
	id, ok := ex.Ident()
	if !ok {
		t.Fatalf("exercise has no ident")
	}
	if id.Text() != "Bench Press" {
		t.Fatalf("exercise name = %q", id.Text())
	}

	sets := groups[0].Sets()
	if len(sets) != 1 {
		t.Fatalf("want 1 set, got %d", len(sets))
	}
	weight, ok := sets[0].Weight()
	if !ok {
		t.Fatalf("set has no weight")
	}
	lit, ok := weight.WeightLiteral()
	if !ok {
		t.Fatalf("weight has no literal")
	}
	if lit.Parse() != 225 {
		t.Fatalf("weight = %v", lit.Parse())
	}

	qty, ok := sets[0].Quantity()
	if !ok {
		t.Fatalf("set has no quantity")
	}
	reps, ok := qty.AsReps()
	if !ok {
		t.Fatalf("quantity is not reps")
	}
	amount, ok := reps.Amount()
	if !ok {
		t.Fatalf("reps has no amount")
	}
	if amount.Parse() != 5 {
		t.Fatalf("amount = %v", amount.Parse())
	}
}

func TestBodyweightView(t *testing.T) {
	tree, errs := parser.Parse("#Dip\nbw + 10 x10\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	w, _ := ast.CastWorkout(tree.Root())
	set := w.SetGroups()[0].Sets()[0]
	weight, ok := set.Weight()
	if !ok {
		t.Fatalf("set has no weight")
	}
	if _, ok := weight.Bodyweight(); !ok {
		t.Fatalf("expected a bodyweight marker")
	}
	if _, ok := weight.WeightLiteral(); !ok {
		t.Fatalf("expected a weight literal")
	}
}

func TestLongDurationComponentCounting(t *testing.T) {
	tree, errs := parser.Parse("#Run\nbw 1:02:03\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	w, _ := ast.CastWorkout(tree.Root())
	qty, ok := w.SetGroups()[0].Sets()[0].Quantity()
	if !ok {
		t.Fatalf("set has no quantity")
	}
	long, ok := qty.AsLongDuration()
	if !ok {
		t.Fatalf("quantity is not a long duration")
	}
	hour, ok := long.Hour()
	if !ok || hour.Parse() != 1 {
		t.Fatalf("hour = %v, ok=%v", hour, ok)
	}
	minute, ok := long.Minute()
	if !ok || minute.Parse() != 2 {
		t.Fatalf("minute = %v, ok=%v", minute, ok)
	}
	second, ok := long.Second()
	if !ok || second.Parse() != 3 {
		t.Fatalf("second = %v, ok=%v", second, ok)
	}
}

func TestLongDurationTwoComponents(t *testing.T) {
	tree, errs := parser.Parse("#Plank\nbw 1:30\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	w, _ := ast.CastWorkout(tree.Root())
	qty, _ := w.SetGroups()[0].Sets()[0].Quantity()
	long, ok := qty.AsLongDuration()
	if !ok {
		t.Fatalf("quantity is not a long duration")
	}
	if _, ok := long.Hour(); ok {
		t.Fatalf("did not expect an hour component")
	}
	minute, ok := long.Minute()
	if !ok || minute.Parse() != 1 {
		t.Fatalf("minute = %v, ok=%v", minute, ok)
	}
	second, ok := long.Second()
	if !ok || second.Parse() != 30 {
		t.Fatalf("second = %v, ok=%v", second, ok)
	}
}

func TestPlainPrinterRoundTrips(t *testing.T) {
	source := "#Squat\n225x5, 135x5\n#Bench Press\n225 x5\n"
	tree, _ := parser.Parse(source)
	p := &ast.PlainPrinter{}
	if err := ast.Walk(p, tree.Root()); err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	if p.String() != source {
		t.Fatalf("round trip = %q, want %q", p.String(), source)
	}
}

func TestCstDumpSnapshot(t *testing.T) {
	tree, _ := parser.Parse("#Squat\n225 x5\n")
	snaps.MatchSnapshot(t, ast.Dump(tree.Root()))
}

func TestLookupOffsetFindsEnclosingToken(t *testing.T) {
	source := "#Squat\n225 x5\n"
	tree, _ := parser.Parse(source)
	ctx, ok := ast.LookupOffset(tree.Root(), 8)
	if !ok {
		t.Fatalf("expected a token context at offset 8")
	}
	if ctx.Token.Text() != "225" {
		t.Fatalf("token at offset 8 = %q", ctx.Token.Text())
	}
	if !ctx.HasNode {
		t.Fatalf("expected an enclosing node")
	}
}

func TestLookupOffsetPastEndIsNone(t *testing.T) {
	source := "#Squat\n225 x5\n"
	tree, _ := parser.Parse(source)
	if _, ok := ast.LookupOffset(tree.Root(), uint32(len(source)+5)); ok {
		t.Fatalf("expected no token context past the end of input")
	}
}

func TestCollectIdents(t *testing.T) {
	tree, _ := parser.Parse("#Squat\n225x5\n#Bench Press\n225x5\n")
	idents := ast.CollectIdents(tree.Root())
	want := []string{"Squat", "Bench Press"}
	if len(idents) != len(want) {
		t.Fatalf("idents = %v, want %v", idents, want)
	}
	for i, w := range want {
		if idents[i] != w {
			t.Fatalf("idents[%d] = %q, want %q", i, idents[i], w)
		}
	}
}
