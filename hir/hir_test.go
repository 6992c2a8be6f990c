// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package hir_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftscript/liftscript/ast"
	"github.com/liftscript/liftscript/hir"
	"github.com/liftscript/liftscript/parser"
)

func lower(t *testing.T, source string) hir.Workout {
	t.Helper()
	tree, _ := parser.Parse(source)
	w, ok := ast.CastWorkout(tree.Root())
	require.True(t, ok, "root did not cast to Workout")
	return hir.LowerWorkout(w)
}

func TestLowerSimpleWorkout(t *testing.T) {
	got := lower(t, "#Bench Press\n225 x5\n")

	want := hir.Workout{
		SetGroups: []hir.SetGroup{
			{
				Exercise: "Bench Press",
				Sets: []hir.Set{
					{
						Weight:   &hir.Weight{Kind: hir.WeightStraight, Amount: 225},
						Quantity: &hir.Quantity{Kind: hir.QuantityReps, RepCount: 5},
					},
				},
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("lowered workout mismatch (-want +got):\n%s", diff)
	}
}

func TestLowerBodyweightPlusExtra(t *testing.T) {
	got := lower(t, "#Pull-ups\nbw + 10 x10\n")
	require.Len(t, got.SetGroups, 1)
	require.Len(t, got.SetGroups[0].Sets, 1)

	set := got.SetGroups[0].Sets[0]
	require.NotNil(t, set.Weight)
	assert.Equal(t, hir.WeightBodyweight, set.Weight.Kind)
	assert.True(t, set.Weight.HasAmount)
	assert.Equal(t, 10.0, set.Weight.Amount)

	require.NotNil(t, set.Quantity)
	assert.Equal(t, hir.QuantityReps, set.Quantity.Kind)
	assert.Equal(t, uint64(10), set.Quantity.RepCount)
}

func TestLowerLongDuration(t *testing.T) {
	got := lower(t, "#Planks\nbw 1:30:25\n")
	set := got.SetGroups[0].Sets[0]

	require.NotNil(t, set.Weight)
	assert.Equal(t, hir.WeightBodyweight, set.Weight.Kind)
	assert.False(t, set.Weight.HasAmount)

	require.NotNil(t, set.Quantity)
	assert.Equal(t, hir.QuantityDuration, set.Quantity.Kind)
	assert.Equal(t, uint64(5425), set.Quantity.Seconds) // 1*3600 + 30*60 + 25
}

func TestLowerBareTrailingIntegerDefaultsToReps(t *testing.T) {
	// Once a weight has claimed the leading integer, a second bare integer
	// with nothing (x/unit/colon) following it is a plain rep count.
	got := lower(t, "#Bench Press\n225 30\n")
	set := got.SetGroups[0].Sets[0]
	require.NotNil(t, set.Weight)
	assert.Equal(t, hir.WeightStraight, set.Weight.Kind)
	assert.Equal(t, 225.0, set.Weight.Amount)

	require.NotNil(t, set.Quantity)
	assert.Equal(t, hir.QuantityReps, set.Quantity.Kind)
	assert.Equal(t, uint64(30), set.Quantity.RepCount)
}

func TestLowerSimpleDurationWithUnit(t *testing.T) {
	got := lower(t, "#Plank\nbw 30s\n")
	set := got.SetGroups[0].Sets[0]
	require.NotNil(t, set.Quantity)
	assert.Equal(t, hir.QuantityDuration, set.Quantity.Kind)
	assert.Equal(t, uint64(30), set.Quantity.Seconds)
}

func TestLowerMalformedRepYieldsErrorQuantity(t *testing.T) {
	tree, errs := parser.Parse("#Bench Press\n225 xbench")
	require.Len(t, errs, 1)

	w, ok := ast.CastWorkout(tree.Root())
	require.True(t, ok)
	got := hir.LowerWorkout(w)

	set := got.SetGroups[0].Sets[0]
	require.NotNil(t, set.Quantity)
	assert.Equal(t, hir.QuantityError, set.Quantity.Kind)
}

func TestLowerBareIntegerIsWeightWithoutQuantity(t *testing.T) {
	// A bare Integer at the start of a set is greedily claimed as a weight
	// (it is in WEIGHT_FIRST); with nothing after it to serve as a
	// quantity, the set carries a weight but no quantity node, and the
	// parser records a diagnostic for the missing quantity.
	tree, errs := parser.Parse("#Bench Press\n225\n")
	require.Len(t, errs, 1)

	w, ok := ast.CastWorkout(tree.Root())
	require.True(t, ok)
	got := hir.LowerWorkout(w)

	set := got.SetGroups[0].Sets[0]
	require.NotNil(t, set.Weight)
	assert.Equal(t, hir.WeightStraight, set.Weight.Kind)
	assert.Nil(t, set.Quantity)
}
