// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package hir

import (
	"encoding/json"

	"github.com/liftscript/liftscript/ast"
	"github.com/liftscript/liftscript/cst"
)

// Workout is the top-level lowered form of a parsed source text.
type Workout struct {
	SetGroups []SetGroup `json:"set_groups"`
}

// SetGroup is one exercise heading together with its lowered sets.
type SetGroup struct {
	Exercise string `json:"exercise,omitempty"` // empty if the heading has no Ident
	Sets     []Set  `json:"sets"`
}

// Set pairs a lowered weight and quantity, either of which may be absent.
type Set struct {
	Weight   *Weight   `json:"weight,omitempty"`
	Quantity *Quantity `json:"quantity,omitempty"`
}

// WeightKind discriminates the shape a lowered Weight takes.
type WeightKind int

const (
	WeightError WeightKind = iota
	WeightStraight
	WeightBodyweight
)

func (k WeightKind) String() string {
	switch k {
	case WeightStraight:
		return "straight"
	case WeightBodyweight:
		return "bodyweight"
	default:
		return "error"
	}
}

// Weight is the lowered form of a Weight node.
//
//   - WeightStraight: Amount holds the plain load.
//   - WeightBodyweight: HasAmount reports whether an added literal
//     ("bw + 10") was present; if so, Amount holds it.
//   - WeightError: neither a literal nor a bodyweight marker was present.
type Weight struct {
	Kind      WeightKind
	Amount    float64
	HasAmount bool
}

type weightJSON struct {
	Kind      string  `json:"kind"`
	Amount    float64 `json:"amount,omitempty"`
	HasAmount bool    `json:"has_amount,omitempty"`
}

// MarshalJSON encodes Weight as a snake_case tagged union whose "kind"
// field names the variant.
func (w Weight) MarshalJSON() ([]byte, error) {
	return json.Marshal(weightJSON{Kind: w.Kind.String(), Amount: w.Amount, HasAmount: w.HasAmount})
}

// QuantityKind discriminates the shape a lowered Quantity takes.
type QuantityKind int

const (
	QuantityError QuantityKind = iota
	QuantityDuration
	QuantityReps
)

func (k QuantityKind) String() string {
	switch k {
	case QuantityDuration:
		return "duration"
	case QuantityReps:
		return "reps"
	default:
		return "error"
	}
}

// Quantity is the lowered form of a Reps, SimpleDuration, or LongDuration
// node. Duration values are always expressed in seconds.
type Quantity struct {
	Kind     QuantityKind
	Seconds  uint64
	RepCount uint64
}

type quantityJSON struct {
	Kind     string `json:"kind"`
	Seconds  uint64 `json:"seconds,omitempty"`
	RepCount uint64 `json:"rep_count,omitempty"`
}

// MarshalJSON encodes Quantity as a snake_case tagged union.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(quantityJSON{Kind: q.Kind.String(), Seconds: q.Seconds, RepCount: q.RepCount})
}

// LowerWorkout lowers every set group of w in source order.
func LowerWorkout(w ast.Workout) Workout {
	var out Workout
	for _, sg := range w.SetGroups() {
		out.SetGroups = append(out.SetGroups, lowerSetGroup(sg))
	}
	return out
}

// Lower casts root to a Workout view and lowers it, reporting false when
// root is not a Workout node.
func Lower(root cst.Node) (Workout, bool) {
	w, ok := ast.CastWorkout(root)
	if !ok {
		return Workout{}, false
	}
	return LowerWorkout(w), true
}

func lowerSetGroup(sg ast.SetGroup) SetGroup {
	var out SetGroup
	if ex, ok := sg.Exercise(); ok {
		if id, ok := ex.Ident(); ok {
			out.Exercise = id.Text()
		}
	}
	for _, s := range sg.Sets() {
		out.Sets = append(out.Sets, lowerSet(s))
	}
	return out
}

func lowerSet(s ast.Set) Set {
	var out Set
	if w, ok := s.Weight(); ok {
		weight := lowerWeight(w)
		out.Weight = &weight
	}
	if q, ok := s.Quantity(); ok {
		quantity := lowerQuantity(q)
		out.Quantity = &quantity
	}
	return out
}

func lowerWeight(w ast.Weight) Weight {
	lit, hasLit := w.WeightLiteral()
	_, hasBW := w.Bodyweight()

	switch {
	case hasLit && hasBW:
		return Weight{Kind: WeightBodyweight, Amount: lit.Parse(), HasAmount: true}
	case hasLit:
		return Weight{Kind: WeightStraight, Amount: lit.Parse()}
	case hasBW:
		return Weight{Kind: WeightBodyweight}
	default:
		return Weight{Kind: WeightError}
	}
}

func lowerQuantity(q ast.Quantity) Quantity {
	switch {
	case q.Kind == ast.QuantityReps:
		reps, _ := q.AsReps()
		return lowerReps(reps)
	case q.Kind == ast.QuantitySimpleDuration:
		d, _ := q.AsSimpleDuration()
		return lowerSimpleDuration(d)
	default:
		d, _ := q.AsLongDuration()
		return lowerLongDuration(d)
	}
}

func lowerReps(r ast.Reps) Quantity {
	amount, ok := r.Amount()
	if !ok {
		return Quantity{Kind: QuantityError}
	}
	return Quantity{Kind: QuantityReps, RepCount: uint64(amount.Parse())}
}

func lowerSimpleDuration(d ast.SimpleDuration) Quantity {
	amount, ok := d.Duration()
	if !ok {
		return Quantity{Kind: QuantityError}
	}
	multiplier := uint64(1)
	if unit, ok := d.Unit(); ok {
		switch unit.Kind {
		case ast.TimeUnitHour:
			multiplier = 3600
		case ast.TimeUnitMinute:
			multiplier = 60
		case ast.TimeUnitSecond:
			multiplier = 1
		}
	}
	return Quantity{Kind: QuantityDuration, Seconds: uint64(amount.Parse()) * multiplier}
}

func lowerLongDuration(d ast.LongDuration) Quantity {
	var hour, minute, second uint64
	if h, ok := d.Hour(); ok {
		hour = uint64(h.Parse())
	}
	if m, ok := d.Minute(); ok {
		minute = uint64(m.Parse())
	}
	if s, ok := d.Second(); ok {
		second = uint64(s.Parse())
	}
	return Quantity{Kind: QuantityDuration, Seconds: hour*3600 + minute*60 + second}
}
