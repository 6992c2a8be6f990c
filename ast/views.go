// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package ast

import (
	"strconv"

	"github.com/liftscript/liftscript/cst"
	"github.com/liftscript/liftscript/lexer"
)

func childNodes(n cst.Node, kind cst.NodeKind) []cst.Node {
	var out []cst.Node
	for _, el := range n.Children() {
		if el.Kind == cst.ElementNode && el.Node.Kind() == kind {
			out = append(out, el.Node)
		}
	}
	return out
}

func findChildNode(n cst.Node, kind cst.NodeKind) (cst.Node, bool) {
	for _, el := range n.Children() {
		if el.Kind == cst.ElementNode && el.Node.Kind() == kind {
			return el.Node, true
		}
	}
	return cst.Node{}, false
}

func childTokens(n cst.Node, kind lexer.TokenKind) []cst.Token {
	var out []cst.Token
	for _, el := range n.Children() {
		if el.Kind == cst.ElementToken && el.Token.Kind() == kind {
			out = append(out, el.Token)
		}
	}
	return out
}

func findChildToken(n cst.Node, kind lexer.TokenKind) (cst.Token, bool) {
	for _, el := range n.Children() {
		if el.Kind == cst.ElementToken && el.Token.Kind() == kind {
			return el.Token, true
		}
	}
	return cst.Token{}, false
}

// Workout is the root view: a sequence of set groups.
type Workout struct{ Node cst.Node }

// CastWorkout checks n against NodeWorkout.
func CastWorkout(n cst.Node) (Workout, bool) {
	if n.Kind() != cst.NodeWorkout {
		return Workout{}, false
	}
	return Workout{n}, true
}

// SetGroups returns every set-group heading in source order.
func (w Workout) SetGroups() []SetGroup {
	var out []SetGroup
	for _, n := range childNodes(w.Node, cst.NodeSetGroup) {
		out = append(out, SetGroup{n})
	}
	return out
}

// SetGroup is a single exercise heading together with its sets.
type SetGroup struct{ Node cst.Node }

func CastSetGroup(n cst.Node) (SetGroup, bool) {
	if n.Kind() != cst.NodeSetGroup {
		return SetGroup{}, false
	}
	return SetGroup{n}, true
}

func (sg SetGroup) Exercise() (Exercise, bool) {
	n, ok := findChildNode(sg.Node, cst.NodeExercise)
	if !ok {
		return Exercise{}, false
	}
	return Exercise{n}, true
}

func (sg SetGroup) Sets() []Set {
	var out []Set
	for _, n := range childNodes(sg.Node, cst.NodeSet) {
		out = append(out, Set{n})
	}
	return out
}

// Exercise names the set group; its sole child of interest is the Ident.
type Exercise struct{ Node cst.Node }

func CastExercise(n cst.Node) (Exercise, bool) {
	if n.Kind() != cst.NodeExercise {
		return Exercise{}, false
	}
	return Exercise{n}, true
}

func (e Exercise) Ident() (Ident, bool) {
	t, ok := findChildToken(e.Node, lexer.Ident)
	if !ok {
		return Ident{}, false
	}
	return Ident{t}, true
}

// Set is one weight/quantity pair within a set group.
type Set struct{ Node cst.Node }

func CastSet(n cst.Node) (Set, bool) {
	if n.Kind() != cst.NodeSet {
		return Set{}, false
	}
	return Set{n}, true
}

func (s Set) Weight() (Weight, bool) {
	n, ok := findChildNode(s.Node, cst.NodeWeight)
	if !ok {
		return Weight{}, false
	}
	return Weight{n}, true
}

func (s Set) Quantity() (Quantity, bool) {
	for _, el := range s.Node.Children() {
		if el.Kind != cst.ElementNode {
			continue
		}
		if q, ok := CastQuantity(el.Node); ok {
			return q, true
		}
	}
	return Quantity{}, false
}

// Weight wraps a Weight node, holding an optional literal and an optional
// bodyweight marker.
type Weight struct{ Node cst.Node }

func CastWeight(n cst.Node) (Weight, bool) {
	if n.Kind() != cst.NodeWeight {
		return Weight{}, false
	}
	return Weight{n}, true
}

// WeightLiteral returns the first Float or Integer token child, if any. In
// "bw + 10" that is the added 10; in "225 + 10" it is 225, and the literal
// after "+" is not returned.
func (w Weight) WeightLiteral() (WeightLiteral, bool) {
	for _, el := range w.Node.Children() {
		if el.Kind != cst.ElementToken {
			continue
		}
		if wl, ok := CastWeightLiteral(el.Token); ok {
			return wl, true
		}
	}
	return WeightLiteral{}, false
}

func (w Weight) Bodyweight() (Bodyweight, bool) {
	t, ok := findChildToken(w.Node, lexer.Bodyweight)
	if !ok {
		return Bodyweight{}, false
	}
	return Bodyweight{t}, true
}

// WeightLiteralKind discriminates the two token kinds a WeightLiteral may wrap.
type WeightLiteralKind int

const (
	WeightLiteralFloat WeightLiteralKind = iota
	WeightLiteralInteger
)

// WeightLiteral is a tagged view over a Float or Integer token.
type WeightLiteral struct {
	Token cst.Token
	Kind  WeightLiteralKind
}

func CastWeightLiteral(t cst.Token) (WeightLiteral, bool) {
	switch t.Kind() {
	case lexer.Float:
		return WeightLiteral{t, WeightLiteralFloat}, true
	case lexer.Integer:
		return WeightLiteral{t, WeightLiteralInteger}, true
	}
	return WeightLiteral{}, false
}

// Parse converts the literal's text to a float64. A failure here indicates
// the lexer tagged text that does not match its own Float/Integer pattern.
func (w WeightLiteral) Parse() float64 {
	f, err := strconv.ParseFloat(w.Token.Text(), 64)
	if err != nil {
		panic("ast: weight literal text does not parse as a number: " + w.Token.Text())
	}
	return f
}

// QuantityKind discriminates the three node kinds a Quantity may wrap.
type QuantityKind int

const (
	QuantityReps QuantityKind = iota
	QuantitySimpleDuration
	QuantityLongDuration
)

// Quantity is a tagged view over a Reps, SimpleDuration, or LongDuration node.
type Quantity struct {
	Node cst.Node
	Kind QuantityKind
}

func CastQuantity(n cst.Node) (Quantity, bool) {
	switch n.Kind() {
	case cst.NodeReps:
		return Quantity{n, QuantityReps}, true
	case cst.NodeSimpleDuration:
		return Quantity{n, QuantitySimpleDuration}, true
	case cst.NodeLongDuration:
		return Quantity{n, QuantityLongDuration}, true
	}
	return Quantity{}, false
}

func (q Quantity) AsReps() (Reps, bool) {
	if q.Kind != QuantityReps {
		return Reps{}, false
	}
	return Reps{q.Node}, true
}

func (q Quantity) AsSimpleDuration() (SimpleDuration, bool) {
	if q.Kind != QuantitySimpleDuration {
		return SimpleDuration{}, false
	}
	return SimpleDuration{q.Node}, true
}

func (q Quantity) AsLongDuration() (LongDuration, bool) {
	if q.Kind != QuantityLongDuration {
		return LongDuration{}, false
	}
	return LongDuration{q.Node}, true
}

// Reps is a bare or "x"-marked rep count.
type Reps struct{ Node cst.Node }

func CastReps(n cst.Node) (Reps, bool) {
	if n.Kind() != cst.NodeReps {
		return Reps{}, false
	}
	return Reps{n}, true
}

func (r Reps) Amount() (Integer, bool) {
	t, ok := findChildToken(r.Node, lexer.Integer)
	if !ok {
		return Integer{}, false
	}
	return Integer{t}, true
}

// SimpleDuration is an integer amount with an optional time unit.
type SimpleDuration struct{ Node cst.Node }

func CastSimpleDuration(n cst.Node) (SimpleDuration, bool) {
	if n.Kind() != cst.NodeSimpleDuration {
		return SimpleDuration{}, false
	}
	return SimpleDuration{n}, true
}

func (d SimpleDuration) Duration() (Integer, bool) {
	t, ok := findChildToken(d.Node, lexer.Integer)
	if !ok {
		return Integer{}, false
	}
	return Integer{t}, true
}

func (d SimpleDuration) Unit() (TimeUnit, bool) {
	for _, el := range d.Node.Children() {
		if el.Kind != cst.ElementToken {
			continue
		}
		if u, ok := CastTimeUnit(el.Token); ok {
			return u, true
		}
	}
	return TimeUnit{}, false
}

// TimeUnitKind discriminates the three token kinds a TimeUnit may wrap.
type TimeUnitKind int

const (
	TimeUnitHour TimeUnitKind = iota
	TimeUnitMinute
	TimeUnitSecond
)

// TimeUnit is a tagged view over an Hour, Minute, or Second token.
type TimeUnit struct {
	Token cst.Token
	Kind  TimeUnitKind
}

func CastTimeUnit(t cst.Token) (TimeUnit, bool) {
	switch t.Kind() {
	case lexer.Hour:
		return TimeUnit{t, TimeUnitHour}, true
	case lexer.Minute:
		return TimeUnit{t, TimeUnitMinute}, true
	case lexer.Second:
		return TimeUnit{t, TimeUnitSecond}, true
	}
	return TimeUnit{}, false
}

// LongDuration holds a colon-separated duration of two or three integer
// components.
type LongDuration struct{ Node cst.Node }

func CastLongDuration(n cst.Node) (LongDuration, bool) {
	if n.Kind() != cst.NodeLongDuration {
		return LongDuration{}, false
	}
	return LongDuration{n}, true
}

// integerChildren determines component assignment by counting Integer
// tokens directly, rather than total child count: whitespace and Colon
// tokens also live among the node's children and must not be conflated
// with the count used to disambiguate hour-present vs. not.
func (d LongDuration) integerChildren() []cst.Token {
	return childTokens(d.Node, lexer.Integer)
}

func (d LongDuration) Hour() (Integer, bool) {
	ints := d.integerChildren()
	if len(ints) < 3 {
		return Integer{}, false
	}
	return Integer{ints[0]}, true
}

func (d LongDuration) Minute() (Integer, bool) {
	ints := d.integerChildren()
	switch len(ints) {
	case 3:
		return Integer{ints[1]}, true
	case 2:
		return Integer{ints[0]}, true
	}
	return Integer{}, false
}

func (d LongDuration) Second() (Integer, bool) {
	ints := d.integerChildren()
	switch len(ints) {
	case 3:
		return Integer{ints[2]}, true
	case 2:
		return Integer{ints[1]}, true
	}
	return Integer{}, false
}

// Ident wraps an Ident token, e.g. an exercise name.
type Ident struct{ Token cst.Token }

func CastIdent(t cst.Token) (Ident, bool) {
	if t.Kind() != lexer.Ident {
		return Ident{}, false
	}
	return Ident{t}, true
}

func (i Ident) Text() string { return i.Token.Text() }

// Bodyweight wraps a Bodyweight token ("bw"/"BW").
type Bodyweight struct{ Token cst.Token }

func CastBodyweight(t cst.Token) (Bodyweight, bool) {
	if t.Kind() != lexer.Bodyweight {
		return Bodyweight{}, false
	}
	return Bodyweight{t}, true
}

// Integer wraps an Integer token.
type Integer struct{ Token cst.Token }

func CastInteger(t cst.Token) (Integer, bool) {
	if t.Kind() != lexer.Integer {
		return Integer{}, false
	}
	return Integer{t}, true
}

func (i Integer) Parse() int64 {
	v, err := strconv.ParseInt(i.Token.Text(), 10, 64)
	if err != nil {
		panic("ast: integer token text does not parse as an integer: " + i.Token.Text())
	}
	return v
}

// Float wraps a Float token.
type Float struct{ Token cst.Token }

func CastFloat(t cst.Token) (Float, bool) {
	if t.Kind() != lexer.Float {
		return Float{}, false
	}
	return Float{t}, true
}

func (f Float) Parse() float64 {
	v, err := strconv.ParseFloat(f.Token.Text(), 64)
	if err != nil {
		panic("ast: float token text does not parse as a number: " + f.Token.Text())
	}
	return v
}
