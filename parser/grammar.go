// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package parser

import (
	"github.com/liftscript/liftscript/cst"
	"github.com/liftscript/liftscript/lexer"
)

var (
	weightFirst       = lexer.NewTokenSet(lexer.Float, lexer.Integer, lexer.Bodyweight)
	quantityFirst     = lexer.NewTokenSet(lexer.Integer, lexer.X)
	quantityEnd       = lexer.NewTokenSet(lexer.Second, lexer.Minute, lexer.Hour, lexer.Colon, lexer.X)
	simpleDurationEnd = lexer.NewTokenSet(lexer.Second, lexer.Minute, lexer.Hour)
	repRecovery       = lexer.NewTokenSet(lexer.Newline, lexer.Comma)
	setFirst          = lexer.NewTokenSet(lexer.Float, lexer.Integer, lexer.Bodyweight, lexer.X)
)

// workout := (set_group)*
func workout(p *parser) {
	m := p.open()
	for !p.eof() {
		p.eatWS()
		if p.at(lexer.Hash) {
			setGroup(p)
		} else {
			p.advanceWithError("expected a set group")
		}
	}
	p.close(m, cst.NodeWorkout)
}

// set_group := "#" exercise newline set*
func setGroup(p *parser) {
	m := p.open()

	e := p.open()
	p.expect(lexer.Hash)
	p.eat(lexer.Space)
	p.expect(lexer.Ident)
	p.close(e, cst.NodeExercise)

	p.eat(lexer.Space)
	p.expect(lexer.Newline)

	for !p.at(lexer.Hash) && !p.eof() {
		p.eatWS()
		if !p.atAny(setFirst) {
			break
		}
		set(p)
		if !p.eof() {
			p.expect(lexer.Newline)
		}
	}

	p.close(m, cst.NodeSetGroup)
}

// set := (weight quantity?) | (quantity weight?)
func set(p *parser) {
	m := p.open()

	switch {
	case p.atAny(weightFirst) && !quantityEnd.Contains(p.nth(1)):
		weight(p)
		p.eat(lexer.Space)
		if p.atAny(quantityFirst) {
			quantity(p)
		} else if !p.eof() {
			p.advanceWithError("expected quantity")
		}
	case p.atAny(quantityFirst):
		quantity(p)
		p.eat(lexer.Space)
		if p.atAny(weightFirst) {
			weight(p)
		} else if !p.eof() {
			p.advanceWithError("expected weight")
		}
	default:
		p.advanceWithError("expected a set")
	}

	p.eat(lexer.Space)
	p.close(m, cst.NodeSet)
}

// weight := (float | integer | "bw") ("+" (float | integer | "bw"))?
func weight(p *parser) {
	m := p.open()
	p.eatAny(weightFirst)
	p.eat(lexer.Space)
	if p.at(lexer.Plus) {
		p.eat(lexer.Plus)
		p.eat(lexer.Space)
		p.expectAny(weightFirst)
	}
	p.close(m, cst.NodeWeight)
}

// quantity := "x" integer                              -- Reps
//           | integer "x"?                              -- Reps
//           | integer (second|minute|hour)              -- SimpleDuration
//           | integer ":" integer (":" integer)?        -- LongDuration
func quantity(p *parser) {
	m := p.open()
	kind := cst.NodeReps

	switch {
	case p.at(lexer.X):
		p.eat(lexer.X)
		p.expectAndSkipTill(lexer.Integer, repRecovery)
	case p.at(lexer.Integer):
		p.eat(lexer.Integer)
		switch {
		case p.at(lexer.X):
			p.eat(lexer.X)
		case p.atAny(simpleDurationEnd):
			kind = cst.NodeSimpleDuration
			p.eatAny(simpleDurationEnd)
		case p.at(lexer.Colon):
			kind = cst.NodeLongDuration
			p.eat(lexer.Colon)
			p.expect(lexer.Integer)
			if p.at(lexer.Colon) {
				p.eat(lexer.Colon)
				p.expect(lexer.Integer)
			}
		}
	}

	p.close(m, kind)
}
