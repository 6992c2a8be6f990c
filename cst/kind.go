// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package cst

import "fmt"

// NodeKind identifies what a CST node represents.
type NodeKind uint8

const (
	NodeError NodeKind = iota
	NodeWorkout
	NodeExercise
	NodeSetGroup
	NodeSet
	NodeWeight
	NodeReps
	NodeSimpleDuration
	NodeLongDuration
)

var nodeKindNames = [...]string{
	"Error", "Workout", "Exercise", "SetGroup", "Set", "Weight", "Reps",
	"SimpleDuration", "LongDuration",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return fmt.Sprintf("NodeKind(%d)", uint8(k))
}
