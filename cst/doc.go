// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

// Package cst implements the lossless concrete syntax tree: an arena of
// nodes and tokens addressed by small integer handles, built once by a
// Builder and then read many times through cheap, comparable handles.
//
// Every byte of the original source is represented somewhere in the tree
// (as a token), so printing a tree's tokens back to back reproduces the
// source exactly.
package cst
