// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

// Package hir lowers a parsed workout's AST into a normalized semantic
// model: weights and quantities are resolved to well-typed values, with
// Error variants standing in for anything the CST left malformed or
// incomplete. Lowering never fails; it degrades to Error instead.
package hir
