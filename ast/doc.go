// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

// Package ast provides typed views over a cst.Tree: checked casts from raw
// node/token handles to semantically-named accessors, a depth-first walker
// protocol, and an offset-to-token lookup used by editor tooling.
package ast
