// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

// Package complete implements the exercise-name autocomplete index: a
// compressed (radix) trie keyed by normalized exercise names, a
// normalization/denormalization pair for those keys, and an opt-in fuzzy
// matcher a caller can invoke separately when a prefix query comes back
// empty.
package complete
