// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package complete

import (
	"sort"

	"github.com/liftscript/liftscript/lexer"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Tag discriminates where a completion entry came from.
type Tag int

const (
	// Global marks an entry belonging to the caller's general exercise
	// library, inserted via InsertExercises.
	Global Tag = iota
	// Local marks an entry extracted from a specific source range, via
	// InsertLocalExercises. Range is reserved for editor tooling that
	// wants to distinguish "this workout's own exercises" from the
	// global library; it is not otherwise interpreted here.
	Local
)

// Entry pairs a completion's provenance tag with the source range it was
// extracted from, valid only when Tag == Local.
type Entry struct {
	Tag   Tag
	Range lexer.TextRange
}

type trieNode struct {
	edge     string // the byte slice this node's incoming edge consumes
	entry    Entry
	hasEntry bool
	children []*trieNode
}

func (n *trieNode) childStartingWith(b byte) (*trieNode, int) {
	for i, c := range n.children {
		if c.edge[0] == b {
			return c, i
		}
	}
	return nil, -1
}

// Trie is a compressed (radix) trie mapping normalized exercise keys to a
// completion Entry. It is mutable through Insert* and read-only through
// CompleteExercise; concurrent insert/read is not supported by this type,
// callers must serialize their own access.
type Trie struct {
	root trieNode
}

// NewTrie returns an empty completion index.
func NewTrie() *Trie { return &Trie{} }

func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func (n *trieNode) insert(key string, entry Entry) {
	if key == "" {
		n.entry = entry
		n.hasEntry = true
		return
	}
	child, i := n.childStartingWith(key[0])
	if child == nil {
		n.children = append(n.children, &trieNode{edge: key, entry: entry, hasEntry: true})
		return
	}
	cp := commonPrefixLen(child.edge, key)
	if cp == len(child.edge) {
		child.insert(key[cp:], entry)
		return
	}
	// Split child's edge at cp: the existing subtree hangs off the
	// remainder, and the new key either terminates at the split or
	// branches off with its own remainder.
	split := &trieNode{edge: child.edge[:cp]}
	child.edge = child.edge[cp:]
	split.children = []*trieNode{child}
	if cp == len(key) {
		split.entry = entry
		split.hasEntry = true
	} else {
		split.children = append(split.children, &trieNode{edge: key[cp:], entry: entry, hasEntry: true})
	}
	n.children[i] = split
}

// insert normalizes name into a trie key. The trie is keyed purely by the
// normalized string; display names are recovered via Denormalize on the
// way out, so insertion needs no separate display-string storage.
func (t *Trie) insert(name string, entry Entry) {
	t.root.insert(Normalize(name), entry)
}

// InsertExercises adds every name as a Global completion entry.
func (t *Trie) InsertExercises(names []string) {
	for _, name := range names {
		t.insert(name, Entry{Tag: Global})
	}
}

// InsertLocalExercises adds names as Local completion entries, each
// tagged with the byte range of the token it was extracted from. ranges
// is paired with names by index — the shape ast.CollectIdents and
// ast.CollectIdentRanges produce; a name with no range at its index gets
// the zero TextRange.
func (t *Trie) InsertLocalExercises(names []string, ranges []lexer.TextRange) {
	for i, name := range names {
		var rng lexer.TextRange
		if i < len(ranges) {
			rng = ranges[i]
		}
		t.insert(name, Entry{Tag: Local, Range: rng})
	}
}

type completion struct {
	key   string
	entry Entry
}

// findDescendant walks down from n following key, returning the subtree
// whose entries all have key as a prefix, or ok=false if no such subtree
// exists. prefix is the full key-path consumed down to the returned node,
// which may extend past key when the query ends partway through an edge.
func (n *trieNode) findDescendant(key string) (node *trieNode, prefix string, ok bool) {
	if key == "" {
		return n, "", true
	}
	child, _ := n.childStartingWith(key[0])
	if child == nil {
		return nil, "", false
	}
	cp := commonPrefixLen(child.edge, key)
	if cp == len(key) {
		// The query ends partway through (or exactly at) this edge;
		// every entry under child is still a valid completion, and the
		// edge's unmatched tail is part of every collected key.
		return child, child.edge, true
	}
	if cp != len(child.edge) {
		return nil, "", false
	}
	node, prefix, ok = child.findDescendant(key[cp:])
	return node, child.edge + prefix, ok
}

func (n *trieNode) collect(prefix string, out *[]completion) {
	if n.hasEntry {
		*out = append(*out, completion{key: prefix, entry: n.entry})
	}
	// Children are visited in edge-sorted order so the caller's results
	// come back in lexicographic key order without an extra sort pass
	// over potentially large result sets.
	children := append([]*trieNode(nil), n.children...)
	sort.Slice(children, func(i, j int) bool { return children[i].edge < children[j].edge })
	for _, c := range children {
		c.collect(prefix+c.edge, out)
	}
}

// CompleteExercise returns every exercise whose normalized key starts
// with the normalized form of prefix, in lexicographic key order,
// denormalized back to display strings. It is a pure prefix query: if
// prefix has no descendant in the trie, the result is an empty slice, not
// a best-effort substitute. Every returned Completion's denormalized form
// renormalizes to something starting with normalize(prefix). Callers that
// want "did you mean" suggestions for a query with no prefix match should
// call FuzzySuggest explicitly.
func (t *Trie) CompleteExercise(prefix string) []Completion {
	key := Normalize(prefix)
	node, fullPrefix, ok := t.root.findDescendant(key)
	if !ok {
		return nil
	}
	var matches []completion
	node.collect(fullPrefix, &matches)
	out := make([]Completion, len(matches))
	for i, m := range matches {
		out[i] = Completion{Display: Denormalize(m.key), Entry: m.entry}
	}
	return out
}

// FuzzySuggest approximately matches query against every known exercise,
// surfacing "did you mean" candidates for a misspelled name. Unlike
// CompleteExercise, this is not a prefix query and its results need not
// renormalize back to a string starting with normalize(query) — callers
// must invoke it explicitly rather than receive it as an automatic
// fallback.
func (t *Trie) FuzzySuggest(query string) []Completion {
	var all []completion
	t.root.collect("", &all)
	var keys []string
	byKey := make(map[string]completion, len(all))
	for _, m := range all {
		keys = append(keys, m.key)
		byKey[m.key] = m
	}
	ranked := fuzzy.RankFindFold(Normalize(query), keys)
	sort.Sort(ranked)
	out := make([]Completion, 0, len(ranked))
	for _, r := range ranked {
		m := byKey[r.Target]
		out = append(out, Completion{Display: Denormalize(m.key), Entry: m.entry})
	}
	return out
}

// Completion is one result of a CompleteExercise query: the denormalized
// display string together with its provenance.
type Completion struct {
	Display string
	Entry   Entry
}

// String renders a Completion for debugging/CLI output.
func (c Completion) String() string {
	if c.Entry.Tag == Local {
		return c.Display + " (local)"
	}
	return c.Display
}
