package trie

import (
	"iter"
	"sort"
	"strings"
)

// Builder accumulates words into a node table. The zero value is not ready
// for use; call NewBuilder.
type Builder struct {
	nodes []node
	words int
}

// NewBuilder returns a Builder holding only the root node.
func NewBuilder() *Builder {
	return &Builder{nodes: []node{{}}}
}

// Add inserts word, lower-cased. Empty words are ignored and duplicates are
// idempotent. No other validation is performed.
// Complexity: O(len(word) × log σ) plus edge insertion.
func (b *Builder) Add(word string) {
	if word == "" {
		return
	}
	word = strings.ToLower(word)

	idx := rootIndex
	for i := 0; i < len(word); i++ {
		c := word[i]
		n := &b.nodes[idx]
		pos := n.search(c)
		if pos < len(n.edges) && n.edges[pos].label == c {
			idx = n.edges[pos].child
			continue
		}
		// Append the child first: growing b.nodes may move n.
		child := int32(len(b.nodes))
		b.nodes = append(b.nodes, node{})
		n = &b.nodes[idx]
		n.edges = append(n.edges, edge{})
		copy(n.edges[pos+1:], n.edges[pos:])
		n.edges[pos] = edge{label: c, child: child}
		idx = child
	}
	if !b.nodes[idx].terminal {
		b.nodes[idx].terminal = true
		b.words++
	}
}

// Len returns the number of distinct words added so far.
func (b *Builder) Len() int {
	return b.words
}

// Build freezes the accumulated words into a Dictionary. The Builder is
// reset and may be reused; the returned Dictionary shares nothing with it.
func (b *Builder) Build() *Dictionary {
	d := &Dictionary{nodes: b.nodes, words: b.words}
	b.nodes = []node{{}}
	b.words = 0

	return d
}

// Dictionary is an immutable trie over lower-cased words.
type Dictionary struct {
	nodes []node
	words int
}

// Build constructs a Dictionary from words.
func Build(words []string) *Dictionary {
	b := NewBuilder()
	for _, w := range words {
		b.Add(w)
	}

	return b.Build()
}

// BuildSeq constructs a Dictionary from a word sequence.
func BuildSeq(seq iter.Seq[string]) *Dictionary {
	b := NewBuilder()
	for w := range seq {
		b.Add(w)
	}

	return b.Build()
}

// Contains reports whether word is in the dictionary. The query is
// lower-cased first, matching the normalization applied by Add.
// Complexity: O(len(word) × log σ).
func (d *Dictionary) Contains(word string) bool {
	_, st := d.Cursor().Advance(strings.ToLower(word))

	return st.IsMatch()
}

// HasPrefix reports whether any word starts with prefix (lower-cased).
// A word counts as its own prefix.
func (d *Dictionary) HasPrefix(prefix string) bool {
	_, st := d.Cursor().Advance(strings.ToLower(prefix))

	return st != NoMatch
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return d.words
}

// Words yields every word in ascending byte order.
func (d *Dictionary) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		d.walk(rootIndex, make([]byte, 0, 16), yield)
	}
}

// walk visits the subtree at idx in label order, stopping when yield does.
func (d *Dictionary) walk(idx int32, buf []byte, yield func(string) bool) bool {
	n := &d.nodes[idx]
	if n.terminal && !yield(string(buf)) {
		return false
	}
	for _, e := range n.edges {
		if !d.walk(e.child, append(buf, e.label), yield) {
			return false
		}
	}

	return true
}

// Cursor returns a cursor positioned at the root.
func (d *Dictionary) Cursor() Cursor {
	return Cursor{dict: d, idx: rootIndex}
}

// search returns the position of label c in n.edges, or where it would go.
func (n *node) search(c byte) int {
	return sort.Search(len(n.edges), func(i int) bool {
		return n.edges[i].label >= c
	})
}

// child returns the node reached from n under label c.
func (n *node) child(c byte) (int32, bool) {
	pos := n.search(c)
	if pos < len(n.edges) && n.edges[pos].label == c {
		return n.edges[pos].child, true
	}

	return invalidIndex, false
}
