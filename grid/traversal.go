package grid

import (
	"iter"
	"unicode/utf8"

	"github.com/katalvlaran/boggle/trie"
)

// frame is one cell on the current path.
type frame struct {
	cell   int         // cell index on the board
	next   int         // next position in the cell's neighbor list to try
	cursor trie.Cursor // dictionary position after consuming this cell's tile
	status trie.Status // status of cursor, never NoMatch
}

// Traversal enumerates dictionary words along simple board paths. It is a
// resumable depth-first search: each call to Next runs until the next word
// is found and then returns, keeping the frame stack for the following call.
//
// Invariants between calls: visited marks exactly the cells on the stack,
// and buf is the concatenation of their tiles in stack order.
//
// A Traversal borrows its Grid and Dictionary read-only and is not safe for
// concurrent use; give each goroutine its own.
type Traversal struct {
	grid    *Grid
	dict    *trie.Dictionary
	opts    Options
	buf     []byte
	stack   []frame
	visited []bool
	start   int // next start cell to seed from
	done    bool
}

// StartTraversal returns a Traversal over g bound to d, positioned before
// the first word. A nil d behaves like an empty dictionary.
func (g *Grid) StartTraversal(d *trie.Dictionary, opts ...Option) *Traversal {
	topts := DefaultOptions()
	for _, fn := range opts {
		fn(&topts)
	}

	return &Traversal{
		grid:    g,
		dict:    d,
		opts:    topts,
		buf:     make([]byte, 0, 2*g.Len()),
		stack:   make([]frame, 0, g.Len()),
		visited: make([]bool, g.Len()),
	}
}

// Next returns the next word and true, or "" and false once every start
// cell has been exhausted. After the first false it keeps returning false.
//
// Words come out in depth-first order: start cells ascending, neighbors in
// NW, N, NE, W, E, SW, S, SE order, a word before its extensions.
func (t *Traversal) Next() (string, bool) {
	for !t.done {
		// Seed: begin a new path from the next start cell.
		if len(t.stack) == 0 {
			if t.start == t.grid.Len() {
				t.done = true
				break
			}
			cell := t.start
			t.start++
			if t.push(cell, t.dict.Cursor()) {
				return string(t.buf), true
			}
			continue
		}

		// Extend: push the next unvisited neighbor of the top frame, or pop it.
		top := &t.stack[len(t.stack)-1]
		nb := -1
		if top.status.IsPrefix() && !t.atMaxLength() {
			nbs := t.grid.neighbors[top.cell]
			for top.next < len(nbs) {
				c := nbs[top.next]
				top.next++
				if !t.visited[c] {
					nb = c
					break
				}
			}
		}
		if nb < 0 {
			t.pop()
			continue
		}
		if t.push(nb, top.cursor) {
			return string(t.buf), true
		}
	}

	return "", false
}

// push advances parent by the tile at cell. On NoMatch the branch is pruned
// and nothing changes. Otherwise the frame is pushed and push reports
// whether the new path spells a word that should be yielded.
func (t *Traversal) push(cell int, parent trie.Cursor) bool {
	key := t.grid.keys[cell]
	cur, st := parent.Advance(key)
	if st == trie.NoMatch {
		return false
	}
	t.stack = append(t.stack, frame{cell: cell, cursor: cur, status: st})
	t.visited[cell] = true
	t.buf = append(t.buf, key...)

	return st.IsMatch() && utf8.RuneCount(t.buf) >= t.opts.MinWordLength
}

// pop removes the top frame, undoing its push.
func (t *Traversal) pop() {
	top := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	t.visited[top.cell] = false
	t.buf = t.buf[:len(t.buf)-len(t.grid.keys[top.cell])]
}

// atMaxLength reports whether the path has reached MaxPathLength cells.
func (t *Traversal) atMaxLength() bool {
	return t.opts.MaxPathLength > 0 && len(t.stack) >= t.opts.MaxPathLength
}

// Path returns the cell indices spelling the word last returned by Next,
// in visiting order. It returns nil once the Traversal is exhausted.
func (t *Traversal) Path() []int {
	if len(t.stack) == 0 {
		return nil
	}
	out := make([]int, len(t.stack))
	for i, f := range t.stack {
		out[i] = f.cell
	}

	return out
}

// Done reports whether Next has returned false.
func (t *Traversal) Done() bool {
	return t.done
}

// All returns an iterator over the remaining words. Breaking out of the
// loop leaves the Traversal where it stopped.
func (t *Traversal) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			w, ok := t.Next()
			if !ok || !yield(w) {
				return
			}
		}
	}
}

