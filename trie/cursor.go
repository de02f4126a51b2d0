package trie

// Cursor is a position in a Dictionary reached by consuming some string
// from the root. Cursors are plain values: Advance never mutates its
// receiver, so a copy taken before descending stays valid for every
// sibling branch.
//
// The zero Cursor is exhausted and reports NoMatch.
type Cursor struct {
	dict *Dictionary
	idx  int32
}

// Advance consumes token byte by byte from c's position and returns the
// resulting cursor with the status of the whole consumed string. Status is
// reported only after the entire token, so a multi-character tile such as
// "qu" moves across two edges in one step.
//
// If some byte has no edge, the returned cursor is exhausted and the status
// is NoMatch; advancing an exhausted cursor keeps returning NoMatch.
// Tokens are matched byte-exact, so callers feed lower-case input.
// Complexity: O(len(token) × log σ).
func (c Cursor) Advance(token string) (Cursor, Status) {
	if !c.Valid() {
		return Cursor{dict: c.dict, idx: invalidIndex}, NoMatch
	}

	idx := c.idx
	var ok bool
	for i := 0; i < len(token); i++ {
		if idx, ok = c.dict.nodes[idx].child(token[i]); !ok {
			return Cursor{dict: c.dict, idx: invalidIndex}, NoMatch
		}
	}
	next := Cursor{dict: c.dict, idx: idx}

	return next, next.Status()
}

// Status reports the relationship of the consumed string to the word set.
func (c Cursor) Status() Status {
	if !c.Valid() {
		return NoMatch
	}
	n := &c.dict.nodes[c.idx]
	switch {
	case n.terminal && len(n.edges) > 0:
		return PrefixAndMatch
	case n.terminal:
		return Match
	case len(n.edges) > 0:
		return Prefix
	default:
		return NoMatch
	}
}

// Valid reports whether c still points into its dictionary.
func (c Cursor) Valid() bool {
	return c.dict != nil && c.idx >= 0
}
