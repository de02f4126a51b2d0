package trie

// Status reports how the characters consumed by a Cursor relate to the
// dictionary's word set.
type Status uint8

const (
	// NoMatch means no word starts with the consumed string.
	NoMatch Status = iota
	// Prefix means some longer word starts with the consumed string,
	// but the string itself is not a word.
	Prefix
	// Match means the consumed string is a word and nothing extends it.
	Match
	// PrefixAndMatch means the consumed string is a word and some longer
	// word extends it.
	PrefixAndMatch
)

// IsMatch reports whether the consumed string is itself a word.
func (s Status) IsMatch() bool {
	return s == Match || s == PrefixAndMatch
}

// IsPrefix reports whether some longer word extends the consumed string.
func (s Status) IsPrefix() bool {
	return s == Prefix || s == PrefixAndMatch
}

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case NoMatch:
		return "NoMatch"
	case Prefix:
		return "Prefix"
	case Match:
		return "Match"
	case PrefixAndMatch:
		return "PrefixAndMatch"
	default:
		return "Status(?)"
	}
}

// edge links a node to one child under a single byte label.
type edge struct {
	label byte
	child int32
}

// node is one entry of the flat node table. Edges stay sorted by label.
type node struct {
	edges    []edge
	terminal bool
}

// rootIndex is the position of the root in every node table.
const rootIndex int32 = 0

// invalidIndex marks an exhausted cursor.
const invalidIndex int32 = -1
