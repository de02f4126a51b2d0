package solver

import (
	"errors"

	"github.com/rs/zerolog"
)

// Sentinel errors for Solve.
var (
	// ErrGridNil is returned when a nil *grid.Grid is passed to Solve.
	ErrGridNil = errors.New("solver: grid is nil")

	// ErrDictionaryNil is returned when a nil *trie.Dictionary is passed to Solve.
	ErrDictionaryNil = errors.New("solver: dictionary is nil")
)

// Option configures Solve.
type Option func(*Options)

// Options holds Solve parameters.
type Options struct {
	// Limit caps the number of collected words; 0 means no cap.
	Limit int

	// Unique keeps only the first path found for each word.
	Unique bool

	// MinWordLength and MaxPathLength are passed to the traversal.
	MinWordLength int
	MaxPathLength int

	// Logger receives one debug event per Solve.
	Logger zerolog.Logger
}

// DefaultOptions returns Options with no cap, no dedup, no length limits
// and a disabled logger.
func DefaultOptions() Options {
	return Options{
		Limit:  0,
		Unique: false,
		Logger: zerolog.Nop(),
	}
}

// WithLimit returns an Option that stops Solve after n words.
func WithLimit(n int) Option {
	return func(o *Options) {
		o.Limit = n
	}
}

// WithUnique returns an Option that toggles word-level deduplication.
func WithUnique(unique bool) Option {
	return func(o *Options) {
		o.Unique = unique
	}
}

// WithMinWordLength returns an Option that hides words shorter than n.
func WithMinWordLength(n int) Option {
	return func(o *Options) {
		o.MinWordLength = n
	}
}

// WithMaxPathLength returns an Option that limits paths to n cells.
func WithMaxPathLength(n int) Option {
	return func(o *Options) {
		o.MaxPathLength = n
	}
}

// WithLogger returns an Option that sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Result is the outcome of Solve.
type Result struct {
	// Words lists collected words in discovery order.
	Words []string

	// Paths[i] holds the cell indices spelling Words[i].
	Paths [][]int

	// Yields counts every word pulled from the traversal, including
	// duplicates dropped by WithUnique.
	Yields int

	// Truncated is true when Solve stopped at Limit.
	Truncated bool
}
