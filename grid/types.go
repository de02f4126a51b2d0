package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates a non-positive row or column count.
	ErrEmptyGrid = errors.New("grid: rows and cols must be positive")
	// ErrDimensionMismatch indicates len(tiles) != rows*cols.
	ErrDimensionMismatch = errors.New("grid: tile count does not match dimensions")
	// ErrEmptyTile indicates a tile with no characters.
	ErrEmptyTile = errors.New("grid: tile must not be empty")
)

// neighborOffsets lists (dRow, dCol) in visiting order. Traversal output
// order depends on it.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Option configures a Traversal.
// Use with Grid.StartTraversal(d, opts...).
type Option func(*Options)

// Options holds Traversal parameters. The zero limits reproduce the plain
// search: every dictionary word on every simple path.
type Options struct {
	// MinWordLength suppresses words with fewer characters (runes).
	// Shorter matches are still extended. Default 0.
	MinWordLength int

	// MaxPathLength, if positive, caps the number of cells in a path.
	// Default 0 (no limit).
	MaxPathLength int
}

// DefaultOptions returns Options with no length limits.
func DefaultOptions() Options {
	return Options{
		MinWordLength: 0,
		MaxPathLength: 0,
	}
}

// WithMinWordLength returns an Option that hides words shorter than n.
func WithMinWordLength(n int) Option {
	return func(o *Options) {
		o.MinWordLength = n
	}
}

// WithMaxPathLength returns an Option that limits paths to n cells.
// A non-positive n removes the limit.
func WithMaxPathLength(n int) Option {
	return func(o *Options) {
		o.MaxPathLength = n
	}
}
