// Package grid models a rectangular letter board and enumerates the words
// that can be spelled along simple paths of adjacent cells.
//
// What:
//
//   - Grid wraps rows×cols string tiles in row-major order. A tile may hold
//     several characters ("Qu") and is always consumed as one step.
//   - Cells are adjacent under 8-connectivity (Moore neighborhood). Neighbors
//     are visited in the fixed order NW, N, NE, W, E, SW, S, SE.
//   - Traversal is a pull-based depth-first search driven by Next. It keeps an
//     explicit frame stack, each frame holding its own trie.Cursor, and drops
//     a branch as soon as its letters stop being a dictionary prefix.
//
// Why:
//
//   - Boggle-style solvers: every (path, word) pair, in a reproducible order.
//   - Lazy enumeration: callers stop whenever they have enough results.
//
// Complexity:
//
//   - New:       O(rows×cols) time and memory.
//   - Traversal: proportional to the number of prefix paths explored; the
//     worst case (no pruning) is exponential in the board size.
//   - Memory:    O(rows×cols) per Traversal.
//
// Options:
//
//   - WithMinWordLength(n): suppress words shorter than n characters.
//   - WithMaxPathLength(n): never extend a path beyond n cells.
//
// Errors:
//
//   - ErrEmptyGrid:         rows or cols is not positive.
//   - ErrDimensionMismatch: len(tiles) != rows*cols.
//   - ErrEmptyTile:         a tile is the empty string.
//
// Words are not deduplicated: a word spelled by two different paths is
// yielded twice. A Grid and a trie.Dictionary are read-only and may be
// shared by any number of Traversals, each owned by one goroutine.
package grid
