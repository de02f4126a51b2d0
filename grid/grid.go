package grid

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Grid is an immutable rows×cols board of string tiles stored row-major:
// the tile at (row, col) lives at index row*cols+col.
type Grid struct {
	rows, cols int
	tiles      []string // as supplied, for display
	keys       []string // lower-cased tiles fed to the trie
	neighbors  [][]int  // in-bounds neighbors per cell, in neighborOffsets order
}

// New constructs a Grid from row-major tiles. It copies tiles, so later
// changes to the slice do not affect the Grid.
// Returns ErrEmptyGrid, ErrDimensionMismatch or ErrEmptyTile, wrapped with
// the offending values.
// Complexity: O(rows×cols).
func New(rows, cols int, tiles []string) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, rows, cols)
	}
	// Compared by division: rows*cols may overflow int.
	if len(tiles)%cols != 0 || len(tiles)/cols != rows {
		return nil, fmt.Errorf("%w: %d×%d board, got %d tiles",
			ErrDimensionMismatch, rows, cols, len(tiles))
	}
	keys := make([]string, len(tiles))
	for i, tile := range tiles {
		if tile == "" {
			return nil, fmt.Errorf("%w: index %d", ErrEmptyTile, i)
		}
		keys[i] = strings.ToLower(tile)
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		tiles: slices.Clone(tiles),
		keys:  keys,
	}
	g.neighbors = make([][]int, len(tiles))
	for idx := range g.neighbors {
		g.neighbors[idx] = g.computeNeighbors(idx)
	}

	return g, nil
}

// computeNeighbors collects the in-bounds neighbors of idx.
func (g *Grid) computeNeighbors(idx int) []int {
	r, c := g.Coordinate(idx)
	out := make([]int, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nr, nc := r+d[0], c+d[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		out = append(out, g.Index(nr, nc))
	}

	return out
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells, rows*cols.
func (g *Grid) Len() int { return len(g.tiles) }

// InBounds reports whether (row, col) lies on the board.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index maps (row, col) to its row-major cell index.
func (g *Grid) Index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major cell index back to (row, col).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.cols, idx % g.cols
}

// TileAt returns the tile at (row, col) as supplied to New.
// It panics if (row, col) is off the board.
func (g *Grid) TileAt(row, col int) string {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("grid: TileAt(%d, %d) outside %d×%d board", row, col, g.rows, g.cols))
	}

	return g.tiles[g.Index(row, col)]
}

// Tile returns the tile at cell index idx. It panics if idx is out of range.
func (g *Grid) Tile(idx int) string {
	if idx < 0 || idx >= len(g.tiles) {
		panic(fmt.Sprintf("grid: Tile(%d) outside %d cells", idx, len(g.tiles)))
	}

	return g.tiles[idx]
}

// NeighborsOf returns the in-bounds neighbors of cell idx in visiting order:
// NW, N, NE, W, E, SW, S, SE. It panics if idx is out of range.
func (g *Grid) NeighborsOf(idx int) []int {
	if idx < 0 || idx >= len(g.neighbors) {
		panic(fmt.Sprintf("grid: NeighborsOf(%d) outside %d cells", idx, len(g.neighbors)))
	}

	return slices.Clone(g.neighbors[idx])
}

// String renders the board one row per line, tiles left-aligned in
// columns as wide as the widest tile.
func (g *Grid) String() string {
	width := 0
	for _, t := range g.tiles {
		width = max(width, utf8.RuneCountInString(t))
	}

	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			t := g.tiles[g.Index(r, c)]
			sb.WriteString(t)
			if c < g.cols-1 {
				sb.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(t)+1))
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
