// Package boggle finds dictionary words on a letter board: every word that
// can be spelled along a path of adjacent cells without reusing a cell.
//
// The search walks the board depth-first while carrying a cursor into a
// prefix tree, so a path is abandoned the moment its letters stop being the
// start of any word.
//
// Under the hood, everything is organized under these subpackages:
//
//	trie/     — prefix dictionary with exact-match queries and resumable cursors
//	grid/     — the board (8-connected cells, multi-letter tiles) and Traversal
//	wordlist/ — loads a one-word-per-line file into a trie.Dictionary
//	solver/   — drains a Traversal with caps, dedup, tracing and logging
//	cmd/boggle — demonstration driver
//
// Quick example:
//
//	g, _ := grid.New(2, 2, []string{"b", "s", "t", "a"})
//	d := trie.Build([]string{"bat", "tab"})
//	for w := range g.StartTraversal(d).All() {
//		fmt.Println(w) // bat, tab
//	}
package boggle
