// Package wordlist loads a word list, one word per line, into a
// trie.Dictionary.
//
// Lines are trimmed and lower-cased; blank lines are skipped. Nothing else is
// validated: duplicates, punctuation and digits go into the dictionary as-is.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/boggle/trie"
)

// maxLineSize bounds a single line; longer lines fail with bufio.ErrTooLong.
const maxLineSize = 1 << 20

// Read builds a Dictionary from r.
func Read(r io.Reader) (*trie.Dictionary, error) {
	b := trie.NewBuilder()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			b.Add(w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: read: %w", err)
	}

	return b.Build(), nil
}

// Load builds a Dictionary from the file at path.
func Load(path string) (*trie.Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: %w", err)
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%w (file %q)", err, path)
	}

	return d, nil
}
