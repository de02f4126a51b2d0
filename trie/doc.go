// Package trie implements an ordered-character prefix tree over a word list
// with exact-match queries and a resumable prefix-search Cursor.
//
// What:
//
//   - Dictionary: immutable trie built from lower-cased words.
//   - Cursor: a small value holding a position in the node table. Advancing
//     a cursor returns a new cursor and leaves the receiver untouched, so
//     sibling branches of a search can share one parent position.
//   - Status: NoMatch, Prefix, Match or PrefixAndMatch for the string
//     consumed so far.
//
// Why:
//
//   - Word games (Boggle, crosswords): prune a path as soon as its letters
//     stop being a prefix of any word.
//   - Incremental lookups: feeding k more characters costs O(k), never a
//     re-scan from the root.
//
// Complexity:
//
//   - Build:     O(total characters × log σ), σ = distinct bytes per node.
//   - Contains:  O(len(word) × log σ).
//   - Advance:   O(len(token) × log σ).
//   - Memory:    O(total characters).
//
// Concurrency:
//
//   - A built Dictionary is read-only and safe for concurrent use.
//   - A Builder is not safe for concurrent use.
package trie
