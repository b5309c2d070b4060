// Package corpus reads a puzzle corpus file into an ordered list of named
// 9x9 puzzles.
//
// The corpus format is plain text: a marker line starting with the literal
// word "Grid" opens a block whose name is the marker line itself; the next
// nine non-blank lines are the puzzle rows, nine characters each, digits
// 0-9 with '.' accepted as an alias for 0 (blank cell). Text outside a
// block is ignored; a malformed block aborts the read with a *ParseError
// naming the block.
package corpus
