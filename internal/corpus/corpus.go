package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Size is the puzzle edge length. The corpus format is fixed at 9x9.
const Size = 9

// marker is the literal prefix that opens a puzzle block.
const marker = "Grid"

// Puzzle is one named 9x9 grid from the corpus. Cell values are 0-9,
// where 0 is a blank cell. Puzzles are immutable once read.
type Puzzle struct {
	Name string
	Grid [Size][Size]byte
}

// ParseError reports a malformed puzzle block. Block is the marker line
// that opened the block and Line is the 1-based line number of the
// offending row.
type ParseError struct {
	Block string
	Line  int
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("corpus: block %q: line %d: %s", e.Block, e.Line, e.Msg)
}

// ReadFile reads the corpus at path. See Read.
func ReadFile(path string) ([]Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: open: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses corpus text from r and returns the puzzles in file order.
// Any block that is opened by a marker line must be complete and
// well-formed; otherwise Read fails with a *ParseError and no puzzles.
func Read(r io.Reader) ([]Puzzle, error) {
	sc := bufio.NewScanner(r)
	var (
		puzzles []Puzzle
		lineNo  int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, marker) {
			// Blank separators and stray text between blocks are ignored.
			continue
		}
		p, err := readBlock(sc, line, &lineNo)
		if err != nil {
			return nil, err
		}
		puzzles = append(puzzles, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("corpus: read: %w", err)
	}
	return puzzles, nil
}

// readBlock consumes the nine row lines following a marker. Blank lines
// inside a block are skipped, matching the tolerance for separators.
func readBlock(sc *bufio.Scanner, name string, lineNo *int) (Puzzle, error) {
	p := Puzzle{Name: name}
	for row := 0; row < Size; {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return Puzzle{}, fmt.Errorf("corpus: read: %w", err)
			}
			return Puzzle{}, &ParseError{Block: name, Line: *lineNo,
				Msg: fmt.Sprintf("truncated block: got %d of %d rows", row, Size)}
		}
		*lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if len(line) != Size {
			return Puzzle{}, &ParseError{Block: name, Line: *lineNo,
				Msg: fmt.Sprintf("row has %d characters, want %d", len(line), Size)}
		}
		for col := 0; col < Size; col++ {
			c := line[col]
			switch {
			case c == '.':
				p.Grid[row][col] = 0
			case c >= '0' && c <= '9':
				p.Grid[row][col] = c - '0'
			default:
				return Puzzle{}, &ParseError{Block: name, Line: *lineNo,
					Msg: fmt.Sprintf("invalid cell character %q", c)}
			}
		}
		row++
	}
	return p, nil
}
