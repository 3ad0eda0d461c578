package gridgraph

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

var glyphs = [...]byte{
	Empty:       '*',
	Obstacle:    'X',
	Start:       'A',
	End:         'B',
	Frontier:    'f',
	Visited:     '.',
	Shortest:    'o',
	Bifurcation: '#',
}

// Glyph returns the character used for t when a grid is encoded.
func (t CellType) Glyph() byte {
	if int(t) < len(glyphs) {
		return glyphs[t]
	}
	return '?'
}

// parseGlyph maps an input character to a cell type. Only the base
// alphabet is accepted; search marks never appear in source files.
func parseGlyph(b byte) (CellType, bool) {
	switch b {
	case '*':
		return Empty, true
	case 'X':
		return Obstacle, true
	case 'A':
		return Start, true
	case 'B':
		return End, true
	}
	return 0, false
}

// Parse reads a grid in the text format, one row per line. IDs are
// assigned in scan order. Trailing blank lines are ignored; any other
// malformation fails the whole parse and no Graph is returned.
func Parse(r io.Reader) (*Graph, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read grid: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	width := len(lines[0])
	g := &Graph{cells: make([][]Vertex, 0, len(lines))}
	var foundStart, foundEnd bool
	id := 0
	for r, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonRectangular, r+1, len(line), width)
		}
		row := make([]Vertex, 0, width)
		for c := 0; c < len(line); c++ {
			t, ok := parseGlyph(line[c])
			if !ok {
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrUnknownGlyph, line[c], r+1, c+1)
			}
			dist := Infinity
			switch t {
			case Start:
				if foundStart {
					return nil, fmt.Errorf("%w: line %d column %d", ErrDuplicateStart, r+1, c+1)
				}
				foundStart = true
				dist = 0
			case End:
				if foundEnd {
					return nil, fmt.Errorf("%w: line %d column %d", ErrDuplicateEnd, r+1, c+1)
				}
				foundEnd = true
			}
			row = append(row, Vertex{ID: id, Type: t, Pos: Position{Row: r, Col: c}, Distance: dist})
			id++
		}
		g.cells = append(g.cells, row)
	}

	return g, nil
}

// Load opens path and parses it with Parse.
func Load(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: open grid: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Encode writes the grid to w, one glyph per cell and one line per row.
func (g *Graph) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, row := range g.cells {
		for i := range row {
			if err := bw.WriteByte(row[i].Type.Glyph()); err != nil {
				return fmt.Errorf("gridgraph: write grid: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("gridgraph: write grid: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("gridgraph: write grid: %w", err)
	}
	return nil
}

// Save writes the encoded grid to path, replacing any existing file.
func (g *Graph) Save(path string) error {
	var buf bytes.Buffer
	if err := g.Encode(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("gridgraph: save grid: %w", err)
	}
	return nil
}

// String returns the encoded grid.
func (g *Graph) String() string {
	var sb strings.Builder
	_ = g.Encode(&sb)
	return sb.String()
}
