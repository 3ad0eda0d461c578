// Package render draws a gridgraph.Graph as coloured terminal cells.
//
// Colours follow the classic visualiser palette: near-white empty cells,
// black obstacles, a blue start, a red end, orange frontier cells and
// purple shortest-path cells. Visited cells fade from white to green as
// their distance approaches the largest distance seen so far.
//
// Rendering goes through a lipgloss.Renderer, so output degrades to plain
// glyphs when the writer is not a colour terminal.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Base colours.
var (
	EmptyColor    = lipgloss.Color("#fafafa")
	ObstacleColor = lipgloss.Color("#000000")
	ShortestColor = lipgloss.Color("#9d3cf9")
	FrontierColor = lipgloss.Color("#ffb66c")
	StartColor    = lipgloss.Color("#0000ff")
	EndColor      = lipgloss.Color("#ff0000")
	CursorColor   = lipgloss.Color("#ffff00")
)

// Gradient returns the fill of a visited cell at distance d when the
// farthest relaxed cell is at max: white at 0, pure green at max.
func Gradient(d, max float64) lipgloss.Color {
	ratio := 0.0
	if max > 0 && !math.IsInf(d, 0) && !math.IsNaN(d) {
		ratio = math.Min(math.Max(d/max, 0), 1)
	}
	c := 255 - uint8(255*ratio)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c, 255, c))
}

// Palette maps cell types to styles.
type Palette struct {
	r      *lipgloss.Renderer
	styles map[gridgraph.CellType]lipgloss.Style
	cursor lipgloss.Style
}

// NewPalette builds the default palette on r. A nil r uses the lipgloss
// default renderer.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	cell := func(bg, fg lipgloss.Color) lipgloss.Style {
		return r.NewStyle().Background(bg).Foreground(fg)
	}
	dark, light := lipgloss.Color("#202020"), lipgloss.Color("#fafafa")

	return &Palette{
		r: r,
		styles: map[gridgraph.CellType]lipgloss.Style{
			gridgraph.Empty:       cell(EmptyColor, dark),
			gridgraph.Obstacle:    cell(ObstacleColor, light),
			gridgraph.Start:       cell(StartColor, light).Bold(true),
			gridgraph.End:         cell(EndColor, light).Bold(true),
			gridgraph.Frontier:    cell(FrontierColor, dark),
			gridgraph.Visited:     cell(EmptyColor, dark),
			gridgraph.Shortest:    cell(ShortestColor, light),
			gridgraph.Bifurcation: cell(ShortestColor, light).Bold(true),
		},
		cursor: r.NewStyle().Background(CursorColor).Foreground(dark).Reverse(true),
	}
}

// Style returns the style of v given the current maximum distance.
func (p *Palette) Style(v *gridgraph.Vertex, maxDist float64) lipgloss.Style {
	s, ok := p.styles[v.Type]
	if !ok {
		s = p.styles[gridgraph.Empty]
	}
	if v.Type == gridgraph.Visited {
		s = s.Background(Gradient(v.Distance, maxDist))
	}
	return s
}

// Options controls Grid.
type Options struct {
	CellWidth  int                 // columns per cell, at least 1
	CellHeight int                 // lines per cell, at least 1
	Glyphs     bool                // print the cell glyph instead of blanks
	Cursor     *gridgraph.Position // highlighted cell, or nil
}

// Grid renders g row by row. Every line ends in '\n'.
func (p *Palette) Grid(g *gridgraph.Graph, opts Options) string {
	if g == nil {
		return ""
	}
	width, height := max(opts.CellWidth, 1), max(opts.CellHeight, 1)
	maxDist := g.MaxDistance()

	var b strings.Builder
	for _, row := range g.Cells() {
		cells := make([]string, len(row))
		for c := range row {
			v := &row[c]
			text := strings.Repeat(" ", width)
			if opts.Glyphs {
				text = string(v.Type.Glyph()) + strings.Repeat(" ", width-1)
			}
			style := p.Style(v, maxDist)
			if opts.Cursor != nil && *opts.Cursor == v.Pos {
				style = p.cursor
			}
			cells[c] = style.Render(text)
		}
		line := strings.Join(cells, "")
		for i := 0; i < height; i++ {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	return b.String()
}
