package render_test

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
)

// plainPalette renders without escape sequences so output can be compared
// as text.
func plainPalette() *render.Palette {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return render.NewPalette(r)
}

func TestGradient(t *testing.T) {
	cases := []struct {
		name   string
		d, max float64
		want   lipgloss.Color
	}{
		{"origin", 0, 10, "#ffffff"},
		{"farthest", 10, 10, "#00ff00"},
		{"half", 5, 10, "#80ff80"},
		{"no max yet", 3, 0, "#ffffff"},
		{"beyond max clamps", 20, 10, "#00ff00"},
		{"unrelaxed", gridgraph.Infinity, 10, "#ffffff"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, render.Gradient(tc.d, tc.max))
		})
	}
}

func TestGrid_Glyphs(t *testing.T) {
	g, err := gridgraph.Parse(strings.NewReader("A*\nXB\n"))
	require.NoError(t, err)

	out := plainPalette().Grid(g, render.Options{CellWidth: 2, Glyphs: true})
	assert.Equal(t, "A * \nX B \n", out)
}

func TestGrid_BlankCellsAndHeight(t *testing.T) {
	g, err := gridgraph.BuildEmpty(1, 3)
	require.NoError(t, err)

	out := plainPalette().Grid(g, render.Options{CellWidth: 1, CellHeight: 2})
	assert.Equal(t, "   \n   \n", out)
}

func TestGrid_Defaults(t *testing.T) {
	g, err := gridgraph.Parse(strings.NewReader("AB\n"))
	require.NoError(t, err)

	assert.Equal(t, "AB\n", plainPalette().Grid(g, render.Options{Glyphs: true}))
	assert.Empty(t, plainPalette().Grid(nil, render.Options{}))
}

func TestGrid_CursorKeepsLayout(t *testing.T) {
	g, err := gridgraph.Parse(strings.NewReader("A*\n*B\n"))
	require.NoError(t, err)

	cursor := gridgraph.Position{Row: 1, Col: 0}
	out := plainPalette().Grid(g, render.Options{Glyphs: true, Cursor: &cursor})
	assert.Equal(t, "A*\n*B\n", out)
}

func TestPalette_StyleByType(t *testing.T) {
	p := render.NewPalette(nil)
	g, err := gridgraph.Parse(strings.NewReader("A*XB\n"))
	require.NoError(t, err)
	cells := g.Cells()[0]

	assert.Equal(t, render.StartColor, p.Style(&cells[0], 0).GetBackground())
	assert.Equal(t, render.EmptyColor, p.Style(&cells[1], 0).GetBackground())
	assert.Equal(t, render.ObstacleColor, p.Style(&cells[2], 0).GetBackground())
	assert.Equal(t, render.EndColor, p.Style(&cells[3], 0).GetBackground())

	visited := gridgraph.Vertex{Type: gridgraph.Visited, Distance: 10}
	assert.Equal(t, render.Gradient(10, 10), p.Style(&visited, 10).GetBackground())
}
