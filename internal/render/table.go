package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is one (possibly merged) table cell, addressed by its top-left grid
// position.
type Cell struct {
	Row     int
	Col     int
	Text    string
	RowSpan int
	ColSpan int
}

// Table is a grid of cells rendered to a fixed-width ASCII box, used for the
// -docinfo arena dump.
type Table struct {
	Rows  int
	Cols  int
	Cells []*Cell
}

// grid is the expanded Rows x Cols matrix pointing back at the owning Cell,
// built once so border/content rendering never has to re-derive ownership.
type grid struct {
	owner [][]*Cell
	lines map[*Cell][]string
	colW  []int
	rowH  []int
}

// Render lays the table out and draws it as a bordered ASCII grid; every
// line in the result has the same display width.
func (t *Table) Render() string {
	g := t.layout()

	var sb strings.Builder
	sb.WriteString(g.border(t, -1))
	sb.WriteByte('\n')
	for row := 0; row < t.Rows; row++ {
		for line := 0; line < g.rowH[row]; line++ {
			sb.WriteString(g.contentLine(t, row, line))
			sb.WriteByte('\n')
		}
		sb.WriteString(g.border(t, row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (t *Table) layout() *grid {
	g := &grid{
		owner: make([][]*Cell, t.Rows),
		lines: make(map[*Cell][]string, len(t.Cells)),
		colW:  make([]int, t.Cols),
		rowH:  make([]int, t.Rows),
	}
	for r := range g.owner {
		g.owner[r] = make([]*Cell, t.Cols)
	}
	for _, c := range t.Cells {
		g.lines[c] = strings.Split(c.Text, "\n")
		for r := c.Row; r < c.Row+c.RowSpan && r < t.Rows; r++ {
			for col := c.Col; col < c.Col+c.ColSpan && col < t.Cols; col++ {
				g.owner[r][col] = c
			}
		}
	}

	for i := range g.colW {
		g.colW[i] = 1
	}
	// Single-column cells set the floor for their column; spanning cells
	// only widen columns afterward, so a spanning cell never shrinks a
	// width a plain cell already needs.
	for _, c := range t.Cells {
		if c.ColSpan == 1 {
			g.growColumn(c.Col, g.contentWidth(c))
		}
	}
	for _, c := range t.Cells {
		if c.ColSpan > 1 {
			g.spreadColumns(c)
		}
	}
	for row := 0; row < t.Rows; row++ {
		g.rowH[row] = 1
		for _, c := range t.Cells {
			if c.Row == row && len(g.lines[c]) > g.rowH[row] {
				g.rowH[row] = len(g.lines[c])
			}
		}
	}
	return g
}

func (g *grid) contentWidth(c *Cell) int {
	width := 0
	for _, line := range g.lines[c] {
		if w := displayWidth(line); w > width {
			width = w
		}
	}
	return width
}

func (g *grid) growColumn(col, width int) {
	if width > g.colW[col] {
		g.colW[col] = width
	}
}

// spreadColumns widens the ColSpan columns a spanning cell covers just
// enough that their combined width (plus the column-separator bytes between
// them) fits the cell's own content.
func (g *grid) spreadColumns(c *Cell) {
	need := g.contentWidth(c)
	have := 0
	for i := 0; i < c.ColSpan; i++ {
		have += g.colW[c.Col+i]
	}
	if c.ColSpan > 1 {
		have += (c.ColSpan - 1) * 3
	}
	if need <= have {
		return
	}
	extra := need - have
	share, rem := extra/c.ColSpan, extra%c.ColSpan
	for i := 0; i < c.ColSpan; i++ {
		g.colW[c.Col+i] += share
		if i < rem {
			g.colW[c.Col+i]++
		}
	}
}

// border renders the horizontal rule below rowIdx's display rows (-1 draws
// the table's top rule).
func (g *grid) border(t *Table, rowIdx int) string {
	var sb strings.Builder
	sb.WriteByte('+')
	for col := 0; col < t.Cols; col++ {
		if g.crossesRowBoundary(t, rowIdx, col) {
			sb.WriteString(strings.Repeat("-", g.colW[col]+2))
		} else {
			sb.WriteString(strings.Repeat(" ", g.colW[col]+2))
		}
		if col < t.Cols-1 {
			if g.crossesColBoundary(t, rowIdx, col) {
				sb.WriteByte('+')
			} else {
				sb.WriteByte('-')
			}
		}
	}
	sb.WriteByte('+')
	return sb.String()
}

func (g *grid) crossesRowBoundary(t *Table, rowIdx, col int) bool {
	if rowIdx == -1 || rowIdx == t.Rows-1 {
		return true
	}
	return g.owner[rowIdx][col] != g.owner[rowIdx+1][col]
}

func (g *grid) crossesColBoundary(t *Table, rowIdx, col int) bool {
	if rowIdx == -1 || rowIdx == t.Rows-1 {
		return true
	}
	return g.owner[rowIdx][col] != g.owner[rowIdx][col+1] ||
		g.owner[rowIdx+1][col] != g.owner[rowIdx+1][col+1]
}

// contentLine renders one display line (line-th wrapped line of rowIdx's
// cells).
func (g *grid) contentLine(t *Table, rowIdx, line int) string {
	var sb strings.Builder
	sb.WriteByte('|')

	col := 0
	for col < t.Cols {
		owner := g.owner[rowIdx][col]
		if owner == nil || owner.Col != col {
			col++
			continue
		}

		width := 0
		for i := 0; i < owner.ColSpan; i++ {
			width += g.colW[col+i]
		}
		if owner.ColSpan > 1 {
			width += (owner.ColSpan - 1) * 3
		}

		var text string
		// A rowspan cell's text only occupies its first table row; later
		// rows it covers render blank in that column.
		if owner.Row == rowIdx {
			if lines := g.lines[owner]; line < len(lines) {
				text = lines[line]
			}
		}

		sb.WriteByte(' ')
		sb.WriteString(text)
		if pad := width - displayWidth(text); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteByte(' ')

		col += owner.ColSpan
		if col < t.Cols {
			sb.WriteByte('|')
		}
	}
	sb.WriteByte('|')
	return sb.String()
}

// displayWidth reports a string's terminal column width, accounting for
// double-width CJK runes so mixed Korean/ASCII cells stay aligned.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
