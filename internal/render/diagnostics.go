package render

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/gohwp/hwpdoc/internal/model"
)

// Stdout wraps os.Stdout so ANSI color codes render on Windows consoles too,
// matching the way color's own README recommends pairing it with colorable.
func Stdout() io.Writer {
	return colorable.NewColorableStdout()
}

// PrintError writes a severity-colored diagnostic line to w, falling back to
// plain text when os.Stderr is not a terminal; the check is made on
// os.Stderr whatever w is (color.NoColor already does this for
// the package-level color functions, but PrintError is explicit about it so
// piped `hwpcat` output stays script-friendly).
func PrintError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	red.Fprintf(w, "error: %v\n", err)
}

// docInfoRow is one line of the DocInfo arena-count dump.
type docInfoRow struct {
	arena string
	count int
}

// RenderDocInfoTable renders a tabular count of every DocInfo arena
// (faces, char-shapes, styles, …), the hwpcat -docinfo inspection mode's
// output, reusing table.go's cell-merging ASCII renderer rather than a
// second table-rendering dependency.
func RenderDocInfoTable(info model.DocInfo, w io.Writer) error {
	rows := []docInfoRow{
		{"SectionCount", info.SectionCount},
		{"Faces", len(info.Faces)},
		{"BorderFills", len(info.BorderFills)},
		{"CharShapes", len(info.CharShapes)},
		{"TabDefs", len(info.TabDefs)},
		{"Numberings", len(info.Numberings)},
		{"Bullets", len(info.Bullets)},
		{"ParaShapes", len(info.ParaShapes)},
		{"Styles", len(info.Styles)},
		{"Unknown records", len(info.Unknown)},
	}

	t := &Table{Rows: len(rows) + 1, Cols: 2}
	t.Cells = append(t.Cells, &Cell{Row: 0, Col: 0, Text: "Arena", RowSpan: 1, ColSpan: 1})
	t.Cells = append(t.Cells, &Cell{Row: 0, Col: 1, Text: "Count", RowSpan: 1, ColSpan: 1})
	for i, row := range rows {
		t.Cells = append(t.Cells, &Cell{Row: i + 1, Col: 0, Text: row.arena, RowSpan: 1, ColSpan: 1})
		t.Cells = append(t.Cells, &Cell{Row: i + 1, Col: 1, Text: fmt.Sprintf("%d", row.count), RowSpan: 1, ColSpan: 1})
	}

	_, err := fmt.Fprint(w, t.Render())
	return err
}
