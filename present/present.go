package present

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/veckit/spectral/extract"
	"github.com/veckit/spectral/internal/ui"
	"github.com/veckit/spectral/matrix"
)

// Bracket renders m as a single bracketed text line:
//
//	[ 0 1 0; 1 0 1; 0 1 0]
//
// Rows are separated by ';', values by single spaces, %g formatting.
// The 0×0 matrix renders as "[]".
// Complexity: O(r*c).
func Bracket(m *matrix.Dense) string {
	if m.Rows() == 0 {
		return "[]"
	}

	rows := make([]string, 0, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		if err != nil {
			continue // unreachable: i is in range by construction
		}
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		rows = append(rows, strings.Join(cells, " "))
	}

	return "[ " + strings.Join(rows, "; ") + "]"
}

// Grid writes m to w as a labeled, column-aligned table. labels addresses
// rows and columns in order; when shorter than the matrix, missing labels
// fall back to 1-based ordinals. Headers are colored via the ui palette;
// the table itself is read-only output.
// Complexity: O(r*c).
func Grid(w io.Writer, title string, m *matrix.Dense, labels []string) {
	if title != "" {
		fmt.Fprintf(w, "%s\n", ui.Brand.Sprint(title))
	}
	if m.Rows() == 0 {
		return
	}

	label := func(i int) string {
		if i < len(labels) && labels[i] != "" {
			return labels[i]
		}

		return strconv.Itoa(i + 1)
	}

	// Column widths: max of header and the widest cell in that column.
	widths := make([]int, m.Cols())
	cells := make([][]string, m.Rows())
	for i := range cells {
		row, _ := m.Row(i)
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cells[i][j] = strconv.FormatFloat(v, 'g', -1, 64)
			if len(cells[i][j]) > widths[j] {
				widths[j] = len(cells[i][j])
			}
		}
	}
	rowHeader := 0
	for i := 0; i < m.Rows(); i++ {
		if len(label(i)) > rowHeader {
			rowHeader = len(label(i))
		}
	}
	for j := 0; j < m.Cols(); j++ {
		if len(label(j)) > widths[j] {
			widths[j] = len(label(j))
		}
	}

	// Header line.
	fmt.Fprintf(w, "%*s", rowHeader+2, "")
	for j := 0; j < m.Cols(); j++ {
		fmt.Fprintf(w, "%s  ", ui.Subtle.Sprintf("%*s", widths[j], label(j)))
	}
	fmt.Fprintln(w)

	// Body.
	for i := 0; i < m.Rows(); i++ {
		fmt.Fprintf(w, "%s  ", ui.Subtle.Sprintf("%*s", rowHeader, label(i)))
		for j := 0; j < m.Cols(); j++ {
			fmt.Fprintf(w, "%*s  ", widths[j], cells[i][j])
		}
		fmt.Fprintln(w)
	}
}

// Labels returns display labels for g's vertices: the object ID when the
// document carries one, the 1-based ordinal otherwise.
func Labels(g *extract.Graph) []string {
	out := make([]string, len(g.Vertices))
	for i, v := range g.Vertices {
		if v.ID != "" {
			out[i] = v.ID
		} else {
			out[i] = strconv.Itoa(v.Index)
		}
	}

	return out
}

// Render builds the requested matrix for g and writes the labeled grid
// followed by the bracket line. An empty graph yields ErrNoSelection and
// nothing is written — the "missing selection" condition of the matrix
// display operations. No document mutation ever happens here.
func Render(w io.Writer, g *extract.Graph, kind matrix.Kind) error {
	if g == nil || g.Order() == 0 {
		return extract.ErrNoSelection
	}

	m, err := matrix.Build(g, kind)
	if err != nil {
		return err
	}

	Grid(w, kind.String()+" matrix", m, Labels(g))
	fmt.Fprintln(w)
	fmt.Fprintln(w, Bracket(m))

	return nil
}
