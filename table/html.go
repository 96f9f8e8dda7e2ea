package table

import (
	"fmt"
	"io"
)

// MatrixAsHTML exports a support matrix in HTML-format, one row per
// architecture, one column per feature. Intended for visually checking what
// a parse produced.
func MatrixAsHTML(m *Matrix, w io.Writer) {
	if m == nil {
		tracer().Errorf("no matrix given, cannot export to HTML")
		return
	}
	io.WriteString(w, "<html><body>\n")
	io.WriteString(w, fmt.Sprintf("support matrix of size = %d x %d<p>", m.M(), m.N()))
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	io.WriteString(w, "<tr bgcolor=#cccccc><td></td>\n")
	for _, f := range m.features {
		io.WriteString(w, fmt.Sprintf("<td>%s</td>", f))
	}
	io.WriteString(w, "</tr>\n")
	var td string // table cell
	for i, a := range m.archs {
		io.WriteString(w, fmt.Sprintf("<tr><td>%s</td>\n", a))
		for j := range m.features {
			if m.bits.Test(uint(i*len(m.features) + j)) {
				td = "*" // the upstream supported glyph
			} else {
				td = "&nbsp;"
			}
			io.WriteString(w, "<td>")
			io.WriteString(w, td)
			io.WriteString(w, "</td>\n")
		}
		io.WriteString(w, "</tr>\n")
	}
	io.WriteString(w, "</table></body></html>\n")
}
