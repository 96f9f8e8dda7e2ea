/*
Package table parses an architecture-support table into an immutable,
bit-packed support matrix.

Clients usually go through the one-call form:

	matrix, err := table.Parse("backends.txt", text)

or, for the embedded snapshot of the upstream GCC table:

	matrix, err := table.Builtin()

The parser consumes classified lines from package scanner. The header line
names the feature columns (its first cell is the corner label of the
row-label column and carries no feature). Every data line names an
architecture and contributes one marker per feature column. Parsing is
strict: the first malformed line, unknown glyph, or duplicate name aborts
with an error naming the offender, since a layout drift of the upstream
document must never be misread silently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package table

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/archtab"
	"github.com/npillmayer/archtab/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'archtab.table'.
func tracer() tracing.Trace {
	return tracing.Select("archtab.table")
}

// Parser derives feature names, architecture names and support markers from
// scanned table lines. Create one with NewParser.
type Parser struct {
	conv archtab.Conventions
}

// NewParser creates a parser. Without options it expects the upstream
// conventions: '*' for supported cells, '?' for uncertain ones.
func NewParser(opts ...Option) *Parser {
	p := &Parser{conv: archtab.DefaultConventions()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Option configures a parser.
type Option func(p *Parser)

// WithConventions sets the marker glyphs the parser accepts.
func WithConventions(conv archtab.Conventions) Option {
	return func(p *Parser) {
		p.conv = conv
	}
}

// Parse consumes all lines of sc and builds the support matrix. Row and
// column order of the matrix is the order of the input, never sorted.
func (p *Parser) Parse(sc *scanner.Scanner) (*Matrix, error) {
	var features []string
	rows := arraylist.New() // of Row
	for {
		line, err := sc.NextLine()
		if err != nil {
			return nil, err
		}
		switch line.Kind {
		case scanner.EOFLine:
			tracer().Debugf("parsed table %s: %d architectures x %d features",
				sc.SourceID(), rows.Size(), len(features))
			return NewMatrix(features, collectRows(rows))
		case scanner.HeaderLine:
			if features, err = p.header(sc, line); err != nil {
				return nil, err
			}
		case scanner.DataLine:
			// the scanner guarantees the header precedes any data line
			row, err := p.row(sc, line, len(features))
			if err != nil {
				return nil, err
			}
			rows.Add(row)
		}
		// blank lines and extra rules between rows carry no content
	}
}

// header turns the header cells into feature names. The authoritative column
// rule fixes the cell count.
func (p *Parser) header(sc *scanner.Scanner, line scanner.Line) ([]string, error) {
	if len(line.Cells) != sc.Columns() {
		return nil, fmt.Errorf("%w: %s:%d: header has %d columns, the column rule has %d",
			archtab.ErrMalformedTable, sc.SourceID(), line.No, len(line.Cells), sc.Columns())
	}
	features := make([]string, 0, len(line.Cells)-1)
	for _, cell := range line.Cells[1:] {
		name := strings.TrimSpace(cell.Text)
		if name == "" {
			return nil, fmt.Errorf("%w: %s:%d: empty feature name in header cell %s",
				archtab.ErrMalformedTable, sc.SourceID(), line.No, cell.Pos)
		}
		features = append(features, name)
	}
	return features, nil
}

// row turns a data line into a Row: architecture name plus one marker per
// feature column.
func (p *Parser) row(sc *scanner.Scanner, line scanner.Line, nfeat int) (Row, error) {
	name := strings.TrimSpace(line.Cells[0].Text)
	if name == "" {
		return Row{}, fmt.Errorf("%w: %s:%d: row without an architecture name",
			archtab.ErrMalformedTable, sc.SourceID(), line.No)
	}
	if len(line.Cells)-1 != nfeat {
		return Row{}, fmt.Errorf("%w: %s:%d: row %q has %d cells for %d features",
			archtab.ErrMalformedTable, sc.SourceID(), line.No, name, len(line.Cells)-1, nfeat)
	}
	markers := make([]archtab.Marker, nfeat)
	for j, cell := range line.Cells[1:] {
		marker, ok := p.marker(cell.Text)
		if !ok {
			return Row{}, fmt.Errorf("%w: %s:%d: row %q: unrecognized marker %q in cell %s",
				archtab.ErrMalformedTable, sc.SourceID(), line.No, name,
				strings.TrimSpace(cell.Text), cell.Pos)
		}
		markers[j] = marker
	}
	return Row{Arch: name, Markers: markers}, nil
}

// marker maps a cell's content to its tri-state marker.
func (p *Parser) marker(text string) (archtab.Marker, bool) {
	switch strings.TrimSpace(text) {
	case "":
		return archtab.Unsupported, true
	case string(p.conv.Supported):
		return archtab.Supported, true
	case string(p.conv.Ambiguous):
		return archtab.Ambiguous, true
	}
	return archtab.Unsupported, false
}

func collectRows(list *arraylist.List) []Row {
	rows := make([]Row, list.Size())
	it := list.Iterator()
	for it.Next() {
		rows[it.Index()] = it.Value().(Row)
	}
	return rows
}

// Parse is the one-call form: scan and parse a complete table from text.
// sourceID names the input in error messages.
func Parse(sourceID string, text string, opts ...Option) (*Matrix, error) {
	sc := scanner.New(sourceID, strings.NewReader(text))
	return NewParser(opts...).Parse(sc)
}
