/*
Package scanner breaks the raw text of an architecture-support table into
classified lines and cells.

The tables this module reads are maintained by hand, so the scanner is built
around one structural anchor: the column rule, a line of dashes with '+' or
'|' marks at the column boundaries, sitting directly under the header line.
The first rule line carrying at least two boundary marks is authoritative for
the column count of the whole table. Content lines are split into cells at
their own '|' characters, which tolerates the loose alignment of hand-edited
text; counting cells against the authoritative rule is left to the parser.
Names may contain spaces, so whitespace never delimits cells.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/archtab"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'archtab.scan'.
func tracer() tracing.Trace {
	return tracing.Select("archtab.scan")
}

// LineKind classifies a line of table text.
type LineKind int8

// Line kinds, in the order they usually occur.
const (
	EOFLine       LineKind = iota // no more input
	BlankLine                     // whitespace only
	SeparatorLine                 // a column rule: '-', '+', '|' and spaces
	HeaderLine                    // the single content line above the authoritative rule
	DataLine                      // content line below the authoritative rule
)

func (k LineKind) String() string {
	switch k {
	case EOFLine:
		return "EOF"
	case BlankLine:
		return "blank"
	case SeparatorLine:
		return "separator"
	case HeaderLine:
		return "header"
	case DataLine:
		return "data"
	}
	return fmt.Sprintf("line-kind(%d)", int8(k))
}

// Cell is one '|'-delimited cell of a content line. Text is the raw cell
// content, untrimmed; Pos is its byte extent within the line, for error
// messages pointing at offending cells.
type Cell struct {
	Text string
	Pos  archtab.Span
}

// Line is one classified line of input. Cells is filled for header and data
// lines and nil otherwise.
type Line struct {
	Kind  LineKind
	No    int // 1-based line number within the input
	Text  string
	Cells []Cell
}

// Scanner hands out the classified lines of one table, in input order.
// Create one with New.
type Scanner struct {
	sourceID string
	lines    []Line
	cursor   int
	cols     int   // canonical column count, from the authoritative rule
	bounds   []int // byte positions of the boundary marks in that rule
	err      error
}

// New creates a scanner for one table. The input is read completely up
// front; a structural violation (no usable column rule, data above the rule,
// missing header) surfaces on the first call to NextLine. sourceID names the
// input in error messages.
func New(sourceID string, input io.Reader) *Scanner {
	s := &Scanner{sourceID: sourceID}
	s.err = s.prepare(input)
	return s
}

// NextLine returns the next classified line. After the last line it returns
// a line of kind EOFLine. Once an error has been detected, every call
// returns it; there is no recovery within a table.
func (s *Scanner) NextLine() (Line, error) {
	if s.err != nil {
		return Line{Kind: EOFLine}, s.err
	}
	if s.cursor >= len(s.lines) {
		return Line{Kind: EOFLine}, nil
	}
	line := s.lines[s.cursor]
	s.cursor++
	return line, nil
}

// SourceID returns the input name given to New.
func (s *Scanner) SourceID() string {
	return s.sourceID
}

// Columns returns the canonical column count of the table, derived from the
// authoritative rule line: one more than its boundary marks. It is 0 when
// the input had no usable rule.
func (s *Scanner) Columns() int {
	return s.cols
}

// Boundaries returns the byte positions of the boundary marks within the
// authoritative rule line.
func (s *Scanner) Boundaries() []int {
	b := make([]int, len(s.bounds))
	copy(b, s.bounds)
	return b
}

// prepare reads the complete input, locates the authoritative column rule
// and classifies every line relative to it.
func (s *Scanner) prepare(input io.Reader) error {
	var texts []string
	buf := bufio.NewScanner(input)
	for buf.Scan() {
		texts = append(texts, strings.TrimRight(buf.Text(), "\r"))
	}
	if err := buf.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", s.sourceID, err)
	}
	rule := -1 // index of the authoritative rule line
	for i, text := range texts {
		if isRule(text) && len(boundaryMarks(text)) >= 2 {
			rule = i
			break
		}
	}
	if rule < 0 {
		return fmt.Errorf("%w: %s: no column rule with at least two column boundaries",
			archtab.ErrMalformedTable, s.sourceID)
	}
	s.bounds = boundaryMarks(texts[rule])
	s.cols = len(s.bounds) + 1
	header := -1
	for i, text := range texts {
		line := Line{No: i + 1, Text: text}
		switch {
		case isBlank(text):
			line.Kind = BlankLine
		case isRule(text):
			line.Kind = SeparatorLine
		case i < rule:
			if header >= 0 {
				return fmt.Errorf("%w: %s:%d: data line above the column rule",
					archtab.ErrMalformedTable, s.sourceID, i+1)
			}
			header = i
			line.Kind = HeaderLine
			line.Cells = splitCells(text)
		default:
			line.Kind = DataLine
			line.Cells = splitCells(text)
		}
		s.lines = append(s.lines, line)
	}
	if header < 0 {
		return fmt.Errorf("%w: %s: no header line above the column rule",
			archtab.ErrMalformedTable, s.sourceID)
	}
	tracer().Debugf("scanned %d lines of %s, column rule at line %d, %d columns",
		len(s.lines), s.sourceID, rule+1, s.cols)
	return nil
}

// splitCells cuts a content line at its '|' characters. A line without any
// '|' yields a single cell; the parser will then flag the column count.
func splitCells(text string) []Cell {
	var cells []Cell
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '|' {
			cells = append(cells, Cell{Text: text[start:i], Pos: archtab.Span{start, i}})
			start = i + 1
		}
	}
	return append(cells, Cell{Text: text[start:], Pos: archtab.Span{start, len(text)}})
}

func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// isRule reports whether text is a column rule: nothing but '-', '+', '|'
// and whitespace, with at least one '-'.
func isRule(text string) bool {
	dash := false
	for _, r := range text {
		switch r {
		case '-':
			dash = true
		case '+', '|', ' ', '\t':
		default:
			return false
		}
	}
	return dash
}

// boundaryMarks returns the byte positions of the column boundary marks,
// '+' or '|', within a rule line.
func boundaryMarks(text string) []int {
	var marks []int
	for i := 0; i < len(text); i++ {
		if text[i] == '+' || text[i] == '|' {
			marks = append(marks, i)
		}
	}
	return marks
}
