package archtab

import "fmt"

// --- Support markers -------------------------------------------------------

// Marker is the tri-state status of one cell of the support table: a feature
// is supported by an architecture, not supported, or flagged as uncertain by
// the table maintainers.
type Marker int

// Markers as they occur in table cells. An empty cell denotes Unsupported,
// the supported glyph denotes Supported, a question mark denotes Ambiguous.
const (
	Unsupported Marker = iota
	Supported
	Ambiguous
)

// Supports collapses the tri-state marker to a boolean. Only Supported counts
// as support; Ambiguous collapses to false. This is the single place where
// the collapse happens.
func (m Marker) Supports() bool {
	return m == Supported
}

func (m Marker) String() string {
	switch m {
	case Unsupported:
		return "unsupported"
	case Supported:
		return "supported"
	case Ambiguous:
		return "ambiguous"
	}
	return fmt.Sprintf("marker(%d)", int(m))
}

// --- Table conventions -----------------------------------------------------

// Conventions are the marker glyphs a table uses. The upstream GCC table
// marks supported cells with '*' and uncertain cells with '?', but documents
// carrying the same layout may use other glyphs, so the supported glyph is a
// configuration value rather than a constant.
type Conventions struct {
	Supported rune // glyph for a supported cell
	Ambiguous rune // glyph for an uncertain cell
}

// DefaultConventions returns the glyphs of the upstream table.
func DefaultConventions() Conventions {
	return Conventions{
		Supported: '*',
		Ambiguous: '?',
	}
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing the extent of a cell within its input
// line. A span denotes a start byte position and the position just behind
// the end. Error messages use spans to point at offending cells.
type Span [2]int // (x…y)

// From returns the start value of a span.
func (s Span) From() int {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() int {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() int {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
