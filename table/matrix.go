package table

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/archtab"
)

// Row is one parsed data line: an architecture name plus one marker per
// feature column. Rows are the construction input for a Matrix.
type Row struct {
	Arch    string
	Markers []archtab.Marker
}

// Matrix is the bit-packed support matrix: architectures as rows, features
// as columns, both in table order, one bit per cell. A set bit means
// supported; unsupported and ambiguous cells both collapse to unset (see
// archtab.Marker.Supports). A Matrix is immutable after construction and
// may be shared between concurrent readers without locking.
type Matrix struct {
	features []string
	archs    []string
	fidx     map[string]int // feature name to column
	aidx     map[string]int // architecture name to row
	bits     *bitset.BitSet // rows x cols, bit i*cols+j
	fprint   string
}

// NewMatrix builds a matrix from parsed rows. Names must be unique within
// their kind, matched case-sensitively, and every row must carry exactly one
// marker per feature.
func NewMatrix(features []string, rows []Row) (*Matrix, error) {
	m := &Matrix{
		features: append([]string(nil), features...),
		archs:    make([]string, 0, len(rows)),
		fidx:     make(map[string]int, len(features)),
		aidx:     make(map[string]int, len(rows)),
		bits:     bitset.New(uint(len(rows) * len(features))),
	}
	seen := hashset.New()
	for j, f := range m.features {
		if seen.Contains(f) {
			return nil, fmt.Errorf("%w: feature %q", archtab.ErrDuplicateName, f)
		}
		seen.Add(f)
		m.fidx[f] = j
	}
	seen = hashset.New()
	for i, row := range rows {
		if seen.Contains(row.Arch) {
			return nil, fmt.Errorf("%w: architecture %q", archtab.ErrDuplicateName, row.Arch)
		}
		seen.Add(row.Arch)
		if len(row.Markers) != len(m.features) {
			return nil, fmt.Errorf("%w: row %q has %d markers for %d features",
				archtab.ErrMalformedTable, row.Arch, len(row.Markers), len(m.features))
		}
		m.aidx[row.Arch] = i
		m.archs = append(m.archs, row.Arch)
		for j, marker := range row.Markers {
			if marker.Supports() {
				m.bits.Set(uint(i*len(m.features) + j))
			}
		}
	}
	fprint, err := structhash.Hash(struct {
		Features []string
		Archs    []string
		Bits     []uint64
	}{m.features, m.archs, m.bits.Bytes()}, 1)
	if err != nil {
		return nil, fmt.Errorf("cannot fingerprint matrix: %w", err)
	}
	m.fprint = fprint
	return m, nil
}

// M returns the row count, i.e. the number of architectures.
func (m *Matrix) M() int {
	return len(m.archs)
}

// N returns the column count, i.e. the number of features.
func (m *Matrix) N() int {
	return len(m.features)
}

// Features returns the feature names in table order.
func (m *Matrix) Features() []string {
	return append([]string(nil), m.features...)
}

// Architectures returns the architecture names in table order.
func (m *Matrix) Architectures() []string {
	return append([]string(nil), m.archs...)
}

// FeatureIndex returns the column of a feature name, matched exactly.
func (m *Matrix) FeatureIndex(name string) (int, bool) {
	j, ok := m.fidx[name]
	return j, ok
}

// ArchIndex returns the row of an architecture name, matched exactly.
func (m *Matrix) ArchIndex(name string) (int, bool) {
	i, ok := m.aidx[name]
	return i, ok
}

// Supports returns the collapsed support bit at row i, column j.
func (m *Matrix) Supports(i, j int) (bool, error) {
	if i < 0 || i >= len(m.archs) || j < 0 || j >= len(m.features) {
		return false, fmt.Errorf("%w: (%d,%d) in %d x %d matrix",
			archtab.ErrIndexOutOfRange, i, j, len(m.archs), len(m.features))
	}
	return m.bits.Test(uint(i*len(m.features) + j)), nil
}

// Row returns the support bits of architecture row i, in feature order.
func (m *Matrix) Row(i int) ([]bool, error) {
	if i < 0 || i >= len(m.archs) {
		return nil, fmt.Errorf("%w: row %d of %d", archtab.ErrIndexOutOfRange, i, len(m.archs))
	}
	row := make([]bool, len(m.features))
	for j := range row {
		row[j] = m.bits.Test(uint(i*len(m.features) + j))
	}
	return row, nil
}

// Column returns the support bits of feature column j, in architecture order.
func (m *Matrix) Column(j int) ([]bool, error) {
	if j < 0 || j >= len(m.features) {
		return nil, fmt.Errorf("%w: column %d of %d", archtab.ErrIndexOutOfRange, j, len(m.features))
	}
	col := make([]bool, len(m.archs))
	for i := range col {
		col[i] = m.bits.Test(uint(i*len(m.features) + j))
	}
	return col, nil
}

// Fingerprint returns a stable hash over names and support bits, computed at
// construction time. Matrices built from equal tables share a fingerprint,
// which identifies a matrix across processes, e.g. as a cache key.
func (m *Matrix) Fingerprint() string {
	return m.fprint
}
