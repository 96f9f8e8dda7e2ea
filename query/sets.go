package query

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/npillmayer/archtab"
)

// ArchSet is a set of architectures, identified by their row indices in the
// engine's matrix. It wraps a roaring bitmap.
type ArchSet struct {
	bits *roaring.Bitmap
}

// Set returns the architectures supporting a feature as a set. The returned
// set is the caller's to modify.
func (e *Engine) Set(feature string) (*ArchSet, error) {
	j, ok := e.matrix.FeatureIndex(feature)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a known feature",
			archtab.ErrUnknownFeature, feature)
	}
	return &ArchSet{bits: e.cols[j].Clone()}, nil
}

// Universe returns the set of all architectures of the table.
func (e *Engine) Universe() *ArchSet {
	bits := roaring.New()
	bits.AddRange(0, uint64(e.matrix.M()))
	return &ArchSet{bits: bits}
}

// Names resolves a set to architecture names, in table order.
func (e *Engine) Names(s *ArchSet) []string {
	var names []string
	archs := e.matrix.Architectures()
	it := s.bits.Iterator()
	for it.HasNext() {
		names = append(names, archs[it.Next()])
	}
	return names
}

// And intersects the set with another one, in place.
func (s *ArchSet) And(other *ArchSet) {
	s.bits.And(other.bits)
}

// Or unites the set with another one, in place.
func (s *ArchSet) Or(other *ArchSet) {
	s.bits.Or(other.bits)
}

// Clone returns a deep copy of the set.
func (s *ArchSet) Clone() *ArchSet {
	return &ArchSet{bits: s.bits.Clone()}
}

// Cardinality returns the number of architectures in the set.
func (s *ArchSet) Cardinality() uint64 {
	return s.bits.GetCardinality()
}

// IsEmpty returns true if the set contains no architecture.
func (s *ArchSet) IsEmpty() bool {
	return s.bits.IsEmpty()
}

// Contains checks if an architecture row index is in the set.
func (s *ArchSet) Contains(i int) bool {
	return s.bits.Contains(uint32(i))
}

// WithAll returns the architectures supporting every one of the given
// features, in table order. Without features it returns all architectures,
// the identity of the intersection.
func (e *Engine) WithAll(features ...string) ([]string, error) {
	result := e.Universe()
	for _, f := range features {
		set, err := e.Set(f)
		if err != nil {
			return nil, err
		}
		result.And(set)
	}
	return e.Names(result), nil
}

// WithAny returns the architectures supporting at least one of the given
// features, in table order.
func (e *Engine) WithAny(features ...string) ([]string, error) {
	result := &ArchSet{bits: roaring.New()}
	for _, f := range features {
		set, err := e.Set(f)
		if err != nil {
			return nil, err
		}
		result.Or(set)
	}
	return e.Names(result), nil
}
