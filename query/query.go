/*
Package query answers lookups over a parsed support matrix.

The four query forms of the upstream tool are covered by FeaturesOf,
ArchitecturesWith, AllArchitectures and AllFeatures. On top of those the
engine hands out architecture sets backed by roaring bitmaps, so feature
columns can be intersected and united without materializing name lists in
between (see ArchSet, WithAll, WithAny, and package qlang).

All lookups match names exactly and case-sensitively. An unknown name is an
error, never a silent empty result; an empty result always means the name
exists and no architecture qualifies.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package query

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/npillmayer/archtab"
	"github.com/npillmayer/archtab/table"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'archtab.query'.
func tracer() tracing.Trace {
	return tracing.Select("archtab.query")
}

// Engine answers queries over one support matrix. Create one with New; an
// engine is read-only afterwards and safe for concurrent use.
type Engine struct {
	matrix *table.Matrix
	cols   []*roaring.Bitmap // one architecture set per feature column
}

// New creates a query engine for a matrix, precomputing one architecture
// bitmap per feature column.
func New(m *table.Matrix) *Engine {
	e := &Engine{
		matrix: m,
		cols:   make([]*roaring.Bitmap, m.N()),
	}
	for j := 0; j < m.N(); j++ {
		bits := roaring.New()
		col, _ := m.Column(j) // j is in range by construction
		for i, set := range col {
			if set {
				bits.Add(uint32(i))
			}
		}
		e.cols[j] = bits
	}
	tracer().Debugf("query engine over a %d x %d support matrix", m.M(), m.N())
	return e
}

// Matrix returns the engine's underlying support matrix.
func (e *Engine) Matrix() *table.Matrix {
	return e.matrix
}

// FeaturesOf returns the features supported by an architecture, in table
// order.
func (e *Engine) FeaturesOf(arch string) ([]string, error) {
	i, ok := e.matrix.ArchIndex(arch)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a known architecture",
			archtab.ErrUnknownArchitecture, arch)
	}
	row, err := e.matrix.Row(i)
	if err != nil {
		return nil, err
	}
	features := e.matrix.Features()
	var result []string
	for j, set := range row {
		if set {
			result = append(result, features[j])
		}
	}
	return result, nil
}

// ArchitecturesWith returns the architectures supporting a feature, in
// table order.
func (e *Engine) ArchitecturesWith(feature string) ([]string, error) {
	set, err := e.Set(feature)
	if err != nil {
		return nil, err
	}
	return e.Names(set), nil
}

// AllArchitectures returns every architecture of the table, in table order.
func (e *Engine) AllArchitectures() []string {
	return e.matrix.Architectures()
}

// AllFeatures returns every feature of the table, in table order.
func (e *Engine) AllFeatures() []string {
	return e.matrix.Features()
}
