package table

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/archtab"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func testRows() ([]string, []Row) {
	features := []string{"X", "Y", "Z"}
	rows := []Row{
		{Arch: "alpha", Markers: []archtab.Marker{archtab.Supported, archtab.Unsupported, archtab.Supported}},
		{Arch: "beta", Markers: []archtab.Marker{archtab.Unsupported, archtab.Ambiguous, archtab.Supported}},
	}
	return features, rows
}

func TestMatrixAccessors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "archtab.table")
	defer teardown()
	//
	features, rows := testRows()
	m, err := NewMatrix(features, rows)
	if err != nil {
		t.Fatal(err)
	}
	if m.M() != 2 || m.N() != 3 {
		t.Fatalf("matrix is %d x %d, want 2 x 3", m.M(), m.N())
	}
	row, err := m.Row(1)
	if err != nil {
		t.Fatal(err)
	}
	if row[0] || row[1] || !row[2] {
		t.Errorf("row beta is %v, want [false false true]", row)
	}
	col, err := m.Column(2)
	if err != nil {
		t.Fatal(err)
	}
	if !col[0] || !col[1] {
		t.Errorf("column Z is %v, want [true true]", col)
	}
	if j, ok := m.FeatureIndex("Y"); !ok || j != 1 {
		t.Errorf("FeatureIndex(Y) = %d,%v", j, ok)
	}
	if i, ok := m.ArchIndex("beta"); !ok || i != 1 {
		t.Errorf("ArchIndex(beta) = %d,%v", i, ok)
	}
	if _, ok := m.ArchIndex("Beta"); ok {
		t.Error("architecture lookup must be case-sensitive")
	}
}

func TestMatrixIndexErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "archtab.table")
	defer teardown()
	//
	features, rows := testRows()
	m, err := NewMatrix(features, rows)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Supports(2, 0); !errors.Is(err, archtab.ErrIndexOutOfRange) {
		t.Errorf("Supports(2,0) returned %v", err)
	}
	if _, err := m.Supports(0, -1); !errors.Is(err, archtab.ErrIndexOutOfRange) {
		t.Errorf("Supports(0,-1) returned %v", err)
	}
	if _, err := m.Row(-1); !errors.Is(err, archtab.ErrIndexOutOfRange) {
		t.Errorf("Row(-1) returned %v", err)
	}
	if _, err := m.Column(3); !errors.Is(err, archtab.ErrIndexOutOfRange) {
		t.Errorf("Column(3) returned %v", err)
	}
}

func TestMatrixConstructionErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "archtab.table")
	defer teardown()
	//
	_, err := NewMatrix([]string{"X", "X"}, nil)
	if !errors.Is(err, archtab.ErrDuplicateName) {
		t.Errorf("duplicate feature not rejected: %v", err)
	}
	rows := []Row{{Arch: "alpha", Markers: []archtab.Marker{archtab.Supported}}}
	_, err = NewMatrix([]string{"X", "Y"}, rows)
	if !errors.Is(err, archtab.ErrMalformedTable) {
		t.Errorf("marker count mismatch not rejected: %v", err)
	}
}

func TestMatrixCopiesOut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "archtab.table")
	defer teardown()
	//
	features, rows := testRows()
	m, _ := NewMatrix(features, rows)
	m.Features()[0] = "mutated"
	if m.Features()[0] != "X" {
		t.Error("Features exposes internal state")
	}
	m.Architectures()[0] = "mutated"
	if m.Architectures()[0] != "alpha" {
		t.Error("Architectures exposes internal state")
	}
}

func TestMatrixFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "archtab.table")
	defer teardown()
	//
	features, rows := testRows()
	m1, _ := NewMatrix(features, rows)
	m2, _ := NewMatrix(features, rows)
	if m1.Fingerprint() == "" {
		t.Fatal("fingerprint is empty")
	}
	if m1.Fingerprint() != m2.Fingerprint() {
		t.Error("equal matrices have different fingerprints")
	}
	rows[1].Markers[0] = archtab.Supported // flip one cell
	m3, _ := NewMatrix(features, rows)
	if m3.Fingerprint() == m1.Fingerprint() {
		t.Error("different matrices share a fingerprint")
	}
}

func TestMatrixAsHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "archtab.table")
	defer teardown()
	//
	features, rows := testRows()
	m, _ := NewMatrix(features, rows)
	var sb strings.Builder
	MatrixAsHTML(m, &sb)
	html := sb.String()
	for _, want := range []string{"<table", "alpha", "beta", "X", "Z"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML export lacks %q", want)
		}
	}
}
