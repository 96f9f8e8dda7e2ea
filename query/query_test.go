package query

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/archtab"
	"github.com/npillmayer/archtab/table"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const fixture = ` target | H | M | S | Q
--------+---+---+---+---
 alpha  | * |   | ? | *
 beta   |   | * |   | *
 gamma  |   |   |   |
`

func fixtureEngine(t *testing.T) *Engine {
	t.Helper()
	m, err := table.Parse("fixture", fixture)
	if err != nil {
		t.Fatal(err)
	}
	return New(m)
}

func TestFeaturesOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "archtab.query")
	defer teardown()
	//
	e := fixtureEngine(t)
	feats, err := e.FeaturesOf("alpha")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(feats, " ") != "H Q" {
		t.Errorf("features of alpha are %v, want [H Q] in table order", feats)
	}
	feats, err = e.FeaturesOf("gamma")
	if err != nil {
		t.Fatal(err)
	}
	if len(feats) != 0 {
		t.Errorf("features of gamma are %v, want none", feats)
	}
}

func TestArchitecturesWith(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "archtab.query")
	defer teardown()
	//
	e := fixtureEngine(t)
	archs, err := e.ArchitecturesWith("Q")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(archs, " ") != "alpha beta" {
		t.Errorf("architectures with Q are %v, want [alpha beta]", archs)
	}
	// alpha's '?' under S collapsed at parse time, so S selects nobody,
	// which is a valid empty answer, not an error
	archs, err = e.ArchitecturesWith("S")
	if err != nil {
		t.Fatal(err)
	}
	if len(archs) != 0 {
		t.Errorf("architectures with S are %v, want none", archs)
	}
}

func TestAllNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "archtab.query")
	defer teardown()
	//
	e := fixtureEngine(t)
	if all := e.AllArchitectures(); strings.Join(all, " ") != "alpha beta gamma" {
		t.Errorf("all architectures: %v", all)
	}
	if all := e.AllFeatures(); strings.Join(all, " ") != "H M S Q" {
		t.Errorf("all features: %v", all)
	}
}

func TestUnknownNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "archtab.query")
	defer teardown()
	//
	e := fixtureEngine(t)
	_, err := e.FeaturesOf("Alpha") // wrong case
	if !errors.Is(err, archtab.ErrUnknownArchitecture) {
		t.Errorf("FeaturesOf(Alpha) returned %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), `"Alpha" is not a known architecture`) {
		t.Errorf("error message %q does not echo the name", err)
	}
	_, err = e.ArchitecturesWith("HM")
	if !errors.Is(err, archtab.ErrUnknownFeature) {
		t.Errorf("ArchitecturesWith(HM) returned %v", err)
	}
	_, err = e.Set("h")
	if !errors.Is(err, archtab.ErrUnknownFeature) {
		t.Errorf("Set(h) returned %v", err)
	}
}

// A 2 x 2 table with one ambiguous and one empty cell: the ambiguous cell
// must behave exactly like the empty one in every query form.
func TestTwoByTwo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "archtab.query")
	defer teardown()
	//
	m, err := table.Parse("test", " target | X | Y\n--------+---+---\n alpha | * | ?\n beta |   | *\n")
	if err != nil {
		t.Fatal(err)
	}
	e := New(m)
	if feats, _ := e.FeaturesOf("alpha"); strings.Join(feats, " ") != "X" {
		t.Errorf("features of alpha are %v, want [X]", feats)
	}
	if feats, _ := e.FeaturesOf("beta"); strings.Join(feats, " ") != "Y" {
		t.Errorf("features of beta are %v, want [Y]", feats)
	}
	if archs, _ := e.ArchitecturesWith("X"); strings.Join(archs, " ") != "alpha" {
		t.Errorf("architectures with X are %v, want [alpha]", archs)
	}
	if archs, _ := e.ArchitecturesWith("Y"); strings.Join(archs, " ") != "beta" {
		t.Errorf("architectures with Y are %v, want [beta]", archs)
	}
}

// Matrix, FeaturesOf and ArchitecturesWith must agree cell by cell.
func TestQuerySymmetry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "archtab.query")
	defer teardown()
	//
	e := fixtureEngine(t)
	m := e.Matrix()
	for i, arch := range e.AllArchitectures() {
		feats, err := e.FeaturesOf(arch)
		if err != nil {
			t.Fatal(err)
		}
		for j, feature := range e.AllFeatures() {
			archs, err := e.ArchitecturesWith(feature)
			if err != nil {
				t.Fatal(err)
			}
			bit, err := m.Supports(i, j)
			if err != nil {
				t.Fatal(err)
			}
			if bit != contains(feats, feature) || bit != contains(archs, arch) {
				t.Errorf("cell (%s,%s): matrix %v, features_of %v, architectures_with %v",
					arch, feature, bit, contains(feats, feature), contains(archs, arch))
			}
		}
	}
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func TestArchSetAlgebra(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "archtab.query")
	defer teardown()
	//
	e := fixtureEngine(t)
	q, err := e.Set("Q")
	if err != nil {
		t.Fatal(err)
	}
	if q.Cardinality() != 2 {
		t.Errorf("set Q has cardinality %d, want 2", q.Cardinality())
	}
	h, _ := e.Set("H")
	both := q.Clone()
	both.And(h)
	if names := e.Names(both); strings.Join(names, " ") != "alpha" {
		t.Errorf("Q and H selects %v, want [alpha]", names)
	}
	if q.Cardinality() != 2 {
		t.Error("And on a clone modified the original set")
	}
	m, _ := e.Set("M")
	either := h.Clone()
	either.Or(m)
	if names := e.Names(either); strings.Join(names, " ") != "alpha beta" {
		t.Errorf("H or M selects %v, want [alpha beta]", names)
	}
	if !both.Contains(0) || both.Contains(1) {
		t.Error("Contains disagrees with set content")
	}
	s, _ := e.Set("S")
	if !s.IsEmpty() {
		t.Error("set S should be empty, ambiguity collapses to unsupported")
	}
}

func TestUniverse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "archtab.query")
	defer teardown()
	//
	e := fixtureEngine(t)
	u := e.Universe()
	if u.Cardinality() != 3 {
		t.Errorf("universe has cardinality %d, want 3", u.Cardinality())
	}
	if names := e.Names(u); strings.Join(names, " ") != "alpha beta gamma" {
		t.Errorf("universe resolves to %v", names)
	}
}

func TestWithAllWithAny(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "archtab.query")
	defer teardown()
	//
	e := fixtureEngine(t)
	names, err := e.WithAll("Q", "H")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(names, " ") != "alpha" {
		t.Errorf("WithAll(Q,H) = %v, want [alpha]", names)
	}
	names, _ = e.WithAny("H", "M")
	if strings.Join(names, " ") != "alpha beta" {
		t.Errorf("WithAny(H,M) = %v, want [alpha beta]", names)
	}
	names, _ = e.WithAll()
	if len(names) != 3 {
		t.Errorf("WithAll() = %v, want the whole table", names)
	}
	names, _ = e.WithAny()
	if len(names) != 0 {
		t.Errorf("WithAny() = %v, want none", names)
	}
	if _, err = e.WithAll("Q", "nope"); !errors.Is(err, archtab.ErrUnknownFeature) {
		t.Errorf("WithAll with an unknown feature returned %v", err)
	}
}

func TestEngineOverBuiltin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "archtab.query")
	defer teardown()
	//
	m, err := table.Builtin()
	if err != nil {
		t.Fatal(err)
	}
	e := New(m)
	feats, err := e.FeaturesOf("aarch64")
	if err != nil {
		t.Fatal(err)
	}
	if !contains(feats, "Q") {
		t.Errorf("aarch64 features %v lack Q", feats)
	}
	archs, err := e.ArchitecturesWith("D")
	if err != nil {
		t.Fatal(err)
	}
	if !contains(archs, "pa") {
		t.Errorf("architectures with D %v lack pa", archs)
	}
}
