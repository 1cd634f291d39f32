package core

import (
	"strings"
	"testing"
)

func TestResolveHeader_ExactBeforeSubstring(t *testing.T) {
	// "d50 (µm)" contains "d50" but the bare "d50" cell must win.
	header := []string{"Batch ID", "d50 (µm)", "D50"}
	idx, perr := ResolveHeader(header, []FieldSpec{
		{Canonical: "batchId", Aliases: []string{"batch id"}, Required: true},
		{Canonical: "d50", Aliases: []string{"d50"}, Required: true},
	}, ',')
	if perr != nil {
		t.Fatalf("ResolveHeader failed: %v", perr)
	}
	if idx["d50"] != 2 {
		t.Errorf("d50 column = %d, want 2 (exact match preferred)", idx["d50"])
	}
}

func TestResolveHeader_SubstringFallback(t *testing.T) {
	header := []string{"Sample Name", "D(0.1) µm", "D(0.5) µm", "D(0.9) µm"}
	idx, perr := ResolveHeader(header, particleFields, ',')
	if perr != nil {
		t.Fatalf("ResolveHeader failed: %v", perr)
	}
	want := map[string]int{"batchId": 0, "d10": 1, "d50": 2, "d90": 3}
	for field, col := range want {
		if idx[field] != col {
			t.Errorf("%s column = %d, want %d", field, idx[field], col)
		}
	}
}

func TestResolveHeader_MissingRequired(t *testing.T) {
	header := []string{"Batch", "D10", "D90"}
	_, perr := ResolveHeader(header, particleFields, ',')
	if perr == nil {
		t.Fatal("ResolveHeader succeeded, want missing-column error")
	}
	if !strings.Contains(perr.Message, `"d50"`) {
		t.Errorf("Message = %q, want it to name d50", perr.Message)
	}
	if !strings.Contains(perr.Details, "Batch,D10,D90") {
		t.Errorf("Details = %q, want it to echo the header", perr.Details)
	}
}

func TestResolveHeader_OptionalOmitted(t *testing.T) {
	header := []string{"Batch", "D10", "D50", "D90"}
	idx, perr := ResolveHeader(header, particleFields, ',')
	if perr != nil {
		t.Fatalf("ResolveHeader failed: %v", perr)
	}
	if _, ok := idx["span"]; ok {
		t.Error("span resolved without a span column")
	}
	if _, ok := idx["timestamp"]; ok {
		t.Error("timestamp resolved without a timestamp column")
	}
}

// Every alias in the static tables must resolve its own field from a header
// consisting of just that alias, including with different casing.
func TestAliasTables_SelfResolve(t *testing.T) {
	suites := [][]FieldSpec{particleFields, {timePointField}, msAttrFields}
	for _, specs := range suites {
		for _, spec := range specs {
			for _, alias := range spec.Aliases {
				cells := []string{normCell(strings.ToUpper(alias))}
				if col := resolveField(cells, spec); col != 0 {
					t.Errorf("alias %q of %q resolved to column %d, want 0", alias, spec.Canonical, col)
				}
			}
		}
	}
}
