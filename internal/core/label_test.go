package core

import "testing"

func TestDecomposeLabel_FullGrammar(t *testing.T) {
	parts := DecomposeLabel("M1;ABC12-3D45, extra info")

	if parts.MethodCode != "M1" {
		t.Errorf("MethodCode = %q, want %q", parts.MethodCode, "M1")
	}
	if parts.Trial != "ABC12-3D45" {
		t.Errorf("Trial = %q, want %q", parts.Trial, "ABC12-3D45")
	}
	if parts.IntermediateForm != "extra info" {
		t.Errorf("IntermediateForm = %q, want %q", parts.IntermediateForm, "extra info")
	}
	if parts.CanonicalBatch != "ABC12-3D45" {
		t.Errorf("CanonicalBatch = %q, want %q", parts.CanonicalBatch, "ABC12-3D45")
	}
}

func TestDecomposeLabel_Variants(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  LabelParts
	}{
		{
			name:  "no method prefix",
			label: "ABC12-3D45 granulate",
			want:  LabelParts{Trial: "ABC12-3D45", IntermediateForm: "granulate", CanonicalBatch: "ABC12-3D45"},
		},
		{
			name:  "colon terminated method",
			label: "M2:DEF34-5E6, raw",
			want:  LabelParts{MethodCode: "M2", Trial: "DEF34-5E6", IntermediateForm: "raw", CanonicalBatch: "DEF34-5E6"},
		},
		{
			name:  "no separator",
			label: "XYZ99-1A1",
			want:  LabelParts{Trial: "XYZ99-1A1", CanonicalBatch: "XYZ99-1A1"},
		},
		{
			name:  "batch embedded in longer trial token",
			label: "pre-ABC12-3D45-post rest",
			want:  LabelParts{Trial: "pre-ABC12-3D45-post", IntermediateForm: "rest", CanonicalBatch: "ABC12-3D45"},
		},
		{
			name:  "lowercase batch code",
			label: "abc12-3d4",
			want:  LabelParts{Trial: "abc12-3d4", CanonicalBatch: "abc12-3d4"},
		},
		{
			name:  "free text without batch pattern",
			label: "placebo run, no batch",
			want:  LabelParts{Trial: "placebo", IntermediateForm: "run, no batch", CanonicalBatch: "placebo"},
		},
		{
			name:  "empty label",
			label: "",
			want:  LabelParts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecomposeLabel(tt.label)
			if got != tt.want {
				t.Errorf("DecomposeLabel(%q) = %+v, want %+v", tt.label, got, tt.want)
			}
		})
	}
}

func TestDecomposeLabel_MethodRequiresLeadingPosition(t *testing.T) {
	// An M<digit> in the middle of the label is not a method marker.
	parts := DecomposeLabel("ABC12-3D45 M1")
	if parts.MethodCode != "" {
		t.Errorf("MethodCode = %q, want empty", parts.MethodCode)
	}
}
