package seed

import (
	"reflect"
	"testing"
)

func TestFoldRowsAggregatesGroupsAndSlots(t *testing.T) {
	capacity := 40
	rows := []*catalogRow{
		{SubjectSku: "MAT101", SubjectName: "Cálculo Diferencial", Credits: 4, Level: 1, GroupSku: "G1", Capacity: &capacity, Day: "LUNES", Hour: "6-8", Location: "A-201"},
		{SubjectSku: "MAT101", SubjectName: "Cálculo Diferencial", Credits: 4, Level: 1, GroupSku: "G1", Capacity: &capacity, Day: "Miércoles", Hour: "6-8", Location: "A-201"},
		{SubjectSku: "MAT101", SubjectName: "Cálculo Diferencial", Credits: 4, Level: 1, GroupSku: "G2", Day: "MARTES", Hour: "8-10"},
		{SubjectSku: "MAT201", SubjectName: "Cálculo Integral", Credits: 4, Level: 2, Requirements: "MAT101", GroupSku: "G1", Day: "LUNES", Hour: "8-10"},
	}

	subjects := foldRows(rows)
	if len(subjects) != 2 {
		t.Fatalf("expected 2 subjects, got %d", len(subjects))
	}

	mat101 := subjects[0]
	if mat101.Sku != "MAT101" || len(mat101.Groups) != 2 {
		t.Fatalf("unexpected first subject: %+v", mat101)
	}
	if len(mat101.Groups[0].Slots) != 2 {
		t.Errorf("expected two slots folded into G1, got %d", len(mat101.Groups[0].Slots))
	}
	if mat101.Groups[0].Capacity == nil || *mat101.Groups[0].Capacity != 40 {
		t.Error("capacity not carried into folded group")
	}
	if mat101.Groups[0].Slots[0].Location == nil || *mat101.Groups[0].Slots[0].Location != "A-201" {
		t.Error("location not carried into slot")
	}
	if mat101.Groups[1].Slots[0].Location != nil {
		t.Error("expected nil location for slot without one")
	}

	mat201 := subjects[1]
	if !reflect.DeepEqual(mat201.Requirements, []string{"MAT101"}) {
		t.Errorf("unexpected requirements: %v", mat201.Requirements)
	}
}

func TestFoldRowsSkipsIncompleteRows(t *testing.T) {
	rows := []*catalogRow{
		{SubjectSku: "", GroupSku: "G1", Day: "LUNES", Hour: "6-8"},
		{SubjectSku: "MAT101", GroupSku: "", Day: "LUNES", Hour: "6-8"},
	}
	if got := foldRows(rows); len(got) != 0 {
		t.Errorf("expected no subjects from incomplete rows, got %d", len(got))
	}
}

func TestSplitRequirements(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "blank", raw: "   ", want: nil},
		{name: "single", raw: "MAT101", want: []string{"MAT101"}},
		{name: "multiple", raw: "FIS101|MAT101", want: []string{"FIS101", "MAT101"}},
		{name: "padded", raw: " FIS101 | MAT101 ", want: []string{"FIS101", "MAT101"}},
		{name: "empty segment", raw: "FIS101||MAT101", want: []string{"FIS101", "MAT101"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitRequirements(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitRequirements(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
