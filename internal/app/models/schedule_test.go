package models

import "testing"

func intPtr(v int) *int { return &v }

func TestScheduleEntryCloneIsIndependent(t *testing.T) {
	original := ScheduleEntry{
		Subject: Subject{
			Sku:          "MAT201",
			Name:         "Cálculo Integral",
			Requirements: []string{"MAT101"},
		},
		Groups: []Group{
			{
				Sku:      "G1",
				Capacity: intPtr(35),
				Slots:    []ScheduleSlot{{Day: "LUNES", HourRange: "8-10"}},
			},
		},
	}

	clone := original.Clone()
	clone.Subject.Requirements[0] = "FIS101"
	clone.Groups[0].Sku = "G9"
	clone.Groups[0].Slots[0].HourRange = "6-8"
	*clone.Groups[0].Capacity = 1

	if original.Subject.Requirements[0] != "MAT101" {
		t.Errorf("requirement mutated through clone: %s", original.Subject.Requirements[0])
	}
	if original.Groups[0].Sku != "G1" {
		t.Errorf("group sku mutated through clone: %s", original.Groups[0].Sku)
	}
	if original.Groups[0].Slots[0].HourRange != "8-10" {
		t.Errorf("slot mutated through clone: %s", original.Groups[0].Slots[0].HourRange)
	}
	if *original.Groups[0].Capacity != 35 {
		t.Errorf("capacity mutated through clone: %d", *original.Groups[0].Capacity)
	}
}

func TestScheduleRecordEntriesWidensSingleGroup(t *testing.T) {
	record := ScheduleRecord{
		StudentID: 7,
		Subjects: []PersistedScheduleSubject{
			{
				Subject: Subject{Sku: "MAT101", Name: "Cálculo Diferencial"},
				Group:   Group{Sku: "G2"},
			},
			{
				Subject: Subject{Sku: "FIS101", Name: "Física Mecánica"},
				Group:   Group{Sku: "G1"},
			},
		},
	}

	entries := record.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for i, entry := range entries {
		if len(entry.Groups) != 1 {
			t.Errorf("entry %d: expected one group, got %d", i, len(entry.Groups))
		}
	}
	if entries[0].Subject.Sku != "MAT101" || entries[0].Groups[0].Sku != "G2" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
}

func TestCloneScheduleNil(t *testing.T) {
	if CloneSchedule(nil) != nil {
		t.Error("expected nil clone of nil snapshot")
	}
}
