package timetable

import (
	"testing"

	"github.com/tomascl/horarium/internal/app/models"
)

func slot(day, hours string) models.ScheduleSlot {
	return models.ScheduleSlot{Day: day, HourRange: hours}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name      string
		existing  []models.ScheduleSlot
		candidate []models.ScheduleSlot
		want      bool
	}{
		{
			name:      "touching boundary is not overlap",
			existing:  []models.ScheduleSlot{slot("MONDAY", "6-8")},
			candidate: []models.ScheduleSlot{slot("MONDAY", "8-10")},
			want:      false,
		},
		{
			name:      "partial intersection",
			existing:  []models.ScheduleSlot{slot("MONDAY", "6-9")},
			candidate: []models.ScheduleSlot{slot("MONDAY", "8-10")},
			want:      true,
		},
		{
			name:      "containment",
			existing:  []models.ScheduleSlot{slot("TUESDAY", "6-12")},
			candidate: []models.ScheduleSlot{slot("TUESDAY", "8-10")},
			want:      true,
		},
		{
			name:      "same hours different days",
			existing:  []models.ScheduleSlot{slot("MONDAY", "8-10")},
			candidate: []models.ScheduleSlot{slot("TUESDAY", "8-10")},
			want:      false,
		},
		{
			name:      "mixed encodings collide",
			existing:  []models.ScheduleSlot{slot("Miércoles", "10-12")},
			candidate: []models.ScheduleSlot{slot("MIERCOLES", "11-13")},
			want:      true,
		},
		{
			name: "any pair across lists decides",
			existing: []models.ScheduleSlot{
				slot("MONDAY", "6-8"),
				slot("FRIDAY", "14-16"),
			},
			candidate: []models.ScheduleSlot{
				slot("THURSDAY", "6-8"),
				slot("FRIDAY", "15-17"),
			},
			want: true,
		},
		{
			name:      "unrecognized day never matches",
			existing:  []models.ScheduleSlot{slot("SOMEDAY", "8-10")},
			candidate: []models.ScheduleSlot{slot("SOMEDAY", "8-10")},
			want:      false,
		},
		{
			name:      "malformed hour range never matches",
			existing:  []models.ScheduleSlot{slot("MONDAY", "8:00-10:00x")},
			candidate: []models.ScheduleSlot{slot("MONDAY", "8-10")},
			want:      false,
		},
		{
			name:      "empty lists",
			existing:  nil,
			candidate: nil,
			want:      false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.existing, tc.candidate); got != tc.want {
				t.Fatalf("Overlaps = %v, want %v", got, tc.want)
			}
			// Symmetry holds for all inputs.
			if got := Overlaps(tc.candidate, tc.existing); got != tc.want {
				t.Fatalf("Overlaps (swapped) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValidateSlots(t *testing.T) {
	good := []models.ScheduleSlot{slot("LUNES", "6-8"), slot("Sábado", "10-13")}
	if err := ValidateSlots(good); err != nil {
		t.Fatalf("ValidateSlots(good) = %v", err)
	}

	if err := ValidateSlots([]models.ScheduleSlot{slot("SOMEDAY", "6-8")}); err == nil {
		t.Fatal("ValidateSlots accepted an unrecognized weekday")
	}
	if err := ValidateSlots([]models.ScheduleSlot{slot("MONDAY", "9-7")}); err == nil {
		t.Fatal("ValidateSlots accepted a reversed hour range")
	}
}

func TestGroupSlots(t *testing.T) {
	entries := []models.ScheduleEntry{
		{
			Subject: models.Subject{Sku: "MAT101"},
			Groups: []models.Group{
				{Sku: "G1", Slots: []models.ScheduleSlot{slot("MONDAY", "6-8")}},
				{Sku: "G2", Slots: []models.ScheduleSlot{slot("TUESDAY", "6-8")}},
			},
		},
		{
			Subject: models.Subject{Sku: "FIS201"},
			Groups: []models.Group{
				{Sku: "A", Slots: []models.ScheduleSlot{slot("FRIDAY", "10-12")}},
			},
		},
	}

	slots := GroupSlots(entries)
	if len(slots) != 3 {
		t.Fatalf("GroupSlots returned %d slots, want 3", len(slots))
	}
}
